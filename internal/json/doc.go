// Package json is the JSON codec behind the module's marshalling, backed by
// sonic where its JIT is available and by encoding/json elsewhere. Both
// variants follow standard-library semantics, so output is identical across
// builds.
package json
