package matchable_test

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/g-plane/matchable"
)

func TestMatchableYAML(t *testing.T) {
	var cfg struct {
		Name  matchable.Matchable `yaml:"name"`
		Route matchable.Matchable `yaml:"route"`
	}

	src := "name: staging\nroute: /v[0-9]+/i\n"
	if err := yaml.Unmarshal([]byte(src), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if cfg.Name.IsPattern() {
		t.Fatal("name should be a literal")
	}
	if !cfg.Name.MatchString("staging") || cfg.Name.MatchString("staging2") {
		t.Fatal("name should match exactly")
	}

	if !cfg.Route.IsPattern() {
		t.Fatal("route should be a pattern")
	}
	if !cfg.Route.MatchString("V2") {
		t.Fatal("route should match case-insensitively")
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(out); got != src {
		t.Fatalf("marshal: got %q, want %q", got, src)
	}
}

func TestMatchableYAMLInvalidPattern(t *testing.T) {
	var cfg struct {
		Route matchable.Matchable `yaml:"route"`
	}
	err := yaml.Unmarshal([]byte("route: /(/\n"), &cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "expected a valid regex") {
		t.Fatalf("error = %q, want a mention of a valid regex", err)
	}
}

func TestMatchableYAMLNonString(t *testing.T) {
	var cfg struct {
		Route matchable.Matchable `yaml:"route"`
	}

	t.Run("bareInt", func(t *testing.T) {
		err := yaml.Unmarshal([]byte("route: 404\n"), &cfg)
		if err == nil {
			t.Fatal("expected error for non-string scalar")
		}
		if !strings.Contains(err.Error(), "!!int") {
			t.Fatalf("error = %q, want a mention of !!int", err)
		}
	})

	t.Run("bareBool", func(t *testing.T) {
		if err := yaml.Unmarshal([]byte("route: true\n"), &cfg); err == nil {
			t.Fatal("expected error for non-string scalar")
		}
	})

	t.Run("sequence", func(t *testing.T) {
		if err := yaml.Unmarshal([]byte("route: [a, b]\n"), &cfg); err == nil {
			t.Fatal("expected error for sequence node")
		}
	})

	t.Run("quotedInt", func(t *testing.T) {
		if err := yaml.Unmarshal([]byte("route: \"404\"\n"), &cfg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if cfg.Route.IsPattern() {
			t.Fatal("quoted scalar should be a literal")
		}
		if !cfg.Route.MatchString("404") {
			t.Fatal("literal should match its own text")
		}
	})
}

func TestMatchableYAMLAlias(t *testing.T) {
	var cfg struct {
		Route  matchable.Matchable `yaml:"route"`
		Mirror matchable.Matchable `yaml:"mirror"`
	}

	src := "route: &r /v[0-9]+/i\nmirror: *r\n"
	if err := yaml.Unmarshal([]byte(src), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !cfg.Mirror.IsPattern() {
		t.Fatal("aliased value should be a pattern")
	}
	if !cfg.Mirror.MatchString("V3") {
		t.Fatal("aliased pattern should match case-insensitively")
	}
	if !cfg.Mirror.Equal(cfg.Route) {
		t.Fatal("alias should equal its anchor")
	}
}

func TestRegexOnlyYAML(t *testing.T) {
	var cfg struct {
		Exclude matchable.RegexOnly `yaml:"exclude"`
	}

	if err := yaml.Unmarshal([]byte("exclude: ^ab\n"), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !cfg.Exclude.MatchString("abx") || cfg.Exclude.MatchString("cab") {
		t.Fatal("anchored pattern misbehaved")
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(out); got != "exclude: ^ab\n" {
		t.Fatalf("marshal: got %q", got)
	}

	if err := yaml.Unmarshal([]byte("exclude: (\n"), &cfg); err == nil {
		t.Fatal("expected error for invalid pattern")
	}

	if err := yaml.Unmarshal([]byte("exclude: 3.5\n"), &cfg); err == nil {
		t.Fatal("expected error for non-string scalar")
	}
}
