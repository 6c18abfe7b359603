package dict

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCompile_DerivedPatternIsWholeWord(t *testing.T) {
	tables := Tables{Tools: []ToolEntry{{Name: "Claude"}}}
	c, err := tables.Compile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	re := c.Tools[0].Re
	if !re.MatchString("built with Claude today") {
		t.Error("expected whole-word match")
	}
	if !re.MatchString("built with claude today") {
		t.Error("expected case-insensitive match")
	}
	if re.MatchString("met Claudette yesterday") {
		t.Error("expected no match inside a longer word")
	}
}

func TestCompile_ExplicitPatternUsed(t *testing.T) {
	tables := Tables{Terms: []TermEntry{{Term: "LLM", Pattern: `\bLLMs?\b`}}}
	c, err := tables.Compile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Terms[0].Re.MatchString("several LLMs in production") {
		t.Error("expected explicit pattern to match plural form")
	}
}

func TestCompile_BadPatternReported(t *testing.T) {
	tables := Tables{Terms: []TermEntry{{Term: "broken", Pattern: `(`}}}
	if _, err := tables.Compile(); err == nil {
		t.Fatal("expected error for invalid pattern")
	} else if !strings.Contains(err.Error(), `term "broken"`) {
		t.Errorf("expected error to name the entry, got %v", err)
	}
}

func TestCompile_EntryWithoutPatternOrNameRejected(t *testing.T) {
	tables := Tables{Organizations: []OrgEntry{{Name: "  "}}}
	if _, err := tables.Compile(); err == nil {
		t.Fatal("expected error for entry with neither pattern nor name")
	}
}

func TestCompile_MalformedTLDRejected(t *testing.T) {
	// TLD entries are spliced into the URL detector's pattern; a
	// metachar-bearing entry must fail at load, not later.
	tables := Tables{TLDs: []string{"com", "c(m"}}
	if _, err := tables.Compile(); err == nil {
		t.Fatal("expected error for malformed tld")
	} else if !strings.Contains(err.Error(), `"c(m"`) {
		t.Errorf("expected error to name the entry, got %v", err)
	}
}

func TestCompile_ShortLinkHostsLowercased(t *testing.T) {
	tables := Tables{ShortLinkHosts: []string{"Bit.LY", "t.co"}}
	c, err := tables.Compile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.ShortLinkHosts["bit.ly"] || !c.ShortLinkHosts["t.co"] {
		t.Errorf("expected lowercased host set, got %v", c.ShortLinkHosts)
	}
}

func TestDefaults_Compile(t *testing.T) {
	// Every built-in entry must compile; a bad default is a programming
	// error, not a runtime condition.
	if _, err := Defaults().Compile(); err != nil {
		t.Fatalf("defaults failed to compile: %v", err)
	}
}

func TestLoadFile_MergesOverDefaults(t *testing.T) {
	yml := `
people:
  - name: Margaret Hamilton
    role: Software Engineer
tlds:
  - com
  - test
`
	path := filepath.Join(t.TempDir(), "dict.yaml")
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Entry lists append after the built-ins.
	base := Defaults()
	if len(got.People) != len(base.People)+1 {
		t.Errorf("expected %d people, got %d", len(base.People)+1, len(got.People))
	}
	last := got.People[len(got.People)-1]
	if last.Name != "Margaret Hamilton" || last.Role != "Software Engineer" {
		t.Errorf("expected appended entry, got %+v", last)
	}

	// Scalar lists replace wholesale when non-empty.
	if len(got.TLDs) != 2 || got.TLDs[0] != "com" || got.TLDs[1] != "test" {
		t.Errorf("expected replaced TLD list, got %v", got.TLDs)
	}
	// Untouched scalar lists keep the defaults.
	if len(got.Roles) != len(base.Roles) {
		t.Errorf("expected default roles kept, got %v", got.Roles)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("people: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
