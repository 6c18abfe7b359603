// Package dict holds the pattern dictionaries that drive entity
// extraction: people, organizations, places, tools, terms, role tokens,
// the TLD allow-list, and the short-link host list. Tables are plain data,
// compiled once at startup and passed explicitly into the miner so tests
// can substitute smaller fixtures.
package dict

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// PersonEntry maps a pattern to a known person.
type PersonEntry struct {
	Pattern      string `yaml:"pattern,omitempty"`
	Name         string `yaml:"name"`
	Role         string `yaml:"role,omitempty"`
	Organization string `yaml:"organization,omitempty"`
}

// OrgEntry maps a pattern to a known organization.
type OrgEntry struct {
	Pattern string `yaml:"pattern,omitempty"`
	Name    string `yaml:"name"`
}

// PlaceEntry maps a pattern to a known place.
type PlaceEntry struct {
	Pattern string `yaml:"pattern,omitempty"`
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"` // city, country, venue, region
}

// ToolEntry maps a pattern to a known tool, product, or platform.
type ToolEntry struct {
	Pattern     string `yaml:"pattern,omitempty"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// TermEntry maps a pattern to a known domain term.
type TermEntry struct {
	Pattern    string `yaml:"pattern,omitempty"`
	Term       string `yaml:"term"`
	Definition string `yaml:"definition,omitempty"`
}

// Tables is the full, uncompiled dictionary set.
type Tables struct {
	People         []PersonEntry `yaml:"people"`
	Organizations  []OrgEntry    `yaml:"organizations"`
	Places         []PlaceEntry  `yaml:"places"`
	Tools          []ToolEntry   `yaml:"tools"`
	Terms          []TermEntry   `yaml:"terms"`
	Roles          []string      `yaml:"roles"`
	TLDs           []string      `yaml:"tlds"`
	ShortLinkHosts []string      `yaml:"short_link_hosts"`
}

// LoadFile reads a YAML dictionary file and merges it over the defaults:
// entry lists are appended after the built-ins, scalar lists (roles, TLDs,
// short-link hosts) replace the built-ins when non-empty.
func LoadFile(path string) (Tables, error) {
	base := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read dictionary file: %w", err)
	}
	var extra Tables
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return base, fmt.Errorf("parse dictionary file: %w", err)
	}

	base.People = append(base.People, extra.People...)
	base.Organizations = append(base.Organizations, extra.Organizations...)
	base.Places = append(base.Places, extra.Places...)
	base.Tools = append(base.Tools, extra.Tools...)
	base.Terms = append(base.Terms, extra.Terms...)
	if len(extra.Roles) > 0 {
		base.Roles = extra.Roles
	}
	if len(extra.TLDs) > 0 {
		base.TLDs = extra.TLDs
	}
	if len(extra.ShortLinkHosts) > 0 {
		base.ShortLinkHosts = extra.ShortLinkHosts
	}
	return base, nil
}

// Compiled holds the immutable, pre-compiled form of the tables.
type Compiled struct {
	People         []CompiledPerson
	Organizations  []CompiledOrg
	Places         []CompiledPlace
	Tools          []CompiledTool
	Terms          []CompiledTerm
	Roles          []string
	TLDs           []string
	ShortLinkHosts map[string]bool
}

type CompiledPerson struct {
	Re           *regexp.Regexp
	Name         string
	Role         string
	Organization string
}

type CompiledOrg struct {
	Re   *regexp.Regexp
	Name string
}

type CompiledPlace struct {
	Re   *regexp.Regexp
	Name string
	Kind string
}

type CompiledTool struct {
	Re          *regexp.Regexp
	Name        string
	Description string
}

type CompiledTerm struct {
	Re         *regexp.Regexp
	Term       string
	Definition string
}

// tldLabelRe bounds what a TLD allow-list entry may contain. Entries are
// spliced into the URL detector's pattern, so anything else is rejected
// at load.
var tldLabelRe = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// Compile builds the immutable compiled tables. The built-in defaults are
// static literals and always compile; a YAML entry with a bad pattern or
// a malformed TLD is reported here, before any mining pass runs.
func (t Tables) Compile() (*Compiled, error) {
	for _, tld := range t.TLDs {
		if !tldLabelRe.MatchString(tld) {
			return nil, fmt.Errorf("tld %q: must contain only letters, digits, or hyphens", tld)
		}
	}

	c := &Compiled{
		Roles:          append([]string(nil), t.Roles...),
		TLDs:           append([]string(nil), t.TLDs...),
		ShortLinkHosts: make(map[string]bool, len(t.ShortLinkHosts)),
	}
	for _, h := range t.ShortLinkHosts {
		c.ShortLinkHosts[strings.ToLower(h)] = true
	}

	for _, e := range t.People {
		re, err := compilePattern(e.Pattern, e.Name)
		if err != nil {
			return nil, fmt.Errorf("person %q: %w", e.Name, err)
		}
		c.People = append(c.People, CompiledPerson{Re: re, Name: e.Name, Role: e.Role, Organization: e.Organization})
	}
	for _, e := range t.Organizations {
		re, err := compilePattern(e.Pattern, e.Name)
		if err != nil {
			return nil, fmt.Errorf("organization %q: %w", e.Name, err)
		}
		c.Organizations = append(c.Organizations, CompiledOrg{Re: re, Name: e.Name})
	}
	for _, e := range t.Places {
		re, err := compilePattern(e.Pattern, e.Name)
		if err != nil {
			return nil, fmt.Errorf("place %q: %w", e.Name, err)
		}
		c.Places = append(c.Places, CompiledPlace{Re: re, Name: e.Name, Kind: e.Kind})
	}
	for _, e := range t.Tools {
		re, err := compilePattern(e.Pattern, e.Name)
		if err != nil {
			return nil, fmt.Errorf("tool %q: %w", e.Name, err)
		}
		c.Tools = append(c.Tools, CompiledTool{Re: re, Name: e.Name, Description: e.Description})
	}
	for _, e := range t.Terms {
		re, err := compilePattern(e.Pattern, e.Term)
		if err != nil {
			return nil, fmt.Errorf("term %q: %w", e.Term, err)
		}
		c.Terms = append(c.Terms, CompiledTerm{Re: re, Term: e.Term, Definition: e.Definition})
	}
	return c, nil
}

// compilePattern compiles an explicit pattern, or derives a
// case-insensitive whole-word pattern from the canonical name.
func compilePattern(pattern, name string) (*regexp.Regexp, error) {
	if pattern == "" {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("entry has neither pattern nor name")
		}
		pattern = `\b` + regexp.QuoteMeta(name) + `\b`
	}
	return regexp.Compile(`(?i)` + pattern)
}
