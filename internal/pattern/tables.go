// Package pattern loads and compiles the court recognition rule tables.
//
// The tables are versioned configuration data, embedded at build time and
// overridable from an external YAML file. They are compiled once at startup
// and never mutated afterwards, so a single Tables value is safe for
// concurrent use.
package pattern

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gavelworks/gavel/internal/common"
	"github.com/gavelworks/gavel/internal/model"
)

//go:embed patterns.yaml
var defaultTables []byte

// rawTables mirrors the YAML layout of the rule file.
type rawTables struct {
	Citation     map[string][]string `yaml:"citation"`
	Header       map[string][]string `yaml:"header"`
	Federal      map[string][]string `yaml:"federal"`
	Verification map[string][]string `yaml:"verification"`
}

// Rule is a single compiled recognition rule.
type Rule struct {
	re   *regexp.Regexp
	Expr string
}

// Match reports whether the rule matches anywhere in s.
func (r Rule) Match(s string) bool {
	return r.re.MatchString(s)
}

// Count returns the number of non-overlapping matches in s.
func (r Rule) Count(s string) int {
	return len(r.re.FindAllStringIndex(s, -1))
}

// Table maps court types to their ordered rule sets.
type Table map[model.CourtType][]Rule

// Tables holds the compiled rule tables used by the classification pipeline.
type Tables struct {
	Citation     Table
	Header       Table
	Federal      Table
	Verification Table
}

// CitationOrder fixes the order in which citation rule sets are consulted.
// The first matching category wins.
var CitationOrder = []model.CourtType{
	model.CourtOfAppeals,
	model.AppellateDivision,
	model.SupremeCourt,
}

// Load compiles the embedded default rule tables.
func Load() (*Tables, error) {
	return parse(defaultTables)
}

// LoadFile compiles rule tables from an external YAML file, for deployments
// that override the embedded defaults.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern tables: %w", err)
	}
	return parse(data)
}

// Union merges the citation, header, and federal tables into a single rule
// set per category, deduplicating rules shared between tables. The content
// scorer runs against this merged view.
func (t *Tables) Union() Table {
	union := make(Table)
	seen := make(map[model.CourtType]map[string]bool)

	add := func(table Table) {
		for court, rules := range table {
			if seen[court] == nil {
				seen[court] = make(map[string]bool)
			}
			for _, rule := range rules {
				if seen[court][rule.Expr] {
					continue
				}
				seen[court][rule.Expr] = true
				union[court] = append(union[court], rule)
			}
		}
	}

	add(t.Citation)
	add(t.Header)
	add(t.Federal)

	return union
}

func parse(data []byte) (*Tables, error) {
	var raw rawTables
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse pattern tables: %w", err)
	}

	tables := &Tables{}

	var err error
	if tables.Citation, err = compile(raw.Citation); err != nil {
		return nil, err
	}
	if tables.Header, err = compile(raw.Header); err != nil {
		return nil, err
	}
	if tables.Federal, err = compile(raw.Federal); err != nil {
		return nil, err
	}
	if tables.Verification, err = compile(raw.Verification); err != nil {
		return nil, err
	}

	return tables, nil
}

func compile(groups map[string][]string) (Table, error) {
	table := make(Table, len(groups))

	for court, exprs := range groups {
		courtType := model.CourtType(court)
		if !courtType.Valid() {
			return nil, fmt.Errorf("%w: unknown court type %q in pattern tables", common.ErrInvalidConfig, court)
		}

		rules := make([]Rule, 0, len(exprs))
		for _, expr := range exprs {
			re, err := regexp.Compile(caseInsensitive(expr))
			if err != nil {
				return nil, fmt.Errorf("failed to compile pattern %q for %s: %w", expr, court, err)
			}
			rules = append(rules, Rule{Expr: expr, re: re})
		}
		table[courtType] = rules
	}

	return table, nil
}

// caseInsensitive makes a pattern case-insensitive unless it already carries
// inline flags.
func caseInsensitive(expr string) string {
	if strings.HasPrefix(expr, "(?i)") {
		return expr
	}
	return "(?i)" + expr
}
