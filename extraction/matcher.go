package extraction

import (
	"strings"

	"roadcost/pkg/catalog"
	"roadcost/pkg/units"
)

// Intervention is a structured extraction from one report statement.
// Immutable once created; downstream stages only read it.
type Intervention struct {
	RawText  string     `json:"raw_text"`
	Type     string     `json:"type"`     // pattern ID, e.g. "crash_barrier"
	Standard string     `json:"standard"` // explicit mention wins over the pattern default
	Quantity float64    `json:"quantity"`
	Unit     units.Unit `json:"unit"`
	Keywords []string   `json:"keywords"` // trigger keywords that hit
}

// Matcher resolves statements against the intervention pattern catalog.
// Patterns are tried in declaration order with first-match-wins
// dispatch: a statement maps to at most one intervention.
type Matcher struct {
	patterns []catalog.Pattern
}

// NewMatcher creates a matcher over an ordered pattern list.
func NewMatcher(patterns []catalog.Pattern) *Matcher {
	return &Matcher{patterns: patterns}
}

// Match tests one statement. Returns false when no pattern keyword
// occurs in the statement; a no-match is an expected outcome, not an
// error.
func (m *Matcher) Match(statement string) (Intervention, bool) {
	statement = strings.TrimSpace(statement)
	lower := strings.ToLower(statement)

	for _, pattern := range m.patterns {
		var hits []string
		for _, kw := range pattern.Keywords {
			if strings.Contains(lower, kw) {
				hits = append(hits, kw)
			}
		}
		if len(hits) == 0 {
			continue
		}

		iv := Intervention{
			RawText:  statement,
			Type:     pattern.ID,
			Standard: pattern.Standard,
			Keywords: hits,
		}

		if std, ok := ExtractStandard(statement); ok {
			iv.Standard = std
		}

		if q, ok := ExtractQuantity(statement); ok && q > 0 {
			iv.Quantity = q
			iv.Unit = ExtractUnit(statement)
		} else {
			// Malformed or absent quantity text never fails; the
			// pattern's declared default and its implied unit apply.
			iv.Quantity = pattern.DefaultQuantity
			iv.Unit = pattern.Policy.DefaultUnit()
		}

		return iv, true
	}

	return Intervention{}, false
}

// ExtractAll runs the matcher over a whole report and returns the
// interventions in statement order. Statements matching no pattern
// contribute nothing.
func (m *Matcher) ExtractAll(text string) []Intervention {
	var out []Intervention
	for stmt := range Segment(text) {
		if iv, ok := m.Match(stmt); ok {
			out = append(out, iv)
		}
	}
	return out
}
