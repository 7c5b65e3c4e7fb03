package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"roadcost/pkg/units"
)

// quantityExtractor is one rule in the extraction chain: a unit-anchored
// regular expression whose first capture group is the quantity.
type quantityExtractor struct {
	name string
	re   *regexp.Regexp
}

// Extractors are tried in order of specificity. The bare-number rule is
// the last resort so that "500 meters" never matches as a plain "500"
// and unit-anchored rules win over incidental numbers.
var quantityExtractors = []quantityExtractor{
	{"area", regexp.MustCompile(`(\d+\.?\d*)\s*(?:sq\.?\s*m|sqm|square meter)`)},
	{"length", regexp.MustCompile(`(\d+\.?\d*)\s*(?:meter|metre|m\b)`)},
	{"kilometer", regexp.MustCompile(`(\d+\.?\d*)\s*(?:km|kilometer)`)},
	{"count", regexp.MustCompile(`(\d+\.?\d*)\s*(?:nos?|number|quantity)`)},
	{"bare", regexp.MustCompile(`(\d+\.?\d*)`)},
}

// ExtractQuantity pulls a numeric quantity from a statement using the
// extractor chain with first-success semantics. Returns false when the
// statement carries no recognizable number.
func ExtractQuantity(statement string) (float64, bool) {
	lower := strings.ToLower(statement)
	for _, ex := range quantityExtractors {
		m := ex.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		q, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return q, true
	}
	return 0, false
}

// ExtractUnit scans a statement for unit keywords. Area keywords are
// checked before length so "sq.m" is not claimed by the bare "m" scan.
// Statements without any unit keyword default to a count unit.
func ExtractUnit(statement string) units.Unit {
	lower := strings.ToLower(statement)
	switch {
	case containsAny(lower, "sq.m", "sqm", "square meter"):
		return units.UnitSquareMeter
	case containsAny(lower, "km", "kilometer"):
		return units.UnitKilometer
	case containsAny(lower, "meter", "metre", "m"):
		return units.UnitMeter
	default:
		return units.UnitCount
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// standardRe recognizes explicit IRC standard mentions such as
// "IRC 119", "IRC:67" or "IRC-99".
var standardRe = regexp.MustCompile(`irc[\s:\-]*(\d+)`)

// ExtractStandard pulls an explicit IRC standard token from a statement,
// reformatted as "IRC:<digits>". Returns false when no mention exists.
func ExtractStandard(statement string) (string, bool) {
	m := standardRe.FindStringSubmatch(strings.ToLower(statement))
	if m == nil {
		return "", false
	}
	return "IRC:" + m[1], true
}
