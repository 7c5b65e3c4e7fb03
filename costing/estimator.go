package costing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"roadcost/extraction"
	"roadcost/pkg/catalog"
	"roadcost/pkg/confidence"
	"roadcost/pkg/errors"
)

// CostEstimate is the itemized cost of one extracted intervention.
// IDs are deterministic (statement order) so identical inputs produce
// identical estimates.
type CostEstimate struct {
	ID           string                     `json:"id"`
	Intervention extraction.Intervention    `json:"intervention"`
	Standard     string                     `json:"standard"`
	Materials    []MaterialLine             `json:"materials"`
	TotalCost    decimal.Decimal            `json:"total_cost"`
	Breakdown    map[string]decimal.Decimal `json:"breakdown"`

	// Partial-pricing visibility: totals exclude omitted lines, and
	// these fields let callers detect that an estimate understates.
	OmittedCodes []string `json:"omitted_codes,omitempty"`
	Coverage     float64  `json:"coverage"`
}

// IsComplete reports whether every template line was priced.
func (e *CostEstimate) IsComplete() bool {
	return len(e.OmittedCodes) == 0
}

// Result is a full estimation run over one report.
type Result struct {
	// Audit trail
	RunID       uuid.UUID          `json:"run_id"`
	Source      catalog.RateSource `json:"source"`
	EstimatedAt time.Time          `json:"estimated_at"`

	// Ordered estimates, one per matched statement
	Estimates []CostEstimate  `json:"estimates"`
	TotalCost decimal.Decimal `json:"total_cost"`

	// Quality metrics
	Confidence   float64 `json:"confidence"`
	IsIncomplete bool    `json:"is_incomplete"`
	LinesPriced  int     `json:"lines_priced"`
	LinesOmitted int     `json:"lines_omitted"`

	Warnings []string `json:"warnings,omitempty"`
}

// Estimator orchestrates the pipeline: segment, match, expand,
// aggregate. It holds only immutable reference data and is safe for
// concurrent use.
type Estimator struct {
	patterns []catalog.Pattern
	sources  catalog.SourceSet
	matcher  *extraction.Matcher
}

// NewEstimator creates an estimator over injected reference tables.
func NewEstimator(patterns []catalog.Pattern, sources catalog.SourceSet) *Estimator {
	return &Estimator{
		patterns: patterns,
		sources:  sources,
		matcher:  extraction.NewMatcher(patterns),
	}
}

// DefaultEstimator creates an estimator over the built-in catalogs.
func DefaultEstimator() *Estimator {
	return NewEstimator(catalog.Patterns(), catalog.DefaultSources())
}

// Sources exposes the configured rate tables (read-only).
func (e *Estimator) Sources() catalog.SourceSet { return e.sources }

// Patterns exposes the configured pattern list (read-only).
func (e *Estimator) Patterns() []catalog.Pattern { return e.patterns }

// Estimate runs the full pipeline over a report. An unrecognized source
// selector is rejected immediately: defaulting would price against the
// wrong table without indication. A report with no recognized keywords
// returns an empty result and no error.
func (e *Estimator) Estimate(text string, source catalog.RateSource) (*Result, error) {
	cat, err := e.sources.Catalog(source)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:       uuid.New(),
		Source:      source,
		EstimatedAt: time.Now().UTC(),
		Estimates:   make([]CostEstimate, 0),
		TotalCost:   decimal.Zero,
	}

	interventions := e.matcher.ExtractAll(text)
	if len(interventions) == 0 {
		return result, nil
	}

	var coverages []float64
	for i, iv := range interventions {
		pattern, ok := catalog.PatternByID(e.patterns, iv.Type)
		if !ok {
			// Matcher only emits known pattern IDs; guard anyway.
			continue
		}

		exp := Expand(iv, pattern, cat)
		total, breakdown := Aggregate(exp.Lines)

		est := CostEstimate{
			ID:           fmt.Sprintf("estimate-%d", i),
			Intervention: iv,
			Standard:     iv.Standard,
			Materials:    exp.Lines,
			TotalCost:    total,
			Breakdown:    breakdown,
			OmittedCodes: exp.OmittedCodes,
			Coverage:     confidence.Coverage(len(exp.Lines), len(pattern.Materials)),
		}

		result.Estimates = append(result.Estimates, est)
		result.TotalCost = result.TotalCost.Add(total)
		result.LinesPriced += len(exp.Lines)
		result.LinesOmitted += len(exp.OmittedCodes)
		coverages = append(coverages, est.Coverage)

		for _, code := range exp.OmittedCodes {
			result.Warnings = append(result.Warnings,
				errors.NewRateNotFoundError(code, iv.RawText).Error())
		}
	}

	result.Confidence = confidence.Aggregate(coverages)
	if result.LinesOmitted > 0 {
		result.IsIncomplete = true
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d material lines could not be priced; totals understate", result.LinesOmitted))
	}

	return result, nil
}
