// Package calibration specifies, at the interface level, the offline
// Calibration Probe: the procedure that infers a Model Config's overhead
// coefficients by issuing synthetic requests to a vendor API. It performs no
// network I/O itself and lives outside the tokenizer/accountant core; the
// core only ever consumes its persisted output (a Model Config plus an
// AccuracyReport).
package calibration

import (
	"context"
	"fmt"
	"math"

	"github.com/promptmeter/promptmeter/pkg/accountant"
	"github.com/promptmeter/promptmeter/pkg/logger"
	"github.com/promptmeter/promptmeter/pkg/model"
)

// Sample is one synthetic request the probe issues while measuring a model:
// a small prompt varying in message count, tool presence, property count,
// or nesting depth relative to its siblings in a measurement battery.
type Sample struct {
	Messages []accountant.Message
	Tools    []accountant.Tool
}

// APIClient reports the vendor's own input-token accounting for a sample,
// the ground truth the probe solves against. Implementations live entirely
// outside this module; production code talks to a real vendor endpoint.
type APIClient interface {
	InputTokens(ctx context.Context, modelID string, sample Sample) (int, error)
}

// EncodingSelector picks the best-fit Encoding Table and content multiplier
// for a model the store has not seen before, per §4.6's encoding-selection
// variant: tokenize a fixed corpus with each candidate encoding and choose
// the one minimizing absolute error against the API on long samples.
type EncodingSelector interface {
	SelectEncoding(ctx context.Context, client APIClient, modelID string, corpus []string) (encodingName string, contentMultiplier float64, err error)
}

// OverheadExtractor derives the §4.5 integer coefficients via differential
// subtraction across a measurement battery (e.g. a 3-message total minus a
// 1-message total minus text/role tokens, isolating per_message).
type OverheadExtractor interface {
	ExtractOverhead(ctx context.Context, client APIClient, modelID string) (model.TokenCoefficients, error)
}

// MeasurementError reports that a single coefficient could not be extracted
// for a model: an API error, or a derived value that would be negative or
// NaN. Per the error-handling design this is logged and the model is
// skipped; it is never surfaced as a fatal error from Calibrate.
type MeasurementError struct {
	ModelID     string
	Coefficient string
	Err         error
}

func (e *MeasurementError) Error() string {
	return fmt.Sprintf("calibration: %s: could not measure %s: %v", e.ModelID, e.Coefficient, e.Err)
}

func (e *MeasurementError) Unwrap() error { return e.Err }

// Probe composes encoding selection and overhead extraction into the full
// offline calibration procedure described in §4.6.
type Probe struct {
	Client    APIClient
	Selector  EncodingSelector
	Extractor OverheadExtractor
}

// Calibrate measures modelID and returns an updated Model Config plus the
// AccuracyReport to persist alongside it. On measurement failure it logs the
// failure and returns existing unchanged, matching the "existing config
// preserved" policy of §7; it never returns a config carrying a NaN or
// negative coefficient.
func (p *Probe) Calibrate(ctx context.Context, modelID string, corpus []string, existing model.Config) (model.Config, *AccuracyReport, error) {
	encodingName, multiplier, err := p.Selector.SelectEncoding(ctx, p.Client, modelID, corpus)
	if err != nil {
		logger.GetLogger().Warn("calibration: encoding selection failed, keeping existing config",
			"model", modelID, "error", err)
		return existing, nil, nil
	}

	coeffs, err := p.Extractor.ExtractOverhead(ctx, p.Client, modelID)
	if err != nil {
		logger.GetLogger().Warn("calibration: overhead extraction failed, keeping existing config",
			"model", modelID, "error", err)
		return existing, nil, nil
	}
	coeffs.ContentMultiplier = multiplier

	if err := rejectInvalid(coeffs); err != nil {
		logger.GetLogger().Warn("calibration: rejecting invalid coefficients, keeping existing config",
			"model", modelID, "error", err)
		return existing, nil, nil
	}

	updated := existing
	updated.Name = modelID
	updated.Encoding = encodingName
	updated.Tokens = coeffs

	hash, err := updated.TokensHash()
	if err != nil {
		return existing, nil, fmt.Errorf("calibration: hashing coefficients for %s: %w", modelID, err)
	}
	report := &AccuracyReport{ConfigHash: hash}
	return updated, report, nil
}

// rejectInvalid enforces the §7 rule that a NaN or negative coefficient
// never reaches a persisted config.
func rejectInvalid(t model.TokenCoefficients) error {
	if math.IsNaN(t.ContentMultiplier) {
		return fmt.Errorf("contentMultiplier is NaN")
	}
	return model.ValidateCoefficients(t)
}
