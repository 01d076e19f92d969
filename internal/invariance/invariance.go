// Package invariance validates the structural guarantees the calculator
// pipeline must never violate: the model-level invariants (sex-kind
// consistency, blocked-implies-zero-share, non-negative shares, equal shares
// within a tie group), plus the distribution-unity check used to detect
// configurations requiring ʿawl/radd. Validation can be switched off via
// config, mirroring the teacher's IsValidationEnabled gate.
package invariance

import (
	"fmt"

	"mawarith.dev/inheritance-calculator/internal/config"
	"mawarith.dev/inheritance-calculator/internal/model"
	"mawarith.dev/inheritance-calculator/internal/rational"
)

// EnableInvarianceValidationKey controls whether runtime invariance checks
// run at all. Production configs can disable it once confident, exactly as
// the teacher's config key of the same shape does for its own domain.
const EnableInvarianceValidationKey = "invariance.enable_validation"

func init() {
	if !config.HasKey(EnableInvarianceValidationKey) {
		config.RegisterRequiredKey(EnableInvarianceValidationKey)
	}
}

// IsValidationEnabled reports whether invariance checks are currently active.
func IsValidationEnabled() bool {
	return config.GetBool(EnableInvarianceValidationKey)
}

// InvariantViolationError represents a violation of a structural invariant
// in the heir/share data model.
type InvariantViolationError struct {
	Type    string
	Message string
	Context string
	Value   interface{}
}

func (e *InvariantViolationError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("invariant violation [%s] in %s: %s (value: %v)",
			e.Type, e.Context, e.Message, e.Value)
	}
	return fmt.Sprintf("invariant violation [%s]: %s (value: %v)", e.Type, e.Message, e.Value)
}

// AssertSexMatchesKind ensures a Heir's sex has not been corrupted against
// its Relation kind: heir sex is implied by kind and must never be set
// independently.
func AssertSexMatchesKind(h *model.Heir, context string) error {
	if !IsValidationEnabled() {
		return nil
	}
	if h.Sex() != h.Kind.Sex() {
		return &InvariantViolationError{
			Type:    "sex_kind_mismatch",
			Message: "heir sex does not match its relation kind",
			Context: context,
			Value:   h.Kind.Tag(),
		}
	}
	return nil
}

// AssertBlockedImpliesZeroShare ensures a Heir excluded by hijab never
// carries a nonzero share.
func AssertBlockedImpliesZeroShare(h *model.Heir, context string) error {
	if !IsValidationEnabled() {
		return nil
	}
	if h.Blocked && !h.Share.IsZero() {
		return &InvariantViolationError{
			Type:    "blocked_nonzero_share",
			Message: "blocked heir carries a nonzero share",
			Context: context,
			Value:   h.Share.String(),
		}
	}
	return nil
}

// AssertShareNonNegative ensures no heir's computed share is negative.
func AssertShareNonNegative(h *model.Heir, context string) error {
	if !IsValidationEnabled() {
		return nil
	}
	if h.Share.Num < 0 {
		return &InvariantViolationError{
			Type:    "negative_share",
			Message: "heir share is negative",
			Context: context,
			Value:   h.Share.String(),
		}
	}
	return nil
}

// AssertGroupSharesEqual ensures every heir in the same tie group (same
// kind, unblocked) carries an equal share.
func AssertGroupSharesEqual(heirs []*model.Heir, context string) error {
	if !IsValidationEnabled() {
		return nil
	}
	seen := make(map[model.Relation]rational.Fraction)
	for _, h := range heirs {
		if h.Blocked {
			continue
		}
		if prior, ok := seen[h.Kind]; ok {
			if !prior.Equal(h.Share) {
				return &InvariantViolationError{
					Type:    "unequal_group_shares",
					Message: "heirs of the same kind carry unequal shares",
					Context: context,
					Value:   fmt.Sprintf("%s vs %s", prior.String(), h.Share.String()),
				}
			}
			continue
		}
		seen[h.Kind] = h.Share
	}
	return nil
}

// AssertDistributionIsUnity checks that the heirs' shares sum to exactly
// 1/1. A mismatch is never reported back to the caller as a Go error; it is
// surfaced as a DistributionWarning value instead, since the calculator must
// never abort. This function only detects when that warning is warranted.
func AssertDistributionIsUnity(heirs []*model.Heir) error {
	var shares []rational.Fraction
	for _, h := range heirs {
		if !h.Blocked {
			shares = append(shares, h.Share)
		}
	}
	total := rational.Sum(shares)
	if !total.Equal(rational.New(1, 1)) {
		return &InvariantViolationError{
			Type:    "distribution_not_unity",
			Message: "heir shares do not sum to one whole",
			Context: "distribution check",
			Value:   total.String(),
		}
	}
	return nil
}
