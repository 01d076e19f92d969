package calculator

import (
	"mawarith.dev/inheritance-calculator/internal/invariance"
	"mawarith.dev/inheritance-calculator/internal/model"
	"mawarith.dev/inheritance-calculator/internal/rational"
	"mawarith.dev/inheritance-calculator/internal/trace"
)

// DistributionWarning reports that the computed shares did not sum to
// exactly one whole estate (spec §7: Distribution-not-unity). It is a value
// on the result, never a Go error: the calculator must never abort, since
// ʿawl (pro-rata reduction) and radd (pro-rata enlargement) are explicitly
// out of scope and a non-unity sum is an expected, reportable outcome for
// certain heir configurations rather than a bug.
type DistributionWarning struct {
	Sum     rational.Fraction
	Message string
}

// Result is the outcome of one Calculate call: the heirs with their shares
// resolved (blocked heirs included, at zero share, so callers can explain
// exclusions), the derivation trace, and an optional distribution warning.
type Result struct {
	Heirs   []*model.Heir
	Trace   *trace.Trace
	Warning *DistributionWarning
}

// Calculate runs the four-pass share pipeline over a detected gender and
// heir list (spec §4.2). It is pure and synchronous: no I/O, no shared
// mutable state beyond the heir slice passed in, which it mutates in place
// and also returns for convenience.
func Calculate(gender model.Sex, heirs []*model.Heir) Result {
	if len(heirs) == 0 {
		return Result{Heirs: heirs, Trace: trace.New(), Warning: &DistributionWarning{
			Sum:     rational.Zero(),
			Message: "no heirs detected; nothing to distribute",
		}}
	}

	c := newCtx(gender, heirs)
	c.applyHijab()
	umariyyatan := c.applyUmariyyatan()
	c.applyFurud(umariyyatan)
	c.applyAsaba()

	for _, h := range c.heirs {
		_ = invariance.AssertSexMatchesKind(h, "post-calculation")
		_ = invariance.AssertBlockedImpliesZeroShare(h, "post-calculation")
		_ = invariance.AssertShareNonNegative(h, "post-calculation")
	}
	_ = invariance.AssertGroupSharesEqual(c.heirs, "post-calculation")

	result := Result{Heirs: c.heirs, Trace: c.tr}
	if err := invariance.AssertDistributionIsUnity(c.heirs); err != nil {
		sum := rational.Zero()
		for _, h := range c.heirs {
			if !h.Blocked {
				sum = sum.Add(h.Share)
			}
		}
		result.Warning = &DistributionWarning{Sum: sum, Message: err.Error()}
	}
	return result
}
