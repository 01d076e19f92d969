package calculator

import (
	"testing"

	"mawarith.dev/inheritance-calculator/internal/model"
	"mawarith.dev/inheritance-calculator/internal/rational"
)

func shareOf(heirs []*model.Heir, kind model.Relation) rational.Fraction {
	for _, h := range heirs {
		if h.Kind == kind && !h.Blocked {
			return h.Share
		}
	}
	return rational.Zero()
}

func sumShares(heirs []*model.Heir) rational.Fraction {
	total := rational.Zero()
	for _, h := range heirs {
		if !h.Blocked {
			total = total.Add(h.Share)
		}
	}
	return total
}

// Wife + son + daughter + father + mother — a standard fully-resolved
// estate where furūḍ and ʿaṣaba together consume the whole estate exactly.
func TestCalculate_WifeSonDaughterFatherMother(t *testing.T) {
	heirs := []*model.Heir{
		model.NewHeir(model.Wife, "الزوجة"),
		model.NewHeir(model.Son, "الابن"),
		model.NewHeir(model.Daughter, "البنت"),
		model.NewHeir(model.Father, "الأب"),
		model.NewHeir(model.Mother, "الأم"),
	}
	result := Calculate(model.Male, heirs)
	if result.Warning != nil {
		t.Fatalf("unexpected distribution warning: %+v", result.Warning)
	}
	if got := shareOf(result.Heirs, model.Wife); !got.Equal(rational.New(1, 8)) {
		t.Errorf("wife share = %s, want 1/8", got.String())
	}
	if got := shareOf(result.Heirs, model.Father); !got.Equal(rational.New(1, 6)) {
		t.Errorf("father share = %s, want 1/6", got.String())
	}
	if got := shareOf(result.Heirs, model.Mother); !got.Equal(rational.New(1, 6)) {
		t.Errorf("mother share = %s, want 1/6", got.String())
	}
	son := shareOf(result.Heirs, model.Son)
	daughter := shareOf(result.Heirs, model.Daughter)
	if son.Cmp(daughter) <= 0 {
		t.Errorf("son share %s should exceed daughter share %s (2:1)", son.String(), daughter.String())
	}
	if !sumShares(result.Heirs).Equal(rational.New(1, 1)) {
		t.Errorf("total shares = %s, want 1/1", sumShares(result.Heirs).String())
	}
}

// Husband + father + mother, no children — ʿUmariyyatān fires: mother
// takes 1/3 of the remainder after the husband's 1/2, not 1/3 of the whole
// estate.
func TestCalculate_UmariyyatanHusband(t *testing.T) {
	heirs := []*model.Heir{
		model.NewHeir(model.Husband, "الزوج"),
		model.NewHeir(model.Father, "الأب"),
		model.NewHeir(model.Mother, "الأم"),
	}
	result := Calculate(model.Female, heirs)
	if got := shareOf(result.Heirs, model.Husband); !got.Equal(rational.New(1, 2)) {
		t.Errorf("husband share = %s, want 1/2", got.String())
	}
	if got := shareOf(result.Heirs, model.Mother); !got.Equal(rational.New(1, 6)) {
		t.Errorf("mother share = %s, want 1/6 (ʿUmariyyatān), got %s", got.String(), got.String())
	}
	if got := shareOf(result.Heirs, model.Father); !got.Equal(rational.New(1, 3)) {
		t.Errorf("father share = %s, want 1/3", got.String())
	}
	if result.Warning != nil {
		t.Fatalf("unexpected distribution warning: %+v", result.Warning)
	}
}

// Daughter alone + full brother — daughter takes her furūḍ half, the
// full brother (unblocked by any descendant of his own sex) takes the
// residue as ʿaṣaba.
func TestCalculate_DaughterAndFullBrother(t *testing.T) {
	heirs := []*model.Heir{
		model.NewHeir(model.Daughter, "البنت"),
		model.NewHeir(model.FullBrother, "الأخ الشقيق"),
	}
	result := Calculate(model.Male, heirs)
	if got := shareOf(result.Heirs, model.Daughter); !got.Equal(rational.New(1, 2)) {
		t.Errorf("daughter share = %s, want 1/2", got.String())
	}
	if got := shareOf(result.Heirs, model.FullBrother); !got.Equal(rational.New(1, 2)) {
		t.Errorf("full brother residue share = %s, want 1/2", got.String())
	}
}

// Two full sisters alone (no brother) — furūḍ caps them at 2/3 split
// equally; the remaining 1/3 is left unassigned, a deliberate non-unity
// outcome since radd (pro-rata enlargement) is out of scope.
func TestCalculate_TwoFullSistersAlone_LeavesResidueUnassigned(t *testing.T) {
	heirs := []*model.Heir{
		model.NewHeir(model.FullSister, "الأخت الشقيقة 1"),
		model.NewHeir(model.FullSister, "الأخت الشقيقة 2"),
	}
	result := Calculate(model.Male, heirs)
	if got := sumShares(result.Heirs); !got.Equal(rational.New(2, 3)) {
		t.Errorf("total shares = %s, want 2/3 (no radd)", got.String())
	}
	if result.Warning == nil {
		t.Fatal("expected a distribution warning when shares do not sum to unity")
	}
}

// Maternal siblings split equally regardless of sex, unlike every other
// sibling group (no 2:1 ratio).
func TestCalculate_MaternalSiblingsSplitEqually(t *testing.T) {
	heirs := []*model.Heir{
		model.NewHeir(model.Mother, "الأم"),
		model.NewHeir(model.MaternalBrother, "الأخ لأم"),
		model.NewHeir(model.MaternalSister, "الأخت لأم"),
	}
	result := Calculate(model.Male, heirs)
	brother := shareOf(result.Heirs, model.MaternalBrother)
	sister := shareOf(result.Heirs, model.MaternalSister)
	if !brother.Equal(sister) {
		t.Errorf("maternal brother %s and sister %s should be equal", brother.String(), sister.String())
	}
	if !brother.Add(sister).Equal(rational.New(1, 3)) {
		t.Errorf("maternal siblings combined = %s, want 1/3", brother.Add(sister).String())
	}
}

// Son + two daughters + wife + father + mother, with no sibling —
// intentionally a configuration where furūḍ and ʿaṣaba consume the full
// estate exactly, proving the calculator does not silently invoke ʿawl
// (pro-rata reduction) even though the total is right at the boundary.
func TestCalculate_FullHouseholdNoAwlApplied(t *testing.T) {
	heirs := []*model.Heir{
		model.NewHeir(model.Wife, "الزوجة"),
		model.NewHeir(model.Son, "الابن"),
		model.NewHeir(model.Daughter, "البنت 1"),
		model.NewHeir(model.Daughter, "البنت 2"),
		model.NewHeir(model.Father, "الأب"),
		model.NewHeir(model.Mother, "الأم"),
	}
	result := Calculate(model.Male, heirs)
	if !sumShares(result.Heirs).Equal(rational.New(1, 1)) {
		t.Errorf("total shares = %s, want 1/1", sumShares(result.Heirs).String())
	}
	if result.Warning != nil {
		t.Fatalf("unexpected distribution warning: %+v", result.Warning)
	}
}

func TestCalculate_EmptyHeirListProducesWarningNotError(t *testing.T) {
	result := Calculate(model.Male, nil)
	if result.Warning == nil {
		t.Fatal("expected a warning for an empty heir list")
	}
}

func TestCalculate_GrandfatherSubstitutesAbsentFather(t *testing.T) {
	heirs := []*model.Heir{
		model.NewHeir(model.Grandfather, "الجد"),
		model.NewHeir(model.Daughter, "البنت"),
	}
	result := Calculate(model.Male, heirs)
	if got := shareOf(result.Heirs, model.Grandfather); got.IsZero() {
		t.Fatal("grandfather should inherit in the father's absence")
	}
}
