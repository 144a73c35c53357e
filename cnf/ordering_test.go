package cnf

import (
	"sort"
	"testing"
)

func samePermutation(t *testing.T, got, want []int) {
	t.Helper()
	gotSorted := append([]int(nil), got...)
	wantSorted := append([]int(nil), want...)
	sort.Ints(gotSorted)
	sort.Ints(wantSorted)
	if len(gotSorted) != len(wantSorted) {
		t.Fatalf("got %v, want a permutation of %v", got, want)
	}
	for i := range gotSorted {
		if gotSorted[i] != wantSorted[i] {
			t.Fatalf("got %v, want a permutation of %v", got, want)
		}
	}
}

func TestAppearanceOrdering(t *testing.T) {
	f := NewFormula([]Clause{{3, 1}, {1, 2}})
	got := Order(f, Appearance, OrderOptions{})
	want := []int{3, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected appearance order %v, got %v", want, got)
		}
	}
}

func TestDeclarationOrdering(t *testing.T) {
	f := NewFormula([]Clause{{3, 1}, {1, 2}})
	got := Order(f, Declaration, OrderOptions{})
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected declaration order %v, got %v", want, got)
		}
	}
}

func TestMinfillOnPath(t *testing.T) { // S6
	f := NewFormula([]Clause{{1, 2}, {2, 3}})
	ordering := Order(f, MinFill, OrderOptions{})
	samePermutation(t, ordering, []int{1, 2, 3})
	if ordering[0] != 1 && ordering[0] != 3 {
		t.Errorf("expected an endpoint (1 or 3) first, got %v", ordering)
	}
	if ordering[2] == 2 {
		t.Errorf("expected the middle vertex to be eliminated second, right after the first endpoint, not last, got %v", ordering)
	}
}

func TestMCSIsAPermutation(t *testing.T) {
	f := NewFormula([]Clause{{1, 2, 3}, {3, 4}, {5}})
	ordering := Order(f, MCS, OrderOptions{})
	samePermutation(t, ordering, f.ApparentVars())
}

func TestLexPIsAPermutation(t *testing.T) {
	f := NewFormula([]Clause{{1, 2, 3}, {3, 4}, {5}})
	ordering := Order(f, LexP, OrderOptions{})
	samePermutation(t, ordering, f.ApparentVars())
}

func TestLexMOnClique(t *testing.T) { // invariant 10
	f := NewFormula([]Clause{{1, 2, 3}})
	ordering := Order(f, LexM, OrderOptions{})
	samePermutation(t, ordering, []int{1, 2, 3})
}

func TestMinFillIsAPermutation(t *testing.T) {
	f := NewFormula([]Clause{{1, 2, 3}, {3, 4}, {5}})
	ordering := Order(f, MinFill, OrderOptions{})
	samePermutation(t, ordering, f.ApparentVars())
}

func TestInverseIsInvolutive(t *testing.T) {
	f := NewFormula([]Clause{{1, 2, 3}, {3, 4}, {5}})
	forward := Order(f, MCS, OrderOptions{})
	reversed := Order(f, MCS, OrderOptions{Inverse: true})
	doubled := append([]int(nil), reversed...)
	invert(doubled)
	for i := range forward {
		if forward[i] != doubled[i] {
			t.Fatalf("inverse(inverse(H(F))) should equal H(F); got %v vs %v", doubled, forward)
		}
	}
}

func TestRestrictPreservesOrder(t *testing.T) {
	f := NewFormula([]Clause{{1, 2, 3}, {3, 4}})
	ordering := Order(f, Appearance, OrderOptions{})
	restricted := Restrict(ordering, map[int]bool{1: true, 3: true})

	want := make([]int, 0, 2)
	for _, v := range ordering {
		if v == 1 || v == 3 {
			want = append(want, v)
		}
	}
	if len(restricted) != len(want) {
		t.Fatalf("expected %v, got %v", want, restricted)
	}
	for i := range want {
		if restricted[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, restricted)
		}
	}
}

func TestRandomOrderingIsAPermutation(t *testing.T) {
	f := NewFormula([]Clause{{1, 2, 3, 4, 5}})
	ordering := Order(f, Random, OrderOptions{Rand: fixedSource{}})
	samePermutation(t, ordering, f.ApparentVars())
}

// fixedSource is a deterministic randsrc.Source for tests.
type fixedSource struct{}

func (fixedSource) Intn(n int) int {
	if n == 0 {
		return 0
	}
	return n - 1
}

func TestOrderUnknownHeuristicPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for an unknown heuristic")
		}
	}()
	f := NewFormula([]Clause{{1, 2}})
	Order(f, Heuristic(99), OrderOptions{})
}
