package cnf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtures exercises every dialect with the same underlying clauses,
// matching the pack's testify-based table style (see
// operator-framework-deppy's internal/sat/constraints_test.go).
var fixtures = []struct {
	name    string
	input   string
	dialect Dialect
}{
	{"unweighted", "p cnf 4 3\n1 2 0\n-2 3 0\n3 -4 0\n", Unweighted},
	{"cachet", "p cnf 4 3\nw 1 0.4\n1 2 0\n-2 3 0\n3 -4 0\n", Cachet},
	{"minic2d", "p cnf 4 3\nc weights 0.1 0.9 0.2 0.8 0.3 0.7 0.4 0.6\n1 2 0\n-2 3 0\n3 -4 0\n", Minic2d},
	{"wcnf", "p wcnf 4 3\nw 1 5\n1 2 0\n-2 3 0\n3 -4 0\n", Wcnf},
	{"wpcnf", "p wpcnf 4 3\nvp 1 2 0\n1 2 0\n-2 3 0\n3 -4 0\n", Wpcnf},
}

func parseFixture(t *testing.T, name string) *Formula {
	t.Helper()
	for _, fx := range fixtures {
		if fx.name == name {
			f, err := Parse(strings.NewReader(fx.input), fx.dialect, nil)
			require.NoError(t, err)
			return f
		}
	}
	t.Fatalf("no such fixture %q", name)
	return nil
}

// invariant 1: apparentVars is a subset of [1, declaredVarCount], each
// variable appearing exactly once.
func TestInvariantApparentVarsAreDeclaredAndUnique(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			f := parseFixture(t, fx.name)
			seen := map[int]bool{}
			for _, v := range f.ApparentVars() {
				assert.False(t, seen[v], "variable %d appeared twice", v)
				seen[v] = true
				assert.True(t, v >= 1 && v <= f.DeclaredVarCount())
			}
		})
	}
}

// invariant 2: literalWeights is total over {±v : v in [1, declaredVarCount]}.
func TestInvariantLiteralWeightsIsTotal(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			f := parseFixture(t, fx.name)
			for v := 1; v <= f.DeclaredVarCount(); v++ {
				_, posOK := f.LiteralWeights()[v]
				_, negOK := f.LiteralWeights()[-v]
				assert.True(t, posOK, "missing weight for literal %d", v)
				assert.True(t, negOK, "missing weight for literal %d", -v)
			}
		})
	}
}

// invariant 3: for UNWEIGHTED, every literal weight equals 1.
func TestInvariantUnweightedWeightsAreOne(t *testing.T) {
	f := parseFixture(t, "unweighted")
	for v := 1; v <= f.DeclaredVarCount(); v++ {
		assert.Equal(t, 1.0, f.LiteralWeights()[v])
		assert.Equal(t, 1.0, f.LiteralWeights()[-v])
	}
}

// invariant 4: for CACHET, for a non-sentinel parsed weight p,
// literalWeights[v] + literalWeights[-v] == 1.
func TestInvariantCachetWeightsComplement(t *testing.T) {
	f := parseFixture(t, "cachet")
	for v := 1; v <= f.DeclaredVarCount(); v++ {
		sum := f.LiteralWeights()[v] + f.LiteralWeights()[-v]
		assert.InDelta(t, 1.0, sum, 1e-9, "var %d weights should sum to 1", v)
	}
}

// invariant 5: for every heuristic, Order(f) is a permutation of apparentVars.
func TestInvariantOrderIsPermutation(t *testing.T) {
	heuristics := []Heuristic{Appearance, Declaration, MCS, LexP, LexM, MinFill}
	for _, fx := range fixtures {
		f := parseFixture(t, fx.name)
		for _, h := range heuristics {
			t.Run(fx.name+"/"+h.String(), func(t *testing.T) {
				ordering := Order(f, h, OrderOptions{})
				assert.ElementsMatch(t, f.ApparentVars(), ordering)
			})
		}
	}
}

// invariant 6: restrict(H(F), S) == filter(H(F), v -> v in S), order-preserving.
func TestInvariantRestrictIsOrderPreservingFilter(t *testing.T) {
	f := parseFixture(t, "unweighted")
	ordering := Order(f, Appearance, OrderOptions{})
	subset := map[int]bool{2: true, 4: true}

	restricted := Restrict(ordering, subset)

	want := make([]int, 0)
	for _, v := range ordering {
		if subset[v] {
			want = append(want, v)
		}
	}
	assert.Equal(t, want, restricted)
}

// invariant 7: inverse(inverse(H(F))) == H(F).
func TestInvariantDoubleInverseIsIdentity(t *testing.T) {
	f := parseFixture(t, "unweighted")
	forward := Order(f, Declaration, OrderOptions{})
	once := Order(f, Declaration, OrderOptions{Inverse: true})
	twice := append([]int(nil), once...)
	invert(twice)
	assert.Equal(t, forward, twice)
}

// invariant 8: the Gaifman graph has edge {u,v} iff some clause
// contains both u (or -u) and v (or -v).
func TestInvariantGaifmanGraphMatchesCooccurrence(t *testing.T) {
	f := parseFixture(t, "unweighted")
	g := f.GaifmanGraph()

	cooccur := map[[2]int]bool{}
	for _, c := range f.Clauses() {
		for i := 0; i < len(c); i++ {
			for j := i + 1; j < len(c); j++ {
				a, b := Var(c[i]), Var(c[j])
				if a > b {
					a, b = b, a
				}
				cooccur[[2]int{a, b}] = true
			}
		}
	}
	for _, u := range f.ApparentVars() {
		for _, v := range f.ApparentVars() {
			if u >= v {
				continue
			}
			assert.Equal(t, cooccur[[2]int{u, v}], g.HasEdge(u, v), "edge {%d,%d}", u, v)
		}
	}
}

// invariant 9: MIN-FILL terminates, losing exactly one vertex per iteration.
func TestInvariantMinFillLosesOneVertexPerIteration(t *testing.T) {
	f := parseFixture(t, "unweighted")
	g := f.GaifmanGraph()
	iterations := 0
	for len(g.Vertices()) > 0 {
		before := len(g.Vertices())
		v := g.GetMinfillVertex()
		g.FillInEdges(v)
		g.RemoveVertex(v)
		assert.Equal(t, before-1, len(g.Vertices()))
		iterations++
		require.LessOrEqual(t, iterations, f.DeclaredVarCount()+1, "min-fill should terminate")
	}
}

// invariant 10: LEX-M on a clique returns some permutation of the clique's vertices.
func TestInvariantLexMOnCliqueIsPermutation(t *testing.T) {
	f := NewFormula([]Clause{{1, 2, 3, 4}})
	ordering := Order(f, LexM, OrderOptions{})
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, ordering)
}
