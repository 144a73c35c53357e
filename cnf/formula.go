package cnf

import (
	"math"

	"github.com/crillab/wmccore/report"
)

// DummyMinInt is the sentinel EmptyClauseIndex returns when no clause
// is empty, mirroring the original implementation's DUMMY_MIN_INT.
const DummyMinInt = math.MinInt64

// Formula is a parsed CNF: its clauses, declared variable count,
// apparent variables, per-literal weights, and projection (additive
// variable) set. A Formula exclusively owns its clauses, weights, and
// variable sets; it holds no persistent Graph.
type Formula struct {
	declaredVarCount    int
	declaredClauseCount int
	clauses             []Clause
	apparentVars        []int
	apparentSeen        map[int]bool
	literalWeights      map[Literal]float64
	additiveVars        map[int]bool
	weightFormat        Dialect
}

// NewFormula builds a Formula directly from a clause list. apparentVars
// is populated in first-appearance order, additiveVars is set to every
// variable appearing in any clause, declaredVarCount is set to the
// count of apparent variables, and literalWeights is left empty: this
// constructor supports callers that will set weights separately.
func NewFormula(clauses []Clause) *Formula {
	f := &Formula{
		apparentSeen:   make(map[int]bool),
		literalWeights: make(map[Literal]float64),
		additiveVars:   make(map[int]bool),
	}
	for _, c := range clauses {
		f.addClause(c)
		for _, lit := range c {
			f.additiveVars[Var(lit)] = true
		}
	}
	f.declaredVarCount = len(f.apparentVars)
	return f
}

func (f *Formula) addClause(c Clause) {
	clause := make(Clause, len(c))
	copy(clause, c)
	f.clauses = append(f.clauses, clause)
	for _, lit := range clause {
		f.updateApparentVars(lit)
	}
}

func (f *Formula) updateApparentVars(lit Literal) {
	v := Var(lit)
	if !f.apparentSeen[v] {
		f.apparentSeen[v] = true
		f.apparentVars = append(f.apparentVars, v)
	}
}

// DeclaredVarCount returns the variable count declared on the header line.
func (f *Formula) DeclaredVarCount() int { return f.declaredVarCount }

// DeclaredClauseCount returns the clause count declared on the header
// line. The parser never enforces that this matches len(Clauses()); a
// caller may compare the two and warn.
func (f *Formula) DeclaredClauseCount() int { return f.declaredClauseCount }

// Clauses returns the formula's clauses in input order.
func (f *Formula) Clauses() []Clause { return f.clauses }

// ApparentVars returns the variables occurring in some clause, in
// first-appearance order, each exactly once.
func (f *Formula) ApparentVars() []int { return f.apparentVars }

// LiteralWeights returns the literal-to-weight mapping.
func (f *Formula) LiteralWeights() map[Literal]float64 { return f.literalWeights }

// AdditiveVars returns the projection scope: the set of variables
// marginalized over during counting.
func (f *Formula) AdditiveVars() map[int]bool { return f.additiveVars }

// DisjunctiveVars returns [1, declaredVarCount] \ additiveVars.
func (f *Formula) DisjunctiveVars() map[int]bool {
	res := make(map[int]bool)
	for v := 1; v <= f.declaredVarCount; v++ {
		if !f.additiveVars[v] {
			res[v] = true
		}
	}
	return res
}

// WeightFormat returns the dialect this Formula was parsed as.
func (f *Formula) WeightFormat() Dialect { return f.weightFormat }

// EmptyClauseIndex returns the index of the first empty clause, or
// DummyMinInt if there is none.
func (f *Formula) EmptyClauseIndex() int {
	for i, c := range f.clauses {
		if len(c) == 0 {
			return i
		}
	}
	return DummyMinInt
}

// GaifmanGraph returns a Graph whose vertices are the apparent
// variables and whose edges connect every pair of variables
// co-occurring in some clause.
func (f *Formula) GaifmanGraph() *Graph {
	g := NewGraph(f.apparentVars)
	for _, c := range f.clauses {
		for i := 0; i < len(c); i++ {
			for j := i + 1; j < len(c); j++ {
				g.AddEdge(Var(c[i]), Var(c[j]))
			}
		}
	}
	return g
}

// Describe logs the formula's statistics at info level and, at debug
// level, its additive vars, literal weights, and clauses — mirroring
// the original implementation's verbosityLevel-gated printRow /
// printAdditiveVars / printLiteralWeights / printClauses helpers.
func (f *Formula) Describe(r report.Reporter) {
	if r == nil {
		r = report.Discard
	}
	r.Infof("declaredVarCount=%d apparentVarCount=%d declaredClauseCount=%d apparentClauseCount=%d",
		f.declaredVarCount, len(f.apparentVars), f.declaredClauseCount, len(f.clauses))

	r.Debugf("additiveVars=%v", sortedKeys(f.additiveVars))
	for v := 1; v <= f.declaredVarCount; v++ {
		r.Debugf("literalWeights[%d]=%g literalWeights[%d]=%g", v, f.literalWeights[v], -v, f.literalWeights[-v])
	}
	for i, c := range f.clauses {
		r.Debugf("clause %d: %v", i, c)
	}
}

func sortedKeys(m map[int]bool) []int {
	res := make([]int, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	for i := 1; i < len(res); i++ {
		for j := i; j > 0 && res[j-1] > res[j]; j-- {
			res[j-1], res[j] = res[j], res[j-1]
		}
	}
	return res
}
