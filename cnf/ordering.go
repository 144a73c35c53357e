package cnf

import (
	"fmt"
	"sort"
	"time"

	"github.com/crillab/wmccore/randsrc"
	"github.com/crillab/wmccore/report"
)

// OrderOptions configures a call to Order beyond the heuristic itself.
type OrderOptions struct {
	// Inverse reverses the returned permutation.
	Inverse bool
	// Rand supplies randomness for the Random heuristic. Required (and
	// only used) when Heuristic == Random.
	Rand randsrc.Source
	// Reporter receives progress messages for the expensive heuristics
	// (LexM, MinFill). nil is treated as report.Discard.
	Reporter report.Reporter
}

// Order computes a variable elimination ordering over f's apparent
// variables using the named heuristic, dispatching to one of the seven
// concrete orderings. An unknown heuristic is a fatal programming
// error, reported as a panic rather than an error value, matching the
// source algorithm's own "showError" treatment of an invalid switch.
func Order(f *Formula, h Heuristic, opts OrderOptions) []int {
	r := report.Or(opts.Reporter)

	var ordering []int
	switch h {
	case Appearance:
		ordering = appearanceOrdering(f)
	case Declaration:
		ordering = declarationOrdering(f)
	case Random:
		ordering = randomOrdering(f, opts.Rand)
	case MCS:
		ordering = mcsOrdering(f)
	case LexP:
		ordering = lexpOrdering(f)
	case LexM:
		ordering = lexmOrdering(f, r)
	case MinFill:
		ordering = minfillOrdering(f, r)
	default:
		panic(fmt.Sprintf("cnf.Order: unknown heuristic %v", h))
	}

	if opts.Inverse {
		invert(ordering)
	}
	return ordering
}

// Restrict filters ordering down to the variables present in vars,
// preserving relative order.
func Restrict(ordering []int, vars map[int]bool) []int {
	res := make([]int, 0, len(ordering))
	for _, v := range ordering {
		if vars[v] {
			res = append(res, v)
		}
	}
	return res
}

func invert(ordering []int) {
	for i, j := 0, len(ordering)-1; i < j; i, j = i+1, j-1 {
		ordering[i], ordering[j] = ordering[j], ordering[i]
	}
}

func appearanceOrdering(f *Formula) []int {
	res := make([]int, len(f.apparentVars))
	copy(res, f.apparentVars)
	return res
}

func declarationOrdering(f *Formula) []int {
	res := make([]int, len(f.apparentVars))
	copy(res, f.apparentVars)
	sort.Ints(res)
	return res
}

func randomOrdering(f *Formula, rnd randsrc.Source) []int {
	res := make([]int, len(f.apparentVars))
	copy(res, f.apparentVars)
	for i := len(res) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		res[i], res[j] = res[j], res[i]
	}
	return res
}

// mcsOrdering implements Maximum Cardinality Search: start from the
// first apparent vertex, then repeatedly append the unranked vertex
// with the most already-ranked neighbors, breaking ties on insertion
// order. The loop stops only when the unranked-count map empties, so
// every apparent vertex is ordered: once no remaining vertex has a
// ranked neighbor (the current component is exhausted), all counts are
// zero and the first remaining vertex in appearance order is taken,
// starting the next component. See SPEC_FULL.md's Open Question on MCS
// termination.
func mcsOrdering(f *Formula) []int {
	if len(f.apparentVars) == 0 {
		return nil
	}
	g := f.GaifmanGraph()

	order := f.apparentVars
	start := order[0]

	rankedNeighborCount := make(map[int]int)
	present := make(map[int]bool)
	for _, v := range order[1:] {
		rankedNeighborCount[v] = 0
		present[v] = true
	}

	ordering := []int{start}
	current := start
	for len(rankedNeighborCount) > 0 {
		for _, n := range g.Neighbors(current) {
			if present[n] {
				rankedNeighborCount[n]++
			}
		}

		best := 0
		bestCount := 0
		haveBest := false
		for _, v := range order {
			c, ok := rankedNeighborCount[v]
			if !ok {
				continue
			}
			if !haveBest || c > bestCount {
				best, bestCount, haveBest = v, c, true
			}
		}

		ordering = append(ordering, best)
		delete(rankedNeighborCount, best)
		delete(present, best)
		current = best
	}
	return ordering
}

// lexpOrdering implements LEX-P: vertices are numbered from n =
// |apparentVars| down to 1, each time picking the unnumbered vertex
// with the maximum Label, breaking ties on insertion order, then
// prepending the current number into each still-unnumbered neighbor's
// label.
func lexpOrdering(f *Formula) []int {
	g := f.GaifmanGraph()
	return lexOrdering(f, g, false, nil)
}

// lexmOrdering implements LEX-M: as LEX-P, but a neighbor's label is
// only updated when the currently selected vertex can still reach it
// through a subgraph restricted to vertices with strictly smaller
// labels. This is the expensive heuristic: one hasPath query per
// (selected vertex, unnumbered vertex) pair, per iteration.
func lexmOrdering(f *Formula, r report.Reporter) []int {
	g := f.GaifmanGraph()
	prog := report.NewProgress(r, "lexm", 2*time.Second)
	return lexOrdering(f, g, true, prog)
}

// lexOrdering implements the shared skeleton of LEX-P and LEX-M.
// restricted selects LEX-M's reachability-gated label update. prog may
// be nil, in which case no progress is reported (LEX-P is cheap enough
// not to need it).
func lexOrdering(f *Formula, g *Graph, restricted bool, prog *report.Progress) []int {
	labels := make(map[int]*Label, len(f.apparentVars))
	unnumbered := make(map[int]bool, len(f.apparentVars))
	for _, v := range f.apparentVars {
		labels[v] = &Label{}
		unnumbered[v] = true
	}

	numbered := make([]int, 0, len(f.apparentVars))
	n := len(f.apparentVars)
	for i := n; i > 0; i-- {
		v := maxLabelVertex(f.apparentVars, labels, unnumbered)
		numbered = append(numbered, v)
		unnumbered[v] = false

		if !restricted {
			for _, w := range g.Neighbors(v) {
				if unnumbered[w] {
					labels[w].AddNumber(i)
				}
			}
		} else {
			for _, w := range f.apparentVars {
				if !unnumbered[w] {
					continue
				}
				if lexmReaches(f, labels, unnumbered, numbered, v, w) {
					labels[w].AddNumber(i)
				}
			}
		}

		if prog != nil {
			prog.Tick(len(numbered), n)
		}
	}
	if prog != nil {
		prog.Done()
	}
	return numbered
}

// maxLabelVertex returns the unnumbered vertex with the maximum Label,
// breaking ties on first-appearance (insertion) order.
func maxLabelVertex(order []int, labels map[int]*Label, unnumbered map[int]bool) int {
	best := -1
	var bestLabel Label
	for _, v := range order {
		if !unnumbered[v] {
			continue
		}
		if best == -1 || bestLabel.Less(*labels[v]) {
			best = v
			bestLabel = *labels[v]
		}
	}
	return best
}

// lexmReaches builds, per (v, w) pair, a subgraph containing v, w, and
// every other unnumbered vertex whose label is strictly less than w's,
// and reports whether v can still reach w in it. The subgraph is
// rebuilt from scratch for each w; no state carries between calls.
func lexmReaches(f *Formula, labels map[int]*Label, unnumbered map[int]bool, numbered []int, v, w int) bool {
	full := f.GaifmanGraph()
	wLabel := labels[w]

	for _, numberedVertex := range numbered {
		if numberedVertex != v {
			full.RemoveVertex(numberedVertex)
		}
	}
	for u := range unnumbered {
		if !unnumbered[u] || u == w {
			continue
		}
		if !labels[u].Less(*wLabel) {
			full.RemoveVertex(u)
		}
	}
	return full.HasPath(v, w)
}

// minfillOrdering repeatedly picks the min-fill vertex of a mutable
// copy of the Gaifman graph, fills in its neighborhood, removes it,
// and appends it to the ordering. The working graph strictly loses one
// vertex per iteration, so this terminates.
func minfillOrdering(f *Formula, r report.Reporter) []int {
	g := f.GaifmanGraph()
	prog := report.NewProgress(r, "minfill", 2*time.Second)
	total := len(f.apparentVars)

	ordering := make([]int, 0, total)
	for len(g.Vertices()) > 0 {
		v := g.GetMinfillVertex()
		g.FillInEdges(v)
		g.RemoveVertex(v)
		ordering = append(ordering, v)
		prog.Tick(len(ordering), total)
	}
	prog.Done()
	return ordering
}
