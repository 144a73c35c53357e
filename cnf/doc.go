/*
Package cnf parses weighted and projected CNF formulas and computes
variable elimination orderings over their Gaifman graph.

Its input can be any of five related DIMACS-style dialects, chosen by
the caller and read from an io.Reader: UNWEIGHTED, CACHET, MINIC2D,
WCNF or WPCNF. No matter the dialect, parsing produces a Formula with a
total literalWeights mapping and, for WPCNF, a projection (additive
variable) set.

Describing a problem

A problem can be parsed from a DIMACS-like stream:

    p cnf 3 2
    1 -2 0
    2 3 0

the programmer can create the Formula by doing:

    f, err := cnf.Parse(r, cnf.Unweighted, nil)

Weighted dialects add per-literal or per-variable weight lines; see
Parse and the Dialect constants for the full grammar of each.

A Formula can also be built directly from a clause slice, bypassing the
parser entirely (weights are left unset, and every apparent variable is
added to the additive set):

    f := cnf.NewFormula([][]int{{1, 2}, {-1, 3}})

Computing an ordering

Once a Formula is available, its Gaifman graph can be built on demand
and an elimination ordering computed with one of seven heuristics:

    ordering := cnf.Order(f, cnf.MinFill, cnf.OrderOptions{})

GaifmanGraph is built internally by Order; callers only need it
directly for their own graph queries. OrderOptions.Inverse reverses the
returned permutation, OrderOptions.Rand supplies randomness for the
Random heuristic, and Restrict filters a permutation down to a vertex
subset while preserving order.

Reporting

Parse and OrderOptions.Reporter accept an optional report.Reporter for
warnings and progress messages; passing nil discards them. Fatal
conditions are always returned as an error, never logged and
swallowed.
*/
package cnf
