package cnf

import "fmt"

// A Literal is a nonzero signed integer. Its variable is its absolute
// value; the sign denotes polarity.
type Literal = int

// Var returns the variable underlying a literal, i.e. its absolute value.
func Var(lit Literal) int {
	if lit < 0 {
		return -lit
	}
	return lit
}

// A Clause is an ordered sequence of literals. Duplicates and
// tautologies are legal and are not rejected; the empty clause is
// legal and represents an unsatisfiable constraint.
type Clause = []Literal

// Dialect identifies one of the five textual formats Parse understands.
type Dialect byte

const (
	// Unweighted is plain DIMACS CNF; every literal weight is 1.
	Unweighted Dialect = iota
	// Cachet is DIMACS CNF with "w var weight" lines.
	Cachet
	// Minic2d is DIMACS CNF with a single "c weights ..." comment line.
	Minic2d
	// Wcnf is DIMACS WCNF with "w literal weight" lines; every declared
	// variable is additive (no projection).
	Wcnf
	// Wpcnf is DIMACS WCNF plus "vp ..." projection lines.
	Wpcnf
)

// String returns the dialect's keyword as it would appear on a "p" line.
func (d Dialect) String() string {
	switch d {
	case Unweighted, Cachet, Minic2d:
		return "cnf"
	case Wcnf:
		return "wcnf"
	case Wpcnf:
		return "wpcnf"
	default:
		return "unknown"
	}
}

// Name returns the dialect's own name, distinct from its shared header
// keyword (String) — UNWEIGHTED, CACHET and MINIC2D all use the "cnf"
// keyword but are different dialects.
func (d Dialect) Name() string {
	switch d {
	case Unweighted:
		return "UNWEIGHTED"
	case Cachet:
		return "CACHET"
	case Minic2d:
		return "MINIC2D"
	case Wcnf:
		return "WCNF"
	case Wpcnf:
		return "WPCNF"
	default:
		return "UNKNOWN"
	}
}

// Heuristic identifies one of the seven variable ordering heuristics.
type Heuristic byte

const (
	// Appearance returns apparent variables in first-appearance order.
	Appearance Heuristic = iota
	// Declaration returns apparent variables sorted ascending.
	Declaration
	// Random returns a uniform-random shuffle of apparent variables.
	Random
	// MCS is Maximum Cardinality Search.
	MCS
	// LexP is the LEX-P lexicographic BFS variant.
	LexP
	// LexM is LEX-P with reachability-restricted label updates.
	LexM
	// MinFill greedily eliminates the vertex adding the fewest fill-in edges.
	MinFill
)

func (h Heuristic) String() string {
	switch h {
	case Appearance:
		return "APPEARANCE"
	case Declaration:
		return "DECLARATION"
	case Random:
		return "RANDOM"
	case MCS:
		return "MCS"
	case LexP:
		return "LEXP"
	case LexM:
		return "LEXM"
	case MinFill:
		return "MINFILL"
	default:
		return "UNKNOWN"
	}
}

// ParseDialect maps a lowercase dialect name (as accepted by the
// wmccore CLI's --dialect flag) to its Dialect value.
func ParseDialect(name string) (Dialect, error) {
	switch name {
	case "unweighted":
		return Unweighted, nil
	case "cachet":
		return Cachet, nil
	case "minic2d":
		return Minic2d, nil
	case "wcnf":
		return Wcnf, nil
	case "wpcnf":
		return Wpcnf, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q", name)
	}
}

// ParseHeuristic maps a lowercase heuristic name (as accepted by the
// wmccore CLI's --heuristic flag) to its Heuristic value.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "appearance":
		return Appearance, nil
	case "declaration":
		return Declaration, nil
	case "random":
		return Random, nil
	case "mcs":
		return MCS, nil
	case "lexp":
		return LexP, nil
	case "lexm":
		return LexM, nil
	case "minfill":
		return MinFill, nil
	default:
		return 0, fmt.Errorf("unknown heuristic %q", name)
	}
}
