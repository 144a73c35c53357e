package cnf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/crillab/wmccore/report"
)

// StdinSentinel is the distinguished path string that designates
// standard input to ParseFile.
const StdinSentinel = "-"

// ParseError is the error type returned for every fatal parsing
// condition. It always carries the 1-based line index of the
// offending line and a short message.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func fatalf(line int, format string, args ...interface{}) error {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

const weightsWord = "weights"

// ParseFile opens path (or reads os.Stdin if path is StdinSentinel)
// and parses it as the given dialect. When reading from stdin it
// prints banner lines before and after reading, per the stdin
// sentinel's contract.
func ParseFile(path string, dialect Dialect, r report.Reporter) (*Formula, error) {
	r = report.Or(r)
	if path == StdinSentinel {
		r.Infof("getting cnf from stdin... (end input with 'Enter' then 'Ctrl d')")
		f, err := Parse(os.Stdin, dialect, r)
		r.Infof("getting cnf from stdin: done")
		return f, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %q: %w", path, err)
	}
	defer file.Close()
	return Parse(file, dialect, r)
}

// Parse reads a line-oriented, whitespace-tokenized CNF dialect from
// src and returns the resulting Formula, or a fatal *ParseError. r may
// be nil.
func Parse(src io.Reader, dialect Dialect, r report.Reporter) (*Formula, error) {
	r = report.Or(r)

	f := &Formula{
		apparentSeen:   make(map[int]bool),
		literalWeights: make(map[Literal]float64),
		additiveVars:   make(map[int]bool),
		weightFormat:   dialect,
	}

	const noLine = -1
	haveHeader := false
	headerLine := noLine
	minic2dWeightsLine := noLine

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	lineIndex := 0
	for scanner.Scan() {
		lineIndex++
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}

		switch words[0] {
		case "p":
			if haveHeader {
				return nil, fatalf(lineIndex, "multiple problem lines: %d and %d", headerLine, lineIndex)
			}
			if len(words) != 4 {
				return nil, fatalf(lineIndex, "problem line has %d words (should be 4)", len(words))
			}
			if words[1] != dialect.String() {
				r.Warnf("line %d: expected %q, found %q", lineIndex, dialect.String(), words[1])
			}
			nVars, err := strconv.Atoi(words[2])
			if err != nil {
				return nil, fatalf(lineIndex, "declared var count %q is not an integer", words[2])
			}
			nClauses, err := strconv.Atoi(words[3])
			if err != nil {
				return nil, fatalf(lineIndex, "declared clause count %q is not an integer", words[3])
			}
			f.declaredVarCount = nVars
			f.declaredClauseCount = nClauses
			haveHeader = true
			headerLine = lineIndex

		case "vp":
			if dialect != Wpcnf {
				continue
			}
			for i := 1; i < len(words); i++ {
				num, err := strconv.Atoi(words[i])
				if err != nil {
					return nil, fatalf(lineIndex, "additive var %q is not an integer", words[i])
				}
				if num < 0 || num > f.declaredVarCount {
					return nil, fatalf(lineIndex, "var %d inconsistent with declared var count %d", num, f.declaredVarCount)
				}
				if num == 0 {
					if i != len(words)-1 {
						return nil, fatalf(lineIndex, "additive variables terminated prematurely by '0'")
					}
				} else {
					f.additiveVars[num] = true
				}
			}

		case "c":
			if dialect == Minic2d && len(words) > 1 && words[1] == weightsWord {
				if !haveHeader {
					return nil, fatalf(lineIndex, "no problem line before MINIC2D weights")
				}
				if minic2dWeightsLine != noLine {
					return nil, fatalf(lineIndex, "multiple MINIC2D weights lines: %d and %d", minic2dWeightsLine, lineIndex)
				}
				minic2dWeightsLine = lineIndex

				if len(words) != 2+2*f.declaredVarCount {
					return nil, fatalf(lineIndex, "wrong number of MINIC2D literal weights")
				}
				for v := 1; v <= f.declaredVarCount; v++ {
					pos, err := strconv.ParseFloat(words[v*2], 64)
					if err != nil {
						return nil, fatalf(lineIndex, "weight %q is not a number", words[v*2])
					}
					neg, err := strconv.ParseFloat(words[v*2+1], 64)
					if err != nil {
						return nil, fatalf(lineIndex, "weight %q is not a number", words[v*2+1])
					}
					f.literalWeights[v] = pos
					f.literalWeights[-v] = neg
				}
			}
			// any other comment line, or a non-MINIC2D dialect: ignored

		case "w":
			if !haveHeader {
				return nil, fatalf(lineIndex, "no problem line before weight")
			}
			if err := f.parseWeightLine(lineIndex, dialect, words); err != nil {
				return nil, err
			}

		default:
			if !haveHeader {
				return nil, fatalf(lineIndex, "no problem line before clause line %d", lineIndex)
			}
			clause, err := parseClauseLine(lineIndex, f.declaredVarCount, words)
			if err != nil {
				return nil, err
			}
			f.addClause(clause)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading cnf stream: %w", err)
	}

	if !haveHeader {
		return nil, fatalf(lineIndex, "no problem line before cnf stream ends")
	}

	if dialect != Wpcnf {
		for v := 1; v <= f.declaredVarCount; v++ {
			f.additiveVars[v] = true
		}
	}

	if err := f.completeWeights(dialect, minic2dWeightsLine, lineIndex); err != nil {
		return nil, err
	}

	f.checkLiteralWeights(r)

	return f, nil
}

// parseWeightLine handles a "w ..." line per the dialect's grammar.
// CACHET: w <var> <weight> [0]. WCNF/WPCNF: w <literal> <weight> [0].
// Any other dialect forbids "w" lines.
func (f *Formula) parseWeightLine(lineIndex int, dialect Dialect, words []string) error {
	hasTrailingZero := len(words) == 4 && words[3] == "0"
	validLen := len(words) == 3 || hasTrailingZero

	switch dialect {
	case Cachet:
		if !validLen {
			return fatalf(lineIndex, "weight inconsistent with weight format CACHET")
		}
		v, err := strconv.Atoi(words[1])
		if err != nil {
			return fatalf(lineIndex, "var %q is not an integer", words[1])
		}
		if v <= 0 || v > f.declaredVarCount {
			return fatalf(lineIndex, "var %d inconsistent with declared var count %d", v, f.declaredVarCount)
		}
		w, err := strconv.ParseFloat(words[2], 64)
		if err != nil {
			return fatalf(lineIndex, "weight %q is not a number", words[2])
		}
		f.literalWeights[v] = w
		return nil

	case Wcnf, Wpcnf:
		if !validLen {
			format := "WCNF"
			if dialect == Wpcnf {
				format = "WPCNF"
			}
			return fatalf(lineIndex, "weight inconsistent with weight format %s", format)
		}
		lit, err := strconv.Atoi(words[1])
		if err != nil {
			return fatalf(lineIndex, "literal %q is not an integer", words[1])
		}
		v := Var(lit)
		if v <= 0 || v > f.declaredVarCount {
			return fatalf(lineIndex, "literal %d inconsistent with declared var count %d", lit, f.declaredVarCount)
		}
		w, err := strconv.ParseFloat(words[2], 64)
		if err != nil {
			return fatalf(lineIndex, "weight %q is not a number", words[2])
		}
		f.literalWeights[lit] = w
		return nil

	default:
		return fatalf(lineIndex, "weight inconsistent with weight format %s", dialect.Name())
	}
}

// parseClauseLine parses a whitespace-separated sequence of signed
// integers terminated by a trailing 0.
func parseClauseLine(lineIndex, declaredVarCount int, words []string) (Clause, error) {
	clause := make(Clause, 0, len(words)-1)
	for i, w := range words {
		num, err := strconv.Atoi(w)
		if err != nil {
			return nil, fatalf(lineIndex, "literal %q is not an integer", w)
		}
		if num > declaredVarCount || num < -declaredVarCount {
			return nil, fatalf(lineIndex, "literal %d inconsistent with declared var count %d", num, declaredVarCount)
		}
		if num == 0 {
			if i != len(words)-1 {
				return nil, fatalf(lineIndex, "clause terminated prematurely by '0'")
			}
			return clause, nil
		}
		if i == len(words)-1 {
			return nil, fatalf(lineIndex, "missing end-of-clause indicator '0'")
		}
		clause = append(clause, num)
	}
	return clause, nil
}

// completeWeights fills in literalWeights per the dialect's completion
// rule, after every line has been read.
func (f *Formula) completeWeights(dialect Dialect, minic2dWeightsLine, lineIndex int) error {
	switch dialect {
	case Minic2d:
		if minic2dWeightsLine < 0 {
			return fatalf(lineIndex, "MINIC2D weights line not found")
		}
	case Unweighted:
		for v := 1; v <= f.declaredVarCount; v++ {
			f.literalWeights[v] = 1
			f.literalWeights[-v] = 1
		}
	case Cachet:
		for v := 1; v <= f.declaredVarCount; v++ {
			p, ok := f.literalWeights[v]
			if !ok {
				p = 0.5
			}
			neg := 1 - p
			if p == -1 {
				p, neg = 1, 1
			}
			f.literalWeights[v] = p
			f.literalWeights[-v] = neg
		}
	default: // Wcnf, Wpcnf
		for v := 1; v <= f.declaredVarCount; v++ {
			if _, ok := f.literalWeights[v]; !ok {
				f.literalWeights[v] = 1
			}
			if _, ok := f.literalWeights[-v]; !ok {
				f.literalWeights[-v] = 1
			}
		}
	}
	return nil
}

// checkLiteralWeights warns, but never aborts, for any nonpositive
// weight remaining after completion.
func (f *Formula) checkLiteralWeights(r report.Reporter) {
	for v := 1; v <= f.declaredVarCount; v++ {
		for _, lit := range [2]int{v, -v} {
			if w := f.literalWeights[lit]; w <= 0 {
				r.Warnf("literal %d has weight %g", lit, w)
			}
		}
	}
}
