package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DieMarker separates the multiplier from the die size in dice notation.
const DieMarker = 'd'

// Placeholder words rendered in place of externally supplied components.
const (
	placeholderMultiplier = "multiplier"
	placeholderModifier   = "modifier"
)

// ErrMalformedFormula is returned by Parse when text is not dice notation.
var ErrMalformedFormula = errors.New("malformed dice formula")

// Operator is the arithmetic applied to a formula's modifier.
type Operator string

const (
	OpNone     Operator = ""
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
)

// Term is a single numeric component of a formula: either a literal integer
// or a placeholder for a value the source text templates in at display time
// (for example the caster's slot level in "{scale}d6"). External terms carry
// no value and contribute nothing to a roll.
type Term struct {
	Value    int  `json:"value"`
	External bool `json:"external,omitempty"`
}

// LiteralTerm returns a Term carrying a literal value.
func LiteralTerm(v int) Term {
	return Term{Value: v}
}

// ExternalTerm returns a Term whose value is supplied outside the formula.
func ExternalTerm() Term {
	return Term{External: true}
}

// Formula is a parsed dice expression such as "2d6+3". A Formula is
// immutable once parsed; rolling draws samples from the supplied Roller and
// never mutates the formula, so one Formula may be rolled concurrently.
type Formula struct {
	Multiplier Term     `json:"multiplier"`
	Die        int      `json:"die"`
	Operator   Operator `json:"operator,omitempty"`
	Modifier   Term     `json:"modifier"`
}

// Parse parses dice notation of the form "[multiplier]d<size>[+|-modifier]".
// The multiplier defaults to 1 when absent. A multiplier or modifier written
// as a "{...}" template token parses as an external Term. Parse returns an
// error wrapping ErrMalformedFormula when text contains no die marker, more
// than one, a marker not followed by a digit, or a component that is neither
// an integer nor a template token.
func Parse(text string) (*Formula, error) {
	if strings.Count(text, string(DieMarker)) > 1 {
		return nil, fmt.Errorf("%w: multiple %q in %q", ErrMalformedFormula, DieMarker, text)
	}

	marker := strings.IndexByte(text, DieMarker)
	if marker == -1 {
		return nil, fmt.Errorf("%w: no %q in %q", ErrMalformedFormula, DieMarker, text)
	}
	if marker == len(text)-1 || !isDigit(text[marker+1]) {
		return nil, fmt.Errorf("%w: %q not followed by a die size in %q", ErrMalformedFormula, DieMarker, text)
	}

	multiplier, err := parseMultiplier(text[:marker])
	if err != nil {
		return nil, err
	}

	die, op, modifier, err := parseDieAndModifier(text[marker+1:])
	if err != nil {
		return nil, err
	}

	return &Formula{
		Multiplier: multiplier,
		Die:        die,
		Operator:   op,
		Modifier:   modifier,
	}, nil
}

// MustParse is Parse that panics on error, for formulas known at compile
// time.
func MustParse(text string) *Formula {
	f, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return f
}

func parseMultiplier(s string) (Term, error) {
	if s == "" {
		return LiteralTerm(1), nil
	}
	if strings.ContainsRune(s, '{') {
		return ExternalTerm(), nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Term{}, fmt.Errorf("%w: multiplier %q is not a number or template token", ErrMalformedFormula, s)
	}
	if v < 1 {
		return Term{}, fmt.Errorf("%w: multiplier %d is not positive", ErrMalformedFormula, v)
	}
	return LiteralTerm(v), nil
}

// parseDieAndModifier splits the text after the die marker at the first "+"
// or "-". Everything before the split is the die size, everything after is
// the modifier, so a modifier may itself be negative ("1d4+-1").
func parseDieAndModifier(s string) (die int, op Operator, modifier Term, err error) {
	dieText := s
	modText := ""
	if before, after, found := strings.Cut(s, string(OpAdd)); found {
		dieText, modText, op = before, after, OpAdd
	} else if before, after, found := strings.Cut(s, string(OpSubtract)); found {
		dieText, modText, op = before, after, OpSubtract
	}

	die, convErr := strconv.Atoi(strings.TrimSpace(dieText))
	if convErr != nil {
		return 0, OpNone, Term{}, fmt.Errorf("%w: die size %q is not a number", ErrMalformedFormula, dieText)
	}
	if die < 1 {
		return 0, OpNone, Term{}, fmt.Errorf("%w: die size %d is not positive", ErrMalformedFormula, die)
	}
	if op == OpNone {
		return die, op, Term{}, nil
	}

	if strings.ContainsRune(modText, '{') {
		return die, op, ExternalTerm(), nil
	}
	v, convErr := strconv.Atoi(strings.TrimSpace(modText))
	if convErr != nil {
		return 0, OpNone, Term{}, fmt.Errorf("%w: modifier %q is not a number or template token", ErrMalformedFormula, modText)
	}
	return die, op, LiteralTerm(v), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// String renders the formula in canonical notation. External components
// render as the words "multiplier" and "modifier", so "{scale}d6" comes back
// as "multiplier*d6". The output is diagnostic, not necessarily the text
// Parse consumed.
func (f *Formula) String() string {
	var b strings.Builder
	if f.Multiplier.External {
		b.WriteString(placeholderMultiplier)
		b.WriteByte('*')
	} else {
		b.WriteString(strconv.Itoa(f.Multiplier.Value))
	}
	b.WriteByte(DieMarker)
	b.WriteString(strconv.Itoa(f.Die))
	if f.Operator != OpNone {
		b.WriteString(string(f.Operator))
		if f.Modifier.External {
			b.WriteString(placeholderModifier)
		} else {
			b.WriteString(strconv.Itoa(f.Modifier.Value))
		}
	}
	return b.String()
}

// Roll evaluates the formula once using r for randomness. An external
// multiplier rolls zero dice and an external modifier applies as zero, so a
// partially templated formula still yields a (degenerate) result rather
// than an error.
func (f *Formula) Roll(r Roller) (*RollResult, error) {
	count := f.Multiplier.Value
	if f.Multiplier.External {
		count = 0
	}

	samples, err := r.Roll(count, f.Die)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, s := range samples {
		total += s
	}
	if !f.Modifier.External {
		switch f.Operator {
		case OpAdd:
			total += f.Modifier.Value
		case OpSubtract:
			total -= f.Modifier.Value
		}
	}

	return &RollResult{
		Samples:  samples,
		Total:    total,
		Operator: f.Operator,
		Modifier: f.Modifier,
	}, nil
}

// RollTotal rolls the formula and returns only the numeric total.
func (f *Formula) RollTotal(r Roller) (int, error) {
	result, err := f.Roll(r)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

// RollText rolls the formula and returns the per-die breakdown text.
func (f *Formula) RollText(r Roller) (string, error) {
	result, err := f.Roll(r)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

// RollResult holds one evaluation of a formula: the individual die samples
// in roll order and the total after the modifier.
type RollResult struct {
	Samples  []int
	Total    int
	Operator Operator
	Modifier Term
}

// Text renders the result as a total followed by the bracketed samples,
// e.g. "12 ([3]+[4] + 5)". External modifiers are omitted from the
// breakdown just as they are omitted from the total.
func (r *RollResult) Text() string {
	parts := make([]string, len(r.Samples))
	for i, s := range r.Samples {
		parts[i] = "[" + strconv.Itoa(s) + "]"
	}
	breakdown := strings.Join(parts, "+")
	if r.Operator != OpNone && !r.Modifier.External {
		breakdown = fmt.Sprintf("%s %s %d", breakdown, r.Operator, r.Modifier.Value)
	}
	return fmt.Sprintf("%d (%s)", r.Total, breakdown)
}
