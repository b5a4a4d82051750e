package life

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrInvalidRule is returned for rule strings that are not valid life-like
// B/S notation or that the sparse engine cannot run.
var ErrInvalidRule = errors.New("invalid life-like rule")

// Rule is a life-like outer-totalistic rule. Bit n of birth (survive) is set
// when a dead (live) cell with n live neighbors is alive next epoch.
type Rule struct {
	birth   uint16
	survive uint16
}

// Conway is B3/S23.
var Conway = Rule{birth: 1 << 3, survive: 1<<2 | 1<<3}

// Born reports whether a dead cell with n live neighbors comes alive.
func (r Rule) Born(n int) bool { return n >= 0 && n <= 8 && r.birth&(1<<n) != 0 }

// Survives reports whether a live cell with n live neighbors stays alive.
func (r Rule) Survives(n int) bool { return n >= 0 && n <= 8 && r.survive&(1<<n) != 0 }

// String renders the rule in canonical B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.birth)
	b.WriteString("/S")
	writeCounts(&b, r.survive)
	return b.String()
}

func writeCounts(b *strings.Builder, mask uint16) {
	for n := 0; n <= 8; n++ {
		if mask&(1<<n) != 0 {
			b.WriteString(strconv.Itoa(n))
		}
	}
}

var ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Letter", Pattern: `[BS]`},
	{Name: "Digits", Pattern: `[0-9]+`},
	{Name: "Slash", Pattern: `/`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type ruleSpec struct {
	Birth   string `parser:"'B' @Digits?"`
	Survive string `parser:"'/' 'S' @Digits?"`
}

var ruleParser = participle.MustBuild[ruleSpec](
	participle.Lexer(ruleLexer),
	participle.Elide("Whitespace"),
)

// ParseRule parses B/S notation such as "B3/S23" (case-insensitive). Rules
// that give birth on zero neighbors are rejected: every empty cell on the
// plane would have to be examined each epoch.
func ParseRule(s string) (Rule, error) {
	spec, err := ruleParser.ParseString("", strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return Rule{}, fmt.Errorf("%w %q: %v", ErrInvalidRule, s, err)
	}
	birth, err := countMask(spec.Birth)
	if err != nil {
		return Rule{}, fmt.Errorf("%w %q: birth: %v", ErrInvalidRule, s, err)
	}
	survive, err := countMask(spec.Survive)
	if err != nil {
		return Rule{}, fmt.Errorf("%w %q: survive: %v", ErrInvalidRule, s, err)
	}
	if birth&1 != 0 {
		return Rule{}, fmt.Errorf("%w %q: B0 rules cannot run sparsely", ErrInvalidRule, s)
	}
	return Rule{birth: birth, survive: survive}, nil
}

func countMask(digits string) (uint16, error) {
	var mask uint16
	for _, ch := range digits {
		n := int(ch - '0')
		if n > 8 {
			return 0, fmt.Errorf("neighbor count %d out of range", n)
		}
		mask |= 1 << n
	}
	return mask, nil
}
