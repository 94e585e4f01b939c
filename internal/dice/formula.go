package dice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormula is returned when a formula cannot be parsed
var ErrInvalidFormula = errors.New("invalid dice formula")

var formulaPattern = regexp.MustCompile(`^(\d*)d(\d+)\s*(?:([+-])\s*(\d+))?$`)

// Formula is a parsed "NdS+K" expression
type Formula struct {
	Count    int
	Sides    int
	Modifier int
}

// ParseFormula parses expressions like "1d20", "d6", "2d10+1" or a bare constant
func ParseFormula(expr string) (Formula, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if expr == "" {
		return Formula{}, ErrInvalidFormula
	}

	// A bare number is a constant roll
	if n, err := strconv.Atoi(expr); err == nil {
		return Formula{Modifier: n}, nil
	}

	m := formulaPattern.FindStringSubmatch(expr)
	if m == nil {
		return Formula{}, fmt.Errorf("%w: %q", ErrInvalidFormula, expr)
	}

	count := 1
	if m[1] != "" {
		count, _ = strconv.Atoi(m[1])
	}
	sides, _ := strconv.Atoi(m[2])
	if count < 1 || sides < 1 {
		return Formula{}, fmt.Errorf("%w: %q", ErrInvalidFormula, expr)
	}

	mod := 0
	if m[4] != "" {
		mod, _ = strconv.Atoi(m[4])
		if m[3] == "-" {
			mod = -mod
		}
	}

	return Formula{Count: count, Sides: sides, Modifier: mod}, nil
}

// Roll evaluates the formula and returns its total
func (f Formula) Roll(r Roller) int {
	total := f.Modifier
	for i := 0; i < f.Count; i++ {
		total += r.Roll(f.Sides)
	}
	return total
}

// String renders the formula back to dice notation
func (f Formula) String() string {
	if f.Count == 0 {
		return strconv.Itoa(f.Modifier)
	}

	s := fmt.Sprintf("%dd%d", f.Count, f.Sides)
	switch {
	case f.Modifier > 0:
		s += fmt.Sprintf("+%d", f.Modifier)
	case f.Modifier < 0:
		s += fmt.Sprintf("%d", f.Modifier)
	}
	return s
}
