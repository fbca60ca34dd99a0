package housing

import "fmt"

// IncomeBracket is a discretized applicant income.
type IncomeBracket string

// Income brackets, in increasing order. Incomes are in thousands of dollars.
const (
	IncomeUnder50  IncomeBracket = "<$50K"
	Income50To75   IncomeBracket = "$50-75K"
	Income75To100  IncomeBracket = "$75-100K"
	Income100To150 IncomeBracket = "$100-150K"
	Income150AndUp IncomeBracket = "$150K+"
)

// bracketThresholds are the exclusive upper bounds of all brackets but the last.
var bracketThresholds = []struct {
	below   float64
	bracket IncomeBracket
}{
	{50, IncomeUnder50},
	{75, Income50To75},
	{100, Income75To100},
	{150, Income100To150},
}

// IncomeBrackets returns all brackets in increasing order.
func IncomeBrackets() []IncomeBracket {
	return []IncomeBracket{IncomeUnder50, Income50To75, Income75To100, Income100To150, Income150AndUp}
}

// IncomeBracketOf classifies an income in thousands of dollars. Each bound
// belongs to the bracket above it: 50 is in "$50-75K". NaN compares false to
// every bound and falls in the last bracket.
func IncomeBracketOf(income float64) IncomeBracket {
	for _, t := range bracketThresholds {
		if income < t.below {
			return t.bracket
		}
	}
	return Income150AndUp
}

// ParseIncomeBracket returns the bracket labelled s.
func ParseIncomeBracket(s string) (IncomeBracket, error) {
	for _, b := range IncomeBrackets() {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown income bracket %q", s)
}

// Rank returns the position of the bracket in increasing order, or -1 for an
// unknown bracket.
func (b IncomeBracket) Rank() int {
	for i, x := range IncomeBrackets() {
		if x == b {
			return i
		}
	}
	return -1
}

func (b IncomeBracket) String() string { return string(b) }

// AddIncomeBrackets returns a copy of data where every record also holds its
// income bracket, derived from the income field. Records of data are not
// modified.
func AddIncomeBrackets(data Dataset) Dataset {
	return data.Map(func(r Record) Record {
		return r.With(FieldIncomeBracket, string(IncomeBracketOf(r.Number(FieldIncome))))
	})
}
