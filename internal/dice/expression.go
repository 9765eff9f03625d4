package dice

import (
	"errors"
	"strconv"
	"strings"
)

// Expression is a parsed dice expression like "2d6+3", "1d8" or "-1d5".
// A leading minus negates the whole result, which spell data uses for
// reductions ("-1d5" rolls 1..5 and yields -5..-1). A plain integer
// parses as a flat value with no dice.
type Expression struct {
	Count    int
	Sides    int
	Bonus    int
	Flat     int
	Negative bool
	IsFlat   bool
}

// Parse parses a dice expression string
func Parse(expr string) (Expression, error) {
	s := strings.ToLower(strings.TrimSpace(expr))
	if s == "" {
		return Expression{}, errors.New("empty dice expression")
	}

	var out Expression
	if strings.HasPrefix(s, "-") {
		out.Negative = true
		s = s[1:]
	} else {
		s = strings.TrimPrefix(s, "+")
	}

	if !strings.Contains(s, "d") {
		flat, err := strconv.Atoi(s)
		if err != nil {
			return Expression{}, errors.New("invalid dice expression: " + expr)
		}
		out.IsFlat = true
		out.Flat = flat
		return out, nil
	}

	dicePart := s
	if idx := strings.IndexAny(s[1:], "+-"); idx >= 0 {
		idx++ // offset for the skipped first rune
		bonus, err := strconv.Atoi(s[idx:])
		if err != nil {
			return Expression{}, errors.New("invalid dice expression: " + expr)
		}
		out.Bonus = bonus
		dicePart = s[:idx]
	}

	parts := strings.Split(dicePart, "d")
	if len(parts) != 2 {
		return Expression{}, errors.New("invalid dice expression: " + expr)
	}

	count, err := strconv.Atoi(parts[0])
	if err != nil {
		return Expression{}, errors.New("invalid dice expression: " + expr)
	}
	sides, err := strconv.Atoi(parts[1])
	if err != nil {
		return Expression{}, errors.New("invalid dice expression: " + expr)
	}
	if count < 1 || sides < 1 {
		return Expression{}, errors.New("invalid dice expression: " + expr)
	}

	out.Count = count
	out.Sides = sides
	return out, nil
}

// Roll evaluates the expression with the given roller
func (e Expression) Roll(r Roller) (int, error) {
	if e.IsFlat {
		if e.Negative {
			return -e.Flat, nil
		}
		return e.Flat, nil
	}

	result, err := r.Roll(e.Count, e.Sides, e.Bonus)
	if err != nil {
		return 0, err
	}
	if e.Negative {
		return -result.Total, nil
	}
	return result.Total, nil
}

// RollString parses and evaluates a dice expression in one step
func RollString(r Roller, expr string) (int, error) {
	e, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return e.Roll(r)
}
