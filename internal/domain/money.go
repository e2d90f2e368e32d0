package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in euro cents. It marshals as a decimal string with two
// fraction digits, matching how fares are published ("89.00").
type Money int64

// maxCents is 2^63, the first float64 that no longer fits in an int64.
const maxCents = float64(math.MaxInt64)

func Cents(c int64) Money { return Money(c) }

// ParseMoney accepts "89", "89.5" and "89.00".
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount: %w", ErrInvalidInput)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("amount %q: %w", s, ErrInvalidInput)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative amount %q: %w", s, ErrInvalidInput)
	}
	cents := math.Round(f * 100)
	if cents >= maxCents {
		return 0, fmt.Errorf("amount %q out of range: %w", s, ErrInvalidInput)
	}
	return Money(cents), nil
}

func (m Money) Mul(n int) Money { return m * Money(n) }

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	raw = strings.Trim(raw, `"`)
	parsed, err := ParseMoney(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
