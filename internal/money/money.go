// Package money parses user-entered amounts written with the Brazilian
// decimal comma and formats values as Real for display. Arithmetic always
// happens on decimal.Decimal.
package money

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal accepts "12,50", "1.234,56", "R$ 10,00" and plain dot-decimal
// text such as "12.5". Empty or unparseable input yields zero.
func ParseDecimal(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if s == "" {
		return decimal.Zero
	}

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// MaxQuantity bounds a single piece count so grid totals cannot overflow.
const MaxQuantity = 1_000_000

var maxQuantity = decimal.NewFromInt(MaxQuantity)

// ParseQuantity reads a piece count. Fractions are truncated. Negative,
// invalid or values above MaxQuantity become zero.
func ParseQuantity(raw string) int {
	d := ParseDecimal(raw)
	if d.IsNegative() || d.GreaterThan(maxQuantity) {
		return 0
	}
	return int(d.IntPart())
}

// FormatBRL renders "R$ 1.234,56".
func FormatBRL(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + "R$ " + FormatInput(d)
}

// FormatInput renders the amount the way the form fields expect it typed:
// "1.234,56".
func FormatInput(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, frac, _ := strings.Cut(fixed, ".")
	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	out := grouped.String() + "," + frac
	if neg {
		return "-" + out
	}
	return out
}

// Input is a numeric form value that may arrive as a JSON string ("12,50")
// or a JSON number (12.5).
type Input string

func (in *Input) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*in = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*in = Input(s)
		return nil
	}
	*in = Input(data)
	return nil
}

func (in Input) Decimal() decimal.Decimal {
	return ParseDecimal(string(in))
}

func (in Input) Quantity() int {
	return ParseQuantity(string(in))
}

func (in Input) IsBlank() bool {
	return strings.TrimSpace(string(in)) == ""
}
