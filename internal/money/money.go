package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative money value in minor units (kopecks).
// All arithmetic happens on the integer amount; formatting is display-only.
type Amount int64

const Symbol = "₽"

var ErrInvalidAmount = errors.New("invalid money amount")

var stripReplacer = strings.NewReplacer(
	Symbol, "",
	"RUB", "",
	"руб.", "",
	" ", "", // non-breaking space
	" ", "", // narrow non-breaking space
	" ", "",
)

// Parse converts a possibly formatted price string ("1 600 ₽", "1600,50")
// into minor units. Currency symbols and thousand separators are stripped
// deterministically; a lone comma is treated as the decimal separator.
func Parse(raw string) (Amount, error) {
	s := stripReplacer.Replace(strings.TrimSpace(raw))
	if s == "" {
		return 0, fmt.Errorf("%w: empty value %q", ErrInvalidAmount, raw)
	}

	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") {
			// "1,600.50" style: comma is a thousands separator
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: negative value %q", ErrInvalidAmount, raw)
	}

	minor := d.Mul(decimal.NewFromInt(100))
	if !minor.IsInteger() {
		return 0, fmt.Errorf("%w: sub-minor precision in %q", ErrInvalidAmount, raw)
	}

	return Amount(minor.IntPart()), nil
}

// FromMajor builds an Amount from whole currency units.
func FromMajor(units int64) Amount {
	return Amount(units * 100)
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

// MulQty scales the amount by a line item quantity.
func (a Amount) MulQty(qty int) Amount {
	return a * Amount(qty)
}

// Format renders the amount for display: thousands grouped with spaces,
// kopecks shown only when non-zero, e.g. "1 600 ₽" or "1 600.50 ₽".
func (a Amount) Format() string {
	major := int64(a) / 100
	kopecks := int64(a) % 100

	grouped := groupThousands(strconv.FormatInt(major, 10))
	if kopecks == 0 {
		return grouped + " " + Symbol
	}
	return fmt.Sprintf("%s.%02d %s", grouped, kopecks, Symbol)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
