package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"gruberoo/internal/pkg/errs"
)

// Money is a value object representing a single-currency amount in integer
// cents. Arithmetic on cents avoids the rounding drift of floating-point
// totals, which matters because order totals are recomputed from line items
// on every read.
//
// Money is immutable: every operation returns a new value. A negative Money
// never comes out of parsing or multiplication; it can only arise from Sub,
// which reconciliation uses for the final earned amount.
//
// Example usage:
//
//	price, _ := kernel.ParseMoney("12.50")
//	subtotal := price.MulQty(3)        // 37.50
//	fmt.Println(subtotal.String())     // "37.50"
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an amount in cents.
func NewMoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// ParseMoney parses a decimal string such as "12.50", "12.5" or "12" into
// a Money. At most two fractional digits are accepted. A leading minus sign
// is accepted so persisted reconciliation figures round-trip.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	wholePart, fracPart, hasFrac := strings.Cut(s, ".")
	if wholePart == "" {
		wholePart = "0"
	}

	whole, err := strconv.ParseInt(wholePart, 10, 64)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	var frac int64
	if hasFrac {
		if len(fracPart) == 0 || len(fracPart) > 2 {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
				fmt.Errorf("%q has unsupported fractional precision", s))
		}
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
		}
		if len(fracPart) == 1 {
			frac *= 10
		}
	}

	cents := whole*100 + frac
	if negative {
		cents = -cents
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns the difference of two amounts. The result may be negative.
func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// MulQty returns the amount multiplied by a quantity.
func (m Money) MulQty(qty int) Money {
	return Money{cents: m.cents * int64(qty)}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimals, e.g. "5.00" or "-12.50".
// This is the format used by the persisted order record.
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
