// Package hbar implements the ledger's native amount type: a signed count of
// tinybars (the smallest unit) with exact conversion to and from the larger
// display units, grounded on the fixed-point amount handling spec.md §4.2
// requires (no floating-point drift is tolerable across unit conversions).
package hbar

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/ledgerkit/ledgersdk-go/status"
)

// Unit is one of the seven named denominations of hbar, each an exact power
// of ten multiple of the base unit, tinybar.
type Unit int

const (
	Tinybar Unit = iota
	Microbar
	Millibar
	Hbar
	Kilobar
	Megabar
	Gigabar
)

// tinybarsPerUnit holds the exact scale factor for each Unit, matching
// spec.md §3's unit family (10^0 .. 10^17).
var tinybarsPerUnit = map[Unit]int64{
	Tinybar:  1,
	Microbar: 100,
	Millibar: 100_000,
	Hbar:     100_000_000,
	Kilobar:  100_000_000_000,
	Megabar:  100_000_000_000_000,
	Gigabar:  100_000_000_000_000_000,
}

// symbols pairs each unit with its Unicode display glyph (spec.md §4.2).
var symbols = map[Unit]string{
	Tinybar:  "tℏ",
	Microbar: "µℏ",
	Millibar: "mℏ",
	Hbar:     "ℏ",
	Kilobar:  "kℏ",
	Megabar:  "Mℏ",
	Gigabar:  "Gℏ",
}

var symbolToUnit = func() map[string]Unit {
	m := make(map[string]Unit, len(symbols))
	for u, s := range symbols {
		m[s] = u
	}
	return m
}()

// Amount is a signed count of tinybars. The zero value is zero hbar.
type Amount struct {
	tinybars int64
}

// Zero is the additive identity.
var Zero = Amount{}

// FromTinybars constructs an Amount directly from a tinybar count.
func FromTinybars(tinybars int64) Amount {
	return Amount{tinybars: tinybars}
}

// From constructs an Amount equal to amount expressed in unit u. Construction
// fails if amount is NaN/±Inf, or if it does not represent an exact integer
// number of tinybars (e.g. 0.000000001 Hbar).
func From(amount float64, u Unit) (Amount, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Amount{}, status.New(status.KindBasicParse, "hbar amount must be finite", nil)
	}
	scale := tinybarsPerUnit[u]
	scaled := amount * float64(scale)
	rounded := math.Round(scaled)
	if math.Abs(scaled-rounded) > 1e-6 {
		return Amount{}, status.New(status.KindBasicParse, "hbar amount is not an exact integer number of tinybars", nil)
	}
	if rounded > math.MaxInt64 || rounded < math.MinInt64 {
		return Amount{}, status.New(status.KindBasicParse, "hbar amount overflows tinybar range", nil)
	}
	return Amount{tinybars: int64(rounded)}, nil
}

// Of constructs an Amount equal to value expressed in the base hbar unit
// (spec.md §8.7: `Hbar(50)` formats as "50 ℏ").
func Of(value float64) (Amount, error) {
	return From(value, Hbar)
}

// MustFrom is From, panicking on error; intended for fixed test/program constants.
func MustFrom(amount float64, u Unit) Amount {
	a, err := From(amount, u)
	if err != nil {
		panic(err)
	}
	return a
}

// AsTinybars returns the underlying tinybar count.
func (a Amount) AsTinybars() int64 { return a.tinybars }

// To converts a to an exact decimal value expressed in unit u.
func (a Amount) To(u Unit) *big.Rat {
	num := big.NewRat(a.tinybars, 1)
	den := big.NewRat(tinybarsPerUnit[u], 1)
	return num.Quo(num, den)
}

// Negated returns -a.
func (a Amount) Negated() Amount { return Amount{tinybars: -a.tinybars} }

// Plus returns a+b. Overflow is not checked: tinybar counts in practice stay
// far inside int64 range for any individual transfer.
func (a Amount) Plus(b Amount) Amount { return Amount{tinybars: a.tinybars + b.tinybars} }

// Times scales a by an integer factor.
func (a Amount) Times(factor int64) Amount { return Amount{tinybars: a.tinybars * factor} }

// String renders a using tinybar for |n| < 10000, base hbar unit otherwise,
// per spec.md §3's display rule.
func (a Amount) String() string {
	if a.tinybars > -10_000 && a.tinybars < 10_000 {
		return fmt.Sprintf("%d %s", a.tinybars, symbols[Tinybar])
	}
	r := a.To(Hbar)
	return fmt.Sprintf("%s %s", formatRat(r), symbols[Hbar])
}

func formatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.RatString()
	}
	f, _ := r.Float64()
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Parse parses "<number>[ <unit-symbol>]", defaulting to the base hbar unit
// when no symbol is present.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	parts := strings.Fields(s)
	if len(parts) == 0 || len(parts) > 2 {
		return Amount{}, status.New(status.KindBasicParse, fmt.Sprintf("cannot parse hbar amount %q", s), nil)
	}
	u := Hbar
	if len(parts) == 2 {
		unit, ok := symbolToUnit[parts[1]]
		if !ok {
			return Amount{}, status.New(status.KindBasicParse, fmt.Sprintf("unknown hbar unit symbol %q", parts[1]), nil)
		}
		u = unit
	}
	f, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Amount{}, status.New(status.KindBasicParse, fmt.Sprintf("cannot parse hbar amount %q", s), err)
	}
	return From(f, u)
}
