package chain

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmount is the maximum absolute amount an asset can carry (2^62 - 1).
const MaxAmount int64 = (1 << 62) - 1

var amountRegexp = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// Asset is a fixed-point quantity of a currency. Amount is expressed in the
// smallest unit of the symbol (10^-Precision).
type Asset struct {
	Amount int64
	Symbol Symbol
}

// NewAsset returns an asset of the provided amount (in smallest units).
func NewAsset(
	amount int64,
	symbol Symbol,
) Asset {
	return Asset{Amount: amount, Symbol: symbol}
}

// ParseAsset parses an asset of the form `10.0000 EOS`. The number of
// decimals defines the precision of the symbol.
func ParseAsset(
	s string,
) (Asset, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 || !amountRegexp.MatchString(parts[0]) {
		return Asset{}, Invalidf("invalid asset: %q", s)
	}

	precision := 0
	if i := strings.Index(parts[0], "."); i >= 0 {
		precision = len(parts[0]) - i - 1
	}
	if precision > int(MaxPrecision) {
		return Asset{}, Invalidf("invalid asset precision: %q", s)
	}
	sym := Symbol{Code: parts[1], Precision: uint8(precision)}
	if !sym.IsValid() {
		return Asset{}, Invalidf("invalid asset symbol: %q", s)
	}

	d, err := decimal.NewFromString(parts[0])
	if err != nil {
		return Asset{}, Invalidf("invalid asset amount: %q", s)
	}
	units := d.Shift(int32(precision))
	max := decimal.NewFromInt(MaxAmount)
	if units.Abs().GreaterThan(max) {
		return Asset{}, Invalidf("asset amount out of range: %q", s)
	}

	return Asset{Amount: units.IntPart(), Symbol: sym}, nil
}

// MustParseAsset is like ParseAsset but panics on error.
func MustParseAsset(
	s string,
) Asset {
	a, err := ParseAsset(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the asset amount as a decimal in symbol units.
func (a Asset) Decimal() decimal.Decimal {
	return decimal.New(a.Amount, -int32(a.Symbol.Precision))
}

func (a Asset) String() string {
	return a.Decimal().StringFixed(int32(a.Symbol.Precision)) +
		" " + a.Symbol.Code
}

// IsValid returns whether the amount is in range and the symbol well formed.
func (a Asset) IsValid() bool {
	return a.Amount >= -MaxAmount && a.Amount <= MaxAmount &&
		a.Symbol.IsValid()
}

// IsPositive returns whether the amount is strictly positive.
func (a Asset) IsPositive() bool {
	return a.Amount > 0
}

// Add returns a + b. Symbols must match and the result must stay in range.
func (a Asset) Add(
	b Asset,
) (Asset, error) {
	if a.Symbol != b.Symbol {
		return Asset{}, Invalidf("attempt to add asset with different symbol")
	}
	sum := a.Amount + b.Amount
	if sum < -MaxAmount {
		return Asset{}, Invalidf("addition underflow")
	}
	if sum > MaxAmount {
		return Asset{}, Invalidf("addition overflow")
	}
	return Asset{Amount: sum, Symbol: a.Symbol}, nil
}

// Sub returns a - b. Symbols must match and the result must stay in range.
func (a Asset) Sub(
	b Asset,
) (Asset, error) {
	if a.Symbol != b.Symbol {
		return Asset{}, Invalidf("attempt to subtract asset with different symbol")
	}
	diff := a.Amount - b.Amount
	if diff < -MaxAmount {
		return Asset{}, Invalidf("subtraction underflow")
	}
	if diff > MaxAmount {
		return Asset{}, Invalidf("subtraction overflow")
	}
	return Asset{Amount: diff, Symbol: a.Symbol}, nil
}

// Convert re-denominates the asset in the provided symbol at a 1:1 rate. Both
// symbols must carry the same precision so that no unit is lost.
func (a Asset) Convert(
	to Symbol,
) (Asset, error) {
	if a.Symbol.Precision != to.Precision {
		return Asset{}, Invalidf(
			"cannot convert %s to %s: precision mismatch", a.Symbol, to)
	}
	return Asset{Amount: a.Amount, Symbol: to}, nil
}

// MarshalJSON renders the asset as its string representation.
func (a Asset) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON parses an asset from its string representation.
func (a *Asset) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseAsset(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
