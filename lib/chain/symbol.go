package chain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MaxPrecision is the maximum precision of a symbol.
	MaxPrecision uint8 = 18
)

// SymbolCodeRegexp is used to validate symbol codes.
var SymbolCodeRegexp = regexp.MustCompile("^[A-Z]{1,7}$")

// Symbol is a currency symbol: a code and the number of decimals amounts of
// that currency carry.
type Symbol struct {
	Code      string
	Precision uint8
}

// NewSymbol returns a symbol for the provided code and precision.
func NewSymbol(
	code string,
	precision uint8,
) Symbol {
	return Symbol{Code: code, Precision: precision}
}

// ParseSymbol parses a symbol of the form `4,EOS`.
func ParseSymbol(
	s string,
) (Symbol, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Symbol{}, Invalidf("invalid symbol: %q", s)
	}
	p, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Symbol{}, Invalidf("invalid symbol precision: %q", s)
	}
	sym := Symbol{Code: parts[1], Precision: uint8(p)}
	if !sym.IsValid() {
		return Symbol{}, Invalidf("invalid symbol: %q", s)
	}
	return sym, nil
}

// IsValid returns whether the symbol code and precision are well formed.
func (s Symbol) IsValid() bool {
	return SymbolCodeRegexp.MatchString(s.Code) && s.Precision <= MaxPrecision
}

func (s Symbol) String() string {
	return fmt.Sprintf("%d,%s", s.Precision, s.Code)
}
