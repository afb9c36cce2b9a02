package endpoint

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/ledger"
)

// params reads action parameters from the request form. The first invalid
// parameter is kept in err and subsequent reads are no-ops.
type params struct {
	r   *http.Request
	err error
}

func (p *params) invalid(
	err error,
	key string,
	kind string,
) {
	if p.err != nil {
		return
	}
	p.err = errors.Trace(errors.NewUserErrorf(err,
		400, key+"_invalid",
		"The %s you provided is invalid: %q. Expected %s.",
		key, p.r.PostFormValue(key), kind,
	))
}

// Name reads an account name.
func (p *params) Name(
	key string,
) chain.Name {
	if p.err != nil {
		return ""
	}
	n, err := chain.NewName(p.r.PostFormValue(key))
	if err != nil {
		p.invalid(err, key, "an account name")
		return ""
	}
	return n
}

// Names reads a comma separated list of account names, possibly empty.
func (p *params) Names(
	key string,
) []chain.Name {
	res := []chain.Name{}
	if p.err != nil {
		return res
	}
	v := strings.TrimSpace(p.r.PostFormValue(key))
	if v == "" {
		return res
	}
	for _, s := range strings.Split(v, ",") {
		n, err := chain.NewName(strings.TrimSpace(s))
		if err != nil {
			p.invalid(err, key, "a comma separated list of account names")
			return res
		}
		res = append(res, n)
	}
	return res
}

// OptionalName reads an account name, empty if absent.
func (p *params) OptionalName(
	key string,
) chain.Name {
	if p.r.PostFormValue(key) == "" {
		return ""
	}
	return p.Name(key)
}

// Asset reads a quantity of the form `1.0000 XYZ`.
func (p *params) Asset(
	key string,
) chain.Asset {
	if p.err != nil {
		return chain.Asset{}
	}
	a, err := chain.ParseAsset(p.r.PostFormValue(key))
	if err != nil {
		p.invalid(err, key, "an asset of the form `1.0000 XYZ`")
		return chain.Asset{}
	}
	return a
}

// Symbol reads a symbol of the form `4,XYZ`.
func (p *params) Symbol(
	key string,
) chain.Symbol {
	if p.err != nil {
		return chain.Symbol{}
	}
	s, err := chain.ParseSymbol(p.r.PostFormValue(key))
	if err != nil {
		p.invalid(err, key, "a symbol of the form `4,XYZ`")
		return chain.Symbol{}
	}
	return s
}

// Int64 reads a signed integer.
func (p *params) Int64(
	key string,
) int64 {
	if p.err != nil {
		return 0
	}
	i, err := strconv.ParseInt(p.r.PostFormValue(key), 10, 64)
	if err != nil {
		p.invalid(err, key, "an integer")
		return 0
	}
	return i
}

// Uint32 reads an unsigned 32 bits integer.
func (p *params) Uint32(
	key string,
) uint32 {
	if p.err != nil {
		return 0
	}
	i, err := strconv.ParseUint(p.r.PostFormValue(key), 10, 32)
	if err != nil {
		p.invalid(err, key, "a positive integer")
		return 0
	}
	return uint32(i)
}

// Bool reads a boolean, false if absent.
func (p *params) Bool(
	key string,
) bool {
	if p.err != nil {
		return false
	}
	v := p.r.PostFormValue(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.invalid(err, key, "a boolean")
		return false
	}
	return b
}

// Memo reads a memo, checking its size.
func (p *params) Memo(
	key string,
) string {
	if p.err != nil {
		return ""
	}
	m := p.r.PostFormValue(key)
	if len(m) > ledger.MaxMemoSize {
		p.invalid(nil, key, "a memo of at most 256 bytes")
		return ""
	}
	return m
}
