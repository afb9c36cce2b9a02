package chain

import (
	"regexp"
)

// NameRegexp is used to validate account names.
var NameRegexp = regexp.MustCompile("^[a-z1-5.]{0,11}[a-z1-5]$")

// Name is an account name. Names are 1 to 12 characters long, drawn from
// `a-z`, `1-5` and `.`, and cannot end with a `.`.
type Name string

// NewName validates and returns the provided name.
func NewName(
	s string,
) (Name, error) {
	n := Name(s)
	if !n.IsValid() {
		return "", Invalidf("invalid account name: %q", s)
	}
	return n, nil
}

// IsValid returns whether the name is well formed.
func (n Name) IsValid() bool {
	return NameRegexp.MatchString(string(n))
}

func (n Name) String() string {
	return string(n)
}
