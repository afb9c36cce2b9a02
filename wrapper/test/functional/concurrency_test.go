package functional

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/test"
)

func TestConcurrentActionsKeepBacking(
	t *testing.T,
) {
	t.Parallel()
	n := test.CreateInitializedNode(t)

	users := []*test.User{}
	for i := 1; i <= 5; i++ {
		users = append(users,
			wrapped(t, n, chain.Name(fmt.Sprintf("user%d", i)), "20.0000 EOS"))
	}

	// Each user runs a sequence of actions while the others do the same.
	sequence := []struct {
		action string
		params func(account string) url.Values
	}{
		{"buyram", func(a string) url.Values {
			return url.Values{"payer": {a}, "receiver": {a}, "quant": {"1.0000 XYZ"}}
		}},
		{"powerup", func(a string) url.Values {
			return url.Values{
				"payer": {a}, "receiver": {a}, "days": {"1"},
				"net_frac": {"1"}, "cpu_frac": {"1"}, "max_payment": {"3.0000 XYZ"},
			}
		}},
		{"transfer", func(a string) url.Values {
			return url.Values{"from": {a}, "to": {"core.vaulta"}, "quantity": {"2.0000 XYZ"}}
		}},
		{"sellram", func(a string) url.Values {
			return url.Values{"account": {a}, "bytes": {"1000"}}
		}},
	}

	var g errgroup.Group
	for _, u := range users {
		u := u
		g.Go(func() error {
			for _, s := range sequence {
				status, raw := n.Action(t, u, s.action, s.params(string(u.Username)))
				if status != http.StatusOK {
					return errors.Newf("%s %s: %d %v", u.Username, s.action, status, raw)
				}
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())

	assertBacked(t, n)
	for _, u := range users {
		native, _ := n.Balances(t, u.Username)
		assert.Equal(t, "82.0000 EOS", native, u.Username)
	}
}
