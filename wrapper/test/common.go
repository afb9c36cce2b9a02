package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/cert"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/client"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/env"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/svc"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/token"
	"github.com/VaultaFoundation/vaulta-system-contract/market/sim"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/app"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/model"
)

// Contract is the account the test contract is deployed at.
const Contract chain.Name = "core.vaulta"

// MaxSupply is the maximum supply the test contract is initialized with.
const MaxSupply = "2100000000.0000 XYZ"

// Node represents a test node serving the contract API.
type Node struct {
	Server   *httptest.Server
	Ctx      context.Context
	Env      *env.Env
	Contract *wrapper.Contract
	Market   *sim.System
}

// User is an API user authenticating as the account of the same name.
type User struct {
	Username chain.Name
	Password string
}

// CreateNode creates a new test node served over TLS with an in-memory DB, the
// native currency and markets seeded. The contract is not initialized.
func CreateNode(
	t *testing.T,
) *Node {
	cfg := &app.Config{
		Env:          "qa",
		DSN:          "sqlite3://:memory:",
		Host:         "127.0.0.1",
		Contract:     string(Contract),
		NativeLedger: "eosio.token",
		NativeSymbol: "4,EOS",
		Market:       "eosio",
	}
	require.NoError(t, cfg.Validate())

	ctx, err := app.BackgroundContextFromConfig(cfg)
	require.NoError(t, err)
	require.NoError(t, app.Bootstrap(ctx, ""))

	mux, err := app.Build(ctx)
	require.NoError(t, err)

	config, err := cert.TLSConfig(ctx, cfg.Host, "", "")
	require.NoError(t, err)
	server := httptest.NewUnstartedServer(mux)
	server.TLS = config
	server.StartTLS()

	n := &Node{
		Server:   server,
		Ctx:      ctx,
		Env:      env.Get(ctx),
		Contract: wrapper.Get(ctx),
		Market:   wrapper.Get(ctx).Market.(*sim.System),
	}
	t.Cleanup(func() {
		n.Server.Close()
		db.GetDB(ctx).Close()
	})

	return n
}

// CreateInitializedNode creates a test node and initializes the contract
// through the API.
func CreateInitializedNode(
	t *testing.T,
) *Node {
	n := CreateNode(t)
	self := n.CreateUser(t, Contract, "")
	status, raw := n.Action(t, self, "init", url.Values{
		"maximum_supply": {MaxSupply},
	})
	require.Equal(t, http.StatusOK, status, "init: %v", raw)
	return n
}

// CreateUser creates a user for account, funding it with fund native
// currency if not empty.
func (n *Node) CreateUser(
	t *testing.T,
	account chain.Name,
	fund string,
) *User {
	password := token.New("password")
	err := db.Transact(n.Ctx, func(ctx context.Context) error {
		if _, err := model.CreateUser(ctx, string(account), password); err != nil {
			return errors.Trace(err)
		}
		if fund == "" {
			return nil
		}
		return errors.Trace(app.Fund(ctx, account, chain.MustParseAsset(fund)))
	})
	require.NoError(t, err)

	return &User{
		Username: account,
		Password: password,
	}
}

func (n *Node) do(
	t *testing.T,
	user *User,
	req *http.Request,
) (int, svc.Resp) {
	if user != nil {
		req.SetBasicAuth(string(user.Username), user.Password)
	}

	r, err := client.Default(n.Ctx).Do(req)
	require.NoError(t, err)
	defer r.Body.Close()

	var raw svc.Resp
	require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))

	return r.StatusCode, raw
}

// Post performs a POST request to the node.
func (n *Node) Post(
	t *testing.T,
	user *User,
	path string,
	params url.Values,
) (int, svc.Resp) {
	req, err := http.NewRequest("POST",
		n.Server.URL+path, strings.NewReader(params.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return n.do(t, user, req)
}

// Get performs a GET request to the node.
func (n *Node) Get(
	t *testing.T,
	user *User,
	path string,
) (int, svc.Resp) {
	req, err := http.NewRequest("GET", n.Server.URL+path, nil)
	require.NoError(t, err)

	return n.do(t, user, req)
}

// Action executes a contract action as user.
func (n *Node) Action(
	t *testing.T,
	user *User,
	action string,
	params url.Values,
) (int, svc.Resp) {
	return n.Post(t, user, "/actions/"+action, params)
}

// Balances retrieves the balances of owner as strings, native first.
func (n *Node) Balances(
	t *testing.T,
	owner chain.Name,
) (string, string) {
	status, raw := n.Get(t, nil, "/balances/"+string(owner))
	require.Equal(t, http.StatusOK, status)

	var b wrapper.BalancesResource
	require.NoError(t, raw.Extract("balances", &b))

	native, wrapped := "0.0000 EOS", "0.0000 XYZ"
	for _, a := range b.Native {
		if a.Symbol.Code == "EOS" {
			native = a.String()
		}
	}
	for _, a := range b.Wrapped {
		wrapped = a.String()
	}
	return native, wrapped
}

// Reserve retrieves the backing report.
func (n *Node) Reserve(
	t *testing.T,
) wrapper.Reserve {
	status, raw := n.Get(t, nil, "/reserve")
	require.Equal(t, http.StatusOK, status)

	var r wrapper.Reserve
	require.NoError(t, raw.Extract("reserve", &r))
	return r
}

// LastAction retrieves the last audited action.
func (n *Node) LastAction(
	t *testing.T,
) string {
	status, raw := n.Get(t, nil, "/audit")
	require.Equal(t, http.StatusOK, status)

	var a wrapper.AuditResource
	require.NoError(t, raw.Extract("audit", &a))
	return a.LastAction
}

// Error extracts the error of a failed response.
func Error(
	t *testing.T,
	raw svc.Resp,
) errors.ConcreteUserError {
	var e errors.ConcreteUserError
	require.NoError(t, raw.Extract("error", &e))
	return e
}
