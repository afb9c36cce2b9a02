package ledger

import (
	"context"
	"testing"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eos = chain.NewSymbol("EOS", 4)

func setupLedger(
	t *testing.T,
) (context.Context, *Ledger) {
	ctx := context.Background()

	ledgerDB, err := db.NewSqlite3DBInMemory(ctx)
	require.NoError(t, err)
	require.NoError(t, db.CreateDBTables(ctx, ledgerDB, "ledger"))
	t.Cleanup(func() { ledgerDB.Close() })
	ctx = db.WithDB(ctx, ledgerDB)

	l := New("eosio.token")
	require.NoError(t, l.Create(
		chain.WithAuthority(ctx, "eosio.token"),
		"eosio", chain.MustParseAsset("1000000.0000 EOS")))
	require.NoError(t, l.Issue(
		chain.WithAuthority(ctx, "eosio"),
		"eosio", chain.MustParseAsset("1000.0000 EOS"), ""))
	require.NoError(t, l.Transfer(
		chain.WithAuthority(ctx, "eosio"),
		"eosio", "alice", chain.MustParseAsset("100.0000 EOS"), ""))

	return ctx, l
}

type recorder struct {
	transfers []string
	err       error
}

func (r *recorder) OnTransfer(
	ctx context.Context,
	ledger chain.Name,
	from chain.Name,
	to chain.Name,
	quantity chain.Asset,
	memo string,
) error {
	r.transfers = append(r.transfers,
		string(ledger)+":"+string(from)+">"+string(to)+":"+quantity.String())
	return r.err
}

func balance(
	t *testing.T,
	ctx context.Context,
	l *Ledger,
	owner chain.Name,
) string {
	b, err := l.Balance(ctx, owner, eos)
	require.NoError(t, err)
	return b.String()
}

func TestCreate(
	t *testing.T,
) {
	t.Parallel()
	ctx, l := setupLedger(t)

	err := l.Create(chain.WithAuthority(ctx, "alice"),
		"alice", chain.MustParseAsset("10.0000 FOO"))
	assert.EqualError(t, err, "missing required authority eosio.token")

	err = l.Create(chain.WithAuthority(ctx, "eosio.token"),
		"alice", chain.MustParseAsset("10.0000 EOS"))
	assert.EqualError(t, err, "token with symbol already exists")

	err = l.Create(chain.WithAuthority(ctx, "eosio.token"),
		"alice", chain.MustParseAsset("-10.0000 FOO"))
	assert.EqualError(t, err, "max-supply must be positive")

	stat, err := l.Stat(ctx, "EOS")
	require.NoError(t, err)
	assert.Equal(t, "1000.0000 EOS", stat.Supply.String())
	assert.Equal(t, "1000000.0000 EOS", stat.MaxSupply.String())
	assert.Equal(t, chain.Name("eosio"), stat.Issuer)

	stat, err = l.Stat(ctx, "FOO")
	require.NoError(t, err)
	assert.Nil(t, stat)
}

func TestIssue(
	t *testing.T,
) {
	t.Parallel()
	ctx, l := setupLedger(t)

	err := l.Issue(chain.WithAuthority(ctx, "eosio"),
		"alice", chain.MustParseAsset("1.0000 EOS"), "")
	assert.EqualError(t, err, "tokens can only be issued to issuer account")

	err = l.Issue(chain.WithAuthority(ctx, "alice"),
		"eosio", chain.MustParseAsset("1.0000 EOS"), "")
	assert.EqualError(t, err, "missing required authority eosio")

	err = l.Issue(chain.WithAuthority(ctx, "eosio"),
		"eosio", chain.MustParseAsset("999001.0000 EOS"), "")
	assert.EqualError(t, err, "quantity exceeds available supply")

	err = l.Issue(chain.WithAuthority(ctx, "eosio"),
		"eosio", chain.MustParseAsset("1.00 EOS"), "")
	assert.EqualError(t, err, "symbol precision mismatch")

	require.NoError(t, l.CheckSupply(ctx, "EOS"))
}

func TestTransfer(
	t *testing.T,
) {
	t.Parallel()
	ctx, l := setupLedger(t)

	r := &recorder{}
	l.Subscribe("bob", r)

	alice := chain.WithAuthority(ctx, "alice")
	require.NoError(t, l.Transfer(alice,
		"alice", "bob", chain.MustParseAsset("10.0000 EOS"), "hi"))
	assert.Equal(t, "90.0000 EOS", balance(t, ctx, l, "alice"))
	assert.Equal(t, "10.0000 EOS", balance(t, ctx, l, "bob"))
	assert.Equal(t,
		[]string{"eosio.token:alice>bob:10.0000 EOS"}, r.transfers)

	err := l.Transfer(ctx,
		"alice", "bob", chain.MustParseAsset("1.0000 EOS"), "")
	assert.EqualError(t, err, "missing required authority alice")

	err = l.Transfer(alice,
		"alice", "alice", chain.MustParseAsset("1.0000 EOS"), "")
	assert.EqualError(t, err, "cannot transfer to self")

	err = l.Transfer(alice,
		"alice", "bob", chain.MustParseAsset("0.0000 EOS"), "")
	assert.EqualError(t, err, "must transfer positive quantity")

	err = l.Transfer(alice,
		"alice", "bob", chain.MustParseAsset("1.0000 EOS"),
		string(make([]byte, 257)))
	assert.EqualError(t, err, "memo has more than 256 bytes")

	err = l.Transfer(alice,
		"alice", "bob", chain.MustParseAsset("91.0000 EOS"), "")
	assert.EqualError(t, err, "overdrawn balance")
	assert.True(t, IsInsufficientBalance(err))

	err = l.Transfer(chain.WithAuthority(ctx, "hacker"),
		"hacker", "bob", chain.MustParseAsset("1.0000 EOS"), "")
	assert.EqualError(t, err, "no balance object found")
	assert.Equal(t, ErrCodeNoBalance, errors.Code(err))

	require.NoError(t, l.CheckSupply(ctx, "EOS"))
}

func TestTransferNotificationAborts(
	t *testing.T,
) {
	t.Parallel()
	ctx, l := setupLedger(t)

	r := &recorder{err: chain.Invalidf("rejected")}
	l.Subscribe("bob", r)

	err := l.Transfer(chain.WithAuthority(ctx, "alice"),
		"alice", "bob", chain.MustParseAsset("10.0000 EOS"), "")
	assert.EqualError(t, err, "rejected")

	// The transfer is rolled back along with the notification.
	assert.Equal(t, "100.0000 EOS", balance(t, ctx, l, "alice"))
	ok, err := l.HasBalance(ctx, "bob", eos)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenClose(
	t *testing.T,
) {
	t.Parallel()
	ctx, l := setupLedger(t)

	bob := chain.WithAuthority(ctx, "bob")
	require.NoError(t, l.Open(bob, "bob", eos, "bob"))
	ok, err := l.HasBalance(ctx, "bob", eos)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "0.0000 EOS", balance(t, ctx, l, "bob"))

	err = l.Open(bob, "bob", chain.NewSymbol("EOS", 2), "bob")
	assert.EqualError(t, err, "symbol precision mismatch")
	err = l.Open(bob, "bob", chain.NewSymbol("FOO", 4), "bob")
	assert.EqualError(t, err, "symbol does not exist")

	err = l.Close(chain.WithAuthority(ctx, "alice"), "alice", eos)
	assert.EqualError(t, err, "Cannot close because the balance is not zero.")

	require.NoError(t, l.Close(bob, "bob", eos))
	err = l.Close(bob, "bob", eos)
	assert.EqualError(t, err,
		"Balance row already deleted or never existed. Action won't have any effect.")
}

func TestRetire(
	t *testing.T,
) {
	t.Parallel()
	ctx, l := setupLedger(t)

	err := l.Retire(chain.WithAuthority(ctx, "alice"),
		chain.MustParseAsset("1.0000 EOS"), "")
	assert.EqualError(t, err, "missing required authority eosio")

	require.NoError(t, l.Retire(chain.WithAuthority(ctx, "eosio"),
		chain.MustParseAsset("100.0000 EOS"), "burn"))

	stat, err := l.Stat(ctx, "EOS")
	require.NoError(t, err)
	assert.Equal(t, "900.0000 EOS", stat.Supply.String())
	assert.Equal(t, "800.0000 EOS", balance(t, ctx, l, "eosio"))
	require.NoError(t, l.CheckSupply(ctx, "EOS"))
}

func TestAccounts(
	t *testing.T,
) {
	t.Parallel()
	ctx, l := setupLedger(t)

	require.NoError(t, l.Create(chain.WithAuthority(ctx, "eosio.token"),
		"alice", chain.MustParseAsset("100.00 FOO")))
	require.NoError(t, l.Issue(chain.WithAuthority(ctx, "alice"),
		"alice", chain.MustParseAsset("1.50 FOO"), ""))

	accounts, err := l.Accounts(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "100.0000 EOS", accounts[0].String())
	assert.Equal(t, "1.50 FOO", accounts[1].String())

	stats, err := l.Stats(ctx)
	require.NoError(t, err)
	assert.Len(t, stats, 2)
}
