package sim

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/VaultaFoundation/vaulta-system-contract/ledger"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/market/sim/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eos = chain.NewSymbol("EOS", 4)

func setupSystem(
	t *testing.T,
) (context.Context, *System) {
	ctx := context.Background()

	simDB, err := db.NewSqlite3DBInMemory(ctx)
	require.NoError(t, err)
	require.NoError(t, db.CreateDBTables(ctx, simDB, "ledger", "sim"))
	t.Cleanup(func() { simDB.Close() })
	ctx = db.WithDB(ctx, simDB)

	native := ledger.New("eosio.token")
	require.NoError(t, native.Create(chain.WithAuthority(ctx, "eosio.token"),
		"eosio", chain.MustParseAsset("2100000000.0000 EOS")))
	require.NoError(t, native.Issue(chain.WithAuthority(ctx, "eosio"),
		"eosio", chain.MustParseAsset("20000.0000 EOS"), ""))
	require.NoError(t, native.Transfer(chain.WithAuthority(ctx, "eosio"),
		"eosio", "user", chain.MustParseAsset("1000.0000 EOS"), ""))

	s := New("eosio", native, eos)
	admin := chain.WithAuthority(ctx, "eosio")
	require.NoError(t, s.SetRamMarket(admin,
		chain.MustParseAsset("85450299267 RAM"),
		chain.MustParseAsset("22319041.7222 EOS")))
	require.NoError(t, s.SetRex(admin,
		chain.MustParseAsset("130094250.8095 EOS"),
		chain.MustParseAsset("1081803903132.8963 REX")))

	return ctx, s
}

func nativeBalance(
	t *testing.T,
	ctx context.Context,
	s *System,
	owner chain.Name,
) string {
	b, err := s.Native.Balance(ctx, owner, eos)
	require.NoError(t, err)
	return b.String()
}

func TestBancor(
	t *testing.T,
) {
	t.Parallel()

	assert.Equal(t, int64(0), bancorOutput(100, 100, 0))
	assert.Equal(t, int64(50), bancorOutput(100, 100, 100))
	assert.Equal(t, int64(100), bancorInput(100, 100, 50))
	assert.Equal(t, int64(1), ramFee(1))
	assert.Equal(t, int64(1), ramFee(200))
	assert.Equal(t, int64(2), ramFee(201))
}

func exactMulDiv(
	a int64,
	b int64,
	c int64,
) int64 {
	r := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	return r.Quo(r, big.NewInt(c)).Int64()
}

func TestPricingIsExact(
	t *testing.T,
) {
	t.Parallel()

	// Products of mainnet sized reserves exceed 2^53.
	ram := int64(85450299267)
	quote := int64(223190417222)
	for _, inp := range []int64{1, 9999, 10000, 123456789, 9007199254740993 / ram} {
		assert.Equal(t, exactMulDiv(inp, ram, quote+inp),
			bancorOutput(quote, ram, inp), inp)
		assert.Equal(t, exactMulDiv(quote, inp, ram-inp),
			bancorInput(ram, quote, inp), inp)
	}

	assert.Equal(t, int64(200), withRamFee(199))
	assert.Equal(t, int64(1005025125628140), withRamFee(1000000000000000))
	assert.Equal(t, int64(0), mulDiv(1, 1, 0))
	assert.Equal(t, int64(-3), mulDiv(-7, 1, 2))

	lendable := int64(1300942508095)
	rex := int64(10818039031328963)
	assert.Equal(t, exactMulDiv(rex, 123456789, lendable),
		eosToRex(&model.RexPool{TotalLendable: lendable, TotalRex: rex}, 123456789))
}

func TestAdminRequiresAuthority(
	t *testing.T,
) {
	t.Parallel()
	ctx, s := setupSystem(t)

	err := s.SetRamMarket(chain.WithAuthority(ctx, "user"),
		chain.MustParseAsset("1 RAM"), chain.MustParseAsset("1.0000 EOS"))
	assert.EqualError(t, err, "missing required authority eosio")

	err = s.SetRamMarket(chain.WithAuthority(ctx, "eosio"),
		chain.MustParseAsset("1.0000 EOS"), chain.MustParseAsset("1.0000 EOS"))
	assert.EqualError(t, err, "ram symbol must be RAM")
}

func TestRam(
	t *testing.T,
) {
	t.Parallel()
	ctx, s := setupSystem(t)
	user := chain.WithAuthority(ctx, "user")

	require.NoError(t, s.BuyRam(user, "user", "user",
		chain.MustParseAsset("1.0000 EOS")))
	assert.Equal(t, "999.0000 EOS", nativeBalance(t, ctx, s, "user"))
	bought, err := s.RamQuota(ctx, "user")
	require.NoError(t, err)
	assert.True(t, bought > 3000, bought)

	quote, err := s.QuoteRamBytes(ctx, 1000)
	require.NoError(t, err)
	assert.True(t, quote.IsPositive())
	require.NoError(t, s.BuyRamBytes(user, "user", "user", 1000))
	assert.Equal(t,
		chain.MustParseAsset("999.0000 EOS").Amount-quote.Amount,
		chain.MustParseAsset(nativeBalance(t, ctx, s, "user")).Amount)

	require.NoError(t, s.RamTransfer(user, "user", "other", 100, ""))
	require.NoError(t, s.RamBurn(user, "user", 100, ""))
	q, err := s.RamQuota(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, int64(100), q)

	before := chain.MustParseAsset(nativeBalance(t, ctx, s, "user"))
	require.NoError(t, s.SellRam(user, "user", 1000))
	after := chain.MustParseAsset(nativeBalance(t, ctx, s, "user"))
	assert.True(t, after.Amount > before.Amount)

	err = s.SellRam(user, "user", 1000000)
	assert.EqualError(t, err, "insufficient quota")
	err = s.BuyRam(user, "user", "user", chain.MustParseAsset("1.0000 XYZ"))
	assert.EqualError(t, err, "must buy ram with core token")
	err = s.BuyRam(ctx, "user", "user", chain.MustParseAsset("1.0000 EOS"))
	assert.EqualError(t, err, "missing required authority user")
}

func TestBuyRamBurn(
	t *testing.T,
) {
	t.Parallel()
	ctx, s := setupSystem(t)

	require.NoError(t, s.BuyRamBurn(chain.WithAuthority(ctx, "user"),
		"user", chain.MustParseAsset("1.0000 EOS"), "burn"))
	q, err := s.RamQuota(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, int64(0), q)
	burnt, err := s.RamQuota(ctx, NullAccount)
	require.NoError(t, err)
	assert.True(t, burnt > 0)
}

func TestRex(
	t *testing.T,
) {
	t.Parallel()
	ctx, s := setupSystem(t)
	user := chain.WithAuthority(ctx, "user")

	err := s.BuyRex(user, "user", chain.MustParseAsset("1.0000 EOS"))
	assert.EqualError(t, err, "no deposit found")

	require.NoError(t, s.Deposit(user, "user", chain.MustParseAsset("1.0000 EOS")))
	require.NoError(t, s.BuyRex(user, "user", chain.MustParseAsset("1.0000 EOS")))

	staked, unstaking, err := s.RexBalance(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "8315.5396 REX", staked.String())
	assert.Equal(t, "0.0000 REX", unstaking.String())

	require.NoError(t, s.MvFrSavings(user, "user", chain.MustParseAsset("8315.5396 REX")))
	staked, unstaking, err = s.RexBalance(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "0.0000 REX", staked.String())
	assert.Equal(t, "8315.5396 REX", unstaking.String())

	require.NoError(t, s.SellRex(user, "user", chain.MustParseAsset("8315.5396 REX")))
	fund, err := s.RexFund(ctx, "user")
	require.NoError(t, err)
	// Proceeds are 9999.99992 units, truncated.
	assert.Equal(t, "0.9999 EOS", fund.String())

	require.NoError(t, s.Withdraw(user, "user", chain.MustParseAsset("0.9999 EOS")))
	assert.Equal(t, "999.9999 EOS", nativeBalance(t, ctx, s, "user"))

	err = s.Withdraw(user, "user", chain.MustParseAsset("0.0001 EOS"))
	assert.EqualError(t, err, "insufficient balance")
}

func TestPowerUp(
	t *testing.T,
) {
	t.Parallel()
	ctx, s := setupSystem(t)
	user := chain.WithAuthority(ctx, "user")

	require.NoError(t, s.PowerUp(user, "user", "user", 1, 0, 0,
		chain.MustParseAsset("0.1000 EOS")))
	assert.Equal(t, "999.9000 EOS", nativeBalance(t, ctx, s, "user"))

	require.NoError(t, s.PowerUp(user, "user", "user", 1, 0, 0,
		chain.MustParseAsset("1.1000 EOS")))
	assert.Equal(t, "998.9000 EOS", nativeBalance(t, ctx, s, "user"))

	require.NoError(t, s.SetPowerUpFee(chain.WithAuthority(ctx, "eosio"),
		chain.MustParseAsset("0.5000 EOS")))
	require.NoError(t, s.PowerUp(user, "user", "user", 1, 0, 0,
		chain.MustParseAsset("1.0000 EOS")))
	assert.Equal(t, "998.4000 EOS", nativeBalance(t, ctx, s, "user"))
}

func TestBandwidth(
	t *testing.T,
) {
	t.Parallel()
	ctx, s := setupSystem(t)
	user := chain.WithAuthority(ctx, "user")

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return now }
	s.RefundDelay = 72 * time.Hour

	require.NoError(t, s.DelegateBW(user, "user", "user",
		chain.MustParseAsset("1.0000 EOS"), chain.MustParseAsset("1.0000 EOS"), true))
	assert.Equal(t, "998.0000 EOS", nativeBalance(t, ctx, s, "user"))

	net, cpu, err := s.Delegated(ctx, "user", "user")
	require.NoError(t, err)
	assert.Equal(t, "1.0000 EOS", net.String())
	assert.Equal(t, "1.0000 EOS", cpu.String())

	err = s.UndelegateBW(user, "user", "user",
		chain.MustParseAsset("2.0000 EOS"), chain.MustParseAsset("0.0000 EOS"))
	assert.EqualError(t, err, "insufficient net stake")

	require.NoError(t, s.UndelegateBW(user, "user", "user",
		chain.MustParseAsset("1.0000 EOS"), chain.MustParseAsset("1.0000 EOS")))

	err = s.Refund(user, "user")
	assert.EqualError(t, err, "refund is not available yet")

	now = now.Add(72 * time.Hour)
	require.NoError(t, s.Refund(user, "user"))
	assert.Equal(t, "1000.0000 EOS", nativeBalance(t, ctx, s, "user"))

	err = s.Refund(user, "user")
	assert.EqualError(t, err, "no refund found")
}

func TestUnstakeToRex(
	t *testing.T,
) {
	t.Parallel()
	ctx, s := setupSystem(t)
	user := chain.WithAuthority(ctx, "user")

	require.NoError(t, s.DelegateBW(user, "user", "user",
		chain.MustParseAsset("1.0000 EOS"), chain.MustParseAsset("0.0000 EOS"), false))
	require.NoError(t, s.UnstakeToRex(user, "user", "user",
		chain.MustParseAsset("1.0000 EOS"), chain.MustParseAsset("0.0000 EOS")))

	staked, _, err := s.RexBalance(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "8315.5396 REX", staked.String())
}

func TestNameBids(
	t *testing.T,
) {
	t.Parallel()
	ctx, s := setupSystem(t)
	require.NoError(t, s.Native.Transfer(chain.WithAuthority(ctx, "eosio"),
		"eosio", "other", chain.MustParseAsset("10.0000 EOS"), ""))

	require.NoError(t, s.BidName(chain.WithAuthority(ctx, "user"),
		"user", "vip", chain.MustParseAsset("1.0000 EOS")))

	err := s.BidName(chain.WithAuthority(ctx, "other"),
		"other", "vip", chain.MustParseAsset("1.0500 EOS"))
	assert.EqualError(t, err, "must increase bid by 10%")

	require.NoError(t, s.BidName(chain.WithAuthority(ctx, "other"),
		"other", "vip", chain.MustParseAsset("2.0000 EOS")))

	require.NoError(t, s.BidRefund(chain.WithAuthority(ctx, "user"), "user", "vip"))
	assert.Equal(t, "1000.0000 EOS", nativeBalance(t, ctx, s, "user"))

	err = s.BidRefund(chain.WithAuthority(ctx, "user"), "user", "vip")
	assert.EqualError(t, err, "refund not found")
}

func TestVotesAndRewards(
	t *testing.T,
) {
	t.Parallel()
	ctx, s := setupSystem(t)
	user := chain.WithAuthority(ctx, "user")

	err := s.VoteProducer(user, "user", "", []chain.Name{"bp2", "bp1"})
	assert.EqualError(t, err, "producer votes must be unique and sorted")
	err = s.VoteProducer(user, "user", "proxy", []chain.Name{"bp1"})
	assert.EqualError(t, err, "cannot vote for producers and proxy at same time")

	require.NoError(t, s.VoteProducer(user, "user", "", []chain.Name{"bp1", "bp2"}))
	proxy, producers, err := s.Votes(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, chain.Name(""), proxy)
	assert.Equal(t, []chain.Name{"bp1", "bp2"}, producers)
	require.NoError(t, s.VoteUpdate(user, "user"))

	err = s.ClaimRewards(user, "user")
	assert.EqualError(t, err, "no rewards to claim")
	require.NoError(t, s.AddReward(chain.WithAuthority(ctx, "eosio"),
		"user", chain.MustParseAsset("3.0000 EOS")))
	require.NoError(t, s.ClaimRewards(user, "user"))
	assert.Equal(t, "1003.0000 EOS", nativeBalance(t, ctx, s, "user"))
}
