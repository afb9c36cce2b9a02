package wrapper

import (
	"context"
	"testing"
	"time"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProxyInsufficientBalance(
	t *testing.T,
) {
	t.Parallel()
	ctx, c, _ := setupSim(t)
	user := chain.WithAuthority(ctx, "user")
	require.NoError(t, c.Wrap(user, "user", chain.MustParseAsset("10.0000 EOS")))

	err := c.BuyRam(chain.WithAuthority(ctx, "hacker"),
		"hacker", "hacker", chain.MustParseAsset("1.0000 XYZ"))
	assert.EqualError(t, err, "no balance object found")
	assert.True(t, errors.ExtractUserError(err).Status() == 402)

	err = c.BuyRam(user, "user", "user", chain.MustParseAsset("11.0000 XYZ"))
	assert.EqualError(t, err, "overdrawn balance")

	err = c.BuyRam(ctx, "user", "user", chain.MustParseAsset("1.0000 XYZ"))
	assert.EqualError(t, err, "missing required authority user")

	err = c.BuyRam(user, "user", "user", chain.MustParseAsset("1.0000 EOS"))
	assert.EqualError(t, err, "Wrong token used")

	assertBalances(t, ctx, c, "user", "90.0000 EOS", "10.0000 XYZ")
	assertBalances(t, ctx, c, "hacker", "0.0000 EOS", "0.0000 XYZ")
	assert.Equal(t, "", lastAction(t, ctx, c))
	assertBacked(t, ctx, c)
}

func TestProxyPowerUp(
	t *testing.T,
) {
	t.Parallel()
	ctx, c, _ := setupSim(t)
	user := chain.WithAuthority(ctx, "user")
	require.NoError(t, c.Wrap(user, "user", chain.MustParseAsset("10.0000 EOS")))

	require.NoError(t, c.PowerUp(user, "user", "user", 1, 0, 0,
		chain.MustParseAsset("2.0000 XYZ")))
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "9.0000 XYZ")
	assert.Equal(t, "powerup", lastAction(t, ctx, c))
	assertBacked(t, ctx, c)

	require.NoError(t, c.PowerUp(user, "user", "user", 1, 0, 0,
		chain.MustParseAsset("0.5000 XYZ")))
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "8.5000 XYZ")
	assertBacked(t, ctx, c)
}

func TestProxyRam(
	t *testing.T,
) {
	t.Parallel()
	ctx, c, s := setupSim(t)
	user := chain.WithAuthority(ctx, "user")
	require.NoError(t, c.Wrap(user, "user", chain.MustParseAsset("50.0000 EOS")))

	require.NoError(t, c.BuyRam(user, "user", "user", chain.MustParseAsset("1.0000 XYZ")))
	assertBalances(t, ctx, c, "user", "50.0000 EOS", "49.0000 XYZ")
	assert.Equal(t, "buyram", lastAction(t, ctx, c))
	quota, err := s.RamQuota(ctx, "user")
	require.NoError(t, err)
	assert.True(t, quota > 3000, quota)

	require.NoError(t, c.BuyRamSelf(user, "user", chain.MustParseAsset("1.0000 XYZ")))
	assertBalances(t, ctx, c, "user", "50.0000 EOS", "48.0000 XYZ")
	assert.Equal(t, "buyramself", lastAction(t, ctx, c))

	quote, err := s.QuoteRamBytes(ctx, 1000)
	require.NoError(t, err)
	require.NoError(t, c.BuyRamBytes(user, "user", "user", 1000))
	_, w := balances(t, ctx, c, "user")
	assert.Equal(t,
		chain.MustParseAsset("48.0000 XYZ").Amount-quote.Amount,
		chain.MustParseAsset(w).Amount)
	assertBalances(t, ctx, c, "user", "50.0000 EOS", w)
	assert.Equal(t, "buyrambytes", lastAction(t, ctx, c))

	require.NoError(t, c.RamTransfer(user, "user", "other", 100, ""))
	assert.Equal(t, "ramtransfer", lastAction(t, ctx, c))
	q, err := s.RamQuota(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, int64(100), q)

	require.NoError(t, c.RamBurn(user, "user", 100, "burn"))
	assert.Equal(t, "ramburn", lastAction(t, ctx, c))

	before := chain.MustParseAsset(w)
	require.NoError(t, c.SellRam(user, "user", 1000))
	_, w = balances(t, ctx, c, "user")
	assert.True(t, chain.MustParseAsset(w).Amount > before.Amount, w)
	assertBalances(t, ctx, c, "user", "50.0000 EOS", w)
	assert.Equal(t, "sellram", lastAction(t, ctx, c))
	assertBacked(t, ctx, c)

	r, err := c.Reserve(ctx)
	require.NoError(t, err)
	require.NoError(t, c.BuyRamBurn(user, "user", chain.MustParseAsset("1.0000 XYZ"), "burn"))
	burnt, err := c.Reserve(ctx)
	require.NoError(t, err)
	assert.Equal(t, r.Native.Amount-10000, burnt.Native.Amount)
	assert.Equal(t, r.Circulating.Amount-10000, burnt.Circulating.Amount)
	assert.Equal(t, "buyramburn", lastAction(t, ctx, c))
	assertBacked(t, ctx, c)

	err = c.SellRam(user, "user", 100000000)
	assert.EqualError(t, err, "insufficient quota")
	assert.Equal(t, ErrCodeMarketRejected, errors.Code(err))
	assert.Equal(t, "buyramburn", lastAction(t, ctx, c))
}

func TestProxyRex(
	t *testing.T,
) {
	t.Parallel()
	ctx, c, s := setupSim(t)
	user := chain.WithAuthority(ctx, "user")
	require.NoError(t, c.Wrap(user, "user", chain.MustParseAsset("10.0000 EOS")))

	err := c.BuyRex(user, "user", chain.MustParseAsset("1.0000 XYZ"))
	assert.EqualError(t, err, "no deposit found")
	assert.Equal(t, ErrCodeMarketRejected, errors.Code(err))

	require.NoError(t, c.Deposit(user, "user", chain.MustParseAsset("5.0000 XYZ")))
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "5.0000 XYZ")
	assert.Equal(t, "deposit", lastAction(t, ctx, c))

	require.NoError(t, c.BuyRex(user, "user", chain.MustParseAsset("1.0000 XYZ")))
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "5.0000 XYZ")
	assert.Equal(t, "buyrex", lastAction(t, ctx, c))
	staked, _, err := s.RexBalance(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "8315.5396 REX", staked.String())

	err = c.BuyRex(user, "user", chain.MustParseAsset("1.0000 EOS"))
	assert.EqualError(t, err, "Wrong token used")

	rex := chain.MustParseAsset("8315.5396 REX")
	require.NoError(t, c.MvFrSavings(user, "user", rex))
	assert.Equal(t, "mvfrsavings", lastAction(t, ctx, c))
	require.NoError(t, c.MvToSavings(user, "user", rex))
	assert.Equal(t, "mvtosavings", lastAction(t, ctx, c))
	require.NoError(t, c.MvFrSavings(user, "user", rex))

	require.NoError(t, c.SellRex(user, "user", rex))
	assert.Equal(t, "sellrex", lastAction(t, ctx, c))
	fund, err := s.RexFund(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "4.9999 EOS", fund.String())

	require.NoError(t, c.Withdraw(user, "user", chain.MustParseAsset("4.9999 XYZ")))
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "9.9999 XYZ")
	assert.Equal(t, "withdraw", lastAction(t, ctx, c))

	require.NoError(t, c.DonateToRex(user, "user", chain.MustParseAsset("1.0000 XYZ"), "gift"))
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "8.9999 XYZ")
	assert.Equal(t, "donatetorex", lastAction(t, ctx, c))
	assertBacked(t, ctx, c)
}

func TestProxyBandwidth(
	t *testing.T,
) {
	t.Parallel()
	ctx, c, s := setupSim(t)
	user := chain.WithAuthority(ctx, "user")
	require.NoError(t, c.Wrap(user, "user", chain.MustParseAsset("10.0000 EOS")))

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return now }
	s.RefundDelay = 72 * time.Hour

	one := chain.MustParseAsset("1.0000 XYZ")
	zero := chain.MustParseAsset("0.0000 XYZ")

	require.NoError(t, c.DelegateBW(user, "user", "user", one, one, false))
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "8.0000 XYZ")
	assert.Equal(t, "delegatebw", lastAction(t, ctx, c))
	net, cpu, err := s.Delegated(ctx, "user", "user")
	require.NoError(t, err)
	assert.Equal(t, "1.0000 EOS", net.String())
	assert.Equal(t, "1.0000 EOS", cpu.String())

	err = c.UndelegateBW(user, "user", "user",
		chain.MustParseAsset("1.0000 EOS"), chain.MustParseAsset("1.0000 EOS"))
	assert.EqualError(t, err, "Wrong token used")

	require.NoError(t, c.UndelegateBW(user, "user", "user", one, one))
	assert.Equal(t, "undelegatebw", lastAction(t, ctx, c))

	err = c.Refund(user, "user")
	assert.EqualError(t, err, "refund is not available yet")
	assert.Equal(t, ErrCodeMarketRejected, errors.Code(err))

	now = now.Add(72 * time.Hour)
	require.NoError(t, c.Refund(user, "user"))
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "10.0000 XYZ")
	assert.Equal(t, "refund", lastAction(t, ctx, c))
	assertBacked(t, ctx, c)

	require.NoError(t, c.DelegateBW(user, "user", "user", one, zero, false))
	require.NoError(t, c.UnstakeToRex(user, "user", "user", one, zero))
	assert.Equal(t, "unstaketorex", lastAction(t, ctx, c))
	staked, _, err := s.RexBalance(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "8315.5396 REX", staked.String())
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "9.0000 XYZ")
	assertBacked(t, ctx, c)
}

func TestProxyNames(
	t *testing.T,
) {
	t.Parallel()
	ctx, c, _ := setupSim(t)
	user := chain.WithAuthority(ctx, "user")
	other := chain.WithAuthority(ctx, "other")
	require.NoError(t, c.Native.Transfer(chain.WithAuthority(ctx, "eosio"),
		"eosio", "other", chain.MustParseAsset("10.0000 EOS"), ""))
	require.NoError(t, c.Wrap(user, "user", chain.MustParseAsset("10.0000 EOS")))
	require.NoError(t, c.Wrap(other, "other", chain.MustParseAsset("10.0000 EOS")))

	require.NoError(t, c.BidName(user, "user", "vip", chain.MustParseAsset("1.0000 XYZ")))
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "9.0000 XYZ")
	assert.Equal(t, "bidname", lastAction(t, ctx, c))

	err := c.BidName(other, "other", "vip", chain.MustParseAsset("1.0500 XYZ"))
	assert.EqualError(t, err, "must increase bid by 10%")
	assert.Equal(t, ErrCodeMarketRejected, errors.Code(err))
	assertBalances(t, ctx, c, "other", "0.0000 EOS", "10.0000 XYZ")

	require.NoError(t, c.BidName(other, "other", "vip", chain.MustParseAsset("2.0000 XYZ")))
	assertBalances(t, ctx, c, "other", "0.0000 EOS", "8.0000 XYZ")

	require.NoError(t, c.BidRefund(user, "user", "vip"))
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "10.0000 XYZ")
	assert.Equal(t, "bidrefund", lastAction(t, ctx, c))

	err = c.BidRefund(user, "user", "vip")
	assert.EqualError(t, err, "refund not found")
	assertBacked(t, ctx, c)
}

func TestProxyVotes(
	t *testing.T,
) {
	t.Parallel()
	ctx, c, s := setupSim(t)
	user := chain.WithAuthority(ctx, "user")

	require.NoError(t, c.VoteProducer(user, "user", "", []chain.Name{"bp1", "bp2"}))
	assert.Equal(t, "voteproducer", lastAction(t, ctx, c))
	_, producers, err := s.Votes(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []chain.Name{"bp1", "bp2"}, producers)

	require.NoError(t, c.VoteUpdate(user, "user"))
	assert.Equal(t, "voteupdate", lastAction(t, ctx, c))

	err = c.ClaimRewards(user, "user")
	assert.EqualError(t, err, "no rewards to claim")
	require.NoError(t, s.AddReward(chain.WithAuthority(ctx, "eosio"),
		"user", chain.MustParseAsset("3.0000 EOS")))
	require.NoError(t, c.ClaimRewards(user, "user"))
	assertBalances(t, ctx, c, "user", "100.0000 EOS", "3.0000 XYZ")
	assert.Equal(t, "claimrewards", lastAction(t, ctx, c))
	assertBacked(t, ctx, c)
}

func TestMarketRejectionIsAtomic(
	t *testing.T,
) {
	t.Parallel()
	ctx, c, m := setupMock(t)
	user := chain.WithAuthority(ctx, "user")
	require.NoError(t, c.Wrap(user, "user", chain.MustParseAsset("10.0000 EOS")))

	m.On("BuyRam", mock.Anything, chain.Name("user"), chain.Name("user"),
		chain.MustParseAsset("1.0000 EOS")).
		Return(chain.Invalidf("ram market closed")).Once()
	err := c.BuyRam(user, "user", "user", chain.MustParseAsset("1.0000 XYZ"))
	assert.EqualError(t, err, "ram market closed")
	assert.Equal(t, ErrCodeMarketRejected, errors.Code(err))
	assert.Equal(t, 400, errors.ExtractUserError(err).Status())

	m.On("SellRam", mock.Anything, chain.Name("user"), int64(10)).
		Return(errors.Newf("market unreachable")).Once()
	err = c.SellRam(user, "user", 10)
	assert.EqualError(t, err, "market unreachable")
	assert.Equal(t, "", errors.Code(err))

	assertBalances(t, ctx, c, "user", "90.0000 EOS", "10.0000 XYZ")
	assert.Equal(t, "", lastAction(t, ctx, c))
	assertBacked(t, ctx, c)

	m.On("VoteUpdate", mock.Anything, chain.Name("user")).Return(nil).Once()
	require.NoError(t, c.VoteUpdate(user, "user"))
	assert.Equal(t, "voteupdate", lastAction(t, ctx, c))

	m.AssertExpectations(t)
}

func TestPowerUpRefundIsExact(
	t *testing.T,
) {
	t.Parallel()
	ctx, c, m := setupMock(t)
	user := chain.WithAuthority(ctx, "user")
	require.NoError(t, c.Wrap(user, "user", chain.MustParseAsset("10.0000 EOS")))

	m.On("PowerUp", mock.Anything, chain.Name("user"), chain.Name("other"),
		uint32(1), int64(100), int64(200), chain.MustParseAsset("2.0000 EOS")).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			require.NoError(t, c.Native.Transfer(ctx,
				"user", "eosio", chain.MustParseAsset("0.3333 EOS"), "powerup fee"))
		}).
		Return(nil).Once()

	require.NoError(t, c.PowerUp(user, "user", "other", 1, 100, 200,
		chain.MustParseAsset("2.0000 XYZ")))
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "9.6667 XYZ")
	assert.Equal(t, "powerup", lastAction(t, ctx, c))
	assertBacked(t, ctx, c)

	m.AssertExpectations(t)
}

func TestBuyRamBytesEnforcesBalance(
	t *testing.T,
) {
	t.Parallel()
	ctx, c, m := setupMock(t)
	user := chain.WithAuthority(ctx, "user")
	require.NoError(t, c.Wrap(user, "user", chain.MustParseAsset("10.0000 EOS")))

	charge := func(amount string) func(mock.Arguments) {
		return func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			require.NoError(t, c.Native.Transfer(ctx,
				"user", "eosio", chain.MustParseAsset(amount), "buy ram"))
		}
	}

	m.On("QuoteRamBytes", mock.Anything, uint32(1000)).
		Return(chain.MustParseAsset("0.5000 EOS"), nil)
	m.On("BuyRamBytes", mock.Anything, chain.Name("user"), chain.Name("user"), uint32(1000)).
		Run(charge("0.4000 EOS")).Return(nil).Once()

	require.NoError(t, c.BuyRamBytes(user, "user", "user", 1000))
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "9.6000 XYZ")
	assert.Equal(t, "buyrambytes", lastAction(t, ctx, c))

	m.On("BuyRamBytes", mock.Anything, chain.Name("user"), chain.Name("user"), uint32(1000)).
		Run(charge("0.6000 EOS")).Return(nil).Once()
	err := c.BuyRamBytes(user, "user", "user", 1000)
	assert.EqualError(t, err, "EOS balance mismatch: 89.9000 EOS != 90.0000 EOS")
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "9.6000 XYZ")
	assertBacked(t, ctx, c)

	m.On("QuoteRamBytes", mock.Anything, uint32(0)).
		Return(chain.Asset{}, chain.Invalidf("insufficient ram in market")).Once()
	err = c.BuyRamBytes(user, "user", "user", 0)
	assert.Equal(t, ErrCodeMarketRejected, errors.Code(err))

	m.AssertExpectations(t)
}
