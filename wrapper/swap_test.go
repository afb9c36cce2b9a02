package wrapper

import (
	"testing"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapForwarding(
	t *testing.T,
) {
	t.Parallel()
	ctx, c, _ := setupMock(t)
	user := chain.WithAuthority(ctx, "user")
	require.NoError(t, c.Wrap(user, "user", chain.MustParseAsset("10.0000 EOS")))

	require.NoError(t, c.SwapBeforeForwarding(user,
		"user", chain.MustParseAsset("2.0000 XYZ")))
	assertBalances(t, ctx, c, "user", "92.0000 EOS", "8.0000 XYZ")
	assertBacked(t, ctx, c)

	err := c.SwapBeforeForwarding(user, "user", chain.MustParseAsset("2.0000 EOS"))
	assert.EqualError(t, err, "Wrong token used")
	err = c.SwapBeforeForwarding(user, "user", chain.MustParseAsset("0.0000 XYZ"))
	assert.EqualError(t, err, "Swap before amount must be greater than 0")
	err = c.SwapBeforeForwarding(ctx, "user", chain.MustParseAsset("1.0000 XYZ"))
	assert.EqualError(t, err, "missing required authority user")

	require.NoError(t, c.SwapAfterForwarding(user,
		"user", chain.MustParseAsset("2.0000 EOS")))
	assertBalances(t, ctx, c, "user", "90.0000 EOS", "10.0000 XYZ")
	err = c.SwapAfterForwarding(user, "user", chain.MustParseAsset("0.0000 EOS"))
	assert.EqualError(t, err, "Swap after amount must be greater than 0")

	require.NoError(t, c.EnforceBalance(ctx, "user", chain.MustParseAsset("90.0000 EOS")))
	err = c.EnforceBalance(ctx, "user", chain.MustParseAsset("91.0000 EOS"))
	assert.EqualError(t, err, "EOS balance mismatch: 90.0000 EOS != 91.0000 EOS")

	err = c.SwapExcess(user, "user", chain.MustParseAsset("80.0000 EOS"))
	assert.EqualError(t, err, "missing required authority core.vaulta")
	contract := chain.WithAuthority(ctx, self)
	require.NoError(t, c.SwapExcess(contract, "user", chain.MustParseAsset("85.0000 EOS")))
	assertBalances(t, ctx, c, "user", "85.0000 EOS", "15.0000 XYZ")
	require.NoError(t, c.SwapExcess(contract, "user", chain.MustParseAsset("90.0000 EOS")))
	assertBalances(t, ctx, c, "user", "85.0000 EOS", "15.0000 XYZ")
	assertBacked(t, ctx, c)
}

func TestSwapTo(
	t *testing.T,
) {
	t.Parallel()
	ctx, c, _ := setupMock(t)
	user := chain.WithAuthority(ctx, "user")
	other := chain.WithAuthority(ctx, "other")
	require.NoError(t, c.Wrap(user, "user", chain.MustParseAsset("10.0000 EOS")))

	require.NoError(t, c.SwapTo(user,
		"user", "other", chain.MustParseAsset("5.0000 EOS"), "to other"))
	assertBalances(t, ctx, c, "user", "85.0000 EOS", "10.0000 XYZ")
	assertBalances(t, ctx, c, "other", "0.0000 EOS", "5.0000 XYZ")

	require.NoError(t, c.SwapTo(user,
		"user", "other", chain.MustParseAsset("3.0000 XYZ"), "to other"))
	assertBalances(t, ctx, c, "user", "85.0000 EOS", "7.0000 XYZ")
	assertBalances(t, ctx, c, "other", "3.0000 EOS", "5.0000 XYZ")
	assertBacked(t, ctx, c)

	err := c.SwapTo(user, "user", "other", chain.MustParseAsset("1.0000 FOO"), "")
	assert.EqualError(t, err, "Invalid symbol")
	err = c.SwapTo(other, "user", "other", chain.MustParseAsset("1.0000 XYZ"), "")
	assert.EqualError(t, err, "missing required authority user")

	err = c.BlockSwapTo(user, "other", true)
	assert.EqualError(t, err, "missing required authority other")
	require.NoError(t, c.BlockSwapTo(other, "other", true))
	require.NoError(t, c.BlockSwapTo(other, "other", true))

	err = c.SwapTo(user, "user", "other", chain.MustParseAsset("1.0000 XYZ"), "")
	assert.EqualError(t, err,
		"Recipient is blocked from receiving swapped tokens: other")
	assertBalances(t, ctx, c, "user", "85.0000 EOS", "7.0000 XYZ")

	require.NoError(t, c.Transfer(user,
		"user", "other", chain.MustParseAsset("1.0000 XYZ"), "plain transfer"))

	require.NoError(t, c.BlockSwapTo(chain.WithAuthority(ctx, self), "other", false))
	require.NoError(t, c.SwapTo(user,
		"user", "other", chain.MustParseAsset("1.0000 XYZ"), ""))
	assertBalances(t, ctx, c, "user", "85.0000 EOS", "5.0000 XYZ")
	assertBalances(t, ctx, c, "other", "4.0000 EOS", "6.0000 XYZ")
	assertBacked(t, ctx, c)
}
