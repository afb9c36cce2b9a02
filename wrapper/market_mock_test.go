package wrapper

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/market"
	"github.com/stretchr/testify/mock"
)

type mockMarket struct {
	mock.Mock
}

var _ market.Market = (*mockMarket)(nil)

func (m *mockMarket) BidName(ctx context.Context, bidder, newname chain.Name, bid chain.Asset) error {
	return m.Called(ctx, bidder, newname, bid).Error(0)
}

func (m *mockMarket) BidRefund(ctx context.Context, bidder, newname chain.Name) error {
	return m.Called(ctx, bidder, newname).Error(0)
}

func (m *mockMarket) BuyRam(ctx context.Context, payer, receiver chain.Name, quant chain.Asset) error {
	return m.Called(ctx, payer, receiver, quant).Error(0)
}

func (m *mockMarket) BuyRamSelf(ctx context.Context, payer chain.Name, quant chain.Asset) error {
	return m.Called(ctx, payer, quant).Error(0)
}

func (m *mockMarket) BuyRamBurn(ctx context.Context, payer chain.Name, quantity chain.Asset, memo string) error {
	return m.Called(ctx, payer, quantity, memo).Error(0)
}

func (m *mockMarket) BuyRamBytes(ctx context.Context, payer, receiver chain.Name, bytes uint32) error {
	return m.Called(ctx, payer, receiver, bytes).Error(0)
}

func (m *mockMarket) QuoteRamBytes(ctx context.Context, bytes uint32) (chain.Asset, error) {
	args := m.Called(ctx, bytes)
	return args.Get(0).(chain.Asset), args.Error(1)
}

func (m *mockMarket) RamBurn(ctx context.Context, owner chain.Name, bytes int64, memo string) error {
	return m.Called(ctx, owner, bytes, memo).Error(0)
}

func (m *mockMarket) RamTransfer(ctx context.Context, from, to chain.Name, bytes int64, memo string) error {
	return m.Called(ctx, from, to, bytes, memo).Error(0)
}

func (m *mockMarket) SellRam(ctx context.Context, account chain.Name, bytes int64) error {
	return m.Called(ctx, account, bytes).Error(0)
}

func (m *mockMarket) Deposit(ctx context.Context, owner chain.Name, amount chain.Asset) error {
	return m.Called(ctx, owner, amount).Error(0)
}

func (m *mockMarket) Withdraw(ctx context.Context, owner chain.Name, amount chain.Asset) error {
	return m.Called(ctx, owner, amount).Error(0)
}

func (m *mockMarket) BuyRex(ctx context.Context, from chain.Name, amount chain.Asset) error {
	return m.Called(ctx, from, amount).Error(0)
}

func (m *mockMarket) SellRex(ctx context.Context, from chain.Name, rex chain.Asset) error {
	return m.Called(ctx, from, rex).Error(0)
}

func (m *mockMarket) MvFrSavings(ctx context.Context, owner chain.Name, rex chain.Asset) error {
	return m.Called(ctx, owner, rex).Error(0)
}

func (m *mockMarket) MvToSavings(ctx context.Context, owner chain.Name, rex chain.Asset) error {
	return m.Called(ctx, owner, rex).Error(0)
}

func (m *mockMarket) DonateToRex(ctx context.Context, payer chain.Name, quantity chain.Asset, memo string) error {
	return m.Called(ctx, payer, quantity, memo).Error(0)
}

func (m *mockMarket) PowerUp(ctx context.Context, payer, receiver chain.Name, days uint32, netFrac, cpuFrac int64, maxPayment chain.Asset) error {
	return m.Called(ctx, payer, receiver, days, netFrac, cpuFrac, maxPayment).Error(0)
}

func (m *mockMarket) DelegateBW(ctx context.Context, from, receiver chain.Name, net, cpu chain.Asset, transfer bool) error {
	return m.Called(ctx, from, receiver, net, cpu, transfer).Error(0)
}

func (m *mockMarket) UndelegateBW(ctx context.Context, from, receiver chain.Name, net, cpu chain.Asset) error {
	return m.Called(ctx, from, receiver, net, cpu).Error(0)
}

func (m *mockMarket) UnstakeToRex(ctx context.Context, owner, receiver chain.Name, fromNet, fromCPU chain.Asset) error {
	return m.Called(ctx, owner, receiver, fromNet, fromCPU).Error(0)
}

func (m *mockMarket) Refund(ctx context.Context, owner chain.Name) error {
	return m.Called(ctx, owner).Error(0)
}

func (m *mockMarket) VoteProducer(ctx context.Context, voter, proxy chain.Name, producers []chain.Name) error {
	return m.Called(ctx, voter, proxy, producers).Error(0)
}

func (m *mockMarket) VoteUpdate(ctx context.Context, voter chain.Name) error {
	return m.Called(ctx, voter).Error(0)
}

func (m *mockMarket) ClaimRewards(ctx context.Context, owner chain.Name) error {
	return m.Called(ctx, owner).Error(0)
}
