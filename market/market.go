// Package market defines the boundary between the wrapper and the native
// resource markets (RAM, REX, bandwidth, name auction, powerup). Markets are
// trusted for their own pricing; callers only move currency around them.
package market

import (
	"context"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
)

// Market is the set of native resource actions the wrapper forwards to. Each
// method runs under the authority carried by ctx and moves native currency
// only through the native ledger, within the transaction carried by ctx.
type Market interface {
	BidName(ctx context.Context, bidder, newname chain.Name, bid chain.Asset) error
	BidRefund(ctx context.Context, bidder, newname chain.Name) error

	BuyRam(ctx context.Context, payer, receiver chain.Name, quant chain.Asset) error
	BuyRamSelf(ctx context.Context, payer chain.Name, quant chain.Asset) error
	BuyRamBurn(ctx context.Context, payer chain.Name, quantity chain.Asset, memo string) error
	BuyRamBytes(ctx context.Context, payer, receiver chain.Name, bytes uint32) error
	// QuoteRamBytes returns the native amount BuyRamBytes charges for bytes
	// at the current market state, fees included.
	QuoteRamBytes(ctx context.Context, bytes uint32) (chain.Asset, error)
	RamBurn(ctx context.Context, owner chain.Name, bytes int64, memo string) error
	RamTransfer(ctx context.Context, from, to chain.Name, bytes int64, memo string) error
	SellRam(ctx context.Context, account chain.Name, bytes int64) error

	Deposit(ctx context.Context, owner chain.Name, amount chain.Asset) error
	Withdraw(ctx context.Context, owner chain.Name, amount chain.Asset) error
	BuyRex(ctx context.Context, from chain.Name, amount chain.Asset) error
	SellRex(ctx context.Context, from chain.Name, rex chain.Asset) error
	MvFrSavings(ctx context.Context, owner chain.Name, rex chain.Asset) error
	MvToSavings(ctx context.Context, owner chain.Name, rex chain.Asset) error
	DonateToRex(ctx context.Context, payer chain.Name, quantity chain.Asset, memo string) error

	PowerUp(ctx context.Context, payer, receiver chain.Name, days uint32, netFrac, cpuFrac int64, maxPayment chain.Asset) error

	DelegateBW(ctx context.Context, from, receiver chain.Name, net, cpu chain.Asset, transfer bool) error
	UndelegateBW(ctx context.Context, from, receiver chain.Name, net, cpu chain.Asset) error
	UnstakeToRex(ctx context.Context, owner, receiver chain.Name, fromNet, fromCPU chain.Asset) error
	Refund(ctx context.Context, owner chain.Name) error

	VoteProducer(ctx context.Context, voter, proxy chain.Name, producers []chain.Name) error
	VoteUpdate(ctx context.Context, voter chain.Name) error
	ClaimRewards(ctx context.Context, owner chain.Name) error
}
