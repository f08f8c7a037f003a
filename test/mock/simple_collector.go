package mock

import (
	"github.com/interchained/itcpay/common"
	"github.com/shopspring/decimal"
)

type SimpleCollectorOpts struct {
	TrustedBalance   decimal.Decimal
	UntrustedPending decimal.Decimal
	Immature         decimal.Decimal
	InvalidAddresses map[string]bool
	FailWithError    error
}

type SimpleCollector struct {
	opts *SimpleCollectorOpts

	ValidateAddressCalls int
	GetBalancesCalls     int
}

func InitSimpleCollector() *SimpleCollector {
	return &SimpleCollector{
		opts: &SimpleCollectorOpts{
			TrustedBalance: decimal.RequireFromString("100"),
		},
	}
}

func (engine *SimpleCollector) GetId() string {
	return "SimpleCollector"
}

func (engine *SimpleCollector) SetOpts(opts *SimpleCollectorOpts) {
	engine.opts = opts
}

func (engine *SimpleCollector) ValidateAddress(address string) (bool, error) {
	engine.ValidateAddressCalls++
	if engine.opts.FailWithError != nil {
		return false, engine.opts.FailWithError
	}
	return !engine.opts.InvalidAddresses[address], nil
}

func (engine *SimpleCollector) GetWalletBalances() (*common.WalletBalances, error) {
	engine.GetBalancesCalls++
	if engine.opts.FailWithError != nil {
		return nil, engine.opts.FailWithError
	}
	return &common.WalletBalances{
		Trusted:          engine.opts.TrustedBalance,
		UntrustedPending: engine.opts.UntrustedPending,
		Immature:         engine.opts.Immature,
	}, nil
}

func (engine *SimpleCollector) GetMempoolInfo() (*common.MempoolInfo, error) {
	if engine.opts.FailWithError != nil {
		return nil, engine.opts.FailWithError
	}
	return &common.MempoolInfo{
		MempoolMinFee: decimal.RequireFromString("0.00001"),
		MinRelayTxFee: decimal.RequireFromString("0.00001"),
	}, nil
}
