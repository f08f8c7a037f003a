package node

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type RpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type ValidateAddressResult struct {
	IsValid bool   `json:"isvalid"`
	Address string `json:"address"`
}

type BalanceBreakdown struct {
	Trusted          decimal.Decimal `json:"trusted"`
	UntrustedPending decimal.Decimal `json:"untrusted_pending"`
	Immature         decimal.Decimal `json:"immature"`
}

type GetBalancesResult struct {
	Mine      BalanceBreakdown `json:"mine"`
	Watchonly BalanceBreakdown `json:"watchonly"`
}

type WalletCreateFundedPsbtResult struct {
	Psbt string          `json:"psbt"`
	Fee  decimal.Decimal `json:"fee"`
	// -1 when the transaction has no change output
	ChangePos int64 `json:"changepos"`
}

type WalletProcessPsbtResult struct {
	Psbt     string `json:"psbt"`
	Complete bool   `json:"complete"`
}

type FinalizePsbtResult struct {
	Hex      string `json:"hex"`
	Complete bool   `json:"complete"`
}

type GetMempoolInfoResult struct {
	MempoolMinFee decimal.Decimal `json:"mempoolminfee"`
	MinRelayTxFee decimal.Decimal `json:"minrelaytxfee"`
}
