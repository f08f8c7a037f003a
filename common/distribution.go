package common

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Recipient is a single row of the recipient source, in source order.
type Recipient struct {
	Address string          `json:"address"`
	Share   decimal.Decimal `json:"share"`
}

// WeightedRecipient is a Recipient with its share clamped to a
// non-negative weight.
type WeightedRecipient struct {
	Address string          `json:"address"`
	Weight  decimal.Decimal `json:"weight"`
}

// Output is a planned transaction output. Ordering matters - fee
// subtraction policies reference outputs by positional index.
type Output struct {
	Address string          `json:"address" csv:"address"`
	Amount  decimal.Decimal `json:"amount" csv:"amount"`
}

type OutputBatch []Output

// ToRpcOutputs renders the batch as the address->amount map passed to
// walletcreatefundedpsbt. Amounts are emitted as bare json numbers with
// their exact decimal digits, no binary float conversion.
func (b OutputBatch) ToRpcOutputs() map[string]json.Number {
	outputs := make(map[string]json.Number, len(b))
	for _, output := range b {
		outputs[output.Address] = json.Number(output.Amount.String())
	}
	return outputs
}

func (b OutputBatch) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, output := range b {
		total = total.Add(output.Amount)
	}
	return total
}

// FeeSubtractionPolicy determines which output positions cover the
// transaction fee. It is an explicit policy, never inferred from the
// output count.
type FeeSubtractionPolicy string

const (
	// fee is absorbed by the wallet's own change, recipients receive
	// their exact computed amounts
	FEE_FROM_CHANGE FeeSubtractionPolicy = "change"
	// fee is deducted pro-rata from all recipient outputs
	FEE_FROM_RECIPIENTS FeeSubtractionPolicy = "recipients"
)

// SubtractFeeIndices resolves the policy into the index list expected by
// walletcreatefundedpsbt for a batch of the given size.
func (p FeeSubtractionPolicy) SubtractFeeIndices(outputCount int) []int {
	switch p {
	case FEE_FROM_RECIPIENTS:
		indices := make([]int, outputCount)
		for i := range indices {
			indices[i] = i
		}
		return indices
	default:
		return []int{}
	}
}

// FeePolicy carries exactly one of an absolute fee rate (per kvB) or a
// confirmation target in blocks.
type FeePolicy struct {
	FeeRate            *decimal.Decimal `json:"fee_rate,omitempty"`
	ConfirmationTarget int64            `json:"confirmation_target,omitempty"`
}

func (p FeePolicy) String() string {
	if p.FeeRate != nil {
		return "feeRate=" + p.FeeRate.String()
	}
	return "conf_target=" + ToStringEmptyIfZero(p.ConfirmationTarget)
}

// PsbtOptions mirrors the options object of walletcreatefundedpsbt.
type PsbtOptions struct {
	ChangeType             string
	Replaceable            bool
	SubtractFeeFromOutputs []int
	FeePolicy              FeePolicy
}

// DistributionPlan is the resolved intent of a single run.
type DistributionPlan struct {
	RunId       string          `json:"run_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Comment     string          `json:"comment"`
}

const NO_CHANGE_POSITION = int64(-1)

// TransactionEstimate is a funded unsigned transaction produced by the
// node for one batch, consumed immediately and never persisted.
type TransactionEstimate struct {
	Psbt           string          `json:"psbt"`
	Fee            decimal.Decimal `json:"fee"`
	ChangePosition int64           `json:"change_position"`
}

func (e *TransactionEstimate) HasChange() bool {
	return e.ChangePosition != NO_CHANGE_POSITION
}

// WalletBalances is the per-category balance breakdown of the payout
// wallet. Only Trusted is ever spendable by a distribution.
type WalletBalances struct {
	Trusted          decimal.Decimal `json:"trusted"`
	UntrustedPending decimal.Decimal `json:"untrusted_pending"`
	Immature         decimal.Decimal `json:"immature"`
}

type MempoolInfo struct {
	MempoolMinFee decimal.Decimal `json:"mempool_min_fee"`
	MinRelayTxFee decimal.Decimal `json:"min_relay_tx_fee"`
}
