package common

import (
	"github.com/shopspring/decimal"
)

// OutputReport is one row of the per-run csv report.
type OutputReport struct {
	Address   string          `json:"address" csv:"address"`
	Amount    decimal.Decimal `json:"amount" csv:"amount"`
	TxId      string          `json:"tx_id" csv:"tx_id"`
	IsSuccess bool            `json:"success" csv:"success"`
	Note      string          `json:"note" csv:"note"`
}

// DistributionSummary is the final, auditable record of a run.
type DistributionSummary struct {
	RunId             string          `json:"run_id"`
	Comment           string          `json:"comment"`
	DryRun            bool            `json:"dry_run"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Recipients        int             `json:"recipients"`
	PaidRecipients    int             `json:"paid_recipients"`
	DroppedAsDust     int             `json:"dropped_as_dust"`
	Batches           int             `json:"batches"`
	FailedBatches     int             `json:"failed_batches"`
	TotalDistributed  decimal.Decimal `json:"total_distributed"`
	TotalFees         decimal.Decimal `json:"total_fees"`
	TransactionIds    []string        `json:"transaction_ids"`
	FeePolicy         string          `json:"fee_policy"`
	FeeSubtractedFrom string          `json:"fee_subtracted_from"`
	Replaceable       bool            `json:"replaceable"`
}
