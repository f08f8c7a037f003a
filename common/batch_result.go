package common

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type BatchResult struct {
	Outputs   OutputBatch     `json:"outputs"`
	TxId      string          `json:"tx_id"`
	Fee       decimal.Decimal `json:"fee"`
	IsSuccess bool            `json:"is_success"`
	Err       error           `json:"err"`
}

func NewFailedBatchResult(outputs OutputBatch, err error) *BatchResult {
	return &BatchResult{
		Outputs:   outputs,
		Err:       err,
		IsSuccess: false,
	}
}

func NewSuccessBatchResult(outputs OutputBatch, txId string, fee decimal.Decimal) *BatchResult {
	return &BatchResult{
		Outputs:   outputs,
		TxId:      txId,
		Fee:       fee,
		IsSuccess: true,
	}
}

// NewEstimatedBatchResult represents a dry-run batch - estimated but
// never signed or broadcast.
func NewEstimatedBatchResult(outputs OutputBatch, fee decimal.Decimal) *BatchResult {
	return &BatchResult{
		Outputs:   outputs,
		Fee:       fee,
		IsSuccess: true,
	}
}

func (br *BatchResult) ToIndividualReports() []OutputReport {
	result := make([]OutputReport, 0, len(br.Outputs))
	for _, output := range br.Outputs {
		note := ""
		if !br.IsSuccess && br.Err != nil {
			note = br.Err.Error()
		}
		result = append(result, OutputReport{
			Address:   output.Address,
			Amount:    output.Amount,
			TxId:      br.TxId,
			IsSuccess: br.IsSuccess,
			Note:      note,
		})
	}
	return result
}

type BatchResults []BatchResult

func (brs BatchResults) ToIndividualReports() []OutputReport {
	return lo.Flatten(lo.Map(brs, func(br BatchResult, _ int) []OutputReport { return br.ToIndividualReports() }))
}

// TransactionIds lists identifiers of batches that were actually
// broadcast, in execution order. Operators reconcile partial runs
// against this list.
func (brs BatchResults) TransactionIds() []string {
	return lo.FilterMap(brs, func(br BatchResult, _ int) (string, bool) {
		return br.TxId, br.TxId != ""
	})
}

func (brs BatchResults) TotalFees() decimal.Decimal {
	return lo.Reduce(brs, func(acc decimal.Decimal, br BatchResult, _ int) decimal.Decimal {
		return acc.Add(br.Fee)
	}, decimal.Zero)
}

func (brs BatchResults) TotalDistributed() decimal.Decimal {
	return lo.Reduce(brs, func(acc decimal.Decimal, br BatchResult, _ int) decimal.Decimal {
		if !br.IsSuccess {
			return acc
		}
		return acc.Add(br.Outputs.TotalAmount())
	}, decimal.Zero)
}
