package common

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToIndividualReportsSuccessfulResult(t *testing.T) {
	assert := assert.New(t)

	batch := OutputBatch{
		{Address: "itc1qaaa", Amount: decimal.RequireFromString("1.5")},
		{Address: "itc1qbbb", Amount: decimal.RequireFromString("2.5")},
	}
	result := NewSuccessBatchResult(batch, "txid-1", decimal.RequireFromString("0.0001"))

	reports := result.ToIndividualReports()
	assert.Len(reports, 2)
	for i, report := range reports {
		assert.Equal(batch[i].Address, report.Address)
		assert.True(batch[i].Amount.Equal(report.Amount))
		assert.Equal("txid-1", report.TxId)
		assert.True(report.IsSuccess)
		assert.Empty(report.Note)
	}
}

func TestToIndividualReportsFailedResult(t *testing.T) {
	assert := assert.New(t)

	batch := OutputBatch{
		{Address: "itc1qaaa", Amount: decimal.RequireFromString("1.5")},
	}
	result := NewFailedBatchResult(batch, errors.New("broadcast rejected"))

	reports := result.ToIndividualReports()
	assert.Len(reports, 1)
	assert.False(reports[0].IsSuccess)
	assert.Empty(reports[0].TxId)
	assert.Equal("broadcast rejected", reports[0].Note)
}

func TestBatchResultsAggregates(t *testing.T) {
	assert := assert.New(t)

	results := BatchResults{
		*NewSuccessBatchResult(OutputBatch{
			{Address: "a", Amount: decimal.RequireFromString("1")},
			{Address: "b", Amount: decimal.RequireFromString("2")},
		}, "tx-1", decimal.RequireFromString("0.0001")),
		*NewFailedBatchResult(OutputBatch{
			{Address: "c", Amount: decimal.RequireFromString("4")},
		}, errors.New("failed")),
	}

	assert.Equal([]string{"tx-1"}, results.TransactionIds())
	assert.Equal("0.0001", results.TotalFees().String())
	// failed batch never contributes to the distributed total
	assert.Equal("3", results.TotalDistributed().String())
	assert.Len(results.ToIndividualReports(), 3)
}
