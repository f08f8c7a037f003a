package common

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuantizeAmountTruncatesTowardZero(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0.99999999", QuantizeAmount(decimal.RequireFromString("0.999999999")).String())
	assert.Equal("0.00000001", QuantizeAmount(decimal.RequireFromString("0.000000019")).String())
	assert.Equal("12.3452", QuantizeAmount(decimal.RequireFromString("12.3452")).String())

	// quantizing is idempotent
	once := QuantizeAmount(decimal.RequireFromString("33.333333333333"))
	assert.True(once.Equal(QuantizeAmount(once)))
}

func TestSubtractFeeIndices(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(FEE_FROM_CHANGE.SubtractFeeIndices(5))
	assert.Equal([]int{0, 1, 2}, FEE_FROM_RECIPIENTS.SubtractFeeIndices(3))
	assert.Empty(FEE_FROM_RECIPIENTS.SubtractFeeIndices(0))
}

func TestToRpcOutputsKeepsExactDigits(t *testing.T) {
	assert := assert.New(t)

	batch := OutputBatch{
		{Address: "itc1qaaa", Amount: decimal.RequireFromString("0.10000001")},
		{Address: "itc1qbbb", Amount: decimal.RequireFromString("25")},
	}
	outputs := batch.ToRpcOutputs()
	assert.Len(outputs, 2)
	assert.Equal("0.10000001", string(outputs["itc1qaaa"]))
	assert.Equal("25", string(outputs["itc1qbbb"]))
}

func TestOutputBatchTotalAmount(t *testing.T) {
	assert := assert.New(t)

	batch := OutputBatch{
		{Address: "a", Amount: decimal.RequireFromString("1.5")},
		{Address: "b", Amount: decimal.RequireFromString("2.25")},
	}
	assert.Equal("3.75", batch.TotalAmount().String())
	assert.True(OutputBatch{}.TotalAmount().IsZero())
}

func TestFeePolicyString(t *testing.T) {
	assert := assert.New(t)

	feeRate := decimal.RequireFromString("0.0002")
	assert.Equal("feeRate=0.0002", FeePolicy{FeeRate: &feeRate}.String())
	assert.Equal("conf_target=6", FeePolicy{ConfirmationTarget: 6}.String())
}

func TestTransactionEstimateHasChange(t *testing.T) {
	assert := assert.New(t)

	assert.True((&TransactionEstimate{ChangePosition: 1}).HasChange())
	assert.False((&TransactionEstimate{ChangePosition: NO_CHANGE_POSITION}).HasChange())
}
