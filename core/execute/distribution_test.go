package execute

import (
	"fmt"
	"testing"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/configuration"
	"github.com/interchained/itcpay/constants"
	"github.com/interchained/itcpay/test/mock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func makeOutputs(count int) []common.Output {
	outputs := make([]common.Output, 0, count)
	for i := 0; i < count; i++ {
		outputs = append(outputs, common.Output{
			Address: fmt.Sprintf("itc1q%03d", i),
			Amount:  decimal.NewFromInt(int64(i + 1)),
		})
	}
	return outputs
}

func newExecutionContext(t *testing.T, outputs []common.Output, transactor *mock.SimpleTransactor, reporter *mock.EmptyReporter, options *common.ExecuteDistributionOptions) *DistributionExecutionContext {
	t.Helper()
	config := configuration.GetDefaultRuntimeConfiguration()
	generationResult := &common.GenerateDistributionResult{
		Plan: common.DistributionPlan{
			RunId:       "test-run",
			TotalAmount: common.OutputBatch(outputs).TotalAmount(),
		},
		Outputs:    outputs,
		Recipients: len(outputs),
	}
	engineContext := common.NewExecuteDistributionEngineContext(mock.InitSimpleCollector(), transactor, reporter, func(string) {})
	ctx, err := NewDistributionExecutionContext(generationResult, &config, engineContext, options)
	if err != nil {
		t.Fatal(err)
	}
	return ctx
}

func TestSplitIntoBatches(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(splitIntoBatches([]common.Output{}, 2))

	outputs := makeOutputs(5)
	batches := splitIntoBatches(outputs, 0)
	assert.Len(batches, 1)
	assert.Len(batches[0], 5)

	batches = splitIntoBatches(outputs, 2)
	assert.Len(batches, 3)
	assert.Len(batches[0], 2)
	assert.Len(batches[1], 2)
	assert.Len(batches[2], 1)

	// concatenation preserves the original order
	flattened := make([]common.Output, 0, 5)
	for _, batch := range batches {
		flattened = append(flattened, batch...)
	}
	assert.Equal(outputs, flattened)
}

func TestExecuteDistributionDryRun(t *testing.T) {
	assert := assert.New(t)

	transactor := mock.InitSimpleTransactor()
	reporter := mock.InitEmptyReporter()
	options := &common.ExecuteDistributionOptions{
		DryRun:         true,
		BatchSize:      2,
		FeePolicy:      common.FeePolicy{ConfirmationTarget: 6},
		FeeSubtraction: common.FEE_FROM_CHANGE,
	}
	ctx := newExecutionContext(t, makeOutputs(3), transactor, reporter, options)

	ctx, err := SplitIntoBatches(ctx, options)
	assert.Nil(err)
	ctx, err = ExecuteDistribution(ctx, options)
	assert.Nil(err)

	assert.Len(ctx.StageData.BatchResults, 2)
	for _, result := range ctx.StageData.BatchResults {
		assert.True(result.IsSuccess)
		assert.Empty(result.TxId)
	}
	// estimates only, nothing signed or broadcast
	assert.Equal(0, transactor.SignCalls)
	assert.Equal(0, transactor.BroadcastCalls)
	assert.True(ctx.StageData.Summary.DryRun)
	assert.Empty(ctx.StageData.Summary.TransactionIds)
}

func TestExecuteDistributionSend(t *testing.T) {
	assert := assert.New(t)

	transactor := mock.InitSimpleTransactor()
	reporter := mock.InitEmptyReporter()
	options := &common.ExecuteDistributionOptions{
		BatchSize:      2,
		Replaceable:    true,
		FeePolicy:      common.FeePolicy{ConfirmationTarget: 6},
		FeeSubtraction: common.FEE_FROM_RECIPIENTS,
	}
	outputs := makeOutputs(5)
	ctx := newExecutionContext(t, outputs, transactor, reporter, options)

	ctx, err := SplitIntoBatches(ctx, options)
	assert.Nil(err)
	ctx, err = ExecuteDistribution(ctx, options)
	assert.Nil(err)

	assert.Len(ctx.StageData.BatchResults, 3)
	assert.Equal([]string{"tx-1", "tx-2", "tx-3"}, ctx.StageData.Summary.TransactionIds)
	assert.Equal(5, ctx.StageData.Summary.PaidRecipients)
	assert.Equal(0, ctx.StageData.Summary.FailedBatches)
	assert.True(ctx.StageData.Summary.Replaceable)

	// fee subtraction indices follow each batch's size
	assert.Equal([]int{0, 1}, transactor.CreatedOptions[0].SubtractFeeFromOutputs)
	assert.Equal([]int{0}, transactor.CreatedOptions[2].SubtractFeeFromOutputs)

	// plan is reported before execution, final report carries one row
	// per output
	assert.Len(reporter.PlanReports["test-run"], 5)
	assert.Len(reporter.ResultReports["test-run"], 5)
	assert.Len(reporter.SummaryReports, 1)
}

func TestExecuteDistributionStopsOnFailedBatch(t *testing.T) {
	assert := assert.New(t)

	transactor := mock.InitSimpleTransactor()
	transactor.SetOpts(&mock.SimpleTransactorOpts{
		Fee:                       decimal.RequireFromString("0.0001"),
		ChangePosition:            1,
		FinalizeIncompleteOnBatch: 2,
	})
	reporter := mock.InitEmptyReporter()
	options := &common.ExecuteDistributionOptions{
		BatchSize:      2,
		FeePolicy:      common.FeePolicy{ConfirmationTarget: 6},
		FeeSubtraction: common.FEE_FROM_CHANGE,
	}
	ctx := newExecutionContext(t, makeOutputs(5), transactor, reporter, options)

	ctx, err := SplitIntoBatches(ctx, options)
	assert.Nil(err)
	ctx, err = ExecuteDistribution(ctx, options)
	assert.Nil(err)

	// third batch is never attempted
	assert.Len(ctx.StageData.BatchResults, 2)
	assert.Len(transactor.CreatedBatches, 2)

	first := ctx.StageData.BatchResults[0]
	assert.True(first.IsSuccess)
	assert.Equal("tx-1", first.TxId)

	second := ctx.StageData.BatchResults[1]
	assert.False(second.IsSuccess)
	assert.ErrorIs(second.Err, constants.ErrPsbtIncomplete)

	// the broadcast batch stands, no rollback
	assert.Equal([]string{"tx-1"}, ctx.StageData.Summary.TransactionIds)
	assert.Equal(2, ctx.StageData.Summary.PaidRecipients)
	assert.Equal(1, ctx.StageData.Summary.FailedBatches)
	assert.Equal(3, ctx.StageData.Summary.Batches)
}
