package execute

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/constants"
	"github.com/samber/lo"
)

func (ctx *DistributionExecutionContext) psbtOptions(options *common.ExecuteDistributionOptions, batchSize int) *common.PsbtOptions {
	changeType := options.ChangeType
	if changeType == "" {
		changeType = ctx.configuration.PayoutConfiguration.ChangeType
	}
	return &common.PsbtOptions{
		ChangeType:             changeType,
		Replaceable:            options.Replaceable,
		SubtractFeeFromOutputs: options.FeeSubtraction.SubtractFeeIndices(batchSize),
		FeePolicy:              options.FeePolicy,
	}
}

func estimateBatch(ctx *DistributionExecutionContext, options *common.ExecuteDistributionOptions, batch common.OutputBatch) (*common.TransactionEstimate, error) {
	return ctx.GetTransactor().CreateFundedPsbt(batch, ctx.psbtOptions(options, len(batch)))
}

func dryRunExecuteBatch(ctx *DistributionExecutionContext, logger *slog.Logger, options *common.ExecuteDistributionOptions, batch common.OutputBatch) *common.BatchResult {
	estimate, err := estimateBatch(ctx, options, batch)
	if err != nil {
		logger.Warn("failed to estimate batch", "error", err.Error(), "phase", "batch_execution_finished")
		return common.NewFailedBatchResult(batch, err)
	}
	logger.Info("batch estimated", "fee", estimate.Fee, "change_position", estimate.ChangePosition, "phase", "batch_execution_finished")
	return common.NewEstimatedBatchResult(batch, estimate.Fee)
}

func executeBatch(ctx *DistributionExecutionContext, logger *slog.Logger, options *common.ExecuteDistributionOptions, batch common.OutputBatch) *common.BatchResult {
	transactor := ctx.GetTransactor()

	estimate, err := estimateBatch(ctx, options, batch)
	if err != nil {
		logger.Warn("failed to estimate batch", "error", err.Error(), "phase", "batch_execution_finished")
		return common.NewFailedBatchResult(batch, err)
	}
	logger.Info("batch estimated", "fee", estimate.Fee, "change_position", estimate.ChangePosition)

	signedPsbt, complete, err := transactor.SignPsbt(estimate.Psbt)
	if err != nil {
		logger.Warn("failed to sign batch", "error", err.Error(), "phase", "batch_execution_finished")
		return common.NewFailedBatchResult(batch, err)
	}
	if !complete {
		logger.Warn("psbt incomplete after signing", "phase", "batch_execution_finished")
		return common.NewFailedBatchResult(batch, errors.Join(constants.ErrPsbtIncomplete, errors.New("signing did not complete, check keys and utxos")))
	}

	rawTx, complete, err := transactor.FinalizePsbt(signedPsbt)
	if err != nil {
		logger.Warn("failed to finalize batch", "error", err.Error(), "phase", "batch_execution_finished")
		return common.NewFailedBatchResult(batch, err)
	}
	if !complete {
		logger.Warn("psbt incomplete after finalization", "phase", "batch_execution_finished")
		return common.NewFailedBatchResult(batch, errors.Join(constants.ErrPsbtIncomplete, errors.New("finalization did not complete")))
	}

	logger.Info("broadcasting batch")
	txId, err := transactor.Broadcast(rawTx)
	if err != nil {
		logger.Warn("failed to broadcast batch", "error", err.Error(), "phase", "batch_execution_finished")
		return common.NewFailedBatchResult(batch, err)
	}

	logger.Info("batch successful", constants.LOG_FIELD_TRANSACTION_ID, txId, "phase", "batch_execution_finished")
	return common.NewSuccessBatchResult(batch, txId, estimate.Fee)
}

// ExecuteDistribution walks the batches strictly sequentially - each
// batch's funding may consume wallet inputs a concurrent batch would
// race for. A failed batch terminates the run, batches already
// broadcast stand. There is deliberately no retry and no rollback,
// resubmitting is an operator decision.
func ExecuteDistribution(ctx *DistributionExecutionContext, options *common.ExecuteDistributionOptions) (*DistributionExecutionContext, error) {
	logger := slog.Default()
	batchCount := len(ctx.StageData.Batches)
	batchResults := make(common.BatchResults, 0, batchCount)
	reporter := ctx.GetReporter()

	if err := reporter.ReportPlan(ctx.Plan.RunId, ctx.Outputs); err != nil {
		logger.Warn("failed to report distribution plan", "error", err.Error())
	}

	ctx.protectedSection.Start()
	logger.Info("distributing", "batches_count", batchCount, "dry_run", options.DryRun, "phase", "batch_execution_start")
	for i, batch := range ctx.StageData.Batches {
		if err := reporter.ReportResults(ctx.Plan.RunId, batchResults.ToIndividualReports()); err != nil {
			logger.Warn("failed to write partial distribution report", "error", err.Error())
		}

		if ctx.protectedSection.Signaled() {
			batchResults = append(batchResults, *common.NewFailedBatchResult(batch, constants.ErrExecuteDistributionUserTerminated))
			ctx.AdminNotify("distribution terminated by user")
			break
		}

		batchId := fmt.Sprintf("%d/%d", i+1, batchCount)
		batchLogger := logger.With("batch_id", batchId)
		batchLogger.Info("executing batch", "tx_count", len(batch), "phase", "executing_batch")

		var result *common.BatchResult
		if options.DryRun {
			result = dryRunExecuteBatch(ctx, batchLogger, options, batch)
		} else {
			result = executeBatch(ctx, batchLogger, options, batch)
		}
		batchResults = append(batchResults, *result)

		if !result.IsSuccess {
			// remaining batches are not attempted, the operator has to
			// inspect node state before resubmitting
			break
		}
	}
	ctx.protectedSection.Stop()

	ctx.StageData.BatchResults = batchResults
	ctx.StageData.Summary = buildSummary(ctx, options, batchResults)

	if err := reporter.ReportResults(ctx.Plan.RunId, batchResults.ToIndividualReports()); err != nil {
		logger.Warn("failed to report distribution results", "error", err.Error())
	}
	if err := reporter.ReportSummary(&ctx.StageData.Summary); err != nil {
		logger.Warn("failed to report distribution summary", "error", err.Error())
	}

	return ctx, nil
}

func buildSummary(ctx *DistributionExecutionContext, options *common.ExecuteDistributionOptions, batchResults common.BatchResults) common.DistributionSummary {
	paidRecipients := lo.Reduce(batchResults, func(acc int, br common.BatchResult, _ int) int {
		if !br.IsSuccess {
			return acc
		}
		return acc + len(br.Outputs)
	}, 0)
	failedBatches := lo.CountBy(batchResults, func(br common.BatchResult) bool { return !br.IsSuccess })

	return common.DistributionSummary{
		RunId:             ctx.Plan.RunId,
		Comment:           ctx.Plan.Comment,
		DryRun:            options.DryRun,
		TotalAmount:       ctx.Plan.TotalAmount,
		Recipients:        ctx.Recipients,
		PaidRecipients:    paidRecipients,
		DroppedAsDust:     ctx.DroppedAsDust,
		Batches:           len(ctx.StageData.Batches),
		FailedBatches:     failedBatches,
		TotalDistributed:  batchResults.TotalDistributed(),
		TotalFees:         batchResults.TotalFees(),
		TransactionIds:    batchResults.TransactionIds(),
		FeePolicy:         options.FeePolicy.String(),
		FeeSubtractedFrom: string(options.FeeSubtraction),
		Replaceable:       options.Replaceable,
	}
}
