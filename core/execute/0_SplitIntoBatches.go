package execute

import (
	"log/slog"

	"github.com/interchained/itcpay/common"
	"github.com/samber/lo"
)

// splitIntoBatches partitions outputs into ordered groups of at most
// batchSize, batchSize 0 meaning a single batch with everything. No
// reordering, no recipient split across batches.
func splitIntoBatches(outputs []common.Output, batchSize int) []common.OutputBatch {
	if len(outputs) == 0 {
		return []common.OutputBatch{}
	}
	if batchSize <= 0 {
		return []common.OutputBatch{outputs}
	}
	return lo.Map(lo.Chunk(outputs, batchSize), func(chunk []common.Output, _ int) common.OutputBatch {
		return chunk
	})
}

func SplitIntoBatches(ctx *DistributionExecutionContext, options *common.ExecuteDistributionOptions) (*DistributionExecutionContext, error) {
	logger := slog.Default().With("phase", "split_into_batches")

	batches := splitIntoBatches(ctx.Outputs, options.BatchSize)
	logger.Info("splitting into batches", "outputs", len(ctx.Outputs), "batches", len(batches), "batch_size", options.BatchSize)

	ctx.StageData.Batches = batches
	return ctx, nil
}
