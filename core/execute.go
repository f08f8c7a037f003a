package core

import (
	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/configuration"
	"github.com/interchained/itcpay/constants"
	"github.com/interchained/itcpay/core/execute"
)

// ExecuteDistribution never retries - a batch failure is reflected in
// the results, not returned as an error, so callers cannot be tempted
// into rerunning a partially broadcast distribution.
func ExecuteDistribution(generationResult *common.GenerateDistributionResult, config *configuration.RuntimeConfiguration, engineContext *common.ExecuteDistributionEngineContext, options *common.ExecuteDistributionOptions) (*common.ExecuteDistributionResult, error) {
	if config == nil {
		return nil, constants.ErrMissingConfiguration
	}

	ctx, err := execute.NewDistributionExecutionContext(generationResult, config, engineContext, options)
	if err != nil {
		return nil, err
	}

	ctx, err = WrapContext[*execute.DistributionExecutionContext, *common.ExecuteDistributionOptions](ctx).ExecuteStages(options,
		execute.SplitIntoBatches,
		execute.ExecuteDistribution).Unwrap()
	if err != nil {
		return nil, err
	}

	return &common.ExecuteDistributionResult{
		BatchResults: ctx.StageData.BatchResults,
		Summary:      ctx.StageData.Summary,
	}, nil
}
