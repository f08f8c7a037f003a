package core

import (
	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/configuration"
	"github.com/interchained/itcpay/constants"
	"github.com/interchained/itcpay/core/generate"
)

func GenerateDistribution(config *configuration.RuntimeConfiguration, engineContext *common.GenerateDistributionEngineContext, options *common.GenerateDistributionOptions) (*common.GenerateDistributionResult, error) {
	if config == nil {
		return nil, constants.ErrMissingConfiguration
	}

	ctx, err := generate.NewDistributionGenerationContext(config, engineContext)
	if err != nil {
		return nil, err
	}

	ctx, err = WrapContext[*generate.DistributionGenerationContext, *common.GenerateDistributionOptions](ctx).ExecuteStages(options,
		generate.LoadRecipients,
		generate.NormalizeShares,
		generate.ResolveTotalAmount,
		generate.BuildOutputs).Unwrap()
	if err != nil {
		return nil, err
	}

	return &common.GenerateDistributionResult{
		Plan:          ctx.StageData.Plan,
		Outputs:       ctx.StageData.Outputs,
		Recipients:    len(ctx.StageData.Recipients),
		DroppedAsDust: ctx.StageData.DroppedAsDust,
	}, nil
}
