package execute

import (
	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/configuration"
	"github.com/interchained/itcpay/utils"
)

type StageData struct {
	Batches      []common.OutputBatch
	BatchResults common.BatchResults
	Summary      common.DistributionSummary
}

type DistributionExecutionContext struct {
	common.ExecuteDistributionEngineContext

	configuration *configuration.RuntimeConfiguration

	protectedSection *utils.ProtectedSection
	StageData        *StageData

	Plan          common.DistributionPlan
	Outputs       []common.Output
	Recipients    int
	DroppedAsDust int
}

func (ctx *DistributionExecutionContext) GetConfiguration() *configuration.RuntimeConfiguration {
	return ctx.configuration
}

func NewDistributionExecutionContext(generationResult *common.GenerateDistributionResult, configuration *configuration.RuntimeConfiguration, engineContext *common.ExecuteDistributionEngineContext, options *common.ExecuteDistributionOptions) (*DistributionExecutionContext, error) {
	if err := engineContext.Validate(); err != nil {
		return nil, err
	}

	return &DistributionExecutionContext{
		ExecuteDistributionEngineContext: *engineContext,
		configuration:                    configuration,

		protectedSection: utils.NewProtectedSection("executing distribution, job will be terminated at the next batch boundary"),
		StageData:        &StageData{},

		Plan:          generationResult.Plan,
		Outputs:       generationResult.Outputs,
		Recipients:    generationResult.Recipients,
		DroppedAsDust: generationResult.DroppedAsDust,
	}, nil
}
