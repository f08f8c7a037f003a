package generate

import (
	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/configuration"
	"github.com/shopspring/decimal"
)

type StageData struct {
	Recipients         []common.Recipient
	WeightedRecipients []common.WeightedRecipient
	TotalWeight        decimal.Decimal
	Plan               common.DistributionPlan
	Outputs            []common.Output
	DroppedAsDust      int
}

type DistributionGenerationContext struct {
	common.GenerateDistributionEngineContext

	configuration *configuration.RuntimeConfiguration
	StageData     *StageData
}

func (ctx *DistributionGenerationContext) GetConfiguration() *configuration.RuntimeConfiguration {
	return ctx.configuration
}

func NewDistributionGenerationContext(configuration *configuration.RuntimeConfiguration, engineContext *common.GenerateDistributionEngineContext) (*DistributionGenerationContext, error) {
	if err := engineContext.Validate(); err != nil {
		return nil, err
	}
	return &DistributionGenerationContext{
		GenerateDistributionEngineContext: *engineContext,

		configuration: configuration,
		StageData:     &StageData{},
	}, nil
}
