package generate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/constants"
)

// BuildOutputs quantizes each recipient's proportional amount, drops
// dust and validates the surviving addresses against the node.
//
// Dust-dropped shares are excluded entirely, not redistributed among
// the remaining recipients - the truncation and dust residue stays in
// the wallet as change. An invalid non-dust address aborts the whole
// run.
func BuildOutputs(ctx *DistributionGenerationContext, options *common.GenerateDistributionOptions) (*DistributionGenerationContext, error) {
	logger := slog.Default().With("phase", "build_outputs")

	// the threshold arrives resolved from the command layer, a zero
	// threshold is a valid choice which only drops zero-amount outputs
	dustThreshold := options.DustThreshold

	totalAmount := ctx.StageData.Plan.TotalAmount
	totalWeight := ctx.StageData.TotalWeight
	collector := ctx.GetCollector()

	outputs := make([]common.Output, 0, len(ctx.StageData.WeightedRecipients))
	droppedAsDust := 0
	for _, recipient := range ctx.StageData.WeightedRecipients {
		amount := common.QuantizeAmount(totalAmount.Mul(recipient.Weight).Div(totalWeight))
		if amount.LessThanOrEqual(dustThreshold) {
			logger.Debug("dropping dust output", "address", recipient.Address, "amount", amount)
			droppedAsDust++
			continue
		}
		valid, err := collector.ValidateAddress(recipient.Address)
		if err != nil {
			return ctx, err
		}
		if !valid {
			return ctx, errors.Join(constants.ErrInvalidAddress, fmt.Errorf("address '%s' rejected by node", recipient.Address))
		}
		outputs = append(outputs, common.Output{
			Address: recipient.Address,
			Amount:  amount,
		})
	}

	if len(outputs) == 0 {
		return ctx, constants.ErrAllOutputsDust
	}

	logger.Debug("outputs built", "count", len(outputs), "dropped_as_dust", droppedAsDust)
	ctx.StageData.Outputs = outputs
	ctx.StageData.DroppedAsDust = droppedAsDust
	return ctx, nil
}
