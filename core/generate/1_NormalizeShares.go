package generate

import (
	"log/slog"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/constants"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// NormalizeShares clamps negative shares to zero. A negative share
// never subtracts from the pool and never rejects the row, only an
// all-zero total is fatal.
func NormalizeShares(ctx *DistributionGenerationContext, options *common.GenerateDistributionOptions) (*DistributionGenerationContext, error) {
	weighted := lo.Map(ctx.StageData.Recipients, func(recipient common.Recipient, _ int) common.WeightedRecipient {
		weight := recipient.Share
		if weight.IsNegative() {
			slog.Warn("clamping negative share to zero", "address", recipient.Address, "share", recipient.Share)
			weight = decimal.Zero
		}
		return common.WeightedRecipient{
			Address: recipient.Address,
			Weight:  weight,
		}
	})

	totalWeight := lo.Reduce(weighted, func(acc decimal.Decimal, recipient common.WeightedRecipient, _ int) decimal.Decimal {
		return acc.Add(recipient.Weight)
	}, decimal.Zero)

	if !totalWeight.IsPositive() {
		return ctx, constants.ErrZeroTotalWeight
	}

	ctx.StageData.WeightedRecipients = weighted
	ctx.StageData.TotalWeight = totalWeight
	return ctx, nil
}
