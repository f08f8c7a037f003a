package generate

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/constants"
)

// ResolveTotalAmount fixes the amount the run distributes - either the
// caller-supplied figure or the trusted wallet balance, never both.
// Untrusted, immature and watch-only balances are deliberately
// excluded.
func ResolveTotalAmount(ctx *DistributionGenerationContext, options *common.GenerateDistributionOptions) (*DistributionGenerationContext, error) {
	hasExplicitAmount := options.TotalAmount.IsPositive()
	switch {
	case hasExplicitAmount && options.UseWalletBalance:
		return ctx, constants.ErrAmbiguousTotalAmount
	case !hasExplicitAmount && !options.UseWalletBalance:
		return ctx, constants.ErrNoTotalAmountSource
	}

	totalAmount := common.QuantizeAmount(options.TotalAmount)
	if options.UseWalletBalance {
		balances, err := ctx.GetCollector().GetWalletBalances()
		if err != nil {
			return ctx, err
		}
		if !balances.Trusted.IsPositive() {
			return ctx, errors.Join(constants.ErrNoSpendableBalance, errors.New("trusted balance is "+balances.Trusted.String()))
		}
		totalAmount = common.QuantizeAmount(balances.Trusted)
		slog.Info("using trusted wallet balance", "balance", common.FormatAmount(totalAmount))
	}

	ctx.StageData.Plan = common.DistributionPlan{
		RunId:       uuid.New().String(),
		TotalAmount: totalAmount,
		Comment:     options.Comment,
	}
	return ctx, nil
}
