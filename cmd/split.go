package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/constants"
	"github.com/interchained/itcpay/core"
	reporter_engines "github.com/interchained/itcpay/engines/reporter"
	"github.com/interchained/itcpay/state"
	"github.com/interchained/itcpay/utils"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "two-pool percentage split",
	Long:  "splits the wallet balance or a fixed amount between two addresses by percentage, fees subtracted from both outputs",
	Run: func(cmd *cobra.Command, args []string) {
		config, collector, transactor := assertRunWithResult(loadConfigurationAndEngines, common.EXIT_CONFIGURATION_LOAD_FAILURE).Unwrap()

		ambAddress, _ := cmd.Flags().GetString(AMB_ADDRESS_FLAG)
		govAddress, _ := cmd.Flags().GetString(GOV_ADDRESS_FLAG)
		ambPct, _ := cmd.Flags().GetInt64(AMB_PCT_FLAG)
		totalAmountRaw, _ := cmd.Flags().GetString(TOTAL_AMOUNT_FLAG)
		useBalance, _ := cmd.Flags().GetBool(USE_BALANCE_FLAG)
		send, _ := cmd.Flags().GetBool(SEND_FLAG)
		confirmed, _ := cmd.Flags().GetBool(CONFIRM_FLAG)
		isDryRun := !send

		if ambAddress == "" || govAddress == "" {
			slog.Error("both split addresses are required")
			os.Exit(common.EXIT_INVALID_ARGS)
		}
		if ambPct <= 0 || ambPct >= 100 {
			slog.Error("split percentage out of range", "amb_pct", ambPct)
			os.Exit(common.EXIT_INVALID_ARGS)
		}

		totalAmount := decimal.Zero
		if totalAmountRaw != "" {
			totalAmount = assertRunWithResultAndErrorMessage(func() (decimal.Decimal, error) {
				return decimal.NewFromString(totalAmountRaw)
			}, common.EXIT_INVALID_ARGS, "invalid total amount", "amount", totalAmountRaw)
		}

		feePolicy := assertRunWithResultAndErrorMessage(func() (common.FeePolicy, error) {
			return resolveFeePolicy(cmd, config)
		}, common.EXIT_INVALID_ARGS, "invalid fee policy")

		replaceable := config.PayoutConfiguration.Replaceable
		if rbf, _ := cmd.Flags().GetBool(RBF_FLAG); rbf {
			replaceable = true
		}

		generationResult := assertRunWithResult(func() (*common.GenerateDistributionResult, error) {
			return core.GenerateDistribution(config, common.NewGenerateDistributionEngineContext(collector), &common.GenerateDistributionOptions{
				InlineRecipients: []common.Recipient{
					{Address: ambAddress, Share: decimal.NewFromInt(ambPct)},
					{Address: govAddress, Share: decimal.NewFromInt(100 - ambPct)},
				},
				TotalAmount:      totalAmount,
				UseWalletBalance: useBalance,
				DustThreshold:    config.PayoutConfiguration.DustThreshold,
				Comment:          fmt.Sprintf("split %d/%d", ambPct, 100-ambPct),
			})
		}, common.EXIT_OPERATION_FAILED)

		switch {
		case state.Global.GetWantsOutputJson():
			slog.Info(constants.LOG_MESSAGE_DISTRIBUTION_PLAN,
				constants.LOG_FIELD_RUN_ID, generationResult.Plan.RunId,
				constants.LOG_FIELD_OUTPUTS, generationResult.Outputs,
				constants.LOG_FIELD_TOTAL_AMOUNT, generationResult.Plan.TotalAmount,
			)
		default:
			utils.PrintDistributionPlan(generationResult, config.PayoutConfiguration.DustThreshold.String())
			if isDryRun {
				fmt.Println(constants.DRY_RUN_NOTE)
			}
		}

		if !confirmed && !isDryRun {
			assertRequireConfirmation("Do you want to broadcast the above split?")
		}

		unlock, err := lockWallet(config.Rpc.Wallet)
		if err != nil {
			slog.Error("failed to acquire run lock", "error", err.Error())
			os.Exit(common.EXIT_OPERATION_FAILED)
		}
		defer unlock()

		reporter := reporter_engines.NewFileSystemReporter(&common.ReporterEngineOptions{DryRun: isDryRun})

		executionResult := assertRunWithResult(func() (*common.ExecuteDistributionResult, error) {
			return core.ExecuteDistribution(generationResult, config, common.NewExecuteDistributionEngineContext(collector, transactor, reporter, notifyAdminFactory(config)), &common.ExecuteDistributionOptions{
				DryRun:      isDryRun,
				Replaceable: replaceable,
				ChangeType:  config.PayoutConfiguration.ChangeType,
				FeePolicy:   feePolicy,
				// both outputs cover the fee, change stays untouched
				FeeSubtraction: common.FEE_FROM_RECIPIENTS,
			})
		}, common.EXIT_OPERATION_FAILED)

		switch {
		case state.Global.GetWantsOutputJson():
			slog.Info(constants.LOG_MESSAGE_DISTRIBUTION_EXECUTED,
				constants.LOG_FIELD_RUN_ID, generationResult.Plan.RunId,
				constants.LOG_FIELD_BATCH_RESULTS, executionResult.BatchResults,
				"phase", "result",
			)
		default:
			utils.PrintBatchResults(executionResult.BatchResults, fmt.Sprintf("Results of %s", generationResult.Plan.RunId), config.ExplorerUrl)
		}

		failedCount := lo.CountBy(executionResult.BatchResults, func(br common.BatchResult) bool { return !br.IsSuccess })
		if failedCount > 0 {
			slog.Error("failed batches detected", "failed", failedCount, "total", len(executionResult.BatchResults))
			os.Exit(common.EXIT_OPERATION_FAILED)
		}
	},
}

func init() {
	splitCmd.Flags().String(AMB_ADDRESS_FLAG, "", "first pool address")
	splitCmd.Flags().String(GOV_ADDRESS_FLAG, "", "second pool address")
	splitCmd.Flags().Int64(AMB_PCT_FLAG, 80, "percentage sent to the first pool (0 < pct < 100)")
	splitCmd.Flags().String(TOTAL_AMOUNT_FLAG, "", "fixed amount to split")
	splitCmd.Flags().Bool(USE_BALANCE_FLAG, false, "splits the wallet's trusted balance")
	splitCmd.Flags().Bool(SEND_FLAG, false, "signs and broadcasts transactions (default is dry run)")
	splitCmd.Flags().String(FEE_RATE_FLAG, "", "explicit fee rate")
	splitCmd.Flags().Int64(CONF_TARGET_FLAG, 0, "confirmation target in blocks")
	splitCmd.Flags().Bool(RBF_FLAG, false, "marks transactions replaceable")
	splitCmd.Flags().Bool(CONFIRM_FLAG, false, "automatically confirms broadcast")

	RootCmd.AddCommand(splitCmd)
}
