package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/configuration"
	"github.com/interchained/itcpay/constants"
	"github.com/interchained/itcpay/core"
	reporter_engines "github.com/interchained/itcpay/engines/reporter"
	"github.com/interchained/itcpay/state"
	"github.com/interchained/itcpay/utils"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// resolveFeePolicy layers fee flags over the configuration. Exactly one
// of fee rate and confirmation target survives.
func resolveFeePolicy(cmd *cobra.Command, config *configuration.RuntimeConfiguration) (common.FeePolicy, error) {
	feeRateRaw, _ := cmd.Flags().GetString(FEE_RATE_FLAG)
	confTarget, _ := cmd.Flags().GetInt64(CONF_TARGET_FLAG)

	if feeRateRaw != "" && confTarget > 0 {
		return common.FeePolicy{}, constants.ErrAmbiguousFeePolicy
	}
	if feeRateRaw != "" {
		feeRate, err := decimal.NewFromString(feeRateRaw)
		if err != nil || !feeRate.IsPositive() {
			return common.FeePolicy{}, constants.ErrAmbiguousFeePolicy
		}
		return common.FeePolicy{FeeRate: &feeRate}, nil
	}
	if confTarget > 0 {
		return common.FeePolicy{ConfirmationTarget: confTarget}, nil
	}
	if config.PayoutConfiguration.FeeRate != nil {
		return common.FeePolicy{FeeRate: config.PayoutConfiguration.FeeRate}, nil
	}
	return common.FeePolicy{ConfirmationTarget: config.PayoutConfiguration.ConfirmationTarget}, nil
}

var distributeCmd = &cobra.Command{
	Use:   "distribute",
	Short: "proportional distribution",
	Long:  "distributes the wallet balance or a fixed amount across recipients proportionally to their shares",
	Run: func(cmd *cobra.Command, args []string) {
		config, collector, transactor := assertRunWithResult(loadConfigurationAndEngines, common.EXIT_CONFIGURATION_LOAD_FAILURE).Unwrap()

		csvPath, _ := cmd.Flags().GetString(CSV_FLAG)
		jsonPath, _ := cmd.Flags().GetString(JSON_FLAG)
		totalAmountRaw, _ := cmd.Flags().GetString(TOTAL_AMOUNT_FLAG)
		useBalance, _ := cmd.Flags().GetBool(USE_BALANCE_FLAG)
		send, _ := cmd.Flags().GetBool(SEND_FLAG)
		confirmed, _ := cmd.Flags().GetBool(CONFIRM_FLAG)
		comment, _ := cmd.Flags().GetString(COMMENT_FLAG)
		isDryRun := !send

		totalAmount := decimal.Zero
		if totalAmountRaw != "" {
			totalAmount = assertRunWithResultAndErrorMessage(func() (decimal.Decimal, error) {
				return decimal.NewFromString(totalAmountRaw)
			}, common.EXIT_INVALID_ARGS, "invalid total amount", "amount", totalAmountRaw)
		}

		dustThreshold := config.PayoutConfiguration.DustThreshold
		if minOutputRaw, _ := cmd.Flags().GetString(MIN_OUTPUT_FLAG); minOutputRaw != "" {
			dustThreshold = assertRunWithResultAndErrorMessage(func() (decimal.Decimal, error) {
				return decimal.NewFromString(minOutputRaw)
			}, common.EXIT_INVALID_ARGS, "invalid minimum output", "min_output", minOutputRaw)
		}

		feePolicy := assertRunWithResultAndErrorMessage(func() (common.FeePolicy, error) {
			return resolveFeePolicy(cmd, config)
		}, common.EXIT_INVALID_ARGS, "invalid fee policy")

		feeSubtraction := config.PayoutConfiguration.FeeSubtraction
		if feeFromOutputs, _ := cmd.Flags().GetBool(FEE_FROM_OUTPUTS_FLAG); feeFromOutputs {
			feeSubtraction = common.FEE_FROM_RECIPIENTS
		}

		replaceable := config.PayoutConfiguration.Replaceable
		if rbf, _ := cmd.Flags().GetBool(RBF_FLAG); rbf {
			replaceable = true
		}

		batchSize := config.PayoutConfiguration.BatchSize
		if cmd.Flags().Changed(BATCH_SIZE_FLAG) {
			batchSize, _ = cmd.Flags().GetInt(BATCH_SIZE_FLAG)
		}
		if comment == "" {
			comment = config.PayoutConfiguration.Comment
		}

		generationResult := assertRunWithResult(func() (*common.GenerateDistributionResult, error) {
			return core.GenerateDistribution(config, common.NewGenerateDistributionEngineContext(collector), &common.GenerateDistributionOptions{
				CsvSourcePath:    csvPath,
				JsonSourcePath:   jsonPath,
				TotalAmount:      totalAmount,
				UseWalletBalance: useBalance,
				DustThreshold:    dustThreshold,
				Comment:          comment,
			})
		}, common.EXIT_OPERATION_FAILED)

		switch {
		case state.Global.GetWantsOutputJson():
			slog.Info(constants.LOG_MESSAGE_DISTRIBUTION_PLAN,
				constants.LOG_FIELD_RUN_ID, generationResult.Plan.RunId,
				constants.LOG_FIELD_OUTPUTS, generationResult.Outputs,
				constants.LOG_FIELD_TOTAL_AMOUNT, generationResult.Plan.TotalAmount,
				constants.LOG_FIELD_DROPPED_DUST, generationResult.DroppedAsDust,
			)
		default:
			utils.PrintDistributionPlan(generationResult, dustThreshold.String())
			if isDryRun {
				fmt.Println(constants.DRY_RUN_NOTE)
			}
		}

		if isDryRun {
			if mempoolInfo, err := collector.GetMempoolInfo(); err == nil {
				slog.Info("mempool fee floor", "mempool_min_fee", mempoolInfo.MempoolMinFee, "min_relay_tx_fee", mempoolInfo.MinRelayTxFee)
			}
		}

		if !confirmed && !isDryRun {
			assertRequireConfirmation("Do you want to broadcast the above distribution?")
		}

		unlock, err := lockWallet(config.Rpc.Wallet)
		if err != nil {
			slog.Error("failed to acquire run lock", "error", err.Error())
			os.Exit(common.EXIT_OPERATION_FAILED)
		}
		defer unlock()

		var reporter common.ReporterEngine
		reporter = reporter_engines.NewFileSystemReporter(&common.ReporterEngineOptions{DryRun: isDryRun})
		if reportToStdout, _ := cmd.Flags().GetBool(REPORT_TO_STDOUT); reportToStdout {
			reporter = reporter_engines.NewStdioReporter()
		} else if config.GcsBucket != "" {
			gcsReporter := assertRunWithResult(func() (*reporter_engines.GCSReporter, error) {
				return reporter_engines.NewGCSReporter(cmd.Context(), config.GcsBucket, &common.ReporterEngineOptions{DryRun: isDryRun})
			}, common.EXIT_REPORT_WRITE_FAILURE)
			defer gcsReporter.Close()
			reporter = gcsReporter
		}

		slog.Info("executing distribution", "dry_run", isDryRun)
		executionResult := assertRunWithResult(func() (*common.ExecuteDistributionResult, error) {
			return core.ExecuteDistribution(generationResult, config, common.NewExecuteDistributionEngineContext(collector, transactor, reporter, notifyAdminFactory(config)), &common.ExecuteDistributionOptions{
				DryRun:         isDryRun,
				BatchSize:      batchSize,
				Replaceable:    replaceable,
				ChangeType:     config.PayoutConfiguration.ChangeType,
				FeePolicy:      feePolicy,
				FeeSubtraction: feeSubtraction,
			})
		}, common.EXIT_OPERATION_FAILED)

		switch {
		case state.Global.GetWantsOutputJson():
			slog.Info(constants.LOG_MESSAGE_DISTRIBUTION_EXECUTED,
				constants.LOG_FIELD_RUN_ID, generationResult.Plan.RunId,
				constants.LOG_FIELD_BATCHES, executionResult.Summary.Batches,
				constants.LOG_FIELD_BATCH_RESULTS, executionResult.BatchResults,
				"phase", "result",
			)
		default:
			utils.PrintBatchResults(executionResult.BatchResults, fmt.Sprintf("Results of %s", generationResult.Plan.RunId), config.ExplorerUrl)
			utils.PrintDistributionSummary(&executionResult.Summary)
		}

		failedCount := lo.CountBy(executionResult.BatchResults, func(br common.BatchResult) bool { return !br.IsSuccess })
		if silent, _ := cmd.Flags().GetBool(SILENT_FLAG); !silent && !isDryRun && failedCount == 0 {
			notifyDistributionProcessedThroughAllNotificators(config, &executionResult.Summary)
		}
		if failedCount > 0 {
			slog.Error("failed batches detected", "failed", failedCount, "total", len(executionResult.BatchResults))
			os.Exit(common.EXIT_OPERATION_FAILED)
		}
	},
}

func init() {
	distributeCmd.Flags().String(CSV_FLAG, "", "path to csv recipient source (address,share)")
	distributeCmd.Flags().String(JSON_FLAG, "", "path to json recipient source")
	distributeCmd.Flags().String(TOTAL_AMOUNT_FLAG, "", "fixed amount to distribute")
	distributeCmd.Flags().Bool(USE_BALANCE_FLAG, false, "distributes the wallet's trusted balance")
	distributeCmd.Flags().Bool(SEND_FLAG, false, "signs and broadcasts transactions (default is dry run)")
	distributeCmd.Flags().Int(BATCH_SIZE_FLAG, 0, "maximum outputs per transaction (0 = single batch)")
	distributeCmd.Flags().String(FEE_RATE_FLAG, "", "explicit fee rate")
	distributeCmd.Flags().Int64(CONF_TARGET_FLAG, 0, "confirmation target in blocks")
	distributeCmd.Flags().Bool(RBF_FLAG, false, "marks transactions replaceable")
	distributeCmd.Flags().String(MIN_OUTPUT_FLAG, "", "dust threshold, outputs at or below are dropped")
	distributeCmd.Flags().Bool(FEE_FROM_OUTPUTS_FLAG, false, "subtracts fees from recipient outputs instead of change")
	distributeCmd.Flags().String(COMMENT_FLAG, "", "comment stored with the run reports")
	distributeCmd.Flags().Bool(CONFIRM_FLAG, false, "automatically confirms broadcast")
	distributeCmd.Flags().Bool(REPORT_TO_STDOUT, false, "prints reports to stdout (wont write to file)")
	distributeCmd.Flags().BoolP(SILENT_FLAG, "s", false, "suppresses notifications")

	RootCmd.AddCommand(distributeCmd)
}
