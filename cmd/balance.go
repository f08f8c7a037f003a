package cmd

import (
	"log/slog"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/state"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "wallet balance",
	Long:  "prints the payout wallet balance breakdown",
	Run: func(cmd *cobra.Command, args []string) {
		_, collector, _ := assertRunWithResult(loadConfigurationAndEngines, common.EXIT_CONFIGURATION_LOAD_FAILURE).Unwrap()

		balances := assertRunWithResultAndErrorMessage(collector.GetWalletBalances, common.EXIT_OPERATION_FAILED, "failed to fetch wallet balances")

		if state.Global.GetWantsOutputJson() {
			slog.Info("wallet balances",
				"trusted", balances.Trusted,
				"untrusted_pending", balances.UntrustedPending,
				"immature", balances.Immature,
			)
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendRow(table.Row{"Trusted (spendable)", common.FormatAmount(balances.Trusted)})
		t.AppendRow(table.Row{"Untrusted pending", common.FormatAmount(balances.UntrustedPending)})
		t.AppendRow(table.Row{"Immature", common.FormatAmount(balances.Immature)})
		t.Render()
	},
}

func init() {
	RootCmd.AddCommand(balanceCmd)
}
