package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/interchained/itcpay/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newStdoutTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

// GetTxReference renders a clickable explorer link when an explorer is
// configured, the bare txid otherwise.
func GetTxReference(txId string, explorerUrl string) string {
	if explorerUrl == "" || txId == "" {
		return txId
	}
	return strings.TrimSuffix(explorerUrl, "/") + "/tx/" + txId
}

func PrintDistributionPlan(result *common.GenerateDistributionResult, dustThreshold string) {
	t := newStdoutTable(fmt.Sprintf("Distribution Plan %s", result.Plan.RunId))
	t.AppendHeader(table.Row{"#", "Recipient", "Amount"})
	for i, output := range result.Outputs {
		t.AppendRow(table.Row{i + 1, output.Address, common.FormatAmount(output.Amount)})
	}
	t.AppendFooter(table.Row{"", "Total to distribute", common.FormatAmount(result.Plan.TotalAmount)})
	if result.DroppedAsDust > 0 {
		t.AppendFooter(table.Row{"", fmt.Sprintf("Dropped as dust (≤ %s)", dustThreshold), result.DroppedAsDust})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	t.Render()
}

func PrintBatchResults(results common.BatchResults, title string, explorerUrl string) {
	t := newStdoutTable(title)
	t.AppendHeader(table.Row{"Batch", "Recipients", "Amount", "Fee", "Status", "Transaction"})
	for i, result := range results {
		status := "success"
		reference := GetTxReference(result.TxId, explorerUrl)
		if !result.IsSuccess {
			status = "failed"
			if result.Err != nil {
				reference = result.Err.Error()
			}
		}
		t.AppendRow(table.Row{
			fmt.Sprintf("%d/%d", i+1, len(results)),
			len(result.Outputs),
			common.FormatAmount(result.Outputs.TotalAmount()),
			result.Fee.String(),
			status,
			reference,
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Render()
}

func PrintDistributionSummary(summary *common.DistributionSummary) {
	t := newStdoutTable("Summary")
	t.AppendRow(table.Row{"Run", summary.RunId})
	if summary.DryRun {
		t.AppendRow(table.Row{"Mode", "dry run"})
	} else {
		t.AppendRow(table.Row{"Mode", "send"})
	}
	t.AppendRow(table.Row{"Recipients parsed", summary.Recipients})
	t.AppendRow(table.Row{"Recipients paid", summary.PaidRecipients})
	t.AppendRow(table.Row{"Dropped as dust", summary.DroppedAsDust})
	t.AppendRow(table.Row{"Batches", fmt.Sprintf("%d (%d failed)", summary.Batches, summary.FailedBatches)})
	t.AppendRow(table.Row{"Distributed", common.FormatAmount(summary.TotalDistributed)})
	t.AppendRow(table.Row{"Fees", summary.TotalFees.String()})
	t.AppendRow(table.Row{"Fee control", summary.FeePolicy})
	t.AppendRow(table.Row{"Fee taken from", summary.FeeSubtractedFrom})
	t.AppendRow(table.Row{"Replaceable (RBF)", summary.Replaceable})
	t.Render()
}
