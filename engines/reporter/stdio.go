package reporter_engines

import (
	"encoding/json"
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/interchained/itcpay/common"
)

// StdioReporter prints the same artifacts the filesystem reporter
// writes, for piping into other tooling.
type StdioReporter struct{}

func NewStdioReporter() *StdioReporter {
	return &StdioReporter{}
}

func (engine *StdioReporter) ReportPlan(runId string, outputs []common.Output) error {
	csvBytes, err := gocsv.MarshalBytes(outputs)
	if err != nil {
		return err
	}
	fmt.Println(string(csvBytes))
	return nil
}

func (engine *StdioReporter) ReportResults(runId string, reports []common.OutputReport) error {
	csvBytes, err := gocsv.MarshalBytes(reports)
	if err != nil {
		return err
	}
	fmt.Println(string(csvBytes))
	return nil
}

func (engine *StdioReporter) ReportSummary(summary *common.DistributionSummary) error {
	data, err := json.MarshalIndent(summary, "", "\t")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
