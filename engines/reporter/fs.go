package reporter_engines

import (
	"encoding/json"
	"os"
	"path"

	"github.com/gocarina/gocsv"
	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/constants"
	"github.com/interchained/itcpay/state"
	"github.com/samber/lo"
)

type FsReporter struct {
	options *common.ReporterEngineOptions
}

func NewFileSystemReporter(options *common.ReporterEngineOptions) *FsReporter {
	return &FsReporter{
		options: options,
	}
}

func (engine *FsReporter) getRunDirectory(runId string) (string, error) {
	directory := state.Global.GetReportsDirectory()
	if engine.options.DryRun {
		directory = path.Join(directory, constants.DRY_RUN_REPORTS_SUBDIR)
	}
	directory = path.Join(directory, runId)
	return directory, os.MkdirAll(directory, 0700)
}

func (engine *FsReporter) ReportPlan(runId string, outputs []common.Output) error {
	if len(outputs) == 0 {
		return nil
	}
	directory, err := engine.getRunDirectory(runId)
	if err != nil {
		return err
	}
	csvBytes, err := gocsv.MarshalBytes(outputs)
	if err != nil {
		return err
	}
	return os.WriteFile(path.Join(directory, constants.PLAN_REPORT_FILE_NAME), csvBytes, 0644)
}

func (engine *FsReporter) ReportResults(runId string, reports []common.OutputReport) error {
	if len(reports) == 0 {
		return nil
	}
	directory, err := engine.getRunDirectory(runId)
	if err != nil {
		return err
	}
	// failed rows first so operators spot them without scrolling
	reports = append(
		lo.Filter(reports, func(report common.OutputReport, _ int) bool { return !report.IsSuccess }),
		lo.Filter(reports, func(report common.OutputReport, _ int) bool { return report.IsSuccess })...,
	)
	csvBytes, err := gocsv.MarshalBytes(reports)
	if err != nil {
		return err
	}
	return os.WriteFile(path.Join(directory, constants.RESULTS_REPORT_FILE_NAME), csvBytes, 0644)
}

func (engine *FsReporter) ReportSummary(summary *common.DistributionSummary) error {
	directory, err := engine.getRunDirectory(summary.RunId)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(summary, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path.Join(directory, constants.REPORT_SUMMARY_FILE_NAME), data, 0644)
}
