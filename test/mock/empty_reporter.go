package mock

import (
	"github.com/interchained/itcpay/common"
)

type EmptyReporter struct {
	PlanReports    map[string][]common.Output
	ResultReports  map[string][]common.OutputReport
	SummaryReports []*common.DistributionSummary
}

func InitEmptyReporter() *EmptyReporter {
	return &EmptyReporter{
		PlanReports:   map[string][]common.Output{},
		ResultReports: map[string][]common.OutputReport{},
	}
}

func (engine *EmptyReporter) ReportPlan(runId string, outputs []common.Output) error {
	engine.PlanReports[runId] = outputs
	return nil
}

func (engine *EmptyReporter) ReportResults(runId string, reports []common.OutputReport) error {
	engine.ResultReports[runId] = reports
	return nil
}

func (engine *EmptyReporter) ReportSummary(summary *common.DistributionSummary) error {
	engine.SummaryReports = append(engine.SummaryReports, summary)
	return nil
}
