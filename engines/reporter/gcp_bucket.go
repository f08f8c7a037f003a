package reporter_engines

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"cloud.google.com/go/storage"
	"github.com/gocarina/gocsv"
	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/constants"
)

// GCSReporter mirrors the filesystem reporter into a GCS bucket so
// distribution records survive the operator machine. Credentials are
// picked up from the default application credentials of the
// environment.
type GCSReporter struct {
	client  *storage.Client
	bucket  string
	options *common.ReporterEngineOptions
	ctx     context.Context
}

func NewGCSReporter(ctx context.Context, bucket string, options *common.ReporterEngineOptions) (*GCSReporter, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSReporter{
		client:  client,
		bucket:  bucket,
		options: options,
		ctx:     ctx,
	}, nil
}

func (engine *GCSReporter) objectPath(runId string, fileName string) string {
	if engine.options.DryRun {
		return path.Join(constants.DRY_RUN_REPORTS_SUBDIR, runId, fileName)
	}
	return path.Join(runId, fileName)
}

func (engine *GCSReporter) writeObject(objectPath string, data []byte, contentType string) error {
	w := engine.client.Bucket(engine.bucket).Object(objectPath).NewWriter(engine.ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (engine *GCSReporter) ReportPlan(runId string, outputs []common.Output) error {
	if len(outputs) == 0 {
		return nil
	}
	csvData, err := gocsv.MarshalBytes(outputs)
	if err != nil {
		return err
	}
	return engine.writeObject(engine.objectPath(runId, constants.PLAN_REPORT_FILE_NAME), csvData, "text/csv")
}

func (engine *GCSReporter) ReportResults(runId string, reports []common.OutputReport) error {
	if len(reports) == 0 {
		return nil
	}
	csvData, err := gocsv.MarshalBytes(reports)
	if err != nil {
		return err
	}
	return engine.writeObject(engine.objectPath(runId, constants.RESULTS_REPORT_FILE_NAME), csvData, "text/csv")
}

func (engine *GCSReporter) ReportSummary(summary *common.DistributionSummary) error {
	data, err := json.MarshalIndent(summary, "", "\t")
	if err != nil {
		return err
	}
	return engine.writeObject(engine.objectPath(summary.RunId, constants.REPORT_SUMMARY_FILE_NAME), data, "application/json")
}

func (engine *GCSReporter) Close() error {
	return engine.client.Close()
}
