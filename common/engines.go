package common

import (
	"errors"

	"github.com/interchained/itcpay/constants"
	"github.com/shopspring/decimal"
)

// CollectorEngine covers the read-only node surface - wallet state and
// address validity.
type CollectorEngine interface {
	GetId() string
	ValidateAddress(address string) (bool, error)
	GetWalletBalances() (*WalletBalances, error)
	GetMempoolInfo() (*MempoolInfo, error)
}

// TransactorEngine covers the transaction construction surface of the
// node. Key management, utxo selection and fee estimation all happen
// node-side, the engine only passes policy through.
type TransactorEngine interface {
	GetId() string
	CreateFundedPsbt(outputs OutputBatch, options *PsbtOptions) (*TransactionEstimate, error)
	SignPsbt(psbt string) (signedPsbt string, complete bool, err error)
	FinalizePsbt(psbt string) (rawTx string, complete bool, err error)
	Broadcast(rawTx string) (txId string, err error)
}

type ReporterEngine interface {
	ReportPlan(runId string, outputs []Output) error
	ReportResults(runId string, reports []OutputReport) error
	ReportSummary(summary *DistributionSummary) error
}

type NotificatorEngine interface {
	DistributionSummaryNotify(summary *DistributionSummary, additionalData map[string]string) error
	AdminNotify(msg string) error
	TestNotify() error
}

type GenerateDistributionEngineContext struct {
	collector CollectorEngine
}

func NewGenerateDistributionEngineContext(collector CollectorEngine) *GenerateDistributionEngineContext {
	return &GenerateDistributionEngineContext{
		collector: collector,
	}
}

func (engines *GenerateDistributionEngineContext) GetCollector() CollectorEngine {
	return engines.collector
}

func (engines *GenerateDistributionEngineContext) Validate() error {
	if engines.collector == nil {
		return errors.Join(constants.ErrMissingEngine, constants.ErrMissingCollectorEngine)
	}
	return nil
}

type ExecuteDistributionEngineContext struct {
	collector   CollectorEngine
	transactor  TransactorEngine
	reporter    ReporterEngine
	adminNotify func(msg string)
}

func NewExecuteDistributionEngineContext(collector CollectorEngine, transactor TransactorEngine, reporter ReporterEngine, adminNotify func(msg string)) *ExecuteDistributionEngineContext {
	return &ExecuteDistributionEngineContext{
		collector:   collector,
		transactor:  transactor,
		reporter:    reporter,
		adminNotify: adminNotify,
	}
}

func (engines *ExecuteDistributionEngineContext) GetCollector() CollectorEngine {
	return engines.collector
}

func (engines *ExecuteDistributionEngineContext) GetTransactor() TransactorEngine {
	return engines.transactor
}

func (engines *ExecuteDistributionEngineContext) GetReporter() ReporterEngine {
	return engines.reporter
}

func (engines *ExecuteDistributionEngineContext) AdminNotify(msg string) {
	if engines.adminNotify != nil {
		engines.adminNotify(msg)
	}
}

func (engines *ExecuteDistributionEngineContext) Validate() error {
	if engines.transactor == nil {
		return errors.Join(constants.ErrMissingEngine, constants.ErrMissingTransactorEngine)
	}
	if engines.reporter == nil {
		return errors.Join(constants.ErrMissingEngine, constants.ErrMissingReporterEngine)
	}
	return nil
}

type ReporterEngineOptions struct {
	DryRun bool
}

type GenerateDistributionOptions struct {
	CsvSourcePath  string
	JsonSourcePath string
	// bypasses file sources, used by commands which assemble
	// recipients themselves
	InlineRecipients []Recipient
	// exactly one of TotalAmount (> 0) or UseWalletBalance
	TotalAmount      decimal.Decimal
	UseWalletBalance bool
	DustThreshold    decimal.Decimal
	Comment          string
}

type GenerateDistributionResult struct {
	Plan          DistributionPlan
	Outputs       []Output
	Recipients    int
	DroppedAsDust int
}

type ExecuteDistributionOptions struct {
	DryRun         bool
	BatchSize      int
	Replaceable    bool
	ChangeType     string
	FeePolicy      FeePolicy
	FeeSubtraction FeeSubtractionPolicy
}

type ExecuteDistributionResult struct {
	BatchResults BatchResults
	Summary      DistributionSummary
}
