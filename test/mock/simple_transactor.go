package mock

import (
	"fmt"

	"github.com/interchained/itcpay/common"
	"github.com/shopspring/decimal"
)

type SimpleTransactorOpts struct {
	Fee            decimal.Decimal
	ChangePosition int64

	// 1-based index of the batch the given step fails on, 0 disables
	FailCreateOnBatch         int
	SignIncompleteOnBatch     int
	FinalizeIncompleteOnBatch int
	FailBroadcastOnBatch      int
	FailWithError             error
}

type SimpleTransactor struct {
	opts *SimpleTransactorOpts

	CreatedBatches []common.OutputBatch
	CreatedOptions []*common.PsbtOptions
	SignCalls      int
	FinalizeCalls  int
	BroadcastCalls int
}

func InitSimpleTransactor() *SimpleTransactor {
	return &SimpleTransactor{
		opts: &SimpleTransactorOpts{
			Fee:            decimal.RequireFromString("0.0001"),
			ChangePosition: 1,
		},
	}
}

func (transactor *SimpleTransactor) GetId() string {
	return "SimpleTransactor"
}

func (transactor *SimpleTransactor) SetOpts(opts *SimpleTransactorOpts) {
	transactor.opts = opts
}

func (transactor *SimpleTransactor) currentBatch() int {
	return len(transactor.CreatedBatches)
}

func (transactor *SimpleTransactor) CreateFundedPsbt(outputs common.OutputBatch, options *common.PsbtOptions) (*common.TransactionEstimate, error) {
	transactor.CreatedBatches = append(transactor.CreatedBatches, outputs)
	transactor.CreatedOptions = append(transactor.CreatedOptions, options)
	if transactor.opts.FailCreateOnBatch == transactor.currentBatch() {
		return nil, transactor.failure("create failed")
	}
	return &common.TransactionEstimate{
		Psbt:           fmt.Sprintf("psbt-%d", transactor.currentBatch()),
		Fee:            transactor.opts.Fee,
		ChangePosition: transactor.opts.ChangePosition,
	}, nil
}

func (transactor *SimpleTransactor) SignPsbt(psbt string) (string, bool, error) {
	transactor.SignCalls++
	if transactor.opts.SignIncompleteOnBatch == transactor.currentBatch() {
		return "", false, nil
	}
	return "signed-" + psbt, true, nil
}

func (transactor *SimpleTransactor) FinalizePsbt(psbt string) (string, bool, error) {
	transactor.FinalizeCalls++
	if transactor.opts.FinalizeIncompleteOnBatch == transactor.currentBatch() {
		return "", false, nil
	}
	return "raw-" + psbt, true, nil
}

func (transactor *SimpleTransactor) Broadcast(rawTx string) (string, error) {
	transactor.BroadcastCalls++
	if transactor.opts.FailBroadcastOnBatch == transactor.currentBatch() {
		return "", transactor.failure("broadcast failed")
	}
	return fmt.Sprintf("tx-%d", transactor.currentBatch()), nil
}

func (transactor *SimpleTransactor) failure(msg string) error {
	if transactor.opts.FailWithError != nil {
		return transactor.opts.FailWithError
	}
	return fmt.Errorf("%s", msg)
}
