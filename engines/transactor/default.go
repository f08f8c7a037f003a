package transactor_engines

import (
	"errors"

	"github.com/interchained/itcpay/clients/node"
	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/configuration"
	"github.com/interchained/itcpay/constants"
)

// DefaultRpcTransactor drives transaction construction through the
// wallet node - funding, signing, finalization and broadcast. The node
// owns utxo selection and keys, the transactor only passes policy.
type DefaultRpcTransactor struct {
	client *node.Client
}

func InitDefaultTransactor(config *configuration.RuntimeConfiguration) (*DefaultRpcTransactor, error) {
	client, err := node.NewClient(node.ClientOptions{
		Host:      config.Rpc.Host,
		Port:      config.Rpc.Port,
		User:      config.Rpc.User,
		Pass:      config.Rpc.Pass,
		Wallet:    config.Rpc.Wallet,
		CookieDir: config.Rpc.CookieDir,
		Timeout:   config.Rpc.Timeout,
	})
	if err != nil {
		return nil, errors.Join(constants.ErrTransactorLoadFailed, err)
	}
	return &DefaultRpcTransactor{client: client}, nil
}

func (transactor *DefaultRpcTransactor) GetId() string {
	return "DefaultRpcTransactor"
}

func (transactor *DefaultRpcTransactor) CreateFundedPsbt(outputs common.OutputBatch, options *common.PsbtOptions) (*common.TransactionEstimate, error) {
	rpcOptions := map[string]any{
		"change_type": options.ChangeType,
		"replaceable": options.Replaceable,
		// an explicit empty list means fee from change and bypasses the
		// subtract-fee output cap of large batches
		"subtractFeeFromOutputs": options.SubtractFeeFromOutputs,
	}
	if options.FeePolicy.FeeRate != nil {
		// camelCase key, the snake_case variant is silently ignored by
		// the wallet
		rpcOptions["feeRate"] = options.FeePolicy.FeeRate
	} else {
		rpcOptions["conf_target"] = options.FeePolicy.ConfirmationTarget
	}

	result, err := transactor.client.WalletCreateFundedPsbt(outputs.ToRpcOutputs(), rpcOptions)
	if err != nil {
		return nil, errors.Join(constants.ErrPsbtCreationFailed, err)
	}
	return &common.TransactionEstimate{
		Psbt:           result.Psbt,
		Fee:            result.Fee,
		ChangePosition: result.ChangePos,
	}, nil
}

func (transactor *DefaultRpcTransactor) SignPsbt(psbt string) (string, bool, error) {
	result, err := transactor.client.WalletProcessPsbt(psbt)
	if err != nil {
		return "", false, errors.Join(constants.ErrPsbtSigningFailed, err)
	}
	return result.Psbt, result.Complete, nil
}

func (transactor *DefaultRpcTransactor) FinalizePsbt(psbt string) (string, bool, error) {
	result, err := transactor.client.FinalizePsbt(psbt)
	if err != nil {
		return "", false, errors.Join(constants.ErrPsbtSigningFailed, err)
	}
	return result.Hex, result.Complete, nil
}

func (transactor *DefaultRpcTransactor) Broadcast(rawTx string) (string, error) {
	txId, err := transactor.client.SendRawTransaction(rawTx)
	if err != nil {
		return "", errors.Join(constants.ErrBroadcastFailed, err)
	}
	return txId, nil
}
