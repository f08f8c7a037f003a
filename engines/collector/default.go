package collector_engines

import (
	"errors"

	"github.com/interchained/itcpay/clients/node"
	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/configuration"
	"github.com/interchained/itcpay/constants"
)

type DefaultRpcCollector struct {
	client *node.Client
}

func InitDefaultRpcCollector(config *configuration.RuntimeConfiguration) (*DefaultRpcCollector, error) {
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
		return nil, errors.Join(constants.ErrCollectorLoadFailed, err)
	}
	return &DefaultRpcCollector{client: client}, nil
}

func (engine *DefaultRpcCollector) GetId() string {
	return "DefaultRpcCollector"
}

func (engine *DefaultRpcCollector) ValidateAddress(address string) (bool, error) {
	result, err := engine.client.ValidateAddress(address)
	if err != nil {
		return false, err
	}
	return result.IsValid, nil
}

func (engine *DefaultRpcCollector) GetWalletBalances() (*common.WalletBalances, error) {
	result, err := engine.client.GetBalances()
	if err != nil {
		return nil, errors.Join(constants.ErrBalanceFetchFailed, err)
	}
	return &common.WalletBalances{
		Trusted:          result.Mine.Trusted,
		UntrustedPending: result.Mine.UntrustedPending,
		Immature:         result.Mine.Immature,
	}, nil
}

func (engine *DefaultRpcCollector) GetMempoolInfo() (*common.MempoolInfo, error) {
	result, err := engine.client.GetMempoolInfo()
	if err != nil {
		return nil, errors.Join(constants.ErrMempoolInfoFetchFail, err)
	}
	return &common.MempoolInfo{
		MempoolMinFee: result.MempoolMinFee,
		MinRelayTxFee: result.MinRelayTxFee,
	}, nil
}
