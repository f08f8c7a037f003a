package cmd

import (
	"errors"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/configuration"
	"github.com/interchained/itcpay/constants"
	collector_engines "github.com/interchained/itcpay/engines/collector"
	transactor_engines "github.com/interchained/itcpay/engines/transactor"
)

// rpc overrides collected from the root command's persistent flags,
// applied on top of file and environment configuration
var rpcOverrides struct {
	Host   string
	Port   string
	User   string
	Pass   string
	Wallet string
}

type ConfigurationAndEngines struct {
	Configuration *configuration.RuntimeConfiguration
	Collector     common.CollectorEngine
	Transactor    common.TransactorEngine
}

func (cae *ConfigurationAndEngines) Unwrap() (*configuration.RuntimeConfiguration, common.CollectorEngine, common.TransactorEngine) {
	return cae.Configuration, cae.Collector, cae.Transactor
}

func applyRpcOverrides(config *configuration.RuntimeConfiguration) {
	if rpcOverrides.Host != "" {
		config.Rpc.Host = rpcOverrides.Host
	}
	if rpcOverrides.Port != "" {
		config.Rpc.Port = rpcOverrides.Port
	}
	if rpcOverrides.User != "" {
		config.Rpc.User = rpcOverrides.User
	}
	if rpcOverrides.Pass != "" {
		config.Rpc.Pass = rpcOverrides.Pass
	}
	if rpcOverrides.Wallet != "" {
		config.Rpc.Wallet = rpcOverrides.Wallet
	}
}

func loadConfigurationAndEngines() (*ConfigurationAndEngines, error) {
	config, err := configuration.Load()
	if err != nil {
		return nil, err
	}
	applyRpcOverrides(config)

	collector, err := collector_engines.InitDefaultRpcCollector(config)
	if err != nil {
		return nil, errors.Join(constants.ErrCollectorLoadFailed, err)
	}
	transactor, err := transactor_engines.InitDefaultTransactor(config)
	if err != nil {
		return nil, errors.Join(constants.ErrTransactorLoadFailed, err)
	}

	return &ConfigurationAndEngines{
		Configuration: config,
		Collector:     collector,
		Transactor:    transactor,
	}, nil
}
