package configuration

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/constants"
	"github.com/interchained/itcpay/state"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func initStateWithConfig(t *testing.T, content string) {
	t.Helper()
	workingDirectory := t.TempDir()
	if content != "" {
		err := os.WriteFile(path.Join(workingDirectory, state.CONFIG_FILE_NAME), []byte(content), 0644)
		assert.Nil(t, err)
	}
	assert.Nil(t, state.Init(workingDirectory, state.StateInitOptions{}))
}

func TestLoadDefaults(t *testing.T) {
	assert := assert.New(t)
	initStateWithConfig(t, "")

	config, err := Load()
	assert.Nil(err)
	assert.Equal(constants.DEFAULT_RPC_HOST, config.Rpc.Host)
	assert.Equal(constants.DEFAULT_RPC_PORT, config.Rpc.Port)
	assert.Equal(time.Duration(constants.DEFAULT_RPC_TIMEOUT_SECONDS)*time.Second, config.Rpc.Timeout)
	assert.Equal(constants.DEFAULT_CHANGE_TYPE, config.PayoutConfiguration.ChangeType)
	assert.True(config.PayoutConfiguration.DustThreshold.Equal(decimal.RequireFromString(constants.DEFAULT_DUST_THRESHOLD)))
	assert.Nil(config.PayoutConfiguration.FeeRate)
	assert.Equal(common.FEE_FROM_CHANGE, config.PayoutConfiguration.FeeSubtraction)
}

func TestLoadHjsonFile(t *testing.T) {
	assert := assert.New(t)
	initStateWithConfig(t, `{
		// operator node
		rpc: {
			host: 10.0.0.5
			port: "18332"
			user: operator
			pass: hunter2
			wallet: payouts
		}
		payouts: {
			dust_threshold: "0.00005"
			batch_size: 25
			fee_rate: "0.0002"
			replaceable: true
			fee_from: recipients
		}
		explorer_url: https://explorer.example.com
	}`)

	config, err := Load()
	assert.Nil(err)
	assert.Equal("10.0.0.5", config.Rpc.Host)
	assert.Equal("18332", config.Rpc.Port)
	assert.Equal("payouts", config.Rpc.Wallet)
	assert.Equal(25, config.PayoutConfiguration.BatchSize)
	assert.True(config.PayoutConfiguration.Replaceable)
	assert.Equal(common.FEE_FROM_RECIPIENTS, config.PayoutConfiguration.FeeSubtraction)
	assert.NotNil(config.PayoutConfiguration.FeeRate)
	assert.Equal("0.0002", config.PayoutConfiguration.FeeRate.String())
	assert.Equal("https://explorer.example.com", config.ExplorerUrl)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	assert := assert.New(t)
	initStateWithConfig(t, `{
		rpc: {
			host: 10.0.0.5
		}
	}`)

	t.Setenv("RPC_HOST", "10.9.9.9")
	t.Setenv("RPC_WALLET", "hot")

	config, err := Load()
	assert.Nil(err)
	assert.Equal("10.9.9.9", config.Rpc.Host)
	assert.Equal("hot", config.Rpc.Wallet)
}

func TestValidateRejectsNegativeDustThreshold(t *testing.T) {
	assert := assert.New(t)

	config := GetDefaultRuntimeConfiguration()
	config.PayoutConfiguration.DustThreshold = decimal.RequireFromString("-1")
	assert.ErrorIs(config.Validate(), constants.ErrInvalidDustThreshold)
}

func TestValidateRejectsNegativeBatchSize(t *testing.T) {
	assert := assert.New(t)

	config := GetDefaultRuntimeConfiguration()
	config.PayoutConfiguration.BatchSize = -1
	assert.ErrorIs(config.Validate(), constants.ErrInvalidBatchSize)
}

func TestValidateRejectsNonPositiveFeeRate(t *testing.T) {
	assert := assert.New(t)

	config := GetDefaultRuntimeConfiguration()
	zero := decimal.Zero
	config.PayoutConfiguration.FeeRate = &zero
	assert.ErrorIs(config.Validate(), constants.ErrConfigurationValidationFailed)
}

func TestRuntimeNotificatorConfigurations(t *testing.T) {
	assert := assert.New(t)

	configuration := getDefault()
	configuration.NotificationConfigurations = []map[string]interface{}{
		{"type": "webhook", "url": "https://hooks.example.com/x", "auth": "none"},
		{"type": "telegram", "admin": true, "api_token": "token", "receivers": []int64{1}},
	}

	runtime, err := ConfigurationToRuntimeConfiguration(&configuration)
	assert.Nil(err)
	assert.Len(runtime.NotificationConfigurations, 2)
	assert.False(runtime.NotificationConfigurations[0].IsAdmin)
	assert.True(runtime.NotificationConfigurations[1].IsAdmin)
	assert.Nil(runtime.Validate())
}
