package configuration

import (
	"errors"
	"os"

	"github.com/hjson/hjson-go/v4"
	"github.com/interchained/itcpay/constants"
	"github.com/interchained/itcpay/state"
)

type RpcConfiguration struct {
	Host           string `json:"host"`
	Port           string `json:"port"`
	User           string `json:"user"`
	Pass           string `json:"pass"`
	Wallet         string `json:"wallet"`
	CookieDir      string `json:"cookie_dir"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

type PayoutConfiguration struct {
	DustThreshold      string `json:"dust_threshold"`
	BatchSize          int    `json:"batch_size"`
	ChangeType         string `json:"change_type"`
	ConfirmationTarget int64  `json:"confirmation_target"`
	FeeRate            string `json:"fee_rate"`
	Replaceable        bool   `json:"replaceable"`
	FeeFrom            string `json:"fee_from"`
	Comment            string `json:"comment"`
}

type ReportsConfiguration struct {
	GcsBucket string `json:"gcs_bucket"`
}

type ConfigurationFile struct {
	Rpc                        RpcConfiguration         `json:"rpc"`
	Payouts                    PayoutConfiguration      `json:"payouts"`
	Reports                    ReportsConfiguration     `json:"reports"`
	ExplorerUrl                string                   `json:"explorer_url"`
	NotificationConfigurations []map[string]interface{} `json:"notifications"`
}

func getDefault() ConfigurationFile {
	return ConfigurationFile{
		Rpc: RpcConfiguration{
			Host:           constants.DEFAULT_RPC_HOST,
			Port:           constants.DEFAULT_RPC_PORT,
			TimeoutSeconds: constants.DEFAULT_RPC_TIMEOUT_SECONDS,
		},
		Payouts: PayoutConfiguration{
			DustThreshold:      constants.DEFAULT_DUST_THRESHOLD,
			ChangeType:         constants.DEFAULT_CHANGE_TYPE,
			ConfirmationTarget: constants.DEFAULT_CONFIRMATION_TARGET,
			FeeFrom:            "change",
			Comment:            constants.DEFAULT_DISTRIBUTION_COMMENT,
		},
	}
}

// GetDefaultRuntimeConfiguration is the configuration a run gets with
// no file, flags or environment, used as a base in tests.
func GetDefaultRuntimeConfiguration() RuntimeConfiguration {
	configuration := getDefault()
	runtime, _ := ConfigurationToRuntimeConfiguration(&configuration)
	return *runtime
}

// environment variables take precedence over the configuration file but
// lose to explicit cli flags, matching the layering of the original
// operator scripts
func applyEnvironmentOverrides(configuration *ConfigurationFile) {
	overrides := map[string]*string{
		"RPC_HOST":   &configuration.Rpc.Host,
		"RPC_PORT":   &configuration.Rpc.Port,
		"RPC_USER":   &configuration.Rpc.User,
		"RPC_PASS":   &configuration.Rpc.Pass,
		"RPC_WALLET": &configuration.Rpc.Wallet,
	}
	for key, target := range overrides {
		if value := os.Getenv(key); value != "" {
			*target = value
		}
	}
}

// Load reads the optional itcpay.hjson from the working directory,
// falling back to defaults when it does not exist.
func Load() (*RuntimeConfiguration, error) {
	configuration := getDefault()

	configurationBytes, err := os.ReadFile(state.Global.GetConfigurationFilePath())
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fine, flags and env have to carry everything
	case err != nil:
		return nil, errors.Join(constants.ErrConfigurationLoadFailed, err)
	default:
		if err := hjson.Unmarshal(configurationBytes, &configuration); err != nil {
			return nil, errors.Join(constants.ErrConfigurationLoadFailed, err)
		}
	}

	applyEnvironmentOverrides(&configuration)

	runtime, err := ConfigurationToRuntimeConfiguration(&configuration)
	if err != nil {
		return nil, errors.Join(constants.ErrConfigurationLoadFailed, err)
	}
	if err := runtime.Validate(); err != nil {
		return nil, err
	}
	return runtime, nil
}
