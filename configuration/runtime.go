package configuration

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/notifications"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type RuntimeRpcConfiguration struct {
	Host      string
	Port      string
	User      string
	Pass      string
	Wallet    string
	CookieDir string
	Timeout   time.Duration
}

type RuntimePayoutConfiguration struct {
	DustThreshold      decimal.Decimal
	BatchSize          int
	ChangeType         string
	ConfirmationTarget int64
	FeeRate            *decimal.Decimal
	Replaceable        bool
	FeeSubtraction     common.FeeSubtractionPolicy
	Comment            string
}

type RuntimeNotificatorConfiguration struct {
	Type          notifications.NotificatorKind
	IsAdmin       bool
	Configuration []byte
	IsValid       bool
}

type RuntimeConfiguration struct {
	Rpc                        RuntimeRpcConfiguration
	PayoutConfiguration        RuntimePayoutConfiguration
	GcsBucket                  string
	ExplorerUrl                string
	NotificationConfigurations []RuntimeNotificatorConfiguration
}

func ConfigurationToRuntimeConfiguration(configuration *ConfigurationFile) (*RuntimeConfiguration, error) {
	dustThreshold, err := decimal.NewFromString(configuration.Payouts.DustThreshold)
	if err != nil {
		return nil, err
	}

	var feeRate *decimal.Decimal
	if configuration.Payouts.FeeRate != "" {
		parsed, err := decimal.NewFromString(configuration.Payouts.FeeRate)
		if err != nil {
			return nil, err
		}
		feeRate = &parsed
	}

	feeSubtraction := common.FEE_FROM_CHANGE
	if configuration.Payouts.FeeFrom == string(common.FEE_FROM_RECIPIENTS) {
		feeSubtraction = common.FEE_FROM_RECIPIENTS
	}

	return &RuntimeConfiguration{
		Rpc: RuntimeRpcConfiguration{
			Host:      configuration.Rpc.Host,
			Port:      configuration.Rpc.Port,
			User:      configuration.Rpc.User,
			Pass:      configuration.Rpc.Pass,
			Wallet:    configuration.Rpc.Wallet,
			CookieDir: configuration.Rpc.CookieDir,
			Timeout:   time.Duration(configuration.Rpc.TimeoutSeconds) * time.Second,
		},
		PayoutConfiguration: RuntimePayoutConfiguration{
			DustThreshold:      dustThreshold,
			BatchSize:          configuration.Payouts.BatchSize,
			ChangeType:         configuration.Payouts.ChangeType,
			ConfirmationTarget: configuration.Payouts.ConfirmationTarget,
			FeeRate:            feeRate,
			Replaceable:        configuration.Payouts.Replaceable,
			FeeSubtraction:     feeSubtraction,
			Comment:            configuration.Payouts.Comment,
		},
		GcsBucket:   configuration.Reports.GcsBucket,
		ExplorerUrl: configuration.ExplorerUrl,
		NotificationConfigurations: lo.Map(configuration.NotificationConfigurations, func(item map[string]interface{}, _ int) RuntimeNotificatorConfiguration {
			notificatorType, isValid := item["type"].(string)
			if !isValid {
				slog.Warn("invalid notificator type", "type", item["type"])
			}
			isAdmin := false
			if admin, ok := item["admin"].(bool); ok {
				isAdmin = admin
			}

			configurationBytes, _ := json.Marshal(item)

			return RuntimeNotificatorConfiguration{
				Type:          notifications.NotificatorKind(notificatorType),
				IsAdmin:       isAdmin,
				Configuration: configurationBytes,
				IsValid:       isValid,
			}
		}),
	}, nil
}
