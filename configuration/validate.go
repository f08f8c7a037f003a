package configuration

import (
	"errors"

	"github.com/interchained/itcpay/constants"
	"github.com/interchained/itcpay/notifications"
)

func (configuration *RuntimeConfiguration) Validate() error {
	if configuration.PayoutConfiguration.DustThreshold.IsNegative() {
		return errors.Join(constants.ErrConfigurationValidationFailed, constants.ErrInvalidDustThreshold)
	}
	if configuration.PayoutConfiguration.BatchSize < 0 {
		return errors.Join(constants.ErrConfigurationValidationFailed, constants.ErrInvalidBatchSize)
	}
	if configuration.PayoutConfiguration.FeeRate != nil && !configuration.PayoutConfiguration.FeeRate.IsPositive() {
		return errors.Join(constants.ErrConfigurationValidationFailed, errors.New("fee rate has to be positive"))
	}
	for _, notificatorConfiguration := range configuration.NotificationConfigurations {
		if !notificatorConfiguration.IsValid {
			continue
		}
		if err := notifications.ValidateNotificatorConfiguration(notificatorConfiguration.Type, notificatorConfiguration.Configuration); err != nil {
			return errors.Join(constants.ErrConfigurationValidationFailed, err)
		}
	}
	return nil
}
