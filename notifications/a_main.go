package notifications

import (
	"errors"
	"fmt"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/constants"
)

type NotificatorKind string

const (
	DISCORD_NOTIFICATOR  NotificatorKind = "discord"
	TWITTER_NOTIFICATOR  NotificatorKind = "twitter"
	TELEGRAM_NOTIFICATOR NotificatorKind = "telegram"
	EMAIL_NOTIFICATOR    NotificatorKind = "email"
	WEBHOOK_NOTIFICATOR  NotificatorKind = "webhook"

	ADMIN_NOTIFICATION = "admin notification"
)

func LoadNotificator(kind NotificatorKind, configuration []byte) (common.NotificatorEngine, error) {
	switch kind {
	case DISCORD_NOTIFICATOR:
		return InitDiscordNotificator(configuration)
	case TWITTER_NOTIFICATOR:
		return InitTwitterNotificator(configuration)
	case TELEGRAM_NOTIFICATOR:
		return InitTelegramNotificator(configuration)
	case EMAIL_NOTIFICATOR:
		return InitEmailNotificator(configuration)
	case WEBHOOK_NOTIFICATOR:
		return InitWebhookNotificator(configuration)
	default:
		return nil, errors.Join(constants.ErrUnsupportedNotificator, fmt.Errorf("notificator kind '%s'", kind))
	}
}

func ValidateNotificatorConfiguration(kind NotificatorKind, configuration []byte) error {
	switch kind {
	case DISCORD_NOTIFICATOR:
		return ValidateDiscordConfiguration(configuration)
	case TWITTER_NOTIFICATOR:
		return ValidateTwitterConfiguration(configuration)
	case TELEGRAM_NOTIFICATOR:
		return ValidateTelegramConfiguration(configuration)
	case EMAIL_NOTIFICATOR:
		return ValidateEmailConfiguration(configuration)
	case WEBHOOK_NOTIFICATOR:
		return ValidateWebhookConfiguration(configuration)
	default:
		return errors.Join(constants.ErrUnsupportedNotificator, fmt.Errorf("notificator kind '%s'", kind))
	}
}
