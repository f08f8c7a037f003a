package cmd

import (
	"log/slog"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/configuration"
	"github.com/interchained/itcpay/notifications"
)

func notifyDistributionProcessed(configuration *configuration.RuntimeConfiguration, summary *common.DistributionSummary, filter string) {
	for _, notificatorConfiguration := range configuration.NotificationConfigurations {
		if filter != "" && string(notificatorConfiguration.Type) != filter {
			continue
		}

		if notificatorConfiguration.IsAdmin {
			continue
		}

		slog.Info("sending notification", "notificator", notificatorConfiguration.Type)
		notificator, err := notifications.LoadNotificator(notificatorConfiguration.Type, notificatorConfiguration.Configuration)
		if err != nil {
			slog.Warn("failed to send notification", "error", err.Error())
			continue
		}

		err = notificator.DistributionSummaryNotify(summary, map[string]string{})
		if err != nil {
			slog.Warn("failed to send notification", "error", err.Error())
			continue
		}
	}
	slog.Info("notifications sent")
}

func notifyDistributionProcessedThroughAllNotificators(configuration *configuration.RuntimeConfiguration, summary *common.DistributionSummary) {
	notifyDistributionProcessed(configuration, summary, "")
}

func notifyAdmin(configuration *configuration.RuntimeConfiguration, msg string) {
	for _, notificatorConfiguration := range configuration.NotificationConfigurations {
		if !notificatorConfiguration.IsAdmin {
			continue
		}

		slog.Info("sending admin notification", "notificator", notificatorConfiguration.Type)
		notificator, err := notifications.LoadNotificator(notificatorConfiguration.Type, notificatorConfiguration.Configuration)
		if err != nil {
			slog.Warn("failed to send notification", "error", err.Error())
			continue
		}

		err = notificator.AdminNotify(msg)
		if err != nil {
			slog.Warn("failed to send notification", "error", err.Error())
			continue
		}
	}
}

func notifyAdminFactory(configuration *configuration.RuntimeConfiguration) func(string) {
	return func(msg string) {
		notifyAdmin(configuration, msg)
	}
}
