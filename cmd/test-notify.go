package cmd

import (
	"log/slog"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/notifications"
	"github.com/spf13/cobra"
)

var notificationTestCmd = &cobra.Command{
	Use:   "test-notify",
	Short: "notification test",
	Long:  "sends test notification",
	Run: func(cmd *cobra.Command, args []string) {
		config, _, _ := assertRunWithResult(loadConfigurationAndEngines, common.EXIT_CONFIGURATION_LOAD_FAILURE).Unwrap()
		filter, _ := cmd.Flags().GetString(NOTIFICATOR_FLAG)
		for _, notificatorConfiguration := range config.NotificationConfigurations {
			if filter != "" && string(notificatorConfiguration.Type) != filter {
				continue
			}

			slog.Info("sending notification", "notificator", notificatorConfiguration.Type)
			notificator, err := notifications.LoadNotificator(notificatorConfiguration.Type, notificatorConfiguration.Configuration)
			if err != nil {
				slog.Warn("failed to send notification", "error", err.Error())
				continue
			}

			err = notificator.TestNotify()
			if err != nil {
				slog.Warn("failed to send notification", "error", err.Error())
				continue
			}
		}
	},
}

func init() {
	notificationTestCmd.Flags().String(NOTIFICATOR_FLAG, "", "Notify through specific notificator")

	RootCmd.AddCommand(notificationTestCmd)
}
