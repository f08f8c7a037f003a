package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/constants"
	"github.com/interchained/itcpay/state"
	"github.com/interchained/itcpay/utils"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	LOG_LEVEL_FLAG     = "log-level"
	LOG_SERVER_FLAG    = "log-server"
	LOG_FILE_FLAG      = "log-file"
	PATH_FLAG          = "path"
	VERSION_FLAG       = "version"
	OUTPUT_FORMAT_FLAG = "output-format"
)

var (
	LOG_LEVEL_MAP = map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func setupLumberjackLogger(logFile string) io.Writer {
	return &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}

func setupJsonLogger(level slog.Level, logServerAddress string, logFile string) {
	writers := make([]io.Writer, 0, 3)
	writers = append(writers, os.Stdout)

	if logServerAddress != "" {
		writers = append(writers, utils.NewLogServer(logServerAddress))
	}
	if logFile != "" {
		writers = append(writers, setupLumberjackLogger(logFile))
	}

	handler := slog.NewJSONHandler(utils.NewMultiWriter(writers...), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	if logServerAddress != "" {
		slog.Info("log server started", "address", logServerAddress)
	}
}

func setupTextLogger(level slog.Level) {
	handler := utils.NewPrettyTextLogHandler(os.Stdout, utils.PrettyHandlerOptions{
		HandlerOptions: slog.HandlerOptions{Level: level},
	})
	slog.SetDefault(slog.New(handler))
}

var (
	RootCmd = &cobra.Command{
		Use:   "itcpay",
		Short: "ITCPAY",
		Long: fmt.Sprintf(`ITCPAY %s - proportional wallet balance distributor
Copyright © %d interchained
`, constants.VERSION, time.Now().Year()),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			format, _ := cmd.Flags().GetString(OUTPUT_FORMAT_FLAG)
			level, _ := cmd.Flags().GetString(LOG_LEVEL_FLAG)
			logServer, _ := cmd.Flags().GetString(LOG_SERVER_FLAG)
			logFile, _ := cmd.Flags().GetString(LOG_FILE_FLAG)

			switch format {
			case "json":
				setupJsonLogger(LOG_LEVEL_MAP[level], logServer, logFile)
			case "text":
				setupTextLogger(LOG_LEVEL_MAP[level])
			default:
				if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) == 0 {
					setupJsonLogger(LOG_LEVEL_MAP[level], logServer, logFile)
				} else {
					setupTextLogger(LOG_LEVEL_MAP[level])
				}
			}
			slog.Debug("logger configured", "format", format, "level", level)

			rpcOverrides.Host, _ = cmd.Flags().GetString(RPC_HOST_FLAG)
			rpcOverrides.Port, _ = cmd.Flags().GetString(RPC_PORT_FLAG)
			rpcOverrides.User, _ = cmd.Flags().GetString(RPC_USER_FLAG)
			rpcOverrides.Pass, _ = cmd.Flags().GetString(RPC_PASS_FLAG)
			rpcOverrides.Wallet, _ = cmd.Flags().GetString(RPC_WALLET_FLAG)

			workingDirectory, _ := cmd.Flags().GetString(PATH_FLAG)
			stateOptions := state.StateInitOptions{
				WantsJsonOutput: format == "json",
				Debug:           LOG_LEVEL_MAP[level] == slog.LevelDebug,
			}
			if err := state.Init(workingDirectory, stateOptions); err != nil {
				slog.Error("failed to initialize state", "error", err.Error())
				os.Exit(common.EXIT_STATE_LOAD_FAILURE)
			}

			skipVersionCheck, _ := cmd.Flags().GetBool(SKIP_VERSION_CHECK_FLAG)
			if !skipVersionCheck && utils.IsTty() {
				promptIfNewVersionAvailable()
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			version, _ := cmd.Flags().GetBool(VERSION_FLAG)
			if version {
				fmt.Println(constants.VERSION)
				return
			}

			cmd.Help()
		},
	}
)

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Flags().Bool(VERSION_FLAG, false, "Prints version")
	RootCmd.PersistentFlags().StringP(PATH_FLAG, "p", ".", "path to working directory")
	RootCmd.PersistentFlags().StringP(OUTPUT_FORMAT_FLAG, "o", "auto", "Sets output log format (json/text/auto)")
	RootCmd.PersistentFlags().StringP(LOG_LEVEL_FLAG, "l", "info", "Sets log level (debug/info/warn/error)")
	RootCmd.PersistentFlags().String(LOG_SERVER_FLAG, "", "launches log server at specified address")
	RootCmd.PersistentFlags().String(LOG_FILE_FLAG, "", "Logs to file")
	RootCmd.PersistentFlags().String(RPC_HOST_FLAG, "", "Overrides rpc host")
	RootCmd.PersistentFlags().String(RPC_PORT_FLAG, "", "Overrides rpc port")
	RootCmd.PersistentFlags().String(RPC_USER_FLAG, "", "Overrides rpc user")
	RootCmd.PersistentFlags().String(RPC_PASS_FLAG, "", "Overrides rpc password")
	RootCmd.PersistentFlags().String(RPC_WALLET_FLAG, "", "Overrides rpc wallet")
	RootCmd.PersistentFlags().Bool(SKIP_VERSION_CHECK_FLAG, false, "Skip version check")
	RootCmd.PersistentFlags().SetInterspersed(false)
}
