package main

import (
	"log/slog"
	"os"

	"github.com/interchained/itcpay/cmd"
	"github.com/interchained/itcpay/common"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if panicStatus, ok := r.(common.PanicStatus); ok {
				os.Exit(panicStatus.ExitCode)
			}
			slog.Error("unhandled panic", "panic", r)
			os.Exit(common.EXIT_UNHANDLED_ERROR)
		}
	}()

	cmd.Execute()
}
