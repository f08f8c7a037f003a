package cmd

import (
	"fmt"

	"github.com/interchained/itcpay/constants"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints itcpay version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(constants.VERSION)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
