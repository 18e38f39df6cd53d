package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of kafka-tui",
		Long:  `All software has versions. This is kafka-tui's.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kafka-tui version %s\n", rootCmd.Version)
		},
	}
}
