package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the quizforge version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quizforge %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
