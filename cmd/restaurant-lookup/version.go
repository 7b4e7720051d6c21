package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of restaurant-lookup",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("restaurant-lookup %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
