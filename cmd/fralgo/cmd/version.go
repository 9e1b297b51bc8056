package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Affiche la version",
	Run: func(c *cobra.Command, args []string) {
		fmt.Printf("fralgo version %s\n", Version)
	},
}
