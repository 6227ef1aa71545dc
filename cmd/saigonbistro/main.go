package main

import (
	"os"

	"github.com/spf13/cobra"

	"saigonbistro/internal/interfaces/cli/migrate"
	"saigonbistro/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "saigonbistro",
		Short: "SaigonBistro - restaurant ordering and customer support platform",
		Long:  `SaigonBistro runs the restaurant's ordering and customer support backend, including the support ticket service and its migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
