package main

import (
	"os"

	"github.com/spf13/cobra"

	"helioscale/internal/interfaces/cli/migrate"
	"helioscale/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helioscale",
		Short: "HelioScale - marketing site backend",
		Long:  `HelioScale serves the company website backend: accounts, support tickets, the project portfolio, and image uploads.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
