package main

import (
	"os"

	"github.com/spf13/cobra"

	"fractalyx/internal/interfaces/cli/migrate"
	"fractalyx/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fractalyx",
		Short: "Fractalyx - multi-agent project management",
		Long:  `Fractalyx runs a team of role-based agents that plan, track, and discuss project work through a chat interface.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
