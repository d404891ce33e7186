package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"modcms/internal/interfaces/cli/catalog"
	"modcms/internal/interfaces/cli/migrate"
	"modcms/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "modcms",
		Short: "modcms - dynamic module engine for content sites",
		Long:  `modcms serves runtime-defined content modules over HTTP and ships migration and catalog tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		catalog.NewCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
