// Package catalog provides the command that loads module catalogs from YAML.
package catalog

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	catalogApp "modcms/internal/application/catalog"
	"modcms/internal/infrastructure/config"
	"modcms/internal/infrastructure/database"
	"modcms/internal/infrastructure/repository"
	"modcms/internal/shared/constants"
	shareddb "modcms/internal/shared/db"
	"modcms/internal/shared/logger"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Module catalog tools",
		Long:  `Manage module categories, column definitions and modules from catalog files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newImportCommand())

	return cmd
}

func newImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a catalog file",
		Long:  `Create the categories, columns and modules described by a YAML catalog. Existing entries are skipped.`,
		RunE:  runImport,
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the catalog YAML file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.WithComponent("catalog")

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	doc, err := catalogApp.ParseCatalog(f)
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	svc := catalogApp.NewService(
		repository.NewModuleCategoryRepository(db, log),
		repository.NewModuleRepository(db, log),
		repository.NewCustomColumnRepository(db, log),
		repository.NewSchemaInspector(db, log),
		shareddb.NewTransactionManager(db),
		log,
	)

	report, err := svc.ImportCatalog(cmd.Context(), doc)
	if err != nil {
		return fmt.Errorf("catalog import failed: %w", err)
	}

	fmt.Printf("\nCatalog Import:\n")
	fmt.Printf("  Categories created: %d\n", report.CategoriesCreated)
	fmt.Printf("  Columns created:    %d\n", report.ColumnsCreated)
	fmt.Printf("  Modules created:    %d\n", report.ModulesCreated)
	for _, skipped := range report.Skipped {
		fmt.Printf("  Skipped:            %s\n", skipped)
	}
	return nil
}
