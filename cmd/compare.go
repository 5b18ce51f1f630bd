package cmd

import (
	"context"
	"fmt"
	"os"

	"parcel-recon/core/config"
	"parcel-recon/core/database"
	"parcel-recon/core/logger"
	"parcel-recon/core/storage"
	"parcel-recon/feature/comparison"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags for the compare command
	compareMLSPath  string
	compareCAMAPath string
	compareOutPath  string
	compareTol      float64
	compareSkipZero bool
	compareWindowID string
	compareRules    string
)

// compareCmd runs a one-shot comparison and writes the report bundle.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare an MLS extract against a CAMA extract",
	Long: `Compare the two property extracts and write the ZIP report bundle.

The CAMA extract comes from --cama, or from the configured database table
when --cama is omitted and the database source is enabled.

Examples:
  # Compare two CSV extracts
  parcel-recon compare --mls listings.csv --cama parcels.csv

  # Wider tolerance, named output, county links enabled
  parcel-recon compare --mls listings.csv --cama parcels.csv \
    --tolerance 0.5 --window-id 12abc345 -o reports.zip

  # CAMA side from the configured database table
  parcel-recon compare --mls listings.csv`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareMLSPath, "mls", "", "Path to the MLS extract (CSV)")
	compareCmd.Flags().StringVar(&compareCAMAPath, "cama", "", "Path to the CAMA extract (CSV)")
	compareCmd.Flags().StringVarP(&compareOutPath, "out", "o", "", "Output path for the report bundle (default: dated name in the working directory)")
	compareCmd.Flags().Float64Var(&compareTol, "tolerance", 0, "Numeric tolerance override")
	compareCmd.Flags().BoolVar(&compareSkipZero, "skip-zero", true, "Skip rules where both sides are zero")
	compareCmd.Flags().StringVar(&compareWindowID, "window-id", "", "County session window ID for parcel links")
	compareCmd.Flags().StringVar(&compareRules, "rules", "", "Path to a YAML rule set")
	_ = compareCmd.MarkFlagRequired("mls")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	// CLI flags override the configured defaults when set.
	if cmd.Flags().Changed("tolerance") {
		cfg.Reconcile.Tolerance = compareTol
	}
	if cmd.Flags().Changed("skip-zero") {
		cfg.Reconcile.SkipZero = compareSkipZero
	}
	if cmd.Flags().Changed("window-id") {
		cfg.Reconcile.WindowID = compareWindowID
	}
	if cmd.Flags().Changed("rules") {
		cfg.Reconcile.RulesFile = compareRules
	}

	mlsData, err := os.ReadFile(compareMLSPath)
	if err != nil {
		return fmt.Errorf("failed to read MLS file: %w", err)
	}

	var camaData []byte
	if compareCAMAPath != "" {
		camaData, err = os.ReadFile(compareCAMAPath)
		if err != nil {
			return fmt.Errorf("failed to read CAMA file: %w", err)
		}
	}

	var db *gorm.DB
	if camaData == nil && cfg.Database.Enabled {
		db, err = database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		l.Info("Reading CAMA extract from database", zap.String("table", cfg.Database.Table))
	}

	var store storage.Client
	if cfg.Storage.Enabled {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	svc, err := comparison.NewService(cfg.Reconcile, store, cfg.Storage, db, cfg.Database, l)
	if err != nil {
		return err
	}

	name, data, err := svc.Export(ctx, mlsData, camaData, comparison.Overrides{})
	if err != nil {
		return err
	}

	outPath := compareOutPath
	if outPath == "" {
		outPath = name
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report bundle: %w", err)
	}

	l.Info("Report bundle written", zap.String("path", outPath))
	return nil
}
