package cmd

import (
	"fmt"
	"os"

	"shaktool/core/config"
	"shaktool/core/database"
	"shaktool/core/logger"
	"shaktool/feature/records"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ingestCmd is the parent command for all ingestion operations.
var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Reconcile a saved source payload into the record set",
	Long: `Reconcile a payload saved from one of the external trackers.

The payload is read from a file so ingestion stays reproducible and
network-free. Each run in the payload is resolved to a canonical runner
and merged into the record set; re-ingesting the same payload is a no-op.`,
}

// ingestDeerTierCmd reconciles a deertier records dump.
var ingestDeerTierCmd = &cobra.Command{
	Use:   "deertier [file]",
	Short: "Reconcile a deertier.com records payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIngest(args[0], func(svc *records.Service, f *os.File) (*records.IngestSummary, error) {
			return svc.IngestDeerTier(f)
		})
	},
}

// ingestSpeedrunCmd reconciles one speedrun.com leaderboard payload.
var ingestSpeedrunCmd = &cobra.Command{
	Use:   "speedruncom [file]",
	Short: "Reconcile a speedrun.com leaderboard payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIngest(args[0], func(svc *records.Service, f *os.File) (*records.IngestSummary, error) {
			return svc.IngestSpeedrun(f)
		})
	},
}

func init() {
	ingestCmd.AddCommand(ingestDeerTierCmd, ingestSpeedrunCmd)
	RootCmd.AddCommand(ingestCmd)
}

func runIngest(path string, ingest func(*records.Service, *os.File) (*records.IngestSummary, error)) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection required: %w", err)
	}

	svc := records.NewService(db, logg)
	if err := svc.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open payload: %w", err)
	}
	defer f.Close()

	logg.Info("Ingesting payload...", zap.String("file", path))
	summary, err := ingest(svc, f)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	logg.Info("Ingestion complete",
		zap.String("source", summary.Source),
		zap.Int("runs", summary.Runs),
		zap.Int("skipped", summary.Skipped),
	)
	return nil
}
