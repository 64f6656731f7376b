package cmd

import (
	"fmt"

	"shaktool/core/config"
	"shaktool/core/database"
	"shaktool/core/logger"
	"shaktool/feature/records"

	"github.com/spf13/cobra"
)

// recordsCmd is the parent command for the leaderboard queries.
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Query the canonical record set",
}

// topCmd lists the top records for a category.
var topCmd = &cobra.Command{
	Use:   "top [category]",
	Short: "Show the top 10 records for a category",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordsQuery(func(svc *records.Service) ([]records.RecordView, error) {
			return svc.Top(joinArgs(args))
		})
	},
}

// wrCmd shows the world record for a category.
var wrCmd = &cobra.Command{
	Use:   "wr [category]",
	Short: "Show the world record for a category",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordsQuery(func(svc *records.Service) ([]records.RecordView, error) {
			view, err := svc.WorldRecord(joinArgs(args))
			if err != nil {
				return nil, err
			}
			return []records.RecordView{*view}, nil
		})
	},
}

// pbCmd shows a runner's personal best for a category.
var pbCmd = &cobra.Command{
	Use:   "pb [runner] [category]",
	Short: "Show a runner's personal best for a category",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordsQuery(func(svc *records.Service) ([]records.RecordView, error) {
			view, err := svc.PersonalBest(args[0], joinArgs(args[1:]))
			if err != nil {
				return nil, err
			}
			return []records.RecordView{*view}, nil
		})
	},
}

// runnerCmd lists all active records of a runner.
var runnerCmd = &cobra.Command{
	Use:   "runner [name]",
	Short: "Show all active records of a runner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecordsQuery(func(svc *records.Service) ([]records.RecordView, error) {
			return svc.RunnerRecords(args[0])
		})
	},
}

func init() {
	recordsCmd.AddCommand(topCmd, wrCmd, pbCmd, runnerCmd)
	RootCmd.AddCommand(recordsCmd)
}

func joinArgs(args []string) string {
	joined := ""
	for i, a := range args {
		if i > 0 {
			joined += " "
		}
		joined += a
	}
	return joined
}

func runRecordsQuery(query func(*records.Service) ([]records.RecordView, error)) error {
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

	views, err := query(svc)
	if err != nil {
		return err
	}

	for _, v := range views {
		line := fmt.Sprintf("%3d. %-20s %s  %s [%s]", v.Rank, v.Runner, v.Realtime, v.Category, v.Region)
		if v.Video != "" {
			line += "  " + v.Video
		}
		fmt.Println(line)
	}
	return nil
}
