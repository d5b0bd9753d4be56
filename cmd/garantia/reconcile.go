package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oficinagl/garantia/internal/classify"
	"github.com/oficinagl/garantia/internal/cli"
	"github.com/oficinagl/garantia/internal/reconcile"
)

func reconcileCmd() *cobra.Command {
	var (
		datesOnly    bool
		classifyOnly bool
		pageSize     int
		showReport   bool
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Backfill derived fields on stored orders",
		Long: `Re-scan previously imported orders and backfill anything derivable:
service day/month/year from the order date, and defect taxonomy from raw
defect text. Safe to re-run; a second pass corrects nothing.

Examples:
  # Run both passes
  garantia reconcile

  # Only backfill service dates
  garantia reconcile --dates

  # Only re-run defect classification, in smaller pages
  garantia reconcile --classify --page-size 200`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if datesOnly && classifyOnly {
				return fmt.Errorf("--dates and --classify are mutually exclusive")
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("failed to close storage", "error", closeErr)
				}
			}()

			if pageSize <= 0 {
				pageSize = viper.GetInt("reconcile.page_size")
			}
			pause := time.Duration(viper.GetInt("reconcile.page_pause_ms")) * time.Millisecond

			engine := reconcile.NewEngine(store, classify.NewClassifier(), reconcile.Config{
				PageSize:     pageSize,
				PagePause:    pause,
				ShowProgress: true,
			})

			var summary reconcile.Summary
			switch {
			case datesOnly:
				summary, err = engine.ReconcileServiceDates(ctx)
			case classifyOnly:
				summary, err = engine.ReconcileClassifications(ctx)
			default:
				summary, err = engine.Run(ctx)
			}

			renderReconcileSummary(summary)
			if err != nil {
				return fmt.Errorf("reconciliation aborted: %w", err)
			}

			if showReport {
				if reportErr := renderStoreReport(ctx, store); reportErr != nil {
					return reportErr
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&datesOnly, "dates", false, "Only backfill service dates")
	cmd.Flags().BoolVar(&classifyOnly, "classify", false, "Only re-run defect classification")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Records per page (default from config)")
	cmd.Flags().BoolVar(&showReport, "report", false, "Print defect group and mechanic counts afterwards")

	return cmd
}

// renderReconcileSummary always prints the summary, even after a partial
// failure, so the operator sees what the run did get done.
func renderReconcileSummary(summary reconcile.Summary) {
	fmt.Println(cli.SubtleStyle.Render("run " + summary.RunID)) //nolint:forbidigo // User-facing output

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Processed", "Corrected", "Errors"})
	t.AppendRow(table.Row{summary.Processed, summary.Corrected, summary.Errors})
	t.Render()

	for numeroOrdem, reason := range summary.Failures {
		fmt.Println(cli.ErrorStyle.Render(
			fmt.Sprintf("  %s: %s", numeroOrdem, reason))) //nolint:forbidigo // User-facing output
	}

	if summary.Errors == 0 {
		fmt.Println(cli.SuccessStyle.Render("Reconciliation complete")) //nolint:forbidigo // User-facing output
	} else {
		fmt.Println(cli.WarningStyle.Render("Reconciliation finished with errors")) //nolint:forbidigo // User-facing output
	}
}

type reporter interface {
	CountByDefectGroup(ctx context.Context) (map[string]int, error)
	CountByMechanic(ctx context.Context) (map[string]int, error)
}

func renderStoreReport(ctx context.Context, store reporter) error {
	byGroup, err := store.CountByDefectGroup(ctx)
	if err != nil {
		return fmt.Errorf("failed to aggregate defect groups: %w", err)
	}
	byMechanic, err := store.CountByMechanic(ctx)
	if err != nil {
		return fmt.Errorf("failed to aggregate mechanics: %w", err)
	}

	renderCountTable("Defect group", byGroup)
	renderCountTable("Mechanic", byMechanic)
	return nil
}

func renderCountTable(label string, counts map[string]int) {
	fmt.Println(cli.TitleStyle.Render(label + "s")) //nolint:forbidigo // User-facing output

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{label, "Orders"})
	for _, k := range keys {
		t.AppendRow(table.Row{k, counts[k]})
	}
	t.Render()
}
