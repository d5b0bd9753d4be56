package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/oficinagl/garantia/internal/classify"
	"github.com/oficinagl/garantia/internal/cli"
	"github.com/oficinagl/garantia/internal/common"
	"github.com/oficinagl/garantia/internal/ingest"
	"github.com/oficinagl/garantia/internal/pipeline"
	"github.com/oficinagl/garantia/internal/service"
)

const maxReportedWarnings = 15

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import warranty orders from spreadsheet CSV exports",
		Long: `Import warranty service orders from CSV exports of the workshop
spreadsheet (the "Tabela" sheet).

Examples:
  # Import a single export
  garantia import ~/Downloads/tabela_2024.csv

  # Import everything in a directory
  garantia import ~/Downloads/exports/*.csv

  # Preview without writing to the database
  garantia import --dry-run tabela.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	allFiles, err := expandFileArgs(args)
	if err != nil {
		return err
	}
	if len(allFiles) == 0 {
		return common.NewUserError("no files found to import", nil)
	}

	common.LogInfo("Importing spreadsheet exports", common.Fields{
		"file_count": len(allFiles),
		"dry_run":    dryRun,
	})

	p := pipeline.New(classify.NewClassifier(), gateFromConfig())

	var outcome pipeline.Outcome
	for _, filePath := range allFiles {
		slog.Info("Processing file", "file", filepath.Base(filePath))

		f, err := os.Open(filePath)
		if err != nil {
			common.LogError(err, "Failed to open file", common.Fields{"file": filePath})
			continue
		}

		rows, err := ingest.ReadCSV(f)
		_ = f.Close()
		if err != nil {
			common.LogError(err, "Failed to parse file", common.Fields{"file": filePath})
			continue
		}

		result := p.Process(rows)
		outcome.Orders = append(outcome.Orders, result.Orders...)
		outcome.Warnings = append(outcome.Warnings, result.Warnings...)
		outcome.Rejected = append(outcome.Rejected, result.Rejected...)
	}

	reportWarnings(outcome.Warnings)
	reportRejections(outcome.Rejected)

	toPersist := outcome.Orders

	if dryRun {
		fmt.Println(cli.InfoStyle.Render(fmt.Sprintf(
			"Dry run: %d orders would be imported (%d rejected, %d warnings)",
			len(toPersist), len(outcome.Rejected), len(outcome.Warnings)))) //nolint:forbidigo // User-facing output
		return nil
	}

	if len(toPersist) == 0 {
		fmt.Println(cli.WarningStyle.Render("No admissible orders found")) //nolint:forbidigo // User-facing output
		return nil
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

	// Long imports can collide with a concurrent reconcile run holding the
	// write lock; retry with backoff instead of losing the whole batch.
	err = common.WithRetry(ctx, func() error {
		return store.UpsertOrders(ctx, toPersist)
	}, service.RetryOptions{MaxAttempts: 3, InitialDelay: 200 * time.Millisecond})
	if err != nil {
		return fmt.Errorf("failed to save orders: %w", err)
	}

	renderImportSummary(len(allFiles), len(toPersist), len(outcome.Rejected), len(outcome.Warnings))
	return nil
}

func expandFileArgs(args []string) ([]string, error) {
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}
	return allFiles, nil
}

func reportWarnings(warnings []pipeline.Warning) {
	if len(warnings) == 0 {
		return
	}
	slog.Warn("Warnings during processing", "total", len(warnings))
	for i, w := range warnings {
		if i == maxReportedWarnings {
			slog.Warn("Further warnings suppressed", "remaining", len(warnings)-maxReportedWarnings)
			break
		}
		slog.Warn("Row warning", "row", w.Row, "reason", w.Reason)
	}
}

func reportRejections(rejected []pipeline.Rejection) {
	for _, r := range rejected {
		slog.Warn("Row rejected by validation",
			"row", r.Row,
			"numero_ordem", r.NumeroOrdem,
			"failed", r.Failed)
	}
}

func renderImportSummary(files, saved, rejected, warnings int) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Files", "Orders saved", "Rejected", "Warnings"})
	t.AppendRow(table.Row{files, saved, rejected, warnings})
	t.Render()

	fmt.Println(cli.SuccessStyle.Render("Import complete")) //nolint:forbidigo // User-facing output
}
