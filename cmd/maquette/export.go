package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atelierworks/maquette/internal/config"
	"github.com/atelierworks/maquette/internal/export"
	"github.com/atelierworks/maquette/internal/store"
	"github.com/atelierworks/maquette/internal/types"
)

var (
	exportSheet string
	exportOut   string
	exportDB    string
)

var exportCmd = &cobra.Command{
	Use:   "export <project-id>",
	Short: "Export a project sheet as CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportSheet, "sheet", "ffe",
		"Sheet type: walkthrough, checklist, ffe")
	exportCmd.Flags().StringVar(&exportOut, "out", "",
		"Output file (default: derived from project name, - for stdout)")
	exportCmd.Flags().StringVar(&exportDB, "db", "",
		"Database path (overrides config and MAQUETTE_DB_PATH)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	projectID := args[0]

	sheet := types.SheetType(exportSheet)
	if !sheet.Valid() {
		return fmt.Errorf("invalid sheet type %q", exportSheet)
	}

	dbPath := exportDB
	if dbPath == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dbPath = cfg.Database.Path
	}

	db, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	project, err := db.GetProjectTree(ctx, projectID, sheet)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}

	csv := export.CSV(*project)

	if exportOut == "-" {
		fmt.Fprint(cmd.OutOrStdout(), csv)
		return nil
	}

	out := exportOut
	if out == "" {
		out = export.Filename(project.Name, sheet)
	}
	if err := os.WriteFile(out, []byte(csv), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s (%s) to %s\n", project.Name, sheet, out)
	return nil
}
