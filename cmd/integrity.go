package cmd

import (
	"context"

	"asset-indexer/feature/integrity"
	"asset-indexer/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the asset tree and the index store",
	Long:  `Checks that the asset folders exist, that the index schema is intact and that every indexed icon resolves to a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the asset folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the index store schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// iconsCmd represents the integrity icons command
var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List indexed items whose icon file is missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing folders")

	integrityCmd.AddCommand(structureCmd, schemaCmd, iconsCmd)
	RootCmd.AddCommand(integrityCmd)
}

func runIntegrityChecks(ctx context.Context, runStructure, runSchema, runIcons bool) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	svc := integrity.NewService(a.db, a.roots, a.logg)
	logg := a.logg

	if runStructure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return err
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			for _, f := range missing {
				logg.Warn("Missing folder", zap.String("folder", f.Name), zap.String("path", f.Path))
			}

			if fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return err
				}
				logg.Info("Structure fixed successfully.")
			} else if !runSchema {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if runSchema {
		logg.Info("Checking index schema...")
		report, err := svc.CheckSchema(ctx)
		if err != nil {
			return err
		}
		logSchemaReport(logg, report)
	}

	if runIcons {
		logg.Info("Checking icons...")
		report, err := svc.CheckIcons(ctx)
		if err != nil {
			logg.Error("Icon check failed", zap.Error(err))
		} else if len(report.Missing) == 0 {
			logg.Info("All icons resolve.", zap.Int("checked", report.Checked))
		} else {
			for _, m := range report.Missing {
				logg.Warn("Missing icon", zap.String("item", m.Name), zap.String("icon", m.Icon))
			}
			logg.Warn("Icons missing", zap.Int("checked", report.Checked), zap.Int("missing", len(report.Missing)))
		}
	}

	return nil
}

func logSchemaReport(logg *zap.Logger, report *checks.SchemaReport) {
	if report.Matched {
		logg.Info("Index schema matches expected definition.")
		return
	}

	logg.Warn("Index schema mismatches found")
	for table, tbl := range report.Tables {
		switch tbl.Status {
		case checks.StatusMissing:
			logg.Warn("Missing table", zap.String("table", table))
		case checks.StatusError:
			if len(tbl.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
			}
			if len(tbl.ExtraColumns) > 0 {
				logg.Warn("Extra Columns", zap.String("table", table), zap.Strings("columns", tbl.ExtraColumns))
			}
			if len(tbl.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
			}
		}
	}
	for _, e := range report.Errors {
		logg.Error("Inspection Error", zap.String("error", e))
	}
}
