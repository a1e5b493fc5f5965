package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mettadata/solana-idl-codegen/internal/codegen"
	"github.com/mettadata/solana-idl-codegen/internal/common"
	"github.com/mettadata/solana-idl-codegen/internal/config"
	"github.com/mettadata/solana-idl-codegen/internal/errors"
	"github.com/mettadata/solana-idl-codegen/internal/idl"
	"github.com/mettadata/solana-idl-codegen/internal/override"
)

var (
	idlPath      string
	outputDir    string
	packageName  string
	overrideFile string
	overrideDir  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Go bindings from an Anchor IDL",
	Long: `Generate a Go bindings package from an Anchor IDL JSON file.

Override files correcting the program address or discriminators are
discovered next to the IDL (overrides/<name>.json, then idl-overrides.json)
or supplied explicitly with --override-file.

Example:
  idlgen generate --idl ./target/idl/my_program.json --output ./generated/myprogram
  idlgen generate -i idl.json -o ./pkg/myprogram -p myprogram --override-file fixes.json`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&idlPath, "idl", "i", "", "Path to Anchor IDL JSON file (required)")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for generated code")
	generateCmd.Flags().StringVarP(&packageName, "package", "p", "", "Go package name (defaults to program name from IDL)")
	generateCmd.Flags().StringVar(&overrideFile, "override-file", "", "Explicit override file (skips discovery)")
	generateCmd.Flags().StringVar(&overrideDir, "override-dir", "", "Directory searched for override files (defaults to the IDL directory)")

	if err := generateCmd.MarkFlagRequired("idl"); err != nil {
		fmt.Fprintf(os.Stderr, "Error marking flag required: %v\n", err)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	logger := common.NewLogger(cfg.Log.Level, cfg.Log.Format).
		With("run_id", uuid.NewString())

	absIDLPath, err := filepath.Abs(idlPath)
	if err != nil {
		return fmt.Errorf("failed to resolve IDL path: %w", err)
	}
	if _, err := os.Stat(absIDLPath); os.IsNotExist(err) {
		return fmt.Errorf("IDL file not found: %s", absIDLPath)
	}

	schema, err := idl.ParseFile(absIDLPath)
	if err != nil {
		return errors.NewError(errors.ErrCodeSchemaParse, "failed to parse IDL").WithCause(err)
	}
	logger.Info("parsed IDL",
		"program", schema.GetName(),
		"version", schema.GetVersion(),
		"instructions", len(schema.Instructions),
		"accounts", len(schema.Accounts),
		"events", len(schema.Events),
		"types", len(schema.Types),
	)

	ovDir, ovFile := overrideSearch(cfg, overrideDir, overrideFile)
	schema, err = resolveOverrides(logger, schema, absIDLPath, ovDir, ovFile)
	if err != nil {
		return err
	}

	pkg := packageName
	if pkg == "" {
		pkg = cfg.Output.Package
	}
	arts, err := codegen.Emit(schema, pkg)
	if err != nil {
		return err
	}

	outDir := outputDir
	if outDir == "" {
		outDir = cfg.Output.Dir
	}
	absOutputDir, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output path: %w", err)
	}
	if err := os.MkdirAll(absOutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := arts.Files()
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(absOutputDir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		logger.Info("wrote unit", "file", path)
	}

	fmt.Printf("Generated bindings for %s (v%s) in %s\n",
		schema.GetName(), schema.GetVersion(), absOutputDir)
	return nil
}

// overrideSearch picks the override directory and explicit file: flags win,
// the config file fills in whatever the flags leave empty.
func overrideSearch(cfg *config.Config, flagDir, flagFile string) (dir, file string) {
	dir = flagDir
	if dir == "" {
		dir = cfg.Override.Dir
	}
	file = flagFile
	if file == "" {
		file = cfg.Override.File
	}
	return dir, file
}

// resolveOverrides runs override discovery, validation, and application,
// returning the (possibly patched) schema. An empty dir falls back to the
// IDL file's directory.
func resolveOverrides(logger *slog.Logger, schema *idl.IDL, absIDLPath, dir, file string) (*idl.IDL, error) {
	if dir == "" {
		dir = filepath.Dir(absIDLPath)
	}

	disc := override.Discover(dir, schema.GetName(), file)
	switch disc.State {
	case override.NotFound:
		if file != "" {
			return nil, fmt.Errorf("override file not found: %s", file)
		}
		return schema, nil
	case override.Conflict:
		lines := make([]string, len(disc.Candidates))
		for i, c := range disc.Candidates {
			lines[i] = fmt.Sprintf("%s (%s)", c, disc.Sources[i])
		}
		return nil, errors.Newf(errors.ErrCodeOverrideConflict,
			"multiple override files found, keep one or pass --override-file: %s",
			strings.Join(lines, "; ")).
			WithDetails(map[string]any{"candidates": disc.Candidates, "sources": disc.Sources})
	}

	doc, err := override.Load(disc.Path)
	if err != nil {
		return nil, err
	}
	if err := override.Validate(doc, schema); err != nil {
		return nil, err
	}

	patched, applied := override.Apply(schema, doc)
	for _, a := range applied {
		logger.Info("applied override",
			"kind", a.Kind.String(),
			"entity", a.EntityName,
			"original", a.Original,
			"new", a.New,
		)
	}
	logger.Info("overrides applied", "file", disc.Path, "count", len(applied))
	return patched, nil
}
