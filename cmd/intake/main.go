package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/arjungandhi/intake"
	"github.com/arjungandhi/intake/cmd/intake/tui"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:          "intake",
	Short:        "capture contacts into a CSV file",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The form has its own file-backed logger; stderr belongs to it.
		if cmd.Use == "intake" && cmd.CalledAs() == "intake" {
			return nil
		}
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("intake needs an interactive terminal")
		}
		cfg := intake.NewConfig()
		if err := cfg.EnsureDir(); err != nil {
			return err
		}
		log := intake.NewLogger(cfg.Dir)
		defer log.Sync()
		ctrl := intake.NewController(cfg, intake.NewDraftStore(cfg.Dir), log)
		return tui.Run(ctrl, log)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "choose where saved entries go",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := intake.NewConfig()
		if err := cfg.EnsureDir(); err != nil {
			return err
		}
		ctrl := intake.NewController(cfg, intake.NewDraftStore(cfg.Dir), logger)

		path := ctrl.CSVPath()
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("CSV file").
				Description("Saved entries are appended here. A .csv extension is added if missing.").
				Value(&path).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("required")
					}
					return nil
				}),
		))
		if err := form.Run(); err != nil {
			return err
		}
		path = strings.TrimSpace(path)
		if filepath.Ext(path) == "" {
			path += ".csv"
		}

		if info, err := os.Stat(path); err == nil && info.Size() > 0 {
			var proceed bool
			confirm := huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title("File exists").
					Description(fmt.Sprintf("%s already has data. New entries will be appended.", path)).
					Affirmative("Use it").
					Negative("Cancel").
					Value(&proceed),
			))
			if err := confirm.Run(); err != nil {
				return err
			}
			if !proceed {
				fmt.Fprintln(os.Stderr, "Cancelled.")
				return nil
			}
		}

		ctrl.ChooseFile(path)
		logger.Debug("csv target chosen", zap.String("path", path))
		fmt.Fprintf(os.Stderr, "Saving entries to %s\n", path)
		return nil
	},
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "print the app directory and file locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := intake.NewConfig()
		store := intake.NewDraftStore(cfg.Dir)
		ctrl := intake.NewController(cfg, store, logger)
		fmt.Printf("dir:   %s\n", cfg.Dir)
		fmt.Printf("state: %s\n", store.Path())
		fmt.Printf("csv:   %s\n", ctrl.CSVPath())
		if cfg.VCFDir != "" {
			fmt.Printf("vcf:   %s\n", cfg.VCFDir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd, whereCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
