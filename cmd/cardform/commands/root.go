package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-cardform/pkg/config"
	"github.com/goliatone/go-cardform/pkg/logger"
)

type app struct {
	configPath string
	logLevel   string
	cfg        config.Config
	log        *slog.Logger
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return newRootCmd(os.Stdout, os.Stderr).Execute()
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "cardform",
		Short:         "Member ID-card form helpers",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.Log.Level = a.logLevel
			}
			a.cfg = cfg
			a.log = logger.NewWithWriter(stderr, cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		validUntilCmd(a),
		previewCmd(a),
		serveCmd(a),
		interactiveCmd(a, newSurveyPrompter()),
	)
	return root
}
