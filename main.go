// Command xlfluent builds spreadsheets with the workbook package: it renders
// the sample workbooks, fills templates, serves exports over HTTP and exposes
// the coordinate helpers.
package main

import (
	"fmt"
	"os"

	"github.com/orayew2002/xlfluent/config"
	"github.com/orayew2002/xlfluent/pdf"
	"github.com/orayew2002/xlfluent/workbook"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string

	cfg    config.Config
	log    = logrus.New()
	engine *workbook.Engine
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "xlfluent",
		Short:         "Build, fill and export Excel workbooks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")

	rootCmd.AddCommand(
		coordCmd(),
		sampleCmd("hello", "Write a workbook greeting from B2"),
		sampleCmd("formatting", "Write a workbook showing the font decorations"),
		renderCmd(),
		serveCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("xlfluent failed")
		os.Exit(1)
	}
}

// setup loads the configuration, configures logging and builds the engine.
func setup() error {
	cfg = config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)
	if cfg.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	var opts []workbook.Option
	if cfg.PDF.Enabled {
		opts = append(opts, workbook.WithPDFRenderer(pdf.New()))
	}
	engine = workbook.NewEngine(cfg, opts...)

	log.WithFields(logrus.Fields{
		"config": configPath,
		"pdf":    engine.PDFAvailable(),
	}).Debug("engine ready")

	return nil
}
