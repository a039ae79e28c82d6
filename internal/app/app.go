package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/readeck/bitone/pkg/config"
	_ "github.com/readeck/bitone/pkg/img/native" // native image loader
)

var rootCmd = &cobra.Command{
	Use:               "bitone",
	Short:             "Convert images to black and white",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: appPersistentPreRun,
}

var (
	configPath string
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c",
		"", "Configuration file",
	)
	rootCmd.PersistentFlags().StringVarP(
		&logLevel, "level", "l",
		config.Config.Main.LogLevel, "Log level",
	)
}

func appPersistentPreRun(c *cobra.Command, _ []string) error {
	if err := config.LoadConfiguration(configPath); err != nil {
		return fmt.Errorf("error loading configuration (%s)", err)
	}
	if c.Flags().Changed("level") {
		config.Config.Main.LogLevel = logLevel
	}

	// Setup logger
	lvl, err := log.ParseLevel(config.Config.Main.LogLevel)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.WithField("log_level", lvl).Debug()
	if log.IsLevelEnabled(log.DebugLevel) {
		log.SetFormatter(&log.TextFormatter{
			ForceColors: true,
		})
		log.SetOutput(colorable.NewColorableStdout())
	}

	return nil
}

// Run starts the application
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP,
	)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}
