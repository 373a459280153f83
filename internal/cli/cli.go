// Package cli wires the testtrack commands: serve, migrate, create-admin and seed.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"testtrack/internal/app"
	"testtrack/internal/config"
	"testtrack/pkg/logger"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

type CLI struct {
	rootCmd    *cobra.Command
	cfg        config.Config
	log        logger.Logger
	configPath string
}

func New() *CLI {
	c := &CLI{log: logger.NewFromEnv()}
	c.rootCmd = c.newRootCmd()
	return c
}

func (c *CLI) Execute() int {
	if err := c.rootCmd.Execute(); err != nil {
		c.log.Critical("cli: command failed", "err", err)
		return ExitFailure
	}
	return ExitSuccess
}

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "testtrack",
		Short:         "Role-based test case tracking service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
	}

	cmd.PersistentFlags().StringVar(&c.configPath, "config", "", "optional config file (yaml, json or toml)")

	cmd.AddCommand(c.newServeCmd())
	cmd.AddCommand(c.newMigrateCmd())
	cmd.AddCommand(c.newCreateAdminCmd())
	cmd.AddCommand(c.newSeedCmd())

	return cmd
}

func (c *CLI) initConfig() error {
	cfg, err := config.Load(c.log, c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log = logger.NewWithSettings(os.Stdout, cfg.Env, cfg.Log.Level, cfg.Log.Format)
	return nil
}

func (c *CLI) openApp() (*app.App, error) {
	return app.New(c.cfg, c.log)
}
