package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := c.openApp()
			if err != nil {
				return err
			}
			defer application.Close()

			applied, err := application.Migrate()
			if err != nil {
				return err
			}
			c.log.Info("db: migrations complete", "applied", applied)
			return nil
		},
	}
}
