package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	userdomain "testtrack/internal/domain/user"
)

const (
	seedUsersPerRole = 10
	seedPassword     = "password"
)

func (c *CLI) newCreateAdminCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a superadmin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := c.openApp()
			if err != nil {
				return err
			}
			defer application.Close()

			admin, err := application.Users.Bootstrap(cmd.Context(), userdomain.CreateInput{
				Name:     name,
				Email:    email,
				Password: password,
				Role:     userdomain.RoleSuperadmin,
			})
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			c.log.Info("users: superadmin created", "user_id", admin.ID, "email", admin.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Admin", "display name")
	cmd.Flags().StringVar(&email, "email", "admin@example.com", "login email")
	cmd.Flags().StringVar(&password, "password", "", "login password (at least 8 characters)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (c *CLI) newSeedCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create demo support and tester accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.cfg.IsDevelopment() {
				return errors.New("seed is only available with ENV=development")
			}

			application, err := c.openApp()
			if err != nil {
				return err
			}
			defer application.Close()

			return c.seedUsers(cmd.Context(), application.Users, password)
		},
	}

	cmd.Flags().StringVar(&password, "password", seedPassword, "password for every seeded account")

	return cmd
}

func (c *CLI) seedUsers(ctx context.Context, users *userdomain.Service, password string) error {
	roles := []struct {
		role  userdomain.Role
		label string
		slug  string
	}{
		{userdomain.RoleSupport, "Support", "support"},
		{userdomain.RoleTester, "Tester", "tester"},
	}

	created := 0
	for _, r := range roles {
		for i := 1; i <= seedUsersPerRole; i++ {
			input := userdomain.CreateInput{
				Name:     fmt.Sprintf("%s %d", r.label, i),
				Email:    fmt.Sprintf("%s%d@example.com", r.slug, i),
				Password: password,
				Role:     r.role,
			}
			if _, err := users.Bootstrap(ctx, input); err != nil {
				if errors.Is(err, userdomain.ErrEmailTaken) {
					c.log.Info("seed: user exists, skipping", "email", input.Email)
					continue
				}
				return fmt.Errorf("seed %s: %w", input.Email, err)
			}
			created++
		}
	}

	c.log.Info("seed: complete", "created", created)
	return nil
}
