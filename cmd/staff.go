package main

import (
	"fmt"

	"directorybolt/internal/auth"
	"directorybolt/internal/config"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func staffRoleFlag(cmd *cobra.Command) domain.StaffRole {
	raw, _ := cmd.Flags().GetString("role")
	role := domain.StaffRole(raw)
	if !role.Valid() {
		logger.Fatal(cmd.Context(), "role must be admin or staff", zap.String("role", raw))
	}

	return role
}

// staffCommand constructs the 'staff' subcommand that manages operator
// accounts and API keys.
func staffCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manages operator accounts",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Creates an operator account with basic credentials",
		Run: func(cmd *cobra.Command, _ []string) {
			ctx := cmd.Context()
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			role := staffRoleFlag(cmd)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			staff := auth.NewStaffAuthenticator(strg, auth.FallbackCredentials{}, cfg.Auth.BcryptCost)
			user, err := staff.CreateStaffUser(ctx, username, password, role)
			if err != nil {
				logger.Fatal(ctx, "could not create staff user", zap.Error(err))
			}

			logger.Info(ctx, "staff user created", zap.String("username", user.Username), zap.String("role", string(user.Role)))
		},
	}
	create.Flags().String("username", "", "Login name")
	create.Flags().String("password", "", "Password")
	create.Flags().String("role", string(domain.StaffRoleStaff), "admin or staff")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("password")

	apiKey := &cobra.Command{
		Use:   "apikey",
		Short: "Creates an operator API key and prints it once",
		Run: func(cmd *cobra.Command, _ []string) {
			ctx := cmd.Context()
			name, _ := cmd.Flags().GetString("name")
			role := staffRoleFlag(cmd)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			staff := auth.NewStaffAuthenticator(strg, auth.FallbackCredentials{}, cfg.Auth.BcryptCost)
			key, rec, err := staff.CreateAPIKey(ctx, name, role)
			if err != nil {
				logger.Fatal(ctx, "could not create api key", zap.Error(err))
			}

			logger.Info(ctx, "api key created", zap.String("name", rec.Name), zap.String("role", string(rec.Role)))
			fmt.Println(key) //nolint: forbidigo
		},
	}
	apiKey.Flags().String("name", "", "Key name, shown in logs")
	apiKey.Flags().String("role", string(domain.StaffRoleStaff), "admin or staff")
	_ = apiKey.MarkFlagRequired("name")

	cmd.AddCommand(create, apiKey)

	return cmd
}
