package main

import (
	"fmt"
	"os"
	"time"

	"directorybolt/internal/config"
	"directorybolt/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that issues an RS256 token for
// an AutoBolt worker using the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Issues an AutoBolt worker token",
		Run: func(cmd *cobra.Command, _ []string) {
			ctx := cmd.Context()
			worker, _ := cmd.Flags().GetString("worker")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			pem, err := os.ReadFile(cfg.JWT.PrivateKeyPath)
			if err != nil {
				logger.Fatal(ctx, "could not read RSA private key", zap.Error(err))
			}
			key, err := jwt.ParseRSAPrivateKeyFromPEM(pem)
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			now := time.Now()
			signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
				Subject:   worker,
				Issuer:    cfg.JWT.Issuer,
				IssuedAt:  jwt.NewNumericDate(now),
				NotBefore: jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			}).SignedString(key)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("worker", "", "Worker name, stored as the token subject")
	cmd.Flags().Duration("ttl", 30*24*time.Hour, "Token TTL (e.g., 15m, 24h)")
	_ = cmd.MarkFlagRequired("worker")

	return cmd
}
