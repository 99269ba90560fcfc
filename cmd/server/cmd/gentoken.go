package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/gatherly/server/internal/auth"
	"github.com/spf13/cobra"
)

var (
	gentokenCmd = &cobra.Command{
		Use:   "gentoken",
		Short: "Generate a session token for API testing",
		Long: `Generate a signed session token using JWT_SECRET from the environment.

Useful for exercising protected endpoints with curl without going through
the login flow. The user id and role are taken from flags; the server does
not check that the id exists, so tokens for arbitrary ids will authenticate
but may 404 on /user.`,
		RunE: runGentoken,
	}

	gentokenUserID   int64
	gentokenUsername string
	gentokenRole     string
	gentokenTTL      time.Duration
)

func init() {
	gentokenCmd.Flags().Int64Var(&gentokenUserID, "user-id", 1, "user id claim")
	gentokenCmd.Flags().StringVar(&gentokenUsername, "username", "test-user", "username claim")
	gentokenCmd.Flags().StringVar(&gentokenRole, "role", "user", "role claim (user or admin)")
	gentokenCmd.Flags().DurationVar(&gentokenTTL, "ttl", 24*time.Hour, "token lifetime")
}

func runGentoken(cmd *cobra.Command, args []string) error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "gatherly"
	}

	manager := auth.NewJWTManager(secret, gentokenTTL, issuer)
	token, err := manager.Generate(gentokenUserID, gentokenUsername, string(auth.NormalizeRole(gentokenRole)))
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, token)
	fmt.Fprintln(cmd.ErrOrStderr(), "\nTest with:")
	fmt.Fprintf(cmd.ErrOrStderr(), "curl -H 'Authorization: %s' http://localhost:8080/events\n", token)
	return nil
}
