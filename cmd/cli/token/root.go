// Package token implements `dsctl token`, which mints a short-lived JWT
// signed with the resolved document server secret. The token is handy for
// checking the deployed server's JWT gate with curl.
package token

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/spf13/cobra"

	"github.com/docserve/dsctl/pkg/config"
)

var Cmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a JWT signed with the document server secret",
	Long: `Token mints an HS256 JWT signed with the resolved document server secret.

The document server authorizes inter-service requests with the same secret,
so a minted token can be sent in the Authorization header to verify that the
deployed instance enforces (or skips) signature checks as configured.`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

var ttl time.Duration

func init() {
	Cmd.Flags().DurationVar(&ttl, "ttl", 5*time.Minute, "Token lifetime")
	Cmd.SetOut(os.Stdout)
	Cmd.SetErr(os.Stderr)
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load[config.Full]()
	if err != nil {
		return err
	}
	if !cfg.OnlyOffice.JWTEnabled {
		cmd.PrintErrln("⚠️  jwt_enabled is false; the server will not check this token")
	}

	signed, err := Mint(cfg.OnlyOffice.Secret, ttl)
	if err != nil {
		return err
	}

	cmd.Println(signed)
	return nil
}

// Mint signs an HS256 token with the given secret, valid for ttl.
func Mint(secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    "dsctl",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
