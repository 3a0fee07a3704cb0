package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/service"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Session token utilities",
}

// tokenIssueCmd signs a token for an existing subject without a password.
// It needs only JWT_SECRET and is meant for operators and smoke tests.
var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a session token for a subject",
	RunE:  runTokenIssue,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenIssueCmd)

	f := tokenIssueCmd.Flags()
	f.String("subject", "", "user id placed in the id and sub claims")
	f.String("email", "", "email claim")
	f.String("role", string(domain.RoleUser), "admin, manager or user")
	_ = tokenIssueCmd.MarkFlagRequired("subject")
}

func runTokenIssue(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	subject, _ := f.GetString("subject")
	email, _ := f.GetString("email")
	roleFlag, _ := f.GetString("role")

	role, err := domain.ParseRole(roleFlag)
	if err != nil {
		return err
	}
	cfg, _, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	tokens, err := service.NewTokenService(cfg.JWTSecret)
	if err != nil {
		return err
	}

	token, err := tokens.Issue(&domain.User{ID: subject, Email: domain.NormalizeEmail(email), Role: role})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
