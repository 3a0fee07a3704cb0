package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/service"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

// userCreateCmd is the only way to create admin and manager accounts.
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account with an explicit role",
	Long: `Create an account with an explicit role. Usage:

	cms user create --name "Ada" --email ada@example.com --password s3cret --role admin
`,
	RunE: runUserCreate,
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)

	f := userCreateCmd.Flags()
	f.String("name", "", "display name")
	f.String("email", "", "login email")
	f.String("password", "", "initial password")
	f.String("role", string(domain.RoleAdmin), "admin, manager or user")
	_ = userCreateCmd.MarkFlagRequired("name")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")
}

func runUserCreate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	f := cmd.Flags()
	name, _ := f.GetString("name")
	email, _ := f.GetString("email")
	password, _ := f.GetString("password")
	roleFlag, _ := f.GetString("role")

	role, err := domain.ParseRole(roleFlag)
	if err != nil {
		return err
	}

	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	tokens, err := service.NewTokenService(cfg.JWTSecret)
	if err != nil {
		return err
	}
	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer repos.close(ctx)

	auth, err := service.NewAuthService(repos.users, tokens, cfg.BcryptCost, log)
	if err != nil {
		return err
	}
	user, err := auth.Provision(ctx, name, email, password, role)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (%s)\n", user.Role, user.Email, user.ID)
	return nil
}
