package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/nfrund/signon/internal/domain"
	"github.com/nfrund/signon/internal/form"
	"github.com/nfrund/signon/internal/submit"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var accountFlags struct {
	email    string
	password string
	name     string
	phone    string
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account with the configured identity service",
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := form.Fields{
			"email":    accountFlags.email,
			"password": accountFlags.password,
			"name":     accountFlags.name,
			"phone":    accountFlags.phone,
		}
		return runAccount(cmd, fields, []string{"email", "password", "name", "phone"},
			func(svc domain.IdentityService) submit.Call {
				return func(ctx context.Context, f form.Fields) (domain.Token, error) {
					return svc.CreateAccount(ctx, domain.Credentials{
						Identifier: f["email"],
						Secret:     f["password"],
						Profile:    domain.Profile{Name: f["name"], Phone: f["phone"]},
					})
				}
			}, "Account created successfully")
	},
}

var signinCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in with the configured identity service and print the token",
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := form.Fields{
			"email":    accountFlags.email,
			"password": accountFlags.password,
		}
		return runAccount(cmd, fields, []string{"email", "password"},
			func(svc domain.IdentityService) submit.Call {
				return func(ctx context.Context, f form.Fields) (domain.Token, error) {
					return svc.SignIn(ctx, domain.Credentials{Identifier: f["email"], Secret: f["password"]})
				}
			}, "Login successful")
	},
}

// runAccount drives one submission through the same controller the web forms use.
func runAccount(cmd *cobra.Command, fields form.Fields, required []string, call func(domain.IdentityService) submit.Call, okMsg string) error {
	_, injector, err := bootstrap()
	if err != nil {
		return err
	}
	defer injector.Shutdown()

	svc, err := do.Invoke[domain.IdentityService](injector)
	if err != nil {
		return fmt.Errorf("failed to create identity service: %w", err)
	}

	out := submit.NewController(form.NewValidator()).Run(cmd.Context(), fields, required, call(svc))
	switch out.Kind {
	case submit.Success:
		fmt.Fprintln(cmd.OutOrStdout(), okMsg)
		fmt.Fprintln(cmd.OutOrStdout(), string(out.Token))
		return nil
	case submit.Invalid:
		return errors.New(out.Message)
	default:
		return errors.New("Error: " + out.Message)
	}
}

func init() {
	for _, c := range []*cobra.Command{signupCmd, signinCmd} {
		c.Flags().StringVar(&accountFlags.email, "email", "", "account email")
		c.Flags().StringVar(&accountFlags.password, "password", "", "account password")
		rootCmd.AddCommand(c)
	}
	signupCmd.Flags().StringVar(&accountFlags.name, "name", "", "full name")
	signupCmd.Flags().StringVar(&accountFlags.phone, "phone", "", "phone number")
}
