package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bnema/askme/internal/application"
	"github.com/bnema/askme/internal/domain"
	"github.com/spf13/cobra"
)

var errPasswordRequired = errors.New("--password is required when stdin is not a terminal")

func newAccountCmd(app *app, actor *actorFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	cmd.AddCommand(
		newAccountRegisterCmd(app, actor),
		newAccountListCmd(app, actor),
		newAccountUpdateCmd(app, actor),
		newAccountRemoveCmd(app, actor),
	)

	return cmd
}

func newAccountRegisterCmd(app *app, actor *actorFlags) *cobra.Command {
	var command application.RegisterCommand

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long:  "Create a new account. The first account may ask for --admin; later admin accounts must be created by an admin acting with --as.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			requester, err := actor.optionalLogin(cmd, app)
			if err != nil {
				return err
			}
			command.Actor = requester

			password, err := newPassword(cmd, app, command.Secret)
			if err != nil {
				return err
			}
			command.Secret = password

			account, err := app.service.Register(cmd.Context(), command)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered account %d (%s, %s)\n", account.ID, account.Username, account.Role)
			return err
		},
	}

	cmd.Flags().StringVar(&command.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&command.Username, "username", "", "Login name")
	cmd.Flags().StringVar(&command.Email, "email", "", "Contact email")
	cmd.Flags().StringVar(&command.Secret, "password", "", "Secret of the new account (prompted when omitted)")
	cmd.Flags().BoolVar(&command.AllowAnonymous, "allow-anonymous", false, "Accept anonymous questions")
	cmd.Flags().BoolVar(&command.Admin, "admin", false, "Create an admin account")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newAccountListCmd(app *app, actor *actorFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts (admin only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := actor.login(cmd, app)
			if err != nil {
				return err
			}

			accounts, err := app.service.ListAccounts(cmd.Context(), account)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, accountOutputs(accounts))
			}

			rendered, err := app.renderAccounts(accounts)
			if err != nil {
				return fmt.Errorf("render accounts: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newAccountUpdateCmd(app *app, actor *actorFlags) *cobra.Command {
	var targetID int
	var name, email, password string
	var allowAnonymous bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an account profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := actor.login(cmd, app)
			if err != nil {
				return err
			}

			command := application.UpdateProfileCommand{ID: account.ID}
			if targetID > 0 {
				command.ID = domain.AccountID(targetID)
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				command.Name = &name
			}
			if flags.Changed("email") {
				command.Email = &email
			}
			if flags.Changed("password") {
				command.Secret = &password
			}
			if flags.Changed("allow-anonymous") {
				command.AllowAnonymous = &allowAnonymous
			}

			updated, err := app.service.UpdateProfile(cmd.Context(), account, command)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated account %d\n", updated.ID)
			return err
		},
	}

	cmd.Flags().IntVar(&targetID, "id", 0, "Account to update (defaults to the acting account)")
	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().StringVar(&email, "email", "", "New contact email")
	cmd.Flags().StringVar(&password, "password", "", "New secret")
	cmd.Flags().BoolVar(&allowAnonymous, "allow-anonymous", false, "Accept anonymous questions")

	return cmd
}

func newAccountRemoveCmd(app *app, actor *actorFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <account-id>",
		Short: "Remove an account (admin only); its questions are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAccountID(args[0])
			if err != nil {
				return err
			}

			account, err := actor.login(cmd, app)
			if err != nil {
				return err
			}

			if err := app.service.RemoveAccount(cmd.Context(), account, id); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed account %d\n", id)
			return err
		},
	}
}

func newPassword(cmd *cobra.Command, app *app, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if app.prompter == nil || !app.prompter.Interactive() {
		return "", errPasswordRequired
	}

	return app.prompter.ReadSecret(cmd.ErrOrStderr(), "Password for the new account: ")
}

func parseAccountID(raw string) (domain.AccountID, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid account id %q", raw)
	}

	return domain.AccountID(id), nil
}

func parseEntryID(raw string) (domain.EntryID, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid question id %q", raw)
	}

	return domain.EntryID(id), nil
}
