package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/askme/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// secretEnv supplies the acting account's secret when --secret is not given.
const secretEnv = "ASKME_SECRET"

var errActorRequired = errors.New("--as is required for this command")

type prompter interface {
	Interactive() bool
	ReadSecret(w io.Writer, prompt string) (string, error)
}

type terminalPrompter struct{}

func (terminalPrompter) Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (terminalPrompter) ReadSecret(w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	_, _ = fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}

	return string(secret), nil
}

type actorFlags struct {
	id     int
	secret string
}

func (f *actorFlags) bind(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVar(&f.id, "as", 0, "Act as this account ID")
	cmd.PersistentFlags().StringVar(&f.secret, "secret", "", "Secret of the acting account (or set "+secretEnv+")")
}

func (f *actorFlags) provided() bool {
	return f.id > 0
}

// login authenticates the acting account. The secret comes from --secret,
// then ASKME_SECRET, then a no-echo prompt when stdin is a terminal.
func (f *actorFlags) login(cmd *cobra.Command, app *app) (domain.Account, error) {
	if !f.provided() {
		return domain.Account{}, errActorRequired
	}

	secret, err := resolveSecret(cmd, app, f.secret, fmt.Sprintf("Secret for account %d: ", f.id))
	if err != nil {
		return domain.Account{}, err
	}

	return app.service.Login(cmd.Context(), domain.AccountID(f.id), secret)
}

// optionalLogin authenticates only when --as was given.
func (f *actorFlags) optionalLogin(cmd *cobra.Command, app *app) (*domain.Account, error) {
	if !f.provided() {
		return nil, nil
	}

	account, err := f.login(cmd, app)
	if err != nil {
		return nil, err
	}

	return &account, nil
}

func resolveSecret(cmd *cobra.Command, app *app, flagValue, prompt string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if value := os.Getenv(secretEnv); value != "" {
		return value, nil
	}
	if app.prompter != nil && app.prompter.Interactive() {
		return app.prompter.ReadSecret(cmd.ErrOrStderr(), prompt)
	}

	return "", nil
}
