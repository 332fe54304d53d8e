package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/askme/internal/application"
	"github.com/bnema/askme/internal/domain"
	"github.com/spf13/cobra"
)

func newAskCmd(app *app, actor *actorFlags) *cobra.Command {
	var recipient, parent int
	var anonymous bool

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask another account a question, or reply within a thread",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := actor.login(cmd, app)
			if err != nil {
				return err
			}

			entry, err := app.service.Ask(cmd.Context(), account, application.AskCommand{
				RecipientID: domain.AccountID(recipient),
				ParentID:    domain.EntryID(parent),
				Anonymous:   anonymous,
				Question:    strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Asked question %d\n", entry.ID)
			return err
		},
	}

	cmd.Flags().IntVar(&recipient, "to", 0, "Recipient account ID")
	cmd.Flags().IntVar(&parent, "parent", 0, "Question this one replies to")
	cmd.Flags().BoolVar(&anonymous, "anonymous", false, "Hide your identity (the recipient must allow it)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newAnswerCmd(app *app, actor *actorFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "answer <question-id> <answer>",
		Short: "Answer a question addressed to you; an existing answer is replaced",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			account, err := actor.login(cmd, app)
			if err != nil {
				return err
			}

			entry, err := app.service.Answer(cmd.Context(), account, application.AnswerCommand{
				EntryID: id,
				Text:    strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Answered question %d\n", entry.ID)
			return err
		},
	}
}

func newDeleteCmd(app *app, actor *actorFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "delete <question-id>",
		Short: "Delete a question and the replies you may delete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			account, err := actor.login(cmd, app)
			if err != nil {
				return err
			}

			result, err := app.service.DeleteEntry(cmd.Context(), account, id)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, deleteOutput{Deleted: result.Deleted, Skipped: result.Skipped})
			}

			out := cmd.OutOrStdout()
			for _, deleted := range result.Deleted {
				if deleted == id {
					continue
				}
				_, _ = fmt.Fprintf(out, "[Success] reply %d deleted\n", deleted)
			}
			for _, skipped := range result.Skipped {
				_, _ = fmt.Fprintf(out, "[Skipped] reply %d belongs to another account\n", skipped)
			}

			_, err = fmt.Fprintf(out, "Deleted question %d\n", id)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newThreadCmd(app *app, actor *actorFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "thread <question-id>",
		Short: "Show a question with its direct replies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			if _, err := actor.login(cmd, app); err != nil {
				return err
			}

			view, err := app.service.Thread(cmd.Context(), id)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, threadOutput{
					Parent:  toEntryOutput(view.Parent),
					Replies: entryOutputs(view.Replies),
				})
			}

			directory, err := app.service.Directory(cmd.Context())
			if err != nil {
				return err
			}

			rendered, err := app.renderThread(view, directory)
			if err != nil {
				return fmt.Errorf("render thread: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newFeedCmd(app *app, actor *actorFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show every question in the system (admin only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := actor.login(cmd, app)
			if err != nil {
				return err
			}

			entries, err := app.service.Feed(cmd.Context(), account)
			if err != nil {
				return err
			}

			return writeEntries(cmd, app, "System Questions Feed", entries, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newQuestionsCmd(app *app, actor *actorFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List questions to or from the acting account",
	}

	cmd.AddCommand(
		newQuestionsListCmd(app, actor, "to", "Questions To You", app.service.QuestionsTo),
		newQuestionsListCmd(app, actor, "from", "Questions From You", app.service.QuestionsFrom),
	)

	return cmd
}

type questionLister func(ctx context.Context, actor domain.Account) ([]domain.Entry, error)

func newQuestionsListCmd(app *app, actor *actorFlags, use, title string, list questionLister) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   use,
		Short: "List " + strings.ToLower(title),
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := actor.login(cmd, app)
			if err != nil {
				return err
			}

			entries, err := list(cmd.Context(), account)
			if err != nil {
				return err
			}

			return writeEntries(cmd, app, title, entries, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func writeEntries(cmd *cobra.Command, app *app, title string, entries []domain.Entry, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, entryOutputs(entries))
	}

	directory, err := app.service.Directory(cmd.Context())
	if err != nil {
		return err
	}

	rendered, err := app.renderEntries(title, entries, directory)
	if err != nil {
		return fmt.Errorf("render questions: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
