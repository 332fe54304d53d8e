package thread

import (
	"fmt"

	"github.com/bnema/askme/internal/application"
	"github.com/bnema/askme/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	anonymousLabel  = "Anonymous"
	notAnsweredText = "Not answered yet"
)

// RenderEntries renders a flat listing such as the questions to or from an
// account, or the admin feed. Replies are marked with a thread branch.
func RenderEntries(title string, entries []domain.Entry, directory application.Directory) (string, error) {
	return run(func(s styles) string {
		return entriesView(title, entries, directory, s)
	})
}

// RenderThread renders a parent entry followed by its direct replies. The
// author of an anonymous reply is left out entirely.
func RenderThread(view application.ThreadView, directory application.Directory) (string, error) {
	return run(func(s styles) string {
		return threadView(view, directory, s)
	})
}

func RenderAccounts(accounts []domain.Account) (string, error) {
	return run(func(s styles) string {
		return accountsView(accounts, s)
	})
}

func entriesView(title string, entries []domain.Entry, directory application.Directory, s styles) string {
	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("entries: %d", len(entries))),
	}

	if len(entries) == 0 {
		lines = append(lines, s.empty.Render("No questions found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range entries {
		lines = append(lines, s.section.Render(entryBlock(entry, directory, entry.IsReply(), true, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func threadView(view application.ThreadView, directory application.Directory, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Thread for question %d", view.Parent.ID)),
		s.section.Render(entryBlock(view.Parent, directory, false, true, s)),
	}

	if len(view.Replies) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("No thread questions found for this parent question.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, reply := range view.Replies {
		lines = append(lines, s.section.Render(entryBlock(reply, directory, true, false, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func entryBlock(entry domain.Entry, directory application.Directory, branch, withRecipient bool, s styles) string {
	heading := s.entryID.Render(fmt.Sprintf("Question %d", entry.ID))
	if branch {
		heading = s.branch.Render("├─ ") + heading + s.branch.Render(fmt.Sprintf(" (reply to %d)", entry.ParentID))
	}

	parts := []string{heading}
	if withRecipient {
		parts = append(parts, field("To", accountLabel(directory, entry.RecipientID), s))
	}
	switch {
	case entry.Anonymous && !withRecipient:
		// Thread replies drop the author line of anonymous entries.
	case entry.Anonymous:
		parts = append(parts, field("From", anonymousLabel, s))
	default:
		parts = append(parts, field("From", accountLabel(directory, entry.AuthorID), s))
	}
	parts = append(parts, field("Question", entry.Question, s))

	if entry.IsAnswered() {
		parts = append(parts, field("Answer", entry.Answer, s))
	} else {
		parts = append(parts, s.label.Render("Answer: ")+s.pending.Render(notAnsweredText))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func accountsView(accounts []domain.Account, s styles) string {
	lines := []string{
		s.title.Render("Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(accounts))),
	}

	if len(accounts) == 0 {
		lines = append(lines, s.empty.Render("No users found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, account := range accounts {
		role := s.detail.Render(account.Role.String())
		if account.IsAdmin() {
			role = s.admin.Render(account.Role.String())
		}

		anonymous := "no"
		if account.AllowAnonymous {
			anonymous = "yes"
		}

		line := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.entryID.Render(fmt.Sprintf("%d", account.ID)),
			"  ",
			s.detail.Render(account.Name),
			" ",
			s.header.Render("@"+account.Username),
			"  ",
			role,
			"  ",
			s.label.Render("anonymous questions: "+anonymous),
		)
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func field(name, value string, s styles) string {
	return s.label.Render(name+": ") + s.detail.Render(value)
}

func accountLabel(directory application.Directory, id domain.AccountID) string {
	if username, ok := directory.Username(id); ok && username != "" {
		return fmt.Sprintf("@%s (%d)", username, id)
	}

	return fmt.Sprintf("User ID %d", id)
}
