package cmd

import (
	"encoding/json"

	"github.com/bnema/askme/internal/domain"
	"github.com/spf13/cobra"
)

type accountOutput struct {
	ID             domain.AccountID `json:"id"`
	Name           string           `json:"name"`
	Username       string           `json:"username"`
	Email          string           `json:"email"`
	AllowAnonymous bool             `json:"allow_anonymous"`
	Role           string           `json:"role"`
}

// entryOutput leaves out the author of anonymous entries.
type entryOutput struct {
	ID          domain.EntryID    `json:"id"`
	ParentID    domain.EntryID    `json:"parent_id"`
	AuthorID    *domain.AccountID `json:"author_id,omitempty"`
	RecipientID domain.AccountID  `json:"recipient_id"`
	Anonymous   bool              `json:"anonymous"`
	Question    string            `json:"question"`
	Answer      string            `json:"answer"`
}

type threadOutput struct {
	Parent  entryOutput   `json:"parent"`
	Replies []entryOutput `json:"replies"`
}

type deleteOutput struct {
	Deleted []domain.EntryID `json:"deleted"`
	Skipped []domain.EntryID `json:"skipped"`
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func accountOutputs(accounts []domain.Account) []accountOutput {
	out := make([]accountOutput, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, accountOutput{
			ID:             account.ID,
			Name:           account.Name,
			Username:       account.Username,
			Email:          account.Email,
			AllowAnonymous: account.AllowAnonymous,
			Role:           account.Role.String(),
		})
	}

	return out
}

func toEntryOutput(entry domain.Entry) entryOutput {
	out := entryOutput{
		ID:          entry.ID,
		ParentID:    entry.ParentID,
		RecipientID: entry.RecipientID,
		Anonymous:   entry.Anonymous,
		Question:    entry.Question,
		Answer:      entry.Answer,
	}
	if !entry.Anonymous {
		author := entry.AuthorID
		out.AuthorID = &author
	}

	return out
}

func entryOutputs(entries []domain.Entry) []entryOutput {
	out := make([]entryOutput, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toEntryOutput(entry))
	}

	return out
}
