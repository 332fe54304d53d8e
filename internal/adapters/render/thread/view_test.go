package thread

import (
	"testing"

	"github.com/bnema/askme/internal/application"
	"github.com/bnema/askme/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var directory = application.Directory{1: "ada", 2: "bo"}

func TestRenderEntries(t *testing.T) {
	output, err := RenderEntries("Questions To You", []domain.Entry{
		{ID: 10, ParentID: domain.NoParent, AuthorID: 2, RecipientID: 1, Question: "Q1", Answer: "A2"},
		{ID: 11, ParentID: 10, AuthorID: 1, RecipientID: 2, Anonymous: true, Question: "who?"},
	}, directory)

	require.NoError(t, err)
	assert.Contains(t, output, "Questions To You")
	assert.Contains(t, output, "entries: 2")
	assert.Contains(t, output, "Question 10")
	assert.Contains(t, output, "From: @bo (2)")
	assert.Contains(t, output, "To: @ada (1)")
	assert.Contains(t, output, "Answer: A2")
	assert.Contains(t, output, "├─ Question 11 (reply to 10)")
	assert.Contains(t, output, "From: Anonymous")
	assert.Contains(t, output, "Not answered yet")
	assert.NotContains(t, output, "From: @ada (1)")
}

func TestRenderEntriesEmpty(t *testing.T) {
	output, err := RenderEntries("Feed", nil, directory)

	require.NoError(t, err)
	assert.Contains(t, output, "entries: 0")
	assert.Contains(t, output, "No questions found.")
}

func TestRenderThreadHidesAnonymousReplyAuthor(t *testing.T) {
	output, err := RenderThread(application.ThreadView{
		Parent: domain.Entry{ID: 3, ParentID: domain.NoParent, AuthorID: 2, RecipientID: 1, Question: "root"},
		Replies: []domain.Entry{
			{ID: 4, ParentID: 3, AuthorID: 1, RecipientID: 2, Anonymous: true, Question: "secret reply"},
			{ID: 5, ParentID: 3, AuthorID: 9, RecipientID: 2, Question: "open reply", Answer: "ok"},
		},
	}, directory)

	require.NoError(t, err)
	assert.Contains(t, output, "Thread for question 3")
	assert.Contains(t, output, "secret reply")
	assert.NotContains(t, output, "Anonymous")
	assert.NotContains(t, output, "From: @ada (1)")
	assert.Contains(t, output, "From: User ID 9")
	assert.Contains(t, output, "Answer: ok")
}

func TestRenderThreadWithoutReplies(t *testing.T) {
	output, err := RenderThread(application.ThreadView{
		Parent: domain.Entry{ID: 3, ParentID: domain.NoParent, AuthorID: 2, RecipientID: 1, Question: "root"},
	}, directory)

	require.NoError(t, err)
	assert.Contains(t, output, "No thread questions found for this parent question.")
}

func TestRenderAccounts(t *testing.T) {
	output, err := RenderAccounts([]domain.Account{
		{ID: 1, Name: "Ada", Username: "ada", Role: domain.RoleAdmin},
		{ID: 2, Name: "Bo", Username: "bo", AllowAnonymous: true, Role: domain.RoleMember},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "accounts: 2")
	assert.Contains(t, output, "@ada")
	assert.Contains(t, output, "Admin")
	assert.Contains(t, output, "Member")
	assert.Contains(t, output, "anonymous questions: yes")
	assert.NotContains(t, output, "pw")
}

func TestRenderAccountsEmpty(t *testing.T) {
	output, err := RenderAccounts(nil)

	require.NoError(t, err)
	assert.Contains(t, output, "No users found.")
}
