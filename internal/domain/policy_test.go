package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanDelete(t *testing.T) {
	t.Parallel()

	admin := Account{ID: 1, Role: RoleAdmin}
	author := Account{ID: 2, Role: RoleMember}
	other := Account{ID: 3, Role: RoleMember}
	entry := Entry{ID: 10, ParentID: NoParent, AuthorID: author.ID, RecipientID: other.ID}

	assert.True(t, CanDelete(entry, admin))
	assert.True(t, CanDelete(entry, author))
	assert.False(t, CanDelete(entry, other), "recipient is not the author")
}

func TestCanAnswerOnlyRecipient(t *testing.T) {
	t.Parallel()

	entry := Entry{ID: 10, AuthorID: 2, RecipientID: 3}

	assert.True(t, CanAnswer(entry, Account{ID: 3, Role: RoleMember}))
	assert.False(t, CanAnswer(entry, Account{ID: 2, Role: RoleMember}))
	assert.False(t, CanAnswer(entry, Account{ID: 1, Role: RoleAdmin}))
}

func TestAccountPolicies(t *testing.T) {
	t.Parallel()

	admin := Account{ID: 1, Role: RoleAdmin}
	member := Account{ID: 2, Role: RoleMember}

	assert.True(t, CanViewFeed(admin))
	assert.False(t, CanViewFeed(member))

	assert.True(t, CanManageAccount(2, member))
	assert.False(t, CanManageAccount(5, member))
	assert.True(t, CanManageAccount(5, admin))

	assert.True(t, CanRemoveAccount(admin))
	assert.False(t, CanRemoveAccount(member))
}
