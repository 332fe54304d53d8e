package application

import "github.com/bnema/askme/internal/domain"

type ThreadView struct {
	Parent  domain.Entry
	Replies []domain.Entry
}

// Directory maps account ids to usernames for display.
type Directory map[domain.AccountID]string

func (d Directory) Username(id domain.AccountID) (string, bool) {
	name, ok := d[id]
	return name, ok
}
