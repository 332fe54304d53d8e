package domain

// CanDelete reports whether actor may delete entry. The same rule applies to
// top-level entries and to each reply removed by a cascade.
func CanDelete(entry Entry, actor Account) bool {
	return actor.IsAdmin() || entry.AuthorID == actor.ID
}

// CanAnswer reports whether actor may set the answer of entry. Only the
// recipient answers, admins included.
func CanAnswer(entry Entry, actor Account) bool {
	return entry.RecipientID == actor.ID
}

func CanViewFeed(actor Account) bool {
	return actor.IsAdmin()
}

func CanManageAccount(target AccountID, actor Account) bool {
	return actor.IsAdmin() || actor.ID == target
}

func CanRemoveAccount(actor Account) bool {
	return actor.IsAdmin()
}
