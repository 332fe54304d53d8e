package domain

import "fmt"

type EntryID int

// NoParent marks a top-level entry.
const NoParent EntryID = -1

type Entry struct {
	ID          EntryID
	ParentID    EntryID
	AuthorID    AccountID
	RecipientID AccountID
	Anonymous   bool
	Question    string
	Answer      string
}

func (e Entry) IsReply() bool {
	return e.ParentID != NoParent
}

func (e Entry) IsAnswered() bool {
	return e.Answer != ""
}

func (e Entry) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("entry id must be positive, got %d", e.ID)
	}
	if e.ParentID != NoParent && e.ParentID <= 0 {
		return fmt.Errorf("parent id must be %d or positive, got %d", NoParent, e.ParentID)
	}
	if e.ParentID == e.ID {
		return fmt.Errorf("entry %d cannot reply to itself", e.ID)
	}

	return singleLine(map[string]string{
		"question": e.Question,
		"answer":   e.Answer,
	})
}

// ValidateAnswer checks answer text before it replaces a stored answer.
func ValidateAnswer(text string) error {
	return singleLine(map[string]string{"answer": text})
}
