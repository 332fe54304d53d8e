// Package record converts accounts and thread entries to and from the
// comma-delimited line format of the flat files.
//
// A field holding the delimiter is wrapped in double quotes with inner quotes
// doubled. Every other field is written bare, including any quote characters
// it holds.
package record

import (
	"strconv"
	"strings"

	"github.com/bnema/askme/internal/domain"
)

const (
	delimiter = ','
	quote     = '"'

	accountFields = 7
	entryFields   = 7

	// The trailing answer field is optional on read.
	entryMinFields = 6
)

func EncodeAccount(account domain.Account) string {
	return joinFields(
		strconv.Itoa(int(account.ID)),
		account.Name,
		account.Secret,
		account.Username,
		account.Email,
		encodeFlag(account.AllowAnonymous),
		strconv.Itoa(int(account.Role)),
	)
}

func DecodeAccount(line string) (domain.Account, error) {
	fields := splitFields(line, accountFields)
	if len(fields) < accountFields {
		return domain.Account{}, tooFewFields(line, len(fields), accountFields)
	}

	id, err := parseNumber(line, "id", fields[0])
	if err != nil {
		return domain.Account{}, err
	}

	allowAnonymous, err := parseFlag(line, "allow_anonymous", fields[5])
	if err != nil {
		return domain.Account{}, err
	}

	role, err := domain.ParseRole(fields[6])
	if err != nil {
		return domain.Account{}, &ParseError{Kind: ErrBadRole, Field: "role", Line: line, Err: err}
	}

	return domain.Account{
		ID:             domain.AccountID(id),
		Name:           fields[1],
		Secret:         fields[2],
		Username:       fields[3],
		Email:          fields[4],
		AllowAnonymous: allowAnonymous,
		Role:           role,
	}, nil
}

func EncodeEntry(entry domain.Entry) string {
	return joinFields(
		strconv.Itoa(int(entry.ID)),
		strconv.Itoa(int(entry.ParentID)),
		strconv.Itoa(int(entry.AuthorID)),
		strconv.Itoa(int(entry.RecipientID)),
		encodeFlag(entry.Anonymous),
		entry.Question,
		entry.Answer,
	)
}

func DecodeEntry(line string) (domain.Entry, error) {
	fields := splitFields(line, entryFields)
	if len(fields) < entryMinFields {
		return domain.Entry{}, tooFewFields(line, len(fields), entryMinFields)
	}

	numbers := make([]int, 4)
	for i, name := range []string{"id", "parent_id", "author_id", "recipient_id"} {
		n, err := parseNumber(line, name, fields[i])
		if err != nil {
			return domain.Entry{}, err
		}
		numbers[i] = n
	}

	anonymous, err := parseFlag(line, "anonymous", fields[4])
	if err != nil {
		return domain.Entry{}, err
	}

	entry := domain.Entry{
		ID:          domain.EntryID(numbers[0]),
		ParentID:    domain.EntryID(numbers[1]),
		AuthorID:    domain.AccountID(numbers[2]),
		RecipientID: domain.AccountID(numbers[3]),
		Anonymous:   anonymous,
		Question:    fields[5],
	}
	if len(fields) > entryMinFields {
		entry.Answer = fields[6]
	}

	return entry, nil
}

func joinFields(fields ...string) string {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(delimiter)
		}
		b.WriteString(encodeField(field))
	}

	return b.String()
}

func encodeField(value string) string {
	if strings.IndexByte(value, delimiter) < 0 {
		return value
	}

	return string(quote) + strings.ReplaceAll(value, `"`, `""`) + string(quote)
}

func encodeFlag(value bool) string {
	if value {
		return "1"
	}

	return "0"
}

// splitFields tokenizes one line into at least want fields when the line
// allows it. A field opening with a quote is read quoted unless that reading
// leaves too few fields for the rest of the record, in which case it is read
// bare. It never fails; short lines are reported by the callers through the
// field count.
func splitFields(line string, want int) []string {
	t := tokenizer{line: line, most: make([]int, len(line)+1)}

	fields := make([]string, 0, want)
	start := 0
	for {
		field, end := t.next(start, want-len(fields)-1)
		fields = append(fields, field)
		if end >= len(line) {
			return fields
		}
		start = end + 1
	}
}

type tokenizer struct {
	line string
	// most[i] caches 1 + the largest field count reachable from offset i.
	most []int
}

// next returns the field beginning at start and the index of the delimiter
// that ends it (len(line) for the last field). need is the number of fields
// still wanted after this one.
func (t *tokenizer) next(start, need int) (string, int) {
	bare, bareEnd := t.bare(start)
	if start >= len(t.line) || t.line[start] != quote {
		return bare, bareEnd
	}

	field, end, ok := readQuoted(t.line, start)
	if !ok {
		return bare, bareEnd
	}
	if t.after(end) >= need || t.after(bareEnd) < need {
		return field, end
	}

	return bare, bareEnd
}

func (t *tokenizer) bare(start int) (string, int) {
	if start >= len(t.line) {
		return "", len(t.line)
	}

	end := strings.IndexByte(t.line[start:], delimiter)
	if end < 0 {
		return t.line[start:], len(t.line)
	}

	return t.line[start : start+end], start + end
}

// after reports how many fields can follow a field ending at end.
func (t *tokenizer) after(end int) int {
	if end >= len(t.line) {
		return 0
	}

	return t.from(end + 1)
}

// from reports the largest number of fields the line can be split into
// starting at offset start.
func (t *tokenizer) from(start int) int {
	if t.most[start] > 0 {
		return t.most[start] - 1
	}

	_, end := t.bare(start)
	count := 1 + t.after(end)
	if start < len(t.line) && t.line[start] == quote {
		if _, quotedEnd, ok := readQuoted(t.line, start); ok {
			count = max(count, 1+t.after(quotedEnd))
		}
	}

	t.most[start] = count + 1
	return count
}

// readQuoted reads a quoted field opening at start. The reading is rejected
// unless the closing quote is followed by a delimiter or the end of the line
// and the content holds a delimiter, since the encoder quotes nothing else.
func readQuoted(line string, start int) (string, int, bool) {
	var b strings.Builder
	for i := start + 1; i < len(line); i++ {
		c := line[i]
		if c != quote {
			b.WriteByte(c)
			continue
		}
		if i+1 < len(line) && line[i+1] == quote {
			b.WriteByte(quote)
			i++
			continue
		}
		if i+1 < len(line) && line[i+1] != delimiter {
			return "", 0, false
		}

		field := b.String()
		if strings.IndexByte(field, delimiter) < 0 {
			return "", 0, false
		}
		return field, i + 1, true
	}

	return "", 0, false
}

func parseNumber(line, name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParseError{Kind: ErrBadNumber, Field: name, Line: line, Err: err}
	}

	return n, nil
}

func parseFlag(line, name, raw string) (bool, error) {
	switch raw {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	default:
		return false, &ParseError{Kind: ErrBadFlag, Field: name, Line: line}
	}
}
