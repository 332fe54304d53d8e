package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type AccountID int

type Role int

const (
	RoleAdmin Role = iota
	RoleMember
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleMember:
		return "Member"
	default:
		return "Role(" + strconv.Itoa(int(r)) + ")"
	}
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// ParseRole decodes the persisted role code (0=Admin, 1=Member).
func ParseRole(raw string) (Role, error) {
	switch raw {
	case "0":
		return RoleAdmin, nil
	case "1":
		return RoleMember, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRole, raw)
	}
}

type Account struct {
	ID       AccountID
	Name     string
	Username string
	// Secret is stored and compared verbatim. There is no hashing.
	Secret         string
	Email          string
	AllowAnonymous bool
	Role           Role
}

func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Account) Validate() error {
	if a.ID <= 0 {
		return fmt.Errorf("account id must be positive, got %d", a.ID)
	}
	if !a.Role.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRole, int(a.Role))
	}

	return singleLine(map[string]string{
		"name":     a.Name,
		"username": a.Username,
		"secret":   a.Secret,
		"email":    a.Email,
	})
}

// singleLine rejects values that would split a persisted record across lines.
func singleLine(fields map[string]string) error {
	for name, value := range fields {
		if strings.ContainsAny(value, "\r\n") {
			return fmt.Errorf("%s must not contain line breaks", name)
		}
	}

	return nil
}
