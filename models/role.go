package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Role is the kind of account. The zero value is not a valid role.
type Role uint8

const (
	RoleParent Role = iota + 1
	RoleChild
)

func (r Role) String() string {
	switch r {
	case RoleParent:
		return "parent"
	case RoleChild:
		return "child"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r == RoleParent || r == RoleChild
}

func ParseRole(s string) (Role, error) {
	switch s {
	case "parent":
		return RoleParent, nil
	case "child":
		return RoleChild, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("marshal invalid role %d", uint8(r))
	}
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Scan accepts the textual form stored in the users table.
func (r *Role) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("scan role: unsupported type %T", src)
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", uint8(r))
	}
	return r.String(), nil
}
