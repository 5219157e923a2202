package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored as JSON text.
// A nil list is written as "[]" so columns never hold NULL.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	return encodeJSONText(l, "[]")
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var out []string
	if err := decodeJSONText(src, &out); err != nil {
		return fmt.Errorf("scan StringList: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

// SkillLevel is one entry of the About section's skill bars.
type SkillLevel struct {
	Name  string `json:"name" binding:"required"`
	Level int    `json:"level" binding:"min=0,max=100"`
}

// SkillLevels is stored as a JSON array of {name, level}.
type SkillLevels []SkillLevel

// Value implements driver.Valuer.
func (s SkillLevels) Value() (driver.Value, error) {
	return encodeJSONText(s, "[]")
}

// Scan implements sql.Scanner.
func (s *SkillLevels) Scan(src any) error {
	var out []SkillLevel
	if err := decodeJSONText(src, &out); err != nil {
		return fmt.Errorf("scan SkillLevels: %w", err)
	}
	if out == nil {
		out = []SkillLevel{}
	}
	*s = out
	return nil
}

func encodeJSONText[T any](v []T, empty string) (driver.Value, error) {
	if len(v) == 0 {
		return empty, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func decodeJSONText(src any, dst any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T", src)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
