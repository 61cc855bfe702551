package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a record identifier assigned by the remote store.
//
// The store is schemaless and may return ids either as JSON strings or as
// numbers depending on how the record was seeded, so ID accepts both on
// input and normalizes to a string. Two ids are equal when their string
// forms are equal.
type ID string

func (id ID) String() string { return string(id) }

// IsZero reports whether the id is absent.
func (id ID) IsZero() bool { return id == "" }

func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(id))), nil
}
