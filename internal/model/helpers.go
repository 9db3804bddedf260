package model

import (
	"database/sql"
	"encoding/json"
)

// ParseNodeIDs parses a JSON array string into a string slice.
func ParseNodeIDs(raw string) []string {
	var ids []string
	_ = json.Unmarshal([]byte(raw), &ids)
	return ids
}

// EncodeNodeIDs encodes node IDs as a JSON array string.
func EncodeNodeIDs(ids []string) string {
	if ids == nil {
		ids = []string{}
	}
	b, _ := json.Marshal(ids)
	return string(b)
}

// NullStringValue returns the string value or empty string.
func NullStringValue(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
