// Package feed defines the change-feed wire format shared by the server
// hub and the client synchronizer.
package feed

import (
	"encoding/json"
)

// Tables that emit change events
const (
	TableFilmes   = "filmes"
	TableResenhas = "resenhas"
	TableCenas    = "cenas"
)

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// Event is one row-level change notification. Record carries the row in
// its client-facing JSON shape (camelCase field names) for INSERT and
// UPDATE; OldID identifies the removed row on DELETE.
type Event struct {
	Table  string          `json:"table"`
	Type   EventType       `json:"type"`
	Record json.RawMessage `json:"record,omitempty"`
	OldID  string          `json:"oldId,omitempty"`
}

// RecordID extracts the id of the affected row regardless of event type.
func (e Event) RecordID() string {
	if e.Type == EventDelete {
		return e.OldID
	}

	var partial struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(e.Record, &partial); err != nil {
		return ""
	}
	return partial.ID
}

// ValidTable reports whether name is a table that emits change events.
func ValidTable(name string) bool {
	switch name {
	case TableFilmes, TableResenhas, TableCenas:
		return true
	}
	return false
}
