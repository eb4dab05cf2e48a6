package model

import "time"

// EventLevel is the severity of a recorded event.
type EventLevel string

// EventCategory groups events by the entity they concern.
type EventCategory string

const (
	LevelInfo    EventLevel = "info"
	LevelWarning EventLevel = "warning"
	LevelError   EventLevel = "error"
)

const (
	EventAccount  EventCategory = "account"
	EventProperty EventCategory = "property"
	EventMortgage EventCategory = "mortgage"
	EventExpense  EventCategory = "expense"
	EventSystem   EventCategory = "system"
)

// ValidEventLevels is the set of accepted event levels.
var ValidEventLevels = map[EventLevel]bool{
	LevelInfo:    true,
	LevelWarning: true,
	LevelError:   true,
}

// ValidEventCategories is the set of accepted event categories.
var ValidEventCategories = map[EventCategory]bool{
	EventAccount:  true,
	EventProperty: true,
	EventMortgage: true,
	EventExpense:  true,
	EventSystem:   true,
}

// Event is one entry in the application event log. Services write an event
// on every mutation and on scheduled job runs.
type Event struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	EntityID  string    `json:"entityId"`
	CreatedAt time.Time `json:"createdAt"`
}

// EventFilters narrows an event log query. Comma-separated request
// parameters are parsed into the slices before reaching the repository.
type EventFilters struct {
	Levels     []string
	Categories []string
	StartDate  time.Time
	EndDate    time.Time
	Message    string
	SortDir    string
	Cursor     string
	PerPage    int
}
