package content

import "time"

const EventTypeUpdated = "content.updated"

const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionReplace = "replace"
)

// Event describes one successful write to the document.
type Event struct {
	EventType  string    `json:"event_type"`
	Section    Section   `json:"section"`
	Action     string    `json:"action"`
	ItemID     string    `json:"item_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(section Section, action, itemID string) Event {
	return Event{
		EventType:  EventTypeUpdated,
		Section:    section,
		Action:     action,
		ItemID:     itemID,
		OccurredAt: time.Now().UTC(),
	}
}
