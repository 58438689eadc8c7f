package events

// Event type constants
const (
	// Ledger corrections
	EventTypeChoiceDropped   EventType = "choice_dropped"
	EventTypeChoiceTruncated EventType = "choice_truncated"

	// Character changes
	EventTypeSourceReassigned EventType = "source_reassigned"
	EventTypeLevelChanged     EventType = "level_changed"
)

// AllEventTypes lists every event a character publishes
var AllEventTypes = []EventType{
	EventTypeChoiceDropped,
	EventTypeChoiceTruncated,
	EventTypeSourceReassigned,
	EventTypeLevelChanged,
}
