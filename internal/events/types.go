package events

import (
	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
)

// EventType represents the type of character event
type EventType string

// Event is the base interface for all character events
type Event interface {
	GetType() EventType
	GetCharacterID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type        EventType
	CharacterID string
	Cancelled   bool
}

func (e *BaseEvent) GetType() EventType     { return e.Type }
func (e *BaseEvent) GetCharacterID() string { return e.CharacterID }
func (e *BaseEvent) IsCancelled() bool      { return e.Cancelled }
func (e *BaseEvent) Cancel()                { e.Cancelled = true }

// ChoiceCorrectedEvent is emitted when reconciliation drops or truncates a stored choice
type ChoiceCorrectedEvent struct {
	BaseEvent
	Correction choices.Correction
}

// NewChoiceCorrectedEvent picks the event type from the correction's action
func NewChoiceCorrectedEvent(characterID string, correction choices.Correction) *ChoiceCorrectedEvent {
	eventType := EventTypeChoiceTruncated
	if correction.Action == choices.ActionDropped {
		eventType = EventTypeChoiceDropped
	}
	return &ChoiceCorrectedEvent{
		BaseEvent: BaseEvent{
			Type:        eventType,
			CharacterID: characterID,
		},
		Correction: correction,
	}
}

// SourceReassignedEvent is emitted when the ancestry or a path slot changes
type SourceReassignedEvent struct {
	BaseEvent
	Source choices.Source
	// Key is the content key now in the slot, empty when the slot was cleared
	Key string
}

// LevelChangedEvent is emitted when a character's level changes
type LevelChangedEvent struct {
	BaseEvent
	From int
	To   int
}
