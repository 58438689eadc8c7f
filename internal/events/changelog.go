package events

import (
	"fmt"
	"log"
	"sync"
)

// ChangeLogPriority runs the change log after every other default listener
const ChangeLogPriority = 1000

// Change is one event as a line of text
type Change struct {
	CharacterID string    `json:"characterId"`
	Type        EventType `json:"type"`
	Summary     string    `json:"summary"`
}

// ChangeLog logs every character event it receives and keeps it until drained
type ChangeLog struct {
	mu      sync.Mutex
	changes []Change
}

// NewChangeLog creates an empty change log
func NewChangeLog() *ChangeLog {
	return &ChangeLog{}
}

// Attach subscribes the log to every character event on bus
func (l *ChangeLog) Attach(bus *Bus) *ChangeLog {
	bus.SubscribeAll(l, AllEventTypes...)
	return l
}

func (l *ChangeLog) ID() string    { return "change-log" }
func (l *ChangeLog) Priority() int { return ChangeLogPriority }

// HandleEvent records the event
func (l *ChangeLog) HandleEvent(event Event) error {
	change := Change{
		CharacterID: event.GetCharacterID(),
		Type:        event.GetType(),
		Summary:     Describe(event),
	}
	log.Printf("Character: %s %s", change.CharacterID, change.Summary)

	l.mu.Lock()
	l.changes = append(l.changes, change)
	l.mu.Unlock()
	return nil
}

// Drain returns the changes recorded since the last Drain and forgets them
func (l *ChangeLog) Drain() []Change {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.changes
	l.changes = nil
	return out
}

// Describe renders an event as a short sentence
func Describe(event Event) string {
	switch e := event.(type) {
	case *ChoiceCorrectedEvent:
		return fmt.Sprintf("%s choice at %s %s (%d -> %d picks)",
			e.Correction.Before.Type, e.Correction.Location, e.Correction.Action,
			e.Correction.Before.SelectionLen(), e.Correction.After.SelectionLen())
	case *SourceReassignedEvent:
		if e.Key == "" {
			return fmt.Sprintf("%s cleared", e.Source)
		}
		return fmt.Sprintf("%s set to %s", e.Source, e.Key)
	case *LevelChangedEvent:
		return fmt.Sprintf("level %d -> %d", e.From, e.To)
	}
	return string(event.GetType())
}
