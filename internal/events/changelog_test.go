package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/demonlord-sheet/internal/domain/choices"
	"github.com/KirkDiggler/demonlord-sheet/internal/events"
)

func TestChangeLog_RecordsEveryCharacterEvent(t *testing.T) {
	bus := events.NewBus()
	changes := events.NewChangeLog().Attach(bus)

	require.NoError(t, bus.Emit(&events.LevelChangedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeLevelChanged, CharacterID: "char-1"},
		From:      0,
		To:        3,
	}))
	require.NoError(t, bus.Emit(&events.SourceReassignedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeSourceReassigned, CharacterID: "char-1"},
		Source:    choices.SourceExpertPath,
		Key:       "fighter",
	}))
	require.NoError(t, bus.Emit(&events.SourceReassignedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeSourceReassigned, CharacterID: "char-1"},
		Source:    choices.SourceMasterPath,
	}))
	require.NoError(t, bus.Emit(events.NewChoiceCorrectedEvent("char-1", choices.Correction{
		Location: choices.Location{Source: choices.SourceExpertPath, Level: 3},
		Action:   choices.ActionTruncated,
		Before:   choices.SelectSpells("Light", "Sleep"),
		After:    choices.SelectSpells("Light"),
	})))

	got := changes.Drain()
	require.Len(t, got, 4)
	assert.Equal(t, "level 0 -> 3", got[0].Summary)
	assert.Equal(t, "expertPath set to fighter", got[1].Summary)
	assert.Equal(t, "masterPath cleared", got[2].Summary)
	assert.Equal(t, "spell choice at expertPath-3 truncated (2 -> 1 picks)", got[3].Summary)
	assert.Equal(t, events.EventTypeChoiceTruncated, got[3].Type)
	assert.Equal(t, "char-1", got[0].CharacterID)

	assert.Empty(t, changes.Drain(), "drain forgets what it returned")
}

func TestChangeLog_RunsAfterOtherListeners(t *testing.T) {
	bus := events.NewBus()
	changes := events.NewChangeLog().Attach(bus)

	bus.Subscribe(events.EventTypeLevelChanged, events.NewListenerFunc("veto", 100, func(e events.Event) error {
		e.Cancel()
		return nil
	}))

	require.NoError(t, bus.Emit(&events.LevelChangedEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeLevelChanged}}))
	assert.Empty(t, changes.Drain())
}
