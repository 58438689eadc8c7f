package choices

import (
	"sort"
)

// Entry is one stored selection in the ledger
type Entry struct {
	Location Location `json:"location"`
	Config   Config   `json:"config"`
}

// Ledger stores player selections keyed by location. A location holds at most
// one selection.
type Ledger struct {
	entries map[string]Entry
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		entries: make(map[string]Entry),
	}
}

// Get returns a copy of the stored selection at loc
func (l *Ledger) Get(loc Location) (Config, bool) {
	entry, ok := l.entries[loc.Key()]
	if !ok {
		return Config{}, false
	}
	return entry.Config.Clone(), true
}

// Set stores a selection at loc. An existing entry of the same type is merged
// field by field; an existing entry of a different type is left untouched and
// Set returns false.
func (l *Ledger) Set(loc Location, selection Config) bool {
	key := loc.Key()
	if current, ok := l.entries[key]; ok {
		merged, ok := Merge(current.Config, selection)
		if !ok {
			return false
		}
		l.entries[key] = Entry{Location: loc, Config: merged}
		return true
	}

	l.entries[key] = Entry{Location: loc, Config: selection.Clone()}
	return true
}

// Delete removes the entry at loc
func (l *Ledger) Delete(loc Location) {
	delete(l.entries, loc.Key())
}

// Clear removes every entry for the given sources, or every entry when no
// source is given
func (l *Ledger) Clear(sources ...Source) {
	if len(sources) == 0 {
		l.entries = make(map[string]Entry)
		return
	}
	for key, entry := range l.entries {
		for _, src := range sources {
			if entry.Location.Source == src {
				delete(l.entries, key)
				break
			}
		}
	}
}

// Len returns the number of stored entries
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns copies of all entries ordered by source then level
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, 0, len(l.entries))
	for _, entry := range l.entries {
		out = append(out, Entry{Location: entry.Location, Config: entry.Config.Clone()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Location.Less(out[j].Location)
	})
	return out
}

// EntriesFor returns the ordered entries belonging to source
func (l *Ledger) EntriesFor(source Source) []Entry {
	all := l.Entries()
	out := make([]Entry, 0, len(all))
	for _, entry := range all {
		if entry.Location.Source == source {
			out = append(out, entry)
		}
	}
	return out
}

// Reconcile brings the entries of source in line with the offered choices and
// returns what changed
func (l *Ledger) Reconcile(source Source, available []Available, opts Options) []Correction {
	next, corrections := Reconcile(l.EntriesFor(source), available, opts)
	for _, c := range corrections {
		if c.Action == ActionDropped {
			l.Delete(c.Location)
		}
	}
	for _, entry := range next {
		l.entries[entry.Location.Key()] = entry
	}
	return corrections
}

// Preview reports what Reconcile would change for source without changing the ledger
func (l *Ledger) Preview(source Source, available []Available, opts Options) []Correction {
	_, corrections := Reconcile(l.EntriesFor(source), available, opts)
	return corrections
}

// Clone returns an independent copy of the ledger
func (l *Ledger) Clone() *Ledger {
	out := NewLedger()
	for key, entry := range l.entries {
		out.entries[key] = Entry{Location: entry.Location, Config: entry.Config.Clone()}
	}
	return out
}
