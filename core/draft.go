package core

import "github.com/3JRock3/Ver-2-Draft/schema"

// Sequencer owns the append-only pick log. The log is the single source of
// truth for draft state: taken status, my roster and the current overall
// pick are all derived from it, never stored separately.
type Sequencer struct {
	known    map[string]struct{}
	log      []schema.PickEvent
	myRoster []string
}

// NewSequencer builds a sequencer over the given roster, replaying an
// existing pick log (e.g. from a session snapshot). Replay goes through
// AddPick, so events referencing unknown or duplicate names are dropped and
// the gapless overall numbering is re-established.
func NewSequencer(roster *Roster, log []schema.PickEvent) *Sequencer {
	s := &Sequencer{known: make(map[string]struct{}, roster.Len())}
	for _, p := range roster.Players() {
		s.known[p.Name] = struct{}{}
	}
	for _, ev := range log {
		s.AddPick(ev.Name, ev.Mine)
	}
	return s
}

// AddPick appends a pick event for name. Unknown and already-taken names
// are silently ignored; the UI is expected to prevent both, but the
// sequencer defends the invariant itself. Returns whether an event was
// appended.
func (s *Sequencer) AddPick(name string, mine bool) bool {
	if _, ok := s.known[name]; !ok {
		return false
	}
	for _, ev := range s.log {
		if ev.Name == name {
			return false
		}
	}
	s.log = append(s.log, schema.PickEvent{
		Overall: len(s.log) + 1,
		Name:    name,
		Mine:    mine,
	})
	if mine {
		s.myRoster = append(s.myRoster, name)
	}
	return true
}

// UndoPick removes the last pick event, retracting its overall number.
// A mine pick also leaves my roster, matched by name; that is unambiguous
// because names are unique in the log. No-op on an empty log. Returns
// whether an event was removed.
func (s *Sequencer) UndoPick() bool {
	if len(s.log) == 0 {
		return false
	}
	last := s.log[len(s.log)-1]
	s.log = s.log[:len(s.log)-1]
	if last.Mine {
		for i, name := range s.myRoster {
			if name == last.Name {
				s.myRoster = append(s.myRoster[:i], s.myRoster[i+1:]...)
				break
			}
		}
	}
	return true
}

// Reset clears the pick log and my roster entirely. Irreversible.
func (s *Sequencer) Reset() {
	s.log = nil
	s.myRoster = nil
}

// Log returns a copy of the pick event log in draft order.
func (s *Sequencer) Log() []schema.PickEvent {
	out := make([]schema.PickEvent, len(s.log))
	copy(out, s.log)
	return out
}

// MyRoster returns a copy of my picks in the order they were made.
func (s *Sequencer) MyRoster() []string {
	out := make([]string, len(s.myRoster))
	copy(out, s.myRoster)
	return out
}

// CurrentOverall returns the number of picks made so far.
func (s *Sequencer) CurrentOverall() int {
	return len(s.log)
}

// Taken returns the set of names present in the pick log.
func (s *Sequencer) Taken() map[string]bool {
	taken := make(map[string]bool, len(s.log))
	for _, ev := range s.log {
		taken[ev.Name] = true
	}
	return taken
}

// Mine returns the set of names on my roster.
func (s *Sequencer) Mine() map[string]bool {
	mine := make(map[string]bool, len(s.myRoster))
	for _, name := range s.myRoster {
		mine[name] = true
	}
	return mine
}
