package exam

// Ledger records the option the user has selected for each question during
// an attempt. Absence of an entry means unanswered. Selecting the already
// selected option clears it again (toggle semantics), mirroring how the
// answer palette behaves.
type Ledger struct {
	selected map[uint]string
}

func NewLedger() *Ledger {
	return &Ledger{selected: make(map[uint]string)}
}

// Select toggles the entry for questionID: a new option replaces the old
// one, re-selecting the current option removes it.
func (l *Ledger) Select(questionID uint, option string) {
	if l.selected[questionID] == option {
		delete(l.selected, questionID)
		return
	}
	l.selected[questionID] = option
}

// Get returns the selected option and whether the question is answered.
func (l *Ledger) Get(questionID uint) (string, bool) {
	opt, ok := l.selected[questionID]
	return opt, ok
}

func (l *Ledger) Len() int { return len(l.selected) }

// Snapshot returns a copy of the ledger safe to hand outside the runner
// goroutine.
func (l *Ledger) Snapshot() map[uint]string {
	out := make(map[uint]string, len(l.selected))
	for id, opt := range l.selected {
		out[id] = opt
	}
	return out
}
