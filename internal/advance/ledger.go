package advance

import "time"

const (
	ModeCash = "CASH"
	ModeBank = "BANK"
)

// ValidMode reports whether m is a recognized payment mode.
func ValidMode(m string) bool {
	return m == ModeCash || m == ModeBank
}

// Entry is one cash or bank payout against future salary.
type Entry struct {
	ID     string
	Date   time.Time
	Amount float64
	Mode   string
}

// Ledger is an employee's full advance history in insertion order.
type Ledger struct {
	entries []Entry
}

func NewLedger(entries ...Entry) *Ledger {
	l := &Ledger{}
	l.entries = append(l.entries, entries...)
	return l
}

func (l *Ledger) Add(e Entry) {
	l.entries = append(l.entries, e)
}

// Entries returns the full history in insertion order.
func (l *Ledger) Entries() []Entry {
	return l.entries
}

// EntriesForMonth filters the history to entries dated in the given month,
// preserving insertion order.
func (l *Ledger) EntriesForMonth(year int, month time.Month) []Entry {
	out := make([]Entry, 0)
	for _, e := range l.entries {
		if e.Date.Year() == year && e.Date.Month() == month {
			out = append(out, e)
		}
	}
	return out
}

// SumForMonth totals the amounts dated in the given month. Entries in other
// months never affect the total.
func (l *Ledger) SumForMonth(year int, month time.Month) float64 {
	var sum float64
	for _, e := range l.entries {
		if e.Date.Year() == year && e.Date.Month() == month {
			sum += e.Amount
		}
	}
	return sum
}
