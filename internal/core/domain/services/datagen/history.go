package datagen

import (
	"time"

	"bakery/internal/core/domain/model/identity"
	"bakery/internal/core/domain/model/order"
)

const (
	CancelledMessage = "Order cancelled"
	ConfirmedMessage = "Order confirmed"
	ProblemMessage   = "Can't make it. Did not get any ingredients this morning"
	ReadyMessage     = "Order ready for pickup"
	DeliveredMessage = "Order delivered"
)

const day = 24 * time.Hour

// ReconstructHistory fabricates a backdated ledger that leads to the current
// state of o. The barista places and cancels orders; the baker does the rest.
//
// The ledger always starts with an "Order placed" entry two to six days before
// the due date. What follows depends on the state:
//   - CANCELLED: a cancellation some whole days after placing, before the due time
//   - CONFIRMED: a confirmation within a day and a few hours of placing
//   - PROBLEM: confirmation, then a problem report early on the due date
//   - READY: confirmation, then ready for pickup on the due morning
//   - DELIVERED: as READY, then delivery within two hours before the due time
//   - NEW: nothing more
//
// Entries are returned in chronological order.
func ReconstructHistory(o order.Summary, barista, baker *identity.User, rng Random) ([]order.HistoryItem, error) {
	var l ledger

	daysAhead := rng.IntN(5) + 2
	placed := o.DueDate().AddDays(-daysAhead).AtHour(rng.IntN(10)+7, 0)
	l.add(barista, order.PlacedMessage, order.New, placed)

	switch o.State() {
	case order.Cancelled:
		offset := 0
		if span := int(o.DueDate().At(o.DueTime()).Sub(placed) / day); span > 0 {
			offset = rng.IntN(span)
		}
		l.add(barista, CancelledMessage, order.Cancelled, placed.AddDate(0, 0, offset))

	case order.Confirmed, order.Problem, order.Ready, order.Delivered:
		days := rng.IntN(2)
		confirmed := placed.AddDate(0, 0, days).Add(time.Duration(rng.IntN(5)) * time.Hour)
		l.add(baker, ConfirmedMessage, order.Confirmed, confirmed)

		switch o.State() {
		case order.Problem:
			l.add(baker, ProblemMessage, order.Problem, o.DueDate().AtHour(rng.IntN(4)+4, 0))

		case order.Ready, order.Delivered:
			hour, minute := rng.IntN(2)+8, 30
			if rng.Bool() {
				minute = 0
			}
			l.add(baker, ReadyMessage, order.Ready, o.DueDate().AtHour(hour, minute))

			if o.State() == order.Delivered {
				delivered := o.DueDate().At(o.DueTime()).Add(-time.Duration(rng.IntN(120)) * time.Minute)
				l.add(baker, DeliveredMessage, order.Delivered, delivered)
			}
		}
	}

	return l.entries, l.err
}

// ledger collects entries until the first error.
type ledger struct {
	entries []order.HistoryItem
	err     error
}

func (l *ledger) add(author *identity.User, message string, state order.State, at time.Time) {
	if l.err != nil {
		return
	}
	// an early due time can put delivery before the ready entry
	if n := len(l.entries); n > 0 && at.Before(l.entries[n-1].Timestamp()) {
		at = l.entries[n-1].Timestamp()
	}
	entry, err := order.NewHistoryItem(author, message, state, at)
	if err != nil {
		l.err = err
		l.entries = nil
		return
	}
	l.entries = append(l.entries, entry)
}
