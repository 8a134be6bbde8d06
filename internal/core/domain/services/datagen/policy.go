package datagen

import (
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// outcome is one row of a cumulative distribution: the state wins when the
// draw is below the threshold and no earlier row matched.
type outcome struct {
	below float64
	state order.State
}

var (
	pastDue = []outcome{
		{0.9, order.Delivered},
		{1, order.Cancelled},
	}
	dueInTwoDays = []outcome{
		{0.8, order.New},
		{0.9, order.Problem},
		{1, order.Cancelled},
	}
	dueSoon = []outcome{
		{0.6, order.Ready},
		{0.8, order.Delivered},
		{0.9, order.Problem},
		{1, order.Cancelled},
	}
)

// PolicyState picks the state an order due on due should be in when looked at
// on today. Orders more than two days out are always NEW and consume no draw.
func PolicyState(due, today kernel.Date, rng Random) order.State {
	tomorrow, twoDays := today.AddDays(1), today.AddDays(2)

	switch {
	case due.Before(today):
		return draw(rng, pastDue)
	case due.After(twoDays):
		return order.New
	case due.After(tomorrow):
		return draw(rng, dueInTwoDays)
	default:
		return draw(rng, dueSoon)
	}
}

func draw(rng Random, outcomes []outcome) order.State {
	r := rng.Float64()
	for _, o := range outcomes {
		if r < o.below {
			return o.state
		}
	}
	return outcomes[len(outcomes)-1].state
}
