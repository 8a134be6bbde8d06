package order

import (
	"fmt"
	"strings"

	"bakery/internal/pkg/errs"
)

// State is the lifecycle state of an order.
//
//	NEW ──> CONFIRMED ──> READY ──> DELIVERED
//	 │          │  ▲        │
//	 │          ▼  │        │
//	 ├──────> PROBLEM <─────┤
//	 │          │           │
//	 └──────────┴───────────┴──> CANCELLED
//
// The graph above is what TransitionStrict enforces. Transition accepts any
// valid target, which the demo data generator relies on (NEW straight to
// PROBLEM, for example).
type State int

const (
	// Unknown (0) catches uninitialised values.
	Unknown State = iota
	New
	Confirmed
	Ready
	Problem
	Delivered
	Cancelled
)

var stateNames = map[State]string{
	New:       "NEW",
	Confirmed: "CONFIRMED",
	Ready:     "READY",
	Problem:   "PROBLEM",
	Delivered: "DELIVERED",
	Cancelled: "CANCELLED",
}

// allowedTransitions is the adjacency used by TransitionStrict.
var allowedTransitions = map[State][]State{
	New:       {Confirmed, Problem, Cancelled},
	Confirmed: {Ready, Problem, Cancelled},
	Problem:   {Confirmed, Ready, Cancelled},
	Ready:     {Delivered, Problem, Cancelled},
}

// States lists every valid state in lifecycle order.
func States() []State {
	return []State{New, Confirmed, Ready, Problem, Delivered, Cancelled}
}

// ParseState accepts the upper- or lower-case name of a state.
func ParseState(s string) (State, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for state, n := range stateNames {
		if n == name {
			return state, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid state", s))
}

func (s State) Validate() error {
	if _, ok := stateNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports DELIVERED and CANCELLED.
func (s State) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Message is the history text recorded when an order enters s.
func (s State) Message() string {
	return "Order " + s.String()
}

// ValidateTransitionTo checks next against the lifecycle graph.
// Staying in the same state is always allowed.
func (s State) ValidateTransitionTo(next State) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s == next {
		return nil
	}
	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("%s is terminal and cannot move to %s", s, next),
		)
	}
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"state",
		fmt.Errorf("%s cannot move to %s", s, next),
	)
}
