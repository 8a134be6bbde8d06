package commands

import (
	"context"

	"bakery/internal/core/ports"
)

// ChangeOrderStateCommandHandler applies a state change to a stored order and
// records it in the order history under the acting user.
type ChangeOrderStateCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewChangeOrderStateCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) ChangeOrderStateCommandHandler {
	return ChangeOrderStateCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the order and the actor, transitions the order and persists it.
// Requesting the current state succeeds without touching the history.
// Rolls back on any error.
func (h *ChangeOrderStateCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Strict() {
		err = aggregate.TransitionStrict(actor, cmd.NewState(), h.clock.Now())
	} else {
		err = aggregate.Transition(actor, cmd.NewState(), h.clock.Now())
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
