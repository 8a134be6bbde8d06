package commands

import (
	"context"

	"bakery/internal/core/ports"
)

// AddOrderCommentCommandHandler appends a comment to a stored order's history.
type AddOrderCommentCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewAddOrderCommentCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) AddOrderCommentCommandHandler {
	return AddOrderCommentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *AddOrderCommentCommandHandler) Handle(ctx context.Context, cmd AddOrderCommentCommand) error {
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

	author, err := uow.UserRepository().Get(ctx, cmd.AuthorID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AppendHistory(author, cmd.Comment(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
