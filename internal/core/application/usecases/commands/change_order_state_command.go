package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var ErrChangeOrderStateCommandIsNotConstructed = errors.New(
	"ChangeOrderStateCommand must be created via NewChangeOrderStateCommand constructor",
)

// ChangeOrderStateCommand represents a staff member moving an order to a new state.
//
// With strict set, the move must follow the order lifecycle; otherwise any
// state can be reached from any state.
//
// Example:
//
//	cmd, err := NewChangeOrderStateCommand(orderID, bakerID, order.Ready, true)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewChangeOrderStateCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to change state: %w", err)
//	}
type ChangeOrderStateCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actorID  kernel.UUID
	newState order.State
	strict   bool

	guard guard.ConstructorGuard
}

func NewChangeOrderStateCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	newState order.State,
	strict bool,
) (ChangeOrderStateCommand, error) {
	command := ChangeOrderStateCommand{
		strict: strict,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
		command.setNewState(newState),
	); err != nil {
		return ChangeOrderStateCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStateCommandIsNotConstructed)
}

func (c ChangeOrderStateCommand) OrderID() kernel.UUID  { return c.orderID }
func (c ChangeOrderStateCommand) ActorID() kernel.UUID  { return c.actorID }
func (c ChangeOrderStateCommand) NewState() order.State { return c.newState }
func (c ChangeOrderStateCommand) Strict() bool          { return c.strict }

func (c *ChangeOrderStateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStateCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ChangeOrderStateCommand) setNewState(newState order.State) error {
	if err := newState.Validate(); err != nil {
		return err
	}

	c.newState = newState
	return nil
}
