package commands

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var (
	ErrAddOrderCommentCommandIsNotConstructed = errors.New(
		"AddOrderCommentCommand must be created via NewAddOrderCommentCommand constructor",
	)
	ErrCommentIsRequired = errors.New("comment is required")
)

// AddOrderCommentCommand represents a free-form note added to an order's
// history. The note is stamped with the order's current state.
type AddOrderCommentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	authorID kernel.UUID
	comment  string

	guard guard.ConstructorGuard
}

func NewAddOrderCommentCommand(orderID, authorID kernel.UUID, comment string) (AddOrderCommentCommand, error) {
	command := AddOrderCommentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAuthorID(authorID),
		command.setComment(comment),
	); err != nil {
		return AddOrderCommentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderCommentCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderCommentCommandIsNotConstructed)
}

func (c AddOrderCommentCommand) OrderID() kernel.UUID  { return c.orderID }
func (c AddOrderCommentCommand) AuthorID() kernel.UUID { return c.authorID }
func (c AddOrderCommentCommand) Comment() string       { return c.comment }

func (c *AddOrderCommentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderCommentCommand) setAuthorID(authorID kernel.UUID) error {
	if err := authorID.Validate(); err != nil {
		return err
	}

	c.authorID = authorID
	return nil
}

func (c *AddOrderCommentCommand) setComment(comment string) error {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return ErrCommentIsRequired
	}

	c.comment = comment
	return nil
}
