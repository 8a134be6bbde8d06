package commands_test

import (
	"testing"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/identity"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddOrderCommentCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	barista := staff(t, "barista@vaadin.com", identity.Barista)
	aggregate := storedOrder(t, barista)
	require.NoError(t, aggregate.Transition(barista, order.Confirmed, now.Add(-24*time.Hour)))
	cmd, err := commands.NewAddOrderCommentCommand(aggregate.ID(), barista.ID(), "Customer will be late")
	require.NoError(t, err)

	m := newOrderMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("UserRepository").Return(m.users).Once(),
		m.users.On("Get", ctx, barista.ID()).Return(barista, nil).Once(),
		m.uow.On("OrderRepository").Return(m.orders).Once(),
		m.orders.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		m.orders.On("Update", ctx, aggregate).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAddOrderCommentCommandHandler(m.factory, fixedClock{now: now})

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	m.assertExpectations(t)

	history := aggregate.History()
	require.Len(t, history, 3)
	assert.Equal(t, "Customer will be late", history[2].Message())
	assert.Equal(t, order.Confirmed, history[2].State())
	assert.Equal(t, order.Confirmed, aggregate.State())
}

func TestAddOrderCommentCommandHandler_Handle_UnknownOrder(t *testing.T) {
	// Arrange
	ctx := t.Context()
	barista := staff(t, "barista@vaadin.com", identity.Barista)
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderCommentCommand(orderID, barista.ID(), "Call back")
	require.NoError(t, err)

	m := newOrderMocks()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("UserRepository").Return(m.users).Once()
	m.users.On("Get", ctx, barista.ID()).Return(barista, nil).Once()
	m.uow.On("OrderRepository").Return(m.orders).Once()
	m.orders.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewAddOrderCommentCommandHandler(m.factory, fixedClock{now: now})

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	m.assertExpectations(t)
	m.uow.AssertNotCalled(t, "Commit", ctx)
}
