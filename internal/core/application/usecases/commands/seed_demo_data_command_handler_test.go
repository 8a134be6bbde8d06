package commands_test

import (
	"errors"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/services/datagen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seedMocks struct {
	factory   *MockSeedUoWFactory
	uow       *MockTx
	users     *MockUserRepository
	products  *MockProductRepository
	locations *MockPickupLocationRepository
	orders    *MockOrderRepository
}

func newSeedMocks() seedMocks {
	m := seedMocks{
		factory:   new(MockSeedUoWFactory),
		uow:       new(MockTx),
		users:     new(MockUserRepository),
		products:  new(MockProductRepository),
		locations: new(MockPickupLocationRepository),
		orders:    new(MockOrderRepository),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("UserRepository").Return(m.users)
	// only reached once generation starts
	m.uow.On("ProductRepository").Return(m.products).Maybe()
	m.uow.On("PickupLocationRepository").Return(m.locations).Maybe()
	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	return m
}

func seedCommand(t *testing.T) commands.SeedDemoDataCommand {
	t.Helper()
	cmd, err := commands.NewSeedDemoDataCommand(kernel.NewDate(2024, time.June, 15), datagen.DefaultSeed)
	require.NoError(t, err)
	return cmd
}

func TestSeedDemoDataCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	m := newSeedMocks()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.users.On("Count", ctx).Return(int64(0), nil).Once()
	m.users.On("Add", ctx, mock.AnythingOfType("*identity.User")).Return(nil)
	m.products.On("Add", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)
	m.locations.On("Add", ctx, mock.AnythingOfType("*catalog.PickupLocation")).Return(nil)
	m.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil)
	m.uow.On("Commit", ctx).Return(nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSeedDemoDataCommandHandler(m.factory, plainHasher{})

	// Act
	stats, err := handler.Handle(ctx, seedCommand(t))

	// Assert
	require.NoError(t, err)
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.users.AssertNumberOfCalls(t, "Add", 5)
	m.products.AssertNumberOfCalls(t, "Add", datagen.LinkedProducts+datagen.UnlinkedProducts)
	m.locations.AssertNumberOfCalls(t, "Add", 2)
	m.orders.AssertNumberOfCalls(t, "Add", stats.TotalOrders())
	assert.Positive(t, stats.TotalOrders())
}

func TestSeedDemoDataCommandHandler_Handle_AlreadySeeded(t *testing.T) {
	// Arrange
	ctx := t.Context()
	m := newSeedMocks()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.users.On("Count", ctx).Return(int64(5), nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSeedDemoDataCommandHandler(m.factory, plainHasher{})

	// Act
	_, err := handler.Handle(ctx, seedCommand(t))

	// Assert
	require.ErrorIs(t, err, commands.ErrDemoDataAlreadyPresent)
	m.uow.AssertExpectations(t)
	m.uow.AssertNotCalled(t, "Commit", ctx)
	m.users.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	m.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSeedDemoDataCommandHandler_Handle_StorageErrorRollsBackEverything(t *testing.T) {
	// Arrange
	ctx := t.Context()
	expectedError := errors.New("connection reset")
	m := newSeedMocks()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.users.On("Count", ctx).Return(int64(0), nil).Once()
	m.users.On("Add", ctx, mock.Anything).Return(nil)
	m.products.On("Add", ctx, mock.Anything).Return(nil)
	m.locations.On("Add", ctx, mock.Anything).Return(nil)
	m.orders.On("Add", ctx, mock.Anything).Return(nil).Times(100)
	m.orders.On("Add", ctx, mock.Anything).Return(expectedError).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSeedDemoDataCommandHandler(m.factory, plainHasher{})

	// Act
	_, err := handler.Handle(ctx, seedCommand(t))

	// Assert
	require.ErrorIs(t, err, expectedError)
	m.uow.AssertExpectations(t)
	m.uow.AssertNotCalled(t, "Commit", ctx)
	m.orders.AssertNumberOfCalls(t, "Add", 101)
}

func TestSeedDemoDataCommandHandler_Handle_CountError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	expectedError := errors.New("relation users does not exist")
	m := newSeedMocks()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.users.On("Count", ctx).Return(int64(0), expectedError).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSeedDemoDataCommandHandler(m.factory, plainHasher{})

	// Act
	_, err := handler.Handle(ctx, seedCommand(t))

	// Assert
	require.ErrorIs(t, err, expectedError)
	m.uow.AssertExpectations(t)
}

func TestSeedDemoDataCommandHandler_Handle_BeginError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	expectedError := errors.New("begin transaction failed")
	uow := new(MockTx)
	factory := new(MockSeedUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewSeedDemoDataCommandHandler(factory, plainHasher{})

	// Act
	_, err := handler.Handle(ctx, seedCommand(t))

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSeedDemoDataCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	factory := new(MockSeedUoWFactory)
	handler := commands.NewSeedDemoDataCommandHandler(factory, plainHasher{})

	// Act
	_, err := handler.Handle(t.Context(), commands.SeedDemoDataCommand{})

	// Assert
	require.ErrorIs(t, err, commands.ErrSeedDemoDataCommandIsNotConstructed)
	factory.AssertExpectations(t) // No calls should be made to factory
}
