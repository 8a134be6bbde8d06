package commands_test

import (
	"context"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/identity"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*identity.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}

type MockPickupLocationRepository struct{ mock.Mock }

func (m *MockPickupLocationRepository) Add(ctx context.Context, l *catalog.PickupLocation) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockPickupLocationRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.PickupLocation, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*catalog.PickupLocation)
	return l, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockTx) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockTx) PickupLocationRepository() ports.PickupLocationRepository {
	args := m.Called()
	return args.Get(0).(ports.PickupLocationRepository)
}

func (m *MockTx) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockSeedUoWFactory struct{ mock.Mock }

func (m *MockSeedUoWFactory) Create() commands.SeedUoW {
	args := m.Called()
	return args.Get(0).(commands.SeedUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type plainHasher struct{}

func (plainHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time     { return c.now }
func (c fixedClock) Today() kernel.Date { return kernel.DateOf(c.now) }
