package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/identity"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Orders reference users, products and pickup locations owned by other
// repositories; Get resolves them through those repositories so that the
// aggregate comes back fully populated.
type GormOrderRepository struct {
	db        *gorm.DB
	tracker   aggregateTracker
	users     ports.UserRepository
	products  ports.ProductRepository
	locations ports.PickupLocationRepository
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	users ports.UserRepository,
	products ports.ProductRepository,
	locations ports.PickupLocationRepository,
) *GormOrderRepository {
	return &GormOrderRepository{
		db:        db,
		tracker:   tracker,
		users:     users,
		products:  products,
		locations: locations,
	}
}

// Add saves a new order together with its items and history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. Items and history rows are replaced as a
// whole, inside a savepoint when the repository runs within a transaction.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Select("*").
			Omit(clause.Associations).
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", dto.ID).Delete(&HistoryEntryDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Items) > 0 {
			if err := tx.Create(&dto.Items).Error; err != nil {
				return err
			}
		}
		if len(dto.History) > 0 {
			return tx.Create(&dto.History).Error
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, with items and history in their stored order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Raw()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return r.toDomain(ctx, dto)
}

// toDomain converts a database DTO to an order aggregate, loading every
// referenced entity once.
func (r *GormOrderRepository) toDomain(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}

	dueTime, err := kernel.TimeOfDayFromMinutes(dto.DueTime)
	if err != nil {
		return nil, err
	}

	locationID, err := kernel.UUIDFromRaw(dto.PickupLocationID)
	if err != nil {
		return nil, err
	}
	location, err := r.locations.Get(ctx, locationID)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.Customer.FullName, dto.Customer.PhoneNumber, dto.Customer.Details)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	products := make(map[uuid.UUID]*catalog.Product)
	for _, itemDTO := range dto.Items {
		product, ok := products[itemDTO.ProductID]
		if !ok {
			if product, err = r.product(ctx, itemDTO.ProductID); err != nil {
				return nil, err
			}
			products[itemDTO.ProductID] = product
		}

		item, err := order.NewItem(product, itemDTO.Quantity, itemDTO.Comment)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	history := make([]order.HistoryItem, 0, len(dto.History))
	authors := make(map[uuid.UUID]*identity.User)
	for _, entryDTO := range dto.History {
		author, ok := authors[entryDTO.AuthorID]
		if !ok {
			if author, err = r.user(ctx, entryDTO.AuthorID); err != nil {
				return nil, err
			}
			authors[entryDTO.AuthorID] = author
		}

		entry, err := order.NewHistoryItem(author, entryDTO.Message, order.State(entryDTO.State), entryDTO.Timestamp.UTC())
		if err != nil {
			return nil, err
		}
		history = append(history, entry)
	}

	aggregate, err := order.RestoreOrder(id, kernel.DateOf(dto.DueDate.UTC()), dueTime, location, customer, items, history)
	if err != nil {
		return nil, fmt.Errorf("restore order %s: %w", id, err)
	}
	return aggregate, nil
}

func (r *GormOrderRepository) product(ctx context.Context, raw uuid.UUID) (*catalog.Product, error) {
	id, err := kernel.UUIDFromRaw(raw)
	if err != nil {
		return nil, err
	}
	return r.products.Get(ctx, id)
}

func (r *GormOrderRepository) user(ctx context.Context, raw uuid.UUID) (*identity.User, error) {
	id, err := kernel.UUIDFromRaw(raw)
	if err != nil {
		return nil, err
	}
	return r.users.Get(ctx, id)
}
