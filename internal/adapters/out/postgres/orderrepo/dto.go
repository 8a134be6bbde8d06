// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Items and history are child tables keyed by order and position, so their
// order survives a round trip.
package orderrepo

import (
	"time"

	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The due time is stored as minutes after midnight.
type OrderDTO struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey"`
	DueDate          time.Time         `gorm:"type:date;not null;index"`
	DueTime          int               `gorm:"type:smallint;not null"`
	PickupLocationID uuid.UUID         `gorm:"type:uuid;not null;index"`
	Customer         CustomerDTO       `gorm:"embedded;embeddedPrefix:customer_"`
	State            int               `gorm:"type:smallint;not null;index"`
	Items            []ItemDTO         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History          []HistoryEntryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO is embedded in the order row; customers have no table of their own.
type CustomerDTO struct {
	FullName    string `gorm:"type:varchar(255);not null"`
	PhoneNumber string `gorm:"type:varchar(64);not null"`
	Details     string `gorm:"type:text"`
}

// ItemDTO represents one order line.
type ItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey;autoIncrement:false"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"type:int;not null"`
	Comment   string    `gorm:"type:varchar(255)"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// HistoryEntryDTO represents one ledger entry.
type HistoryEntryDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey;autoIncrement:false"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Message   string    `gorm:"type:text;not null"`
	State     int       `gorm:"type:smallint;not null"`
	Timestamp time.Time `gorm:"not null"`
}

func (HistoryEntryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Raw()

	items := make([]ItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:   orderID,
			Position:  i,
			ProductID: item.Product().ID().Raw(),
			Quantity:  item.Quantity(),
			Comment:   item.Comment(),
		})
	}

	history := make([]HistoryEntryDTO, 0, len(o.History()))
	for i, h := range o.History() {
		history = append(history, HistoryEntryDTO{
			OrderID:   orderID,
			Position:  i,
			AuthorID:  h.Author().ID().Raw(),
			Message:   h.Message(),
			State:     int(h.State()),
			Timestamp: h.Timestamp(),
		})
	}

	return OrderDTO{
		ID:               orderID,
		DueDate:          o.DueDate().Time(),
		DueTime:          o.DueTime().Minutes(),
		PickupLocationID: o.PickupLocation().ID().Raw(),
		Customer: CustomerDTO{
			FullName:    o.Customer().FullName(),
			PhoneNumber: o.Customer().PhoneNumber(),
			Details:     o.Customer().Details(),
		},
		State:   int(o.State()),
		Items:   items,
		History: history,
	}
}
