// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The id is generated by the database on insert. Status holds the wire token
// ("draft", "active", "inactive", "delete") and is indexed because every read
// filters on it.
type OrderDTO struct {
	ID         int             `gorm:"primaryKey;autoIncrement"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Quantity   int             `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	Status     string          `gorm:"type:varchar(16);index;not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	CreatedBy  string          `gorm:"type:varchar(64);not null"`
	ModifiedAt time.Time       `gorm:"index;not null"`
	ModifiedBy string          `gorm:"type:varchar(64);not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:         aggregate.ID(),
		Name:       aggregate.Name(),
		Quantity:   aggregate.Quantity(),
		Price:      aggregate.Price(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		CreatedBy:  aggregate.CreatedBy(),
		ModifiedAt: aggregate.ModifiedAt(),
		ModifiedBy: aggregate.ModifiedBy(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Name,
		dto.Quantity,
		dto.Price,
		status,
		dto.CreatedAt,
		dto.CreatedBy,
		dto.ModifiedAt,
		dto.ModifiedBy,
	)
}
