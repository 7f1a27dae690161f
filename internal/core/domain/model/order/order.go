package order

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// SystemActor is the default actor recorded when no caller identity is supplied.
const SystemActor = "System"

// Order is the aggregate root for a customer order.
//
// Invariants:
//   - Name must be non-empty
//   - Quantity must be at least 1
//   - Price must be at least 1, with monetary precision preserved exactly
//   - Status must be one of the valid lifecycle states
//   - A Deleted status hides the order from every read path; the row is
//     never purged by a status transition
//
// The id is assigned by the record store on first persistence and is
// immutable afterwards. Private fields keep the invariants enforced through
// the validated constructors and mutators.
type Order struct {
	id         int
	name       string
	quantity   int
	price      decimal.Decimal
	status     Status
	createdAt  time.Time
	createdBy  string
	modifiedAt time.Time
	modifiedBy string

	isConstructed bool
}

// NewOrder creates a new Order with validation. Timestamps are stamped in UTC
// and actor fields default to SystemActor. The id stays zero until the record
// store assigns one via AssignID.
func NewOrder(name string, quantity int, price decimal.Decimal, status Status) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		createdAt:     now,
		createdBy:     SystemActor,
		modifiedAt:    now,
		modifiedBy:    SystemActor,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setName(name),
		o.setQuantity(quantity),
		o.setPrice(price),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. The same field
// validation applies; timestamps and actors are taken verbatim.
func RestoreOrder(
	id int,
	name string,
	quantity int,
	price decimal.Decimal,
	status Status,
	createdAt time.Time,
	createdBy string,
	modifiedAt time.Time,
	modifiedBy string,
) (*Order, error) {
	o := &Order{
		id:            id,
		createdAt:     createdAt,
		createdBy:     createdBy,
		modifiedAt:    modifiedAt,
		modifiedBy:    modifiedBy,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setName(name),
		o.setQuantity(quantity),
		o.setPrice(price),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the store-assigned identifier, zero before first persistence.
func (o *Order) ID() int {
	return o.id
}

// Name returns the order name.
func (o *Order) Name() string {
	return o.name
}

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// Price returns the unit price with exact monetary precision.
func (o *Order) Price() decimal.Decimal {
	return o.price
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the UTC creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CreatedBy returns the creating actor.
func (o *Order) CreatedBy() string {
	return o.createdBy
}

// ModifiedAt returns the UTC timestamp of the last mutation.
func (o *Order) ModifiedAt() time.Time {
	return o.modifiedAt
}

// ModifiedBy returns the last mutating actor.
func (o *Order) ModifiedBy() string {
	return o.modifiedBy
}

// AssignID records the identifier assigned by the record store on insert.
// The id is immutable once set.
func (o *Order) AssignID(id int) error {
	if o.id != 0 {
		return errs.NewValidationError("Id", "id is already assigned")
	}
	if id <= 0 {
		return errs.NewValidationError("Id", "id must be greater than zero")
	}

	o.id = id
	return nil
}

// Update applies the mutable fields and refreshes the modification stamp.
// The creation stamp and actor fields are left untouched.
func (o *Order) Update(name string, quantity int, price decimal.Decimal, status Status) error {
	if err := errors.Join(
		o.setName(name),
		o.setQuantity(quantity),
		o.setPrice(price),
		o.setStatus(status),
	); err != nil {
		return err
	}

	o.modifiedAt = time.Now().UTC()
	return nil
}

func (o *Order) setName(name string) error {
	if name == "" {
		return errs.NewValidationError("Name", "Name is required.")
	}
	o.name = name
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValidationError("Quantity", "Quantity must be greater than zero.")
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setPrice(price decimal.Decimal) error {
	if price.LessThan(decimal.NewFromInt(1)) {
		return errs.NewValidationError("Price", "Price must be greater than zero.")
	}
	o.price = price
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
