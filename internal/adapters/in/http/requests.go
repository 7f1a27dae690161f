package http

import (
	"math"
	"strconv"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/validation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the wire shape for order creation.
type CreateOrderRequest struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Status   string          `json:"status"`
}

func (r CreateOrderRequest) rules() []validation.Rule {
	return []validation.Rule{
		validation.Required("Name", r.Name),
		validation.Range("Quantity", r.Quantity, 1, math.MaxInt,
			"Quantity must be greater than zero."),
		validation.DecimalRange("Price", r.Price, 1, math.MaxInt64,
			"Price must be greater than zero."),
		validation.AllowedValues("Status", r.Status, []string{"active", "draft"},
			"Status must be either 'active' or 'draft'"),
	}
}

// UpdateOrderRequest is the wire shape for order updates. The full status set
// is accepted; "delete" is the soft-delete transition.
type UpdateOrderRequest struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Status   string          `json:"status"`
}

func (r UpdateOrderRequest) rules() []validation.Rule {
	return []validation.Rule{
		validation.Range("Id", r.ID, 1, math.MaxInt, "Id is required."),
		validation.Required("Name", r.Name),
		validation.Range("Quantity", r.Quantity, 1, math.MaxInt,
			"Quantity must be greater than zero."),
		validation.DecimalRange("Price", r.Price, 1, math.MaxInt64,
			"Price must be greater than zero."),
		validation.AllowedValues("Status", r.Status, []string{"active", "inactive", "draft", "delete"},
			"Status must be either 'active', 'inactive', 'draft' or 'delete'"),
	}
}

// OrderFilter carries the optional list criteria read from query parameters.
type OrderFilter struct {
	Search     string
	Status     string
	FromDate   string
	ToDate     string
	PageNumber *int
	PageSize   *int
}

func (f OrderFilter) rules() []validation.Rule {
	return []validation.Rule{
		validation.AllowedValues("Status", f.Status, []string{"active", "inactive", "draft"},
			"Status must be either 'active', 'inactive' or 'draft'"),
		validation.DateFormat("FromDate", f.FromDate),
		validation.DateFormat("ToDate", f.ToDate),
		validation.RequiredWith("PageNumber", f.PageNumber != nil, f.PageSize != nil,
			"Page Number is required when Page Size is provided."),
		validation.RequiredWith("PageSize", f.PageSize != nil, f.PageNumber != nil,
			"Page Size is required when Page Number is provided."),
		validation.OptionalRange("PageNumber", f.PageNumber, 1, math.MaxInt,
			"Page Number must be greater than zero."),
		validation.OptionalRange("PageSize", f.PageSize, 1, math.MaxInt,
			"Page Size must be greater than zero."),
	}
}

// parseOrderFilter reads the list criteria from the request query string.
// Page parameters must be integers; anything else fails with the same
// message as an out-of-range value.
func parseOrderFilter(ctx echo.Context) (OrderFilter, error) {
	filter := OrderFilter{
		Search:   ctx.QueryParam("search"),
		Status:   ctx.QueryParam("status"),
		FromDate: ctx.QueryParam("fromDate"),
		ToDate:   ctx.QueryParam("toDate"),
	}

	var err error
	if filter.PageNumber, err = optionalInt(ctx.QueryParam("pageNumber"),
		"PageNumber", "Page Number must be greater than zero."); err != nil {
		return OrderFilter{}, err
	}
	if filter.PageSize, err = optionalInt(ctx.QueryParam("pageSize"),
		"PageSize", "Page Size must be greater than zero."); err != nil {
		return OrderFilter{}, err
	}

	return filter, nil
}

func optionalInt(raw string, field string, message string) (*int, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errs.NewValidationError(field, message)
	}

	return &value, nil
}
