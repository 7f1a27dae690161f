package http

import (
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/validation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Envelope is the uniform response wrapper. Successful responses carry a
// result; failed ones carry an error body, never both.
type Envelope struct {
	IsSuccess bool       `json:"isSuccess"`
	Result    any        `json:"result,omitempty"`
	Error     *ErrorBody `json:"error,omitempty"`
}

// ErrorBody pairs the stable error code with its client-facing message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func success(ctx echo.Context, status int, result any) error {
	return ctx.JSON(status, Envelope{IsSuccess: true, Result: result})
}

// OrderPayload is the wire shape of an order. Dates render in the same
// dd-MM-yyyy format the filters accept.
type OrderPayload struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"`
	ModifiedAt string          `json:"modifiedAt"`
	ModifiedBy string          `json:"modifiedBy"`
}

// OrderListPayload is the paginated list result. TotalRecords counts the
// whole filtered scope, not the returned page.
type OrderListPayload struct {
	Data         []OrderPayload `json:"data"`
	TotalRecords int64          `json:"totalRecords"`
}

// CurrentUserPayload identifies the authenticated caller.
type CurrentUserPayload struct {
	Name string `json:"name"`
}

func toOrderPayload(response queries.OrderResponse) OrderPayload {
	return OrderPayload{
		ID:         response.ID,
		Name:       response.Name,
		Quantity:   response.Quantity,
		Price:      response.Price,
		Status:     response.Status,
		CreatedAt:  response.CreatedAt.Format(validation.DateLayout),
		CreatedBy:  response.CreatedBy,
		ModifiedAt: response.ModifiedAt.Format(validation.DateLayout),
		ModifiedBy: response.ModifiedBy,
	}
}

func aggregateToPayload(aggregate *order.Order) OrderPayload {
	return OrderPayload{
		ID:         aggregate.ID(),
		Name:       aggregate.Name(),
		Quantity:   aggregate.Quantity(),
		Price:      aggregate.Price(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt().Format(validation.DateLayout),
		CreatedBy:  aggregate.CreatedBy(),
		ModifiedAt: aggregate.ModifiedAt().Format(validation.DateLayout),
		ModifiedBy: aggregate.ModifiedBy(),
	}
}
