package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler translates a ListOrdersQuery into a paginated read
// against the orders table.
//
// Predicates are conjunctive and applied in a fixed order: search substring,
// status equality, creation-date range, then the unconditional soft-delete
// exclusion. TotalRecords counts the filtered scope before pagination so
// clients can build pagination UIs; rows are ordered by id to keep page
// boundaries deterministic.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list reads.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// ListOrdersQueryResponse is the paginated list result.
type ListOrdersQueryResponse struct {
	Orders       []OrderResponse
	TotalRecords int64
}

// Handle executes the list read.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	var totalRecords int64
	err := h.db.WithContext(ctx).
		Table("orders").
		Scopes(orderFilter(query)).
		Count(&totalRecords).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	tx := h.db.WithContext(ctx).
		Table("orders").
		Scopes(orderFilter(query))

	if pageNumber, pageSize, ok := query.Pagination(); ok {
		tx = tx.Offset((pageNumber - 1) * pageSize).Limit(pageSize)
	}

	var rows []orderRow
	if err = tx.Order("id").Find(&rows).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toResponse())
	}

	return ListOrdersQueryResponse{
		Orders:       orders,
		TotalRecords: totalRecords,
	}, nil
}

// orderFilter composes the conjunctive filter predicates for the query.
// Soft-deleted rows are excluded unconditionally, even when the caller
// filtered by another status.
func orderFilter(query ListOrdersQuery) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if search := query.Search(); search != "" {
			tx = tx.Where("name LIKE ?", "%"+search+"%")
		}

		if query.HasStatus() {
			tx = tx.Where("status = ?", query.Status().String())
		}

		from, to := query.FromDate(), query.ToDate()
		switch {
		case from != nil && to == nil:
			// A lone fromDate expands to that whole day.
			tx = tx.Where("created_at >= ? AND created_at <= ?", startOfDay(*from), endOfDay(*from))
		case from != nil && to != nil:
			tx = tx.Where("created_at >= ? AND created_at <= ?", startOfDay(*from), endOfDay(*to))
		case from == nil && to != nil:
			tx = tx.Where("created_at <= ?", endOfDay(*to))
		}

		return tx.Where("status <> ?", order.Deleted.String())
	}
}

func startOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(day time.Time) time.Time {
	return startOfDay(day).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
