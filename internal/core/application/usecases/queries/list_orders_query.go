package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
	"ordering/internal/pkg/validation"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery is the normalized filter for order list reads.
// All criteria are optional and conjunctive. Pagination is a mutually
// dependent pair: both pageNumber and pageSize or neither.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	search     string
	status     order.Status // Unknown means no status filter
	fromDate   *time.Time
	toDate     *time.Time
	pageNumber *int
	pageSize   *int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery normalizes raw filter parameters into a query.
// The status token must be draft, active, or inactive (case-insensitive);
// dates must be dd-MM-yyyy; pagination values must be at least 1 and
// supplied together.
func NewListOrdersQuery(
	search string,
	statusToken string,
	fromDate string,
	toDate string,
	pageNumber *int,
	pageSize *int,
) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		search: search,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setStatus(statusToken),
		q.setDates(fromDate, toDate),
		q.setPagination(pageNumber, pageSize),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Search returns the name substring criterion, empty when absent.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// HasStatus reports whether a status filter was supplied.
func (q ListOrdersQuery) HasStatus() bool {
	return q.status != order.Unknown
}

// Status returns the normalized status filter; only meaningful when
// HasStatus reports true.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// FromDate returns the inclusive start-of-day lower bound, nil when absent.
func (q ListOrdersQuery) FromDate() *time.Time {
	return q.fromDate
}

// ToDate returns the parsed upper-bound day, nil when absent.
func (q ListOrdersQuery) ToDate() *time.Time {
	return q.toDate
}

// Pagination returns the page pair. ok is false when no pagination was
// requested.
func (q ListOrdersQuery) Pagination() (pageNumber int, pageSize int, ok bool) {
	if q.pageNumber == nil || q.pageSize == nil {
		return 0, 0, false
	}
	return *q.pageNumber, *q.pageSize, true
}

func (q *ListOrdersQuery) setStatus(token string) error {
	if token == "" {
		return nil
	}

	status, err := order.ParseStatus(token)
	if err != nil || status.IsDeleted() {
		return errs.NewValidationError("Status", "Status must be either 'active', 'inactive' or 'draft'")
	}

	q.status = status
	return nil
}

func (q *ListOrdersQuery) setDates(fromDate string, toDate string) error {
	from, err := parseDay(fromDate)
	if err != nil {
		return err
	}
	to, err := parseDay(toDate)
	if err != nil {
		return err
	}

	q.fromDate = from
	q.toDate = to
	return nil
}

func (q *ListOrdersQuery) setPagination(pageNumber *int, pageSize *int) error {
	if pageNumber == nil && pageSize == nil {
		return nil
	}
	if pageNumber == nil {
		return errs.NewValidationError("PageNumber", "Page Number is required when Page Size is provided.")
	}
	if pageSize == nil {
		return errs.NewValidationError("PageSize", "Page Size is required when Page Number is provided.")
	}
	if *pageNumber < 1 {
		return errs.NewValidationError("PageNumber", "Page Number must be greater than zero.")
	}
	if *pageSize < 1 {
		return errs.NewValidationError("PageSize", "Page Size must be greater than zero.")
	}

	q.pageNumber = pageNumber
	q.pageSize = pageSize
	return nil
}

// parseDay parses a dd-MM-yyyy day in UTC. Empty input yields nil.
func parseDay(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	day, err := time.ParseInLocation(validation.DateLayout, value, time.UTC)
	if err != nil || day.Format(validation.DateLayout) != value {
		return nil, errs.NewValidationError("Date", "Date format must be 'dd-MM-yyyy'.")
	}

	return &day, nil
}
