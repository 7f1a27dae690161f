package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	listHandler queries.ListOrdersQueryHandler
	getHandler  queries.GetOrderQueryHandler
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.listHandler = queries.NewListOrdersQueryHandler(db)
	suite.getHandler = queries.NewGetOrderQueryHandler(db)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

// seedOrder inserts a row directly so id and created_at can be pinned.
func (suite *OrderQueriesTestSuite) seedOrder(id int, name string, status order.Status, createdAt time.Time) {
	err := suite.db.Exec(
		"INSERT INTO orders (id, name, quantity, price, status, created_at, created_by, modified_at, modified_by) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		id, name, 1, "25.00", status.String(),
		createdAt, order.SystemActor, createdAt, order.SystemActor,
	).Error
	suite.Require().NoError(err)
}

func (suite *OrderQueriesTestSuite) seedMixedStatuses() {
	day := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	for i := 1; i <= 5; i++ {
		suite.seedOrder(i, "Monitor", order.Active, day)
	}
	suite.seedOrder(6, "Keyboard", order.Deleted, day)
	suite.seedOrder(7, "Mouse", order.Draft, day)
}

func (suite *OrderQueriesTestSuite) mustListQuery(
	search, status, fromDate, toDate string, pageNumber, pageSize *int,
) queries.ListOrdersQuery {
	query, err := queries.NewListOrdersQuery(search, status, fromDate, toDate, pageNumber, pageSize)
	suite.Require().NoError(err)
	return query
}

func (suite *OrderQueriesTestSuite) TestList_EmptyDatabase_ReturnsEmptyResult() {
	result, err := suite.listHandler.Handle(context.Background(), suite.mustListQuery("", "", "", "", nil, nil))

	suite.Require().NoError(err)
	suite.Empty(result.Orders)
	suite.Zero(result.TotalRecords)
}

func (suite *OrderQueriesTestSuite) TestList_StatusFilterWithPagination_CountsBeforePaging() {
	suite.seedMixedStatuses()

	pageNumber, pageSize := 1, 2
	query := suite.mustListQuery("", "active", "", "", &pageNumber, &pageSize)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Orders, 2, "page holds pageSize rows")
	suite.Equal(int64(5), result.TotalRecords, "total counts the whole filtered scope")
	suite.Equal(1, result.Orders[0].ID)
	suite.Equal(2, result.Orders[1].ID)
}

func (suite *OrderQueriesTestSuite) TestList_LastPage_ReturnsRemainder() {
	suite.seedMixedStatuses()

	pageNumber, pageSize := 3, 2
	query := suite.mustListQuery("", "active", "", "", &pageNumber, &pageSize)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Orders, 1)
	suite.Equal(int64(5), result.TotalRecords)
	suite.Equal(5, result.Orders[0].ID)
}

func (suite *OrderQueriesTestSuite) TestList_SoftDeletedRowsAreAlwaysExcluded() {
	suite.seedMixedStatuses()

	result, err := suite.listHandler.Handle(context.Background(), suite.mustListQuery("", "", "", "", nil, nil))

	suite.Require().NoError(err)
	suite.Equal(int64(6), result.TotalRecords, "5 active + 1 draft, deleted row hidden")
	for _, o := range result.Orders {
		suite.NotEqual(order.Deleted.String(), o.Status)
	}
}

func (suite *OrderQueriesTestSuite) TestList_SearchMatchesNameSubstring() {
	suite.seedMixedStatuses()

	result, err := suite.listHandler.Handle(context.Background(), suite.mustListQuery("oni", "", "", "", nil, nil))

	suite.Require().NoError(err)
	suite.Equal(int64(5), result.TotalRecords)
	for _, o := range result.Orders {
		suite.Equal("Monitor", o.Name)
	}
}

func (suite *OrderQueriesTestSuite) TestList_FromDateOnly_ExpandsToWholeDay() {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	suite.seedOrder(1, "Early", order.Active, day.Add(time.Second))
	suite.seedOrder(2, "Late", order.Active, day.Add(23*time.Hour+59*time.Minute))
	suite.seedOrder(3, "Day before", order.Active, day.Add(-time.Hour))
	suite.seedOrder(4, "Day after", order.Active, day.AddDate(0, 0, 1).Add(time.Hour))

	result, err := suite.listHandler.Handle(context.Background(),
		suite.mustListQuery("", "", "10-03-2025", "", nil, nil))

	suite.Require().NoError(err)
	suite.Equal(int64(2), result.TotalRecords)
	suite.Equal(1, result.Orders[0].ID)
	suite.Equal(2, result.Orders[1].ID)
}

func (suite *OrderQueriesTestSuite) TestList_DateRange_IsInclusiveAtBothEnds() {
	suite.seedOrder(1, "In range start", order.Active, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	suite.seedOrder(2, "In range end", order.Active, time.Date(2025, 3, 12, 23, 59, 59, 0, time.UTC))
	suite.seedOrder(3, "Before", order.Active, time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC))
	suite.seedOrder(4, "After", order.Active, time.Date(2025, 3, 13, 0, 0, 1, 0, time.UTC))

	result, err := suite.listHandler.Handle(context.Background(),
		suite.mustListQuery("", "", "10-03-2025", "12-03-2025", nil, nil))

	suite.Require().NoError(err)
	suite.Equal(int64(2), result.TotalRecords)
}

func (suite *OrderQueriesTestSuite) TestList_ToDateOnly_BoundsFromAbove() {
	suite.seedOrder(1, "Old", order.Active, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	suite.seedOrder(2, "On the day", order.Active, time.Date(2025, 3, 12, 20, 0, 0, 0, time.UTC))
	suite.seedOrder(3, "Newer", order.Active, time.Date(2025, 3, 13, 8, 0, 0, 0, time.UTC))

	result, err := suite.listHandler.Handle(context.Background(),
		suite.mustListQuery("", "", "", "12-03-2025", nil, nil))

	suite.Require().NoError(err)
	suite.Equal(int64(2), result.TotalRecords)
	suite.Equal(1, result.Orders[0].ID)
	suite.Equal(2, result.Orders[1].ID)
}

func (suite *OrderQueriesTestSuite) TestList_InvalidQuery_ReturnsError() {
	var invalid queries.ListOrdersQuery

	_, err := suite.listHandler.Handle(context.Background(), invalid)

	suite.Require().ErrorIs(err, queries.ErrListOrdersQueryIsNotConstructed)
}

func (suite *OrderQueriesTestSuite) TestGet_ExistingOrder_ReturnsResponse() {
	suite.seedMixedStatuses()

	query, err := queries.NewGetOrderQuery(1)
	suite.Require().NoError(err)

	result, getErr := suite.getHandler.Handle(context.Background(), query)

	suite.Require().NoError(getErr)
	suite.Equal(1, result.ID)
	suite.Equal("Monitor", result.Name)
	suite.Equal(order.Active.String(), result.Status)
	suite.Equal(order.SystemActor, result.CreatedBy)
}

func (suite *OrderQueriesTestSuite) TestGet_MissingOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(12345)
	suite.Require().NoError(err)

	_, getErr := suite.getHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(getErr, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestGet_SoftDeletedOrder_ReturnsNotFound() {
	suite.seedMixedStatuses()

	query, err := queries.NewGetOrderQuery(6)
	suite.Require().NoError(err)

	_, getErr := suite.getHandler.Handle(context.Background(), query)

	suite.Require().ErrorIs(getErr, errs.ErrObjectNotFound)
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
