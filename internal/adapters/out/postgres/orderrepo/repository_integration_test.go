package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NewOrder_AssignsGeneratedID() {
	ctx := context.Background()

	testOrder := suite.newTestOrder("Monitor", order.Draft)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int"), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.Positive(testOrder.ID(), "database-generated id is assigned back to the aggregate")
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_RestoredOrder_KeepsExplicitID() {
	ctx := context.Background()

	restored := suite.restoreTestOrder(42, "Keyboard", order.Active)
	suite.tracker.On("TrackAggregate", 42, restored).Once()

	err := suite.repository.Add(ctx, restored)
	suite.Require().NoError(err)

	suite.Equal(42, restored.ID())
	retrieved, err := suite.repository.Get(ctx, 42)
	suite.Require().NoError(err)
	suite.Equal("Keyboard", retrieved.Name())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	original := suite.newTestOrder("Monitor", order.Active)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int"), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("Monitor", retrieved.Name())
	suite.Equal(3, retrieved.Quantity())
	suite.True(retrieved.Price().Equal(decimal.RequireFromString("149.99")))
	suite.Equal(order.Active, retrieved.Status())
	suite.Equal(order.SystemActor, retrieved.CreatedBy())
	suite.Equal(order.SystemActor, retrieved.ModifiedBy())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 12345)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_SoftDeletedOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	deleted := suite.newTestOrder("Ghost", order.Deleted)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int"), deleted).Once()
	suite.Require().NoError(suite.repository.Add(ctx, deleted))

	// The row exists but the soft-deleted status hides it.
	suite.assertOrderCount(1)

	retrieved, err := suite.repository.Get(ctx, deleted.ID())
	suite.Nil(retrieved)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ExistingOrder_PersistsChanges() {
	ctx := context.Background()

	testOrder := suite.newTestOrder("Monitor", order.Draft)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int"), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := testOrder.Update("Monitor XL", 5, decimal.RequireFromString("199.50"), order.Inactive)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("Monitor XL", retrieved.Name())
	suite.Equal(5, retrieved.Quantity())
	suite.True(retrieved.Price().Equal(decimal.RequireFromString("199.50")))
	suite.Equal(order.Inactive, retrieved.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistent := suite.restoreTestOrder(999, "Phantom", order.Active)

	err := suite.repository.Update(ctx, nonExistent)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove_ExistingOrder_DeletesRow() {
	ctx := context.Background()

	testOrder := suite.newTestOrder("Monitor", order.Active)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int"), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Remove(ctx, testOrder))
	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemove_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistent := suite.restoreTestOrder(999, "Phantom", order.Active)

	err := suite.repository.Remove(ctx, nonExistent)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemoveDeletedBefore_PurgesOnlyStaleSoftDeletedRows() {
	ctx := context.Background()
	cutoff := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	stale := cutoff.AddDate(0, 0, -10)
	fresh := cutoff.AddDate(0, 0, 5)

	suite.seedRow(1, "Stale deleted", order.Deleted, stale)
	suite.seedRow(2, "Fresh deleted", order.Deleted, fresh)
	suite.seedRow(3, "Stale active", order.Active, stale)

	purged, err := suite.repository.RemoveDeletedBefore(ctx, cutoff)
	suite.Require().NoError(err)
	suite.Equal(int64(1), purged)

	// The fresh soft-deleted row and the active row survive.
	suite.assertOrderCount(2)

	_, err = suite.repository.Get(ctx, 3)
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRemoveDeletedBefore_NothingToPurge_ReturnsZero() {
	ctx := context.Background()

	suite.seedRow(1, "Active", order.Active, time.Now().UTC())

	purged, err := suite.repository.RemoveDeletedBefore(ctx, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Zero(purged)
	suite.assertOrderCount(1)
}

// newTestOrder creates a fresh order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) newTestOrder(name string, status order.Status) *order.Order {
	testOrder, err := order.NewOrder(name, 3, decimal.RequireFromString("149.99"), status)
	suite.Require().NoError(err)
	return testOrder
}

// restoreTestOrder reconstructs an order with an explicit identifier.
func (suite *OrderRepositoryIntegrationTestSuite) restoreTestOrder(id int, name string, status order.Status) *order.Order {
	stamp := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	testOrder, err := order.RestoreOrder(id, name, 3, decimal.RequireFromString("149.99"), status,
		stamp, order.SystemActor, stamp, order.SystemActor)
	suite.Require().NoError(err)
	return testOrder
}

// seedRow inserts a row directly, bypassing the repository, so modification
// stamps can be controlled exactly.
func (suite *OrderRepositoryIntegrationTestSuite) seedRow(id int, name string, status order.Status, modifiedAt time.Time) {
	err := suite.db.Exec(
		"INSERT INTO orders (id, name, quantity, price, status, created_at, created_by, modified_at, modified_by) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		id, name, 1, "10.00", status.String(),
		modifiedAt, order.SystemActor, modifiedAt, order.SystemActor,
	).Error
	suite.Require().NoError(err)
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
