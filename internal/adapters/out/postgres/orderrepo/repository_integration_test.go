package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"tailoring/internal/adapters/out/postgres/orderrepo"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
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
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newPlacedOrder(requesterID, tailorID kernel.UUID) *order.Order {
	payment, err := order.NewPayment(450000, 100000, order.DepositOnline)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), requesterID, tailorID,
		"sherwani",
		map[string]float64{"chest": 101.5, "waist": 86},
		payment,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	placed := suite.newPlacedOrder(kernel.NewUUID(), kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, placed))

	got, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)

	suite.True(placed.IsEqual(got))
	suite.Equal(order.Placed, got.Status())
	suite.Equal(placed.GarmentType(), got.GarmentType())
	suite.Equal(placed.Measurements(), got.Measurements())
	suite.Equal(placed.VerificationCode(), got.VerificationCode())
	suite.Equal(int64(450000), got.Payment().TotalAmount())
	suite.Equal(int64(100000), got.Payment().DepositAmount())
	suite.Equal(int64(350000), got.Payment().RemainingAmount())
	suite.Equal(order.DepositPending, got.Payment().DepositStatus())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateIDIsStorageError() {
	ctx := context.Background()
	placed := suite.newPlacedOrder(kernel.NewUUID(), kernel.NewUUID())

	suite.Require().NoError(suite.repository.Add(ctx, placed))

	err := suite.repository.Add(ctx, placed)
	suite.Require().ErrorIs(err, errs.ErrStorage)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusFrom_Succeeds() {
	ctx := context.Background()
	placed := suite.newPlacedOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, placed))

	suite.Require().NoError(placed.Accept())
	suite.Require().NoError(suite.repository.UpdateStatusFrom(ctx, placed, order.Placed))

	got, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, got.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusFrom_StaleExpectation() {
	ctx := context.Background()
	placed := suite.newPlacedOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, placed))

	// First transition wins.
	suite.Require().NoError(placed.Accept())
	suite.Require().NoError(suite.repository.UpdateStatusFrom(ctx, placed, order.Placed))

	// A second writer still expecting Placed must fail without touching the row.
	suite.Require().NoError(placed.Advance())
	err := suite.repository.UpdateStatusFrom(ctx, placed, order.Placed)
	suite.Require().ErrorIs(err, errs.ErrVersionConflict)

	got, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, got.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusFrom_MissingRow() {
	ctx := context.Background()
	ghost := suite.newPlacedOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(ghost.Accept())

	err := suite.repository.UpdateStatusFrom(ctx, ghost, order.Placed)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// Two goroutines race an accept against a reject on the same placed order.
// The conditional update guarantees exactly one of them lands.
func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusFrom_ConcurrentDecisions() {
	ctx := context.Background()
	placed := suite.newPlacedOrder(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, placed))

	accepting, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	rejecting, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(accepting.Accept())
	suite.Require().NoError(rejecting.Reject())

	var wg sync.WaitGroup
	results := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		results[0] = suite.repository.UpdateStatusFrom(ctx, accepting, order.Placed)
	}()
	go func() {
		defer wg.Done()
		results[1] = suite.repository.UpdateStatusFrom(ctx, rejecting, order.Placed)
	}()
	wg.Wait()

	var conflicts, wins int
	for _, resultErr := range results {
		switch {
		case resultErr == nil:
			wins++
		default:
			suite.Require().ErrorIs(resultErr, errs.ErrVersionConflict)
			conflicts++
		}
	}
	suite.Equal(1, wins, "exactly one decision must land")
	suite.Equal(1, conflicts, "the other decision must see a conflict")

	got, err := suite.repository.Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.True(got.Status() == order.Accepted || got.Status() == order.Rejected)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByRequester_NewestFirst() {
	ctx := context.Background()
	requesterID := kernel.NewUUID()

	first := suite.newPlacedOrder(requesterID, kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, first))
	time.Sleep(10 * time.Millisecond)
	second := suite.newPlacedOrder(requesterID, kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, second))

	// Unrelated requester noise.
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPlacedOrder(kernel.NewUUID(), kernel.NewUUID())))

	got, err := suite.repository.GetByRequester(ctx, requesterID)
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.True(second.IsEqual(got[0]))
	suite.True(first.IsEqual(got[1]))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByTailor_Filters() {
	ctx := context.Background()
	tailorID := kernel.NewUUID()

	placed := suite.newPlacedOrder(kernel.NewUUID(), tailorID)
	suite.Require().NoError(suite.repository.Add(ctx, placed))

	accepted := suite.newPlacedOrder(kernel.NewUUID(), tailorID)
	suite.Require().NoError(accepted.Accept())
	suite.Require().NoError(suite.repository.Add(ctx, accepted))

	cutting := suite.newPlacedOrder(kernel.NewUUID(), tailorID)
	suite.Require().NoError(cutting.Accept())
	suite.Require().NoError(cutting.Advance())
	suite.Require().NoError(suite.repository.Add(ctx, cutting))

	rejected := suite.newPlacedOrder(kernel.NewUUID(), tailorID)
	suite.Require().NoError(rejected.Reject())
	suite.Require().NoError(suite.repository.Add(ctx, rejected))

	all, err := suite.repository.GetByTailor(ctx, tailorID, order.FilterAllOrders())
	suite.Require().NoError(err)
	suite.Len(all, 4)

	ongoing, err := suite.repository.GetByTailor(ctx, tailorID, order.FilterOngoingOrders())
	suite.Require().NoError(err)
	suite.Len(ongoing, 2)
	for _, o := range ongoing {
		suite.True(o.Status().IsOngoing())
	}

	exact, err := order.FilterByStatus(order.Accepted)
	suite.Require().NoError(err)
	onlyAccepted, err := suite.repository.GetByTailor(ctx, tailorID, exact)
	suite.Require().NoError(err)
	suite.Require().Len(onlyAccepted, 1)
	suite.True(accepted.IsEqual(onlyAccepted[0]))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
