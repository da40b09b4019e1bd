package queries_test

import (
	"context"
	"testing"
	"time"

	"tailoring/internal/adapters/out/postgres/orderrepo"
	"tailoring/internal/core/application/usecases/queries"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetTailorOrdersQueryHandlerIntegrationTestSuite exercises the tailor work
// queue read model against PostgreSQL, in particular which rows expose the
// delivery verification code.
type GetTailorOrdersQueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *GetTailorOrdersQueryHandlerIntegrationTestSuite) SetupSuite() {
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

func (suite *GetTailorOrdersQueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *GetTailorOrdersQueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetTailorOrdersQueryHandlerIntegrationTestSuite) newOrderInStatus(
	tailorID kernel.UUID,
	target order.Status,
) *order.Order {
	payment, err := order.NewPayment(300000, 90000, order.DepositCash)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), tailorID,
		"kurta",
		map[string]float64{"chest": 96},
		payment,
	)
	suite.Require().NoError(err)

	if target == order.Placed {
		return aggregate
	}

	suite.Require().NoError(aggregate.Accept())
	for aggregate.Status() != target {
		suite.Require().NoError(aggregate.Advance())
	}
	return aggregate
}

func (suite *GetTailorOrdersQueryHandlerIntegrationTestSuite) TestHandle_VerificationCodeWithheldUntilReady() {
	ctx := context.Background()
	tailorID := kernel.NewUUID()

	stitching := suite.newOrderInStatus(tailorID, order.Stitching)
	suite.Require().NoError(suite.repository.Add(ctx, stitching))

	ready := suite.newOrderInStatus(tailorID, order.Ready)
	suite.Require().NoError(suite.repository.Add(ctx, ready))

	handler := queries.NewGetTailorOrdersQueryHandler(suite.db)
	query, err := queries.NewGetTailorOrdersQuery(tailorID, order.FilterAllOrders())
	suite.Require().NoError(err)

	responses, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(responses, 2)

	byID := make(map[string]queries.OrderResponse, len(responses))
	for _, resp := range responses {
		byID[resp.ID.String()] = resp
	}

	suite.Empty(byID[stitching.ID().String()].VerificationCode,
		"the code must stay hidden while the garment is in progress")
	suite.Equal(ready.VerificationCode(), byID[ready.ID().String()].VerificationCode)
}

func (suite *GetTailorOrdersQueryHandlerIntegrationTestSuite) TestHandle_RequesterReadStillCarriesCode() {
	ctx := context.Background()

	placed := suite.newOrderInStatus(kernel.NewUUID(), order.Placed)
	suite.Require().NoError(suite.repository.Add(ctx, placed))

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(placed.ID())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(placed.VerificationCode(), resp.VerificationCode)
}

func TestGetTailorOrdersQueryHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(GetTailorOrdersQueryHandlerIntegrationTestSuite))
}
