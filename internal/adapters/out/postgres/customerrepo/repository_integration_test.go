package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/customerrepo"
	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}, &customerrepo.AddressDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers, addresses").Error)

	suite.repository = customerrepo.NewGormCustomerRepository(suite.db)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAddAndGet_Unassigned() {
	ctx := context.Background()
	c, err := customer.NewCustomer(kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, c))

	got, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(c.ID(), got.ID())
	suite.Nil(got.AssignedWorker())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_ReassignmentOverwritesWorker() {
	ctx := context.Background()
	c, err := customer.NewCustomer(kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, c))

	first, second := kernel.NewUUID(), kernel.NewUUID()
	suite.Require().NoError(c.AssignWorker(first))
	suite.Require().NoError(suite.repository.Update(ctx, c))
	suite.Require().NoError(c.AssignWorker(second))
	suite.Require().NoError(suite.repository.Update(ctx, c))

	got, err := suite.repository.GetForUpdate(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(got.IsAssignedTo(second))
	suite.False(got.IsAssignedTo(first))
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	c, err := customer.NewCustomer(kernel.NewUUID())
	suite.Require().NoError(err)

	err = suite.repository.Update(context.Background(), c)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAddresses_ListedOldestFirst() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newer, err := customer.NewAddress(kernel.NewUUID(), customerID, "2 Mall Road", "Lahore", "", true, base.Add(time.Hour))
	suite.Require().NoError(err)
	older, err := customer.NewAddress(kernel.NewUUID(), customerID, "1 Canal Bank", "Lahore", "", false, base)
	suite.Require().NoError(err)
	foreign, err := customer.NewAddress(kernel.NewUUID(), kernel.NewUUID(), "9 Clifton", "Karachi", "", true, base)
	suite.Require().NoError(err)

	for _, a := range []*customer.Address{newer, older, foreign} {
		suite.Require().NoError(suite.repository.AddAddress(ctx, a))
	}

	list, err := suite.repository.ListAddresses(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal(older.ID(), list[0].ID())
	suite.Equal(newer.ID(), list[1].ID())
	suite.Equal(customer.DefaultCountry, list[0].Country())
	suite.Equal(newer.ID(), customer.PreferredAddress(list).ID())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetAddress() {
	ctx := context.Background()
	a, err := customer.NewAddress(kernel.NewUUID(), kernel.NewUUID(), "1 Canal Bank", "Lahore", "Pakistan", false, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddAddress(ctx, a))

	got, err := suite.repository.GetAddress(ctx, a.ID())
	suite.Require().NoError(err)
	suite.True(got.BelongsTo(a.CustomerID()))
	suite.Equal("Lahore", got.City())

	_, err = suite.repository.GetAddress(ctx, kernel.NewUUID())
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("address_id", notFound.ParamName)
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
