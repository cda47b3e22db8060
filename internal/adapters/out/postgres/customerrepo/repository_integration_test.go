package customerrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"distribution/internal/adapters/out/postgres"
	"distribution/internal/adapters/out/postgres/customerrepo"
	"distribution/internal/core/domain/model/customer"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CustomerRepositoryTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *CustomerRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	err = db.AutoMigrate(&customerrepo.CustomerDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *CustomerRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CustomerRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *CustomerRepositoryTestSuite) newCustomer(name string, creditLimit int64) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), name, "0312345678", "12 Dock Rd",
		"555-0101", "ap@npp.example", creditLimit)
	suite.Require().NoError(err)
	return c
}

func (suite *CustomerRepositoryTestSuite) saveCustomer(c *customer.Customer) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *CustomerRepositoryTestSuite) TestAddAndGet() {
	ctx := context.Background()
	saved := suite.newCustomer("NPP", 200_000_000)
	suite.saveCustomer(saved)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	loaded, err := uow.CustomerRepository().Get(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(saved))
	suite.Equal("NPP", loaded.Name())
	suite.Equal(int64(200_000_000), loaded.CreditLimit())
	suite.Equal(int64(0), loaded.CreditUsed())
}

func (suite *CustomerRepositoryTestSuite) TestGetByName() {
	ctx := context.Background()
	saved := suite.newCustomer("Harbor Build Co", 50_000_000)
	suite.saveCustomer(saved)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	loaded, err := uow.CustomerRepository().GetByName(ctx, "Harbor Build Co")
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(saved.ID()))

	_, err = uow.CustomerRepository().GetByName(ctx, "missing")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryTestSuite) TestUpdatePersistsReleasedCredit() {
	ctx := context.Background()
	saved := suite.newCustomer("NPP", 200_000_000)
	suite.Require().True(saved.Reserve(168_000_000))
	suite.saveCustomer(saved)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.CustomerRepository().GetForUpdate(ctx, saved.ID())
	suite.Require().NoError(err)
	loaded.Release(168_000_000)
	suite.Require().NoError(uow.CustomerRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	suite.Require().NoError(check.Begin(ctx))
	defer func() { _ = check.Rollback(ctx) }()

	reloaded, err := check.CustomerRepository().Get(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(0), reloaded.CreditUsed())
}

// Two concurrent reservations against the same credit line must serialize
// on the row lock: with a limit covering only one of them, exactly one
// succeeds.
func (suite *CustomerRepositoryTestSuite) TestConcurrentReservationsSerialize() {
	ctx := context.Background()
	saved := suite.newCustomer("NPP", 100_000_000)
	suite.saveCustomer(saved)

	reserve := func(amount int64) bool {
		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))
		defer func() { _ = uow.Rollback(ctx) }()

		repo := uow.CustomerRepository()
		loaded, err := repo.GetForUpdate(ctx, saved.ID())
		suite.Require().NoError(err)

		if !loaded.Reserve(amount) {
			return false
		}
		suite.Require().NoError(repo.Update(ctx, loaded))
		suite.Require().NoError(uow.Commit(ctx))
		return true
	}

	var wg sync.WaitGroup
	results := make([]bool, 2)
	for i := range results {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			results[slot] = reserve(80_000_000)
		}(i)
	}
	wg.Wait()

	granted := 0
	for _, ok := range results {
		if ok {
			granted++
		}
	}
	suite.Equal(1, granted)

	check := suite.factory.Create()
	suite.Require().NoError(check.Begin(ctx))
	defer func() { _ = check.Rollback(ctx) }()

	reloaded, err := check.CustomerRepository().Get(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(80_000_000), reloaded.CreditUsed())
}

func TestCustomerRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CustomerRepositoryTestSuite))
}
