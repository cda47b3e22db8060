package pricerepo_test

import (
	"context"
	"testing"
	"time"

	"distribution/internal/adapters/out/postgres/pricerepo"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PriceRepositoryTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	repo      *pricerepo.GormPriceRepository
}

func (suite *PriceRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&pricerepo.PriceDTO{})
	suite.Require().NoError(err)

	suite.repo = pricerepo.NewGormPriceRepository(db)
}

func (suite *PriceRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *PriceRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE prices CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *PriceRepositoryTestSuite) addPrice(productType, region, location string, perUnit int64) {
	entry, err := pricing.NewPrice(kernel.NewUUID(), productType, region, location, perUnit)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), entry))
}

func (suite *PriceRepositoryTestSuite) TestResolveMostSpecificWins() {
	ctx := context.Background()
	suite.addPrice("PCB40", "North", "Plant A", 1_500_000)
	suite.addPrice("PCB40", "North", "", 1_400_000)
	suite.addPrice("PCB40", "", "", 1_300_000)

	perUnit, found, err := suite.repo.ResolveUnitPrice(ctx, "PCB40", "North", "Plant A")
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(int64(1_500_000), perUnit)
}

func (suite *PriceRepositoryTestSuite) TestResolveFallsBackToRegion() {
	ctx := context.Background()
	suite.addPrice("PCB40", "North", "Plant A", 1_500_000)
	suite.addPrice("PCB40", "North", "", 1_400_000)
	suite.addPrice("PCB40", "", "", 1_300_000)

	perUnit, found, err := suite.repo.ResolveUnitPrice(ctx, "PCB40", "North", "Plant B")
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(int64(1_400_000), perUnit)
}

func (suite *PriceRepositoryTestSuite) TestResolveFallsBackToTypeOnly() {
	ctx := context.Background()
	suite.addPrice("PCB40", "North", "", 1_400_000)
	suite.addPrice("PCB40", "", "", 1_300_000)

	perUnit, found, err := suite.repo.ResolveUnitPrice(ctx, "PCB40", "South", "Depot 7")
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(int64(1_300_000), perUnit)
}

func (suite *PriceRepositoryTestSuite) TestResolveUnknownTypeNotFound() {
	ctx := context.Background()
	suite.addPrice("PCB40", "", "", 1_300_000)

	perUnit, found, err := suite.repo.ResolveUnitPrice(ctx, "SAND", "North", "Plant A")
	suite.Require().NoError(err)
	suite.False(found)
	suite.Equal(int64(0), perUnit)
}

func (suite *PriceRepositoryTestSuite) TestAddRejectsDuplicateScope() {
	suite.addPrice("PCB40", "North", "Plant A", 1_500_000)

	duplicate, err := pricing.NewPrice(kernel.NewUUID(), "PCB40", "North", "Plant A", 1_600_000)
	suite.Require().NoError(err)
	suite.Require().Error(suite.repo.Add(context.Background(), duplicate))
}

func TestPriceRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PriceRepositoryTestSuite))
}
