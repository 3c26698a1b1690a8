package driverrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"marketplace/internal/adapters/out/postgres/driverrepo"
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/pkg/errs"
)

// DriverRepositoryIntegrationTestSuite exercises GormDriverRepository against
// a real PostgreSQL container.
type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&driverrepo.DriverDTO{}))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers").Error)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsConflict() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver("D1")))

	err := suite.repository.Add(ctx, suite.newDriver("D1"))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_RoundTripsRatingAccumulator() {
	ctx := context.Background()

	restored, err := driver.RestoreDriver("D1", "Ravi", driver.Busy, 13, 3, 7)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, restored))

	retrieved, err := suite.repository.Get(ctx, "D1")
	suite.Require().NoError(err)

	suite.Equal("Ravi", retrieved.Name())
	suite.Equal(driver.Busy, retrieved.Status())
	suite.InDelta(13.0/3.0, retrieved.Rating(), 0.0001)
	suite.Equal(3, retrieved.RatedCount())
	suite.Equal(7, retrieved.OrderCount())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NonExistentDriver_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), "ghost")

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestMutate_StatusAndCountersPersist() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver("D1")))

	suite.Require().NoError(suite.repository.Mutate(ctx, "D1", func(d *driver.Driver) error {
		if err := d.MarkBusy(); err != nil {
			return err
		}
		d.IncrementOrderCount()
		return d.AddRating(4)
	}))

	retrieved, err := suite.repository.Get(ctx, "D1")
	suite.Require().NoError(err)
	suite.Equal(driver.Busy, retrieved.Status())
	suite.Equal(1, retrieved.OrderCount())
	suite.InDelta(4.0, retrieved.Rating(), 0.0001)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestMutate_OnlyOneConcurrentMarkBusyWins() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver("D1")))

	const workers = 8
	var wg sync.WaitGroup
	succeeded := make(chan struct{}, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := suite.repository.Mutate(ctx, "D1", func(d *driver.Driver) error {
				return d.MarkBusy()
			})
			if err == nil {
				succeeded <- struct{}{}
			}
		}()
	}

	wg.Wait()
	close(succeeded)

	wins := 0
	for range succeeded {
		wins++
	}
	suite.Equal(1, wins, "the row lock must serialize competing reservations")
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAll_ReturnsInRegistrationOrder() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver("D1")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver("D2")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver("D3")))

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(all, 3)
	suite.Equal("D1", all[0].ID())
	suite.Equal("D2", all[1].ID())
	suite.Equal("D3", all[2].ID())
}

func (suite *DriverRepositoryIntegrationTestSuite) newDriver(id string) *driver.Driver {
	d, err := driver.NewDriver(id, "Driver "+id)
	suite.Require().NoError(err)
	return d
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
