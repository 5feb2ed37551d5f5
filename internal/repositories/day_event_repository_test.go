package repositories

import (
	"testing"

	"courtside/internal/database"
	"courtside/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestDayEventRepository(t *testing.T) {
	suite.Run(t, new(DayEventRepositorySuite))
}

type DayEventRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo DayEventRepositoryInterface
}

func (s *DayEventRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewDayEventRepository(s.db.DB)
}

func (s *DayEventRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *DayEventRepositorySuite) TestDayEventRepository_Create() {
	event := &models.DayEvent{
		Date: "2026-02-14",
		Kind: models.DayEventKindRain,
		Note: "heavy rain all day",
	}

	err := s.repo.Create(event)
	s.NoError(err)
	s.NotEqual(uuid.Nil, event.ID)
}

func (s *DayEventRepositorySuite) TestDayEventRepository_Create_OnePerDay() {
	err := s.repo.Create(&models.DayEvent{Date: "2026-02-14", Kind: models.DayEventKindRain})
	s.NoError(err)

	err = s.repo.Create(&models.DayEvent{Date: "2026-02-14", Kind: models.DayEventKindClosure})
	s.Equal(ErrDayEventDuplicate, err)
}

func (s *DayEventRepositorySuite) TestDayEventRepository_Create_RejectsBadKind() {
	err := s.repo.Create(&models.DayEvent{Date: "2026-02-14", Kind: "snow"})
	s.ErrorIs(err, models.ErrInvalidDayEventKind)
}

func (s *DayEventRepositorySuite) TestDayEventRepository_GetByDate() {
	s.NoError(s.repo.Create(&models.DayEvent{Date: "2026-02-14", Kind: models.DayEventKindRain}))

	event, err := s.repo.GetByDate("2026-02-14")
	s.NoError(err)
	s.Equal(models.DayEventKindRain, event.Kind)

	_, err = s.repo.GetByDate("2026-02-15")
	s.Equal(ErrDayEventNotFound, err)
}

func (s *DayEventRepositorySuite) TestDayEventRepository_GetByMonth() {
	s.NoError(s.repo.Create(&models.DayEvent{Date: "2026-02-14", Kind: models.DayEventKindRain}))
	s.NoError(s.repo.Create(&models.DayEvent{Date: "2026-02-20", Kind: models.DayEventKindClosure}))
	s.NoError(s.repo.Create(&models.DayEvent{Date: "2026-03-01", Kind: models.DayEventKindRain}))

	events, err := s.repo.GetByMonth("2026-02")
	s.NoError(err)
	s.Len(events, 2)
	s.Equal("2026-02-14", events[0].Date)
	s.Equal("2026-02-20", events[1].Date)
}

func (s *DayEventRepositorySuite) TestDayEventRepository_Delete() {
	event := &models.DayEvent{Date: "2026-02-14", Kind: models.DayEventKindRain}
	s.NoError(s.repo.Create(event))

	s.NoError(s.repo.Delete(event.ID))

	_, err := s.repo.GetByDate("2026-02-14")
	s.Equal(ErrDayEventNotFound, err)

	// the date is free again once the event is removed
	s.NoError(s.repo.Create(&models.DayEvent{Date: "2026-02-14", Kind: models.DayEventKindClosure}))
}
