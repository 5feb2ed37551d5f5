package services

import (
	"testing"
	"time"

	"courtside/internal/database"
	"courtside/internal/models"
	"courtside/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestAnalyticsService(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceSuite))
}

type AnalyticsServiceSuite struct {
	suite.Suite
	db      *database.DB
	metrics *MockMetricsRecorder
	service AnalyticsServiceInterface
}

func (s *AnalyticsServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.metrics = NewMockMetricsRecorder()
	s.service = NewAnalyticsService(repositories.NewSnapshotRepository(s.db.DB), s.metrics)
}

func (s *AnalyticsServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AnalyticsServiceSuite) TestGetRevenueTrend() {
	client := database.CreateTestClient(s.T(), s.db, "Smith Family")
	anna := database.CreateTestPlayer(s.T(), s.db, client.ID, "Anna Smith")
	database.CreateTestSession(s.T(), s.db, "2026-01-10", "100.00", anna.ID)
	database.CreateTestSession(s.T(), s.db, "2026-02-03", "100.00", anna.ID)
	database.CreateTestSession(s.T(), s.db, "2026-02-17", "100.00", anna.ID)
	database.CreateTestPayment(s.T(), s.db, client.ID, "2026-02-10", "150.00")

	points, err := s.service.GetRevenueTrend("2026-01", "2026-03")
	s.Require().NoError(err)
	s.Require().Len(points, 3)

	s.Equal("2026-01", points[0].Month)
	s.True(points[0].Fees.Equal(decimal.RequireFromString("100.00")))

	s.Equal("2026-02", points[1].Month)
	s.True(points[1].Fees.Equal(decimal.RequireFromString("200.00")))
	s.True(points[1].Collected.Equal(decimal.RequireFromString("150.00")))
	s.True(points[1].NetBilled.Equal(decimal.RequireFromString("200.00")))

	s.Equal("2026-03", points[2].Month)
	s.True(points[2].Fees.IsZero())
}

func (s *AnalyticsServiceSuite) TestGetRevenueTrend_CancelledSessionCredits() {
	client := database.CreateTestClient(s.T(), s.db, "Smith Family")
	anna := database.CreateTestPlayer(s.T(), s.db, client.ID, "Anna Smith")
	session := database.CreateTestSession(s.T(), s.db, "2026-02-03", "100.00", anna.ID)

	sessions := repositories.NewSessionRepository(s.db.DB)
	s.Require().NoError(sessions.SetCancelled(session.ID, true))

	points, err := s.service.GetRevenueTrend("2026-02", "2026-02")
	s.Require().NoError(err)
	s.Require().Len(points, 1)

	s.True(points[0].Fees.IsZero())
	s.True(points[0].Credits.Equal(decimal.RequireFromString("100.00")))
	s.True(points[0].NetBilled.Equal(decimal.RequireFromString("-100.00")))
}

func (s *AnalyticsServiceSuite) TestGetRevenueTrend_InvalidRange() {
	_, err := s.service.GetRevenueTrend("2026-03", "2026-01")
	s.ErrorIs(err, ErrInvalidMonthRange)

	_, err = s.service.GetRevenueTrend("jan", "2026-03")
	s.ErrorIs(err, ErrInvalidMonth)

	_, err = s.service.GetRevenueTrend("2000-01", "2026-01")
	s.ErrorIs(err, ErrInvalidMonthRange)
}

func (s *AnalyticsServiceSuite) TestGetSessionMix() {
	client := database.CreateTestClient(s.T(), s.db, "Smith Family")
	anna := database.CreateTestPlayer(s.T(), s.db, client.ID, "Anna Smith")
	database.CreateTestSession(s.T(), s.db, "2026-02-03", "150.00", anna.ID)
	database.CreateTestSession(s.T(), s.db, "2026-02-04", "150.00", anna.ID)

	mix, err := s.service.GetSessionMix("2026-02")
	s.Require().NoError(err)
	s.Require().Len(mix, 3)

	byType := map[string]models.SessionMixItem{}
	for _, item := range mix {
		byType[item.Type] = item
	}
	s.Equal(2, byType[models.SessionTypeGroup].SessionCount)
	s.True(byType[models.SessionTypeGroup].Revenue.Equal(decimal.RequireFromString("300.00")))
	s.Zero(byType[models.SessionTypePrivate].SessionCount)
}

func (s *AnalyticsServiceSuite) TestGetClientHealth() {
	smith := database.CreateTestClient(s.T(), s.db, "Smith Family")
	anna := database.CreateTestPlayer(s.T(), s.db, smith.ID, "Anna Smith")
	database.CreateTestSession(s.T(), s.db, "2026-02-03", "100.00", anna.ID)

	lead := &models.Client{Name: "Possible Family", Status: models.ClientStatusLead}
	s.Require().NoError(repositories.NewClientRepository(s.db.DB).Create(lead))

	// pin "now" so the balance lookup month is stable
	svc := &analyticsService{
		snapshotRepo: repositories.NewSnapshotRepository(s.db.DB),
		metrics:      s.metrics,
		now: func() time.Time {
			return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
		},
	}

	health, err := svc.GetClientHealth()
	s.Require().NoError(err)

	s.Equal(1, health.ActiveCount)
	s.Equal(1, health.LeadCount)
	s.Equal(1, health.WithBalanceOwed)
	s.Zero(health.WithCreditOnFile)
	s.Equal(float64(1), s.metrics.Gauges["active_clients"])
}

func (s *AnalyticsServiceSuite) TestGetPeakHours() {
	client := database.CreateTestClient(s.T(), s.db, "Smith Family")
	anna := database.CreateTestPlayer(s.T(), s.db, client.ID, "Anna Smith")
	// 2026-02-03 is a Tuesday
	database.CreateTestSession(s.T(), s.db, "2026-02-03", "100.00", anna.ID)
	database.CreateTestSession(s.T(), s.db, "2026-02-10", "100.00", anna.ID)

	cells, err := s.service.GetPeakHours("2026-02", "2026-02")
	s.Require().NoError(err)
	s.Require().Len(cells, 1)

	s.Equal(2, cells[0].Weekday)
	s.Equal(16, cells[0].Hour)
	s.Equal(2, cells[0].SessionCount)
}

func (s *AnalyticsServiceSuite) TestGetPeakHours_SkipsRainedOut() {
	client := database.CreateTestClient(s.T(), s.db, "Smith Family")
	anna := database.CreateTestPlayer(s.T(), s.db, client.ID, "Anna Smith")
	database.CreateTestSession(s.T(), s.db, "2026-02-03", "100.00", anna.ID)

	events := repositories.NewDayEventRepository(s.db.DB)
	s.Require().NoError(events.Create(&models.DayEvent{Date: "2026-02-03", Kind: models.DayEventKindRain}))

	cells, err := s.service.GetPeakHours("2026-02", "2026-02")
	s.Require().NoError(err)
	s.Empty(cells)
}
