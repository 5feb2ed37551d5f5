package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"courtside/internal/billing"
	"courtside/internal/models"
	"courtside/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxTrendMonths caps dashboard range queries so a typo cannot ask for
// centuries of buckets
const maxTrendMonths = 36

var ErrInvalidMonthRange = errors.New("month range is invalid or too wide")

type analyticsService struct {
	snapshotRepo repositories.SnapshotRepositoryInterface
	metrics      MetricsRecorderInterface
	now          func() time.Time
}

func NewAnalyticsService(
	snapshotRepo repositories.SnapshotRepositoryInterface,
	metrics MetricsRecorderInterface,
) AnalyticsServiceInterface {
	return &analyticsService{
		snapshotRepo: snapshotRepo,
		metrics:      metrics,
		now:          time.Now,
	}
}

func (s *analyticsService) GetRevenueTrend(fromMonth, toMonth string) ([]models.RevenueTrendPoint, error) {
	months, err := monthRange(fromMonth, toMonth)
	if err != nil {
		return nil, err
	}

	snap, err := s.loadSnapshot("revenue trend")
	if err != nil {
		return nil, err
	}

	voided := snap.VoidedDates()
	points := make([]models.RevenueTrendPoint, 0, len(months))

	for _, month := range months {
		point := models.RevenueTrendPoint{
			Month:     month,
			Fees:      decimal.Zero,
			Credits:   decimal.Zero,
			Collected: decimal.Zero,
		}

		for ci := range snap.Clients {
			client := &snap.Clients[ci]
			playerIDs := clientPlayerSet(snap, client.ID)

			for si := range snap.Sessions {
				session := &snap.Sessions[si]
				if session.Month() != month {
					continue
				}
				c := billing.Classify(session, playerIDs, voided)
				point.Fees = point.Fees.Add(c.Charge)
				point.Credits = point.Credits.Add(c.Credit)
			}

			for pi := range client.Payments {
				payment := &client.Payments[pi]
				if len(payment.Date) >= 7 && payment.Date[:7] == month {
					point.Collected = point.Collected.Add(payment.Amount)
				}
			}
		}

		point.NetBilled = point.Fees.Sub(point.Credits)
		points = append(points, point)
	}

	s.metrics.IncrementCounter("analytics_query", map[string]string{"report": "revenue_trend"})

	return points, nil
}

func (s *analyticsService) GetSessionMix(month string) ([]models.SessionMixItem, error) {
	if !models.IsValidMonth(month) {
		return nil, ErrInvalidMonth
	}

	snap, err := s.loadSnapshot("session mix")
	if err != nil {
		return nil, err
	}

	voided := snap.VoidedDates()

	counts := map[string]int{}
	revenue := map[string]decimal.Decimal{
		models.SessionTypePrivate: decimal.Zero,
		models.SessionTypeSemi:    decimal.Zero,
		models.SessionTypeGroup:   decimal.Zero,
	}

	for si := range snap.Sessions {
		session := &snap.Sessions[si]
		if session.Month() != month {
			continue
		}
		counts[session.Type]++

		for ci := range snap.Clients {
			playerIDs := clientPlayerSet(snap, snap.Clients[ci].ID)
			c := billing.Classify(session, playerIDs, voided)
			revenue[session.Type] = revenue[session.Type].Add(c.Charge)
		}
	}

	// stable type order for the dashboard
	mix := make([]models.SessionMixItem, 0, 3)
	for _, sessionType := range []string{models.SessionTypePrivate, models.SessionTypeSemi, models.SessionTypeGroup} {
		mix = append(mix, models.SessionMixItem{
			Type:         sessionType,
			SessionCount: counts[sessionType],
			Revenue:      revenue[sessionType],
		})
	}

	s.metrics.IncrementCounter("analytics_query", map[string]string{"report": "session_mix"})

	return mix, nil
}

func (s *analyticsService) GetClientHealth() (*models.ClientHealth, error) {
	snap, err := s.loadSnapshot("client health")
	if err != nil {
		return nil, err
	}

	now := s.now()
	currentMonth := now.Format(models.MonthLayout)
	report := billing.BuildAccountsReport(snap, currentMonth, "")

	closingByID := make(map[uuid.UUID]decimal.Decimal, len(report.Rows))
	for _, row := range report.Rows {
		closingByID[row.ClientID] = row.ClosingBalance
	}

	health := &models.ClientHealth{GeneratedAt: now}
	for i := range snap.Clients {
		client := &snap.Clients[i]
		switch client.Status {
		case models.ClientStatusActive:
			health.ActiveCount++
		case models.ClientStatusInactive:
			health.InactiveCount++
		case models.ClientStatusLead:
			health.LeadCount++
		}

		closing, ok := closingByID[client.ID]
		if !ok {
			continue
		}
		if closing.IsPositive() {
			health.WithBalanceOwed++
		} else if closing.IsNegative() {
			health.WithCreditOnFile++
		}
	}

	s.metrics.RecordGauge("active_clients", float64(health.ActiveCount), nil)
	s.metrics.IncrementCounter("analytics_query", map[string]string{"report": "client_health"})

	return health, nil
}

func (s *analyticsService) GetPeakHours(fromMonth, toMonth string) ([]models.PeakHourCell, error) {
	months, err := monthRange(fromMonth, toMonth)
	if err != nil {
		return nil, err
	}
	inRange := make(map[string]struct{}, len(months))
	for _, m := range months {
		inRange[m] = struct{}{}
	}

	snap, err := s.loadSnapshot("peak hours")
	if err != nil {
		return nil, err
	}

	voided := snap.VoidedDates()
	counts := map[[2]int]int{}

	for si := range snap.Sessions {
		session := &snap.Sessions[si]
		if _, ok := inRange[session.Month()]; !ok {
			continue
		}
		if _, rainedOut := voided[session.Date]; rainedOut || session.Cancelled {
			continue
		}

		day, err := time.Parse(models.DateLayout, session.Date)
		if err != nil {
			continue
		}
		start, err := time.Parse(models.TimeLayout, session.StartTime)
		if err != nil {
			continue
		}
		counts[[2]int{int(day.Weekday()), start.Hour()}]++
	}

	cells := make([]models.PeakHourCell, 0, len(counts))
	for weekday := 0; weekday < 7; weekday++ {
		for hour := 0; hour < 24; hour++ {
			if n := counts[[2]int{weekday, hour}]; n > 0 {
				cells = append(cells, models.PeakHourCell{
					Weekday:      weekday,
					Hour:         hour,
					SessionCount: n,
				})
			}
		}
	}

	s.metrics.IncrementCounter("analytics_query", map[string]string{"report": "peak_hours"})

	return cells, nil
}

func (s *analyticsService) loadSnapshot(report string) (*models.Snapshot, error) {
	snap, err := s.snapshotRepo.Load()
	if err != nil {
		slog.Error("failed to load snapshot for analytics",
			"report", report,
			"error", err)
		return nil, fmt.Errorf("failed to load billing data: %w", err)
	}
	return snap, nil
}

// clientPlayerSet returns the id set of players linked to a client
func clientPlayerSet(snap *models.Snapshot, clientID uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{})
	for _, p := range snap.Players {
		if p.BelongsTo(clientID) {
			set[p.ID] = struct{}{}
		}
	}
	return set
}

// monthRange expands an inclusive "YYYY-MM" range into its month list
func monthRange(fromMonth, toMonth string) ([]string, error) {
	if !models.IsValidMonth(fromMonth) || !models.IsValidMonth(toMonth) {
		return nil, ErrInvalidMonth
	}

	from, _ := time.Parse(models.MonthLayout, fromMonth)
	to, _ := time.Parse(models.MonthLayout, toMonth)
	if from.After(to) {
		return nil, ErrInvalidMonthRange
	}

	var months []string
	for cursor := from; !cursor.After(to); cursor = cursor.AddDate(0, 1, 0) {
		months = append(months, cursor.Format(models.MonthLayout))
		if len(months) > maxTrendMonths {
			return nil, ErrInvalidMonthRange
		}
	}
	return months, nil
}
