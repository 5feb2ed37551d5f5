package billing

import (
	"testing"

	"courtside/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RollupTestSuite struct {
	suite.Suite
	smith models.Client
	jones models.Client
	alice models.Player
	ben   models.Player
	cara  models.Player
}

func TestRollupSuite(t *testing.T) {
	suite.Run(t, new(RollupTestSuite))
}

func (s *RollupTestSuite) SetupTest() {
	s.smith = newClient("Smith")
	s.jones = newClient("Jones")
	s.alice = newPlayer("Alice", s.smith.ID)
	s.ben = newPlayer("Ben", s.smith.ID)
	s.cara = newPlayer("Cara", s.jones.ID)
}

func (s *RollupTestSuite) snapshot(sessions []models.TrainingSession, events []models.DayEvent) *models.Snapshot {
	return &models.Snapshot{
		Clients:   []models.Client{s.smith, s.jones},
		Players:   []models.Player{s.alice, s.ben, s.cara},
		Sessions:  sessions,
		DayEvents: events,
	}
}

func (s *RollupTestSuite) findRow(report models.AccountsReport, name string) models.AccountsReportRow {
	for _, row := range report.Rows {
		if row.ClientName == name {
			return row
		}
	}
	s.FailNow("row not found", name)
	return models.AccountsReportRow{}
}

func (s *RollupTestSuite) TestClosingBalanceFormula() {
	prior := newSession("2024-02-10", "16:00", "17:00", models.SessionTypePrivate, 100.00, s.alice.ID)
	fee := newSession("2024-03-05", "16:00", "17:00", models.SessionTypeGroup, 90.00, s.alice.ID, s.ben.ID)
	cancelled := newSession("2024-03-08", "09:00", "10:00", models.SessionTypePrivate, 60.00, s.ben.ID)
	cancelled.Cancelled = true
	s.smith.Payments = []models.Payment{newPayment(s.smith.ID, "2024-03-12", 50.00)}
	snap := s.snapshot([]models.TrainingSession{prior, fee, cancelled}, nil)

	report := BuildAccountsReport(snap, "2024-03", "")
	row := s.findRow(report, "Smith")

	s.True(row.OpeningBalance.Equal(decimal.NewFromFloat(100.00)))
	s.Equal(2, row.SessionCount)
	s.True(row.FeeTotal.Equal(decimal.NewFromFloat(180.00)))
	s.True(row.CreditTotal.Equal(decimal.NewFromFloat(60.00)))
	s.True(row.PaymentTotal.Equal(decimal.NewFromFloat(50.00)))
	// closing = 100 + 180 - 60 - 50
	s.True(row.ClosingBalance.Equal(decimal.NewFromFloat(170.00)))
}

func (s *RollupTestSuite) TestEmptyClientsStillGetRows() {
	report := BuildAccountsReport(s.snapshot(nil, nil), "2024-03", "")

	s.Len(report.Rows, 2)
	for _, row := range report.Rows {
		s.True(row.ClosingBalance.IsZero())
	}
}

func (s *RollupTestSuite) TestRowsSortedByClosingBalanceDescending() {
	bigDebt := newSession("2024-03-05", "16:00", "17:00", models.SessionTypePrivate, 500.00, s.cara.ID)
	smallDebt := newSession("2024-03-05", "10:00", "11:00", models.SessionTypePrivate, 50.00, s.alice.ID)
	snap := s.snapshot([]models.TrainingSession{bigDebt, smallDebt}, nil)

	report := BuildAccountsReport(snap, "2024-03", "")

	s.Require().Len(report.Rows, 2)
	s.Equal("Jones", report.Rows[0].ClientName)
	s.Equal("Smith", report.Rows[1].ClientName)
}

func (s *RollupTestSuite) TestTotalsSumEveryColumn() {
	f1 := newSession("2024-03-05", "16:00", "17:00", models.SessionTypeGroup, 90.00, s.alice.ID, s.cara.ID)
	s.smith.Payments = []models.Payment{newPayment(s.smith.ID, "2024-03-12", 40.00)}
	s.jones.Payments = []models.Payment{newPayment(s.jones.ID, "2024-03-13", 30.00)}
	snap := s.snapshot([]models.TrainingSession{f1}, nil)

	report := BuildAccountsReport(snap, "2024-03", "")

	s.Equal(2, report.Totals.SessionCount)
	s.True(report.Totals.FeeTotal.Equal(decimal.NewFromFloat(180.00)))
	s.True(report.Totals.PaymentTotal.Equal(decimal.NewFromFloat(70.00)))
	s.True(report.Totals.ClosingBalance.Equal(decimal.NewFromFloat(110.00)))
}

func (s *RollupTestSuite) TestNameFilterIsCaseInsensitiveSubstring() {
	report := BuildAccountsReport(s.snapshot(nil, nil), "2024-03", "smi")

	s.Require().Len(report.Rows, 1)
	s.Equal("Smith", report.Rows[0].ClientName)
}

func (s *RollupTestSuite) TestRainedOutSessionsExcludedEverywhere() {
	washed := newSession("2024-03-12", "16:00", "17:00", models.SessionTypeGroup, 80.00, s.alice.ID)
	snap := s.snapshot([]models.TrainingSession{washed}, []models.DayEvent{rainDay("2024-03-12")})

	report := BuildAccountsReport(snap, "2024-03", "")
	row := s.findRow(report, "Smith")

	s.Equal(0, row.SessionCount)
	s.True(row.FeeTotal.IsZero())
	s.True(row.ClosingBalance.IsZero())
}

func (s *RollupTestSuite) TestUnattributablePaymentStillCounts() {
	// Client with payments but no linked players: per-player statements drop
	// the money, the fleet-wide rollup must not
	loner := newClient("Lone Lead")
	loner.Payments = []models.Payment{newPayment(loner.ID, "2024-03-12", 25.00)}
	snap := s.snapshot(nil, nil)
	snap.Clients = append(snap.Clients, loner)

	report := BuildAccountsReport(snap, "2024-03", "")
	row := s.findRow(report, "Lone Lead")

	s.True(row.PaymentTotal.Equal(decimal.NewFromFloat(25.00)))
	s.True(row.ClosingBalance.Equal(decimal.NewFromFloat(-25.00)))
}

func (s *RollupTestSuite) TestRollupMatchesFamilyStatement() {
	prior := newSession("2024-02-10", "16:00", "17:00", models.SessionTypePrivate, 100.00, s.alice.ID)
	fee := newSession("2024-03-05", "16:00", "17:00", models.SessionTypeGroup, 90.00, s.alice.ID, s.ben.ID)
	s.smith.Payments = []models.Payment{newPayment(s.smith.ID, "2024-03-12", 55.55)}
	snap := s.snapshot([]models.TrainingSession{prior, fee}, nil)

	report := BuildAccountsReport(snap, "2024-03", "")
	row := s.findRow(report, "Smith")
	statement := BuildStatement(&s.smith, FamilyScope(), snap, "2024-03")

	opening := decimal.Zero
	for _, section := range statement.Sections {
		opening = opening.Add(section.OpeningBalance)
	}
	s.True(row.OpeningBalance.Equal(opening))
	s.True(row.ClosingBalance.Equal(statement.GrandTotal))
}
