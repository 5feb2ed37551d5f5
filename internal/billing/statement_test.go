package billing

import (
	"testing"

	"courtside/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StatementTestSuite struct {
	suite.Suite
	client models.Client
	alice  models.Player
	ben    models.Player
	other  models.Client
	cara   models.Player
}

func TestStatementSuite(t *testing.T) {
	suite.Run(t, new(StatementTestSuite))
}

func (s *StatementTestSuite) SetupTest() {
	s.client = newClient("Smith")
	s.alice = newPlayer("A", s.client.ID)
	s.ben = newPlayer("B", s.client.ID)
	s.other = newClient("Jones")
	s.cara = newPlayer("C", s.other.ID)
}

func (s *StatementTestSuite) snapshot(sessions []models.TrainingSession, events []models.DayEvent) *models.Snapshot {
	return &models.Snapshot{
		Clients:   []models.Client{s.client, s.other},
		Players:   []models.Player{s.alice, s.ben, s.cara},
		Sessions:  sessions,
		DayEvents: events,
	}
}

// The worked family example: a group session including both Smith players and
// one other client's player, plus an unassigned 150 payment. Each player owes
// 100 and is credited 75, so each subtotal is 25 and the family owes 50.
func (s *StatementTestSuite) TestFamilyStatementWorkedExample() {
	session := newSession("2024-03-05", "16:00", "17:00", models.SessionTypeGroup, 100.00, s.alice.ID, s.ben.ID, s.cara.ID)
	s.client.Payments = []models.Payment{newPayment(s.client.ID, "2024-03-10", 150.00)}
	snap := s.snapshot([]models.TrainingSession{session}, nil)

	statement := BuildStatement(&s.client, FamilyScope(), snap, "2024-03")

	s.Require().Len(statement.Sections, 2)
	for _, section := range statement.Sections {
		s.True(section.OpeningBalance.IsZero())
		s.Require().Len(section.Rows, 2)
		s.True(section.Subtotal.Equal(decimal.NewFromFloat(25.00)))
	}
	s.True(statement.GrandTotal.Equal(decimal.NewFromFloat(50.00)))
}

func (s *StatementTestSuite) TestOpeningBalanceCarriesForwardAcrossMonths() {
	february := newSession("2024-02-10", "16:00", "17:00", models.SessionTypePrivate, 120.00, s.alice.ID)
	march := newSession("2024-03-05", "16:00", "17:00", models.SessionTypePrivate, 80.00, s.alice.ID)
	s.client.Payments = []models.Payment{earmarked(newPayment(s.client.ID, "2024-03-20", 50.00), s.alice.ID)}
	snap := s.snapshot([]models.TrainingSession{february, march}, nil)

	feb := BuildStatement(&s.client, FamilyScope(), snap, "2024-02")
	mar := BuildStatement(&s.client, FamilyScope(), snap, "2024-03")

	s.Require().Len(feb.Sections, 1)
	s.Require().Len(mar.Sections, 1)

	// Reconciliation invariant: closing of February equals opening of March
	s.True(feb.Sections[0].Subtotal.Equal(mar.Sections[0].OpeningBalance))
	s.True(mar.Sections[0].OpeningBalance.Equal(decimal.NewFromFloat(120.00)))
	s.True(mar.Sections[0].Subtotal.Equal(decimal.NewFromFloat(150.00)))
}

func (s *StatementTestSuite) TestEntriesAfterMonthIgnored() {
	march := newSession("2024-03-05", "16:00", "17:00", models.SessionTypePrivate, 80.00, s.alice.ID)
	april := newSession("2024-04-02", "16:00", "17:00", models.SessionTypePrivate, 80.00, s.alice.ID)
	snap := s.snapshot([]models.TrainingSession{march, april}, nil)

	statement := BuildStatement(&s.client, FamilyScope(), snap, "2024-03")

	s.Require().Len(statement.Sections, 1)
	s.Len(statement.Sections[0].Rows, 1)
	s.True(statement.GrandTotal.Equal(decimal.NewFromFloat(80.00)))
}

func (s *StatementTestSuite) TestRunningBalanceWalksRowByRow() {
	s1 := newSession("2024-03-05", "16:00", "17:00", models.SessionTypePrivate, 100.00, s.alice.ID)
	s2 := newSession("2024-03-19", "16:00", "17:00", models.SessionTypePrivate, 100.00, s.alice.ID)
	s.client.Payments = []models.Payment{earmarked(newPayment(s.client.ID, "2024-03-12", 60.00), s.alice.ID)}
	snap := s.snapshot([]models.TrainingSession{s1, s2}, nil)

	statement := BuildStatement(&s.client, FamilyScope(), snap, "2024-03")

	s.Require().Len(statement.Sections, 1)
	rows := statement.Sections[0].Rows
	s.Require().Len(rows, 3)
	s.True(rows[0].RunningBalance.Equal(decimal.NewFromFloat(100.00)))
	s.True(rows[1].RunningBalance.Equal(decimal.NewFromFloat(40.00)))
	s.True(rows[2].RunningBalance.Equal(decimal.NewFromFloat(140.00)))
	s.True(statement.Sections[0].Subtotal.Equal(rows[2].RunningBalance))
}

func (s *StatementTestSuite) TestRainOutAffectsNoBalance() {
	session := newSession("2024-03-12", "16:00", "17:00", models.SessionTypeGroup, 80.00, s.alice.ID)
	snap := s.snapshot([]models.TrainingSession{session}, []models.DayEvent{rainDay("2024-03-12")})

	statement := BuildStatement(&s.client, FamilyScope(), snap, "2024-03")

	s.Empty(statement.Sections)
	s.True(statement.GrandTotal.IsZero())
}

func (s *StatementTestSuite) TestCancelledSessionCreditsMonthlySubtotal() {
	session := newSession("2024-03-08", "09:00", "10:00", models.SessionTypePrivate, 60.00, s.alice.ID)
	session.Cancelled = true
	snap := s.snapshot([]models.TrainingSession{session}, nil)

	statement := BuildStatement(&s.client, FamilyScope(), snap, "2024-03")

	s.Require().Len(statement.Sections, 1)
	section := statement.Sections[0]
	s.Require().Len(section.Rows, 1)
	s.True(section.Rows[0].Credit.Equal(decimal.NewFromFloat(60.00)))
	s.True(section.Subtotal.Equal(decimal.NewFromFloat(-60.00)))
}

func (s *StatementTestSuite) TestEmptyZeroBalanceSectionsSuppressed() {
	// Only Alice has activity; Ben's section must not appear
	session := newSession("2024-03-05", "16:00", "17:00", models.SessionTypePrivate, 80.00, s.alice.ID)
	snap := s.snapshot([]models.TrainingSession{session}, nil)

	statement := BuildStatement(&s.client, FamilyScope(), snap, "2024-03")

	s.Require().Len(statement.Sections, 1)
	s.Equal(s.alice.ID, statement.Sections[0].PlayerID)
}

func (s *StatementTestSuite) TestSectionWithOnlyOpeningBalanceStillShown() {
	session := newSession("2024-01-10", "16:00", "17:00", models.SessionTypePrivate, 80.00, s.alice.ID)
	snap := s.snapshot([]models.TrainingSession{session}, nil)

	statement := BuildStatement(&s.client, FamilyScope(), snap, "2024-03")

	s.Require().Len(statement.Sections, 1)
	s.True(statement.Sections[0].OpeningBalance.Equal(decimal.NewFromFloat(80.00)))
	s.Empty(statement.Sections[0].Rows)
}

func (s *StatementTestSuite) TestIdempotentAcrossIdenticalCalls() {
	session := newSession("2024-03-05", "16:00", "17:00", models.SessionTypeGroup, 100.00, s.alice.ID, s.ben.ID)
	s.client.Payments = []models.Payment{newPayment(s.client.ID, "2024-03-10", 99.99)}
	snap := s.snapshot([]models.TrainingSession{session}, nil)

	first := BuildStatement(&s.client, FamilyScope(), snap, "2024-03")
	second := BuildStatement(&s.client, FamilyScope(), snap, "2024-03")

	s.Equal(first, second)
}

func (s *StatementTestSuite) TestPerPlayerSubtotalsSumToFamilyTotal() {
	g1 := newSession("2024-03-05", "16:00", "17:00", models.SessionTypeGroup, 100.00, s.alice.ID, s.ben.ID)
	g2 := newSession("2024-03-12", "16:00", "17:00", models.SessionTypeSemi, 85.50, s.ben.ID)
	s.client.Payments = []models.Payment{newPayment(s.client.ID, "2024-03-15", 120.01)}
	snap := s.snapshot([]models.TrainingSession{g1, g2}, nil)

	statement := BuildStatement(&s.client, FamilyScope(), snap, "2024-03")

	sum := decimal.Zero
	for _, section := range statement.Sections {
		sum = sum.Add(section.Subtotal)
	}
	s.True(sum.Equal(statement.GrandTotal))
}
