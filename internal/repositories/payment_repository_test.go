package repositories

import (
	"testing"

	"courtside/internal/database"
	"courtside/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestPaymentRepository(t *testing.T) {
	suite.Run(t, new(PaymentRepositorySuite))
}

type PaymentRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo PaymentRepositoryInterface
}

func (s *PaymentRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewPaymentRepository(s.db.DB)
}

func (s *PaymentRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *PaymentRepositorySuite) TestPaymentRepository_Create() {
	client := database.CreateTestClient(s.T(), s.db, "Smith Family")

	payment := &models.Payment{
		ClientID:  client.ID,
		Date:      "2026-02-10",
		Amount:    decimal.RequireFromString("150.00"),
		Reference: "EFT-1042",
	}

	err := s.repo.Create(payment)
	s.NoError(err)
	s.NotEqual(uuid.Nil, payment.ID)
}

func (s *PaymentRepositorySuite) TestPaymentRepository_Create_RejectsNonPositiveAmount() {
	client := database.CreateTestClient(s.T(), s.db, "Smith Family")

	payment := &models.Payment{
		ClientID: client.ID,
		Date:     "2026-02-10",
		Amount:   decimal.Zero,
	}

	err := s.repo.Create(payment)
	s.ErrorIs(err, models.ErrInvalidPaymentAmount)
}

func (s *PaymentRepositorySuite) TestPaymentRepository_GetByClientID() {
	smith := database.CreateTestClient(s.T(), s.db, "Smith Family")
	jones := database.CreateTestClient(s.T(), s.db, "Jones Family")
	database.CreateTestPayment(s.T(), s.db, smith.ID, "2026-02-10", "150.00")
	database.CreateTestPayment(s.T(), s.db, smith.ID, "2026-02-20", "100.00")
	database.CreateTestPayment(s.T(), s.db, jones.ID, "2026-02-15", "80.00")

	payments, total, err := s.repo.GetByClientID(smith.ID, 0, 10)
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(payments, 2)
	// ordered most recent first
	s.Equal("2026-02-20", payments[0].Date)
}

func (s *PaymentRepositorySuite) TestPaymentRepository_Update_Earmark() {
	client := database.CreateTestClient(s.T(), s.db, "Smith Family")
	player := database.CreateTestPlayer(s.T(), s.db, client.ID, "Anna")
	payment := database.CreateTestPayment(s.T(), s.db, client.ID, "2026-02-10", "150.00")

	payment.PlayerID = &player.ID
	payment.Reference = "EFT-2001"
	err := s.repo.Update(payment)
	s.NoError(err)

	updated, err := s.repo.GetByID(payment.ID)
	s.NoError(err)
	s.True(updated.IsEarmarked())
	s.Equal(player.ID, *updated.PlayerID)
	s.Equal("EFT-2001", updated.Reference)
}

func (s *PaymentRepositorySuite) TestPaymentRepository_ReassignToClient() {
	from := database.CreateTestClient(s.T(), s.db, "Smith Family")
	to := database.CreateTestClient(s.T(), s.db, "Smith Familly")
	database.CreateTestPayment(s.T(), s.db, from.ID, "2026-02-10", "150.00")
	database.CreateTestPayment(s.T(), s.db, from.ID, "2026-02-20", "100.00")

	moved, err := s.repo.ReassignToClient(from.ID, to.ID)
	s.NoError(err)
	s.Equal(int64(2), moved)

	_, total, err := s.repo.GetByClientID(from.ID, 0, 10)
	s.NoError(err)
	s.Zero(total)

	_, total, err = s.repo.GetByClientID(to.ID, 0, 10)
	s.NoError(err)
	s.Equal(int64(2), total)
}

func (s *PaymentRepositorySuite) TestPaymentRepository_Delete() {
	client := database.CreateTestClient(s.T(), s.db, "Smith Family")
	payment := database.CreateTestPayment(s.T(), s.db, client.ID, "2026-02-10", "150.00")

	s.NoError(s.repo.Delete(payment.ID))

	_, err := s.repo.GetByID(payment.ID)
	s.Equal(ErrPaymentNotFound, err)
}
