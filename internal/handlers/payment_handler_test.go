package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"courtside/internal/database"
	"courtside/internal/dto"
	"courtside/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	env     *testEnv
	handler *PaymentHandler

	client *models.Client
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
	s.handler = NewPaymentHandler(s.env.paymentService)
	s.client = database.CreateTestClient(s.T(), s.env.db, "Smith Family")
}

func (s *PaymentHandlerTestSuite) TestRecordPayment() {
	body := fmt.Sprintf(`{"client_id":"%s","date":"2026-02-10","amount":"450.00","reference":"EFT-1042"}`, s.client.ID)
	c, rec := s.env.newJSONContext(http.MethodPost, "/api/v1/payments", body)

	s.NoError(s.handler.RecordPayment(c))
	s.Equal(http.StatusCreated, rec.Code)

	var payment models.Payment
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &payment))
	s.Equal(s.client.ID, payment.ClientID)
	s.Equal("450", payment.Amount.String())
	s.False(payment.IsEarmarked())
}

func (s *PaymentHandlerTestSuite) TestRecordPayment_Earmarked() {
	player := database.CreateTestPlayer(s.T(), s.env.db, s.client.ID, "Tom Smith")

	body := fmt.Sprintf(`{"client_id":"%s","date":"2026-02-10","amount":"200.00","player_id":"%s"}`, s.client.ID, player.ID)
	c, rec := s.env.newJSONContext(http.MethodPost, "/api/v1/payments", body)

	s.NoError(s.handler.RecordPayment(c))
	s.Equal(http.StatusCreated, rec.Code)

	var payment models.Payment
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &payment))
	s.True(payment.IsEarmarked())
}

func (s *PaymentHandlerTestSuite) TestRecordPayment_EarmarkOutsideRoster() {
	other := database.CreateTestClient(s.T(), s.env.db, "Naidoo Family")
	stranger := database.CreateTestPlayer(s.T(), s.env.db, other.ID, "Priya Naidoo")

	body := fmt.Sprintf(`{"client_id":"%s","date":"2026-02-10","amount":"200.00","player_id":"%s"}`, s.client.ID, stranger.ID)
	c, rec := s.env.newJSONContext(http.MethodPost, "/api/v1/payments", body)

	s.NoError(s.handler.RecordPayment(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *PaymentHandlerTestSuite) TestRecordPayment_InvalidAmount() {
	body := fmt.Sprintf(`{"client_id":"%s","date":"2026-02-10","amount":"-20.00"}`, s.client.ID)
	c, _ := s.env.newJSONContext(http.MethodPost, "/api/v1/payments", body)

	s.Error(s.handler.RecordPayment(c))
}

func (s *PaymentHandlerTestSuite) TestRecordPayment_UnknownClient() {
	body := fmt.Sprintf(`{"client_id":"%s","date":"2026-02-10","amount":"100.00"}`, uuid.NewString())
	c, rec := s.env.newJSONContext(http.MethodPost, "/api/v1/payments", body)

	s.NoError(s.handler.RecordPayment(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *PaymentHandlerTestSuite) TestGetPayment_NotFound() {
	c, rec := s.env.newGetContext("/")
	c.SetParamNames("paymentId")
	c.SetParamValues(uuid.NewString())

	s.NoError(s.handler.GetPayment(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *PaymentHandlerTestSuite) TestListPayments_ByClient() {
	other := database.CreateTestClient(s.T(), s.env.db, "Naidoo Family")
	database.CreateTestPayment(s.T(), s.env.db, s.client.ID, "2026-02-10", "100.00")
	database.CreateTestPayment(s.T(), s.env.db, other.ID, "2026-02-11", "300.00")

	c, rec := s.env.newGetContext("/?client_id=" + s.client.ID.String())

	s.NoError(s.handler.ListPayments(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListPaymentsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Payments, 1)
	s.Equal(s.client.ID, resp.Payments[0].ClientID)
}

func (s *PaymentHandlerTestSuite) TestUpdatePayment() {
	payment := database.CreateTestPayment(s.T(), s.env.db, s.client.ID, "2026-02-10", "100.00")

	body := fmt.Sprintf(`{"client_id":"%s","date":"2026-02-12","amount":"150.00","reference":"EFT-2001"}`, s.client.ID)
	c, rec := s.env.newJSONContext(http.MethodPut, "/", body)
	c.SetParamNames("paymentId")
	c.SetParamValues(payment.ID.String())

	s.NoError(s.handler.UpdatePayment(c))
	s.Equal(http.StatusOK, rec.Code)

	var updated models.Payment
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Equal("150", updated.Amount.String())
	s.Equal("EFT-2001", updated.Reference)
}

func (s *PaymentHandlerTestSuite) TestDeletePayment() {
	payment := database.CreateTestPayment(s.T(), s.env.db, s.client.ID, "2026-02-10", "100.00")

	c, rec := s.env.newJSONContext(http.MethodDelete, "/", "")
	c.SetParamNames("paymentId")
	c.SetParamValues(payment.ID.String())

	s.NoError(s.handler.DeletePayment(c))
	s.Equal(http.StatusOK, rec.Code)
}
