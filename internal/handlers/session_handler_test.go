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

type SessionHandlerTestSuite struct {
	suite.Suite
	env     *testEnv
	handler *SessionHandler

	client *models.Client
	player *models.Player
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
	s.handler = NewSessionHandler(s.env.scheduleService)

	s.client = database.CreateTestClient(s.T(), s.env.db, "Smith Family")
	s.player = database.CreateTestPlayer(s.T(), s.env.db, s.client.ID, "Tom Smith")
}

func (s *SessionHandlerTestSuite) sessionBody(date string, playerIDs ...uuid.UUID) string {
	ids, _ := json.Marshal(playerIDs)
	return fmt.Sprintf(`{"date":"%s","start_time":"16:00","end_time":"17:00","type":"group","location":"Court 1","price":"120.00","player_ids":%s}`,
		date, ids)
}

func (s *SessionHandlerTestSuite) TestCreateSession() {
	c, rec := s.env.newJSONContext(http.MethodPost, "/api/v1/sessions", s.sessionBody("2026-02-03", s.player.ID))

	s.NoError(s.handler.CreateSession(c))
	s.Equal(http.StatusCreated, rec.Code)

	var session models.TrainingSession
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &session))
	s.Equal("2026-02-03", session.Date)
	s.Len(session.Participants, 1)
	s.Equal(s.player.ID, session.Participants[0].PlayerID)
}

func (s *SessionHandlerTestSuite) TestCreateSession_InvalidType() {
	body := `{"date":"2026-02-03","start_time":"16:00","end_time":"17:00","type":"bootcamp","price":"120.00"}`
	c, _ := s.env.newJSONContext(http.MethodPost, "/api/v1/sessions", body)

	s.Error(s.handler.CreateSession(c))
}

func (s *SessionHandlerTestSuite) TestCreateSession_UnknownParticipant() {
	c, rec := s.env.newJSONContext(http.MethodPost, "/api/v1/sessions", s.sessionBody("2026-02-03", uuid.New()))

	s.NoError(s.handler.CreateSession(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *SessionHandlerTestSuite) TestListSessions_DateRange() {
	database.CreateTestSession(s.T(), s.env.db, "2026-02-03", "120.00", s.player.ID)
	database.CreateTestSession(s.T(), s.env.db, "2026-03-10", "120.00", s.player.ID)

	c, rec := s.env.newGetContext("/?start_date=2026-02-01&end_date=2026-02-28")

	s.NoError(s.handler.ListSessions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListSessionsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Sessions, 1)
	s.Equal("2026-02-03", resp.Sessions[0].Date)
}

func (s *SessionHandlerTestSuite) TestUpdateSession_ReplacesParticipants() {
	session := database.CreateTestSession(s.T(), s.env.db, "2026-02-03", "120.00", s.player.ID)
	substitute := database.CreateTestPlayer(s.T(), s.env.db, s.client.ID, "Anna Smith")

	c, rec := s.env.newJSONContext(http.MethodPut, "/", s.sessionBody("2026-02-04", substitute.ID))
	c.SetParamNames("sessionId")
	c.SetParamValues(session.ID.String())

	s.NoError(s.handler.UpdateSession(c))
	s.Equal(http.StatusOK, rec.Code)

	var updated models.TrainingSession
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Equal("2026-02-04", updated.Date)
	s.Len(updated.Participants, 1)
	s.Equal(substitute.ID, updated.Participants[0].PlayerID)
}

func (s *SessionHandlerTestSuite) TestSetSessionCancelled() {
	session := database.CreateTestSession(s.T(), s.env.db, "2026-02-03", "120.00", s.player.ID)

	c, rec := s.env.newJSONContext(http.MethodPut, "/", `{"cancelled":true}`)
	c.SetParamNames("sessionId")
	c.SetParamValues(session.ID.String())

	s.NoError(s.handler.SetSessionCancelled(c))
	s.Equal(http.StatusOK, rec.Code)

	var updated models.TrainingSession
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.True(updated.Cancelled)
}

func (s *SessionHandlerTestSuite) TestDeleteSession() {
	session := database.CreateTestSession(s.T(), s.env.db, "2026-02-03", "120.00", s.player.ID)

	c, rec := s.env.newJSONContext(http.MethodDelete, "/", "")
	c.SetParamNames("sessionId")
	c.SetParamValues(session.ID.String())

	s.NoError(s.handler.DeleteSession(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *SessionHandlerTestSuite) TestRecordDayEvent() {
	c, rec := s.env.newJSONContext(http.MethodPost, "/api/v1/day-events",
		`{"date":"2026-02-14","kind":"rain","note":"Courts flooded"}`)

	s.NoError(s.handler.RecordDayEvent(c))
	s.Equal(http.StatusCreated, rec.Code)

	var event models.DayEvent
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &event))
	s.Equal(models.DayEventKindRain, event.Kind)
}

func (s *SessionHandlerTestSuite) TestRecordDayEvent_Duplicate() {
	c, rec := s.env.newJSONContext(http.MethodPost, "/api/v1/day-events", `{"date":"2026-02-14","kind":"rain"}`)
	s.NoError(s.handler.RecordDayEvent(c))
	s.Equal(http.StatusCreated, rec.Code)

	c, rec = s.env.newJSONContext(http.MethodPost, "/api/v1/day-events", `{"date":"2026-02-14","kind":"closure"}`)
	s.NoError(s.handler.RecordDayEvent(c))
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *SessionHandlerTestSuite) TestListDayEvents_MonthFilter() {
	c, _ := s.env.newJSONContext(http.MethodPost, "/api/v1/day-events", `{"date":"2026-02-14","kind":"rain"}`)
	s.NoError(s.handler.RecordDayEvent(c))
	c, _ = s.env.newJSONContext(http.MethodPost, "/api/v1/day-events", `{"date":"2026-03-01","kind":"closure"}`)
	s.NoError(s.handler.RecordDayEvent(c))

	listCtx, rec := s.env.newGetContext("/?month=2026-02")

	s.NoError(s.handler.ListDayEvents(listCtx))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListDayEventsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Events, 1)
	s.Equal("2026-02-14", resp.Events[0].Date)
}

func (s *SessionHandlerTestSuite) TestListDayEvents_InvalidMonth() {
	c, rec := s.env.newGetContext("/?month=February")

	s.NoError(s.handler.ListDayEvents(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}
