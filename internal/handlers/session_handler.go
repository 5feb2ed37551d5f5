package handlers

import (
	stderrors "errors"
	"net/http"

	"courtside/internal/dto"
	"courtside/internal/errors"
	"courtside/internal/repositories"
	"courtside/internal/services"

	"github.com/labstack/echo/v4"
)

// SessionHandler handles the training schedule and day event endpoints
type SessionHandler struct {
	scheduleService services.ScheduleServiceInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(scheduleService services.ScheduleServiceInterface) *SessionHandler {
	return &SessionHandler{scheduleService: scheduleService}
}

// CreateSession schedules a training session with its participants
//
// Method: POST /api/v1/sessions
// Authentication: Required (admin)
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var req dto.SessionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	session, err := h.scheduleService.CreateSession(sessionInputFromRequest(req))
	if err != nil {
		return sendScheduleError(c, err)
	}

	return c.JSON(http.StatusCreated, session)
}

// GetSession returns one training session with its participants
//
// Method: GET /api/v1/sessions/:sessionId
// Authentication: Required
func (h *SessionHandler) GetSession(c echo.Context) error {
	sessionID, err := parseIDParam(c, "sessionId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	session, err := h.scheduleService.GetSession(sessionID)
	if err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.SessionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// ListSessions returns sessions within an inclusive date range. When both
// dates are omitted the whole schedule is paged.
//
// Method: GET /api/v1/sessions
// Authentication: Required
//
// Query parameters:
//   - start_date: Range start, YYYY-MM-DD
//   - end_date: Range end inclusive, YYYY-MM-DD
//   - limit: Page size (default 100)
//   - offset: Page offset
func (h *SessionHandler) ListSessions(c echo.Context) error {
	var req dto.ListSessionsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	if req.Limit == 0 {
		req.Limit = 100
	}

	sessions, total, err := h.scheduleService.ListSessions(req.StartDate, req.EndDate, req.Offset, req.Limit)
	if err != nil {
		if err == services.ErrInvalidDate {
			return SendError(c, errors.ValidationInvalidDate)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListSessionsResponse{
		Sessions: sessions,
		Total:    total,
		Limit:    req.Limit,
		Offset:   req.Offset,
	})
}

// UpdateSession reschedules a session and replaces its participant list
//
// Method: PUT /api/v1/sessions/:sessionId
// Authentication: Required (admin)
func (h *SessionHandler) UpdateSession(c echo.Context) error {
	sessionID, err := parseIDParam(c, "sessionId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	var req dto.SessionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	session, err := h.scheduleService.UpdateSession(sessionID, sessionInputFromRequest(req))
	if err != nil {
		return sendScheduleError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// SetSessionCancelled marks a session as coach-cancelled or restores it.
// Cancelled charges come back as credits on the next statement.
//
// Method: PUT /api/v1/sessions/:sessionId/cancellation
// Authentication: Required (admin)
func (h *SessionHandler) SetSessionCancelled(c echo.Context) error {
	sessionID, err := parseIDParam(c, "sessionId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	var req dto.CancelSessionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := h.scheduleService.SetSessionCancelled(sessionID, req.Cancelled); err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.SessionNotFound)
		}
		return SendSystemError(c, err)
	}

	session, err := h.scheduleService.GetSession(sessionID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// DeleteSession removes a session and its participant rows entirely. Unlike
// cancellation this erases the charge instead of crediting it back.
//
// Method: DELETE /api/v1/sessions/:sessionId
// Authentication: Required (admin)
func (h *SessionHandler) DeleteSession(c echo.Context) error {
	sessionID, err := parseIDParam(c, "sessionId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid session ID"))
	}

	if err := h.scheduleService.DeleteSession(sessionID); err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.SessionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Session deleted"})
}

// RecordDayEvent marks a day as rained out or closed, voiding its sessions
//
// Method: POST /api/v1/day-events
// Authentication: Required (admin)
func (h *SessionHandler) RecordDayEvent(c echo.Context) error {
	var req dto.DayEventRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	event, err := h.scheduleService.RecordDayEvent(req.Date, req.Kind, req.Note)
	if err != nil {
		switch {
		case err == services.ErrInvalidDate:
			return SendError(c, errors.ValidationInvalidDate)
		case err == services.ErrInvalidDayEvent:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Kind must be rain or closure"))
		case stderrors.Is(err, repositories.ErrDayEventDuplicate):
			return SendError(c, errors.DayEventDuplicate)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, event)
}

// ListDayEvents returns a month's day events
//
// Method: GET /api/v1/day-events
// Authentication: Required
//
// Query parameters:
//   - month: Month to list, YYYY-MM (required)
func (h *SessionHandler) ListDayEvents(c echo.Context) error {
	month := c.QueryParam("month")

	events, err := h.scheduleService.ListDayEvents(month)
	if err != nil {
		if err == services.ErrInvalidMonth {
			return SendError(c, errors.ValidationInvalidMonth)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListDayEventsResponse{Events: events})
}

// DeleteDayEvent removes a day event, restoring billing for that day
//
// Method: DELETE /api/v1/day-events/:eventId
// Authentication: Required (admin)
func (h *SessionHandler) DeleteDayEvent(c echo.Context) error {
	eventID, err := parseIDParam(c, "eventId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid day event ID"))
	}

	if err := h.scheduleService.DeleteDayEvent(eventID); err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.DayEventNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Day event deleted"})
}

func sessionInputFromRequest(req dto.SessionRequest) services.SessionInput {
	return services.SessionInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Type:      req.Type,
		Location:  req.Location,
		Price:     req.Price,
		Notes:     req.Notes,
		PlayerIDs: req.PlayerIDs,
	}
}

// sendScheduleError maps schedule service errors onto API error codes
func sendScheduleError(c echo.Context, err error) error {
	switch err {
	case services.ErrNotFound:
		return SendError(c, errors.SessionNotFound)
	case services.ErrInvalidDate:
		return SendError(c, errors.ValidationInvalidDate)
	case services.ErrInvalidTime:
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Times must be formatted as HH:MM"))
	case services.ErrInvalidSessionType:
		return SendError(c, errors.SessionInvalidType)
	case services.ErrInvalidPrice:
		return SendError(c, errors.SessionInvalidPrice)
	case services.ErrUnknownParticipant:
		return SendError(c, errors.SessionUnknownParticipant)
	default:
		return SendSystemError(c, err)
	}
}
