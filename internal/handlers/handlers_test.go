package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"courtside/internal/database"
	"courtside/internal/repositories"
	"courtside/internal/services"

	"github.com/labstack/echo/v4"
)

// noopMetrics satisfies the metrics recorder without touching a registry,
// so suites can build services repeatedly.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(name string, tags map[string]string)        {}
func (noopMetrics) RecordProcessingTime(name string, duration time.Duration)    {}
func (noopMetrics) RecordGauge(name string, value float64, tags map[string]string) {}

// testEnv wires real services over an in-memory database for handler tests
type testEnv struct {
	echo            *echo.Echo
	db              *database.DB
	clientService   services.ClientServiceInterface
	scheduleService services.ScheduleServiceInterface
	paymentService  services.PaymentServiceInterface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := database.SetupTestDB(t)

	e := echo.New()
	e.Validator = NewValidator()

	metrics := noopMetrics{}
	clientRepo := repositories.NewClientRepository(db.DB)
	playerRepo := repositories.NewPlayerRepository(db.DB)
	sessionRepo := repositories.NewSessionRepository(db.DB)
	paymentRepo := repositories.NewPaymentRepository(db.DB)
	dayEventRepo := repositories.NewDayEventRepository(db.DB)

	return &testEnv{
		echo:            e,
		db:              db,
		clientService:   services.NewClientService(db.DB, clientRepo, playerRepo, paymentRepo, metrics),
		scheduleService: services.NewScheduleService(sessionRepo, playerRepo, dayEventRepo, metrics),
		paymentService:  services.NewPaymentService(paymentRepo, clientRepo, playerRepo, metrics),
	}
}

func (env *testEnv) statementService() services.StatementServiceInterface {
	return services.NewStatementService(repositories.NewSnapshotRepository(env.db.DB), noopMetrics{})
}

func (env *testEnv) accountsService() services.AccountsServiceInterface {
	return services.NewAccountsService(repositories.NewSnapshotRepository(env.db.DB), noopMetrics{})
}

func newDemoService(t *testing.T, env *testEnv, enabled bool) services.DemoDataServiceInterface {
	t.Helper()
	return services.NewDemoDataService(env.db.DB, enabled, noopMetrics{})
}

// newJSONContext builds an echo context carrying a JSON body
func (env *testEnv) newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return env.echo.NewContext(req, rec), rec
}

// newGetContext builds an echo context for a GET request
func (env *testEnv) newGetContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return env.echo.NewContext(req, rec), rec
}
