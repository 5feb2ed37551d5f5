package database

import (
	"fmt"
	"testing"

	"courtside/internal/config"
	"courtside/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestClient(t *testing.T, db *DB, name string) *models.Client {
	t.Helper()

	client := &models.Client{
		Name:   name,
		Email:  fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		Status: models.ClientStatusActive,
	}

	if err := db.Create(client).Error; err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}

	return client
}

func CreateTestPlayer(t *testing.T, db *DB, clientID uuid.UUID, name string) *models.Player {
	t.Helper()

	player := &models.Player{
		Name:     name,
		ClientID: &clientID,
	}

	if err := db.Create(player).Error; err != nil {
		t.Fatalf("failed to create test player: %v", err)
	}

	return player
}

func CreateTestSession(t *testing.T, db *DB, date string, price string, playerIDs ...uuid.UUID) *models.TrainingSession {
	t.Helper()

	session := &models.TrainingSession{
		Date:      date,
		StartTime: "16:00",
		EndTime:   "17:00",
		Type:      models.SessionTypeGroup,
		Location:  "Court 1",
		Price:     decimal.RequireFromString(price),
	}

	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create test session: %v", err)
	}

	for _, playerID := range playerIDs {
		participant := &models.SessionParticipant{
			SessionID: session.ID,
			PlayerID:  playerID,
		}
		if err := db.Create(participant).Error; err != nil {
			t.Fatalf("failed to create test participant: %v", err)
		}
	}

	return session
}

func CreateTestPayment(t *testing.T, db *DB, clientID uuid.UUID, date string, amount string) *models.Payment {
	t.Helper()

	payment := &models.Payment{
		ClientID: clientID,
		Date:     date,
		Amount:   decimal.RequireFromString(amount),
	}

	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}

	return payment
}

type TestDB struct {
	*DB
	t *testing.T
}

func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestDB{
		DB: testDB,
		t:  t,
	}
}

func (tdb *TestDB) Cleanup() {
	tdb.t.Helper()

	tables := []string{
		"session_participants",
		"training_sessions",
		"payments",
		"day_events",
		"players",
		"clients",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			tdb.t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"session_participants",
		"training_sessions",
		"payments",
		"day_events",
		"players",
		"clients",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
