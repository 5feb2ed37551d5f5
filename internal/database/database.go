package database

import (
	"fmt"
	"log"
	"time"

	"courtside/internal/config"
	"courtside/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Client{},
		&models.Player{},
		&models.TrainingSession{},
		&models.SessionParticipant{},
		&models.Payment{},
		&models.DayEvent{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_clients_status ON clients(status)",
		"CREATE INDEX IF NOT EXISTS idx_clients_name_lower ON clients(LOWER(name))",
		"CREATE INDEX IF NOT EXISTS idx_clients_deleted_at ON clients(deleted_at) WHERE deleted_at IS NULL",
		// Player indexes
		"CREATE INDEX IF NOT EXISTS idx_players_client_id ON players(client_id)",
		"CREATE INDEX IF NOT EXISTS idx_players_name_lower ON players(LOWER(name))",
		"CREATE INDEX IF NOT EXISTS idx_players_deleted_at ON players(deleted_at) WHERE deleted_at IS NULL",
		// Session indexes: statements and reports filter by date range constantly
		"CREATE INDEX IF NOT EXISTS idx_training_sessions_date ON training_sessions(date)",
		"CREATE INDEX IF NOT EXISTS idx_training_sessions_type ON training_sessions(type)",
		"CREATE INDEX IF NOT EXISTS idx_training_sessions_cancelled ON training_sessions(cancelled)",
		"CREATE INDEX IF NOT EXISTS idx_training_sessions_deleted_at ON training_sessions(deleted_at) WHERE deleted_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_session_participants_player_id ON session_participants(player_id)",
		// Payment indexes
		"CREATE INDEX IF NOT EXISTS idx_payments_client_id ON payments(client_id)",
		"CREATE INDEX IF NOT EXISTS idx_payments_player_id ON payments(player_id) WHERE player_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_payments_date ON payments(date)",
		"CREATE INDEX IF NOT EXISTS idx_payments_deleted_at ON payments(deleted_at) WHERE deleted_at IS NULL",
		// Day event indexes
		"CREATE INDEX IF NOT EXISTS idx_day_events_date ON day_events(date)",
		"CREATE INDEX IF NOT EXISTS idx_day_events_kind ON day_events(kind)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Get the underlying sql.DB for migration runner
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		// Fallback to GORM AutoMigrate
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
