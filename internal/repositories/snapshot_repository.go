package repositories

import (
	"fmt"

	"courtside/internal/models"

	"gorm.io/gorm"
)

// snapshotRepository implements SnapshotRepositoryInterface
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a repository that assembles billing snapshots
func NewSnapshotRepository(db *gorm.DB) SnapshotRepositoryInterface {
	return &snapshotRepository{
		db: db,
	}
}

// Load reads every record the billing core needs into one immutable bundle.
// The four reads run in a single read transaction so a statement never mixes
// states from concurrent writes.
func (r *snapshotRepository) Load() (*models.Snapshot, error) {
	var snap models.Snapshot

	err := r.db.Transaction(func(tx *gorm.DB) error {
		clients := NewClientRepository(tx)
		sessions := NewSessionRepository(tx)

		var err error
		if snap.Clients, err = clients.GetAllWithPayments(); err != nil {
			return err
		}

		if err := tx.Order("created_at ASC").Find(&snap.Players).Error; err != nil {
			return fmt.Errorf("failed to load players: %w", err)
		}

		if snap.Sessions, err = sessions.GetAllWithParticipants(); err != nil {
			return err
		}

		if err := tx.Order("date ASC").Find(&snap.DayEvents).Error; err != nil {
			return fmt.Errorf("failed to load day events: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load billing snapshot: %w", err)
	}

	return &snap, nil
}
