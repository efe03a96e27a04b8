package repository

import "github.com/karimbadr/mohasib-api/internal/domain/entity"

// MovementRepository is the persistence port for the stock audit trail.
// Movements are append-only: no update or delete operations exist.
type MovementRepository interface {
	Create(m *entity.Movement) error
	ListByItem(itemID string) ([]*entity.Movement, error)
	// List returns movements within the inclusive date range; empty bounds
	// mean unbounded.
	List(from, to string) ([]*entity.Movement, error)
}
