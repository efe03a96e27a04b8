package repository

import "github.com/karimbadr/mohasib-api/internal/domain/entity"

// InventoryItemRepository is the persistence port for stocked items.
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	// GetByID returns (nil, nil) when the ID does not resolve.
	GetByID(id string) (*entity.InventoryItem, error)
	// GetForUpdate locks the item row for the rest of the transaction
	// (SELECT FOR UPDATE) so quantity adjustments serialize.
	GetForUpdate(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	List() ([]*entity.InventoryItem, error)
	Delete(id string) error
}
