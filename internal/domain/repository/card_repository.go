package repository

import (
	"context"

	"github.com/mesto-app/mesto-api/internal/domain/entity"
)

// CardRepository defines the interface for card-related database operations.
// AddLike and RemoveLike are atomic set operations: adding an existing like
// or removing an absent one is a no-op that still returns the record.
type CardRepository interface {
	Create(ctx context.Context, card *entity.Card) error
	List(ctx context.Context) ([]entity.Card, error)
	GetByID(ctx context.Context, id string) (*entity.Card, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, cardID, userID string) (*entity.Card, error)
	RemoveLike(ctx context.Context, cardID, userID string) (*entity.Card, error)
}
