package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mesto-app/mesto-api/internal/domain/entity"
	"github.com/mesto-app/mesto-api/internal/domain/repository"
	"github.com/mesto-app/mesto-api/pkg/apperror"
)

// cardColumns aggregates likes into a text array so a card always loads in
// one query. FILTER keeps the array empty instead of {NULL} for no likes.
const cardColumns = `
	c.id::text, c.name, c.link, c.owner_id::text, c.created_at,
	COALESCE(array_agg(l.user_id::text ORDER BY l.created_at)
		FILTER (WHERE l.user_id IS NOT NULL), '{}')
`

type CardRepository struct {
	pool *pgxpool.Pool
}

func NewCardRepository(pool *pgxpool.Pool) *CardRepository {
	return &CardRepository{pool: pool}
}

func (r *CardRepository) Create(ctx context.Context, card *entity.Card) error {
	owner, err := uuid.Parse(card.Owner)
	if err != nil {
		return apperror.BadRequest("Invalid owner id")
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO cards (name, link, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id::text, created_at
	`, card.Name, card.Link, owner)

	if err := row.Scan(&card.ID, &card.CreatedAt); err != nil {
		if isConstraintViolation(err) {
			return apperror.BadRequest("Invalid data provided")
		}
		return err
	}
	card.Likes = []string{}
	return nil
}

func (r *CardRepository) List(ctx context.Context) ([]entity.Card, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+cardColumns+`
		FROM cards c
		LEFT JOIN card_likes l ON l.card_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []entity.Card{}
	for rows.Next() {
		var card entity.Card
		if err := rows.Scan(&card.ID, &card.Name, &card.Link, &card.Owner,
			&card.CreatedAt, &card.Likes); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func (r *CardRepository) GetByID(ctx context.Context, id string) (*entity.Card, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.BadRequest("Invalid card id")
	}

	card := &entity.Card{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+cardColumns+`
		FROM cards c
		LEFT JOIN card_likes l ON l.card_id = c.id
		WHERE c.id = $1
		GROUP BY c.id
	`, cid)

	if err := row.Scan(&card.ID, &card.Name, &card.Link, &card.Owner,
		&card.CreatedAt, &card.Likes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Card not found")
		}
		return nil, err
	}
	return card, nil
}

func (r *CardRepository) Delete(ctx context.Context, id string) error {
	cid, err := uuid.Parse(id)
	if err != nil {
		return apperror.BadRequest("Invalid card id")
	}

	ct, err := r.pool.Exec(ctx, `DELETE FROM cards WHERE id = $1`, cid)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return apperror.NotFound("Card not found")
	}
	return nil
}

// AddLike inserts into the likes set. ON CONFLICT DO NOTHING makes a repeat
// like idempotent and keeps concurrent likes race-free.
func (r *CardRepository) AddLike(ctx context.Context, cardID, userID string) (*entity.Card, error) {
	cid, err := uuid.Parse(cardID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid card id")
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid user id")
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO card_likes (card_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, cid, uid)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return nil, apperror.NotFound("Card not found")
		}
		return nil, err
	}
	return r.GetByID(ctx, cardID)
}

// RemoveLike deletes from the likes set; removing an absent like is a no-op.
func (r *CardRepository) RemoveLike(ctx context.Context, cardID, userID string) (*entity.Card, error) {
	cid, err := uuid.Parse(cardID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid card id")
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid user id")
	}

	if _, err := r.pool.Exec(ctx, `
		DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2
	`, cid, uid); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, cardID)
}

var _ repository.CardRepository = (*CardRepository)(nil)
