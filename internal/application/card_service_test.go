package application

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesto-app/mesto-api/internal/domain/entity"
	"github.com/mesto-app/mesto-api/pkg/apperror"
)

// fakeCardRepo mirrors the set semantics of the Postgres card repository.
type fakeCardRepo struct {
	cards map[string]*entity.Card
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: make(map[string]*entity.Card)}
}

func (f *fakeCardRepo) Create(ctx context.Context, card *entity.Card) error {
	card.ID = uuid.NewString()
	card.Likes = []string{}
	stored := *card
	stored.Likes = append([]string{}, card.Likes...)
	f.cards[card.ID] = &stored
	return nil
}

func (f *fakeCardRepo) List(ctx context.Context) ([]entity.Card, error) {
	out := []entity.Card{}
	for _, c := range f.cards {
		out = append(out, *f.copyOf(c))
	}
	return out, nil
}

func (f *fakeCardRepo) GetByID(ctx context.Context, id string) (*entity.Card, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.BadRequest("Invalid card id")
	}
	c, ok := f.cards[id]
	if !ok {
		return nil, apperror.NotFound("Card not found")
	}
	return f.copyOf(c), nil
}

func (f *fakeCardRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.BadRequest("Invalid card id")
	}
	if _, ok := f.cards[id]; !ok {
		return apperror.NotFound("Card not found")
	}
	delete(f.cards, id)
	return nil
}

func (f *fakeCardRepo) AddLike(ctx context.Context, cardID, userID string) (*entity.Card, error) {
	c, err := f.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	stored := f.cards[cardID]
	for _, id := range stored.Likes {
		if id == userID {
			return c, nil
		}
	}
	stored.Likes = append(stored.Likes, userID)
	return f.copyOf(stored), nil
}

func (f *fakeCardRepo) RemoveLike(ctx context.Context, cardID, userID string) (*entity.Card, error) {
	if _, err := f.GetByID(ctx, cardID); err != nil {
		return nil, err
	}
	stored := f.cards[cardID]
	kept := stored.Likes[:0]
	for _, id := range stored.Likes {
		if id != userID {
			kept = append(kept, id)
		}
	}
	stored.Likes = kept
	return f.copyOf(stored), nil
}

func (f *fakeCardRepo) copyOf(c *entity.Card) *entity.Card {
	cp := *c
	cp.Likes = append([]string{}, c.Likes...)
	return &cp
}

func newTestCardService(repo *fakeCardRepo) *CardService {
	return NewCardService(repo, testLogger())
}

func TestCreateCardSetsOwner(t *testing.T) {
	svc := newTestCardService(newFakeCardRepo())
	owner := uuid.NewString()

	card, err := svc.Create(context.Background(), owner, "Эльбрус", "https://example.com/elbrus.jpg")
	require.NoError(t, err)
	assert.Equal(t, owner, card.Owner)
	assert.Empty(t, card.Likes)
	assert.NotEmpty(t, card.ID)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	repo := newFakeCardRepo()
	svc := newTestCardService(repo)
	owner := uuid.NewString()
	stranger := uuid.NewString()

	card, err := svc.Create(context.Background(), owner, "Эльбрус", "https://example.com/elbrus.jpg")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), stranger, card.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperror.Status(err))

	require.NoError(t, svc.Delete(context.Background(), owner, card.ID))

	cards, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestDeleteMissingCardNotFound(t *testing.T) {
	svc := newTestCardService(newFakeCardRepo())

	err := svc.Delete(context.Background(), uuid.NewString(), uuid.NewString())
	assert.Equal(t, http.StatusNotFound, apperror.Status(err))
}

func TestLikeIsIdempotent(t *testing.T) {
	repo := newFakeCardRepo()
	svc := newTestCardService(repo)
	owner := uuid.NewString()
	liker := uuid.NewString()

	card, err := svc.Create(context.Background(), owner, "Домбай", "https://example.com/dombai.jpg")
	require.NoError(t, err)

	first, err := svc.Like(context.Background(), liker, card.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{liker}, first.Likes)

	second, err := svc.Like(context.Background(), liker, card.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{liker}, second.Likes)
}

func TestUnlikeWithoutLikeIsNoop(t *testing.T) {
	repo := newFakeCardRepo()
	svc := newTestCardService(repo)
	owner := uuid.NewString()
	liker := uuid.NewString()
	other := uuid.NewString()

	card, err := svc.Create(context.Background(), owner, "Домбай", "https://example.com/dombai.jpg")
	require.NoError(t, err)
	_, err = svc.Like(context.Background(), liker, card.ID)
	require.NoError(t, err)

	got, err := svc.Unlike(context.Background(), other, card.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{liker}, got.Likes)
}

func TestLikeMalformedIDBadRequest(t *testing.T) {
	svc := newTestCardService(newFakeCardRepo())

	_, err := svc.Like(context.Background(), uuid.NewString(), "not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, apperror.Status(err))
}
