package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mesto-app/mesto-api/internal/domain/entity"
	"github.com/mesto-app/mesto-api/internal/domain/repository"
	"github.com/mesto-app/mesto-api/pkg/apperror"
)

type CardService struct {
	Repo   repository.CardRepository
	Logger *logrus.Logger
}

func NewCardService(repo repository.CardRepository, logger *logrus.Logger) *CardService {
	return &CardService{Repo: repo, Logger: logger}
}

func (s *CardService) List(ctx context.Context) ([]entity.Card, error) {
	return s.Repo.List(ctx)
}

func (s *CardService) Create(ctx context.Context, ownerID, name, link string) (*entity.Card, error) {
	card := &entity.Card{Name: name, Link: link, Owner: ownerID}
	if err := s.Repo.Create(ctx, card); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"card_id": card.ID, "owner": ownerID}).Info("card created")
	return card, nil
}

// Delete removes a card after checking ownership. The check is plain string
// equality on the canonical ids, never a reference comparison.
func (s *CardService) Delete(ctx context.Context, callerID, cardID string) error {
	card, err := s.Repo.GetByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card.Owner != callerID {
		return apperror.Forbidden("You cannot delete someone else's card")
	}
	return s.Repo.Delete(ctx, cardID)
}

func (s *CardService) Like(ctx context.Context, callerID, cardID string) (*entity.Card, error) {
	return s.Repo.AddLike(ctx, cardID, callerID)
}

func (s *CardService) Unlike(ctx context.Context, callerID, cardID string) (*entity.Card, error) {
	return s.Repo.RemoveLike(ctx, cardID, callerID)
}
