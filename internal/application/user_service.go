package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mesto-app/mesto-api/internal/domain/entity"
	"github.com/mesto-app/mesto-api/internal/domain/repository"
	"github.com/mesto-app/mesto-api/pkg/apperror"
	"github.com/mesto-app/mesto-api/pkg/helpers"
)

// loginFailedMessage is shared by the unknown-email and wrong-password
// paths so callers cannot tell which one happened.
const loginFailedMessage = "Incorrect email or password"

type UserService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Name     string
	About    string
	Avatar   string
	Email    string
	Password string
}

// Register hashes the password, applies profile defaults and persists the
// record. The returned entity never serializes the hash.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Name:     in.Name,
		About:    in.About,
		Avatar:   in.Avatar,
		Email:    in.Email,
		Password: hash,
	}
	if u.Name == "" {
		u.Name = entity.DefaultName
	}
	if u.About == "" {
		u.About = entity.DefaultAbout
	}
	if u.Avatar == "" {
		u.Avatar = entity.DefaultAvatar
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	return u, nil
}

// Login verifies credentials and issues a signed session token.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", apperror.Unauthorized(loginFailedMessage)
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", apperror.Unauthorized(loginFailedMessage)
	}

	token, err := s.JWT.Generate(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token signing failed")
		return nil, "", err
	}
	return u, token, nil
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdateProfile changes name and about on the caller's own record; the id
// comes from the session, never from the payload.
func (s *UserService) UpdateProfile(ctx context.Context, userID, name, about string) (*entity.User, error) {
	return s.Repo.UpdateProfile(ctx, userID, name, about)
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID, avatar string) (*entity.User, error) {
	return s.Repo.UpdateAvatar(ctx, userID, avatar)
}
