// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"notetaking-be/internal/dto"
	"notetaking-be/internal/entity"
	"notetaking-be/internal/pkg/logger"
	"notetaking-be/internal/repository/contract"
	"notetaking-be/internal/repository/specification"
	"notetaking-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const authModule = "auth"

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves an access token to the id of a live user.
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

type accessClaims struct {
	UserId   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	tokens     contract.TokenRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
	logger     logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	tokens contract.TokenRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		tokens:     tokens,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		logger:     log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	username := strings.TrimSpace(req.Username)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Username:     username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.logger.Info(authModule, "user registered", map[string]interface{}{"user_id": user.Id, "username": user.Username})

	return &dto.RegisterResponse{Id: user.Id, Username: user.Username}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: strings.TrimSpace(req.Username)})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info(authModule, "user logged in", map[string]interface{}{"user_id": user.Id})

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User: dto.UserResponse{
			Id:       user.Id,
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		// Logging out with a dead token is a no-op.
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	if err := s.tokens.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return err
	}

	s.logger.Info(authModule, "user logged out", map[string]interface{}{"user_id": claims.UserId})
	return nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		return uuid.Nil, err
	}
	if revoked {
		return uuid.Nil, ErrInvalidToken
	}

	userId, err := uuid.Parse(claims.UserId)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, ErrInvalidToken
	}

	return user.Id, nil
}

func (s *authService) issueToken(user *entity.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)

	claims := accessClaims{
		UserId:   user.Id.String(),
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *authService) parseToken(tokenStr string) (*accessClaims, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
