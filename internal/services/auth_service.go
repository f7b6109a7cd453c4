package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/flexilease/flexilease-backend/internal/domain/errors"
	"github.com/flexilease/flexilease-backend/internal/domain/ports"
	"github.com/flexilease/flexilease-backend/internal/domain/repositories"
)

// AuthService emite tokens de acesso para usuários cadastrados
type AuthService struct {
	userRepo repositories.UserRepository
	secret   []byte
	expiry   time.Duration
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService. O segredo vem da
// configuração e é obrigatório; não existe fallback.
func NewAuthService(
	userRepo repositories.UserRepository,
	secret string,
	expiry time.Duration,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		secret:   []byte(secret),
		expiry:   expiry,
		logger:   logger,
	}
}

// Authenticate valida email+senha e retorna um JWT assinado (HS256)
// com o id do usuário e validade limitada. Email desconhecido e senha
// errada produzem o mesmo erro, sem distinção para o chamador.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":  user.ID,
		"iat": now.Unix(),
		"exp": now.Add(s.expiry).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}

	s.logger.Info("user authenticated", "user_id", user.ID)
	return token, nil
}
