package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/strikearena/SA-ReservationService/internal/domain"
	userRepo "github.com/strikearena/SA-ReservationService/internal/infra/storage/user"
	"github.com/strikearena/SA-ReservationService/internal/service/auth/models"
)

// Service сервис регистрации и аутентификации игроков
type Service struct {
	userRepo UserRepository
	tokens   TokenManager
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, tokens TokenManager, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// SignUp регистрирует нового пользователя и сразу выдает токен
func (s *Service) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	s.logger.Info("SignUp: registering user email=%s", email)

	if email == "" || !strings.Contains(email, "@") {
		s.logger.Warn("SignUp: invalid email=%q", req.Email)
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if len(req.Password) < domain.MinPasswordLength {
		s.logger.Warn("SignUp: weak password for email=%s", email)
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("SignUp: failed to hash password for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignUp - hash password: %v", ErrInternal, err)
	}

	account := &domain.UserAccount{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	created, err := s.userRepo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("SignUp: email=%s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("SignUp: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignUp - repository error: %v", ErrInternal, err)
	}

	token, err := s.tokens.Create(created.ID, string(created.Role), created.Email)
	if err != nil {
		s.logger.Error("SignUp: failed to issue token for user=%s: %v", created.ID, err)
		return nil, fmt.Errorf("%w: SignUp - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("SignUp: successfully registered user=%s", created.ID)

	return &models.AuthResponse{
		Token:  token,
		UserID: created.ID,
		Email:  created.Email,
		Role:   string(created.Role),
	}, nil
}

// SignIn проверяет пароль и выдает токен
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	s.logger.Info("SignIn: login attempt email=%s", email)

	account, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("SignIn: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignIn - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("SignIn: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Create(account.ID, string(account.Role), account.Email)
	if err != nil {
		s.logger.Error("SignIn: failed to issue token for user=%s: %v", account.ID, err)
		return nil, fmt.Errorf("%w: SignIn - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("SignIn: successful login user=%s", account.ID)

	return &models.AuthResponse{
		Token:  token,
		UserID: account.ID,
		Email:  account.Email,
		Role:   string(account.Role),
	}, nil
}

// Вспомогательные методы

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
