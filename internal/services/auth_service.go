package services

import (
	"context"
	"math"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/postoverde/cashback-backend/internal/domain/entities"
	"github.com/postoverde/cashback-backend/internal/domain/errors"
	"github.com/postoverde/cashback-backend/internal/domain/ports"
	"github.com/postoverde/cashback-backend/internal/domain/repositories"
	"github.com/postoverde/cashback-backend/internal/domain/valueobjects"
	"github.com/postoverde/cashback-backend/internal/infrastructure/auth"
)

// bcryptCost segue o custo usado pelo sistema original no cadastro
const bcryptCost = 12

// AuthService contém a lógica de cadastro e autenticação
type AuthService struct {
	userRepo repositories.UserRepository
	limiter  ports.LoginLimiter
	tokens   *auth.TokenManager
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	limiter ports.LoginLimiter,
	tokens *auth.TokenManager,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		limiter:  limiter,
		tokens:   tokens,
		logger:   logger,
	}
}

// RegisterInput representa os dados de cadastro
type RegisterInput struct {
	Name     string
	Email    string
	CPF      string
	Password string
}

// Register cadastra um usuário com o role informado. Clientes e
// funcionários passam pelas mesmas validações.
func (s *AuthService) Register(ctx context.Context, input RegisterInput, role entities.Role) (*entities.User, error) {
	input.Name = strings.TrimSpace(input.Name)

	if len(input.Name) < 3 {
		return nil, &errors.ValidationError{Field: "nome_completo", Message: "error.name_too_short"}
	}
	if len(input.Name) > 100 {
		return nil, &errors.ValidationError{Field: "nome_completo", Message: "error.name_too_long"}
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	cpf, err := valueobjects.NewCPF(input.CPF)
	if err != nil {
		return nil, errors.ErrInvalidCPF
	}

	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	s.logger.Info("registering user", "cpf", cpf.Masked(), "role", string(role))

	existing, err := s.userRepo.FindByCPF(ctx, cpf.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrCPFAlreadyExists
	}

	existing, err = s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        email,
		CPF:          cpf,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "id", user.ID, "cpf", cpf.Masked(), "role", string(role))
	return user, nil
}

// Login autentica por CPF e senha. Tentativas malsucedidas alimentam o
// limiter; estourado o limite, a resposta é de bloqueio temporário mesmo
// com credenciais corretas. Sucesso zera o contador.
func (s *AuthService) Login(ctx context.Context, rawCPF, password string) (*entities.User, string, error) {
	cpf, err := valueobjects.NewCPF(rawCPF)
	if err != nil {
		return nil, "", errors.ErrInvalidCPF
	}

	if retryAfter, limited := s.limiter.Check(cpf.String()); limited {
		minutes := int(math.Ceil(retryAfter.Minutes()))
		if minutes < 1 {
			minutes = 1
		}
		s.logger.Warn("login rate limited", "cpf", cpf.Masked(), "retry_minutes", minutes)
		return nil, "", &errors.TooManyAttemptsError{RetryAfterMinutes: minutes}
	}

	user, err := s.userRepo.FindByCPF(ctx, cpf.String())
	if err != nil {
		return nil, "", err
	}

	if user == nil {
		s.limiter.RegisterFailure(cpf.String())
		return nil, "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.limiter.RegisterFailure(cpf.String())
		return nil, "", errors.ErrInvalidCredentials
	}

	s.limiter.Reset(cpf.String())

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("login successful", "id", user.ID, "cpf", cpf.Masked(), "role", string(user.Role))
	return user, token, nil
}

// validatePassword aplica a política de senha do cadastro:
// 6 a 50 caracteres com maiúscula, minúscula e dígito
func validatePassword(password string) error {
	if len(password) < 6 {
		return &errors.ValidationError{Field: "senha", Message: "error.password_too_short"}
	}
	if len(password) > 50 {
		return &errors.ValidationError{Field: "senha", Message: "error.password_too_long"}
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return &errors.ValidationError{Field: "senha", Message: "error.password_needs_upper"}
	}
	if !hasLower {
		return &errors.ValidationError{Field: "senha", Message: "error.password_needs_lower"}
	}
	if !hasDigit {
		return &errors.ValidationError{Field: "senha", Message: "error.password_needs_digit"}
	}

	return nil
}
