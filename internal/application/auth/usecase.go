package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/domain"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	"github.com/stockmaster/stockmaster-api/internal/domain/repository"
	"github.com/stockmaster/stockmaster-api/pkg/jwt"
)

// ErrInvalidCredentials credenciales incorrectas en login. Mismo mensaje para
// email inexistente y password incorrecto: no filtramos cuál falló.
var ErrInvalidCredentials = errors.New("credenciales inválidas")

// TokenConfig parámetros de emisión de JWT.
type TokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase signup y login. Signup crea la organización (tenant) y su primer
// usuario admin en un solo paso, como lo hacía el flujo original.
type UseCase struct {
	users  repository.UserRepository
	orgs   repository.OrganizationRepository
	tokens TokenConfig
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(users repository.UserRepository, orgs repository.OrganizationRepository, tokens TokenConfig) *UseCase {
	return &UseCase{users: users, orgs: orgs, tokens: tokens}
}

// Authenticate despacha según Mode: "signup" registra, cualquier otro valor
// (incluido vacío) hace login.
func (uc *UseCase) Authenticate(in dto.AuthRequest) (*dto.AuthResponse, error) {
	if in.Mode == "signup" {
		return uc.signup(in)
	}
	return uc.login(in)
}

func (uc *UseCase) signup(in dto.AuthRequest) (*dto.AuthResponse, error) {
	existing, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	orgName := in.OrganizationName
	if orgName == "" {
		orgName = in.Email
	}
	org := &entity.Organization{
		ID:        uuid.New().String(),
		Name:      orgName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.orgs.Create(org); err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:             uuid.New().String(),
		OrganizationID: org.ID,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Name:           in.Name,
		Role:           entity.RoleAdmin,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}

	return uc.respond(user)
}

func (uc *UseCase) login(in dto.AuthRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status != "" && user.Status != "active" {
		return nil, ErrInvalidCredentials
	}
	return uc.respond(user)
}

func (uc *UseCase) respond(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.tokens.Secret, user.ID, user.OrganizationID, user.Role, uc.tokens.Issuer, uc.tokens.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:             user.ID,
			OrganizationID: user.OrganizationID,
			Email:          user.Email,
			Name:           user.Name,
			Role:           user.Role,
			CreatedAt:      user.CreatedAt,
		},
	}, nil
}
