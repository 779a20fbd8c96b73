package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockmaster/stockmaster-api/internal/application/auth"
	"github.com/stockmaster/stockmaster-api/internal/application/dto"
	"github.com/stockmaster/stockmaster-api/internal/domain"
	"github.com/stockmaster/stockmaster-api/internal/domain/entity"
	pkgjwt "github.com/stockmaster/stockmaster-api/pkg/jwt"
)

type memUserRepo struct {
	users map[string]*entity.User // por email
}

func (m *memUserRepo) Create(u *entity.User) error { m.users[u.Email] = u; return nil }

func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	return m.users[email], nil
}

type memOrgRepo struct {
	orgs map[string]*entity.Organization
}

func (m *memOrgRepo) Create(o *entity.Organization) error { m.orgs[o.ID] = o; return nil }
func (m *memOrgRepo) GetByID(id string) (*entity.Organization, error) {
	return m.orgs[id], nil
}

var testTokens = auth.TokenConfig{Secret: "test-secret", Issuer: "stockmaster-test", ExpMinutes: 60}

func nuevoAuthUC() (*auth.UseCase, *memUserRepo, *memOrgRepo) {
	users := &memUserRepo{users: map[string]*entity.User{}}
	orgs := &memOrgRepo{orgs: map[string]*entity.Organization{}}
	return auth.NewUseCase(users, orgs, testTokens), users, orgs
}

func sembrarUsuario(t *testing.T, users *memUserRepo, email, password, status string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:             "user-1",
		OrganizationID: "org-1",
		Email:          email,
		PasswordHash:   string(hash),
		Role:           entity.RoleAdmin,
		Status:         status,
	}
	users.users[email] = u
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_CreaOrganizacionYUsuarioAdmin(t *testing.T) {
	uc, users, orgs := nuevoAuthUC()

	resp, err := uc.Authenticate(dto.AuthRequest{
		Mode:             "signup",
		Email:            "ana@acme.com",
		Password:         "super-secreta",
		Name:             "Ana",
		OrganizationName: "ACME",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role, "el primer usuario del tenant es admin")

	created := users.users["ana@acme.com"]
	require.NotNil(t, created)
	assert.NotEqual(t, "super-secreta", created.PasswordHash, "el password nunca se guarda en claro")

	require.Len(t, orgs.orgs, 1)
	assert.Equal(t, "ACME", orgs.orgs[created.OrganizationID].Name)

	// El token debe quedar atado al tenant recién creado.
	userID, organizationID, role, err := pkgjwt.Parse(testTokens.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, created.OrganizationID, organizationID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestSignup_SinNombreDeOrganizacion_UsaElEmail(t *testing.T) {
	uc, users, orgs := nuevoAuthUC()

	_, err := uc.Authenticate(dto.AuthRequest{Mode: "signup", Email: "ana@acme.com", Password: "super-secreta"})
	require.NoError(t, err)

	created := users.users["ana@acme.com"]
	assert.Equal(t, "ana@acme.com", orgs.orgs[created.OrganizationID].Name)
}

func TestSignup_EmailYaRegistrado_RetornaError(t *testing.T) {
	uc, users, _ := nuevoAuthUC()
	sembrarUsuario(t, users, "ana@acme.com", "super-secreta", "active")

	_, err := uc.Authenticate(dto.AuthRequest{Mode: "signup", Email: "ana@acme.com", Password: "otra-clave-123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas_EmiteToken(t *testing.T) {
	uc, users, _ := nuevoAuthUC()
	sembrarUsuario(t, users, "ana@acme.com", "super-secreta", "active")

	resp, err := uc.Authenticate(dto.AuthRequest{Email: "ana@acme.com", Password: "super-secreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ana@acme.com", resp.User.Email)
}

func TestLogin_PasswordIncorrecto_RetornaInvalidCredentials(t *testing.T) {
	uc, users, _ := nuevoAuthUC()
	sembrarUsuario(t, users, "ana@acme.com", "super-secreta", "active")

	_, err := uc.Authenticate(dto.AuthRequest{Email: "ana@acme.com", Password: "equivocada-123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_EmailInexistente_RetornaInvalidCredentials(t *testing.T) {
	uc, _, _ := nuevoAuthUC()

	// Mismo error que password incorrecto: no se filtra cuál falló.
	_, err := uc.Authenticate(dto.AuthRequest{Email: "nadie@acme.com", Password: "super-secreta"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UsuarioInactivo_RetornaInvalidCredentials(t *testing.T) {
	uc, users, _ := nuevoAuthUC()
	sembrarUsuario(t, users, "ana@acme.com", "super-secreta", "disabled")

	_, err := uc.Authenticate(dto.AuthRequest{Email: "ana@acme.com", Password: "super-secreta"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
