package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/erp-pro/erp-pro-api/internal/application/dto"
	"github.com/erp-pro/erp-pro-api/internal/domain"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
)

type fakeProfileRepo struct {
	byEmail map[string]*entity.Profile
}

func (f *fakeProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	if _, ok := f.byEmail[p.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	f.byEmail[p.Email] = p
	return nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	for _, p := range f.byEmail {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*entity.Profile, error) {
	p, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) List(_ context.Context) ([]*entity.Profile, error) { return nil, nil }

func (f *fakeProfileRepo) UpdateRole(_ context.Context, id, role string) error {
	for _, p := range f.byEmail {
		if p.ID == id {
			p.Role = role
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type fakeGrantRepo struct {
	grants map[string]*entity.AllowedEmail
}

func (f *fakeGrantRepo) Create(_ context.Context, g *entity.AllowedEmail) error {
	if _, ok := f.grants[g.Email]; ok {
		return domain.ErrDuplicate
	}
	f.grants[g.Email] = g
	return nil
}

func (f *fakeGrantRepo) GetByEmail(_ context.Context, email string) (*entity.AllowedEmail, error) {
	g, ok := f.grants[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return g, nil
}

func (f *fakeGrantRepo) List(_ context.Context) ([]*entity.AllowedEmail, error) { return nil, nil }
func (f *fakeGrantRepo) Delete(_ context.Context, id string) error              { return nil }

func setupAuth() (*UseCase, *fakeProfileRepo, *fakeGrantRepo) {
	profiles := &fakeProfileRepo{byEmail: map[string]*entity.Profile{}}
	grants := &fakeGrantRepo{grants: map[string]*entity.AllowedEmail{
		"vendedor@tienda.uz": {ID: "g1", Email: "vendedor@tienda.uz", Role: entity.RoleSeller},
		"jefe@tienda.uz":     {ID: "g2", Email: "jefe@tienda.uz", Role: entity.RoleAdmin},
	}}
	uc := NewUseCase(profiles, grants, Config{
		JWTSecret:  "test-secret",
		Issuer:     "erp-pro-test",
		ExpMinutes: 60,
	})
	return uc, profiles, grants
}

func TestRegister_EmailAutorizado(t *testing.T) {
	uc, profiles, _ := setupAuth()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "Vendedor@Tienda.uz", // el email se normaliza a minúsculas
		Password: "secreto123",
		FullName: "Aziza Karimova",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "vendedor@tienda.uz", out.Profile.Email)
	// el rol se copia de la concesión en el momento del registro
	assert.Equal(t, entity.RoleSeller, out.Profile.Role)

	stored := profiles.byEmail["vendedor@tienda.uz"]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestRegister_RolAdminDesdeConcesion(t *testing.T) {
	uc, _, _ := setupAuth()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "jefe@tienda.uz",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Profile.Role)
}

func TestRegister_EmailNoAutorizado(t *testing.T) {
	uc, _, _ := setupAuth()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "intruso@tienda.uz",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailNotAllowed)
}

func TestRegister_EmailYaRegistrado(t *testing.T) {
	uc, _, _ := setupAuth()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "vendedor@tienda.uz", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "vendedor@tienda.uz", Password: "otroSecreto"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_PasswordCorto(t *testing.T) {
	uc, _, _ := setupAuth()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "vendedor@tienda.uz",
		Password: "abc",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, _, _ := setupAuth()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "vendedor@tienda.uz", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "vendedor@tienda.uz", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleSeller, out.Profile.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _, _ := setupAuth()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "vendedor@tienda.uz", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "vendedor@tienda.uz", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc, _, _ := setupAuth()

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@tienda.uz", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioBloqueado(t *testing.T) {
	uc, profiles, _ := setupAuth()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "vendedor@tienda.uz", Password: "secreto123"})
	require.NoError(t, err)

	// bloquear después del registro: el siguiente login se rechaza
	profiles.byEmail["vendedor@tienda.uz"].Role = entity.RoleBlocked

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "vendedor@tienda.uz", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserBlocked)
}

func TestLogin_RolVacioAsumeSeller(t *testing.T) {
	uc, profiles, _ := setupAuth()
	ctx := context.Background()

	// perfil legado sin rol asignado
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	profiles.byEmail["legado@tienda.uz"] = &entity.Profile{
		ID:           "u-legacy",
		Email:        "legado@tienda.uz",
		PasswordHash: string(hash),
		Role:         "",
	}

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "legado@tienda.uz", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, out.Profile.Role)
}
