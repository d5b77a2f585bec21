package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepro/invoice-api/internal/application/auth"
	"github.com/invoicepro/invoice-api/internal/application/dto"
	"github.com/invoicepro/invoice-api/internal/domain"
	"github.com/invoicepro/invoice-api/internal/domain/entity"
	"github.com/invoicepro/invoice-api/pkg/jwt"
)

var testJWTCfg = auth.JWTConfig{
	Secret:     "test-secret-at-least-32-bytes-long!!",
	ExpMinutes: 60,
	Issuer:     "invoice-api",
}

type fakeUserRepo struct {
	users map[string]*entity.User // keyed by ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email: "owner@nimbus.test", Password: "correct horse", FirstName: "Alex", LastName: "Reis",
	}
}

func TestRegister_HashesPasswordAndIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg)

	resp, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.Equal(t, "owner@nimbus.test", resp.User.Email)
	assert.Equal(t, entity.RoleBusinessUser, resp.User.Role)

	// Token identifies the freshly created account.
	userID, role, err := jwt.Parse(testJWTCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleBusinessUser, role)

	// The stored record never carries the plaintext password.
	stored, err := repo.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.True(t, stored.IsActive)
}

func TestRegister_Validation(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTCfg)

	req := registerReq()
	req.Email = ""
	_, err := uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)

	req = registerReq()
	req.Password = "short"
	_, err = uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLogin_ExchangesCredentialsForToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg)
	registered, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "owner@nimbus.test", Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTCfg)
	_, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, errWrongPassword := uc.Login(context.Background(), dto.LoginRequest{
		Email: "owner@nimbus.test", Password: "wrong password",
	})
	_, errUnknownEmail := uc.Login(context.Background(), dto.LoginRequest{
		Email: "nobody@nimbus.test", Password: "correct horse",
	})

	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownEmail)
	assert.ErrorIs(t, errWrongPassword, domain.ErrUnauthorized)
	assert.ErrorIs(t, errUnknownEmail, domain.ErrUnauthorized)
	// Identical messages keep the endpoint useless for email probing.
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestLogin_DisabledAccountIsRejected(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWTCfg)
	registered, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	repo.users[registered.User.ID].IsActive = false

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "owner@nimbus.test", Password: "correct horse",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMe_ResolvesAccount(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWTCfg)
	registered, err := uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	me, err := uc.Me(context.Background(), registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner@nimbus.test", me.Email)

	_, err = uc.Me(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
