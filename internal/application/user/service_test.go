package user

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Username: "alice",
		FullName: "Alice Kumar",
		Phone:    "9123456780",
		Password: "secret123",
	}
}

func TestRegister_CreatesCitizenByDefault(t *testing.T) {
	svc := NewService(ServiceDeps{UserRepo: memory.NewUserRepo()})

	u, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, u.UserID)
	assert.Equal(t, domain.UserTypeCitizen, u.UserType)
	assert.Equal(t, "9123456780", u.Phone)
}

func TestRegister_PasswordStoredAsDigest(t *testing.T) {
	svc := NewService(ServiceDeps{UserRepo: memory.NewUserRepo()})

	u, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))

	// The digest never serializes.
	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret123")
	assert.False(t, strings.Contains(string(raw), u.PasswordHash))
}

func TestRegister_DuplicatePhoneLeavesOriginal(t *testing.T) {
	repo := memory.NewUserRepo()
	svc := NewService(ServiceDeps{UserRepo: repo})

	first, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	dup := validRequest()
	dup.Username = "bob"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, domain.ErrConflict)

	kept, err := repo.GetByPhone(context.Background(), "9123456780")
	require.NoError(t, err)
	assert.Equal(t, first.UserID, kept.UserID)
	assert.Equal(t, "alice", kept.Username)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := NewService(ServiceDeps{UserRepo: memory.NewUserRepo()})

	req := validRequest()
	req.Phone = ""
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestUpdate_PartialFieldsOnly(t *testing.T) {
	repo := memory.NewUserRepo()
	svc := NewService(ServiceDeps{UserRepo: repo})

	u, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	name := "Alice K."
	updated, err := svc.Update(context.Background(), u.UserID, domain.UpdateUserRequest{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice K.", updated.FullName)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, u.Phone, updated.Phone)
}
