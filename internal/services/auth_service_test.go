package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/utils"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeAccountRepo, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	accounts := newFakeAccountRepo()
	svc := NewAuthService(accounts, policy.NewResolver(accounts), key, time.Hour)
	return svc, accounts, key
}

func seedUser(t *testing.T, accounts *fakeAccountRepo, username, password string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	u := &models.User{ID: uuid.New(), Username: username, PasswordHash: hash}
	accounts.users[u.ID] = u
	return u
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, accounts, key := newAuthFixture(t)
	u := seedUser(t, accounts, "maria", "s3cret-pass")
	accounts.ownerAccts[uuid.New()] = &models.OwnerAccount{ID: uuid.New(), UserID: u.ID, OwnerID: uuid.New()}

	res, err := svc.Login(context.Background(), "maria", "s3cret-pass")
	require.NoError(t, err)
	require.Equal(t, u.ID, res.UserID)
	require.Equal(t, "owner", res.Role)

	parsed, err := jwt.Parse(res.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return &key.PublicKey, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	require.Equal(t, tokenIssuer, claims["iss"])
	require.Equal(t, u.ID.String(), claims["sub"])
}

func TestLoginWrongPassword(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	seedUser(t, accounts, "maria", "s3cret-pass")

	_, err := svc.Login(context.Background(), "maria", "wrong")
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	svc, accounts, _ := newAuthFixture(t)
	seedUser(t, accounts, "maria", "s3cret-pass")

	_, wrongPassErr := svc.Login(context.Background(), "maria", "wrong")
	_, unknownUserErr := svc.Login(context.Background(), "nobody", "wrong")

	// Wrong username and wrong password are indistinguishable.
	require.Error(t, wrongPassErr)
	require.Error(t, unknownUserErr)
	require.Equal(t, wrongPassErr.Error(), unknownUserErr.Error())
	requireStatus(t, unknownUserErr, http.StatusUnauthorized)
}
