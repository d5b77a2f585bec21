package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepro/invoice-api/pkg/jwt"
)

const (
	testSecret = "test-secret-at-least-32-bytes-long!!"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, testUserID, "BUSINESS_USER", "invoice-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "BUSINESS_USER", role)
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	token, err := jwt.Generate(testSecret, testUserID, "ADMIN", "invoice-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("another-secret-that-never-signed-it!", token)
	assert.Error(t, err)
}

func TestParse_RejectsExpiredToken(t *testing.T) {
	token, err := jwt.Generate(testSecret, testUserID, "ADMIN", "invoice-api", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestParse_RejectsGarbage(t *testing.T) {
	_, _, err := jwt.Parse(testSecret, "not.a.token")
	assert.Error(t, err)
}

func TestGenerate_RequiresSecret(t *testing.T) {
	_, err := jwt.Generate("", testUserID, "ADMIN", "invoice-api", 60)
	assert.Error(t, err)
}
