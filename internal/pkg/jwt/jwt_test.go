package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := New("access-secret", "refresh-secret", time.Minute, time.Hour)

	companyID := int64(3)
	token, err := svc.GenerateToken(42, "company_admin", &companyID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "company_admin", claims.Role)
	assert.Equal(t, int64(3), *claims.CompanyID)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := New("access-secret", "refresh-secret", time.Minute, time.Hour)
	other := New("other-secret", "refresh-secret", time.Minute, time.Hour)

	token, err := svc.GenerateToken(42, "customer", nil)
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestAccessAndRefreshSecretsAreSeparate(t *testing.T) {
	svc := New("access-secret", "refresh-secret", time.Minute, time.Hour)

	access, err := svc.GenerateToken(42, "customer", nil)
	assert.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(42, "customer", nil)
	assert.NoError(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
	_, err = svc.ValidateToken(refresh)
	assert.Error(t, err)

	claims, err := svc.ValidateRefreshToken(refresh)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := New("access-secret", "refresh-secret", -time.Minute, time.Hour)

	token, err := svc.GenerateToken(42, "customer", nil)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := New("access-secret", "refresh-secret", time.Minute, time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
