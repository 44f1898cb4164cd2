package validators

import (
	"testing"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(models.SignupRequest{Email: "a@example.com", Password: "longenough"}))
	assert.Error(t, v.Validate(models.SignupRequest{Email: "not-an-email", Password: "longenough"}))
	assert.Error(t, v.Validate(models.SignupRequest{Email: "a@example.com", Password: "short"}))
	assert.Error(t, v.Validate(models.CreateFriendRequest{}))
	assert.NoError(t, v.Validate(models.SaveSecretRequest{Message: ""}))
}
