package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("known username", func(t *testing.T) {
		user, err := svc.Auth.Login(ctx, &request.LoginRequest{Username: "admin"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), user.ID)
		assert.Equal(t, "Admin User", user.FullName)
		assert.Equal(t, entity.RoleAdmin, user.Role)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Auth.Login(ctx, &request.LoginRequest{Username: "nobody"})
		assert.ErrorIs(t, err, entity.ErrUserNotFound)
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := svc.Auth.Login(ctx, &request.LoginRequest{})
		assert.Error(t, err)
	})
}
