package services

import (
	"context"
	"errors"
	"testing"

	"github.com/anonto42/secret-friends/backend/internal/mocks"
	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/anonto42/secret-friends/backend/pkg/apperrors"
	"github.com/anonto42/secret-friends/backend/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// seedAccounts gives alice a secret, a friendship with bob and a pending
// request to carol. Bob keeps his own secret.
func seedAccounts(t *testing.T, env *testEnv) (alice, bob, carol *models.Profile) {
	t.Helper()
	ctx := context.Background()

	alice = env.user(t, "alice@example.com")
	bob = env.user(t, "bob@example.com")
	carol = env.user(t, "carol@example.com")

	_, err := env.secrets.SaveSecret(ctx, alice.ID, "alice's secret")
	require.NoError(t, err)
	_, err = env.secrets.SaveSecret(ctx, bob.ID, "bob's secret")
	require.NoError(t, err)
	env.befriend(t, alice, bob)
	_, err = env.friends.SendRequest(ctx, alice.ID, carol.Email)
	require.NoError(t, err)
	return alice, bob, carol
}

func newAccountService(env *testEnv, identity IdentityProvider, publisher events.Publisher) *AccountService {
	return NewAccountService(identity, env.secrets, env.friends, env.notifications, publisher, discardLogger())
}

func TestAccountService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("removes everything the user owns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identity := mocks.NewMockIdentityProvider(ctrl)
		publisher := mocks.NewMockPublisher(ctrl)
		env := newTestEnv(t)
		alice, bob, carol := seedAccounts(t, env)

		identity.EXPECT().VerifyToken(gomock.Any(), "alice-token").Return(alice.ID, nil)
		identity.EXPECT().DeleteIdentity(gomock.Any(), alice.ID).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e events.Event) error {
			assert.Equal(t, events.AccountDeleted, e.Type)
			assert.Equal(t, alice.ID, e.ActorID)
			return nil
		})

		msg, err := newAccountService(env, identity, publisher).DeleteAccount(ctx, "", "alice-token")
		require.NoError(t, err)
		assert.Equal(t, AccountDeletedMessage, msg)

		secret, err := env.secrets.GetSecret(ctx, alice.ID)
		require.NoError(t, err)
		assert.Nil(t, secret)

		ok, err := env.friends.AreFriends(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		incoming, err := env.friends.ListIncomingRequests(ctx, carol.ID)
		require.NoError(t, err)
		assert.Empty(t, incoming)

		for _, other := range []*models.Profile{bob, carol} {
			page, err := env.notifications.List(ctx, other.ID, 1, 50)
			require.NoError(t, err)
			assert.Empty(t, page.Notifications, "notifications caused by alice are gone")
		}

		// other users keep their data
		secret, err = env.secrets.GetSecret(ctx, bob.ID)
		require.NoError(t, err)
		require.NotNil(t, secret)
		assert.Equal(t, "bob's secret", secret.Message)
	})

	t.Run("invalid token deletes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identity := mocks.NewMockIdentityProvider(ctrl)
		env := newTestEnv(t)
		alice, bob, _ := seedAccounts(t, env)

		identity.EXPECT().VerifyToken(gomock.Any(), "garbage").Return("", apperrors.ErrInvalidToken)

		_, err := newAccountService(env, identity, events.NopPublisher{}).DeleteAccount(ctx, "", "garbage")
		assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))

		secret, err := env.secrets.GetSecret(ctx, alice.ID)
		require.NoError(t, err)
		assert.NotNil(t, secret)
		ok, err := env.friends.AreFriends(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("verifier failure of another kind is still unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identity := mocks.NewMockIdentityProvider(ctrl)
		env := newTestEnv(t)

		identity.EXPECT().VerifyToken(gomock.Any(), "tok").Return("", errors.New("jwks fetch failed"))

		_, err := newAccountService(env, identity, events.NopPublisher{}).DeleteAccount(ctx, "", "tok")
		assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))
	})

	t.Run("a userID that is not the token subject is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identity := mocks.NewMockIdentityProvider(ctrl)
		env := newTestEnv(t)
		alice, bob, _ := seedAccounts(t, env)

		identity.EXPECT().VerifyToken(gomock.Any(), "alice-token").Return(alice.ID, nil)

		_, err := newAccountService(env, identity, events.NopPublisher{}).DeleteAccount(ctx, bob.ID, "alice-token")
		assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))

		secret, err := env.secrets.GetSecret(ctx, bob.ID)
		require.NoError(t, err)
		assert.NotNil(t, secret)
	})

	t.Run("identity failure keeps earlier steps committed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identity := mocks.NewMockIdentityProvider(ctrl)
		env := newTestEnv(t)
		alice, bob, _ := seedAccounts(t, env)

		identity.EXPECT().VerifyToken(gomock.Any(), "alice-token").Return(alice.ID, nil)
		identity.EXPECT().DeleteIdentity(gomock.Any(), alice.ID).Return(errors.New("firebase 503"))

		_, err := newAccountService(env, identity, events.NopPublisher{}).DeleteAccount(ctx, alice.ID, "alice-token")
		assert.True(t, apperrors.Is(err, apperrors.CodeProvider))

		secret, err := env.secrets.GetSecret(ctx, alice.ID)
		require.NoError(t, err)
		assert.Nil(t, secret)
		ok, err := env.friends.AreFriends(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store failure stops before the identity is touched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identity := mocks.NewMockIdentityProvider(ctrl)
		secrets := mocks.NewMockSecretRepository(ctrl)
		env := newTestEnv(t, withSecretRepo(secrets))
		alice, bob := env.user(t, "alice@example.com"), env.user(t, "bob@example.com")
		env.befriend(t, alice, bob)

		identity.EXPECT().VerifyToken(gomock.Any(), "alice-token").Return(alice.ID, nil)
		secrets.EXPECT().DeleteByUserID(gomock.Any(), alice.ID).Return(int64(0), errors.New("disk full"))
		// DeleteIdentity is not expected; gomock fails the test if it is called.

		_, err := newAccountService(env, identity, events.NopPublisher{}).DeleteAccount(ctx, "", "alice-token")
		assert.True(t, apperrors.Is(err, apperrors.CodeStore))

		ok, err := env.friends.AreFriends(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, ok, "later steps did not run")
	})
}
