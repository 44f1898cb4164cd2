package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProfile(t *testing.T, repo *PostgresProfileRepository, email string) *models.Profile {
	t.Helper()
	p := &models.Profile{Email: email}
	require.NoError(t, repo.Create(context.Background(), p))
	require.NotEmpty(t, p.ID)
	return p
}

func TestPostgresProfileRepository(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := NewPostgresProfileRepository(db)

	alice := createProfile(t, repo, "alice@example.com")
	bob := createProfile(t, repo, "bob@example.com")

	err := repo.Create(ctx, &models.Profile{Email: "alice@example.com"})
	assert.True(t, errors.Is(err, ErrConflict), "email is unique: %v", err)

	got, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "ghost@example.com")
	assert.True(t, errors.Is(err, ErrNotFound))

	byID, err := repo.GetByIDs(ctx, []string{alice.ID, bob.ID, "00000000-0000-0000-0000-000000000000"})
	require.NoError(t, err)
	assert.Len(t, byID, 2)

	uid := "fb-1"
	alice.FirebaseUID = &uid
	require.NoError(t, repo.Update(ctx, alice))
	got, err = repo.GetByFirebaseUID(ctx, "fb-1")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	require.NoError(t, repo.Delete(ctx, alice.ID))
	require.NoError(t, repo.Delete(ctx, alice.ID))
	_, err = repo.GetByID(ctx, alice.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPostgresSecretRepository_Upsert(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	profiles := NewPostgresProfileRepository(db)
	repo := NewPostgresSecretRepository(db)
	alice := createProfile(t, profiles, "alice@example.com")

	_, err := repo.GetByUserID(ctx, alice.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	first, err := repo.Upsert(ctx, alice.ID, "one")
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, alice.ID, "two")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "one row per user")
	assert.Equal(t, "two", second.Message)

	n, err := repo.DeleteByUserID(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestPostgresFriendRequestRepository(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	profiles := NewPostgresProfileRepository(db)
	repo := NewPostgresFriendRequestRepository(db)

	alice := createProfile(t, profiles, "alice@example.com")
	bob := createProfile(t, profiles, "bob@example.com")
	carol := createProfile(t, profiles, "carol@example.com")

	base := time.Now().UTC().Truncate(time.Second)
	ab := &models.FriendRequest{FromUserID: alice.ID, ToUserID: bob.ID, CreatedAt: base}
	cb := &models.FriendRequest{FromUserID: carol.ID, ToUserID: bob.ID, CreatedAt: base.Add(-time.Minute)}
	require.NoError(t, repo.Create(ctx, ab))
	require.NoError(t, repo.Create(ctx, cb))
	assert.Equal(t, models.FriendRequestStatusPending, ab.Status)

	pending, err := repo.ListIncomingPending(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, cb.ID, pending[0].ID, "oldest first")

	open, err := repo.FindOpenBetween(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, ab.ID, open.ID)

	changed, err := repo.TransitionStatus(ctx, ab.ID, models.FriendRequestStatusPending, models.FriendRequestStatusAccepted, time.Now())
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.TransitionStatus(ctx, ab.ID, models.FriendRequestStatusPending, models.FriendRequestStatusRejected, time.Now())
	require.NoError(t, err)
	assert.False(t, changed, "only a pending request moves")

	for _, pair := range [][2]string{{alice.ID, bob.ID}, {bob.ID, alice.ID}} {
		ok, err := repo.ExistsAccepted(ctx, pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := repo.ExistsAccepted(ctx, carol.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	accepted, err := repo.ListAccepted(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, alice.ID, accepted[0].Other(bob.ID))

	n, err := repo.DeleteByUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestPostgresNotificationRepository(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	profiles := NewPostgresProfileRepository(db)
	repo := NewPostgresNotificationRepository(db)

	alice := createProfile(t, profiles, "alice@example.com")
	bob := createProfile(t, profiles, "bob@example.com")

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &models.Notification{
			Type:        models.NotificationTypeFriendRequest,
			ActorID:     alice.ID,
			RecipientID: bob.ID,
		}))
	}

	items, total, err := repo.ListByRecipient(ctx, bob.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.EqualValues(t, 3, total)

	ok, err := repo.MarkAsRead(ctx, alice.ID, items[0].ID)
	require.NoError(t, err)
	assert.False(t, ok, "not alice's notification")

	ok, err = repo.MarkAsRead(ctx, bob.ID, items[0].ID)
	require.NoError(t, err)
	assert.True(t, ok)

	unread, err := repo.UnreadCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	n, err := repo.DeleteByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestPostgresFriendRequestRepository_OpenPairIsUnique(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	profiles := NewPostgresProfileRepository(db)
	repo := NewPostgresFriendRequestRepository(db)

	alice := createProfile(t, profiles, "alice@example.com")
	bob := createProfile(t, profiles, "bob@example.com")

	first := &models.FriendRequest{FromUserID: alice.ID, ToUserID: bob.ID}
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, &models.FriendRequest{FromUserID: bob.ID, ToUserID: alice.ID})
	assert.True(t, errors.Is(err, ErrConflict), "reverse direction shares the pair: %v", err)

	_, err = repo.TransitionStatus(ctx, first.ID, models.FriendRequestStatusPending, models.FriendRequestStatusRejected, time.Now())
	require.NoError(t, err)
	assert.NoError(t, repo.Create(ctx, &models.FriendRequest{FromUserID: bob.ID, ToUserID: alice.ID}), "a rejected request frees the pair")
}

func TestPostgresRepositories_MalformedIDs(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	profiles := NewPostgresProfileRepository(db)
	requests := NewPostgresFriendRequestRepository(db)
	secrets := NewPostgresSecretRepository(db)
	notifications := NewPostgresNotificationRepository(db)

	alice := createProfile(t, profiles, "alice@example.com")

	_, err := profiles.GetByID(ctx, "abc")
	assert.True(t, errors.Is(err, ErrNotFound), "%v", err)
	byID, err := profiles.GetByIDs(ctx, []string{"abc", alice.ID})
	require.NoError(t, err)
	assert.Len(t, byID, 1)
	assert.NoError(t, profiles.Delete(ctx, "abc"))

	_, err = requests.GetByID(ctx, "abc")
	assert.True(t, errors.Is(err, ErrNotFound), "%v", err)
	_, err = requests.FindOpenBetween(ctx, alice.ID, "abc")
	assert.True(t, errors.Is(err, ErrNotFound), "%v", err)

	ok, err := requests.ExistsAccepted(ctx, alice.ID, "abc")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = requests.TransitionStatus(ctx, "abc", models.FriendRequestStatusPending, models.FriendRequestStatusAccepted, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = secrets.GetByUserID(ctx, "abc")
	assert.True(t, errors.Is(err, ErrNotFound), "%v", err)

	ok, err = notifications.MarkAsRead(ctx, alice.ID, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
}
