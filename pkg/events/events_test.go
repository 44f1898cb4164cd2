package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StampsTimeInUTC(t *testing.T) {
	e := New(FriendRequestSent, "alice", "req-1")

	assert.Equal(t, FriendRequestSent, e.Type)
	assert.Equal(t, "alice", e.ActorID)
	assert.Equal(t, "req-1", e.SubjectID)
	assert.False(t, e.OccurredAt.IsZero())
	assert.Equal(t, "UTC", e.OccurredAt.Location().String())
}

func TestEvent_JSONOmitsEmptySubject(t *testing.T) {
	data, err := json.Marshal(New(AccountDeleted, "bob", ""))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "account.deleted", raw["type"])
	assert.NotContains(t, raw, "subject_id")
	assert.NotContains(t, raw, "attributes")
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), New(FriendRequestAccepted, "a", "b")))
}
