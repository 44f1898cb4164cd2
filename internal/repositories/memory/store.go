// Package memory holds in-process implementations of the repository ports.
// They back STORE_DRIVER=memory and the service tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/anonto42/secret-friends/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store keeps every table behind one lock so the cascading deletes observe a
// consistent snapshot.
type Store struct {
	mu            sync.RWMutex
	now           func() time.Time
	profiles      map[string]models.Profile
	secrets       map[string]models.SecretMessage // keyed by user id
	requests      map[string]models.FriendRequest
	notifications map[string]models.Notification
}

func NewStore() *Store {
	return &Store{
		now:           time.Now,
		profiles:      make(map[string]models.Profile),
		secrets:       make(map[string]models.SecretMessage),
		requests:      make(map[string]models.FriendRequest),
		notifications: make(map[string]models.Notification),
	}
}

// WithClock replaces the time source. Tests use it to order requests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Profiles() *ProfileRepository             { return &ProfileRepository{s} }
func (s *Store) Secrets() *SecretRepository               { return &SecretRepository{s} }
func (s *Store) FriendRequests() *FriendRequestRepository { return &FriendRequestRepository{s} }
func (s *Store) Notifications() *NotificationRepository   { return &NotificationRepository{s} }

var (
	_ repositories.ProfileRepository       = (*ProfileRepository)(nil)
	_ repositories.SecretRepository        = (*SecretRepository)(nil)
	_ repositories.FriendRequestRepository = (*FriendRequestRepository)(nil)
	_ repositories.NotificationRepository  = (*NotificationRepository)(nil)
)

func notFound(op string) error {
	return errors.Wrap(repositories.ErrNotFound, op)
}

// ProfileRepository is the in-memory ProfileRepository.
type ProfileRepository struct{ s *Store }

func (r *ProfileRepository) Create(_ context.Context, p *models.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.profiles {
		if existing.Email == p.Email {
			return errors.Wrapf(repositories.ErrConflict, "profileRepo.Create: duplicate email %q", p.Email)
		}
		if p.FirebaseUID != nil && existing.FirebaseUID != nil && *existing.FirebaseUID == *p.FirebaseUID {
			return errors.Wrap(repositories.ErrConflict, "profileRepo.Create: duplicate firebase uid")
		}
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := r.s.now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	r.s.profiles[p.ID] = *p
	return nil
}

func (r *ProfileRepository) GetByID(_ context.Context, id string) (*models.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.profiles[id]
	if !ok {
		return nil, notFound("profileRepo.GetByID")
	}
	return &p, nil
}

func (r *ProfileRepository) GetByEmail(_ context.Context, email string) (*models.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.profiles {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, notFound("profileRepo.GetByEmail")
}

func (r *ProfileRepository) GetByFirebaseUID(_ context.Context, uid string) (*models.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.profiles {
		if p.FirebaseUID != nil && *p.FirebaseUID == uid {
			return &p, nil
		}
	}
	return nil, notFound("profileRepo.GetByFirebaseUID")
}

func (r *ProfileRepository) GetByIDs(_ context.Context, ids []string) (map[string]*models.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make(map[string]*models.Profile, len(ids))
	for _, id := range ids {
		if p, ok := r.s.profiles[id]; ok {
			out[id] = &p
		}
	}
	return out, nil
}

func (r *ProfileRepository) Update(_ context.Context, p *models.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.profiles[p.ID]; !ok {
		return notFound("profileRepo.Update")
	}
	p.UpdatedAt = r.s.now()
	r.s.profiles[p.ID] = *p
	return nil
}

func (r *ProfileRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.profiles, id)
	return nil
}

// SecretRepository is the in-memory SecretRepository.
type SecretRepository struct{ s *Store }

func (r *SecretRepository) GetByUserID(_ context.Context, userID string) (*models.SecretMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	secret, ok := r.s.secrets[userID]
	if !ok {
		return nil, notFound("secretRepo.GetByUserID")
	}
	return &secret, nil
}

func (r *SecretRepository) Upsert(_ context.Context, userID, message string) (*models.SecretMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	secret, ok := r.s.secrets[userID]
	if !ok {
		secret = models.SecretMessage{ID: uuid.NewString(), UserID: userID, CreatedAt: now}
	}
	secret.Message = message
	secret.UpdatedAt = now
	r.s.secrets[userID] = secret
	return &secret, nil
}

func (r *SecretRepository) DeleteByUserID(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.secrets[userID]; !ok {
		return 0, nil
	}
	delete(r.s.secrets, userID)
	return 1, nil
}

// FriendRequestRepository is the in-memory FriendRequestRepository.
type FriendRequestRepository struct{ s *Store }

func (r *FriendRequestRepository) Create(_ context.Context, req *models.FriendRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Same rule as the partial unique index on the Postgres table.
	for _, existing := range r.s.requests {
		if joins(existing, req.FromUserID, req.ToUserID) && existing.Status != models.FriendRequestStatusRejected {
			return errors.Wrap(repositories.ErrConflict, "friendRequestRepo.Create")
		}
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	now := r.s.now()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	req.UpdatedAt = now
	if req.Status == "" {
		req.Status = models.FriendRequestStatusPending
	}
	r.s.requests[req.ID] = *req
	return nil
}

func (r *FriendRequestRepository) GetByID(_ context.Context, id string) (*models.FriendRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	req, ok := r.s.requests[id]
	if !ok {
		return nil, notFound("friendRequestRepo.GetByID")
	}
	return &req, nil
}

func joins(req models.FriendRequest, a, b string) bool {
	return (req.FromUserID == a && req.ToUserID == b) || (req.FromUserID == b && req.ToUserID == a)
}

// filter returns matching requests ordered by creation time. Callers hold the lock.
func (r *FriendRequestRepository) filter(keep func(models.FriendRequest) bool) []models.FriendRequest {
	var out []models.FriendRequest
	for _, req := range r.s.requests {
		if keep(req) {
			out = append(out, req)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r *FriendRequestRepository) FindOpenBetween(_ context.Context, a, b string) (*models.FriendRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	found := r.filter(func(req models.FriendRequest) bool {
		return joins(req, a, b) && req.Status != models.FriendRequestStatusRejected
	})
	if len(found) == 0 {
		return nil, notFound("friendRequestRepo.FindOpenBetween")
	}
	return &found[0], nil
}

func (r *FriendRequestRepository) ListIncomingPending(_ context.Context, userID string) ([]models.FriendRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.filter(func(req models.FriendRequest) bool {
		return req.ToUserID == userID && req.Status == models.FriendRequestStatusPending
	}), nil
}

func (r *FriendRequestRepository) ListAccepted(_ context.Context, userID string) ([]models.FriendRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.filter(func(req models.FriendRequest) bool {
		return req.Involves(userID) && req.Status == models.FriendRequestStatusAccepted
	}), nil
}

func (r *FriendRequestRepository) ExistsAccepted(_ context.Context, a, b string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, req := range r.s.requests {
		if joins(req, a, b) && req.Status == models.FriendRequestStatusAccepted {
			return true, nil
		}
	}
	return false, nil
}

func (r *FriendRequestRepository) TransitionStatus(_ context.Context, id string, from, to models.FriendRequestStatus, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[id]
	if !ok || req.Status != from {
		return false, nil
	}
	req.Status = to
	req.UpdatedAt = at
	r.s.requests[id] = req
	return true, nil
}

func (r *FriendRequestRepository) DeleteByUser(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, req := range r.s.requests {
		if req.Involves(userID) {
			delete(r.s.requests, id)
			n++
		}
	}
	return n, nil
}

// NotificationRepository is the in-memory NotificationRepository.
type NotificationRepository struct{ s *Store }

func (r *NotificationRepository) Create(_ context.Context, n *models.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = r.s.now()
	}
	r.s.notifications[n.ID] = *n
	return nil
}

func (r *NotificationRepository) ListByRecipient(_ context.Context, recipientID string, page, limit int) ([]models.Notification, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var all []models.Notification
	for _, n := range r.s.notifications {
		if n.RecipientID == recipientID {
			all = append(all, n)
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return []models.Notification{}, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *NotificationRepository) UnreadCount(_ context.Context, recipientID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, n := range r.s.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepository) MarkAsRead(_ context.Context, recipientID, notificationID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n, ok := r.s.notifications[notificationID]
	if !ok || n.RecipientID != recipientID {
		return false, nil
	}
	n.IsRead = true
	r.s.notifications[notificationID] = n
	return true, nil
}

func (r *NotificationRepository) MarkAllAsRead(_ context.Context, recipientID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, n := range r.s.notifications {
		if n.RecipientID == recipientID {
			n.IsRead = true
			r.s.notifications[id] = n
		}
	}
	return nil
}

func (r *NotificationRepository) DeleteByUser(_ context.Context, userID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var count int64
	for id, n := range r.s.notifications {
		if n.RecipientID == userID || n.ActorID == userID {
			delete(r.s.notifications, id)
			count++
		}
	}
	return count, nil
}
