// Package identity authenticates users and owns their identity records.
// Sessions are local JWTs; Firebase is an optional upstream login and is
// cleaned up when an account is deleted.
package identity

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/anonto42/secret-friends/backend/internal/repositories"
	"github.com/anonto42/secret-friends/backend/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=../mocks/mock_firebase.go -package=mocks github.com/anonto42/secret-friends/backend/internal/identity FirebaseAuth

// FirebaseAuth is the subset of *auth.Client the service needs.
type FirebaseAuth interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	DeleteUser(ctx context.Context, uid string) error
}

type Service struct {
	profiles repositories.ProfileRepository
	firebase FirebaseAuth
	tokens   *TokenIssuer
	logger   *slog.Logger
}

// NewService builds the identity service. firebase may be nil, in which case
// Firebase login is unavailable and deletion skips the upstream user.
func NewService(profiles repositories.ProfileRepository, firebase FirebaseAuth, tokens *TokenIssuer, logger *slog.Logger) *Service {
	return &Service{profiles: profiles, firebase: firebase, tokens: tokens, logger: logger}
}

func (s *Service) Signup(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	_, err := s.profiles.GetByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrEmailTaken
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.Store("failed to look up email", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "failed to hash password", err)
	}

	profile := &models.Profile{Email: email, PasswordHash: string(hash)}
	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, apperrors.Store("failed to create profile", err)
	}
	s.logger.InfoContext(ctx, "profile created", "user_id", profile.ID)

	return s.authResponse(profile)
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Store("failed to look up email", err)
	}
	// Firebase-only accounts have no local password.
	if profile.PasswordHash == "" {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.authResponse(profile)
}

// FirebaseLogin exchanges a Firebase ID token for a local session. The
// profile is found by Firebase UID, then by email (linking the UID), and is
// created otherwise.
func (s *Service) FirebaseLogin(ctx context.Context, idToken string) (*models.AuthResponse, error) {
	if s.firebase == nil {
		return nil, apperrors.ErrFirebaseDisabled
	}

	token, err := s.firebase.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnauthorized, "invalid Firebase ID token", err)
	}
	email, _ := token.Claims["email"].(string)
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.InvalidArg("Firebase account has no email")
	}
	uid := token.UID

	profile, err := s.profiles.GetByFirebaseUID(ctx, uid)
	switch {
	case err == nil:
		if profile.Email != email {
			profile.Email = email
			if err := s.profiles.Update(ctx, profile); err != nil {
				return nil, apperrors.Store("failed to update profile", err)
			}
		}
	case errors.Is(err, repositories.ErrNotFound):
		profile, err = s.linkOrCreate(ctx, uid, email)
		if err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.Store("failed to look up Firebase user", err)
	}

	return s.authResponse(profile)
}

func (s *Service) linkOrCreate(ctx context.Context, uid, email string) (*models.Profile, error) {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err == nil {
		profile.FirebaseUID = &uid
		if err := s.profiles.Update(ctx, profile); err != nil {
			return nil, apperrors.Store("failed to link Firebase user", err)
		}
		s.logger.InfoContext(ctx, "firebase user linked", "user_id", profile.ID)
		return profile, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.Store("failed to look up email", err)
	}

	profile = &models.Profile{Email: email, FirebaseUID: &uid}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, apperrors.Store("failed to create profile", err)
	}
	s.logger.InfoContext(ctx, "profile created from firebase", "user_id", profile.ID)
	return profile, nil
}

// VerifyToken resolves a session token to the id of a profile that still exists.
func (s *Service) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", apperrors.ErrInvalidToken
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}

	if _, err := s.profiles.GetByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", apperrors.ErrInvalidToken
		}
		return "", apperrors.Store("failed to load profile", err)
	}
	return claims.UserID, nil
}

// DeleteIdentity removes the upstream Firebase user, when linked, and then
// the profile. A Firebase user that is already gone counts as deleted.
func (s *Service) DeleteIdentity(ctx context.Context, userID string) error {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return apperrors.Provider("failed to load identity", err)
	}

	if profile.FirebaseUID != nil && *profile.FirebaseUID != "" {
		if s.firebase == nil {
			return apperrors.Provider("cannot delete linked Firebase user", apperrors.ErrFirebaseDisabled)
		}
		if err := s.firebase.DeleteUser(ctx, *profile.FirebaseUID); err != nil && !auth.IsUserNotFound(err) {
			return apperrors.Provider("failed to delete Firebase user", err)
		}
	}

	if err := s.profiles.Delete(ctx, userID); err != nil {
		return apperrors.Provider("failed to delete identity", err)
	}
	return nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Store("failed to load profile", err)
	}
	return profile, nil
}

func (s *Service) authResponse(profile *models.Profile) (*models.AuthResponse, error) {
	token, err := s.tokens.Issue(profile)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "failed to generate token", err)
	}
	return &models.AuthResponse{Token: token, Profile: profile}, nil
}
