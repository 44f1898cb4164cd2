// Package firebase builds the Firebase Auth client used for ID token
// verification and account removal.
package firebase

import (
	"context"
	"log/slog"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// emulatorEnv is read by the Firebase SDK itself; when set no service
// account is needed.
const emulatorEnv = "FIREBASE_AUTH_EMULATOR_HOST"

// NewAuthClient loads the service account at credentialsPath and returns an
// auth client. With the auth emulator configured the file may be omitted.
func NewAuthClient(ctx context.Context, credentialsPath string, logger *slog.Logger) (*auth.Client, error) {
	var opts []option.ClientOption
	switch {
	case os.Getenv(emulatorEnv) != "" && credentialsPath == "":
		opts = append(opts, option.WithoutAuthentication())
	case credentialsPath == "":
		return nil, errors.New("firebase credentials path not provided")
	default:
		if _, err := os.Stat(credentialsPath); err != nil {
			return nil, errors.Wrapf(err, "firebase credentials file %s", credentialsPath)
		}
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "firebase auth client")
	}

	logger.InfoContext(ctx, "firebase auth ready", "emulator", os.Getenv(emulatorEnv))
	return client, nil
}
