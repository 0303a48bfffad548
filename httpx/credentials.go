package httpx

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/oauth"
	"github.com/mbolis/survei-haji/config"
	"github.com/mbolis/survei-haji/database"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleRespondent = "respondent"
	RoleDashboard  = "dashboard"
	RoleAdmin      = "admin"

	AdminUser     = "admin"
	DashboardUser = "dashboard"

	// AnonymousClientID is the public client used by respondents.
	AnonymousClientID     = "anonymous"
	AnonymousClientSecret = "anonymous"

	refreshTTL = 8760 * time.Hour
)

var errInvalidCredentials = errors.New("invalid credentials")

type credentialsVerifier struct {
	store  database.Store
	hashes map[string][]byte
}

// NewBearerServer builds the token endpoint backed by store for refresh
// tokens and by the configured passwords for user logins.
func NewBearerServer(store database.Store, cfg config.Config) (*oauth.BearerServer, error) {
	verifier, err := CredentialsVerifier(store, cfg)
	if err != nil {
		return nil, err
	}
	return oauth.NewBearerServer(cfg.TokenSecret, cfg.TokenTTL, verifier, nil), nil
}

func CredentialsVerifier(store database.Store, cfg config.Config) (oauth.CredentialsVerifier, error) {
	passwords := map[string]string{
		AdminUser:     cfg.AdminPassword,
		DashboardUser: cfg.DashboardPassword,
	}

	hashes := map[string][]byte{}
	for user, pass := range passwords {
		if pass == "" {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashes[user] = hash
	}
	return &credentialsVerifier{store, hashes}, nil
}

func (cs *credentialsVerifier) ValidateUser(username string, password string, scope string, r *http.Request) error {
	hash, ok := cs.hashes[username]
	if !ok {
		return errInvalidCredentials
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password))
}
func (cs *credentialsVerifier) StoreTokenID(tokenType oauth.TokenType, credential string, tokenID string, refreshTokenID string) error {
	return cs.store.SaveToken(context.Background(), credential, tokenID, refreshTokenID, time.Now().Add(refreshTTL))
}
func (cs *credentialsVerifier) ValidateTokenID(tokenType oauth.TokenType, credential string, tokenID string, refreshTokenID string) error {
	expiration, err := cs.store.ConsumeToken(context.Background(), credential, tokenID, refreshTokenID)
	if err != nil {
		return errors.New("could not refresh")
	}

	if expiration.Before(time.Now()) {
		return errors.New("could not refresh")
	}
	return nil
}
func (*credentialsVerifier) AddClaims(tokenType oauth.TokenType, credential string, tokenID string, scope string, r *http.Request) (map[string]string, error) {
	if tokenType == oauth.ClientToken {
		return map[string]string{"roles": RoleRespondent}, nil
	}

	switch credential {
	case AdminUser:
		return map[string]string{"roles": RoleAdmin}, nil
	case DashboardUser:
		return map[string]string{"roles": RoleDashboard}, nil
	}
	return nil, errInvalidCredentials
}
func (*credentialsVerifier) AddProperties(tokenType oauth.TokenType, credential string, tokenID string, scope string, r *http.Request) (map[string]string, error) {
	return map[string]string{}, nil
}
func (*credentialsVerifier) ValidateClient(clientID string, clientSecret string, scope string, r *http.Request) error {
	if clientID == AnonymousClientID && clientSecret == AnonymousClientSecret {
		return nil
	}
	return errors.New("not supported")
}
