package middlewares

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/oauth"
	"github.com/mbolis/survei-haji/httpx"
	"github.com/mbolis/survei-haji/log"
)

const refreshCookieMaxAge = 60 * 60 * 24 * 365

// RequireRole authenticates the bearer token and checks that its 'roles'
// claim carries at least one of roles.
func RequireRole(secret string, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return chi.Chain(oauth.Authorize(secret, nil), hasRole(roles)).Handler(next)
	}
}

func hasRole(allowed []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ := r.Context().Value(oauth.ClaimsContext).(map[string]string)

			if !rolesMatch(claims["roles"], allowed) {
				httpx.Status(w, r, http.StatusForbidden, "permission-denied", "Akses ditolak.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rolesMatch(rolesClaim string, allowed []string) bool {
	for _, role := range strings.Split(rolesClaim, ",") {
		for _, a := range allowed {
			if strings.TrimSpace(role) == a {
				return true
			}
		}
	}
	return false
}

// CookieAuth lets GET downloads authenticate with the access_token cookie.
// When the token is missing or expired it is renewed from the refresh_token
// cookie; without a usable refresh token the request is answered 401.
func CookieAuth(bearerServer *oauth.BearerServer) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || r.Header.Get("authorization") != "" {
				h.ServeHTTP(w, r)
				return
			}

			token, err := r.Cookie("access_token")
			if err == nil {
				r.Header.Set("authorization", "Bearer "+token.Value)
				buf := httpx.NewResponseBuffer()
				h.ServeHTTP(buf, r)
				if buf.Status() != http.StatusUnauthorized {
					buf.Flush(w)
					return
				}
			}

			// token was empty or unauthorized
			refreshToken, err := r.Cookie("refresh_token")
			if err != nil {
				if !errors.Is(err, http.ErrNoCookie) {
					httpx.LogInternalError(w, r, "cookie_auth.refresh_cookie", err)
					return
				}
				httpx.LogStatus(w, r, http.StatusUnauthorized, log.DebugLevel, "cookie_auth.no_token")
				return
			}

			resp := httpx.PostForm(bearerServer.UserCredentials, r, url.Values{
				"grant_type":    {"refresh_token"},
				"refresh_token": {refreshToken.Value},
			})
			if resp.Status() == http.StatusUnauthorized {
				http.SetCookie(w, &http.Cookie{
					Path:     "/",
					Name:     "refresh_token",
					Value:    "",
					MaxAge:   -1,
					SameSite: http.SameSiteNoneMode,
				})
				httpx.LogStatus(w, r, http.StatusUnauthorized, log.DebugLevel, "cookie_auth.refresh")
				return
			}
			if resp.Status() != http.StatusOK {
				httpx.LogStatus(w, r, resp.Status(), log.WarnLevel, "cookie_auth.refresh")
				return
			}

			tok, err := httpx.DecodeToken(resp)
			if err != nil {
				httpx.LogInternalError(w, r, "cookie_auth.decode_token", err)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Path:     "/",
				Name:     "access_token",
				Value:    tok.AccessToken,
				MaxAge:   int(tok.ExpiresIn),
				SameSite: http.SameSiteNoneMode,
			})
			http.SetCookie(w, &http.Cookie{
				Path:     "/",
				Name:     "refresh_token",
				Value:    tok.RefreshToken,
				MaxAge:   refreshCookieMaxAge,
				SameSite: http.SameSiteNoneMode,
			})

			r.Header.Set("authorization", "Bearer "+tok.AccessToken)
			h.ServeHTTP(w, r)
		})
	}
}
