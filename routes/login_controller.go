package routes

import (
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/mbolis/survei-haji/app"
	"github.com/mbolis/survei-haji/httpx"
	"github.com/mbolis/survei-haji/log"
)

var refreshAuthorization = regexp.MustCompile(`(?i)^refresh\s+(.*)`)

// Session signs a respondent in anonymously.
func Session(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := httpx.PostForm(app.ClientCredentials, r, url.Values{
			"grant_type":    {"client_credentials"},
			"client_id":     {httpx.AnonymousClientID},
			"client_secret": {httpx.AnonymousClientSecret},
		})
		if resp.Status() != http.StatusOK {
			httpx.LogStatus(w, r, http.StatusUnauthorized, log.WarnLevel, "session.client_credentials")
			return
		}
		resp.Flush(w)
	}
}

func Login(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok {
			httpx.LogStatus(w, r, http.StatusUnauthorized, log.DebugLevel, "login.basic_auth")
			return
		}

		body := url.Values{
			"grant_type": {"password"},
			"username":   {user},
			"password":   {pass},
		}
		r.Body = io.NopCloser(strings.NewReader(body.Encode()))
		r.Header.Set("content-type", "application/x-www-form-urlencoded")
		r.Header.Set("content-length", strconv.Itoa(len(body.Encode())))
		app.UserCredentials(w, r)
	}
}

func Refresh(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match := refreshAuthorization.FindStringSubmatch(r.Header.Get("authorization"))
		if len(match) == 0 {
			httpx.LogStatus(w, r, http.StatusUnauthorized, log.DebugLevel, "refresh.token")
			return
		}

		resp := httpx.PostForm(app.UserCredentials, r, url.Values{
			"grant_type":    {"refresh_token"},
			"refresh_token": {match[1]},
		})
		resp.Flush(w)
	}
}
