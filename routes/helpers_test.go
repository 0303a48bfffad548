package routes

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/mbolis/survei-haji/app"
	"github.com/mbolis/survei-haji/config"
	"github.com/mbolis/survei-haji/database"
	"github.com/mbolis/survei-haji/httpx"
	"github.com/mbolis/survei-haji/model"
	"github.com/mbolis/survei-haji/survey"
)

const (
	testAdminPassword     = "admin-pass"
	testDashboardPassword = "dash-pass"
)

func setupApp(t *testing.T) (app.App, http.Handler) {
	t.Helper()

	store, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := config.Config{
		TokenSecret:       "test-secret",
		TokenTTL:          time.Hour,
		AdminPassword:     testAdminPassword,
		DashboardPassword: testDashboardPassword,
		PageSize:          10,
	}
	bearerServer, err := httpx.NewBearerServer(store, cfg)
	if err != nil {
		t.Fatalf("Failed to create bearer server: %v", err)
	}

	a := app.App{
		Store:        store,
		BearerServer: bearerServer,
		Config:       cfg,
		Validator:    survey.NewValidator(),
	}
	return a, Wire(a)
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("content-type", "application/json")
	}
	if token != "" {
		req.Header.Set("authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeToken(t *testing.T, rr *httptest.ResponseRecorder) httpx.TokenResponse {
	t.Helper()
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected token response 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var tok httpx.TokenResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &tok); err != nil {
		t.Fatalf("Failed to decode token: %v", err)
	}
	if tok.AccessToken == "" {
		t.Fatal("Expected an access token")
	}
	return tok
}

func sessionToken(t *testing.T, h http.Handler) string {
	t.Helper()
	return decodeToken(t, doRequest(t, h, http.MethodPost, "/api/session", "", nil)).AccessToken
}

func login(t *testing.T, h http.Handler, user, pass string) httpx.TokenResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.SetBasicAuth(user, pass)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return decodeToken(t, rr)
}

func signatureDataURL(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 60, 30))
	for x := 0; x < 60; x++ {
		img.Set(x, 15, color.Black)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode signature: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func validForm(t *testing.T, name string) survey.Form {
	t.Helper()
	cfg := model.DefaultQuestions()
	answers := map[string]model.AnswerGroup{}
	for _, s := range cfg.Sections {
		g := model.AnswerGroup{}
		for _, q := range s.Questions {
			g[q.Key] = 4
		}
		answers[s.Key] = g
	}
	return survey.Form{
		Respondent: model.Respondent{
			Name:       name,
			Phone:      "081234567890",
			Occupation: "PNS",
			AgeBracket: "41-50 tahun",
			Gender:     "Laki-laki",
			Education:  "Strata 1 (S1)",
		},
		Answers:         answers,
		SelfDeclaration: true,
		Improvements:    model.ImproveAreas("sdm"),
		Signature:       signatureDataURL(t),
	}
}

func submit(t *testing.T, h http.Handler, token string, form survey.Form) SubmitResult {
	t.Helper()
	rr := doRequest(t, h, http.MethodPost, "/api/surveys", token, form)
	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var res SubmitResult
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("Failed to decode submit result: %v", err)
	}
	return res
}
