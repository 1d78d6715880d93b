package web_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/PriyankaYambem/cloud-manager/internal/dependencies/mocks"
	"github.com/PriyankaYambem/cloud-manager/internal/factory"
	"github.com/PriyankaYambem/cloud-manager/internal/session"
	"github.com/PriyankaYambem/cloud-manager/internal/testutil"
	"github.com/PriyankaYambem/cloud-manager/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.App
	clock   *mocks.MockClock
}

// newWebTestServer creates a new test server with all dependencies wired
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	clock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	app := factory.NewForTest(clock, factory.Config{
		TokenSecret: []byte("test-secret"),
		TokenTTL:    time.Hour,
	})

	router := web.NewRouter(web.RouterConfig{
		Logger:        testutil.NopLogger(),
		TokenService:  app.TokenService,
		CookieOptions: session.CookieOptions{TTL: time.Hour},
		StaticDir:     "../../web/static",
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		clock:   clock,
	}
}

// get makes a GET request, optionally presenting a session token cookie
func (ts *webTestServer) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// loginToken registers a user and returns a valid session token
func (ts *webTestServer) loginToken(username, password string) string {
	ts.t.Helper()

	_, err := ts.app.AuthService.Register(context.Background(), username, password)
	require.NoError(ts.t, err)

	tok, _, err := ts.app.AuthService.Login(context.Background(), username, password)
	require.NoError(ts.t, err)
	return tok
}

// parseHTML parses a response body into a goquery document
func parseHTML(t *testing.T, body io.Reader) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(body)
	require.NoError(t, err)
	return doc
}

// clearedCookie reports whether the response instructs the client to
// discard its session token
func clearedCookie(rr *httptest.ResponseRecorder) bool {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == session.CookieName && cookie.Value == "" && cookie.MaxAge < 0 {
			return true
		}
	}
	return false
}
