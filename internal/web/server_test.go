package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(0, NewSessionStore("boardwalk", time.Minute))
}

func TestServer_IndexStartsSession(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.handleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	testutil.AssertEqual(t, "status", rec.Code, http.StatusOK)
	testutil.AssertEqual(t, "session created", s.store.Len(), 1)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected session cookie")
	}

	body := rec.Body.String()
	for _, want := range []string{"Welcome to Alpha Cloudplex!", "Pier End", `class="room_name"`, "<h2>Boardwalk</h2>"} {
		if !strings.Contains(body, want) {
			t.Errorf("missing %q in page", want)
		}
	}
}

func TestServer_IndexReusesSession(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.handleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := rec.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	s.handleIndex(httptest.NewRecorder(), req)

	testutil.AssertEqual(t, "no extra session", s.store.Len(), 1)
}

func TestServer_CommandUpdatesTranscript(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.handleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := rec.Result().Cookies()[0]

	form := url.Values{"command": {"take pamphlet"}}
	req := httptest.NewRequest(http.MethodPost, "/command", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)

	rec = httptest.NewRecorder()
	s.handleCommand(rec, req)
	testutil.AssertEqual(t, "redirect", rec.Code, http.StatusSeeOther)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	s.handleIndex(rec, req)

	body := rec.Body.String()
	for _, want := range []string{"&gt; take pamphlet", "You take the pamphlet."} {
		if !strings.Contains(body, want) {
			t.Errorf("missing %q in page", want)
		}
	}
}

func TestServer_CommandRequiresPost(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.handleCommand(rec, httptest.NewRequest(http.MethodGet, "/command", nil))
	testutil.AssertEqual(t, "status", rec.Code, http.StatusMethodNotAllowed)
}

func TestServer_NewDropsSession(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.handleIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := rec.Result().Cookies()[0]
	testutil.AssertEqual(t, "session created", s.store.Len(), 1)

	req := httptest.NewRequest(http.MethodGet, "/new", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	s.handleNew(rec, req)

	testutil.AssertEqual(t, "redirect", rec.Code, http.StatusSeeOther)
	testutil.AssertEqual(t, "session dropped", s.store.Len(), 0)
}
