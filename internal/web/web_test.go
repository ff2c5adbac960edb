package web_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/passa-a-bola/passa-web/internal/factory"
	httpmw "github.com/passa-a-bola/passa-web/internal/middleware"
	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/testutil"
	"github.com/passa-a-bola/passa-web/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	backend *testutil.Backend
	cookies *cookieJar
}

// newWebTestServer creates a new test server with all dependencies wired
// against a fake remote API
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	backend := testutil.NewBackend(t)
	app := factory.NewTestApp(backend.URL())

	return &webTestServer{
		t:       t,
		handler: newRouter(app, nil),
		app:     app,
		backend: backend,
		cookies: newCookieJar(),
	}
}

// newClient returns a second browser against the same server
func (ts *webTestServer) newClient() *webTestServer {
	other := *ts
	other.cookies = newCookieJar()
	return &other
}

func newRouter(app *factory.TestApp, limiter *httpmw.RateLimiter) http.Handler {
	return web.NewRouter(web.RouterConfig{
		Logger:       testutil.NopLogger(),
		Metrics:      app.Metrics,
		Clock:        app.Clock,
		Cookies:      app.Cookies,
		Sessions:     app.Sessions,
		AuthService:  app.AuthService,
		Catalog:      app.Catalog,
		Feed:         app.Feed,
		LoginLimiter: limiter,
		StaticDir:    "", // No static files in tests
	})
}

// send runs req through the router with the jar's cookies
func (ts *webTestServer) send(req *http.Request) *httptest.ResponseRecorder {
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	ts.cookies.extract(rr)
	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.send(httptest.NewRequest(http.MethodGet, path, nil))
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader = http.NoBody
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return ts.send(req)
}

// postMultipart makes a multipart POST, attaching file under fileField when non-nil
func (ts *webTestServer) postMultipart(path string, fields map[string]string, fileField string, file []byte) *httptest.ResponseRecorder {
	ts.t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(ts.t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile(fileField, "upload.bin")
		require.NoError(ts.t, err)
		_, err = fw.Write(file)
		require.NoError(ts.t, err)
	}
	require.NoError(ts.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return ts.send(req)
}

// followRedirect follows a redirect and returns the response
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// Helper functions for common test operations

// addUser creates an account on the fake remote API
func (ts *webTestServer) addUser(name, email, password string, role model.Role) {
	ts.backend.AddUser(testutil.BackendUser{Name: name, Email: email, Password: password, Role: role})
}

// login signs in through the login form and follows to the dashboard
func (ts *webTestServer) login(email, password string) {
	ts.t.Helper()
	rr := ts.post("/login", url.Values{"email": {email}, "password": {password}})
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after login: %s", rr.Body.String())
	require.Equal(ts.t, "/dashboard", rr.Header().Get("Location"))
}

// loginAs creates an account and signs in with it
func (ts *webTestServer) loginAs(name string, role model.Role) {
	ts.t.Helper()
	email := strings.ToLower(name) + "@example.com"
	ts.addUser(name, email, "segredo123", role)
	ts.login(email, "segredo123")
}

// clientID resolves the jar's client cookie the way the server does
func (ts *webTestServer) clientID() string {
	ts.t.Helper()
	cookie, ok := ts.cookies.cookies["passa_client"]
	require.True(ts.t, ok, "Expected client cookie")
	id, err := ts.app.Cookies.Decode(cookie.Value)
	require.NoError(ts.t, err)
	return id
}

// Assertion helpers

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertNotContainsElement asserts that the document does not contain an element matching the selector
func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, doc.Find(selector).Length())
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}
