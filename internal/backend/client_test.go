package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/testutil"
)

func TestGetSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[{"id":"1","nome":"Marta"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	var players []model.Player
	require.NoError(t, c.Get(context.Background(), "/api/players", "tok", &players))

	assert.Equal(t, "Bearer tok", gotAuth)
	require.Len(t, players, 1)
	assert.Equal(t, "Marta", players[0].Name)
}

func TestGetWithoutTokenSendsNoAuthorization(t *testing.T) {
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	require.NoError(t, c.Get(context.Background(), "/api/events", "", nil))
	assert.False(t, hasAuth)
}

func TestMethodsAndJSONBody(t *testing.T) {
	type seen struct {
		method string
		body   map[string]any
	}
	var calls []seen
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		calls = append(calls, seen{r.Method, body})
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	ctx := context.Background()
	require.NoError(t, c.Post(ctx, "/api/events", "", map[string]string{"titulo": "x"}, nil))
	require.NoError(t, c.Put(ctx, "/api/events/1", "", map[string]string{"titulo": "y"}, nil))
	require.NoError(t, c.Delete(ctx, "/api/events/1", "", nil))

	require.Len(t, calls, 3)
	assert.Equal(t, http.MethodPost, calls[0].method)
	assert.Equal(t, "x", calls[0].body["titulo"])
	assert.Equal(t, http.MethodPut, calls[1].method)
	assert.Equal(t, "y", calls[1].body["titulo"])
	assert.Equal(t, http.MethodDelete, calls[2].method)
}

func TestStatusErrorCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Email já cadastrado"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).Get(context.Background(), "/x", "", nil)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.Equal(t, "Email já cadastrado", Detail(err))
}

func TestStatusErrorValidationDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","email"],"msg":"value is not a valid email address"}]}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).Get(context.Background(), "/x", "", nil)
	assert.Equal(t, "value is not a valid email address", Detail(err))
}

func TestStatusErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).Get(context.Background(), "/x", "", nil)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "HTTP 503", se.Error())
	assert.Empty(t, Detail(err))
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewClient(url, time.Second).Get(context.Background(), "/x", "", nil)
	require.Error(t, err)
	assert.Empty(t, Detail(err))
}

func TestLoginIsFormEncoded(t *testing.T) {
	b := testutil.NewBackend(t)
	b.AddUser(testutil.BackendUser{Name: "Marta", Email: "marta@example.com", Password: "secret123", Role: model.RoleProfessionalPlayer})

	resp, err := NewClient(b.URL(), time.Second).Login(context.Background(), "marta@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, model.RoleProfessionalPlayer, resp.Role)
	assert.Equal(t, "Marta", resp.Name)

	reqs := b.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/auth/login", reqs[0].Path)
	assert.Equal(t, "application/x-www-form-urlencoded", reqs[0].ContentType)
}

func TestLoginInvalidCredentials(t *testing.T) {
	b := testutil.NewBackend(t)

	_, err := NewClient(b.URL(), time.Second).Login(context.Background(), "nobody@example.com", "secret123")

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Equal(t, "Email ou senha incorretos", se.Detail)
}

func TestRegister(t *testing.T) {
	b := testutil.NewBackend(t)
	c := NewClient(b.URL(), time.Second)

	resp, err := c.Register(context.Background(), RegisterRequest{
		Name: "Debinha", Email: "debinha@example.com", Password: "secret123", Role: model.RoleAmateurPlayer,
	})
	require.NoError(t, err)
	assert.Equal(t, "debinha@example.com", resp.Email)

	user, ok := b.User("debinha@example.com")
	require.True(t, ok)
	assert.Equal(t, "Debinha", user.Name)

	_, err = c.Register(context.Background(), RegisterRequest{
		Name: "Debinha", Email: "debinha@example.com", Password: "secret123", Role: model.RoleAmateurPlayer,
	})
	assert.Contains(t, Detail(err), "Email já cadastrado")
}
