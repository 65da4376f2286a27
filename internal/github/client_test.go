package github

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a Client at a test server instead of the real API.
func newTestClient(t *testing.T, baseURL string, creds Credentials) *Client {
	t.Helper()
	c := New(creds, 5*time.Second)
	c.base = baseURL
	return c
}

func TestClient_Execute_OKReturnsRawBody(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"login":"octocat"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, OAuthToken{Token: "T"})
	body, err := c.execute(http.MethodGet, UserEndpoint{}, nil)

	require.NoError(t, err)
	assert.Equal(t, `{"login":"octocat"}`, string(body))

	require.NotNil(t, got)
	assert.Equal(t, "/user", got.URL.Path)
	assert.Equal(t, "perch-cli", got.Header.Get("User-Agent"))
	assert.Equal(t, "application/vnd.github.v3+json", got.Header.Get("Accept"))
	assert.Equal(t, []string{"token T"}, got.Header.Values("Authorization"))
}

func TestClient_Execute_CreatedReturnsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, OAuthToken{Token: "T"})
	body, err := c.execute(http.MethodPost, HooksEndpoint{Repo: "a/b"}, []byte(`{}`))

	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, string(body))
}

func TestClient_Execute_BasicAuthAttached(t *testing.T) {
	var gotUser, gotPass string
	var gotOK bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, BasicAuth{Username: "jim", Password: "hunter2"})
	_, err := c.execute(http.MethodGet, UserEndpoint{}, nil)

	require.NoError(t, err)
	require.True(t, gotOK, "expected basic auth on the request")
	assert.Equal(t, "jim", gotUser)
	assert.Equal(t, "hunter2", gotPass)
}

func TestClient_Execute_ErrorStatusCarriesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"API rate limit exceeded"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, OAuthToken{Token: "T"})
	_, err := c.execute(http.MethodGet, UserEndpoint{}, nil)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusForbidden, reqErr.Status)
	assert.Equal(t, "0", reqErr.Header.Get("X-RateLimit-Remaining"))
	assert.Equal(t, `{"message":"API rate limit exceeded"}`, string(reqErr.Body))
	assert.Equal(t, http.MethodGet, reqErr.Method)
	assert.Contains(t, reqErr.Error(), "403")
}

func TestClient_Execute_FollowsRedirect(t *testing.T) {
	type seen struct {
		method string
		path   string
		body   string
		auth   string
	}
	var requests []seen

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, seen{
			method: r.Method,
			path:   r.URL.Path,
			body:   string(body),
			auth:   r.Header.Get("Authorization"),
		})

		if r.URL.Path == "/repos/a/b/hooks" {
			w.Header().Set("Location", srv.URL+"/moved/hooks")
			w.WriteHeader(http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":9}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, OAuthToken{Token: "T"})
	body, err := c.execute(http.MethodPost, HooksEndpoint{Repo: "a/b"}, []byte(`{"name":"web"}`))

	require.NoError(t, err)
	assert.Equal(t, `{"id":9}`, string(body))

	// The redirect target receives the same method, body and credentials.
	require.Len(t, requests, 2)
	assert.Equal(t, "/repos/a/b/hooks", requests[0].path)
	assert.Equal(t, "/moved/hooks", requests[1].path)
	for _, r := range requests {
		assert.Equal(t, http.MethodPost, r.method)
		assert.Equal(t, `{"name":"web"}`, r.body)
		assert.Equal(t, "token T", r.auth)
	}
}

func TestClient_Execute_FollowsRedirectChain(t *testing.T) {
	var paths []string
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/user":
			w.Header().Set("Location", srv.URL+"/hop1")
			w.WriteHeader(http.StatusFound)
		case "/hop1":
			w.Header().Set("Location", srv.URL+"/hop2")
			w.WriteHeader(http.StatusFound)
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, OAuthToken{Token: "T"})
	_, err := c.execute(http.MethodGet, UserEndpoint{}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"/user", "/hop1", "/hop2"}, paths)
}

func TestClient_Execute_RedirectLoopAborts(t *testing.T) {
	var hits int
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Location", srv.URL+r.URL.Path)
		w.WriteHeader(http.StatusFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, OAuthToken{Token: "T"})
	_, err := c.execute(http.MethodGet, UserEndpoint{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirects")
	assert.Equal(t, maxRedirectHops+1, hits)

	var reqErr *RequestError
	assert.False(t, errors.As(err, &reqErr), "a bounded redirect loop is not a status error")
}

func TestClient_Execute_RedirectWithoutLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, OAuthToken{Token: "T"})
	_, err := c.execute(http.MethodGet, UserEndpoint{}, nil)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusFound, reqErr.Status)
}

func TestClient_Execute_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := newTestClient(t, srv.URL, OAuthToken{Token: "T"})
	_, err := c.execute(http.MethodGet, UserEndpoint{}, nil)

	require.Error(t, err)
	var reqErr *RequestError
	assert.False(t, errors.As(err, &reqErr), "transport failures are distinct from status errors")
}
