package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// abortConnection kills the TCP connection before any response bytes are
// written, producing a pure transport failure on the client side.
func abortConnection(t *testing.T, w http.ResponseWriter) {
	t.Helper()
	hj, ok := w.(http.Hijacker)
	require.True(t, ok, "test server must support hijacking")
	conn, _, err := hj.Hijack()
	require.NoError(t, err)
	_ = conn.Close()
}

func TestClient_MissingBaseURL(t *testing.T) {
	resp, err := New("").Get(context.Background(), "/anything")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrMissingBaseURL)
}

func TestClient_SendsDefaultJSONHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Get(context.Background(), "/")

	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Get("Accept"))
}

func TestClient_AuthModes(t *testing.T) {
	tests := []struct {
		name      string
		configure func(c *Client)
		header    string
		want      string
	}{
		{
			name:      "static token",
			configure: func(c *Client) { c.WithToken("abc") },
			header:    "token",
			want:      "abc",
		},
		{
			name:      "bearer token",
			configure: func(c *Client) { c.WithBearerToken("abc") },
			header:    "Authorization",
			want:      "Bearer abc",
		},
		{
			name:      "basic auth",
			configure: func(c *Client) { c.WithBasicAuth("dXNlcjpwYXNz") },
			header:    "Authorization",
			want:      "Basic dXNlcjpwYXNz",
		},
		{
			name: "last auth mode set wins",
			configure: func(c *Client) {
				c.WithToken("old").WithBearerToken("new")
			},
			header: "Authorization",
			want:   "Bearer new",
		},
		{
			name: "auth wins over custom header collision",
			configure: func(c *Client) {
				c.WithHeaders(map[string]string{"Authorization": "custom"}).WithBearerToken("abc")
			},
			header: "Authorization",
			want:   "Bearer abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got http.Header
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Clone()
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			client := New(srv.URL)
			tt.configure(client)

			_, err := client.Get(context.Background(), "/")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Get(tt.header))
		})
	}
}

func TestClient_TokenModeDoesNotSetAuthorization(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := New(srv.URL).WithToken("abc").Get(context.Background(), "/")

	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestClient_ParamGroupsKeepOrder(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := New(srv.URL).
		Param(url.Values{"vs_currency": {"usd"}}).
		Param(url.Values{"ids": {"bitcoin"}}).
		Get(context.Background(), "/coins/markets")

	require.NoError(t, err)
	assert.Equal(t, "vs_currency=usd&ids=bitcoin", gotQuery)
}

func TestClient_SingleAttemptByDefault(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		abortConnection(t, w)
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Get(context.Background(), "/")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNoResponse)
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestClient_RetriesTransportFailuresUntilSuccess(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) <= 2 {
			abortConnection(t, w)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Retry(2).Get(context.Background(), "/")

	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestClient_RetriesExhausted(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		abortConnection(t, w)
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Retry(2).Get(context.Background(), "/")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNoResponse)
	assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
}

func TestClient_ErrorStatusIsNeverRetried(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Retry(3).Get(context.Background(), "/")

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
	assert.True(t, resp.Failed())
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}

func TestClient_PostEncodesJSONBody(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Post(context.Background(), "/items", map[string]string{"name": "bitcoin"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.Equal(t, "bitcoin", gotBody["name"])
}

func TestClient_UnencodableBody(t *testing.T) {
	resp, err := New("http://localhost").Post(context.Background(), "/", func() {})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoResponse))
}

func TestClient_ContextCancellationStopsRetrying(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		abortConnection(t, w)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := New(srv.URL).Retry(5).Get(ctx, "/")

	assert.Nil(t, resp)
	require.Error(t, err)
}
