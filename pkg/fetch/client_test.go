package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGet(t *testing.T) {
	var gotAccept, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get(HeaderRequestID)
		w.Header().Set(HeaderRequestID, "abc-123")
		w.WriteHeader(http.StatusTeapot)
		io.WriteString(w, `{"title":"A New Hope"}`)
	}))
	defer server.Close()

	client := NewClient()
	resp, err := client.Get(context.Background(), server.URL, true)
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, resp.Status)
	assert.Equal(t, `{"title":"A New Hope"}`, string(resp.Body))
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, resp.RequestID, gotRequestID)
	_, err = uuid.Parse(gotRequestID)
	assert.NoError(t, err)

	id, ok := RequestID(resp)
	assert.True(t, ok)
	assert.Equal(t, "abc-123", id)
}

func TestClientPostForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		io.WriteString(w, "Your email is: "+r.PostForm.Get("email"))
	}))
	defer server.Close()

	resp, err := NewClient().PostForm(context.Background(), server.URL, url.Values{"email": {"hr@holbertonschool.com"}})
	require.NoError(t, err)
	assert.Equal(t, "Your email is: hr@holbertonschool.com", string(resp.Body))
}

func TestClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(WithTimeout(20 * time.Millisecond))
	resp, err := client.Get(context.Background(), server.URL, false)
	require.Error(t, err)
	assert.Greater(t, resp.Duration, time.Duration(0))
}

func TestClientTransportError(t *testing.T) {
	_, err := NewClient().Get(context.Background(), "http://127.0.0.1:0/unreachable", false)
	assert.Error(t, err)

	_, err = NewClient().Get(context.Background(), "://bad-url", false)
	assert.Error(t, err)
}
