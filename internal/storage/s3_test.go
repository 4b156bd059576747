package storage_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Click-facil/fitclick/internal/config"
	"github.com/Click-facil/fitclick/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

func newFakeS3(t *testing.T) (*httptest.Server, func() []recordedRequest) {
	t.Helper()
	var (
		mu       sync.Mutex
		requests []recordedRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, recordedRequest{method: r.Method, path: r.URL.Path, body: string(body)})
		mu.Unlock()
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	return server, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), requests...)
	}
}

func testS3Config(endpoint string) config.S3Config {
	return config.S3Config{
		Endpoint:        endpoint,
		Region:          "us-east-1",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "backups",
	}
}

func TestS3Storage_PutAndDelete(t *testing.T) {
	server, requests := newFakeS3(t)
	ctx := context.Background()

	store, err := storage.NewS3Storage(ctx, testS3Config(server.URL))
	require.NoError(t, err)

	require.NoError(t, store.PutObject(ctx, "backups/2024/05/snap.json", "application/json", []byte(`{"ok":true}`)))
	require.NoError(t, store.DeleteObject(ctx, "backups/2024/05/snap.json"))

	got := requests()
	require.Len(t, got, 2)
	assert.Equal(t, http.MethodPut, got[0].method)
	assert.Equal(t, "/backups/backups/2024/05/snap.json", got[0].path)
	assert.Contains(t, got[0].body, `{"ok":true}`)
	assert.Equal(t, http.MethodDelete, got[1].method)
}

func TestS3Storage_BareEndpointUsesSSLSetting(t *testing.T) {
	server, requests := newFakeS3(t)
	ctx := context.Background()
	host := strings.TrimPrefix(server.URL, "http://")

	cfg := testS3Config(host)
	cfg.UseSSL = false
	store, err := storage.NewS3Storage(ctx, cfg)
	require.NoError(t, err)

	require.NoError(t, store.PutObject(ctx, "backups/plain.json", "application/json", []byte(`{}`)))
	got := requests()
	require.Len(t, got, 1)
	assert.Equal(t, "/backups/backups/plain.json", got[0].path)

	cfg.UseSSL = true
	secure, err := storage.NewS3Storage(ctx, cfg)
	require.NoError(t, err)
	url, err := secure.GeneratePresignedDownloadURL(ctx, "backups/plain.json", 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://"+host+"/backups/backups/plain.json?"), url)
}

func TestS3Storage_PresignedDownloadURL(t *testing.T) {
	server, requests := newFakeS3(t)
	ctx := context.Background()

	store, err := storage.NewS3Storage(ctx, testS3Config(server.URL))
	require.NoError(t, err)

	url, err := store.GeneratePresignedDownloadURL(ctx, "backups/x.json", 0)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, server.URL+"/backups/backups/x.json?"))
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=900")
	assert.Empty(t, requests())
}
