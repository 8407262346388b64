package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shenikar/systemfailed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	name := ObjectName("IMG_2041.JPG")
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.Len(t, name, 36+len(".jpg"))

	assert.Len(t, ObjectName("photo"), 36)
}

func TestPublicURL(t *testing.T) {
	store, err := NewMinioPhotoStore("localhost:9000", "key", "secret", "us-east-1", "evidence", "https://cdn.example.org/", false)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.org/evidence/a.jpg", store.PublicURL("a.jpg"))
}

func TestUpload_PutsObject(t *testing.T) {
	var gotPath, gotType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusOK)
			return
		}
		io.Copy(io.Discard, r.Body)
		gotPath, gotType = r.URL.Path, r.Header.Get("Content-Type")
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	store, err := NewMinioPhotoStore(u.Host, "key", "secret", "us-east-1", "evidence", "https://cdn.example.org", false)
	require.NoError(t, err)

	content := []byte("jpeg-bytes")
	publicURL, err := store.Upload(context.Background(), &models.Photo{
		Name:        "pit.jpg",
		ContentType: "image/jpeg",
		Size:        int64(len(content)),
		Body:        bytes.NewReader(content),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotPath, "/evidence/"))
	assert.True(t, strings.HasSuffix(gotPath, ".jpg"))
	assert.Equal(t, "image/jpeg", gotType)
	assert.Equal(t, "https://cdn.example.org"+gotPath, publicURL)
}
