package esign

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lease.pdf")
	assert.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 stub"), 0644))
	return path
}

func TestSendForSignature(t *testing.T) {
	var uploads, requests int
	var gotRequest map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-123", r.Header.Get("X-Api-Key"))
		switch r.URL.Path {
		case "/document_templates/":
			uploads++
			assert.NoError(t, r.ParseMultipartForm(1<<20))
			_, header, err := r.FormFile("files[]")
			assert.NoError(t, err)
			assert.Equal(t, "lease.pdf", header.Filename)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"id": "tmpl_1"})
		case "/document_requests/":
			requests++
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"id": "doc_1"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewSignWellClientWithBaseURL("key-123", server.URL)
	err := client.SendForSignature(writeTempDoc(t),
		Party{Name: "Sally Seller", Email: "sally@example.com"},
		Party{Name: "Bob Buyer", Email: "bob@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, 1, uploads)
	assert.Equal(t, 1, requests)

	assert.Equal(t, []interface{}{"tmpl_1"}, gotRequest["document_template_ids"])
	recipients := gotRequest["recipients"].([]interface{})
	assert.Len(t, recipients, 2)
	first := recipients[0].(map[string]interface{})
	assert.Equal(t, "Seller", first["role"])
	assert.Equal(t, "sally@example.com", first["email"])
}

func TestSendForSignatureUploadRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid api key"}`))
	}))
	defer server.Close()

	client := NewSignWellClientWithBaseURL("bad-key", server.URL)
	err := client.SendForSignature(writeTempDoc(t), Party{}, Party{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSendForSignatureMissingTemplateID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewSignWellClientWithBaseURL("key-123", server.URL)
	err := client.SendForSignature(writeTempDoc(t), Party{}, Party{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "template id")
}

func TestSendForSignatureMissingFile(t *testing.T) {
	client := NewSignWellClientWithBaseURL("key-123", "http://unused.invalid")
	err := client.SendForSignature(filepath.Join(t.TempDir(), "nope.pdf"), Party{}, Party{})
	assert.Error(t, err)
}
