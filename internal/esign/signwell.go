package esign

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Danielrod221/agriwater-live-app/internal/utils"
)

const defaultBaseURL = "https://www.signwell.com/api/v1"

// SignWellClient implements Sender against the SignWell REST API: a
// multipart template upload followed by a document request naming both
// parties.
type SignWellClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSignWellClient(apiKey string) *SignWellClient {
	return &SignWellClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  utils.NewHTTPClient(30 * time.Second),
	}
}

// NewSignWellClientWithBaseURL is used by tests to point at a stub server.
func NewSignWellClientWithBaseURL(apiKey, baseURL string) *SignWellClient {
	c := NewSignWellClient(apiKey)
	c.baseURL = baseURL
	return c
}

func (s *SignWellClient) SendForSignature(documentPath string, seller, buyer Party) error {
	templateID, err := s.uploadTemplate(documentPath)
	if err != nil {
		return fmt.Errorf("upload document template: %w", err)
	}

	if err := s.requestSignatures(templateID, seller, buyer); err != nil {
		return fmt.Errorf("request signatures: %w", err)
	}
	return nil
}

func (s *SignWellClient) uploadTemplate(documentPath string) (string, error) {
	file, err := os.Open(documentPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("files[]", filepath.Base(documentPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/document_templates/", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("X-Api-Key", s.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("signwell upload returned status %d: %s", resp.StatusCode, respBody)
	}

	var uploaded struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", err
	}
	if uploaded.ID == "" {
		return "", fmt.Errorf("signwell upload response missing template id")
	}
	return uploaded.ID, nil
}

func (s *SignWellClient) requestSignatures(templateID string, seller, buyer Party) error {
	payload := map[string]interface{}{
		"document_template_ids": []string{templateID},
		"recipients": []map[string]string{
			{"email": seller.Email, "name": seller.Name, "role": "Seller"},
			{"email": buyer.Email, "name": buyer.Name, "role": "Buyer"},
		},
		"name":    fmt.Sprintf("Water Lease Agreement - %s & %s", seller.Name, buyer.Name),
		"subject": "Action Required: Sign Your Water Lease Agreement",
		"message": "Please sign the attached water lease agreement to finalize your transaction on the Agri-Water Marketplace.",
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/document_requests/", bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("X-Api-Key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("signwell request returned status %d: %s", resp.StatusCode, respBody)
	}
	return nil
}
