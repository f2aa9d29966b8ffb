package test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
)

func bodyString(resp *http.Response) string {
	body := resp.Body
	defer body.Close()

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return "[!] error: failed to read response body: " + err.Error()
	}

	// restore the body so the caller can still decode it
	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	return string(bodyBytes)
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()

	body := resp.Body
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dest); err != nil {
		t.Fatal(err)
	}
}
