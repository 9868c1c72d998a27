package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestHTTPClientGenerate(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("missing bearer token")
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hola"}}]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", "key", "test-model", zap.NewNop(), WithSystemPrompt("be brief"))
	out, err := c.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != "hola" {
		t.Fatalf("unexpected output %q", out)
	}
	if got.Model != "test-model" || len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Content != "prompt" {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestHTTPClientGenerate_Errors(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
		want   string
	}{
		"http error":  {status: http.StatusBadGateway, body: `oops`, want: "status=502"},
		"api error":   {status: http.StatusOK, body: `{"error":{"message":"quota"}}`, want: "quota"},
		"empty":       {status: http.StatusOK, body: `{"choices":[]}`, want: "empty"},
		"bad payload": {status: http.StatusOK, body: `not json`, want: "unmarshal"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewHTTPClient(srv.URL, "key", "m", nil).Generate(context.Background(), "p")
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestMockClientRecordsPrompts(t *testing.T) {
	m := &MockClient{Response: "ok"}
	if out, err := m.Generate(context.Background(), "one"); err != nil || out != "ok" {
		t.Fatalf("unexpected result %q %v", out, err)
	}
	if p := m.Prompts(); len(p) != 1 || p[0] != "one" {
		t.Fatalf("unexpected prompts %v", p)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Generate(ctx, "two"); err == nil {
		t.Fatalf("expected context error")
	}
}
