package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("MissingAPIKey", func(t *testing.T) {
		cfg := Config{Model: "gemini-2.5-flash"}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for missing API key")
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		cfg := Config{APIKey: "test-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("Model = %q, want %q", cfg.Model, DefaultModel)
		}
		if cfg.APIURL != DefaultAPIURL {
			t.Errorf("APIURL = %q, want %q", cfg.APIURL, DefaultAPIURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("HTTPClient not defaulted")
		}
	})
}

func TestGenerateContent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotPath string
		var gotBody geminiRequest

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Errorf("decode request: %v", err)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"candidates": []map[string]any{
					{"content": map[string]any{
						"role":  "model",
						"parts": []map[string]any{{"text": "Hello "}, {"text": "there"}},
					}},
				},
				"usageMetadata": map[string]any{
					"promptTokenCount":     10,
					"candidatesTokenCount": 5,
					"totalTokenCount":      15,
				},
			})
		}))
		defer srv.Close()

		client, err := New(Config{APIKey: "test-key", Model: "gemini-2.5-flash", APIURL: srv.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		resp, err := client.GenerateContent(context.Background(), &Request{
			SystemInstruction: "You are a vet.",
			Messages:          []Message{{Role: "user", Text: "My dog is limping"}},
			Temperature:       0.5,
		})
		if err != nil {
			t.Fatalf("GenerateContent: %v", err)
		}

		if resp.Text != "Hello there" {
			t.Errorf("Text = %q, want parts joined", resp.Text)
		}
		if resp.Usage == nil || resp.Usage.TotalTokens != 15 {
			t.Errorf("Usage = %+v, want TotalTokens 15", resp.Usage)
		}
		if !strings.Contains(gotPath, "gemini-2.5-flash:generateContent") {
			t.Errorf("path = %q, want model generateContent", gotPath)
		}
		if gotBody.SystemInstruction == nil || gotBody.SystemInstruction.Parts[0].Text != "You are a vet." {
			t.Error("system instruction not sent")
		}
		if gotBody.GenerationConfig == nil || gotBody.GenerationConfig.Temperature != 0.5 {
			t.Errorf("generation config = %+v, want temperature 0.5", gotBody.GenerationConfig)
		}
	})

	t.Run("APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": "quota exceeded"}`))
		}))
		defer srv.Close()

		client, err := New(Config{APIKey: "test-key", APIURL: srv.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		_, err = client.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Text: "hi"}},
		})
		if err == nil {
			t.Fatal("expected error on 429")
		}
		if !strings.Contains(err.Error(), "429") {
			t.Errorf("error = %v, want status code in message", err)
		}
	})

	t.Run("NoCandidates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates": []}`))
		}))
		defer srv.Close()

		client, err := New(Config{APIKey: "test-key", APIURL: srv.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		resp, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Text: "hi"}},
		})
		if err != nil {
			t.Fatalf("GenerateContent: %v", err)
		}
		if resp.Text != "" {
			t.Errorf("Text = %q, want empty", resp.Text)
		}
	})

	t.Run("ContextCancelled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		client, err := New(Config{APIKey: "test-key", APIURL: srv.URL})
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = client.GenerateContent(ctx, &Request{
			Messages: []Message{{Role: "user", Text: "hi"}},
		})
		if err == nil {
			t.Fatal("expected error on cancelled context")
		}
	})
}
