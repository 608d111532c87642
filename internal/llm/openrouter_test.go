package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *OpenRouterProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = server.URL + "/v1"
	cfg.Timeout = 5 * time.Second

	p, err := NewOpenRouterProvider(cfg)
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}
	return p
}

func completionHandler(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "meta-llama/llama-3.3-70b-instruct:free",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     40,
				"completion_tokens": 25,
				"total_tokens":      65,
			},
		})
	}
}

func TestOpenRouterProvider_HappyPath(t *testing.T) {
	p := newTestProvider(t, completionHandler("Part1: Paging basics..."))

	resp, err := p.Generate(context.Background(), Request{
		Role:   RoleEvaluator,
		System: "You are an impartial evaluator.",
		User:   "Evaluate this plan.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "Part1: Paging basics..." {
		t.Fatalf("unexpected content: %q", resp.Content)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Fatalf("unexpected usage: %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
}

func TestOpenRouterProvider_RemoteStatus(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "server_error",
				"message": "model overloaded",
			},
		})
	}

	p := newTestProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{Role: RoleOptimizer, User: "test"})
	if err == nil {
		t.Fatal("expected error")
	}
	var rs *ErrRemoteStatus
	if !errors.As(err, &rs) {
		t.Fatalf("expected ErrRemoteStatus, got %T (%v)", err, err)
	}
	if rs.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected code 503, got %d", rs.Code)
	}
}

func TestOpenRouterProvider_MalformedEnvelope(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"model":   "test",
			"choices": []map[string]any{},
		})
	}

	p := newTestProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{Role: RoleAnalyst, User: "test"})
	var env *ErrMalformedEnvelope
	if !errors.As(err, &env) {
		t.Fatalf("expected ErrMalformedEnvelope, got %T (%v)", err, err)
	}
}

func TestOpenRouterProvider_MalformedContent(t *testing.T) {
	p := newTestProvider(t, completionHandler("Sorry, I cannot produce JSON today."))

	schema := &Schema{
		Name: "test-object",
		Definition: map[string]any{
			"type": "object",
		},
	}
	_, err := p.Generate(context.Background(), Request{
		Role:   RoleExpert,
		User:   "return json",
		Schema: schema,
	})
	var mc *ErrMalformedContent
	if !errors.As(err, &mc) {
		t.Fatalf("expected ErrMalformedContent, got %T (%v)", err, err)
	}
	if mc.Content == "" {
		t.Fatal("expected offending content to be preserved")
	}
}

func TestOpenRouterProvider_SchemaValidated(t *testing.T) {
	p := newTestProvider(t, completionHandler(`{"Paging": 3}`))

	schema := &Schema{
		Name: "score-map",
		Definition: map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "integer"},
		},
	}
	resp, err := p.Generate(context.Background(), Request{
		Role:   RoleExpert,
		User:   "rate",
		Schema: schema,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var scores map[string]int
	if err := json.Unmarshal(resp.JSON(), &scores); err != nil {
		t.Fatalf("unmarshal validated content: %v", err)
	}
	if scores["Paging"] != 3 {
		t.Fatalf("expected Paging=3, got %v", scores)
	}
}

func TestOpenRouterProvider_Timeout(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		completionHandler("late")(w, r)
	}

	server := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(server.Close)

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = server.URL + "/v1"
	cfg.Timeout = 20 * time.Millisecond

	p, err := NewOpenRouterProvider(cfg)
	if err != nil {
		t.Fatalf("NewOpenRouterProvider: %v", err)
	}

	_, err = p.Generate(context.Background(), Request{Role: RoleOptimizer, User: "test"})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	var tr *ErrTransport
	if !errors.As(err, &tr) {
		t.Fatalf("expected ErrTransport, got %T (%v)", err, err)
	}
	if !tr.Timeout {
		t.Fatalf("expected Timeout flag set, got %+v", tr)
	}
}

func TestNewOpenRouterProvider_MissingCredential(t *testing.T) {
	cfg := DefaultConfig()
	_, err := NewOpenRouterProvider(cfg)
	var cred *ErrCredentialMissing
	if !errors.As(err, &cred) {
		t.Fatalf("expected ErrCredentialMissing, got %T (%v)", err, err)
	}
}

func TestConfig_RoleRouting(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.profileFor(RoleEvaluator).Temperature != 0.0 {
		t.Error("evaluator should default to temperature 0")
	}
	if cfg.profileFor(RoleOptimizer).Temperature != 1.0 {
		t.Error("optimizer should default to temperature 1.0")
	}
	// Unknown roles fall back to the expert tier.
	if got := cfg.profileFor(AgentRole("grader")); got.Model != cfg.Roles[RoleExpert].Model {
		t.Errorf("unknown role should route to expert model, got %q", got.Model)
	}
}

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: "first"},
		MockResponse{Content: "second"},
	)

	r1, err := mock.Generate(context.Background(), Request{Role: RoleExpert, User: "a"})
	if err != nil || r1.Content != "first" {
		t.Fatalf("expected first response, got %v / %v", r1, err)
	}
	r2, _ := mock.Generate(context.Background(), Request{Role: RoleExpert, User: "b"})
	if r2.Content != "second" {
		t.Fatalf("expected second response, got %v", r2)
	}

	// Exhausted queue surfaces a transport failure.
	_, err = mock.Generate(context.Background(), Request{Role: RoleExpert, User: "c"})
	var tr *ErrTransport
	if !errors.As(err, &tr) {
		t.Fatalf("expected ErrTransport on empty queue, got %T", err)
	}

	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 recorded calls, got %d", mock.CallCount())
	}
}
