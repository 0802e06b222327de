package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/xivix/landing/backend/internal/gemini"
	"github.com/xivix/landing/backend/internal/model/chat"
	"github.com/xivix/landing/backend/internal/model/persona"
)

// newGeminiServer fakes the generateContent endpoint, replying with the
// given text and recording the last decoded request.
func newGeminiServer(t *testing.T, replyText string, lastReq **gemini.GenerateRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if lastReq != nil {
			*lastReq = &req
		}

		resp := gemini.GenerateResponse{
			Candidates: []gemini.Candidate{{
				Content: &gemini.Content{
					Role:  "model",
					Parts: []gemini.Part{{Text: replyText}},
				},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestService(t *testing.T, baseURL string) *Service {
	t.Helper()
	client := gemini.NewClient(baseURL, "gemini-2.0-flash", "test-key", time.Second)
	svc, err := NewService(context.Background(), client, persona.Default(), persona.DefaultContact())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestReplySanitizesModelOutput(t *testing.T) {
	srv := newGeminiServer(t, "전화주세요 010-9999-8888 [링크]", nil)
	defer srv.Close()

	svc := newTestService(t, srv.URL)

	reply, err := svc.Reply(context.Background(), "담당자 연락처 알려주세요", nil)
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}

	if !strings.Contains(reply, "010-4845-3065") {
		t.Errorf("canonical number missing: %q", reply)
	}
	if strings.Contains(reply, "010-9999-8888") {
		t.Errorf("hallucinated number survived: %q", reply)
	}
	if strings.ContainsAny(reply, "[]") {
		t.Errorf("bracket text survived: %q", reply)
	}
}

func TestReplySendsSystemInstructionAndGenerationConfig(t *testing.T) {
	var lastReq *gemini.GenerateRequest
	srv := newGeminiServer(t, "안녕하세요 사장님!", &lastReq)
	defer srv.Close()

	svc := newTestService(t, srv.URL)

	if _, err := svc.Reply(context.Background(), "안녕하세요", nil); err != nil {
		t.Fatalf("Reply: %v", err)
	}

	if lastReq == nil {
		t.Fatal("no request captured")
	}
	if lastReq.SystemInstruction == nil || len(lastReq.SystemInstruction.Parts) == 0 {
		t.Fatal("system instruction missing")
	}
	if !strings.Contains(lastReq.SystemInstruction.Parts[0].Text, "방 이사") {
		t.Errorf("persona prompt missing from system instruction")
	}
	if lastReq.GenerationConfig == nil {
		t.Fatal("generation config missing")
	}
	if lastReq.GenerationConfig.MaxOutputTokens != 512 {
		t.Errorf("maxOutputTokens = %d, want 512", lastReq.GenerationConfig.MaxOutputTokens)
	}
	if lastReq.GenerationConfig.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", lastReq.GenerationConfig.Temperature)
	}
}

func TestReplyMapsHistoryRoles(t *testing.T) {
	var lastReq *gemini.GenerateRequest
	srv := newGeminiServer(t, "네, 맞습니다", &lastReq)
	defer srv.Close()

	svc := newTestService(t, srv.URL)

	history := []chat.Turn{
		{Role: chat.RoleUser, Content: "수강료가 얼마인가요?"},
		{Role: chat.RoleAssistant, Content: "200만원입니다"},
	}
	if _, err := svc.Reply(context.Background(), "할인되나요?", history); err != nil {
		t.Fatalf("Reply: %v", err)
	}

	if got := len(lastReq.Contents); got != 3 {
		t.Fatalf("contents = %d, want 3", got)
	}
	if lastReq.Contents[0].Role != "user" {
		t.Errorf("contents[0].role = %q, want user", lastReq.Contents[0].Role)
	}
	if lastReq.Contents[1].Role != "model" {
		t.Errorf("contents[1].role = %q, want model", lastReq.Contents[1].Role)
	}
	if lastReq.Contents[2].Role != "user" || lastReq.Contents[2].Parts[0].Text != "할인되나요?" {
		t.Errorf("query not last: %+v", lastReq.Contents[2])
	}
}

func TestReplyTruncatesHistory(t *testing.T) {
	var lastReq *gemini.GenerateRequest
	srv := newGeminiServer(t, "알겠습니다", &lastReq)
	defer srv.Close()

	svc := newTestService(t, srv.URL)

	history := make([]chat.Turn, 0, 24)
	for i := 0; i < 24; i++ {
		role := chat.RoleUser
		if i%2 == 1 {
			role = chat.RoleAssistant
		}
		history = append(history, chat.Turn{Role: role, Content: fmt.Sprintf("turn-%d", i)})
	}

	if _, err := svc.Reply(context.Background(), "마지막 질문", history); err != nil {
		t.Fatalf("Reply: %v", err)
	}

	// 10 most recent turns plus the new query.
	if got := len(lastReq.Contents); got != 11 {
		t.Fatalf("contents = %d, want 11", got)
	}
	if got := lastReq.Contents[0].Parts[0].Text; got != "turn-14" {
		t.Errorf("oldest kept turn = %q, want turn-14", got)
	}
}

func TestReplyFallsBackOnEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)

	reply, err := svc.Reply(context.Background(), "안녕하세요", nil)
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if !strings.Contains(reply, gemini.FallbackReply) {
		t.Errorf("reply = %q, want fallback apology", reply)
	}
}

func TestReplyPropagatesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":503}}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL)

	if _, err := svc.Reply(context.Background(), "안녕하세요", nil); err == nil {
		t.Fatal("expected error from upstream failure")
	}
}
