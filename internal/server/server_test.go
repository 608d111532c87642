package server

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/ameya/eduplan/internal/llm"
	"github.com/ameya/eduplan/internal/pipeline"
	"github.com/ameya/eduplan/internal/questionbank"
	"github.com/ameya/eduplan/internal/subject"
)

const testProfileJSON = `{
	"Processes & Threads": 2,
	"Memory Management": 1,
	"Concurrency & Sync": 1,
	"File System & I/O": 2,
	"OS Fundamentals": 3
}`

func newTestServer(t *testing.T, mock *llm.MockProvider) *httptest.Server {
	t.Helper()

	bank := questionbank.New([]questionbank.Record{
		{Topic: "Paging", Question: "What is a page fault?", Answer: "..."},
	})

	cfg := pipeline.DefaultConfig()
	cfg.MaxIterations = 1
	cfg.Rand = rand.New(rand.NewPCG(3, 5))

	svc, err := pipeline.NewService(mock, subject.OperatingSystems(), bank, cfg, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	ts := httptest.NewServer(New(svc, nil).Router())
	t.Cleanup(ts.Close)
	return ts
}

// fullRunMock cans every response one session needs for a single
// pipeline iteration plus a two-question quiz.
func fullRunMock() *llm.MockProvider {
	return llm.NewMockProvider(
		llm.MockResponse{Content: testProfileJSON},
		llm.MockResponse{Content: "initial plan"},
		llm.MockResponse{Content: "[C]: 85; strong\n[I]: 85; good\nAdvantage: great. Disadvantage: none."},
		llm.MockResponse{Content: "common mistake"},
		llm.MockResponse{Content: "revised plan"},
		llm.MockResponse{Content: `{"Paging": ["pages are frames"]}`},
		llm.MockResponse{Content: `{"questions": [{"question": "Q1", "answer": "A1"}, {"question": "Q2", "answer": "A2"}]}`},
	)
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t, llm.NewMockProvider())

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestServer_SessionLifecycle(t *testing.T) {
	mock := fullRunMock()
	ts := newTestServer(t, mock)

	// Start.
	resp := postJSON(t, ts.URL+"/api/sessions", startSessionRequest{Level: "Beginner", Topic: "Paging"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("start: expected 201, got %d", resp.StatusCode)
	}
	started := decode[startSessionResponse](t, resp)
	if started.SessionID == "" {
		t.Fatal("start: missing session id")
	}
	if started.SkillProfile["OS Fundamentals"] != 3 {
		t.Fatalf("start: unexpected profile %v", started.SkillProfile)
	}

	base := ts.URL + "/api/sessions/" + started.SessionID

	// Run.
	resp = postJSON(t, base+"/run", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("run: expected 200, got %d", resp.StatusCode)
	}
	run := decode[runResponse](t, resp)
	if run.Score != 85 || run.Iterations != 1 {
		t.Fatalf("run: unexpected outcome %+v", run)
	}
	if len(run.Quiz) != 2 || run.Quiz[0].Question != "Q1" {
		t.Fatalf("run: unexpected quiz %+v", run.Quiz)
	}

	// Quiz: two graded answers, both correct.
	mock.AddResponse(llm.MockResponse{Content: "CORRECT"})
	mock.AddResponse(llm.MockResponse{Content: "CORRECT"})
	resp = postJSON(t, base+"/quiz", submitQuizRequest{Answers: []string{"a1", "a2"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("quiz: expected 200, got %d", resp.StatusCode)
	}
	quiz := decode[submitQuizResponse](t, resp)
	if quiz.Accuracy != 1.0 {
		t.Fatalf("quiz: expected accuracy 1.0, got %v", quiz.Accuracy)
	}

	// Finalize.
	resp = postJSON(t, base+"/finalize", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("finalize: expected 200, got %d", resp.StatusCode)
	}
	final := decode[finalizeResponse](t, resp)
	if final.Status != pipeline.StatusCompleted {
		t.Fatalf("finalize: expected completed status, got %q", final.Status)
	}
	if final.SkillProfile["Memory Management"] != 3 {
		t.Fatalf("finalize: expected +2 reinforcement, got %v", final.SkillProfile)
	}

	// The session is gone after finalize.
	resp = postJSON(t, base+"/run", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after finalize, got %d", resp.StatusCode)
	}
}

func TestServer_UnknownSession(t *testing.T) {
	ts := newTestServer(t, llm.NewMockProvider())

	resp := postJSON(t, ts.URL+"/api/sessions/nope/run", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestServer_InvalidLevelRejected(t *testing.T) {
	ts := newTestServer(t, llm.NewMockProvider())

	resp := postJSON(t, ts.URL+"/api/sessions", startSessionRequest{Level: "Expert", Topic: "Paging"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestServer_QuizBeforeRunConflicts(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: testProfileJSON})
	ts := newTestServer(t, mock)

	resp := postJSON(t, ts.URL+"/api/sessions", startSessionRequest{Level: "Beginner", Topic: "Paging"})
	started := decode[startSessionResponse](t, resp)

	resp = postJSON(t, ts.URL+"/api/sessions/"+started.SessionID+"/quiz", submitQuizRequest{Answers: []string{"a"}})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestServer_DoubleRunConflicts(t *testing.T) {
	ts := newTestServer(t, fullRunMock())

	resp := postJSON(t, ts.URL+"/api/sessions", startSessionRequest{Level: "Beginner", Topic: "Paging"})
	started := decode[startSessionResponse](t, resp)
	base := ts.URL + "/api/sessions/" + started.SessionID

	resp = postJSON(t, base+"/run", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first run: expected 200, got %d", resp.StatusCode)
	}
	resp = postJSON(t, base+"/run", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second run: expected 409, got %d", resp.StatusCode)
	}
}

func TestServer_ConcurrentRunsExecutePipelineOnce(t *testing.T) {
	mock := fullRunMock()
	ts := newTestServer(t, mock)

	resp := postJSON(t, ts.URL+"/api/sessions", startSessionRequest{Level: "Beginner", Topic: "Paging"})
	started := decode[startSessionResponse](t, resp)
	runURL := ts.URL + "/api/sessions/" + started.SessionID + "/run"

	statuses := make(chan int, 2)
	for i := 0; i < 2; i++ {
		go func() {
			resp, err := http.Post(runURL, "application/json", nil)
			if err != nil {
				statuses <- -1
				return
			}
			resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}

	got := []int{<-statuses, <-statuses}
	sort.Ints(got)
	if got[0] != http.StatusOK || got[1] != http.StatusConflict {
		t.Fatalf("expected exactly one 200 and one 409, got %v", got)
	}

	// One skill-tree call plus one full pipeline run; a second run
	// would have consumed more canned responses.
	if n := mock.CallCount(); n != 7 {
		t.Fatalf("expected the pipeline to execute once (7 provider calls), got %d", n)
	}
}

func TestServer_FinalizeBeforeQuizConflicts(t *testing.T) {
	mock := fullRunMock()
	ts := newTestServer(t, mock)

	resp := postJSON(t, ts.URL+"/api/sessions", startSessionRequest{Level: "Beginner", Topic: "Paging"})
	started := decode[startSessionResponse](t, resp)
	base := ts.URL + "/api/sessions/" + started.SessionID

	resp = postJSON(t, base+"/run", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("run: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, base+"/finalize", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("finalize before quiz: expected 409, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	mock.AddResponse(llm.MockResponse{Content: "CORRECT"})
	mock.AddResponse(llm.MockResponse{Content: "INCORRECT"})
	resp = postJSON(t, base+"/quiz", submitQuizRequest{Answers: []string{"a1", "a2"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("quiz: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, base+"/finalize", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("finalize after quiz: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestServer_RecentSessionsDisabled(t *testing.T) {
	ts := newTestServer(t, llm.NewMockProvider())

	resp, err := http.Get(ts.URL + "/api/sessions/recent")
	if err != nil {
		t.Fatalf("GET recent: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 without an event store, got %d", resp.StatusCode)
	}
}
