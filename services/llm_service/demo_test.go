package llm_service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func newDemoForTest() *DemoService {
	return NewDemoService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDemoServiceQuestions(t *testing.T) {
	demo := newDemoForTest()

	for _, n := range []int{3, 5, 10} {
		reply, err := demo.CallLLM(context.Background(), map[string]interface{}{
			"task":          "generate_questions",
			"num_questions": n,
		}, "prompt")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(reply), "\n")
		if len(lines) != n {
			t.Errorf("n=%d: expected %d question lines, got %d", n, n, len(lines))
		}
	}
}

func TestDemoServiceSummaryMentionsDocumentLength(t *testing.T) {
	demo := newDemoForTest()

	reply, err := demo.CallLLM(context.Background(), map[string]interface{}{
		"task":            "summarize",
		"document_length": 42,
	}, "prompt")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(reply, "42 characters") {
		t.Errorf("Expected document length in reply, got %q", reply)
	}
}

func TestDemoServiceEvaluationIsParseableJSON(t *testing.T) {
	demo := newDemoForTest()

	reply, err := demo.CallLLM(context.Background(), map[string]interface{}{"task": "evaluate"}, "prompt")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(reply, `"is_correct"`) {
		t.Errorf("Expected JSON verdict, got %q", reply)
	}
}
