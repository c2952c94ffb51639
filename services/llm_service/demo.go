package llm_service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// DemoService stands in for a real model backend when no API key is
// configured. Replies are canned so the rest of the pipeline can be
// exercised without network access or quota.
type DemoService struct {
	logger *slog.Logger
}

func NewDemoService(logger *slog.Logger) *DemoService {
	return &DemoService{logger: logger}
}

var demoQuestions = []string{
	"What is the main topic of this document?",
	"What are the key points mentioned in the text?",
	"What conclusions can be drawn from the content?",
	"What evidence supports the main arguments?",
	"How does this relate to broader concepts?",
	"What are the implications of the findings?",
	"What methodology was used in this work?",
	"What are the limitations discussed?",
	"What future research is suggested?",
	"What are the practical applications mentioned?",
}

func (s *DemoService) CallLLM(ctx context.Context, config map[string]interface{}, prompt string) (string, error) {
	task, _ := config["task"].(string)
	s.logger.Debug("Serving canned demo reply", slog.String("task", task))

	switch task {
	case "summarize":
		docLen := int(safeParseFloat(config["document_length"], 0))
		return fmt.Sprintf("[DEMO MODE] This is a dummy summary of the uploaded document. The document contains %d characters. In a real deployment, this would be an AI-generated summary of the content.", docLen), nil
	case "generate_questions":
		n := int(safeParseFloat(config["num_questions"], 3))
		if n > len(demoQuestions) {
			n = len(demoQuestions)
		}
		var lines []string
		for i, q := range demoQuestions[:n] {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, q))
		}
		return strings.Join(lines, "\n"), nil
	case "answer":
		question, _ := config["question"].(string)
		return fmt.Sprintf("[DEMO MODE] This is a dummy answer to your question: %q. In a real deployment, this would be an AI-generated answer based on the document content.", question), nil
	case "evaluate":
		return `{"is_correct": false, "evaluation": "[DEMO MODE] In a real deployment, this would be an AI-generated evaluation based on the document content."}`, nil
	default:
		return "[DEMO MODE] No reply configured for this task.", nil
	}
}
