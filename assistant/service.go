package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aryanoutlaw/docassist/services/document_service"
	"github.com/aryanoutlaw/docassist/services/llm_service"
)

const (
	MinQuestions = 3
	MaxQuestions = 10
)

// Service wires extraction, the document store and the model backend into
// the four document operations the HTTP layer exposes.
type Service struct {
	store     *Store
	extractor *document_service.DocumentExtractor
	llm       llm_service.LLMService
	llmConfig map[string]interface{}
	logger    *slog.Logger
}

func NewService(store *Store, extractor *document_service.DocumentExtractor, llm llm_service.LLMService, llmConfig map[string]interface{}, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		extractor: extractor,
		llm:       llm,
		llmConfig: llmConfig,
		logger:    logger,
	}
}

// taskConfig copies the base model config and tags it with the task at hand
// so backends without a real model (demo, mocks) can pick a reply.
func (s *Service) taskConfig(task string, extra map[string]interface{}) map[string]interface{} {
	cfg := make(map[string]interface{}, len(s.llmConfig)+len(extra)+1)
	for k, v := range s.llmConfig {
		cfg[k] = v
	}
	cfg["task"] = task
	for k, v := range extra {
		cfg[k] = v
	}
	return cfg
}

func validateNumQuestions(n int) error {
	if n < MinQuestions || n > MaxQuestions {
		return validationErrorf("Number of questions must be between %d and %d.", MinQuestions, MaxQuestions)
	}
	return nil
}

// Upload extracts the document's text, stores it as the current document and
// generates the summary plus the initial question set.
func (s *Service) Upload(ctx context.Context, filename string, data []byte, numQuestions int) (Document, error) {
	if err := validateNumQuestions(numQuestions); err != nil {
		return Document{}, err
	}

	text, err := s.extractor.ExtractText(data, filename)
	if err != nil {
		if errors.Is(err, document_service.ErrUnsupportedFormat) {
			return Document{}, validationErrorf("Unsupported file format. Please upload a PDF, TXT, or Word file.")
		}
		return Document{}, fmt.Errorf("failed to extract text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return Document{}, fmt.Errorf("failed to extract text: %w", document_service.ErrNoText)
	}

	id := s.store.SetCurrent(filename, text)
	s.logger.Info("Stored uploaded document",
		slog.String("document_id", id.String()),
		slog.String("filename", filename),
		slog.Int("text_length", len(text)))

	summaryRaw, err := s.llm.CallLLM(ctx,
		s.taskConfig("summarize", map[string]interface{}{"document_length": len(text)}),
		SummaryPrompt(text))
	if err != nil {
		return Document{}, fmt.Errorf("failed to generate summary: %w", err)
	}
	summary := strings.TrimSpace(summaryRaw)

	questions, err := s.generateQuestions(ctx, text, numQuestions)
	if err != nil {
		return Document{}, err
	}

	// Last writer wins if another upload raced us; these become no-ops on
	// our document only if it was already replaced.
	if err := s.store.SetSummary(summary); err != nil {
		return Document{}, err
	}
	if err := s.store.SetQuestions(questions); err != nil {
		return Document{}, err
	}

	return Document{
		ID:        id,
		Filename:  filename,
		Text:      text,
		Summary:   summary,
		Questions: questions,
	}, nil
}

// Ask answers a free-form question about the current document.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", validationErrorf("Question must not be empty.")
	}

	doc, err := s.store.Current()
	if err != nil {
		return "", err
	}

	answerRaw, err := s.llm.CallLLM(ctx,
		s.taskConfig("answer", map[string]interface{}{"question": question}),
		AnswerPrompt(doc.Text, question))
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}

	return strings.TrimSpace(answerRaw), nil
}

// RegenerateQuestions replaces the current question set with a fresh one.
func (s *Service) RegenerateQuestions(ctx context.Context, numQuestions int) ([]string, error) {
	if err := validateNumQuestions(numQuestions); err != nil {
		return nil, err
	}

	doc, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	questions, err := s.generateQuestions(ctx, doc.Text, numQuestions)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetQuestions(questions); err != nil {
		return nil, err
	}

	return questions, nil
}

// EvaluateChallenge judges the user's answer to a challenge question against
// the current document.
func (s *Service) EvaluateChallenge(ctx context.Context, question, answer string) (Evaluation, error) {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
		return Evaluation{}, validationErrorf("Question and answer must not be empty.")
	}

	doc, err := s.store.Current()
	if err != nil {
		return Evaluation{}, err
	}

	evaluationRaw, err := s.llm.CallLLM(ctx,
		s.taskConfig("evaluate", map[string]interface{}{"question": question}),
		EvaluationPrompt(doc.Text, question, answer))
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to evaluate answer: %w", err)
	}

	return ParseEvaluation(evaluationRaw), nil
}

func (s *Service) generateQuestions(ctx context.Context, text string, numQuestions int) ([]string, error) {
	questionsRaw, err := s.llm.CallLLM(ctx,
		s.taskConfig("generate_questions", map[string]interface{}{"num_questions": numQuestions}),
		QuestionsPrompt(text, numQuestions))
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	questions, err := ParseQuestions(questionsRaw, numQuestions)
	if err != nil {
		return nil, err
	}

	if len(questions) < numQuestions {
		s.logger.Warn("Model produced fewer questions than requested",
			slog.Int("requested", numQuestions),
			slog.Int("parsed", len(questions)))
	}

	return questions, nil
}
