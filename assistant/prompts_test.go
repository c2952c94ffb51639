package assistant

import (
	"strings"
	"testing"
)

func TestPromptsAreDeterministic(t *testing.T) {
	text := "Paris is the capital of France."

	if SummaryPrompt(text) != SummaryPrompt(text) {
		t.Error("SummaryPrompt produced different output for identical input")
	}
	if QuestionsPrompt(text, 5) != QuestionsPrompt(text, 5) {
		t.Error("QuestionsPrompt produced different output for identical input")
	}
	if AnswerPrompt(text, "What is the capital?") != AnswerPrompt(text, "What is the capital?") {
		t.Error("AnswerPrompt produced different output for identical input")
	}
	if EvaluationPrompt(text, "Q", "A") != EvaluationPrompt(text, "Q", "A") {
		t.Error("EvaluationPrompt produced different output for identical input")
	}
}

func TestPromptsEmbedInputs(t *testing.T) {
	text := "Paris is the capital of France."

	if !strings.Contains(SummaryPrompt(text), text) {
		t.Error("SummaryPrompt does not embed the document text")
	}
	if !strings.Contains(QuestionsPrompt(text, 7), "exactly 7") {
		t.Error("QuestionsPrompt does not embed the requested question count")
	}
	answerPrompt := AnswerPrompt(text, "What is the capital?")
	if !strings.Contains(answerPrompt, "What is the capital?") || !strings.Contains(answerPrompt, text) {
		t.Error("AnswerPrompt does not embed the question and document text")
	}
	evalPrompt := EvaluationPrompt(text, "What is the capital?", "Paris")
	if !strings.Contains(evalPrompt, "is_correct") {
		t.Error("EvaluationPrompt does not request the JSON verdict contract")
	}
}
