package assistant

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Evaluation is the parsed verdict for a challenge answer.
type Evaluation struct {
	IsCorrect  bool   `json:"is_correct"`
	Evaluation string `json:"evaluation"`
}

var (
	numberedLineRe = regexp.MustCompile(`(?m)^\s*\d+\.\s*(.*)`)
	leadingMarkRe  = regexp.MustCompile(`^(?:\d+[.)]|[-*•]|[Qq]\d+[:.)])\s*`)
	jsonBlobRe     = regexp.MustCompile(`(?s)\{.*\}`)
)

// ParseQuestions turns a model reply into a list of question strings.
// Numbered lines are preferred; otherwise every non-empty line counts, with
// leading enumeration markers stripped. The result is capped at max. A reply
// with no usable lines at all is an ErrEmptyGeneration.
func ParseQuestions(raw string, max int) ([]string, error) {
	var questions []string

	for _, match := range numberedLineRe.FindAllStringSubmatch(raw, -1) {
		if q := strings.TrimSpace(match[1]); q != "" {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		for _, line := range strings.Split(raw, "\n") {
			line = strings.TrimSpace(line)
			line = strings.TrimSpace(leadingMarkRe.ReplaceAllString(line, ""))
			if line != "" {
				questions = append(questions, line)
			}
		}
	}

	if len(questions) == 0 {
		return nil, ErrEmptyGeneration
	}

	if len(questions) > max {
		questions = questions[:max]
	}

	return questions, nil
}

// ParseEvaluation extracts the correctness verdict from a model reply. The
// primary contract is a raw JSON object; models that ignore it get the
// keyword fallback, and a reply with no recognizable signal defaults to
// incorrect with the full reply returned as feedback.
func ParseEvaluation(raw string) Evaluation {
	cleaned := stripCodeFences(raw)

	if blob := jsonBlobRe.FindString(cleaned); blob != "" {
		var parsed Evaluation
		if err := json.Unmarshal([]byte(blob), &parsed); err == nil {
			if parsed.Evaluation == "" {
				parsed.Evaluation = "No evaluation provided"
			}
			return parsed
		}
	}

	return Evaluation{
		IsCorrect:  scanCorrectnessSignal(raw),
		Evaluation: strings.TrimSpace(raw),
	}
}

func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[7:]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[3:]
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	return strings.TrimSpace(cleaned)
}

var (
	affirmativeTokens = map[string]bool{"correct": true, "right": true, "true": true, "yes": true}
	negativeTokens    = map[string]bool{"incorrect": true, "wrong": true, "false": true, "no": true}
)

// scanCorrectnessSignal looks for the first explicit yes/no token in the
// reply. "not"/"isn't" flips a following affirmative. No token found means
// incorrect.
func scanCorrectnessSignal(raw string) bool {
	words := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return !('a' <= r && r <= 'z') && r != '\''
	})

	negated := false
	for _, word := range words {
		switch {
		case negativeTokens[word]:
			return false
		case affirmativeTokens[word]:
			return !negated
		case word == "not" || word == "isn't" || word == "aren't":
			negated = true
		default:
			negated = false
		}
	}

	return false
}
