package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aryanoutlaw/docassist/assistant"
	"github.com/aryanoutlaw/docassist/services/document_service"
)

type DocumentHandler struct {
	service       *assistant.Service
	logger        *slog.Logger
	maxUploadSize int64
}

func NewDocumentHandler(service *assistant.Service, logger *slog.Logger, maxUploadSize int64) *DocumentHandler {
	return &DocumentHandler{
		service:       service,
		logger:        logger,
		maxUploadSize: maxUploadSize,
	}
}

type askRequest struct {
	Question string `json:"question"`
}

type challengeRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (h *DocumentHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "GenAI Document Assistant API is running!",
	})
}

func (h *DocumentHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "API is running",
	})
}

func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("Received file upload request")

	numQuestions, err := parseNumQuestions(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		writeJSONError(w, "Failed to parse multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, "Failed to get file from form", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		writeJSONError(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	doc, err := h.service.Upload(r.Context(), header.Filename, buf.Bytes(), numQuestions)
	if err != nil {
		h.logger.Error("Upload processing failed",
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()))
		writeJSONError(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"filename":  doc.Filename,
		"summary":   doc.Summary,
		"questions": doc.Questions,
	})
}

func (h *DocumentHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	answer, err := h.service.Ask(r.Context(), req.Question)
	if err != nil {
		h.logger.Error("Failed to answer question",
			slog.String("error", err.Error()))
		writeJSONError(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

func (h *DocumentHandler) RegenerateQuestions(w http.ResponseWriter, r *http.Request) {
	numQuestions, err := parseNumQuestions(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	questions, err := h.service.RegenerateQuestions(r.Context(), numQuestions)
	if err != nil {
		h.logger.Error("Failed to regenerate questions",
			slog.String("error", err.Error()))
		writeJSONError(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

func (h *DocumentHandler) EvaluateChallenge(w http.ResponseWriter, r *http.Request) {
	var req challengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	evaluation, err := h.service.EvaluateChallenge(r.Context(), req.Question, req.Answer)
	if err != nil {
		h.logger.Error("Failed to evaluate challenge answer",
			slog.String("error", err.Error()))
		writeJSONError(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"evaluation": evaluation.Evaluation,
		"is_correct": evaluation.IsCorrect,
	})
}

func parseNumQuestions(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("num_questions")
	if raw == "" {
		return assistant.MinQuestions, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("num_questions must be an integer")
	}
	return n, nil
}

// statusForError distinguishes caller mistakes from oracle and engine
// failures. Bad uploads count as caller mistakes.
func statusForError(err error) int {
	var validationErr *assistant.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, assistant.ErrNoDocument):
		return http.StatusBadRequest
	case document_service.UserFault(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
