package document_service

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv/v2"
	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedFormat is returned for file extensions the extractor
	// does not handle. Callers should treat it as user error.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrInvalidUTF8 is returned when a plain text upload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8 text")
	// ErrNoText is returned when a structurally valid document yields no text.
	ErrNoText = errors.New("no text content extracted from document")
	// ErrCorruptDocument is returned when the uploaded bytes do not form a
	// readable document of the declared format.
	ErrCorruptDocument = errors.New("document is corrupt or unreadable")
)

// UserFault reports whether an extraction failure is attributable to the
// uploaded file rather than the extraction engine.
func UserFault(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrInvalidUTF8) ||
		errors.Is(err, ErrNoText) ||
		errors.Is(err, ErrCorruptDocument)
}

type DocumentExtractor struct {
	logger *slog.Logger
}

func NewDocumentExtractor(logger *slog.Logger) *DocumentExtractor {
	return &DocumentExtractor{
		logger: logger,
	}
}

// ExtractText dispatches on the file extension and returns the document's
// plain text content.
func (e *DocumentExtractor) ExtractText(data []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return e.ExtractTextFromPDF(data)
	case ".txt":
		return e.ExtractTextFromPlain(data)
	case ".doc", ".docx":
		return e.ExtractTextFromWord(data)
	default:
		return "", ErrUnsupportedFormat
	}
}

func (e *DocumentExtractor) ExtractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.logger.Error("Failed to create PDF reader",
			slog.String("error", err.Error()),
			slog.Int("data_size", len(data)))
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	totalPage := reader.NumPage()
	e.logger.Debug("Starting PDF text extraction",
		slog.Int("total_pages", totalPage))

	var pages []string
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			e.logger.Warn("Null page encountered",
				slog.Int("page_number", pageIndex))
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Error("Failed to extract text from page",
				slog.Int("page_number", pageIndex),
				slog.String("error", err.Error()))
			return "", fmt.Errorf("failed to extract text from page %d: %v", pageIndex, err)
		}

		pages = append(pages, text)
	}

	fullText := strings.Join(pages, "\n")
	if strings.TrimSpace(fullText) == "" {
		e.logger.Error("No text extracted from PDF",
			slog.Int("total_pages", totalPage))
		return "", ErrNoText
	}

	e.logger.Info("Successfully extracted text from PDF",
		slog.Int("total_pages", totalPage),
		slog.Int("total_text_length", len(fullText)))

	return fullText, nil
}

func (e *DocumentExtractor) ExtractTextFromPlain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		e.logger.Error("Plain text upload is not valid UTF-8",
			slog.Int("data_size", len(data)))
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

func (e *DocumentExtractor) ExtractTextFromWord(data []byte) (string, error) {
	e.logger.Debug("Starting Word document text extraction",
		slog.Int("data_size", len(data)))

	mimeType := "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	result, err := docconv.Convert(bytes.NewReader(data), mimeType, false)
	if err != nil {
		e.logger.Error("Failed to convert Word document",
			slog.String("error", err.Error()),
			slog.Int("data_size", len(data)))
		return "", fmt.Errorf("failed to convert Word document: %v", err)
	}

	if len(result.Body) == 0 {
		e.logger.Error("No text extracted from Word document")
		return "", ErrNoText
	}

	e.logger.Info("Successfully extracted text from Word document",
		slog.Int("text_length", len(result.Body)))

	return result.Body, nil
}
