package document_service

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func newTestExtractor() *DocumentExtractor {
	return NewDocumentExtractor(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestExtractTextPlain(t *testing.T) {
	extractor := newTestExtractor()

	text, err := extractor.ExtractText([]byte("Paris is the capital of France."), "paris.txt")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if text != "Paris is the capital of France." {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestExtractTextPlainInvalidUTF8(t *testing.T) {
	extractor := newTestExtractor()

	_, err := extractor.ExtractText([]byte{0xff, 0xfe, 0xfd}, "broken.txt")
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("Expected ErrInvalidUTF8, got %v", err)
	}
	if !UserFault(err) {
		t.Error("Expected invalid UTF-8 to be a user fault")
	}
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	extractor := newTestExtractor()

	tests := []string{"image.png", "archive.zip", "noextension"}
	for _, filename := range tests {
		_, err := extractor.ExtractText([]byte("data"), filename)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%s: expected ErrUnsupportedFormat, got %v", filename, err)
		}
	}
}

func TestExtractTextCorruptPDF(t *testing.T) {
	extractor := newTestExtractor()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "Zero bytes", data: nil},
		{name: "Not a PDF structure", data: []byte("just some plain text pretending")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractor.ExtractText(tt.data, "broken.pdf")
			if !errors.Is(err, ErrCorruptDocument) {
				t.Fatalf("Expected ErrCorruptDocument, got %v", err)
			}
			if !UserFault(err) {
				t.Error("Expected a corrupt PDF to be a user fault")
			}
		})
	}
}

func TestExtensionIsCaseInsensitive(t *testing.T) {
	extractor := newTestExtractor()

	text, err := extractor.ExtractText([]byte("upper case extension"), "NOTES.TXT")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if text != "upper case extension" {
		t.Errorf("Unexpected text: %q", text)
	}
}
