package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// ErrDocumentDecrypt means a wrong/missing password or a corrupt document.
// It is surfaced to the caller unchanged and never retried; no statement is
// created for the upload.
var ErrDocumentDecrypt = errors.New("failed to decrypt document")

// PDFService decodes statement PDFs into plain text. Password-protected
// documents are decrypted with pdfcpu first, then the text is pulled out
// page by page with go-fitz.
type PDFService struct {
	logger *zap.Logger
}

func NewPDFService(logger *zap.Logger) *PDFService {
	return &PDFService{logger: logger}
}

// ExtractText converts a PDF blob into plain text. An empty result is not an
// error: a statement with no recognizable text simply yields no transactions.
func (s *PDFService) ExtractText(ctx context.Context, blob []byte, password string) (string, error) {
	if password != "" {
		decrypted, err := decryptPDF(blob, password)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrDocumentDecrypt, err)
		}
		blob = decrypted
	}

	doc, err := fitz.NewFromMemory(blob)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentDecrypt, err)
	}
	defer doc.Close()

	var textBuilder strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("Failed to extract text from page",
				zap.Int("page", i+1),
				zap.Error(err),
			)
			continue
		}
		if pageText != "" {
			textBuilder.WriteString(pageText)
			textBuilder.WriteString("\n")
		}
	}

	text := strings.TrimSpace(textBuilder.String())

	s.logger.Info("PDF text extracted",
		zap.Int("pages", doc.NumPage()),
		zap.Int("text_length", len(text)),
	)

	return text, nil
}

func decryptPDF(blob []byte, password string) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password

	var out bytes.Buffer
	if err := api.Decrypt(bytes.NewReader(blob), &out, conf); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
