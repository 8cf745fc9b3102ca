package service

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"virtual-assistant-be/types"
)

type parseFunc func(filePath string) (string, error)

// DocumentService extracts text from uploaded documents and splits it into
// overlapping chunks. Parsing is dispatched by file extension through a
// closed table; anything not in the table is an unsupported format.
type DocumentService struct {
	maxChunkSize int // Maximum size of each text chunk
	overlapSize  int // Size of overlap between chunks
	parsers      map[string]parseFunc
}

func NewDocumentService(config types.DocumentServiceConfig) *DocumentService {
	return &DocumentService{
		maxChunkSize: config.MaxChunkSize,
		overlapSize:  config.OverlapSize,
		parsers: map[string]parseFunc{
			".pdf":  parsePDF,
			".docx": parseDOCX,
			".doc":  parseDOCX,
		},
	}
}

// Supports reports whether the filename has a parseable extension.
func (s *DocumentService) Supports(filename string) bool {
	_, ok := s.parsers[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// ExtractText parses the file at filePath into plain text.
func (s *DocumentService) ExtractText(filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	parse, ok := s.parsers[ext]
	if !ok {
		return "", types.NewAppError(types.ErrKindUnsupportedFormat, "unsupported file type: "+ext)
	}
	text, err := parse(filePath)
	if err != nil {
		return "", types.NewAppError(types.ErrKindDocumentParse, "failed to parse "+ext+" document").WithCause(err)
	}
	return text, nil
}

// CreateChunks splits text into chunks of at most maxChunkSize bytes.
// Consecutive chunks share overlapSize bytes, so concatenating chunks minus
// the overlap reconstructs the original text. Chunk boundaries never split a
// multibyte rune; next to one the chunk and its overlap shrink by up to
// three bytes. The final chunk may be shorter.
func (s *DocumentService) CreateChunks(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= s.maxChunkSize {
		return []string{text}
	}

	stride := s.maxChunkSize - s.overlapSize
	var chunks []string
	for start := 0; start < len(text); start += stride {
		from := start
		for from < len(text) && !utf8.RuneStart(text[from]) {
			from++
		}
		if from >= len(text) {
			break
		}
		end := start + s.maxChunkSize
		if end >= len(text) {
			chunks = append(chunks, text[from:])
			break
		}
		for end > from && !utf8.RuneStart(text[end]) {
			end--
		}
		chunks = append(chunks, text[from:end])
	}
	return chunks
}

func parsePDF(filePath string) (string, error) {
	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var text strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}
	return text.String(), nil
}

func parseDOCX(filePath string) (string, error) {
	r, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	content := r.Editable().GetContent()
	return extractTextFromXML(content), nil
}

// extractTextFromXML pulls the text runs (<w:t> elements) out of a DOCX
// document body, separating paragraphs with newlines.
func extractTextFromXML(xmlContent string) string {
	var text strings.Builder
	for _, paragraph := range strings.Split(xmlContent, "</w:p>") {
		parts := strings.Split(paragraph, "<w:t")
		for i, part := range parts {
			if i == 0 {
				continue
			}
			closeIdx := strings.Index(part, ">")
			if closeIdx < 0 {
				continue
			}
			endIdx := strings.Index(part, "</w:t>")
			if endIdx > closeIdx {
				text.WriteString(part[closeIdx+1 : endIdx])
			}
		}
		if text.Len() > 0 && !strings.HasSuffix(text.String(), "\n") {
			text.WriteString("\n")
		}
	}
	return strings.TrimSpace(text.String())
}
