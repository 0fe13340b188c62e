// --- START OF FINAL REVISED FILE pkg/converter/encoding/handler.go ---
package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

const (
	// sniffLen is the number of bytes used by http.DetectContentType
	sniffLen = 512
	// checkLen is a buffer size used for null byte checks.
	checkLen = 1024
	// Null byte threshold percentage to consider a file binary.
	nullThreshold = 0.15 // 15%

	// UTF8 is the canonical name reported for content that needed no decoding.
	UTF8 = "utf-8"
)

var (
	// ErrInvalidUTF8 indicates the content is not valid UTF-8 (or not valid
	// after decoding from the configured source encoding).
	ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

	// ErrUnknownEncoding indicates the configured source encoding label is not
	// recognised by golang.org/x/net/html/charset.
	ErrUnknownEncoding = errors.New("unknown source encoding")
)

// Map of common text-based MIME type prefixes for quick lookup in IsBinary.
var knownTextMIMEPrefixes = map[string]bool{
	"text/":                  true,
	"application/json":       true,
	"application/xml":        true,
	"application/javascript": true,
	"application/ecmascript": true,
	"application/yaml":       true,
	"application/toml":       true,
	"image/svg+xml":          true,
}

var knownTextMIMESuffixes = map[string]bool{
	"+xml":  true,
	"+json": true,
}

// Handler turns raw file bytes into the UTF-8 text handed to the script
// converter, and recognises binary content that must never be rewritten.
type Handler interface {
	// Decode returns the content as a UTF-8 string together with the name of
	// the encoding it was read as. Without a configured source encoding the
	// bytes must already be valid UTF-8; otherwise an error wrapping
	// ErrInvalidUTF8 is returned.
	Decode(content []byte) (text string, encodingName string, err error)

	// IsBinary checks if the content is likely binary data based on MIME type sniffing
	// (http.DetectContentType on first 512 bytes) and null byte percentage
	// (in first 1024 bytes).
	IsBinary(content []byte) bool
}

// charsetHandler implements Handler with golang.org/x/net/html/charset.
// lookup is nil for strict UTF-8.
type charsetHandler struct {
	sourceName string
	lookup     func() transform.Transformer
}

// NewHandler creates a handler. An empty sourceEncoding (or any label that
// resolves to UTF-8) means strict UTF-8, which is what the converter always
// writes back. Other labels such as "gbk", "gb18030" or "big5" decode legacy
// files before conversion.
func NewHandler(sourceEncoding string) (Handler, error) {
	label := strings.TrimSpace(sourceEncoding)
	if label == "" {
		return &charsetHandler{sourceName: UTF8}, nil
	}
	enc, name := charset.Lookup(label)
	if enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, sourceEncoding)
	}
	if name == UTF8 {
		return &charsetHandler{sourceName: UTF8}, nil
	}
	return &charsetHandler{
		sourceName: name,
		lookup:     func() transform.Transformer { return enc.NewDecoder() },
	}, nil
}

// Decode implements the Handler interface.
func (h *charsetHandler) Decode(content []byte) (string, string, error) {
	if h.lookup == nil {
		if offset := invalidUTF8Offset(content); offset >= 0 {
			return "", h.sourceName, fmt.Errorf("%w: invalid byte 0x%02x at offset %d", ErrInvalidUTF8, content[offset], offset)
		}
		return string(content), h.sourceName, nil
	}

	reader := transform.NewReader(bytes.NewReader(content), h.lookup())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", h.sourceName, fmt.Errorf("%w: decoding from %s: %w", ErrInvalidUTF8, h.sourceName, err)
	}
	if !utf8.Valid(decoded) {
		return "", h.sourceName, fmt.Errorf("%w: decoding from %s produced invalid output", ErrInvalidUTF8, h.sourceName)
	}
	return string(decoded), h.sourceName, nil
}

// invalidUTF8Offset returns the byte offset of the first invalid sequence, or -1.
func invalidUTF8Offset(content []byte) int {
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// isMIMETextBased checks if a detected MIME type is likely text-based.
func isMIMETextBased(contentType string) bool {
	mimeType := strings.SplitN(contentType, ";", 2)[0]
	mimeType = strings.TrimSpace(mimeType)

	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	if _, ok := knownTextMIMEPrefixes[mimeType]; ok {
		return true
	}
	for suffix := range knownTextMIMESuffixes {
		if strings.HasSuffix(mimeType, suffix) {
			return true
		}
	}
	// octet-stream is what the sniffer reports for most legacy-encoded text; the null check decides.
	return mimeType == "application/octet-stream"
}

// IsBinary implements the Handler interface.
func (h *charsetHandler) IsBinary(content []byte) bool {
	contentLen := len(content)
	if contentLen == 0 {
		return false
	}

	sniff := content[:min(contentLen, sniffLen)]
	if !isMIMETextBased(http.DetectContentType(sniff)) {
		return true
	}

	head := content[:min(contentLen, checkLen)]
	nullCount := bytes.Count(head, []byte{0x00})
	return float64(nullCount)/float64(len(head)) > nullThreshold
}

// --- END OF FINAL REVISED FILE pkg/converter/encoding/handler.go ---
