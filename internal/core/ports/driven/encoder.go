package driven

import "github.com/custodia-labs/foldcfg/internal/core/domain"

// DocumentEncoder renders a document to its textual form.
// Encoding the same document twice must produce identical bytes.
type DocumentEncoder interface {
	Encode(doc domain.Document) ([]byte, error)
}

// DocumentWriter persists rendered documents.
type DocumentWriter interface {
	// Write replaces the file at path with data.
	Write(path string, data []byte) error
}
