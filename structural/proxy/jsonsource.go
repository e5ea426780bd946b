package proxy

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// ErrNoDocument is returned by NewJSONSource when given an empty document.
var ErrNoDocument = errors.New("proxy: empty menu document")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONSource is a real menu source: it holds the raw menu document and
// decodes it on every Fetch. The repeated decode is deliberate, it is the
// expensive work a CachingProxy in front of it saves.
type JSONSource struct {
	raw []byte
}

// JSONSource implements Source.
var _ Source = (*JSONSource)(nil)

// NewJSONSource builds a source over a raw JSON menu document. It returns
// ErrNoDocument when the document is empty.
func NewJSONSource(raw []byte) (*JSONSource, error) {
	if len(raw) == 0 {
		return nil, ErrNoDocument
	}
	return &JSONSource{raw: append([]byte(nil), raw...)}, nil
}

// Fetch implements Source. It decodes the document from scratch, honoring
// ctx cancellation first.
func (s *JSONSource) Fetch(ctx context.Context) (*Menu, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var menu Menu
	if err := json.Unmarshal(s.raw, &menu); err != nil {
		return nil, fmt.Errorf("proxy: decode menu: %w", err)
	}
	return &menu, nil
}
