package mtl

import (
	"context"
	"fmt"

	"github.com/sawamura/stagepedia-backend/internal/domain"
)

// textTranslator is the transport slice the Translator consumes.
// Satisfied by *Client and by *Echo.
type textTranslator interface {
	TranslateBatch(ctx context.Context, source, target string, texts map[string]string) (map[string]string, error)
}

// Fields names the translatable text fields of one attribute family.
// Extract pulls them out; Apply writes the translated values back onto a
// copy of the attributes. Identifier and date fields never travel.
type Fields[A domain.Attributes] struct {
	Extract func(A) map[string]string
	Apply   func(A, map[string]string) A
}

// Translator turns canonical items into translated draft payloads for one
// attribute family.
type Translator[A domain.Attributes] struct {
	client textTranslator
	fields Fields[A]
}

// NewTranslator creates a Translator for one attribute family.
func NewTranslator[A domain.Attributes](client textTranslator, fields Fields[A]) *Translator[A] {
	return &Translator[A]{client: client, fields: fields}
}

// Translate produces a draft payload in the target language. Only Attrs is
// meaningful on the returned draft; the caller assigns identity, status and
// timestamps.
func (t *Translator[A]) Translate(ctx context.Context, item domain.Canonical[A], target domain.Language) (domain.Draft[A], error) {
	texts := t.fields.Extract(item.Attrs)

	translated, err := t.client.TranslateBatch(ctx, item.Language.String(), target.String(), texts)
	if err != nil {
		return domain.Draft[A]{}, fmt.Errorf("translate batch: %w", err)
	}

	return domain.Draft[A]{
		Language: target,
		Attrs:    t.fields.Apply(item.Attrs, translated),
	}, nil
}
