package mailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// DefaultTemplateName is the template file looked up next to the binary.
const DefaultTemplateName = "email-template.html"

// TemplateSource loads a survey template.
// Sources do not cache: every call reads the underlying resource again.
type TemplateSource interface {
	Load(ctx context.Context) (*Template, error)
}

// FSSource reads a template file from a filesystem.
type FSSource struct {
	fs   fs.FS
	name string
}

// NewFSSource creates a source reading name from filesystem.
// An empty name falls back to DefaultTemplateName.
func NewFSSource(filesystem fs.FS, name string) *FSSource {
	if name == "" {
		name = DefaultTemplateName
	}
	return &FSSource{fs: filesystem, name: name}
}

// Load implements TemplateSource.
func (s *FSSource) Load(_ context.Context) (*Template, error) {
	content, err := fs.ReadFile(s.fs, s.name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, s.name, err)
	}
	return ParseTemplate(content)
}

// ObjectGetter is the read side of an object store, satisfied by storage.S3Storage.
type ObjectGetter interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// ObjectSource reads a template from an object store key.
type ObjectSource struct {
	store ObjectGetter
	key   string
}

// NewObjectSource creates a source reading key from store.
func NewObjectSource(store ObjectGetter, key string) *ObjectSource {
	return &ObjectSource{store: store, key: key}
}

// Load implements TemplateSource.
func (s *ObjectSource) Load(ctx context.Context) (*Template, error) {
	rc, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, errors.Join(ErrTemplateNotFound, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Join(ErrTemplateNotFound, err)
	}
	return ParseTemplate(content)
}
