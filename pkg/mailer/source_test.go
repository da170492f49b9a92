package mailer

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestFSSource_Load(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		DefaultTemplateName: &fstest.MapFile{Data: []byte("---\nSubject: Rate us\n---\n<p>{{CUSTOMER_ID}}</p>")},
	}

	tmpl, err := NewFSSource(fsys, "").Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Rate us", tmpl.Subject)
	require.Equal(t, "<p>{{CUSTOMER_ID}}</p>", tmpl.Body)
}

func TestFSSource_ReadsOnEveryLoad(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"t.html": &fstest.MapFile{Data: []byte("<p>v1</p>")}}
	src := NewFSSource(fsys, "t.html")

	first, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "<p>v1</p>", first.Body)

	fsys["t.html"] = &fstest.MapFile{Data: []byte("<p>v2</p>")}
	second, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "<p>v2</p>", second.Body)
}

func TestFSSource_Missing(t *testing.T) {
	t.Parallel()

	tmpl, err := NewFSSource(fstest.MapFS{}, "missing.html").Load(context.Background())
	require.ErrorIs(t, err, ErrTemplateNotFound)
	require.Contains(t, err.Error(), "missing.html")
	require.Nil(t, tmpl)
}

type stubGetter struct {
	body string
	err  error
	key  string
}

func (g *stubGetter) Get(_ context.Context, key string) (io.ReadCloser, error) {
	g.key = key
	if g.err != nil {
		return nil, g.err
	}
	return io.NopCloser(strings.NewReader(g.body)), nil
}

func TestObjectSource_Load(t *testing.T) {
	t.Parallel()

	getter := &stubGetter{body: "<p>{{CUSTOMER_EMAIL}}</p>"}

	tmpl, err := NewObjectSource(getter, "templates/nps.html").Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "templates/nps.html", getter.key)
	require.Equal(t, "<p>{{CUSTOMER_EMAIL}}</p>", tmpl.Body)
}

func TestObjectSource_GetError(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("access denied")
	tmpl, err := NewObjectSource(&stubGetter{err: storeErr}, "k").Load(context.Background())
	require.ErrorIs(t, err, ErrTemplateNotFound)
	require.ErrorIs(t, err, storeErr)
	require.Nil(t, tmpl)
}
