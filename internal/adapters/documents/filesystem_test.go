package documents

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/orbisx_backoffice/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	n, err := store.Put(ctx, "2024/03/abc_contrato.pdf", strings.NewReader("%PDF-1.4 body"))
	require.NoError(t, err)
	assert.Equal(t, int64(13), n)

	rc, err := store.Open(ctx, "2024/03/abc_contrato.pdf")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "%PDF-1.4 body", string(body))

	require.NoError(t, store.Delete(ctx, "2024/03/abc_contrato.pdf"))
	_, err = store.Open(ctx, "2024/03/abc_contrato.pdf")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.NoError(t, store.Delete(ctx, "2024/03/abc_contrato.pdf"))
}

func TestFileStoreRejectsEscapingKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../outside.pdf", "/etc/passwd", "a/../../b.pdf"} {
		_, err := store.Put(context.Background(), key, strings.NewReader("x"))
		assert.ErrorIs(t, err, apperrors.ErrValidation, key)
	}
}

func TestFileStorePutHonoursCancellation(t *testing.T) {
	root := t.TempDir()
	store, err := NewFileStore(root)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Put(ctx, "doc.pdf", strings.NewReader("data"))
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(root, "doc.pdf"))
	assert.True(t, os.IsNotExist(statErr))
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
