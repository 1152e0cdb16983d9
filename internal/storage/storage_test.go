package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRef(t *testing.T) {
	assert.NoError(t, ValidateRef("resumes", "jane.pdf"))

	var valErr *ValidationError

	err := ValidateRef("", "jane.pdf")
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "bucket", valErr.Field)

	err = ValidateRef("resumes", "   ")
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "key", valErr.Field)
}

func TestFSReader(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "resumes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "resumes", "jane.pdf"), []byte("pdf bytes"), 0o644))

	reader := NewFSReader(root)

	data, err := reader.Read(context.Background(), "resumes", "jane.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), data)

	_, err = reader.Read(context.Background(), "resumes", "missing.pdf")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing.pdf", notFound.Key)

	_, err = reader.Read(context.Background(), "", "jane.pdf")
	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}
