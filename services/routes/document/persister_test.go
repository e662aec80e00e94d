package document

import (
	"errors"
	"os"
	"testing"

	"github.com/rmrobinson/routebook/services/routes"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSaveThenLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/data", 0755))

	p := NewFilePersister(zaptest.NewLogger(t), fs)
	require.NoError(t, p.Save("/data/routes.xml", parkAndMall))

	contents, err := afero.ReadFile(fs, "/data/routes.xml")
	require.NoError(t, err)
	assert.Equal(t, parkAndMallDocument, string(contents))

	res, err := p.Load("/data/routes.xml")
	require.NoError(t, err)
	assert.Equal(t, parkAndMall, res)

	// Only the document itself remains once the temporary file is renamed.
	entries, err := afero.ReadDir(fs, "/data")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveReplacesExistingDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/routes.xml", []byte(parkAndMallDocument), 0644))

	p := NewFilePersister(zaptest.NewLogger(t), fs)
	require.NoError(t, p.Save("/data/routes.xml", parkAndMall[:1]))

	res, err := p.Load("/data/routes.xml")
	require.NoError(t, err)
	assert.Equal(t, parkAndMall[:1], res)
}

func TestSaveFailureKeepsExistingDocument(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/data/routes.xml", []byte(parkAndMallDocument), 0644))

	p := NewFilePersister(zaptest.NewLogger(t), afero.NewReadOnlyFs(base))
	err := p.Save("/data/routes.xml", nil)
	assert.Error(t, err)

	contents, err := afero.ReadFile(base, "/data/routes.xml")
	require.NoError(t, err)
	assert.Equal(t, parkAndMallDocument, string(contents))
}

func TestLoadMissingFile(t *testing.T) {
	p := NewFilePersister(zaptest.NewLogger(t), afero.NewMemMapFs())

	res, err := p.Load("/data/missing.xml")
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestLoadMalformedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/routes.xml", []byte("<routes><route>"), 0644))

	p := NewFilePersister(zaptest.NewLogger(t), fs)
	res, err := p.Load("/data/routes.xml")
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrMalformedDocument), "got %v", err)
	assert.Contains(t, err.Error(), "/data/routes.xml")
}

func TestLoadInvalidRoute(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `<routes><route><destination>Park</destination><number>-1</number><time>08:30</time></route></routes>`
	require.NoError(t, afero.WriteFile(fs, "/data/routes.xml", []byte(doc), 0644))

	p := NewFilePersister(zaptest.NewLogger(t), fs)
	_, err := p.Load("/data/routes.xml")
	assert.True(t, errors.Is(err, routes.ErrInvalidNumber), "got %v", err)
}
