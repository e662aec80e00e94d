package document

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rmrobinson/routebook/services/routes"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	documentFileMode os.FileMode = 0644
)

// FilePersister reads and writes route documents on a filesystem.
type FilePersister struct {
	logger *zap.Logger
	fs     afero.Fs
}

// NewFilePersister creates a new persister backed by the supplied filesystem.
func NewFilePersister(logger *zap.Logger, fs afero.Fs) *FilePersister {
	return &FilePersister{
		logger: logger,
		fs:     fs,
	}
}

// Load reads the document at path and returns the routes it contains.
func (p *FilePersister) Load(path string) ([]routes.Route, error) {
	f, err := p.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer f.Close()

	rs, err := DecodeReader(f)
	if err != nil {
		p.logger.Debug("error decoding document",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, errors.Wrapf(err, "unable to load %s", path)
	}

	p.logger.Debug("loaded document",
		zap.String("path", path),
		zap.Int("route_count", len(rs)),
	)
	return rs, nil
}

// Save writes the supplied routes as a document at path.
// The document is written to a temporary file next to path and renamed into place,
// so an existing document is never left partially overwritten.
func (p *FilePersister) Save(path string, rs []routes.Route) (err error) {
	data, err := Encode(rs)
	if err != nil {
		return errors.Wrap(err, "unable to encode routes")
	}

	tmp, err := afero.TempFile(p.fs, filepath.Dir(path), "."+filepath.Base(path)+".")
	if err != nil {
		return errors.Wrapf(err, "unable to create temporary file for %s", path)
	}
	tmpName := tmp.Name()

	defer func() {
		if err == nil {
			return
		}
		if removeErr := p.fs.Remove(tmpName); removeErr != nil {
			p.logger.Info("unable to remove temporary file",
				zap.String("path", tmpName),
				zap.Error(removeErr),
			)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "unable to write %s", tmpName)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "unable to write %s", tmpName)
	}
	if err = p.fs.Chmod(tmpName, documentFileMode); err != nil {
		return errors.Wrapf(err, "unable to set mode on %s", tmpName)
	}
	if err = p.fs.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "unable to replace %s", path)
	}

	p.logger.Debug("saved document",
		zap.String("path", path),
		zap.Int("route_count", len(rs)),
	)
	return nil
}
