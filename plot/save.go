package plot

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

var ErrExists = errors.New("destination file already exists")

// checkDest refuses to replace an existing file unless force is set, and
// never replaces anything but a regular file.
func checkDest(dest string, force bool) error {
	info, err := os.Stat(dest)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, "cannot stat destination file %q", dest)
		}
		return nil
	}
	if !info.Mode().IsRegular() {
		return errors.Newf("cannot replace non-regular file %q: %s", dest, info.Mode())
	}
	if !force {
		return errors.Wrapf(ErrExists, "%q", dest)
	}
	return nil
}

// save writes dest through a temporary file in the same folder and
// renames it into place once write succeeded.
func save(dest string, force bool, write func(*os.File) error) (err error) {
	if err = checkDest(dest, force); err != nil {
		return err
	}

	dir, name := filepath.Split(dest)
	if dir == "" {
		dir = "."
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "unable to create destination folder %q", dir)
	}

	outFile, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return errors.Wrapf(err, "could not create temporary destination for %q", dest)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = errors.Wrapf(defErr, "could not flush temporary destination %q", outFile.Name())
			canRename = false
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = errors.Wrapf(defErr, "could not close temporary destination %q", outFile.Name())
			canRename = false
		}

		if !canRename {
			_ = os.Remove(outFile.Name())
			return
		}
		if defErr := os.Rename(outFile.Name(), dest); defErr != nil {
			err = errors.Wrapf(defErr, "could not rename destination file %q", dest)
			_ = os.Remove(outFile.Name())
		}
	}()

	if err = write(outFile); err != nil {
		return errors.Wrapf(err, "could not write %q", dest)
	}
	canRename = true
	return nil
}
