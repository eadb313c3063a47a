package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

func Exists(pathname string) bool {
	_, err := os.Stat(pathname)
	return err == nil
}

func IsDir(pathname string) bool {
	fi, err := os.Stat(pathname)
	return err == nil && fi.IsDir()
}

// WriteFile writes b to pathname, creating any missing parent directories.
func WriteFile(pathname string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(pathname), 0777); err != nil {
		return err
	}
	return os.WriteFile(pathname, b, 0666)
}

// WriteFileIfNotExists is WriteFile except that it leaves an existing file
// alone. It reports whether it wrote anything.
func WriteFileIfNotExists(pathname string, b []byte) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(pathname), 0777); err != nil {
		return false, err
	}
	f, err := os.OpenFile(pathname, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0666)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return false, err
	}
	if err := f.Close(); err != nil {
		return false, err
	}
	return true, nil
}
