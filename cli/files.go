package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4/v4"
)

const (
	backupSuffix = ".orig"
	lz4Suffix    = ".lz4"
)

/* writeFileAtomic never leaves a half written file at path: the data goes to a
 * temporary file in the same directory which then replaces path */
func writeFileAtomic(path string, data []byte) error {
	perm := os.FileMode(0644)
	if st, err := os.Stat(path); err == nil {
		perm = st.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	name := tmp.Name()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(name, perm)
	}
	if err == nil {
		err = os.Rename(name, path)
	}

	if err != nil {
		os.Remove(name)
	}
	return err
}

func writeBackup(path string, data []byte, compress bool) (string, error) {
	name := path + backupSuffix
	if compress {
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return "", err
		}
		if err := zw.Close(); err != nil {
			return "", err
		}

		data = buf.Bytes()
		name += lz4Suffix
	}

	return name, writeFileAtomic(name, data)
}

/* readBackup prefers the compressed backup when both exist */
func readBackup(path string) ([]byte, string, error) {
	name := path + backupSuffix + lz4Suffix
	f, err := os.Open(name)
	if errors.Is(err, os.ErrNotExist) {
		name = path + backupSuffix
		data, err := os.ReadFile(name)
		return data, name, err
	} else if err != nil {
		return nil, name, err
	}
	defer f.Close()

	data, err := io.ReadAll(lz4.NewReader(f))
	return data, name, err
}
