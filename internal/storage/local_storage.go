package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps binary content on the local disk under caller-chosen
// keys ("<userID>/<name>") and hands out publicly resolvable URLs for them.
// The namespace core only ever stores those URLs, never the bytes.
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, err
	}
	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

func (ls *LocalStorage) pathFromKey(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(ls.basePath, clean), nil
}

// Save writes the content under key and returns its public URL.
func (ls *LocalStorage) Save(key string, data io.Reader) (string, error) {
	filePath, err := ls.pathFromKey(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return "", err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		return "", err
	}

	return ls.PublicURL(key), nil
}

func (ls *LocalStorage) PublicURL(key string) string {
	return ls.baseURL + "/" + key
}

// keyFromRef accepts either a bare key or a public URL previously issued by
// this store.
func (ls *LocalStorage) keyFromRef(ref string) string {
	return strings.TrimPrefix(strings.TrimPrefix(ref, ls.baseURL), "/")
}

func (ls *LocalStorage) Get(ref string) (io.ReadCloser, error) {
	filePath, err := ls.pathFromKey(ls.keyFromRef(ref))
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object %s not found: %w", ref, err)
		}
		return nil, err
	}

	return file, nil
}

// Delete removes the content behind ref. A missing object is not an error;
// the metadata row is already gone and that is what matters.
func (ls *LocalStorage) Delete(ref string) error {
	filePath, err := ls.pathFromKey(ls.keyFromRef(ref))
	if err != nil {
		return err
	}

	rmErr := os.Remove(filePath)
	if os.IsNotExist(rmErr) {
		return nil
	}

	return rmErr
}
