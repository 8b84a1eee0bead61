package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskUploader stores image assets on local disk and hands back the
// public URL they are served from.
type DiskUploader struct {
	Dir     string
	BaseURL string
}

func NewDiskUploader(dir, baseURL string) (*DiskUploader, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskUploader{Dir: dir, BaseURL: baseURL}, nil
}

// Upload writes the file under a collision-free name. The original
// filename only contributes its extension.
func (u *DiskUploader) Upload(filename string, file io.Reader) (string, error) {
	name := uuid.NewString() + filepath.Ext(filename)

	dst, err := os.Create(filepath.Join(u.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return u.BaseURL + "/uploads/" + name, nil
}
