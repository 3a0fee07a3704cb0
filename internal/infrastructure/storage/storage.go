// Package storage provides the object storage backends for uploaded CVs.
package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arcadia-esports/cms-api/internal/core/ports"
	"github.com/arcadia-esports/cms-api/internal/infrastructure/config"
)

// New selects the backend named by UPLOAD_BACKEND.
func New(cfg *config.Config) (ports.ObjectStorage, error) {
	switch cfg.Upload.Backend {
	case config.UploadMinio:
		return NewMinioClient(cfg.Minio)
	case config.UploadLocal, "":
		return NewLocalStorage(cfg.Upload.Dir), nil
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.Upload.Backend)
	}
}

// validKey rejects anything that could escape the bucket or directory.
func validKey(key string) bool {
	if key == "" || key == "." || key == ".." {
		return false
	}
	return !strings.ContainsAny(key, `/\`) && filepath.Base(key) == key
}
