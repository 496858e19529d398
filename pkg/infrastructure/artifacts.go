package infrastructure

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
)

// DirArtifactStore keeps exported files under one directory, each prefixed
// with a random id so repeated exports never overwrite each other.
type DirArtifactStore struct {
	dir string
}

func NewDirArtifactStore(dir string) *DirArtifactStore {
	return &DirArtifactStore{dir: dir}
}

func (s *DirArtifactStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, uuid.New().String()+"_"+filepath.Base(name))
	if err := WriteFileAtomic(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
