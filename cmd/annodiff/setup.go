package main

import (
	"errors"
	"os"

	"github.com/revelaction/annodiff/storage"
	"github.com/revelaction/annodiff/storage/filesystem"
	"github.com/revelaction/annodiff/storage/sqlite/zombiezen"
)

// NewRunRepository selects the store backend for path: a directory holds
// one JSON file per run, anything else is a sqlite database.
func NewRunRepository(path string) (storage.RunRepository, error) {
	if path == "" {
		return nil, errors.New("no run store path given, set --store or ANNODIFF_STORE")
	}

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return filesystem.NewRunStore(path)
	}

	return zombiezen.NewRunHandler(path)
}
