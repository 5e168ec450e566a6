// Package store picks the persistence backend for a data file.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/packing/internal/model"
	"github.com/idilsaglam/packing/internal/store/jsonstore"
	"github.com/idilsaglam/packing/internal/store/sqlitestore"
)

// Backend loads and saves a whole list.
type Backend interface {
	Load(ctx context.Context) ([]model.Item, error)
	Save(ctx context.Context, items []model.Item) error
	Close() error
}

var ErrUnsupportedFormat = errors.New("unsupported data file format")

// Open chooses a backend from the file extension: .json, .db or .sqlite.
func Open(ctx context.Context, path string) (Backend, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return jsonstore.New(path), nil
	case ".db", ".sqlite":
		s, err := sqlitestore.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}
