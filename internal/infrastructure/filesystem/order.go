package filesystem

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/dezh-tech/immortal/pkg/logger"
)

// OrderFile keeps the manual album order as a flat JSON array of slugs.
type OrderFile struct {
	path string
}

func NewOrderFile(path string) *OrderFile {
	return &OrderFile{path: path}
}

// GetOrder never fails: a missing or unreadable file is an empty order.
func (o *OrderFile) GetOrder() ([]string, error) {
	data, err := os.ReadFile(o.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Error("failed to read album order", "path", o.path, "err", err)
		}

		return []string{}, nil
	}

	var entries []*string
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Error("failed to parse album order", "path", o.path, "err", err)

		return []string{}, nil
	}

	slugs := make([]string, 0, len(entries))
	for _, slug := range entries {
		if slug != nil {
			slugs = append(slugs, *slug)
		}
	}

	return slugs, nil
}

func (o *OrderFile) SaveOrder(slugs []string) error {
	if slugs == nil {
		slugs = []string{}
	}

	data, err := json.MarshalIndent(slugs, "", "  ")
	if err != nil {
		return err
	}

	return writeFileAtomic(o.path, append(data, '\n'))
}
