package objectstore

import (
	"context"
	"fmt"

	"photoadmin/internal/domain/entity"
	"photoadmin/internal/domain/model"
	"photoadmin/internal/domain/repository/storage"
)

const removeListLimit = 10

// CurrentVersion picks the version of key to delete. Prefix listings also
// return longer keys, so only exact matches count; the latest one wins.
func CurrentVersion(versions []entity.ObjectVersion, key string) (entity.ObjectVersion, bool) {
	var (
		found entity.ObjectVersion
		ok    bool
	)

	for _, v := range versions {
		if v.Key != key {
			continue
		}

		if v.IsLatest {
			return v, true
		}

		if !ok {
			found, ok = v, true
		}
	}

	return found, ok
}

// RemoveCurrent locates the current version of key and deletes it.
func RemoveCurrent(ctx context.Context, v storage.Versioner, key string) error {
	versions, err := v.ListVersions(ctx, key, removeListLimit)
	if err != nil {
		return err
	}

	current, ok := CurrentVersion(versions, key)
	if !ok {
		return fmt.Errorf("%w: no stored version of %s", model.ErrNotFound, key)
	}

	return v.DeleteVersion(ctx, current.VersionID, current.Key)
}
