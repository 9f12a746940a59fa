package objectstore

import (
	"errors"
	"fmt"

	"photoadmin/internal/domain/model"
)

var authCodes = map[string]struct{}{
	"AccessDenied":       {},
	"ExpiredToken":       {},
	"InvalidAccessKeyId": {},
}

func IsAuthCode(code string) bool {
	_, ok := authCodes[code]

	return ok
}

// Upstream tags a driver failure so handlers report it as a remote error.
func Upstream(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, model.ErrUpstream) {
		return err
	}

	return fmt.Errorf("%w: %s: %w", model.ErrUpstream, op, err)
}
