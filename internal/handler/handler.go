// Package handler holds the gin HTTP handlers. Read endpoints answer from
// the store's fallback data when no database is configured; write
// endpoints surface the storage error instead.
package handler

import (
	"errors"
	"net/http"

	"team-awesome/internal/store"
)

func storageStatus(err error) int {
	if errors.Is(err, store.ErrNoDatabase) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
