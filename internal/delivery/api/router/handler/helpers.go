package handler

import (
	"strings"

	"github.com/google/uuid"
)

// parseID parses a record id. A blank id is reported with missing, an unparsable one with notFound,
// since no stored record can carry it.
func parseID(raw string, missing, notFound error) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, missing
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, notFound
	}

	return id, nil
}
