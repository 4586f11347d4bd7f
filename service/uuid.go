package service

import (
	"fmt"

	"github.com/google/uuid"

	"toolbox-api/domain"
)

// GenerateUUIDs returns count UUIDs of the requested version, "v4" (random,
// the default) or "v1" (time and node based).
func GenerateUUIDs(input domain.UUIDInput) ([]string, error) {
	if input.Count == 0 {
		input.Count = 1
	}
	if input.Count < 1 || input.Count > MaxUUIDCount {
		return nil, domain.Invalid("count", "must be between 1 and %d", MaxUUIDCount)
	}

	var next func() (uuid.UUID, error)
	switch input.Version {
	case "v4", "":
		next = uuid.NewRandom
	case "v1":
		next = uuid.NewUUID
	default:
		return nil, domain.Invalid("version", "unsupported UUID version %q", input.Version)
	}

	out := make([]string, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		id, err := next()
		if err != nil {
			return nil, fmt.Errorf("generating uuid: %w", err)
		}
		out = append(out, id.String())
	}
	return out, nil
}
