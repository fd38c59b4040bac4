package domain

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is an immutable copy of a canonical item at one version, taken
// whenever the version advances. Snapshots are write-once: no update or
// delete operation exists.
type Snapshot[A Attributes] struct {
	CanonicalID      uuid.UUID
	Version          int
	TranslationSetID uuid.UUID
	Language         Language
	Attrs            A
	CreatedAt        time.Time
}

// SnapshotOf captures the full field set of a canonical item.
func SnapshotOf[A Attributes](item Canonical[A], now time.Time) Snapshot[A] {
	return Snapshot[A]{
		CanonicalID:      item.ID,
		Version:          item.Version,
		TranslationSetID: item.TranslationSetID,
		Language:         item.Language,
		Attrs:            item.Attrs,
		CreatedAt:        now,
	}
}
