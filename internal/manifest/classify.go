package manifest

import (
	"github.com/extforge/extforge-go/internal/domain"
	"github.com/samber/lo"
)

// Classify partitions entrypoints into per-type buckets, preserving
// discovery order within each bucket. Nothing is dropped here; singleton
// cardinality is applied later by the field mappers.
func Classify(entrypoints []domain.Entrypoint) map[domain.EntrypointType][]domain.Entrypoint {
	return lo.GroupBy(entrypoints, func(ep domain.Entrypoint) domain.EntrypointType {
		return ep.Type
	})
}
