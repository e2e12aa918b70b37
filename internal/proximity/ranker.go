package proximity

import (
	"sort"
	"strings"

	"github.com/shenikar/emergency_dispatch/internal/models"
)

// DefaultLimit - сколько ближайших спасателей возвращать, если лимит не задан
const DefaultLimit = 3

// Filter ограничивает набор кандидатов. Пустые поля не фильтруют.
type Filter struct {
	Status models.ResponderStatus
	Type   string
}

func (f Filter) match(r *models.Responder) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Type != "" && !strings.EqualFold(r.Type, f.Type) {
		return false
	}
	return true
}

// Rank отбирает кандидатов по фильтру, сортирует их по удалённости от reference
// и возвращает не более limit ближайших. При равных расстояниях сохраняется исходный порядок.
func Rank(reference models.Location, candidates []*models.Responder, filter Filter, limit int) []models.RankedResponder {
	if limit <= 0 {
		limit = DefaultLimit
	}

	ranked := make([]models.RankedResponder, 0, len(candidates))
	for _, r := range candidates {
		if r == nil || !filter.match(r) {
			continue
		}
		ranked = append(ranked, models.RankedResponder{
			Responder:  r,
			DistanceKm: Distance(reference, r.Location()),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
