package usecase

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	careRepo "plant-care-management/internal/care/repository"
	"plant-care-management/internal/model"
	"plant-care-management/internal/suggestion"
	"plant-care-management/internal/suggestion/repository"
	pkgLog "plant-care-management/pkg/log"
)

const cooldownCacheSize = 1024

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	plants   careRepo.Repository
	cooldown *expirable.LRU[string, struct{}]
}

// New creates a new suggestion UseCase instance.
// The expirable cache is a fast path over the durable dismissal lookup; the
// repository remains the source of truth across restarts.
func New(l pkgLog.Logger, repo repository.Repository, plants careRepo.Repository) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		plants:   plants,
		cooldown: expirable.NewLRU[string, struct{}](cooldownCacheSize, nil, suggestion.CooldownDays*24*time.Hour),
	}
}

// cooldownKey identifies one dismissed proposal value.
func cooldownKey(sc model.Scope, plantID string, kind model.CareKind, days int) string {
	return fmt.Sprintf("%s|%s|%s|%d", sc.UserID, plantID, kind, days)
}
