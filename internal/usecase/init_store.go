// Package usecase contains application use cases.
package usecase

import (
	"context"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

// InitStore is the use case for initializing the task store.
type InitStore struct {
	store domain.StoreInitializer
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(store domain.StoreInitializer) *InitStore {
	return &InitStore{store: store}
}

// Execute creates the three containers if they do not exist. Idempotent.
func (uc *InitStore) Execute(_ context.Context) error {
	return uc.store.Initialize()
}
