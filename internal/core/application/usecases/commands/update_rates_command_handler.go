package commands

import (
	"context"
	"errors"

	"jewelry/internal/core/domain/model/rate"
	"jewelry/internal/core/ports"
	"jewelry/internal/pkg/errs"
)

// UpdateRatesCommandHandler publishes the day's metal rates with upsert
// semantics: a second publication for the same day replaces the first.
// After a successful commit the current-rates cache entry is invalidated so
// readers pick up the new values; a cache failure is ignored, the entry
// expires on its own.
type UpdateRatesCommandHandler struct {
	uowFactory RateUoWFactory
	cache      ports.RateCache
}

// NewUpdateRatesCommandHandler creates a handler for rate publications.
func NewUpdateRatesCommandHandler(uowFactory RateUoWFactory, cache ports.RateCache) UpdateRatesCommandHandler {
	return UpdateRatesCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the publication.
func (h *UpdateRatesCommandHandler) Handle(ctx context.Context, cmd UpdateRatesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RateRepository()

	existing, err := repo.GetByDate(ctx, cmd.Date())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if existing != nil {
		if err = existing.UpdateRates(cmd.TimeOfDay(),
			cmd.Gold16(), cmd.Gold18(), cmd.Gold22(), cmd.Gold24(), cmd.Silver()); err != nil {
			return err
		}
		if err = repo.Update(ctx, existing); err != nil {
			return err
		}
	} else {
		snapshot, snapErr := rate.NewSnapshot(cmd.Date(), cmd.TimeOfDay(),
			cmd.Gold16(), cmd.Gold18(), cmd.Gold22(), cmd.Gold24(), cmd.Silver())
		if snapErr != nil {
			return snapErr
		}
		if err = repo.Add(ctx, snapshot); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.cache.InvalidateCurrent(ctx)

	return nil
}
