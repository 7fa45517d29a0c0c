package commands

import (
	"context"

	"jewelry/internal/core/domain/model/estimate"
	"jewelry/internal/core/domain/services"
	"jewelry/internal/core/ports"
)

// ChangeEstimateStatusCommandHandler applies a requested status change,
// gating it by origin and numbering state. The aggregate enforces the
// transition rules; the handler supplies the transactional order-number
// allocation when a direct transition to Ordered requires one, persisting
// the number, its date and the status in the same write.
type ChangeEstimateStatusCommandHandler struct {
	uowFactory EstimateUoWFactory
	allocator  services.OrderNumberAllocator
}

// NewChangeEstimateStatusCommandHandler creates a handler for status-change
// operations. Requires an EstimateUoWFactory for transactional persistence.
func NewChangeEstimateStatusCommandHandler(uowFactory EstimateUoWFactory) ChangeEstimateStatusCommandHandler {
	return ChangeEstimateStatusCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewOrderNumberAllocator(),
	}
}

// Handle processes the status change.
func (h *ChangeEstimateStatusCommandHandler) Handle(ctx context.Context, cmd ChangeEstimateStatusCommand) (EstimateResult, error) {
	if err := cmd.Validate(); err != nil {
		return EstimateResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return EstimateResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EstimateRepository()

	e, err := h.load(ctx, repo, cmd)
	if err != nil {
		return EstimateResult{}, err
	}

	allocate, err := e.ChangeStatus(cmd.Target(), cmd.CustomerAccepting())
	if err != nil {
		return EstimateResult{}, err
	}

	degraded := false
	if allocate {
		if degraded, err = assignNextOrderNumber(ctx, repo, h.allocator, e); err != nil {
			return EstimateResult{}, err
		}
	}

	if err = repo.Update(ctx, e); err != nil {
		return EstimateResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return EstimateResult{}, err
	}

	return newEstimateResult(e, degraded), nil
}

func (h *ChangeEstimateStatusCommandHandler) load(
	ctx context.Context,
	repo ports.EstimateRepository,
	cmd ChangeEstimateStatusCommand,
) (*estimate.Estimate, error) {
	if cmd.EstimateID() > 0 {
		return repo.GetByID(ctx, cmd.EstimateID())
	}
	return repo.GetByNumber(ctx, cmd.EstimateNumber())
}
