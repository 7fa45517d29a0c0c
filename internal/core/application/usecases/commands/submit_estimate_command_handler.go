package commands

import (
	"context"
	"errors"

	"jewelry/internal/core/domain/model/estimate"
	"jewelry/internal/core/domain/services"
	"jewelry/internal/pkg/errs"
)

// SubmitEstimateCommandHandler handles estimate submissions with upsert
// semantics: a submission whose estimate number already exists updates that
// record, otherwise a new estimate is created.
//
// Customer-originated submissions are confirmed immediately: the status is
// forced to Ordered and an order number is allocated inside the same
// transaction, so the record never exists without one. The allocation is
// guarded by a pre-check against the existing record's number, so repeated
// submissions never mint a second number.
type SubmitEstimateCommandHandler struct {
	uowFactory EstimateUoWFactory
	allocator  services.OrderNumberAllocator
}

// NewSubmitEstimateCommandHandler creates a handler for estimate submissions.
// Requires an EstimateUoWFactory for transactional persistence.
func NewSubmitEstimateCommandHandler(uowFactory EstimateUoWFactory) SubmitEstimateCommandHandler {
	return SubmitEstimateCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewOrderNumberAllocator(),
	}
}

// Handle processes the submission.
// Exactly one store write happens: an insert for a new estimate number, an
// update for a repeated one.
func (h *SubmitEstimateCommandHandler) Handle(ctx context.Context, cmd SubmitEstimateCommand) (EstimateResult, error) {
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

	existing, err := repo.GetByNumber(ctx, cmd.EstimateNumber())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return EstimateResult{}, err
	}

	if existing != nil {
		return h.update(ctx, uow, existing, cmd)
	}
	return h.create(ctx, uow, cmd)
}

func (h *SubmitEstimateCommandHandler) create(ctx context.Context, uow EstimateUoW, cmd SubmitEstimateCommand) (EstimateResult, error) {
	e, err := estimate.NewEstimate(cmd.EstimateNumber(), cmd.Date(), cmd.Source(), cmd.Status())
	if err != nil {
		return EstimateResult{}, err
	}
	e.UpdateDetails(cmd.Details())

	degraded := false
	if e.RequiresOrderNumber() {
		repo := uow.EstimateRepository()
		if degraded, err = assignNextOrderNumber(ctx, repo, h.allocator, e); err != nil {
			return EstimateResult{}, err
		}
	}

	if err = uow.EstimateRepository().Add(ctx, e); err != nil {
		return EstimateResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return EstimateResult{}, err
	}

	return newEstimateResult(e, degraded), nil
}

func (h *SubmitEstimateCommandHandler) update(ctx context.Context, uow EstimateUoW, e *estimate.Estimate, cmd SubmitEstimateCommand) (EstimateResult, error) {
	if err := e.Resubmit(cmd.Date(), cmd.Status(), cmd.Details()); err != nil {
		return EstimateResult{}, err
	}

	degraded := false
	if e.RequiresOrderNumber() {
		var err error
		if degraded, err = assignNextOrderNumber(ctx, uow.EstimateRepository(), h.allocator, e); err != nil {
			return EstimateResult{}, err
		}
	}

	if err := uow.EstimateRepository().Update(ctx, e); err != nil {
		return EstimateResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return EstimateResult{}, err
	}

	return newEstimateResult(e, degraded), nil
}
