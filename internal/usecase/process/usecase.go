package process

import (
	"context"
	"errors"
	"time"

	"studentloan-backend/internal/domain/period"
	domain "studentloan-backend/internal/domain/process"
	"studentloan-backend/internal/domain/uow"
	"studentloan-backend/internal/logging"
)

// Tracker owns the three-step downstream workflow per student and period.
type Tracker struct {
	uow   uow.UnitOfWork
	repo  domain.Repository
	cache Cache
	now   func() time.Time
}

// NewTracker: a nil cache falls back to an in-memory one with DefaultMemoryTTL.
func NewTracker(tx uow.UnitOfWork, repo domain.Repository, cache Cache) *Tracker {
	if cache == nil {
		cache = NewMemoryCache(DefaultMemoryTTL)
	}
	return &Tracker{uow: tx, repo: repo, cache: cache, now: func() time.Time { return time.Now().UTC() }}
}

func (t *Tracker) UpdateStep(ctx context.Context, in UpdateStepInput) (*domain.Status, error) {
	if err := in.Key.Validate(); err != nil {
		return nil, err
	}
	if !in.Step.Valid() {
		return nil, domain.ErrInvalidStep
	}
	if !in.Status.Valid() {
		return nil, domain.ErrInvalidStepStatus
	}

	var out *domain.Status
	err := t.uow.WithinTx(ctx, func(r uow.Repos) error {
		cur, err := r.Processes.GetForUpdate(ctx, in.Key)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		now := t.now()
		s := domain.ForKey(cur, in.Key, now)
		if err := s.ApplyStep(in.Step, in.Status, in.Note, now); err != nil {
			return err
		}
		if err := r.Processes.Save(ctx, s); err != nil {
			return err
		}
		out = s
		return nil
	})
	if err != nil {
		logging.Error(ctx, "update process step failed",
			"table", "loan_process_statuses", "key", in.Key.String(), "step", string(in.Step), "err", err)
		return nil, err
	}
	t.cache.Put(ctx, out)
	return out.Clone(), nil
}

// UpdateStepForMany applies UpdateStep to each student in order. A failure
// is recorded and the batch carries on.
func (t *Tracker) UpdateStepForMany(ctx context.Context, keys []period.StudentKey, step domain.StepID, status domain.StepStatus, note string) BulkResult {
	res := BulkResult{Success: []string{}, Failed: []FailedItem{}}
	for _, k := range keys {
		_, err := t.UpdateStep(ctx, UpdateStepInput{Key: k, Step: step, Status: status, Note: note})
		res = fold(res, k.UserID, err)
	}
	return res
}

// Ensure creates the record for key with every step pending unless one
// already exists. It reports whether a record was created.
func (t *Tracker) Ensure(ctx context.Context, key period.StudentKey) (bool, error) {
	if err := key.Validate(); err != nil {
		return false, err
	}
	created, err := t.repo.Ensure(ctx, domain.NewStatus(key, t.now()))
	if err != nil {
		logging.Error(ctx, "ensure process status failed",
			"table", "loan_process_statuses", "key", key.String(), "err", err)
		return false, err
	}
	if s, err := t.repo.Get(ctx, key); err == nil {
		t.cache.Put(ctx, s)
	}
	return created, nil
}

func (t *Tracker) EnsureMany(ctx context.Context, keys []period.StudentKey) BulkResult {
	res := BulkResult{Success: []string{}, Failed: []FailedItem{}}
	for _, k := range keys {
		_, err := t.Ensure(ctx, k)
		res = fold(res, k.UserID, err)
	}
	return res
}

func fold(res BulkResult, userID string, err error) BulkResult {
	if err != nil {
		res.Failed = append(res.Failed, FailedItem{UserID: userID, Error: err.Error()})
		return res
	}
	res.Success = append(res.Success, userID)
	return res
}

// Get serves from the cache first, then the store.
func (t *Tracker) Get(ctx context.Context, key period.StudentKey) (*domain.Status, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if s, ok := t.cache.Get(ctx, key); ok {
		return s, nil
	}
	s, err := t.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	t.cache.Put(ctx, s)
	return s, nil
}

func (t *Tracker) List(ctx context.Context, p period.Period) ([]domain.Status, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return t.repo.ListByPeriod(ctx, p)
}
