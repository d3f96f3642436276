package undo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

var _ undoStateRepo = &undoStateRepoMock{}

type undoStateRepoMock struct {
	UpsertFunc        func(ctx context.Context, s *domain.UndoState) error
	GetByUserIDFunc   func(ctx context.Context, userID uuid.UUID) (domain.UndoState, error)
	DeleteFunc        func(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredFunc func(ctx context.Context, now time.Time) (int64, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			S   *domain.UndoState
		}
		GetByUserID []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		DeleteExpired []struct {
			Ctx context.Context
			Now time.Time
		}
	}
	lockUpsert        sync.RWMutex
	lockGetByUserID   sync.RWMutex
	lockDelete        sync.RWMutex
	lockDeleteExpired sync.RWMutex
}

func (mock *undoStateRepoMock) Upsert(ctx context.Context, s *domain.UndoState) error {
	if mock.UpsertFunc == nil {
		panic("undoStateRepoMock.UpsertFunc: method is nil but undoStateRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.UndoState
	}{Ctx: ctx, S: s}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, s)
}

func (mock *undoStateRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	S   *domain.UndoState
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *undoStateRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (domain.UndoState, error) {
	if mock.GetByUserIDFunc == nil {
		panic("undoStateRepoMock.GetByUserIDFunc: method is nil but undoStateRepo.GetByUserID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *undoStateRepoMock) GetByUserIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *undoStateRepoMock) Delete(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("undoStateRepoMock.DeleteFunc: method is nil but undoStateRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID)
}

func (mock *undoStateRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *undoStateRepoMock) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("undoStateRepoMock.DeleteExpiredFunc: method is nil but undoStateRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx, now)
}

func (mock *undoStateRepoMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}

var _ decisionRepo = &decisionRepoMock{}

type decisionRepoMock struct {
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockDelete sync.RWMutex
}

func (mock *decisionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("decisionRepoMock.DeleteFunc: method is nil but decisionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *decisionRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ matchRepo = &matchRepoMock{}

type matchRepoMock struct {
	DeleteFunc func(ctx context.Context, id string) error

	calls struct {
		Delete []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockDelete sync.RWMutex
}

func (mock *matchRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("matchRepoMock.DeleteFunc: method is nil but matchRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *matchRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
