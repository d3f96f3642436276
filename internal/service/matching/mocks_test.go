package matching

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	FindByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)

	calls struct {
		FindByIDs []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
	}
	lockFindByIDs sync.RWMutex
}

func (mock *userRepoMock) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if mock.FindByIDsFunc == nil {
		panic("userRepoMock.FindByIDsFunc: method is nil but userRepo.FindByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{Ctx: ctx, IDs: ids}
	mock.lockFindByIDs.Lock()
	mock.calls.FindByIDs = append(mock.calls.FindByIDs, callInfo)
	mock.lockFindByIDs.Unlock()
	return mock.FindByIDsFunc(ctx, ids)
}

func (mock *userRepoMock) FindByIDsCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockFindByIDs.RLock()
	calls := mock.calls.FindByIDs
	mock.lockFindByIDs.RUnlock()
	return calls
}

var _ decisionRepo = &decisionRepoMock{}

type decisionRepoMock struct {
	CreateFunc          func(ctx context.Context, d *domain.Decision) error
	ExistsFunc          func(ctx context.Context, deciderID, targetID uuid.UUID) (bool, error)
	LikeExistsFunc      func(ctx context.Context, deciderID, targetID uuid.UUID) (bool, error)
	PendingLikersFunc   func(ctx context.Context, targetID uuid.UUID) ([]uuid.UUID, error)
	CountLikesSinceFunc func(ctx context.Context, deciderID uuid.UUID, since time.Time) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			D   *domain.Decision
		}
		Exists []struct {
			Ctx       context.Context
			DeciderID uuid.UUID
			TargetID  uuid.UUID
		}
		LikeExists []struct {
			Ctx       context.Context
			DeciderID uuid.UUID
			TargetID  uuid.UUID
		}
		PendingLikers []struct {
			Ctx      context.Context
			TargetID uuid.UUID
		}
		CountLikesSince []struct {
			Ctx       context.Context
			DeciderID uuid.UUID
			Since     time.Time
		}
	}
	lockCreate          sync.RWMutex
	lockExists          sync.RWMutex
	lockLikeExists      sync.RWMutex
	lockPendingLikers   sync.RWMutex
	lockCountLikesSince sync.RWMutex
}

func (mock *decisionRepoMock) Create(ctx context.Context, d *domain.Decision) error {
	if mock.CreateFunc == nil {
		panic("decisionRepoMock.CreateFunc: method is nil but decisionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.Decision
	}{Ctx: ctx, D: d}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *decisionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   *domain.Decision
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *decisionRepoMock) Exists(ctx context.Context, deciderID, targetID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("decisionRepoMock.ExistsFunc: method is nil but decisionRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		DeciderID uuid.UUID
		TargetID  uuid.UUID
	}{Ctx: ctx, DeciderID: deciderID, TargetID: targetID}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, deciderID, targetID)
}

func (mock *decisionRepoMock) ExistsCalls() []struct {
	Ctx       context.Context
	DeciderID uuid.UUID
	TargetID  uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *decisionRepoMock) LikeExists(ctx context.Context, deciderID, targetID uuid.UUID) (bool, error) {
	if mock.LikeExistsFunc == nil {
		panic("decisionRepoMock.LikeExistsFunc: method is nil but decisionRepo.LikeExists was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		DeciderID uuid.UUID
		TargetID  uuid.UUID
	}{Ctx: ctx, DeciderID: deciderID, TargetID: targetID}
	mock.lockLikeExists.Lock()
	mock.calls.LikeExists = append(mock.calls.LikeExists, callInfo)
	mock.lockLikeExists.Unlock()
	return mock.LikeExistsFunc(ctx, deciderID, targetID)
}

func (mock *decisionRepoMock) LikeExistsCalls() []struct {
	Ctx       context.Context
	DeciderID uuid.UUID
	TargetID  uuid.UUID
} {
	mock.lockLikeExists.RLock()
	calls := mock.calls.LikeExists
	mock.lockLikeExists.RUnlock()
	return calls
}

func (mock *decisionRepoMock) PendingLikers(ctx context.Context, targetID uuid.UUID) ([]uuid.UUID, error) {
	if mock.PendingLikersFunc == nil {
		panic("decisionRepoMock.PendingLikersFunc: method is nil but decisionRepo.PendingLikers was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TargetID uuid.UUID
	}{Ctx: ctx, TargetID: targetID}
	mock.lockPendingLikers.Lock()
	mock.calls.PendingLikers = append(mock.calls.PendingLikers, callInfo)
	mock.lockPendingLikers.Unlock()
	return mock.PendingLikersFunc(ctx, targetID)
}

func (mock *decisionRepoMock) PendingLikersCalls() []struct {
	Ctx      context.Context
	TargetID uuid.UUID
} {
	mock.lockPendingLikers.RLock()
	calls := mock.calls.PendingLikers
	mock.lockPendingLikers.RUnlock()
	return calls
}

func (mock *decisionRepoMock) CountLikesSince(ctx context.Context, deciderID uuid.UUID, since time.Time) (int, error) {
	if mock.CountLikesSinceFunc == nil {
		panic("decisionRepoMock.CountLikesSinceFunc: method is nil but decisionRepo.CountLikesSince was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		DeciderID uuid.UUID
		Since     time.Time
	}{Ctx: ctx, DeciderID: deciderID, Since: since}
	mock.lockCountLikesSince.Lock()
	mock.calls.CountLikesSince = append(mock.calls.CountLikesSince, callInfo)
	mock.lockCountLikesSince.Unlock()
	return mock.CountLikesSinceFunc(ctx, deciderID, since)
}

func (mock *decisionRepoMock) CountLikesSinceCalls() []struct {
	Ctx       context.Context
	DeciderID uuid.UUID
	Since     time.Time
} {
	mock.lockCountLikesSince.RLock()
	calls := mock.calls.CountLikesSince
	mock.lockCountLikesSince.RUnlock()
	return calls
}

var _ matchRepo = &matchRepoMock{}

type matchRepoMock struct {
	CreateFunc      func(ctx context.Context, m *domain.Match) error
	GetByIDFunc     func(ctx context.Context, id string) (domain.Match, error)
	GetAllForFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.Match, error)
	UpdateStateFunc func(ctx context.Context, id string, state domain.MatchState, endedAt *time.Time) error

	calls struct {
		Create []struct {
			Ctx context.Context
			M   *domain.Match
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		GetAllFor []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpdateState []struct {
			Ctx     context.Context
			ID      string
			State   domain.MatchState
			EndedAt *time.Time
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockGetAllFor   sync.RWMutex
	lockUpdateState sync.RWMutex
}

func (mock *matchRepoMock) Create(ctx context.Context, m *domain.Match) error {
	if mock.CreateFunc == nil {
		panic("matchRepoMock.CreateFunc: method is nil but matchRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Match
	}{Ctx: ctx, M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *matchRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Match
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *matchRepoMock) GetByID(ctx context.Context, id string) (domain.Match, error) {
	if mock.GetByIDFunc == nil {
		panic("matchRepoMock.GetByIDFunc: method is nil but matchRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *matchRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *matchRepoMock) GetAllFor(ctx context.Context, userID uuid.UUID) ([]domain.Match, error) {
	if mock.GetAllForFunc == nil {
		panic("matchRepoMock.GetAllForFunc: method is nil but matchRepo.GetAllFor was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetAllFor.Lock()
	mock.calls.GetAllFor = append(mock.calls.GetAllFor, callInfo)
	mock.lockGetAllFor.Unlock()
	return mock.GetAllForFunc(ctx, userID)
}

func (mock *matchRepoMock) GetAllForCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetAllFor.RLock()
	calls := mock.calls.GetAllFor
	mock.lockGetAllFor.RUnlock()
	return calls
}

func (mock *matchRepoMock) UpdateState(ctx context.Context, id string, state domain.MatchState, endedAt *time.Time) error {
	if mock.UpdateStateFunc == nil {
		panic("matchRepoMock.UpdateStateFunc: method is nil but matchRepo.UpdateState was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      string
		State   domain.MatchState
		EndedAt *time.Time
	}{Ctx: ctx, ID: id, State: state, EndedAt: endedAt}
	mock.lockUpdateState.Lock()
	mock.calls.UpdateState = append(mock.calls.UpdateState, callInfo)
	mock.lockUpdateState.Unlock()
	return mock.UpdateStateFunc(ctx, id, state, endedAt)
}

func (mock *matchRepoMock) UpdateStateCalls() []struct {
	Ctx     context.Context
	ID      string
	State   domain.MatchState
	EndedAt *time.Time
} {
	mock.lockUpdateState.RLock()
	calls := mock.calls.UpdateState
	mock.lockUpdateState.RUnlock()
	return calls
}

var _ undoRecorder = &undoRecorderMock{}

type undoRecorderMock struct {
	RecordFunc func(ctx context.Context, userID uuid.UUID, d *domain.Decision, matchID *string) error

	calls struct {
		Record []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			D       *domain.Decision
			MatchID *string
		}
	}
	lockRecord sync.RWMutex
}

func (mock *undoRecorderMock) Record(ctx context.Context, userID uuid.UUID, d *domain.Decision, matchID *string) error {
	if mock.RecordFunc == nil {
		panic("undoRecorderMock.RecordFunc: method is nil but undoRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		D       *domain.Decision
		MatchID *string
	}{Ctx: ctx, UserID: userID, D: d, MatchID: matchID}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, userID, d, matchID)
}

func (mock *undoRecorderMock) RecordCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	D       *domain.Decision
	MatchID *string
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
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
