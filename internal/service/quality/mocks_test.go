package quality

import (
	"context"
	"sync"

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
	GetByUsersFunc func(ctx context.Context, deciderID, targetID uuid.UUID) (domain.Decision, error)

	calls struct {
		GetByUsers []struct {
			Ctx       context.Context
			DeciderID uuid.UUID
			TargetID  uuid.UUID
		}
	}
	lockGetByUsers sync.RWMutex
}

func (mock *decisionRepoMock) GetByUsers(ctx context.Context, deciderID, targetID uuid.UUID) (domain.Decision, error) {
	if mock.GetByUsersFunc == nil {
		panic("decisionRepoMock.GetByUsersFunc: method is nil but decisionRepo.GetByUsers was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		DeciderID uuid.UUID
		TargetID  uuid.UUID
	}{Ctx: ctx, DeciderID: deciderID, TargetID: targetID}
	mock.lockGetByUsers.Lock()
	mock.calls.GetByUsers = append(mock.calls.GetByUsers, callInfo)
	mock.lockGetByUsers.Unlock()
	return mock.GetByUsersFunc(ctx, deciderID, targetID)
}

func (mock *decisionRepoMock) GetByUsersCalls() []struct {
	Ctx       context.Context
	DeciderID uuid.UUID
	TargetID  uuid.UUID
} {
	mock.lockGetByUsers.RLock()
	calls := mock.calls.GetByUsers
	mock.lockGetByUsers.RUnlock()
	return calls
}

var _ matchRepo = &matchRepoMock{}

type matchRepoMock struct {
	GetByIDFunc func(ctx context.Context, id string) (domain.Match, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockGetByID sync.RWMutex
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
