package discovery

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/amoura-app/amoura-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (domain.User, error)
	FindActiveCandidatesFunc func(ctx context.Context, f domain.CandidateFilter) ([]domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		FindActiveCandidates []struct {
			Ctx context.Context
			F   domain.CandidateFilter
		}
	}
	lockGetByID              sync.RWMutex
	lockFindActiveCandidates sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) FindActiveCandidates(ctx context.Context, f domain.CandidateFilter) ([]domain.User, error) {
	if mock.FindActiveCandidatesFunc == nil {
		panic("userRepoMock.FindActiveCandidatesFunc: method is nil but userRepo.FindActiveCandidates was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.CandidateFilter
	}{Ctx: ctx, F: f}
	mock.lockFindActiveCandidates.Lock()
	mock.calls.FindActiveCandidates = append(mock.calls.FindActiveCandidates, callInfo)
	mock.lockFindActiveCandidates.Unlock()
	return mock.FindActiveCandidatesFunc(ctx, f)
}

func (mock *userRepoMock) FindActiveCandidatesCalls() []struct {
	Ctx context.Context
	F   domain.CandidateFilter
} {
	mock.lockFindActiveCandidates.RLock()
	calls := mock.calls.FindActiveCandidates
	mock.lockFindActiveCandidates.RUnlock()
	return calls
}
