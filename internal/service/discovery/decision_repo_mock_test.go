package discovery

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ decisionRepo = &decisionRepoMock{}

type decisionRepoMock struct {
	DecidedTargetIDsFunc func(ctx context.Context, deciderID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		DecidedTargetIDs []struct {
			Ctx       context.Context
			DeciderID uuid.UUID
		}
	}
	lockDecidedTargetIDs sync.RWMutex
}

func (mock *decisionRepoMock) DecidedTargetIDs(ctx context.Context, deciderID uuid.UUID) ([]uuid.UUID, error) {
	if mock.DecidedTargetIDsFunc == nil {
		panic("decisionRepoMock.DecidedTargetIDsFunc: method is nil but decisionRepo.DecidedTargetIDs was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		DeciderID uuid.UUID
	}{Ctx: ctx, DeciderID: deciderID}
	mock.lockDecidedTargetIDs.Lock()
	mock.calls.DecidedTargetIDs = append(mock.calls.DecidedTargetIDs, callInfo)
	mock.lockDecidedTargetIDs.Unlock()
	return mock.DecidedTargetIDsFunc(ctx, deciderID)
}

func (mock *decisionRepoMock) DecidedTargetIDsCalls() []struct {
	Ctx       context.Context
	DeciderID uuid.UUID
} {
	mock.lockDecidedTargetIDs.RLock()
	calls := mock.calls.DecidedTargetIDs
	mock.lockDecidedTargetIDs.RUnlock()
	return calls
}
