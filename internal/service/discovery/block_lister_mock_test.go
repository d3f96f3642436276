package discovery

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ blockLister = &blockListerMock{}

type blockListerMock struct {
	BlockedIDsFunc func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		BlockedIDs []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockBlockedIDs sync.RWMutex
}

func (mock *blockListerMock) BlockedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if mock.BlockedIDsFunc == nil {
		panic("blockListerMock.BlockedIDsFunc: method is nil but blockLister.BlockedIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockBlockedIDs.Lock()
	mock.calls.BlockedIDs = append(mock.calls.BlockedIDs, callInfo)
	mock.lockBlockedIDs.Unlock()
	return mock.BlockedIDsFunc(ctx, userID)
}

func (mock *blockListerMock) BlockedIDsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockBlockedIDs.RLock()
	calls := mock.calls.BlockedIDs
	mock.lockBlockedIDs.RUnlock()
	return calls
}
