package auth

import (
	"context"
	"sync"
	"time"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc        func(ctx context.Context, tokenHash string, expiresAt time.Time) (*domain.Session, error)
	GetByHashFunc     func(ctx context.Context, tokenHash string) (*domain.Session, error)
	RevokeByHashFunc  func(ctx context.Context, tokenHash string) error
	DeleteExpiredFunc func(ctx context.Context) (int64, error)

	calls struct {
		Create []struct {
			Ctx       context.Context
			TokenHash string
			ExpiresAt time.Time
		}
		GetByHash []struct {
			Ctx       context.Context
			TokenHash string
		}
		RevokeByHash []struct {
			Ctx       context.Context
			TokenHash string
		}
		DeleteExpired []struct {
			Ctx context.Context
		}
	}
	lockCreate        sync.RWMutex
	lockGetByHash     sync.RWMutex
	lockRevokeByHash  sync.RWMutex
	lockDeleteExpired sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, tokenHash string, expiresAt time.Time) (*domain.Session, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
		ExpiresAt time.Time
	}{Ctx: ctx, TokenHash: tokenHash, ExpiresAt: expiresAt}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, tokenHash, expiresAt)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx       context.Context
	TokenHash string
	ExpiresAt time.Time
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	if mock.GetByHashFunc == nil {
		panic("sessionRepoMock.GetByHashFunc: method is nil but sessionRepo.GetByHash was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockGetByHash.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, callInfo)
	mock.lockGetByHash.Unlock()
	return mock.GetByHashFunc(ctx, tokenHash)
}

func (mock *sessionRepoMock) GetByHashCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockGetByHash.RLock()
	calls := mock.calls.GetByHash
	mock.lockGetByHash.RUnlock()
	return calls
}

func (mock *sessionRepoMock) RevokeByHash(ctx context.Context, tokenHash string) error {
	if mock.RevokeByHashFunc == nil {
		panic("sessionRepoMock.RevokeByHashFunc: method is nil but sessionRepo.RevokeByHash was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TokenHash string
	}{Ctx: ctx, TokenHash: tokenHash}
	mock.lockRevokeByHash.Lock()
	mock.calls.RevokeByHash = append(mock.calls.RevokeByHash, callInfo)
	mock.lockRevokeByHash.Unlock()
	return mock.RevokeByHashFunc(ctx, tokenHash)
}

func (mock *sessionRepoMock) RevokeByHashCalls() []struct {
	Ctx       context.Context
	TokenHash string
} {
	mock.lockRevokeByHash.RLock()
	calls := mock.calls.RevokeByHash
	mock.lockRevokeByHash.RUnlock()
	return calls
}

func (mock *sessionRepoMock) DeleteExpired(ctx context.Context) (int64, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("sessionRepoMock.DeleteExpiredFunc: method is nil but sessionRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx)
}

func (mock *sessionRepoMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}
