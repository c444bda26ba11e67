package household

import (
	"context"
	"sync"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

var _ documentRepo = &documentRepoMock{}

type documentRepoMock struct {
	GetFunc func(ctx context.Context, key string) (*domain.Document, error)
	SetFunc func(ctx context.Context, key string, doc *domain.Document) error

	calls struct {
		Get []struct {
			Ctx context.Context
			Key string
		}
		Set []struct {
			Ctx context.Context
			Key string
			Doc *domain.Document
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *documentRepoMock) Get(ctx context.Context, key string) (*domain.Document, error) {
	if mock.GetFunc == nil {
		panic("documentRepoMock.GetFunc: method is nil but documentRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *documentRepoMock) GetCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *documentRepoMock) Set(ctx context.Context, key string, doc *domain.Document) error {
	if mock.SetFunc == nil {
		panic("documentRepoMock.SetFunc: method is nil but documentRepo.Set was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
		Doc *domain.Document
	}{Ctx: ctx, Key: key, Doc: doc}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, key, doc)
}

func (mock *documentRepoMock) SetCalls() []struct {
	Ctx context.Context
	Key string
	Doc *domain.Document
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
