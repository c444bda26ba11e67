package auth

import (
	"sync"
	"time"
)

var _ sessionManager = &sessionManagerMock{}

type sessionManagerMock struct {
	GenerateFunc func() (string, string, time.Time, error)
	ValidateFunc func(token string) (string, error)

	calls struct {
		Generate []struct{}
		Validate []struct {
			Token string
		}
	}
	lockGenerate sync.RWMutex
	lockValidate sync.RWMutex
}

func (mock *sessionManagerMock) Generate() (string, string, time.Time, error) {
	if mock.GenerateFunc == nil {
		panic("sessionManagerMock.GenerateFunc: method is nil but sessionManager.Generate was just called")
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, struct{}{})
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc()
}

func (mock *sessionManagerMock) GenerateCalls() []struct{} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *sessionManagerMock) Validate(token string) (string, error) {
	if mock.ValidateFunc == nil {
		panic("sessionManagerMock.ValidateFunc: method is nil but sessionManager.Validate was just called")
	}
	callInfo := struct{ Token string }{Token: token}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, callInfo)
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(token)
}

func (mock *sessionManagerMock) ValidateCalls() []struct{ Token string } {
	mock.lockValidate.RLock()
	calls := mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}
