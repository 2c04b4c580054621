package mocks

import (
	"context"
	"sync"

	"github.com/mcoot/playtime/internal/dependencies/recaptcha"
)

// VerifyCall records the arguments of one Verify call
type VerifyCall struct {
	Token    string
	RemoteIP string
}

// MockVerifier is a mock implementation of recaptcha.Verifier for testing
type MockVerifier struct {
	mu     sync.Mutex
	Result recaptcha.Result
	Err    error
	Calls  []VerifyCall
}

// Ensure MockVerifier implements Verifier
var _ recaptcha.Verifier = (*MockVerifier)(nil)

// NewMockVerifier creates a verifier that accepts every token
func NewMockVerifier() *MockVerifier {
	return &MockVerifier{Result: recaptcha.Result{Success: true}}
}

// Reject makes subsequent calls answer success=false
func (m *MockVerifier) Reject(errorCodes ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Result = recaptcha.Result{Success: false, ErrorCodes: errorCodes}
	m.Err = nil
}

// Fail makes subsequent calls return err
func (m *MockVerifier) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
}

// Verify records the call and returns the configured outcome
func (m *MockVerifier) Verify(_ context.Context, token, remoteIP string) (recaptcha.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, VerifyCall{Token: token, RemoteIP: remoteIP})
	if m.Err != nil {
		return recaptcha.Result{}, m.Err
	}
	return m.Result, nil
}

// CallCount returns the number of Verify calls
func (m *MockVerifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
