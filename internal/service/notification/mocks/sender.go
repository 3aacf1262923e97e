// Package mocks 알림 발송 경로의 테스트 대역을 제공합니다.
package mocks

import (
	"context"
	"sync"

	"github.com/darkkaiser/notify-relay/internal/service/notification/email"
	"github.com/stretchr/testify/mock"
)

// MockSender 수신자별 메일 발송을 대체하는 testify Mock입니다.
//
//	sender := &mocks.MockSender{}
//	sender.On("Send", mock.Anything, "me@work.io", "s", "m").Return(&email.Result{Success: true}, nil)
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, to, subject, body string) (*email.Result, error) {
	args := m.Called(ctx, to, subject, body)

	var result *email.Result
	if r := args.Get(0); r != nil {
		result = r.(*email.Result)
	}
	return result, args.Error(1)
}

// RecordingSender 호출 순서를 기록하고, Fail에 포함된 수신자에 대해서는 에러를 반환합니다.
type RecordingSender struct {
	Fail map[string]error

	mu    sync.Mutex
	calls []string
}

// NewRecordingSender 새로운 RecordingSender를 생성합니다.
func NewRecordingSender() *RecordingSender {
	return &RecordingSender{Fail: make(map[string]error)}
}

func (s *RecordingSender) Send(_ context.Context, to, _, _ string) (*email.Result, error) {
	s.mu.Lock()
	s.calls = append(s.calls, to)
	s.mu.Unlock()

	if err, ok := s.Fail[to]; ok {
		return nil, err
	}
	return &email.Result{Success: true, MessageID: "mock_" + to}, nil
}

// Calls Send가 호출된 수신자 목록을 호출 순서대로 반환합니다.
func (s *RecordingSender) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.calls...)
}
