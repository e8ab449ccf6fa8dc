// Package seqmock holds GoMock doubles of the seqkit protocol interfaces
// (Sequence and IndexedSequence).
//
// mockgen v1.6.0 can't generate generic mocks,
// so the doubles are written by hand in the shape MockGen emits,
// and they work with a regular gomock.Controller.
// Keep them in sync with the interfaces when those change.
package seqmock

import (
	iter "iter"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockSequence is a mock of Sequence interface.
type MockSequence[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockSequenceMockRecorder[T]
}

// MockSequenceMockRecorder is the mock recorder for MockSequence.
type MockSequenceMockRecorder[T any] struct {
	mock *MockSequence[T]
}

// NewMockSequence creates a new mock instance.
func NewMockSequence[T any](ctrl *gomock.Controller) *MockSequence[T] {
	mock := &MockSequence[T]{ctrl: ctrl}
	mock.recorder = &MockSequenceMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSequence[T]) EXPECT() *MockSequenceMockRecorder[T] {
	return m.recorder
}

// Iter mocks base method.
func (m *MockSequence[T]) Iter() iter.Seq[T] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Iter")
	ret0, _ := ret[0].(iter.Seq[T])
	return ret0
}

// Iter indicates an expected call of Iter.
func (mr *MockSequenceMockRecorder[T]) Iter() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Iter", reflect.TypeOf((*MockSequence[T])(nil).Iter))
}

// MockIndexedSequence is a mock of IndexedSequence interface.
type MockIndexedSequence[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockIndexedSequenceMockRecorder[T]
}

// MockIndexedSequenceMockRecorder is the mock recorder for MockIndexedSequence.
type MockIndexedSequenceMockRecorder[T any] struct {
	mock *MockIndexedSequence[T]
}

// NewMockIndexedSequence creates a new mock instance.
func NewMockIndexedSequence[T any](ctrl *gomock.Controller) *MockIndexedSequence[T] {
	mock := &MockIndexedSequence[T]{ctrl: ctrl}
	mock.recorder = &MockIndexedSequenceMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIndexedSequence[T]) EXPECT() *MockIndexedSequenceMockRecorder[T] {
	return m.recorder
}

// Iter mocks base method.
func (m *MockIndexedSequence[T]) Iter() iter.Seq[T] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Iter")
	ret0, _ := ret[0].(iter.Seq[T])
	return ret0
}

// Iter indicates an expected call of Iter.
func (mr *MockIndexedSequenceMockRecorder[T]) Iter() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Iter", reflect.TypeOf((*MockIndexedSequence[T])(nil).Iter))
}

// Len mocks base method.
func (m *MockIndexedSequence[T]) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

// Len indicates an expected call of Len.
func (mr *MockIndexedSequenceMockRecorder[T]) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*MockIndexedSequence[T])(nil).Len))
}

// Lookup mocks base method.
func (m *MockIndexedSequence[T]) Lookup(index int) (T, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Lookup", index)
	ret0, _ := ret[0].(T)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Lookup indicates an expected call of Lookup.
func (mr *MockIndexedSequenceMockRecorder[T]) Lookup(index any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Lookup", reflect.TypeOf((*MockIndexedSequence[T])(nil).Lookup), index)
}
