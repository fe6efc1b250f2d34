package leia

import (
	"image"
	"sync"
)

// ModeCall records one SetMode invocation.
type ModeCall struct {
	On   bool
	Mode int
}

// MockNative is an in-memory Native that records every call. It is meant for
// host application tests that drive an Adapter through WithNative.
type MockNative struct {
	mu sync.Mutex

	// StereoResult is returned from IsStereoPair.
	StereoResult bool

	modeCalls  []ModeCall
	pairInputs [][2]image.Image
	closed     int
}

func (m *MockNative) IsStereoPair(left, right image.Image) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pairInputs = append(m.pairInputs, [2]image.Image{left, right})
	return m.StereoResult
}

func (m *MockNative) SetMode(on bool, mode int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modeCalls = append(m.modeCalls, ModeCall{On: on, Mode: mode})
}

func (m *MockNative) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed++
	return nil
}

// ModeCalls returns a copy of the recorded SetMode calls.
func (m *MockNative) ModeCalls() []ModeCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ModeCall(nil), m.modeCalls...)
}

// PairInputs returns the left/right pairs passed to IsStereoPair.
func (m *MockNative) PairInputs() [][2]image.Image {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][2]image.Image(nil), m.pairInputs...)
}

// Closed reports how many times Close was called.
func (m *MockNative) Closed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
