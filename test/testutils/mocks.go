// Package testutils provides mock implementations for testing
package testutils

import (
	"github.com/alchemorsel/recipebook/internal/ports/outbound"
	"github.com/stretchr/testify/mock"
)

// MockRecipeMetrics provides a mock implementation of RecipeMetrics
type MockRecipeMetrics struct {
	mock.Mock
}

var _ outbound.RecipeMetrics = (*MockRecipeMetrics)(nil)

// NewMockRecipeMetrics creates a new mock metrics recorder
func NewMockRecipeMetrics() *MockRecipeMetrics {
	return &MockRecipeMetrics{}
}

// RecordRecipeAdded records an added recipe
func (m *MockRecipeMetrics) RecordRecipeAdded() {
	m.Called()
}

// RecordRecipeRejected records a rejected recipe
func (m *MockRecipeMetrics) RecordRecipeRejected(reason string) {
	m.Called(reason)
}

// RecordQuickFilter records a quick filter run
func (m *MockRecipeMetrics) RecordQuickFilter(matches int) {
	m.Called(matches)
}

// RecordRecipeDoubled records a doubled recipe
func (m *MockRecipeMetrics) RecordRecipeDoubled() {
	m.Called()
}

// Rejected returns how many rejections were recorded for a reason
func (m *MockRecipeMetrics) Rejected(reason string) int {
	count := 0
	for _, call := range m.Calls {
		if call.Method == "RecordRecipeRejected" && call.Arguments.String(0) == reason {
			count++
		}
	}
	return count
}

// SetupStandardMockBehavior accepts every call
func (m *MockRecipeMetrics) SetupStandardMockBehavior() {
	m.On("RecordRecipeAdded").Return().Maybe()
	m.On("RecordRecipeRejected", mock.AnythingOfType("string")).Return().Maybe()
	m.On("RecordQuickFilter", mock.AnythingOfType("int")).Return().Maybe()
	m.On("RecordRecipeDoubled").Return().Maybe()
}
