package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockRecipeMetricsRejected(t *testing.T) {
	m := NewMockRecipeMetrics()
	m.SetupStandardMockBehavior()

	m.RecordRecipeRejected("validation")
	m.RecordRecipeAdded()
	m.RecordRecipeRejected("validation")
	m.RecordRecipeRejected("shape")

	assert.Equal(t, 2, m.Rejected("validation"))
	assert.Equal(t, 1, m.Rejected("shape"))
	assert.Zero(t, m.Rejected("missing_field"))
	m.AssertNumberOfCalls(t, "RecordRecipeRejected", 3)
}
