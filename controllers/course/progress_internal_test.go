package controllers

import (
	courseModels "egrow/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		completed, total int
		wantPct          int
		wantStatus       string
	}{
		{0, 8, 0, courseModels.StatusNotStarted},
		{1, 8, 13, courseModels.StatusInProgress},
		{4, 8, 50, courseModels.StatusInProgress},
		{7, 8, 88, courseModels.StatusInProgress},
		{8, 8, 100, courseModels.StatusCompleted},
		{5, 18, 28, courseModels.StatusInProgress},
		{0, 0, 0, courseModels.StatusNotStarted},
	}

	for _, tt := range tests {
		pct, status := computeProgress(tt.completed, tt.total)
		assert.Equal(t, tt.wantPct, pct, "completed=%d total=%d", tt.completed, tt.total)
		assert.Equal(t, tt.wantStatus, status, "completed=%d total=%d", tt.completed, tt.total)
	}
}
