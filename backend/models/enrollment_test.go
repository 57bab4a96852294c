package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress map[string]bool
		percent  int
		complete bool
	}{
		{"nil map", nil, 0, false},
		{"empty map", map[string]bool{}, 0, false},
		{"none done", map[string]bool{"1": false, "2": false}, 0, false},
		{"one of four", map[string]bool{"1": true, "2": false, "3": false, "4": false}, 25, false},
		{"half done", map[string]bool{"1": true, "2": false}, 50, false},
		{"one of three rounds down", map[string]bool{"1": true, "2": false, "3": false}, 33, false},
		{"two of three rounds up", map[string]bool{"1": true, "2": true, "3": false}, 67, false},
		{"one of eight rounds half up", map[string]bool{"1": true, "2": false, "3": false, "4": false, "5": false, "6": false, "7": false, "8": false}, 13, false},
		{"all done", map[string]bool{"1": true, "2": true, "3": true, "4": true}, 100, true},
		{"single lesson done", map[string]bool{"1": true}, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, complete := ComputeProgress(tt.progress)
			assert.Equal(t, tt.percent, percent)
			assert.Equal(t, tt.complete, complete)
		})
	}
}
