package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gradlemodel/internal/core/domain"
)

func TestNameSourceRoots(t *testing.T) {
	tests := []struct {
		name  string
		dirs  []string
		names []string
	}{
		{
			name:  "single directory",
			dirs:  []string{"/p/src/main/java"},
			names: []string{"java"},
		},
		{
			name:  "distinct names",
			dirs:  []string{"/p/src/main/java", "/p/src/main/resources"},
			names: []string{"java", "resources"},
		},
		{
			name:  "clash resolved by parent",
			dirs:  []string{"/p/src/main/java", "/p/src/test/java"},
			names: []string{"main/java", "test/java"},
		},
		{
			name:  "clash needs two levels",
			dirs:  []string{"/p/a/src/java", "/p/b/src/java", "/p/c/res"},
			names: []string{"a/src/java", "b/src/java", "res"},
		},
		{
			name:  "empty input",
			dirs:  nil,
			names: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := domain.NameSourceRoots(tt.dirs)
			got := make([]string, 0, len(roots))
			for i, r := range roots {
				assert.Equal(t, tt.dirs[i], r.Dir)
				got = append(got, r.Name)
			}
			assert.Equal(t, tt.names, got)
		})
	}
}
