package version

import (
	"testing"

	"github.com/rxtech-lab/argo-chart/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConfigCompatibility(t *testing.T) {
	tests := []struct {
		name          string
		binaryVersion string
		configVersion string
		expectError   bool
		errorContains string
	}{
		{
			name:          "exact match",
			binaryVersion: "1.2.0",
			configVersion: "1.2.0",
		},
		{
			name:          "binary patch higher",
			binaryVersion: "1.2.1",
			configVersion: "1.2.0",
		},
		{
			name:          "binary minor higher",
			binaryVersion: "1.5.3",
			configVersion: "1.2.0",
		},
		{
			name:          "v prefix",
			binaryVersion: "v1.2.0",
			configVersion: "v1.0.0",
		},
		{
			name:          "empty config version",
			binaryVersion: "1.2.0",
			configVersion: "",
		},
		{
			name:          "development binary",
			binaryVersion: "main",
			configVersion: "3.0.0",
		},
		{
			name:          "config minor higher",
			binaryVersion: "1.1.0",
			configVersion: "1.2.0",
			expectError:   true,
			errorContains: "or newer",
		},
		{
			name:          "config patch higher",
			binaryVersion: "1.2.0",
			configVersion: "1.2.5",
			expectError:   true,
			errorContains: "or newer",
		},
		{
			name:          "major mismatch",
			binaryVersion: "2.0.0",
			configVersion: "1.2.0",
			expectError:   true,
			errorContains: "major version mismatch",
		},
		{
			name:          "invalid binary version",
			binaryVersion: "not-a-version",
			configVersion: "1.0.0",
			expectError:   true,
			errorContains: "invalid binary version",
		},
		{
			name:          "invalid config version",
			binaryVersion: "1.0.0",
			configVersion: "x.y",
			expectError:   true,
			errorContains: "invalid config version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckConfigCompatibility(tt.binaryVersion, tt.configVersion)
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
			assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidVersion))
		})
	}
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, Version, GetVersion())
}
