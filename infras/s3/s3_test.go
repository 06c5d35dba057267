package s3_test

import (
	"kmc/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		bucket   string
		key      string
		expected string
	}{
		{
			name:     "plain domain",
			domain:   "https://files.kmc.org",
			bucket:   "missionary-files",
			key:      "missionaries/12/passport/1700000000_scan.pdf",
			expected: "https://files.kmc.org/missionary-files/missionaries/12/passport/1700000000_scan.pdf",
		},
		{
			name:     "trailing slash on domain",
			domain:   "https://files.kmc.org/",
			bucket:   "kmc",
			key:      "imports/20251015.xlsx",
			expected: "https://files.kmc.org/kmc/imports/20251015.xlsx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s3.PublicURL(tt.domain, tt.bucket, tt.key))
		})
	}
}
