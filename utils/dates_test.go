package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain date", raw: "2026-10-26", want: "2026-10-26"},
		{name: "surrounding spaces", raw: " 2026-10-26 ", want: "2026-10-26"},
		{name: "rfc3339 keeps wall-clock date", raw: "2026-10-26T23:30:00-05:00", want: "2026-10-26"},
		{name: "rfc3339 utc", raw: "2026-10-26T00:00:00Z", want: "2026-10-26"},
		{name: "empty", raw: "", wantErr: true},
		{name: "day first", raw: "26/10/2026", wantErr: true},
		{name: "impossible date", raw: "2026-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatDate(got))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-01-05", FormatDate(time.Date(2026, 1, 5, 13, 45, 0, 0, time.UTC)))
}
