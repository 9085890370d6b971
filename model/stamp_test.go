package model

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStamp(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4E, 0x47}
	b64 := base64.StdEncoding.EncodeToString(payload)

	tests := []struct {
		name       string
		input      string
		wantFormat string
		wantErr    bool
	}{
		{"png data uri", "data:image/png;base64," + b64, "png", false},
		{"jpeg data uri", "data:image/jpeg;base64," + b64, "jpeg", false},
		{"jpg alias", "data:image/jpg;base64," + b64, "jpeg", false},
		{"gif data uri", "data:image/gif;base64," + b64, "gif", false},
		{"svg data uri", "data:image/svg+xml;base64," + b64, "svg", false},
		{"raw base64 assumed png", b64, "png", false},
		{"empty payload", "", "", true},
		{"missing comma", "data:image/png;base64", "", true},
		{"unsupported media type", "data:application/pdf;base64," + b64, "", true},
		{"bad base64", "data:image/png;base64,$$$not-base64$$$", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, format, err := DecodeStamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, format)
			assert.Equal(t, payload, raw)
		})
	}
}

func TestEncodeStampRoundTrip(t *testing.T) {
	payload := []byte("stamp-bytes")

	encoded := EncodeStamp(payload, "jpeg")
	raw, format, err := DecodeStamp(encoded)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, payload, raw)

	// Empty format defaults to PNG.
	raw, format, err = DecodeStamp(EncodeStamp(payload, ""))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, payload, raw)
}
