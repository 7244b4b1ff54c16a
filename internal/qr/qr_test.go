package qr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestEncodePNG(t *testing.T) {
	png, err := EncodePNG("PP-abc-112233")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "payload must be a PNG image")
}

func TestEncodePNG_EmptyCode(t *testing.T) {
	_, err := EncodePNG("")

	assert.Error(t, err)
}

func TestDataURL(t *testing.T) {
	url := DataURL([]byte{0x01, 0x02})

	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}
