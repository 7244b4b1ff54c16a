// Package qr renders ticket codes as scannable PNG payloads.
package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256

func EncodePNG(code string) ([]byte, error) {
	png, err := qrcode.Encode(code, qrcode.Medium, imageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

// DataURL wraps a PNG payload in the data-URL form embedded in JSON
// ticket responses.
func DataURL(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
