package model

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeStamp unpacks a data-URI stamp payload into raw image bytes and a
// format hint ("png", "jpeg", ...). Raw base64 without a data: prefix is
// accepted and assumed to be PNG. Callers are expected to skip the stamp on
// error and keep rendering; a bad stamp never aborts a document.
func DecodeStamp(dataURI string) ([]byte, string, error) {
	if dataURI == "" {
		return nil, "", fmt.Errorf("empty stamp payload")
	}

	format := "png"
	payload := dataURI

	if strings.HasPrefix(dataURI, "data:") {
		meta, rest, ok := strings.Cut(strings.TrimPrefix(dataURI, "data:"), ",")
		if !ok {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		payload = rest

		mime, _, _ := strings.Cut(meta, ";")
		switch mime {
		case "image/png", "":
			format = "png"
		case "image/jpeg", "image/jpg":
			format = "jpeg"
		case "image/gif":
			format = "gif"
		case "image/svg+xml":
			// Raster surfaces rasterize SVG stamps; the vector surface
			// skips them.
			format = "svg"
		default:
			return nil, "", fmt.Errorf("unsupported stamp media type %q", mime)
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decoding stamp payload: %w", err)
	}

	return raw, format, nil
}

// EncodeStamp packs raw image bytes into the data-URI form the draft
// payload persists.
func EncodeStamp(raw []byte, format string) string {
	if format == "" {
		format = "png"
	}
	return "data:image/" + format + ";base64," + base64.StdEncoding.EncodeToString(raw)
}
