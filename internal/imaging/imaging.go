// Package imaging carries uploaded and generated images between the HTTP
// layer and the AI providers.
package imaging

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"

	"promptstudio/internal/domain"
)

const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
	MIMEWebP = "image/webp"
)

// Image is an in-memory image with its media type.
type Image struct {
	Name string
	MIME string
	Data []byte
}

// Base64 returns the standard base64 encoding of the image bytes.
func (i Image) Base64() string {
	return base64.StdEncoding.EncodeToString(i.Data)
}

// DataURL renders the image as a data: URL suitable for an <img> src.
func (i Image) DataURL() string {
	return "data:" + i.MIME + ";base64," + i.Base64()
}

func (i Image) MarshalJSON() ([]byte, error) {
	if len(i.Data) == 0 && i.MIME == "" {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		Name    string `json:"name,omitempty"`
		MIME    string `json:"mime"`
		Size    int    `json:"size"`
		DataURL string `json:"dataUrl"`
	}{i.Name, i.MIME, len(i.Data), i.DataURL()})
}

// ValidateUpload accepts only JPEG and PNG uploads.
func ValidateUpload(name, mimeType string) error {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case MIMEJPEG, MIMEPNG:
		return nil
	}
	return fmt.Errorf("%w: '%s' is not a valid image type.", domain.ErrInvalidImage, name)
}

// DetectMIME prefers the declared Content-Type and falls back to sniffing
// the payload when the header is missing or generic.
func DetectMIME(header string, data []byte) string {
	if header != "" {
		if mt, _, err := mime.ParseMediaType(header); err == nil && mt != "application/octet-stream" {
			return strings.ToLower(mt)
		}
	}
	mt, _, _ := mime.ParseMediaType(http.DetectContentType(data))
	return mt
}

// FromBase64 decodes a raw base64 payload or a data: URL.
func FromBase64(name, mimeType, payload string) (Image, error) {
	payload = strings.TrimSpace(payload)
	if rest, ok := strings.CutPrefix(payload, "data:"); ok {
		header, data, found := strings.Cut(rest, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return Image{}, fmt.Errorf("%w: malformed data url", domain.ErrInvalidImage)
		}
		mimeType = strings.TrimSuffix(header, ";base64")
		payload = data
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("%w: decode base64: %v", domain.ErrInvalidImage, err)
	}
	if mimeType == "" {
		mimeType = DetectMIME("", raw)
	}
	return Image{Name: name, MIME: mimeType, Data: raw}, nil
}

// Extension returns the file extension for a supported media type.
func Extension(mimeType string) string {
	switch mimeType {
	case MIMEJPEG:
		return ".jpg"
	case MIMEWebP:
		return ".webp"
	default:
		return ".png"
	}
}

// Rename swaps the extension of name for the one matching mimeType.
func Rename(name, mimeType string) string {
	if name == "" {
		return ""
	}
	return strings.TrimSuffix(name, path.Ext(name)) + Extension(mimeType)
}
