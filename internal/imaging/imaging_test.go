package imaging

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"promptstudio/internal/domain"
)

func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestValidateUpload(t *testing.T) {
	for _, mt := range []string{"image/jpeg", "image/png", " IMAGE/PNG "} {
		if err := ValidateUpload("a", mt); err != nil {
			t.Fatalf("ValidateUpload(%q) returned error: %v", mt, err)
		}
	}
	err := ValidateUpload("notes.gif", "image/gif")
	if !errors.Is(err, domain.ErrInvalidImage) {
		t.Fatalf("ValidateUpload(gif) error = %v, want ErrInvalidImage", err)
	}
	if !strings.Contains(err.Error(), "'notes.gif' is not a valid image type.") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestDetectMIME(t *testing.T) {
	data := samplePNG(t)
	tests := []struct {
		header string
		want   string
	}{
		{"image/jpeg", "image/jpeg"},
		{"image/png; charset=binary", "image/png"},
		{"application/octet-stream", "image/png"},
		{"", "image/png"},
	}
	for _, tt := range tests {
		if got := DetectMIME(tt.header, data); got != tt.want {
			t.Fatalf("DetectMIME(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestDataURLRoundTrip(t *testing.T) {
	img := Image{Name: "a.png", MIME: MIMEPNG, Data: samplePNG(t)}
	url := img.DataURL()
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("DataURL() = %q", url[:30])
	}
	back, err := FromBase64("a.png", "", url)
	if err != nil {
		t.Fatalf("FromBase64 returned error: %v", err)
	}
	if back.MIME != MIMEPNG || !bytes.Equal(back.Data, img.Data) {
		t.Fatalf("FromBase64 = %+v", back)
	}

	raw, err := FromBase64("b", "", img.Base64())
	if err != nil || raw.MIME != MIMEPNG {
		t.Fatalf("FromBase64(raw) = %+v, %v", raw, err)
	}
	if _, err := FromBase64("c", "", "data:image/png,abc"); !errors.Is(err, domain.ErrInvalidImage) {
		t.Fatalf("FromBase64(non-base64 data url) error = %v", err)
	}
}

func TestMarshalJSON(t *testing.T) {
	out, err := json.Marshal(Image{Name: "x.png", MIME: MIMEPNG, Data: []byte{1, 2, 3}})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	want := `{"name":"x.png","mime":"image/png","size":3,"dataUrl":"data:image/png;base64,AQID"}`
	if string(out) != want {
		t.Fatalf("Marshal() = %s, want %s", out, want)
	}
	if out, _ := json.Marshal(Image{}); string(out) != "null" {
		t.Fatalf("Marshal(zero) = %s, want null", out)
	}
}

func TestRename(t *testing.T) {
	if got := Rename("image_1.png", MIMEWebP); got != "image_1.webp" {
		t.Fatalf("Rename() = %q, want %q", got, "image_1.webp")
	}
	if got := Rename("", MIMEWebP); got != "" {
		t.Fatalf("Rename(empty) = %q", got)
	}
}
