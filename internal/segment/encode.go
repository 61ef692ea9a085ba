package segment

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
)

// Document is the serialized form of a MaskSet: exactly three keys, each
// holding a standard base64 encoding (RFC 4648, padded, no line breaks)
// of a PNG with the source slice's dimensions.
type Document struct {
	WM  string `json:"wm"`
	GM  string `json:"gm"`
	CSF string `json:"csf"`
}

// EncodeMasks serializes all three masks to base64 PNG. The path is
// lossless: decoding a value reproduces the mask's NRGBA grid exactly.
// If any mask fails to encode, no document is returned.
func EncodeMasks(masks *MaskSet) (*Document, error) {
	wm, err := encodePNG(masks.WM)
	if err != nil {
		return nil, fmt.Errorf("wm mask: %w", err)
	}
	gm, err := encodePNG(masks.GM)
	if err != nil {
		return nil, fmt.Errorf("gm mask: %w", err)
	}
	csf, err := encodePNG(masks.CSF)
	if err != nil {
		return nil, fmt.Errorf("csf mask: %w", err)
	}
	return &Document{WM: wm, GM: gm, CSF: csf}, nil
}

// WriteFile marshals the document and writes it to path as one UTF-8
// JSON object. Output is byte-identical across runs on the same input.
func (d *Document) WriteFile(path string) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal mask document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write mask document: %w", err)
	}
	return nil
}

// encodePNG serializes an image to PNG bytes and base64-encodes them.
func encodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
