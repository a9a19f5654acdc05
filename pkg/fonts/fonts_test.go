package fonts

import (
	"bytes"
	"encoding/base64"
	"testing"

	"golang.org/x/image/font"
)

func TestRegular(t *testing.T) {
	f, err := Regular()
	if err != nil {
		t.Fatalf("Regular() error = %v", err)
	}
	again, _ := Regular()
	if f != again {
		t.Error("Regular() should parse the font once")
	}
}

func TestFace(t *testing.T) {
	face, err := Face(DefaultSize)
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	defer face.Close()

	m := face.Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("unexpected metrics %+v", m)
	}
	if w := font.MeasureString(face, "1,000"); w <= 0 {
		t.Errorf("MeasureString() = %v, want positive", w)
	}

	big, _ := Face(2 * DefaultSize)
	defer big.Close()
	if font.MeasureString(big, "axis") <= font.MeasureString(face, "axis") {
		t.Error("larger face should measure wider text")
	}
}

func TestRegularTTFBase64(t *testing.T) {
	got, err := base64.StdEncoding.DecodeString(RegularTTFBase64())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, RegularTTF()) {
		t.Error("base64 data does not round trip to the TTF bytes")
	}
}
