package krago

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/krago/internal/lzf"
	"github.com/tsawler/krago/reader"
)

// writeTestKRA writes a minimal two-layer document to disk and returns
// its path.
func writeTestKRA(t *testing.T) string {
	t.Helper()

	raw := make([]byte, 64*64*4)
	for i := 3; i < len(raw); i += 4 {
		raw[i] = 0xFF
	}
	compressed := lzf.Compress(raw)

	var payload bytes.Buffer
	fmt.Fprintf(&payload, "VERSION 2\nTILEWIDTH 64\nTILEHEIGHT 64\nPIXELSIZE 4\nDATA 1\n")
	fmt.Fprintf(&payload, "0,0,0,%d\n", len(compressed))
	payload.Write(compressed)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := map[string][]byte{
		"mimetype": []byte("application/x-krita"),
		"maindoc.xml": []byte(`<DOC>
 <IMAGE name="scene" width="64" height="64" colorspacename="RGBA">
  <layers>
   <layer nodetype="paintlayer" name="bg" uuid="{bg}" filename="layer2"/>
   <layer nodetype="grouplayer" name="g" uuid="{g}"/>
  </layers>
 </IMAGE>
</DOC>`),
		"scene/layers/layer2": payload.Bytes(),
	}
	for name, data := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}

	path := filepath.Join(t.TempDir(), "scene.kra")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestOpenNonexistent(t *testing.T) {
	// Test with non-existent file
	_, _, err := Open("nonexistent.kra").Document()
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

// TestDocumentFluent tests the basic fluent chain ending in Document.
func TestDocumentFluent(t *testing.T) {
	doc, warnings, err := Open(writeTestKRA(t)).Document()
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %s", FormatWarnings(warnings))
	}

	if doc.Name != "scene" {
		t.Errorf("document name = %q, want scene", doc.Name)
	}
	if doc.LayerCount() != 2 {
		t.Errorf("layer count = %d, want 2", doc.LayerCount())
	}
	if doc.FindLayer("{bg}") == nil {
		t.Error("expected to find layer {bg}")
	}
}

// TestImagesCropped tests bulk extraction with the crop option.
func TestImagesCropped(t *testing.T) {
	images, _, err := Open(writeTestKRA(t)).Cropped().Workers(2).Images()
	if err != nil {
		t.Fatalf("failed to extract images: %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("expected 1 paint layer image, got %d", len(images))
	}
	img := images[0].Image
	if img.Bounds.Width() != 64 || img.Bounds.Height() != 64 {
		t.Errorf("unexpected bounds: %+v", img.Bounds)
	}
}

// TestLayerImage tests single-layer extraction by UUID, including the
// unknown-UUID error.
func TestLayerImage(t *testing.T) {
	path := writeTestKRA(t)

	img, _, err := Open(path).LayerImage("{bg}")
	if err != nil {
		t.Fatalf("failed to extract layer: %v", err)
	}
	if len(img.Pix) != 64*64*4 {
		t.Errorf("pixel buffer length = %d, want %d", len(img.Pix), 64*64*4)
	}

	if _, _, err := Open(path).LayerImage("{missing}"); err == nil {
		t.Error("expected error for unknown uuid")
	}
}

// TestFromReader tests chaining off an externally managed reader.
func TestFromReader(t *testing.T) {
	r, err := reader.Open(writeTestKRA(t))
	if err != nil {
		t.Fatalf("reader.Open failed: %v", err)
	}
	defer r.Close()

	doc, _, err := FromReader(r).Document()
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	if doc.Name != "scene" {
		t.Errorf("document name = %q, want scene", doc.Name)
	}
}

// TestChainImmutability tests that configuration methods return new
// instances and leave the original chain untouched.
func TestChainImmutability(t *testing.T) {
	base := Open("whatever.kra")
	cropped := base.Cropped()

	if base.options.crop {
		t.Error("Cropped mutated the original extractor")
	}
	if !cropped.options.crop {
		t.Error("Cropped did not set the option on the new extractor")
	}
}

// TestFormatDetection tests that the extractor records the detected
// container format.
func TestFormatDetection(t *testing.T) {
	if got := Open("painting.krz").Format(); got.String() != "KRZ" {
		t.Errorf("Format() = %v, want KRZ", got)
	}
}
