package container

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

// buildArchive assembles an in-memory ZIP from entry name/content pairs.
func buildArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}
	return buf.Bytes()
}

func openArchive(t *testing.T, entries map[string]string) (*Reader, error) {
	t.Helper()
	data := buildArchive(t, entries)
	return OpenReader(bytes.NewReader(data), int64(len(data)))
}

// TestOpenValidArchive tests that a well-formed Krita archive validates
// and its entries are readable.
func TestOpenValidArchive(t *testing.T) {
	r, err := openArchive(t, map[string]string{
		"mimetype":    "application/x-krita",
		"maindoc.xml": "<DOC></DOC>",
	})
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}

	if !r.HasEntry(MainDocEntry) {
		t.Error("expected maindoc.xml to exist")
	}
	data, err := r.ReadEntry(MainDocEntry)
	if err != nil {
		t.Fatalf("ReadEntry failed: %v", err)
	}
	if string(data) != "<DOC></DOC>" {
		t.Errorf("unexpected entry contents: %q", data)
	}
}

// TestOpenMissingMimetype tests rejection of archives without a
// mimetype entry.
func TestOpenMissingMimetype(t *testing.T) {
	_, err := openArchive(t, map[string]string{
		"maindoc.xml": "<DOC/>",
	})
	if !errors.Is(err, ErrMissingMimetype) {
		t.Errorf("expected ErrMissingMimetype, got %v", err)
	}
}

// TestOpenWrongMimetype tests rejection of archives claiming a different
// document type.
func TestOpenWrongMimetype(t *testing.T) {
	_, err := openArchive(t, map[string]string{
		"mimetype":    "application/epub+zip",
		"maindoc.xml": "<DOC/>",
	})
	if !errors.Is(err, ErrWrongMimetype) {
		t.Errorf("expected ErrWrongMimetype, got %v", err)
	}
}

// TestOpenMissingMainDoc tests rejection when maindoc.xml is absent.
func TestOpenMissingMainDoc(t *testing.T) {
	_, err := openArchive(t, map[string]string{
		"mimetype": "application/x-krita",
	})
	if !errors.Is(err, ErrMissingMainDoc) {
		t.Errorf("expected ErrMissingMainDoc, got %v", err)
	}
}

// TestReadEntryNotFound tests the typed error for absent entries.
func TestReadEntryNotFound(t *testing.T) {
	r, err := openArchive(t, map[string]string{
		"mimetype":    "application/x-krita",
		"maindoc.xml": "<DOC/>",
	})
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}

	if _, err := r.ReadEntry("no/such/entry"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
	if r.HasEntry("no/such/entry") {
		t.Error("HasEntry should be false for absent entries")
	}
}
