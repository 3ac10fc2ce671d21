// Package fs provides file-based storage for acquired patents.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fwojciec/patentdump"
)

// DefaultDir is the directory acquired documents are written to.
const DefaultDir = "patent_dump"

// fallbackSlug names the file when a record has no publication number.
const fallbackSlug = "patent"

var unsafeSlugRe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Slug converts a publication number into a file name stem.
// Each run of characters outside letters, digits, underscore and hyphen
// becomes a single underscore.
// Example: "US 9,876,543 B2" → US_9_876_543_B2
func Slug(publicationNumber string) string {
	if publicationNumber == "" {
		return fallbackSlug
	}
	return unsafeSlugRe.ReplaceAllString(publicationNumber, "_")
}

// FormatPatent renders a record as indented JSON terminated by a newline.
// Claims are always rendered as an array.
func FormatPatent(rec *patentdump.PatentRecord) ([]byte, error) {
	out := *rec
	if out.Claims == nil {
		out.Claims = []patentdump.Claim{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Ensure Writer implements patentdump.PatentWriter at compile time.
var _ patentdump.PatentWriter = (*Writer)(nil)

// Writer writes patent records as JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Path returns the file path a record is written to.
func (w *Writer) Path(rec *patentdump.PatentRecord) string {
	return filepath.Join(w.baseDir, Slug(rec.PublicationNumber)+".json")
}

// WritePatent writes the record to <baseDir>/<slug>.json, replacing any
// earlier file for the same publication number. The file is written to a
// temporary name first and renamed into place.
func (w *Writer) WritePatent(ctx context.Context, rec *patentdump.PatentRecord) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	content, err := FormatPatent(rec)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	path := w.Path(rec)
	tmp, err := os.CreateTemp(w.baseDir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", err
	}
	// Remove the temp file on failure; after a successful rename it no
	// longer exists and the error is ignored.
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}

	return path, nil
}
