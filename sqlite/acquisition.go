package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/patentdump"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ patentdump.CatalogService = (*CatalogService)(nil)

// CatalogService implements patentdump.CatalogService using SQLite.
type CatalogService struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *DB) *CatalogService {
	return &CatalogService{db: db, Now: time.Now}
}

// hashRecord computes the xxHash of the record's JSON form as a hex string.
func hashRecord(rec *patentdump.PatentRecord) (string, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(b)), nil
}

// CreateAcquisition records that rec was written to path.
func (s *CatalogService) CreateAcquisition(ctx context.Context, rec *patentdump.PatentRecord, path string) (*patentdump.Acquisition, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, patentdump.Errorf(patentdump.EINVALID, "acquisition path required")
	}

	hash, err := hashRecord(rec)
	if err != nil {
		return nil, err
	}

	a := &patentdump.Acquisition{
		ID:                uuid.New().String(),
		PublicationNumber: rec.PublicationNumber,
		Title:             rec.Title,
		SourceURL:         rec.SourceURL,
		Path:              path,
		ClaimCount:        len(rec.Claims),
		AbstractChars:     utf8.RuneCountInString(rec.Abstract),
		RawHTMLBytes:      rec.RawHTMLBytes,
		ContentHash:       hash,
		FetchedAt:         s.Now().UTC().Truncate(time.Second),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO acquisitions (id, publication_number, title, source_url, path, claim_count, abstract_chars, raw_html_bytes, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.PublicationNumber, a.Title, a.SourceURL, a.Path, a.ClaimCount, a.AbstractChars,
		a.RawHTMLBytes, a.ContentHash, a.FetchedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return a, nil
}

// FindAcquisitions retrieves acquisitions matching the filter, newest first.
func (s *CatalogService) FindAcquisitions(ctx context.Context, filter patentdump.AcquisitionFilter) ([]*patentdump.Acquisition, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, publication_number, title, source_url, path, claim_count, abstract_chars, raw_html_bytes, content_hash, fetched_at
		FROM acquisitions WHERE 1=1`)

	if filter.PublicationNumber != nil {
		query.WriteString(" AND publication_number = ?")
		args = append(args, *filter.PublicationNumber)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	acquisitions := []*patentdump.Acquisition{}
	for rows.Next() {
		var a patentdump.Acquisition
		var fetchedAt string

		if err := rows.Scan(&a.ID, &a.PublicationNumber, &a.Title, &a.SourceURL, &a.Path,
			&a.ClaimCount, &a.AbstractChars, &a.RawHTMLBytes, &a.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		if a.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}

		acquisitions = append(acquisitions, &a)
	}

	return acquisitions, rows.Err()
}
