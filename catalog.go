package patentdump

import (
	"context"
	"time"
)

// Acquisition is a catalog entry describing one saved patent record.
type Acquisition struct {
	ID                string    `json:"id"`
	PublicationNumber string    `json:"publicationNumber"`
	Title             string    `json:"title"`
	SourceURL         string    `json:"sourceUrl"`
	Path              string    `json:"path"`
	ClaimCount        int       `json:"claimCount"`
	AbstractChars     int       `json:"abstractChars"`
	RawHTMLBytes      int       `json:"rawHtmlBytes"`
	ContentHash       string    `json:"contentHash"`
	FetchedAt         time.Time `json:"fetchedAt"`
}

// CatalogService represents a service for recording saved acquisitions.
type CatalogService interface {
	// CreateAcquisition records that rec was written to path.
	CreateAcquisition(ctx context.Context, rec *PatentRecord, path string) (*Acquisition, error)

	// FindAcquisitions retrieves acquisitions matching the filter, newest first.
	FindAcquisitions(ctx context.Context, filter AcquisitionFilter) ([]*Acquisition, error)
}

// AcquisitionFilter represents a filter for FindAcquisitions.
type AcquisitionFilter struct {
	PublicationNumber *string `json:"publicationNumber"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
