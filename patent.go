package patentdump

import "context"

// SourceGooglePatents identifies records acquired from Google Patents pages.
const SourceGooglePatents = "google_patents"

// Claim is a single numbered claim of a patent.
type Claim struct {
	ClaimNumber int    `json:"claim_number"`
	Text        string `json:"text"`
}

// PatentRecord is the normalized result of one acquisition.
// Claims keep first-seen page order, which is not necessarily numeric order.
type PatentRecord struct {
	Source            string  `json:"source"`
	SourceURL         string  `json:"source_url"`
	PublicationNumber string  `json:"publication_number"`
	Title             string  `json:"title"`
	Abstract          string  `json:"abstract"`
	Claims            []Claim `json:"claims"`
	RawHTMLBytes      int     `json:"raw_html_bytes"`
}

// Validate returns an error if the record contains invalid fields.
func (r *PatentRecord) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "patent source URL required")
	}
	if r.RawHTMLBytes < 0 {
		return Errorf(EINVALID, "raw HTML byte count must not be negative")
	}
	seen := make(map[int]struct{}, len(r.Claims))
	for _, c := range r.Claims {
		if _, ok := seen[c.ClaimNumber]; ok {
			return Errorf(EINVALID, "duplicate claim number %d", c.ClaimNumber)
		}
		seen[c.ClaimNumber] = struct{}{}
	}
	return nil
}

// PatentWriter persists patent records.
type PatentWriter interface {
	// WritePatent stores the record and returns the location it was written to.
	WritePatent(ctx context.Context, rec *PatentRecord) (string, error)
}
