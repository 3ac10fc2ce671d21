package patentdump

// ExtractResult holds the fields located on a patent page.
// Fields that could not be found are empty.
type ExtractResult struct {
	Title             string
	PublicationNumber string
	Abstract          string
	Claims            []Claim
}

// Extractor locates patent fields in a fetched page.
type Extractor interface {
	// Extract parses the page and returns its normalized fields.
	// Missing fields are not an error; only content that cannot be parsed
	// into a document at all returns an EPARSE error.
	Extract(page *RawPage) (*ExtractResult, error)
}
