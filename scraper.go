package patentdump

import "context"

// Scraper acquires one patent record by fetching a page and extracting its
// fields. It performs no writes; persistence is left to the caller.
type Scraper struct {
	Fetcher   Fetcher
	Extractor Extractor
}

// Scrape fetches url and assembles a PatentRecord from it.
// Fetch and parse errors are returned unchanged.
func (s *Scraper) Scrape(ctx context.Context, url string) (*PatentRecord, error) {
	page, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	result, err := s.Extractor.Extract(page)
	if err != nil {
		return nil, err
	}

	claims := result.Claims
	if claims == nil {
		claims = []Claim{}
	}

	return &PatentRecord{
		Source:            SourceGooglePatents,
		SourceURL:         url,
		PublicationNumber: result.PublicationNumber,
		Title:             result.Title,
		Abstract:          result.Abstract,
		Claims:            claims,
		RawHTMLBytes:      len(page.Body),
	}, nil
}
