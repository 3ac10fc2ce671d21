package main_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/patentdump"
	main "github.com/fwojciec/patentdump/cmd/patentdump"
	"github.com/fwojciec/patentdump/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*patentdump.RawPage, error) {
				return &patentdump.RawPage{URL: url, Body: []byte("<html></html>")}, nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(_ *patentdump.RawPage) (*patentdump.ExtractResult, error) {
				return &patentdump.ExtractResult{
					Title:             "Widgets",
					PublicationNumber: "US1",
					Abstract:          "Un procédé.",
					Claims:            []patentdump.Claim{{ClaimNumber: 1, Text: "A widget."}},
				}, nil
			},
		},
		Writer: &mock.PatentWriter{
			WritePatentFn: func(_ context.Context, rec *patentdump.PatentRecord) (string, error) {
				return "patent_dump/" + rec.PublicationNumber + ".json", nil
			},
		},
	}
}

func TestFetchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints summary after saving", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := fetchDeps(stdout, stderr)

		err := (&main.FetchCmd{URL: "https://patents.google.com/patent/US1/en"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Saved: patent_dump/US1.json\nTitle: Widgets\nAbstract chars: 11\nClaims extracted: 1\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("passes URL verbatim into record", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := fetchDeps(stdout, &bytes.Buffer{})
		var written *patentdump.PatentRecord
		deps.Writer = &mock.PatentWriter{
			WritePatentFn: func(_ context.Context, rec *patentdump.PatentRecord) (string, error) {
				written = rec
				return "x.json", nil
			},
		}

		err := (&main.FetchCmd{URL: "https://patents.google.com/patent/US1/en?oq=widget"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, written)
		assert.Equal(t, "https://patents.google.com/patent/US1/en?oq=widget", written.SourceURL)
		assert.Equal(t, len("<html></html>"), written.RawHTMLBytes)
	})

	t.Run("reads URL from stdin when not given", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := fetchDeps(stdout, &bytes.Buffer{})
		deps.Stdin = strings.NewReader("https://patents.google.com/patent/US1/en\n")
		var fetched string
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*patentdump.RawPage, error) {
				fetched = url
				return &patentdump.RawPage{URL: url}, nil
			},
		}

		err := (&main.FetchCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://patents.google.com/patent/US1/en", fetched)
		assert.True(t, strings.HasPrefix(stdout.String(), "Google Patents URL: "))
	})

	t.Run("rejects empty URL", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := fetchDeps(&bytes.Buffer{}, stderr)
		deps.Stdin = strings.NewReader("   \n")

		err := (&main.FetchCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, patentdump.EINVALID, patentdump.ErrorCode(err))
		assert.Contains(t, stderr.String(), "URL required")
	})

	t.Run("does not write when fetch fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := fetchDeps(stdout, stderr)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*patentdump.RawPage, error) {
				return nil, patentdump.Errorf(patentdump.EFETCH, "HTTP 503 for %s", url)
			},
		}
		deps.Writer = &mock.PatentWriter{
			WritePatentFn: func(_ context.Context, _ *patentdump.PatentRecord) (string, error) {
				t.Fatal("writer must not be called")
				return "", nil
			},
		}

		err := (&main.FetchCmd{URL: "https://patents.google.com/patent/US1/en"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, patentdump.EFETCH, patentdump.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: HTTP 503")
		assert.Empty(t, stdout.String())
	})

	t.Run("returns write error", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := fetchDeps(stdout, stderr)
		deps.Writer = &mock.PatentWriter{
			WritePatentFn: func(_ context.Context, _ *patentdump.PatentRecord) (string, error) {
				return "", errors.New("permission denied")
			},
		}

		err := (&main.FetchCmd{URL: "https://patents.google.com/patent/US1/en"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "permission denied")
		assert.Empty(t, stdout.String())
	})

	t.Run("records acquisition when catalog is configured", func(t *testing.T) {
		t.Parallel()

		deps := fetchDeps(&bytes.Buffer{}, &bytes.Buffer{})
		var gotPath string
		deps.Catalog = &mock.CatalogService{
			CreateAcquisitionFn: func(_ context.Context, _ *patentdump.PatentRecord, path string) (*patentdump.Acquisition, error) {
				gotPath = path
				return &patentdump.Acquisition{}, nil
			},
		}

		err := (&main.FetchCmd{URL: "https://patents.google.com/patent/US1/en"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "patent_dump/US1.json", gotPath)
	})

	t.Run("catalog failure is only a warning", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := fetchDeps(stdout, stderr)
		deps.Catalog = &mock.CatalogService{
			CreateAcquisitionFn: func(_ context.Context, _ *patentdump.PatentRecord, _ string) (*patentdump.Acquisition, error) {
				return nil, errors.New("database is locked")
			},
		}

		err := (&main.FetchCmd{URL: "https://patents.google.com/patent/US1/en"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "warning: catalog not updated: database is locked")
		assert.Contains(t, stdout.String(), "Saved: patent_dump/US1.json")
	})
}
