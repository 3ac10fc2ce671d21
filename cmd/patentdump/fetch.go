package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/patentdump"
)

// urlPrompt is shown when no URL was given on the command line.
const urlPrompt = "Google Patents URL: "

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	url := strings.TrimSpace(c.URL)
	if url == "" {
		var err error
		if url, err = promptURL(deps.Stdin, deps.Stdout); err != nil {
			fmt.Fprintf(deps.Stderr, "error: reading URL: %s\n", err)
			return err
		}
	}
	if url == "" {
		err := patentdump.Errorf(patentdump.EINVALID, "URL required")
		fmt.Fprintf(deps.Stderr, "error: %s\n", patentdump.ErrorMessage(err))
		return err
	}

	scraper := &patentdump.Scraper{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
	}

	rec, err := scraper.Scrape(deps.Ctx, url)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", patentdump.ErrorMessage(err))
		return err
	}

	path, err := deps.Writer.WritePatent(deps.Ctx, rec)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: writing record: %s\n", err)
		return err
	}

	if deps.Catalog != nil {
		if _, err := deps.Catalog.CreateAcquisition(deps.Ctx, rec, path); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: catalog not updated: %s\n", err)
		}
	}

	fmt.Fprintf(deps.Stdout, "Saved: %s\n", path)
	fmt.Fprintf(deps.Stdout, "Title: %s\n", rec.Title)
	fmt.Fprintf(deps.Stdout, "Abstract chars: %d\n", utf8.RuneCountInString(rec.Abstract))
	fmt.Fprintf(deps.Stdout, "Claims extracted: %d\n", len(rec.Claims))

	return nil
}

// promptURL asks for a URL on w and reads one line from r.
func promptURL(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, urlPrompt)
	if r == nil {
		return "", nil
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
