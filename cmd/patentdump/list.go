package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/patentdump"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if deps.Catalog == nil {
		err := patentdump.Errorf(patentdump.EINVALID, "no catalog configured; set --db or PATENTDUMP_DB")
		fmt.Fprintf(deps.Stderr, "error: %s\n", patentdump.ErrorMessage(err))
		return err
	}

	filter := patentdump.AcquisitionFilter{Limit: c.Limit, Offset: c.Offset}
	if c.PublicationNumber != "" {
		filter.PublicationNumber = &c.PublicationNumber
	}

	acquisitions, err := deps.Catalog.FindAcquisitions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", patentdump.ErrorMessage(err))
		return err
	}

	if len(acquisitions) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'patentdump <url>' to save one.")
		return nil
	}

	for _, a := range acquisitions {
		number := a.PublicationNumber
		if number == "" {
			number = "-"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %d claims  %s\n",
			a.FetchedAt.Format(time.RFC3339), number, a.ClaimCount, a.Path)
	}

	return nil
}
