package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/patentdump"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   patentdump.Fetcher
	Extractor patentdump.Extractor
	Writer    patentdump.PatentWriter

	// Catalog is nil unless a database is configured.
	Catalog patentdump.CatalogService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"PATENTDUMP_DB" help:"SQLite catalog of saved records (disabled when empty)"`
	Verbose bool   `short:"v" help:"Log each step to stderr"`

	Fetch FetchCmd `cmd:"" default:"withargs" help:"Fetch a patent page and save it as JSON"`
	List  ListCmd  `cmd:"" help:"List saved records from the catalog"`
}

// FetchCmd is the "fetch" subcommand, run when no command is named.
type FetchCmd struct {
	URL            string        `arg:"" optional:"" help:"Google Patents URL (prompted for when omitted)"`
	Out            string        `short:"o" env:"PATENTDUMP_OUT" default:"patent_dump" help:"Output directory"`
	Timeout        time.Duration `short:"t" default:"30s" help:"Fetch timeout"`
	UserAgent      string        `name:"user-agent" default:"${user_agent}" help:"User-Agent request header"`
	AcceptLanguage string        `name:"accept-language" default:"${accept_language}" help:"Accept-Language request header"`
	Browser        bool          `help:"Render the page in headless Chrome before extracting"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	PublicationNumber string `short:"n" name:"publication-number" help:"Only show this publication number"`
	Limit             int    `default:"20" help:"Maximum number of records to show"`
	Offset            int    `help:"Number of newest records to skip"`
}
