package mock

import (
	"context"

	"github.com/fwojciec/patentdump"
)

var _ patentdump.PatentWriter = (*PatentWriter)(nil)

// PatentWriter is a mock implementation of patentdump.PatentWriter.
type PatentWriter struct {
	WritePatentFn func(ctx context.Context, rec *patentdump.PatentRecord) (string, error)
}

func (w *PatentWriter) WritePatent(ctx context.Context, rec *patentdump.PatentRecord) (string, error) {
	return w.WritePatentFn(ctx, rec)
}
