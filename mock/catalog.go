package mock

import (
	"context"

	"github.com/fwojciec/patentdump"
)

var _ patentdump.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of patentdump.CatalogService.
type CatalogService struct {
	CreateAcquisitionFn func(ctx context.Context, rec *patentdump.PatentRecord, path string) (*patentdump.Acquisition, error)
	FindAcquisitionsFn  func(ctx context.Context, filter patentdump.AcquisitionFilter) ([]*patentdump.Acquisition, error)
}

func (s *CatalogService) CreateAcquisition(ctx context.Context, rec *patentdump.PatentRecord, path string) (*patentdump.Acquisition, error) {
	return s.CreateAcquisitionFn(ctx, rec, path)
}

func (s *CatalogService) FindAcquisitions(ctx context.Context, filter patentdump.AcquisitionFilter) ([]*patentdump.Acquisition, error) {
	return s.FindAcquisitionsFn(ctx, filter)
}
