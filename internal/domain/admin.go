package domain

import "context"

type AdminUsecase interface {
	ListCarers(ctx context.Context, status string, page, pageSize int) ([]Carer, int64, error)
	ApproveCarer(ctx context.Context, carerID string) error
	RejectCarer(ctx context.Context, carerID string) error
	// ExportMatchReport builds an XLSX report of all matches and returns the
	// file contents.
	ExportMatchReport(ctx context.Context) ([]byte, error)
}
