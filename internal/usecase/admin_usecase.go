package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-care-backend/internal/domain"
	"go-care-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

type adminUsecase struct {
	carerRepo domain.CarerRepository
	matchRepo domain.MatchRepository
}

func NewAdminUsecase(carerRepo domain.CarerRepository, matchRepo domain.MatchRepository) domain.AdminUsecase {
	return &adminUsecase{
		carerRepo: carerRepo,
		matchRepo: matchRepo,
	}
}

func requireAdmin(ctx context.Context) error {
	role, ok := ctxUserRole(ctx)
	if !ok || role != domain.RoleAdmin {
		return apperror.Forbidden("Admin access required")
	}
	return nil
}

func (u *adminUsecase) ListCarers(ctx context.Context, status string, page, pageSize int) ([]domain.Carer, int64, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	if status == "" {
		status = domain.CarerStatusPending
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	return u.carerRepo.FetchByStatus(ctx, status, pageSize, offset)
}

func (u *adminUsecase) ApproveCarer(ctx context.Context, carerID string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return u.carerRepo.UpdateApproval(ctx, carerID, domain.CarerStatusApproved)
}

func (u *adminUsecase) RejectCarer(ctx context.Context, carerID string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	return u.carerRepo.UpdateApproval(ctx, carerID, domain.CarerStatusRejected)
}

// ExportMatchReport builds an XLSX sheet with every match on the platform for
// offline review.
func (u *adminUsecase) ExportMatchReport(ctx context.Context) ([]byte, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	const exportLimit = 10000
	matches, _, err := u.matchRepo.FetchAll(ctx, exportLimit, 0)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	f := excelize.NewFile()
	sheet := "Matches"
	f.SetSheetName("Sheet1", sheet)

	columns := []string{"Match ID", "Care Request", "Carer", "Score", "Status", "Specializations", "Experience (yrs)", "Avg Rating", "Created"}
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#2A7D5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(sheet, "A1", endCell, headerStyle)

	for rowIdx, m := range matches {
		avgRating := ""
		if m.AvgRating != nil {
			avgRating = fmt.Sprintf("%.1f", *m.AvgRating)
		}
		values := []interface{}{
			m.ID,
			m.CareRequestID,
			m.CarerName,
			m.Score,
			m.Status,
			strings.Join(m.Specializations, ", "),
			m.YearsExperience,
			avgRating,
			m.CreatedAt.Format("2006-01-02 15:04"),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	for i := range columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, colName, colName, 22)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return buf.Bytes(), nil
}
