package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"waste-management-api-server/internal/apperr"
	"waste-management-api-server/internal/dto"
)

// Uploader stores a report object and returns where it can be fetched.
type Uploader interface {
	UploadFile(ctx context.Context, body io.Reader, objectKey, contentType string) (string, error)
}

// ReportService exports per-bin collection counts as JSON objects.
type ReportService struct {
	collections *CollectionService
	uploader    Uploader
	logger      *zap.Logger
	now         func() time.Time
	loc         *time.Location
}

func NewReportService(deps Deps, collections *CollectionService, uploader Uploader) *ReportService {
	d := deps.withDefaults()
	return &ReportService{
		collections: collections,
		uploader:    uploader,
		logger:      d.Logger.Named("reports"),
		now:         d.Now,
		loc:         d.Location,
	}
}

// ExportMonthly uploads the monthly counts and total of binID to
// reports/bins/<binId>/<uuid>.json.
func (s *ReportService) ExportMonthly(ctx context.Context, binID string) (dto.ReportView, error) {
	counts, err := s.collections.CountByMonthAndTotal(ctx, binID)
	if err != nil {
		return dto.ReportView{}, err
	}

	report := dto.ReportView{
		BinID:       binID,
		GeneratedAt: s.now().In(s.loc),
		Counts:      counts,
	}
	body, err := json.Marshal(report)
	if err != nil {
		return dto.ReportView{}, apperr.Internal(err, "failed to encode report")
	}

	key := fmt.Sprintf("reports/bins/%s/%s.json", binID, uuid.NewString())
	url, err := s.uploader.UploadFile(ctx, bytes.NewReader(body), key, "application/json")
	if err != nil {
		return dto.ReportView{}, apperr.Internal(err, "failed to upload report")
	}

	report.URL = url
	s.logger.Info("Report exported", zap.String("binId", binID), zap.String("url", url))
	return report, nil
}
