package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/yms2/bizinfo-backend/internal/app/service"
	"github.com/yms2/bizinfo-backend/pkg/logger"
)

// ReportScheduler 일일 사업장 정보 리포트 스케줄러
// 전일 신규 등록분을 xlsx로 만들어 업로드한다.
type ReportScheduler struct {
	cron          *cron.Cron
	exportService service.ExportService
	spec          string
}

// NewReportScheduler 리포트 스케줄러 생성. spec은 cron 표현식 (예: "0 6 * * *").
func NewReportScheduler(exportService service.ExportService, spec string) *ReportScheduler {
	return &ReportScheduler{
		cron:          cron.New(),
		exportService: exportService,
		spec:          spec,
	}
}

// Start 스케줄러 시작
func (s *ReportScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		logger.Info("Starting scheduled daily business info report", nil)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		yesterday := time.Now().AddDate(0, 0, -1)
		url, err := s.exportService.ExportDailyReport(ctx, yesterday)
		if err != nil {
			logger.Error("Failed to upload daily business info report", err)
			return
		}

		logger.Info("Daily business info report completed", map[string]interface{}{
			"url": url,
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for daily report", err)
		return err
	}

	s.cron.Start()
	logger.Info("Report scheduler started successfully", map[string]interface{}{
		"spec": s.spec,
	})

	return nil
}

// Stop 스케줄러 중지
func (s *ReportScheduler) Stop() {
	logger.Info("Stopping report scheduler...", nil)
	s.cron.Stop()
	logger.Info("Report scheduler stopped", nil)
}
