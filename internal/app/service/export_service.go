package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/yms2/bizinfo-backend/internal/app/model"
	"github.com/yms2/bizinfo-backend/internal/app/repository"
	"github.com/yms2/bizinfo-backend/pkg/dateutil"
	"github.com/yms2/bizinfo-backend/pkg/logger"
)

var ErrUploaderNotConfigured = errors.New("리포트 업로드 저장소가 설정되지 않았습니다")

const exportSheetName = "사업장정보"

var exportHeaders = []string{
	"사업장명", "사업자등록번호", "업태", "대표자명", "공동대표1", "공동대표2", "종목",
	"법인등록번호", "전화번호", "휴대전화", "대표자 이메일", "팩스번호", "우편번호",
	"주소", "상세주소", "등록일", "수정일",
}

// ReportUploader stores a generated report and returns its public URL.
type ReportUploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// ExportService 검색 결과의 xlsx 내보내기와 일일 리포트 업로드
type ExportService interface {
	ExportSearch(keyword string) (*excelize.File, error)
	ExportDailyReport(ctx context.Context, day time.Time) (string, error)
}

type exportService struct {
	repo      repository.BusinessInfoRepository
	formatter *dateutil.Formatter
	uploader  ReportUploader
}

// NewExportService 내보내기 서비스 생성. uploader는 nil일 수 있으며
// 그 경우 일일 리포트 업로드만 비활성화된다.
func NewExportService(repo repository.BusinessInfoRepository, formatter *dateutil.Formatter, uploader ReportUploader) ExportService {
	return &exportService{repo: repo, formatter: formatter, uploader: uploader}
}

// ExportSearch 키워드 검색의 전체 일치 집합(페이지네이션 없음)을 워크북으로 만든다.
func (s *exportService) ExportSearch(keyword string) (*excelize.File, error) {
	keyword = strings.TrimSpace(keyword)

	infos, err := s.repo.SearchAll(keyword, normalizeDate(keyword))
	if err != nil {
		logger.Error("Failed to load business infos for export", err, map[string]interface{}{
			"keyword": keyword,
		})
		return nil, err
	}

	logger.Info("Exporting business infos", map[string]interface{}{
		"keyword": keyword,
		"count":   len(infos),
	})
	return s.buildWorkbook(infos)
}

// ExportDailyReport 해당 일자(자정~익일 자정 직전)에 생성된 레코드를 워크북으로
// 만들어 업로드하고 파일 URL을 반환한다.
func (s *exportService) ExportDailyReport(ctx context.Context, day time.Time) (string, error) {
	if s.uploader == nil {
		return "", ErrUploaderNotConfigured
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)

	infos, err := s.repo.FindByCreatedRange(start, end)
	if err != nil {
		return "", err
	}

	file, err := s.buildWorkbook(infos)
	if err != nil {
		return "", err
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		logger.Error("Failed to serialize daily report workbook", err, nil)
		return "", err
	}

	key := fmt.Sprintf("reports/business-info-%s.xlsx", start.Format("2006-01-02"))
	url, err := s.uploader.Upload(ctx, key,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		bytes.NewReader(buf.Bytes()))
	if err != nil {
		logger.Error("Failed to upload daily report", err, map[string]interface{}{
			"key": key,
		})
		return "", err
	}

	logger.Info("Daily business info report uploaded", map[string]interface{}{
		"key":   key,
		"count": len(infos),
		"url":   url,
	})
	return url, nil
}

func (s *exportService) buildWorkbook(infos []model.BusinessInfo) (*excelize.File, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, err
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(exportSheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for row, info := range infos {
		values := []interface{}{
			info.BusinessName,
			info.BusinessNumber,
			info.BusinessType,
			info.BusinessCeo,
			info.BusinessCeo2,
			info.BusinessCeo3,
			info.BusinessItem,
			info.CorporateRegistrationNumber,
			info.BusinessTel,
			info.BusinessMobile,
			info.BusinessCeoEmail,
			info.BusinessFax,
			info.BusinessZipcode,
			info.BusinessAddress,
			info.BusinessAddressDetail,
			s.formatter.Format(info.CreatedAt),
			s.formatter.Format(info.UpdatedAt),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return file, nil
}
