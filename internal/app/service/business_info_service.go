package service

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yms2/bizinfo-backend/internal/app/model"
	"github.com/yms2/bizinfo-backend/internal/app/repository"
	"github.com/yms2/bizinfo-backend/pkg/dateutil"
	"github.com/yms2/bizinfo-backend/pkg/logger"
)

var ErrInvalidDateFormat = errors.New("날짜 형식이 올바르지 않습니다. (YYYY-MM-DD 또는 YYYY/MM/DD)")

// datePattern은 YYYY-MM-DD 또는 YYYY/MM/DD 형태를 검사한다. 월/일은 1~2자리 허용,
// 월은 1~12, 일은 1~31로 제한한다. 월별 일수(2월 31일 등)까지는 검사하지 않는다.
var datePattern = regexp.MustCompile(`^(\d{4})[-/](0?[1-9]|1[0-2])[-/](0?[1-9]|[12]\d|3[01])$`)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// SearchResult 검색 결과 한 페이지와 페이지네이션 메타데이터
type SearchResult struct {
	Data  []model.BusinessInfoResponse `json:"data"`
	Total int64                        `json:"total"`
	Page  int                          `json:"page"`
	Limit int                          `json:"limit"`
}

// BusinessInfoService 사업장 정보 검색 서비스 인터페이스
type BusinessInfoService interface {
	Search(keyword string, page, limit int) (*SearchResult, error)
	SearchByDateRange(startDate, endDate string, page, limit int) (*SearchResult, error)
}

type businessInfoService struct {
	repo      repository.BusinessInfoRepository
	formatter *dateutil.Formatter
}

// NewBusinessInfoService 사업장 정보 검색 서비스 생성
func NewBusinessInfoService(repo repository.BusinessInfoRepository, formatter *dateutil.Formatter) BusinessInfoService {
	return &businessInfoService{repo: repo, formatter: formatter}
}

// Search 키워드 검색. 빈 키워드를 포함해 어떤 입력도 허용한다(%%는 전체 일치).
// 키워드가 날짜 형태면 created_at/updated_at의 날짜 부분 일치 절이 OR로 추가된다.
func (s *businessInfoService) Search(keyword string, page, limit int) (*SearchResult, error) {
	keyword = strings.TrimSpace(keyword)
	page, limit = normalizePagination(page, limit)

	infos, total, err := s.repo.Search(repository.SearchFilter{
		Keyword:   keyword,
		MatchDate: normalizeDate(keyword),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		logger.Error("Business info search failed", err, map[string]interface{}{
			"keyword": keyword,
		})
		return nil, err
	}

	return &SearchResult{
		Data:  s.toResponses(infos),
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// SearchByDateRange 기간 검색. 두 날짜 모두 형태 검사를 통과해야 하며,
// 실패 시 저장소 조회 없이 ErrInvalidDateFormat을 반환한다.
func (s *businessInfoService) SearchByDateRange(startDate, endDate string, page, limit int) (*SearchResult, error) {
	start, ok := parseDate(startDate)
	if !ok {
		return nil, ErrInvalidDateFormat
	}
	end, ok := parseDate(endDate)
	if !ok {
		return nil, ErrInvalidDateFormat
	}

	page, limit = normalizePagination(page, limit)

	infos, total, err := s.repo.SearchByCreatedRange(start, end, page, limit)
	if err != nil {
		logger.Error("Business info date range search failed", err, map[string]interface{}{
			"start_date": startDate,
			"end_date":   endDate,
		})
		return nil, err
	}

	return &SearchResult{
		Data:  s.toResponses(infos),
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *businessInfoService) toResponses(infos []model.BusinessInfo) []model.BusinessInfoResponse {
	responses := make([]model.BusinessInfoResponse, 0, len(infos))
	for _, info := range infos {
		responses = append(responses, model.BusinessInfoResponse{
			ID:                          info.ID,
			BusinessName:                info.BusinessName,
			BusinessNumber:              info.BusinessNumber,
			BusinessType:                info.BusinessType,
			BusinessCeo:                 info.BusinessCeo,
			BusinessCeo2:                info.BusinessCeo2,
			BusinessCeo3:                info.BusinessCeo3,
			BusinessItem:                info.BusinessItem,
			CorporateRegistrationNumber: info.CorporateRegistrationNumber,
			BusinessTel:                 info.BusinessTel,
			BusinessMobile:              info.BusinessMobile,
			BusinessCeoEmail:            info.BusinessCeoEmail,
			BusinessFax:                 info.BusinessFax,
			BusinessZipcode:             info.BusinessZipcode,
			BusinessAddress:             info.BusinessAddress,
			BusinessAddressDetail:       info.BusinessAddressDetail,
			CreatedAt:                   s.formatter.Format(info.CreatedAt),
			UpdatedAt:                   s.formatter.Format(info.UpdatedAt),
		})
	}
	return responses
}

func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// normalizeDate는 날짜 형태의 문자열을 0을 채운 YYYY-MM-DD로 정규화한다.
// 형태가 아니면 빈 문자열을 반환한다.
func normalizeDate(s string) string {
	matches := datePattern.FindStringSubmatch(s)
	if matches == nil {
		return ""
	}
	year, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	day, _ := strconv.Atoi(matches[3])
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// parseDate는 날짜 형태의 문자열을 해당 일 자정 시각으로 변환한다.
// 월별 일수 초과분(2월 31일 등)은 time.Date의 정규화(이월)에 맡긴다.
func parseDate(s string) (time.Time, bool) {
	matches := datePattern.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	day, _ := strconv.Atoi(matches[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}
