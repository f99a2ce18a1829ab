package repository

import (
	"time"

	"github.com/yms2/bizinfo-backend/internal/app/model"
	"github.com/yms2/bizinfo-backend/pkg/logger"
	"gorm.io/gorm"
)

// searchColumns는 키워드 검색이 LIKE로 훑는 컬럼 목록.
// 컬럼명을 동적으로 조립하지 않고 고정 열거로 유지한다. 초기화 이후 변경 금지.
var searchColumns = []string{
	"business_name",
	"business_number",
	"business_type",
	"business_ceo",
	"business_ceo2",
	"business_ceo3",
	"business_item",
	"corporate_registration_number",
	"business_tel",
	"business_mobile",
	"business_ceo_email",
	"business_fax",
	"business_zipcode",
	"business_address",
	"business_address_detail",
}

// SearchFilter defines the parameters for a keyword search.
type SearchFilter struct {
	Keyword   string
	MatchDate string // normalized YYYY-MM-DD; empty unless the keyword is date-shaped
	Page      int
	Limit     int
}

type BusinessInfoRepository interface {
	Create(info *model.BusinessInfo) error
	CreateInBatches(infos []model.BusinessInfo, batchSize int) error
	Search(filter SearchFilter) ([]model.BusinessInfo, int64, error)
	SearchAll(keyword, matchDate string) ([]model.BusinessInfo, error)
	SearchByCreatedRange(start, end time.Time, page, limit int) ([]model.BusinessInfo, int64, error)
	FindByCreatedRange(start, end time.Time) ([]model.BusinessInfo, error)
}

type businessInfoRepository struct {
	db *gorm.DB
}

func NewBusinessInfoRepository(db *gorm.DB) BusinessInfoRepository {
	return &businessInfoRepository{db: db}
}

func (r *businessInfoRepository) Create(info *model.BusinessInfo) error {
	if err := r.db.Create(info).Error; err != nil {
		logger.Error("Failed to create business info", err, map[string]interface{}{
			"business_name": info.BusinessName,
		})
		return err
	}
	return nil
}

func (r *businessInfoRepository) CreateInBatches(infos []model.BusinessInfo, batchSize int) error {
	if len(infos) == 0 {
		return nil
	}
	if err := r.db.CreateInBatches(infos, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create business infos", err, map[string]interface{}{
			"count": len(infos),
		})
		return err
	}
	return nil
}

// keywordConditions는 키워드 검색의 OR 그룹을 구성한다.
// 각 컬럼에 대한 %keyword% LIKE 절, 키워드가 날짜 형태면 created_at/updated_at의
// 날짜 부분 일치 절을 추가로 묶는다.
func (r *businessInfoRepository) keywordConditions(keyword, matchDate string) *gorm.DB {
	like := "%" + keyword + "%"

	cond := r.db.Where(searchColumns[0]+" LIKE ?", like)
	for _, column := range searchColumns[1:] {
		cond = cond.Or(column+" LIKE ?", like)
	}
	if matchDate != "" {
		cond = cond.
			Or("DATE(created_at) = ?", matchDate).
			Or("DATE(updated_at) = ?", matchDate)
	}
	return cond
}

// Search 키워드 검색. OR 그룹 전체를 미삭제 조건과 AND로 묶고
// 사업장명 오름차순으로 페이지네이션한다.
func (r *businessInfoRepository) Search(filter SearchFilter) ([]model.BusinessInfo, int64, error) {
	logger.Debug("Searching business infos", map[string]interface{}{
		"keyword":    filter.Keyword,
		"match_date": filter.MatchDate,
		"page":       filter.Page,
		"limit":      filter.Limit,
	})

	query := r.db.Model(&model.BusinessInfo{}).
		Where("is_deleted = ?", false).
		Where(r.keywordConditions(filter.Keyword, filter.MatchDate))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count business infos", err, map[string]interface{}{
			"keyword": filter.Keyword,
		})
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	var infos []model.BusinessInfo
	if err := query.
		Order("business_name ASC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&infos).Error; err != nil {
		logger.Error("Failed to search business infos", err, map[string]interface{}{
			"keyword": filter.Keyword,
		})
		return nil, 0, err
	}

	return infos, total, nil
}

// SearchAll 키워드 검색의 전체 일치 집합을 페이지네이션 없이 반환한다. 내보내기 용도.
func (r *businessInfoRepository) SearchAll(keyword, matchDate string) ([]model.BusinessInfo, error) {
	var infos []model.BusinessInfo
	if err := r.db.Model(&model.BusinessInfo{}).
		Where("is_deleted = ?", false).
		Where(r.keywordConditions(keyword, matchDate)).
		Order("business_name ASC").
		Find(&infos).Error; err != nil {
		logger.Error("Failed to search all business infos", err, map[string]interface{}{
			"keyword": keyword,
		})
		return nil, err
	}
	return infos, nil
}

// FindByCreatedRange 기간 내 미삭제 레코드 전체를 created_at 내림차순으로 반환한다. 일일 리포트 용도.
func (r *businessInfoRepository) FindByCreatedRange(start, end time.Time) ([]model.BusinessInfo, error) {
	var infos []model.BusinessInfo
	if err := r.db.Model(&model.BusinessInfo{}).
		Where("is_deleted = ?", false).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order("created_at DESC").
		Find(&infos).Error; err != nil {
		logger.Error("Failed to find business infos in range", err, nil)
		return nil, err
	}
	return infos, nil
}

// SearchByCreatedRange 기간 검색. created_at이 두 시각 사이(양끝 포함)인 미삭제
// 레코드를 created_at 내림차순으로 페이지네이션한다.
func (r *businessInfoRepository) SearchByCreatedRange(start, end time.Time, page, limit int) ([]model.BusinessInfo, int64, error) {
	logger.Debug("Searching business infos by created range", map[string]interface{}{
		"start": start,
		"end":   end,
		"page":  page,
		"limit": limit,
	})

	query := r.db.Model(&model.BusinessInfo{}).
		Where("is_deleted = ?", false).
		Where("created_at >= ? AND created_at <= ?", start, end)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count business infos in range", err, nil)
		return nil, 0, err
	}

	offset := (page - 1) * limit

	var infos []model.BusinessInfo
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&infos).Error; err != nil {
		logger.Error("Failed to search business infos in range", err, nil)
		return nil, 0, err
	}

	return infos, total, nil
}
