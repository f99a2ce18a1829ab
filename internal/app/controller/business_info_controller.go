package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yms2/bizinfo-backend/internal/app/service"
	apperrors "github.com/yms2/bizinfo-backend/internal/errors"
	"github.com/yms2/bizinfo-backend/internal/middleware"
)

type BusinessInfoController struct {
	searchService service.BusinessInfoService
	exportService service.ExportService
}

func NewBusinessInfoController(searchService service.BusinessInfoService, exportService service.ExportService) *BusinessInfoController {
	return &BusinessInfoController{
		searchService: searchService,
		exportService: exportService,
	}
}

// Search GET /api/v1/business-info/search?keyword=&page=&limit=
func (ctrl *BusinessInfoController) Search(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	keyword := c.Query("keyword")
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)
	limit := parsePositiveInt(c.DefaultQuery("limit", "10"), 10)

	result, err := ctrl.searchService.Search(keyword, page, limit)
	if err != nil {
		log.Error("Failed to search business infos", err, map[string]interface{}{
			"keyword": keyword,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Business infos searched", map[string]interface{}{
		"keyword": keyword,
		"total":   result.Total,
		"count":   len(result.Data),
	})

	c.JSON(http.StatusOK, result)
}

// SearchByDateRange GET /api/v1/business-info/search/date-range?startDate=&endDate=&page=&limit=
func (ctrl *BusinessInfoController) SearchByDateRange(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	page := parsePositiveInt(c.DefaultQuery("page", "1"), 1)
	limit := parsePositiveInt(c.DefaultQuery("limit", "10"), 10)

	result, err := ctrl.searchService.SearchByDateRange(startDate, endDate, page, limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateFormat) {
			log.Warn("Invalid date range input", map[string]interface{}{
				"start_date": startDate,
				"end_date":   endDate,
			})
			apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, err.Error())
			return
		}
		log.Error("Failed to search business infos by date range", err, map[string]interface{}{
			"start_date": startDate,
			"end_date":   endDate,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Business infos searched by date range", map[string]interface{}{
		"start_date": startDate,
		"end_date":   endDate,
		"total":      result.Total,
		"count":      len(result.Data),
	})

	c.JSON(http.StatusOK, result)
}

// Export GET /api/v1/business-info/export?keyword=
// 전체 일치 집합을 xlsx 첨부파일로 내려준다.
func (ctrl *BusinessInfoController) Export(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	keyword := c.Query("keyword")

	file, err := ctrl.exportService.ExportSearch(keyword)
	if err != nil {
		log.Error("Failed to export business infos", err, map[string]interface{}{
			"keyword": keyword,
		})
		apperrors.InternalError(c, "")
		return
	}

	filename := fmt.Sprintf("business-info-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		log.Error("Failed to write export workbook to response", err, nil)
		return
	}

	log.Info("Business infos exported", map[string]interface{}{
		"keyword":  keyword,
		"filename": filename,
	})
}

// parsePositiveInt는 1 이상의 정수만 허용하고 그 외에는 기본값을 사용한다.
func parsePositiveInt(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}
