package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yms2/bizinfo-backend/internal/app/model"
	"github.com/yms2/bizinfo-backend/internal/app/repository"
	"github.com/yms2/bizinfo-backend/internal/db"
	"github.com/yms2/bizinfo-backend/pkg/dateutil"
)

func setupBusinessInfoServiceTest(t *testing.T) (BusinessInfoService, repository.BusinessInfoRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	repo := repository.NewBusinessInfoRepository(testDB)
	return NewBusinessInfoService(repo, dateutil.NewFormatter("2006-01-02 15:04:05")), repo
}

func createBusinessInfo(t *testing.T, repo repository.BusinessInfoRepository, name string, created time.Time) *model.BusinessInfo {
	info := &model.BusinessInfo{
		BusinessName: name,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	require.NoError(t, repo.Create(info))
	return info
}

func TestBusinessInfoService_Search_Defaults(t *testing.T) {
	svc, repo := setupBusinessInfoServiceTest(t)

	for i := 0; i < 15; i++ {
		createBusinessInfo(t, repo, "사업장"+string(rune('가'+i)), time.Date(2024, time.May, 1+i, 9, 0, 0, 0, time.Local))
	}

	// page/limit 0은 기본값 1/10으로 대체
	result, err := svc.Search("사업장", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 10, result.Limit)
	assert.Equal(t, int64(15), result.Total)
	assert.Len(t, result.Data, 10)
}

func TestBusinessInfoService_Search_TrimsKeyword(t *testing.T) {
	svc, repo := setupBusinessInfoServiceTest(t)
	createBusinessInfo(t, repo, "한빛전자", time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local))

	result, err := svc.Search("  한빛  ", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "한빛전자", result.Data[0].BusinessName)
}

func TestBusinessInfoService_Search_EmptyKeywordMatchesEverything(t *testing.T) {
	svc, repo := setupBusinessInfoServiceTest(t)
	createBusinessInfo(t, repo, "첫번째", time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local))
	createBusinessInfo(t, repo, "두번째", time.Date(2024, time.May, 2, 9, 0, 0, 0, time.Local))

	result, err := svc.Search("", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Total)
	assert.Len(t, result.Data, 2)
}

func TestBusinessInfoService_Search_FormatsTimestamps(t *testing.T) {
	svc, repo := setupBusinessInfoServiceTest(t)
	created := time.Date(2024, time.May, 7, 14, 30, 0, 0, time.Local)
	createBusinessInfo(t, repo, "시간확인", created)

	result, err := svc.Search("시간확인", 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Data, 1)

	assert.Equal(t, "2024-05-07 14:30:00", result.Data[0].CreatedAt)
	assert.Equal(t, "2024-05-07 14:30:00", result.Data[0].UpdatedAt)
}

func TestBusinessInfoService_Search_DateShapedKeyword(t *testing.T) {
	svc, repo := setupBusinessInfoServiceTest(t)
	createBusinessInfo(t, repo, "오월칠일등록", time.Date(2024, time.May, 7, 10, 0, 0, 0, time.UTC))
	createBusinessInfo(t, repo, "다른날등록", time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC))

	tests := []struct {
		name    string
		keyword string
		want    int64
	}{
		{name: "Dash separators with zero padding", keyword: "2024-05-07", want: 1},
		{name: "Slash separators", keyword: "2024/05/07", want: 1},
		{name: "Single digit month and day", keyword: "2024-5-7", want: 1},
		{name: "Impossible month is plain text and matches nothing", keyword: "2024-13-01", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Search(tt.keyword, 1, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Total)
		})
	}
}

func TestBusinessInfoService_SearchByDateRange_Validation(t *testing.T) {
	svc, _ := setupBusinessInfoServiceTest(t)

	tests := []struct {
		name      string
		startDate string
		endDate   string
		wantErr   error
	}{
		{name: "Missing separators", startDate: "20240101", endDate: "2024-01-31", wantErr: ErrInvalidDateFormat},
		{name: "Empty start", startDate: "", endDate: "2024-01-31", wantErr: ErrInvalidDateFormat},
		{name: "Garbage end", startDate: "2024-01-01", endDate: "다음달까지", wantErr: ErrInvalidDateFormat},
		{name: "Dot separators rejected", startDate: "2024.01.01", endDate: "2024.01.31", wantErr: ErrInvalidDateFormat},
		{name: "Mixed dash and slash accepted", startDate: "2024-01-01", endDate: "2024/01/31"},
		{name: "Month 13 rejected", startDate: "2024-13-01", endDate: "2024-01-31", wantErr: ErrInvalidDateFormat},
		{name: "Day 32 rejected", startDate: "2024-01-01", endDate: "2024-01-32", wantErr: ErrInvalidDateFormat},
		{name: "February 31st passes the shape check", startDate: "2024-02-31", endDate: "2024-03-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.SearchByDateRange(tt.startDate, tt.endDate, 1, 10)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.EqualError(t, err, "날짜 형식이 올바르지 않습니다. (YYYY-MM-DD 또는 YYYY/MM/DD)")
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

func TestBusinessInfoService_SearchByDateRange_InclusiveBounds(t *testing.T) {
	svc, repo := setupBusinessInfoServiceTest(t)

	createBusinessInfo(t, repo, "시작자정", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local))
	createBusinessInfo(t, repo, "기간중간", time.Date(2024, time.January, 15, 12, 0, 0, 0, time.Local))
	createBusinessInfo(t, repo, "종료자정", time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local))
	createBusinessInfo(t, repo, "종료일오후", time.Date(2024, time.January, 31, 15, 0, 0, 0, time.Local))
	createBusinessInfo(t, repo, "기간밖", time.Date(2024, time.February, 10, 9, 0, 0, 0, time.Local))

	result, err := svc.SearchByDateRange("2024-01-01", "2024-01-31", 1, 10)
	require.NoError(t, err)

	// 종료일은 자정 시각으로 변환되어 그 이후 생성분은 제외된다
	assert.Equal(t, int64(3), result.Total)

	names := make([]string, 0, len(result.Data))
	for _, info := range result.Data {
		names = append(names, info.BusinessName)
	}
	assert.Equal(t, []string{"종료자정", "기간중간", "시작자정"}, names) // created_at 내림차순
}

func TestBusinessInfoService_SearchByDateRange_Pagination(t *testing.T) {
	svc, repo := setupBusinessInfoServiceTest(t)

	for day := 1; day <= 5; day++ {
		createBusinessInfo(t, repo, "기록", time.Date(2024, time.March, day, 9, 0, 0, 0, time.Local))
	}

	result, err := svc.SearchByDateRange("2024-03-01", "2024/03/31", 2, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 2, result.Limit)
	assert.Len(t, result.Data, 2)
}
