package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yms2/bizinfo-backend/internal/app/model"
	"github.com/yms2/bizinfo-backend/internal/app/repository"
	"github.com/yms2/bizinfo-backend/internal/db"
	"github.com/yms2/bizinfo-backend/pkg/dateutil"
)

type fakeUploader struct {
	key         string
	contentType string
	size        int64
	url         string
}

func (f *fakeUploader) Upload(_ context.Context, key, contentType string, body io.Reader) (string, error) {
	f.key = key
	f.contentType = contentType
	n, err := io.Copy(io.Discard, body)
	if err != nil {
		return "", err
	}
	f.size = n
	return f.url, nil
}

func setupExportServiceTest(t *testing.T, uploader ReportUploader) (ExportService, repository.BusinessInfoRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	repo := repository.NewBusinessInfoRepository(testDB)
	return NewExportService(repo, dateutil.NewFormatter("2006-01-02 15:04:05"), uploader), repo
}

func TestExportService_ExportSearch(t *testing.T) {
	svc, repo := setupExportServiceTest(t, nil)

	created := time.Date(2024, time.April, 2, 11, 0, 0, 0, time.Local)
	infos := []*model.BusinessInfo{
		{BusinessName: "가온누리", BusinessNumber: "111-11-11111", BusinessCeo: "강가온", CreatedAt: created, UpdatedAt: created},
		{BusinessName: "나래물류", BusinessNumber: "222-22-22222", BusinessCeo: "나나래", CreatedAt: created, UpdatedAt: created},
		{BusinessName: "지워진곳", IsDeleted: true, CreatedAt: created, UpdatedAt: created},
	}
	for _, info := range infos {
		require.NoError(t, repo.Create(info))
	}

	file, err := svc.ExportSearch("")
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(exportSheetName)
	require.NoError(t, err)

	// 헤더 한 줄 + 미삭제 레코드 두 줄
	require.Len(t, rows, 3)
	assert.Equal(t, exportHeaders, rows[0])

	assert.Equal(t, "가온누리", rows[1][0])
	assert.Equal(t, "111-11-11111", rows[1][1])
	assert.Equal(t, "2024-04-02 11:00:00", rows[1][15]) // 등록일은 표시용 문자열

	assert.Equal(t, "나래물류", rows[2][0])
}

func TestExportService_ExportSearch_FiltersByKeyword(t *testing.T) {
	svc, repo := setupExportServiceTest(t, nil)

	created := time.Date(2024, time.April, 2, 11, 0, 0, 0, time.Local)
	require.NoError(t, repo.Create(&model.BusinessInfo{BusinessName: "한빛전자", CreatedAt: created, UpdatedAt: created}))
	require.NoError(t, repo.Create(&model.BusinessInfo{BusinessName: "미래상사", CreatedAt: created, UpdatedAt: created}))

	file, err := svc.ExportSearch("한빛")
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(exportSheetName)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "한빛전자", rows[1][0])
}

func TestExportService_ExportDailyReport(t *testing.T) {
	uploader := &fakeUploader{url: "https://cdn.example.com/reports/business-info-2024-04-02.xlsx"}
	svc, repo := setupExportServiceTest(t, uploader)

	day := time.Date(2024, time.April, 2, 0, 0, 0, 0, time.Local)
	require.NoError(t, repo.Create(&model.BusinessInfo{
		BusinessName: "당일등록",
		CreatedAt:    day.Add(10 * time.Hour),
		UpdatedAt:    day.Add(10 * time.Hour),
	}))

	url, err := svc.ExportDailyReport(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, uploader.url, url)
	assert.Equal(t, "reports/business-info-2024-04-02.xlsx", uploader.key)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", uploader.contentType)
	assert.NotZero(t, uploader.size)
}

func TestExportService_ExportDailyReport_NoUploader(t *testing.T) {
	svc, _ := setupExportServiceTest(t, nil)

	_, err := svc.ExportDailyReport(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrUploaderNotConfigured)
}
