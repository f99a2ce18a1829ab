package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yms2/bizinfo-backend/config"
	"github.com/yms2/bizinfo-backend/internal/app/model"
	"github.com/yms2/bizinfo-backend/internal/app/repository"
	"github.com/yms2/bizinfo-backend/internal/db"
)

func main() {
	// 명령줄 인자 확인
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// DB 연결
	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Repository 생성
	businessInfoRepo := repository.NewBusinessInfoRepository(db.GetDB())

	// XLSX 파일 읽기
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	infos, err := readBusinessInfosFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total business infos to import: %d\n", len(infos))

	// 사용자 확인
	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	// 배치로 저장
	batchSize := 1000
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := businessInfoRepo.CreateInBatches(infos, batchSize); err != nil {
		log.Fatal("Failed to bulk create business infos:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total business infos imported: %d\n", len(infos))
}

// readBusinessInfosFromXLSX는 첫 시트의 행을 사업장 정보로 변환한다.
// 컬럼 순서: 사업장명, 사업자등록번호, 업태, 대표자명, 공동대표1, 공동대표2, 종목,
// 법인등록번호, 전화번호, 휴대전화, 대표자 이메일, 팩스번호, 우편번호, 주소, 상세주소
func readBusinessInfosFromXLSX(filePath string) ([]model.BusinessInfo, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	const columnCount = 15

	var infos []model.BusinessInfo
	seen := make(map[string]bool) // 사업자등록번호 중복 제거용
	skippedCount := 0

	// 첫 행은 헤더이므로 스킵
	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		// 짧은 행은 빈 셀로 채워 맞춘다 (excelize는 뒤쪽 빈 셀을 생략함)
		for len(row) < columnCount {
			row = append(row, "")
		}

		name := strings.TrimSpace(row[0])
		number := strings.TrimSpace(row[1])

		// 사업장명은 필수
		if name == "" {
			skippedCount++
			continue
		}
		if number != "" && seen[number] {
			skippedCount++
			continue
		}
		if number != "" {
			seen[number] = true
		}

		infos = append(infos, model.BusinessInfo{
			BusinessName:                name,
			BusinessNumber:              number,
			BusinessType:                strings.TrimSpace(row[2]),
			BusinessCeo:                 strings.TrimSpace(row[3]),
			BusinessCeo2:                strings.TrimSpace(row[4]),
			BusinessCeo3:                strings.TrimSpace(row[5]),
			BusinessItem:                strings.TrimSpace(row[6]),
			CorporateRegistrationNumber: strings.TrimSpace(row[7]),
			BusinessTel:                 strings.TrimSpace(row[8]),
			BusinessMobile:              strings.TrimSpace(row[9]),
			BusinessCeoEmail:            strings.TrimSpace(row[10]),
			BusinessFax:                 strings.TrimSpace(row[11]),
			BusinessZipcode:             strings.TrimSpace(row[12]),
			BusinessAddress:             strings.TrimSpace(row[13]),
			BusinessAddressDetail:       strings.TrimSpace(row[14]),
		})
	}

	if skippedCount > 0 {
		fmt.Printf("Skipped %d invalid or duplicate rows\n", skippedCount)
	}

	return infos, nil
}
