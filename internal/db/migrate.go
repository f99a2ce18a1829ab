package db

import (
	"github.com/yms2/bizinfo-backend/internal/app/model"
	"github.com/yms2/bizinfo-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	if err := DB.AutoMigrate(&model.BusinessInfo{}); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// Seed adds a handful of development rows when the table is empty (optional)
func Seed() error {
	var count int64
	if err := DB.Model(&model.BusinessInfo{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Skipping seed, business_infos already populated", map[string]interface{}{
			"count": count,
		})
		return nil
	}

	logger.Info("Seeding initial business info data...")

	seeds := []model.BusinessInfo{
		{
			BusinessName:    "한빛전자",
			BusinessNumber:  "123-45-67890",
			BusinessType:    "제조업",
			BusinessCeo:     "김한빛",
			BusinessItem:    "전자부품",
			BusinessTel:     "02-1234-5678",
			BusinessZipcode: "04524",
			BusinessAddress: "서울특별시 중구 세종대로 110",
		},
		{
			BusinessName:    "미래상사",
			BusinessNumber:  "234-56-78901",
			BusinessType:    "도소매업",
			BusinessCeo:     "이미래",
			BusinessItem:    "사무용품",
			BusinessTel:     "031-987-6543",
			BusinessZipcode: "13494",
			BusinessAddress: "경기도 성남시 분당구 판교역로 235",
		},
		{
			BusinessName:    "동해물산",
			BusinessNumber:  "345-67-89012",
			BusinessType:    "운수업",
			BusinessCeo:     "박동해",
			BusinessCeo2:    "최서해",
			BusinessItem:    "수산물 유통",
			BusinessTel:     "051-555-0101",
			BusinessZipcode: "48058",
			BusinessAddress: "부산광역시 해운대구 센텀중앙로 79",
		},
	}

	if err := DB.Create(&seeds).Error; err != nil {
		logger.Error("Failed to seed business infos", err)
		return err
	}

	logger.Info("Seed data created", map[string]interface{}{
		"count": len(seeds),
	})
	return nil
}
