package model

import (
	"time"
)

// BusinessInfo 사업장 기본 정보 모델
// 생성/수정/삭제는 외부(시드, 일괄 등록)에서만 이루어지며 검색 서비스는 읽기 전용으로 다룬다.
type BusinessInfo struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	BusinessName                string `gorm:"type:varchar(100);not null;index" json:"business_name"` // 사업장명
	BusinessNumber              string `gorm:"type:varchar(12);index" json:"business_number"`         // 사업자등록번호
	BusinessType                string `gorm:"type:varchar(50)" json:"business_type"`                 // 업태
	BusinessCeo                 string `gorm:"type:varchar(50)" json:"business_ceo"`                  // 대표자명
	BusinessCeo2                string `gorm:"type:varchar(50)" json:"business_ceo2"`                 // 공동대표 1
	BusinessCeo3                string `gorm:"type:varchar(50)" json:"business_ceo3"`                 // 공동대표 2
	BusinessItem                string `gorm:"type:varchar(50)" json:"business_item"`                 // 종목
	CorporateRegistrationNumber string `gorm:"type:varchar(14)" json:"corporate_registration_number"` // 법인등록번호
	BusinessTel                 string `gorm:"type:varchar(20)" json:"business_tel"`                  // 전화번호
	BusinessMobile              string `gorm:"type:varchar(20)" json:"business_mobile"`               // 휴대전화
	BusinessCeoEmail            string `gorm:"type:varchar(100)" json:"business_ceo_email"`           // 대표자 이메일
	BusinessFax                 string `gorm:"type:varchar(20)" json:"business_fax"`                  // 팩스번호
	BusinessZipcode             string `gorm:"type:varchar(10)" json:"business_zipcode"`              // 우편번호
	BusinessAddress             string `gorm:"type:text" json:"business_address"`                     // 주소
	BusinessAddressDetail       string `gorm:"type:text" json:"business_address_detail"`              // 상세 주소

	// 소프트 삭제 플래그. true인 레코드는 어떤 검색에도 노출되지 않는다.
	IsDeleted bool `gorm:"default:false;not null;index" json:"is_deleted"`
}

func (BusinessInfo) TableName() string {
	return "business_infos"
}

// BusinessInfoResponse는 타임스탬프를 표시용 문자열로 변환한 응답 형태.
// created_at/updated_at 외의 필드는 원본 그대로 전달한다.
type BusinessInfoResponse struct {
	ID uint `json:"id"`

	BusinessName                string `json:"business_name"`
	BusinessNumber              string `json:"business_number"`
	BusinessType                string `json:"business_type"`
	BusinessCeo                 string `json:"business_ceo"`
	BusinessCeo2                string `json:"business_ceo2"`
	BusinessCeo3                string `json:"business_ceo3"`
	BusinessItem                string `json:"business_item"`
	CorporateRegistrationNumber string `json:"corporate_registration_number"`
	BusinessTel                 string `json:"business_tel"`
	BusinessMobile              string `json:"business_mobile"`
	BusinessCeoEmail            string `json:"business_ceo_email"`
	BusinessFax                 string `json:"business_fax"`
	BusinessZipcode             string `json:"business_zipcode"`
	BusinessAddress             string `json:"business_address"`
	BusinessAddressDetail       string `json:"business_address_detail"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
