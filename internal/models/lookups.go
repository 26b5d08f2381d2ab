package models

// Read-mostly reference tables. They are maintained by a separate
// administrative process; this service only reads them.

type AccountType struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	NameAr string `gorm:"size:100;not null" json:"name_ar"`
	NameEn string `gorm:"size:100" json:"name_en"`
}

func (AccountType) TableName() string { return "account_types" }

type ReportType struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Code   string `gorm:"size:50;not null;uniqueIndex" json:"code"`
	NameAr string `gorm:"size:100;not null" json:"name_ar"`
	NameEn string `gorm:"size:100" json:"name_en"`
}

func (ReportType) TableName() string { return "report_types" }

type ReportStatus struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Code   string `gorm:"size:50;not null;uniqueIndex" json:"code"`
	NameAr string `gorm:"size:100;not null" json:"name_ar"`
	NameEn string `gorm:"size:100" json:"name_en"`
}

func (ReportStatus) TableName() string { return "report_status" }

type Government struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	NameAr   string `gorm:"size:100;not null" json:"name_ar"`
	NameEn   string `gorm:"size:100" json:"name_en"`
	IsActive bool   `gorm:"not null" json:"is_active"`
}

func (Government) TableName() string { return "governments" }

type District struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	GovernmentID uint   `gorm:"not null;index" json:"government_id"`
	NameAr       string `gorm:"size:100;not null" json:"name_ar"`
	NameEn       string `gorm:"size:100" json:"name_en"`
	IsActive     bool   `gorm:"not null" json:"is_active"`
}

func (District) TableName() string { return "districts" }

type Area struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	DistrictID uint   `gorm:"not null;index" json:"district_id"`
	NameAr     string `gorm:"size:100;not null" json:"name_ar"`
	NameEn     string `gorm:"size:100" json:"name_en"`
	IsActive   bool   `gorm:"not null" json:"is_active"`
}

func (Area) TableName() string { return "areas" }

type Location struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	AreaID    uint     `gorm:"not null;index" json:"area_id"`
	NameAr    string   `gorm:"size:150;not null" json:"name_ar"`
	NameEn    string   `gorm:"size:150" json:"name_en"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
	IsActive  bool     `gorm:"not null" json:"is_active"`
}

func (Location) TableName() string { return "locations" }
