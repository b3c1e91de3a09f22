package postgres

import (
	"time"

	"github.com/lib/pq"
)

// UserModel é o model GORM para usuários (tabela exigida pelo provedor de autenticação)
type UserModel struct {
	ID              string    `gorm:"type:varchar;primaryKey"`
	Email           *string   `gorm:"type:varchar;uniqueIndex"`
	FirstName       *string   `gorm:"type:varchar"`
	LastName        *string   `gorm:"type:varchar"`
	ProfileImageURL *string   `gorm:"column:profile_image_url;type:varchar"`
	CreatedAt       time.Time `gorm:"type:timestamptz;not null;autoCreateTime:false"`
	UpdatedAt       time.Time `gorm:"type:timestamptz;not null;autoUpdateTime:false"`
}

func (UserModel) TableName() string {
	return "users"
}

// LeadModel é o model GORM para leads
type LeadModel struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	Name      string         `gorm:"type:text;not null"`
	Email     string         `gorm:"type:text;not null"`
	Phone     *string        `gorm:"type:text"`
	Source    string         `gorm:"type:text;not null"`
	Status    string         `gorm:"type:text;not null;default:cold"`
	Score     int            `gorm:"not null;default:0"`
	Tags      pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt time.Time      `gorm:"type:timestamptz;not null;index;autoCreateTime:false"`
	UpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime:false"`
}

func (LeadModel) TableName() string {
	return "leads"
}

// LeadMagnetModel é o model GORM para lead magnets
type LeadMagnetModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:text;not null"`
	Type        string    `gorm:"type:text;not null"`
	Industry    string    `gorm:"type:text;not null"`
	Description *string   `gorm:"type:text"`
	Status      string    `gorm:"type:text;not null;default:draft"`
	Leads       int       `gorm:"not null;default:0"`
	Conversion  int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"type:timestamptz;not null;index;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"type:timestamptz;not null;autoUpdateTime:false"`
}

func (LeadMagnetModel) TableName() string {
	return "lead_magnets"
}

// Models lista os models migrados por AutoMigrate
func Models() []any {
	return []any{&UserModel{}, &LeadModel{}, &LeadMagnetModel{}}
}
