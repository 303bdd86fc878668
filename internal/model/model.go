package model

import (
	"time"

	"gorm.io/gorm"
)

// Kreditor represents the kreditors table
type Kreditor struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Nama      string    `gorm:"type:varchar(255);not null" json:"nama"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	NoTelp    string    `gorm:"type:varchar(50);not null" json:"noTelp"`
	Alamat    string    `gorm:"type:text;not null" json:"alamat"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Tagihans []Tagihan `gorm:"foreignKey:KreditorID" json:"tagihans,omitempty"`
}

// Tagihan represents the tagihans table
type Tagihan struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	KreditorID      uint64    `gorm:"not null" json:"kreditorId"`
	Pertanggal      string    `gorm:"type:varchar(50);not null" json:"pertanggal"`
	HutangPokok     string    `gorm:"type:varchar(50);not null" json:"hutangPokok"`
	Bunga           string    `gorm:"type:varchar(50);not null" json:"bunga"`
	Denda           string    `gorm:"type:varchar(50);not null" json:"denda"`
	SifatTagihanID  uint64    `gorm:"not null" json:"sifatTagihanId"`
	JumlahTagihan   string    `gorm:"type:varchar(50);not null" json:"jumlahTagihan"`
	MulaiTertunggak string    `gorm:"type:varchar(50);not null" json:"mulaiTertunggak"`
	JumlahHari      string    `gorm:"type:varchar(20);not null" json:"jumlahHari"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`

	DokumenTagihans []DokumenTagihan `gorm:"foreignKey:TagihanID" json:"dokumenTagihans,omitempty"`
}

// DokumenTagihan represents the dokumen_tagihans table
type DokumenTagihan struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	TipeDokumenID uint64 `gorm:"not null" json:"tipeDokumenId"`
	Dokumen       string `gorm:"type:varchar(255);not null" json:"dokumen"`
	TagihanID     uint64 `gorm:"not null" json:"tagihanId"`
}

// SifatTagihan represents the sifat_tagihans reference table
type SifatTagihan struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Nama string `gorm:"type:varchar(100);not null;uniqueIndex" json:"nama"`
}

// TipeDokumen represents the tipe_dokumens reference table
type TipeDokumen struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Nama string `gorm:"type:varchar(100);not null;uniqueIndex" json:"nama"`
}

// UserVerify represents the user_verifies table
type UserVerify struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	UniqueCode     string    `gorm:"type:varchar(25);not null;index" json:"uniqueCode"`
	ExpirationDate time.Time `gorm:"not null" json:"expirationDate"`
}

// User represents the users table
type User struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Email      string `gorm:"type:varchar(255);not null" json:"email"`
	UniqueCode string `gorm:"type:varchar(25);not null;uniqueIndex" json:"uniqueCode"`
}

func (Kreditor) TableName() string {
	return "kreditors"
}

func (Tagihan) TableName() string {
	return "tagihans"
}

func (DokumenTagihan) TableName() string {
	return "dokumen_tagihans"
}

func (SifatTagihan) TableName() string {
	return "sifat_tagihans"
}

func (TipeDokumen) TableName() string {
	return "tipe_dokumens"
}

func (UserVerify) TableName() string {
	return "user_verifies"
}

func (User) TableName() string {
	return "users"
}

// Database migration function
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Kreditor{},
		&Tagihan{},
		&DokumenTagihan{},
		&SifatTagihan{},
		&TipeDokumen{},
		&UserVerify{},
		&User{},
	)
}
