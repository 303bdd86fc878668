package domain

import (
	"mime/multipart"
	"time"
)

// Kreditor is a creditor registering claims against the debtor.
type Kreditor struct {
	ID        uint64    `json:"id"`
	Nama      string    `json:"nama"`
	Email     string    `json:"email"`
	NoTelp    string    `json:"noTelp"`
	Alamat    string    `json:"alamat"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Tagihan is a debt claim. The monetary fields are kept as normalized numeric
// strings: thousands separators are stripped before the record is created.
type Tagihan struct {
	ID              uint64    `json:"id"`
	KreditorID      uint64    `json:"kreditorId"`
	Pertanggal      string    `json:"pertanggal"`
	HutangPokok     string    `json:"hutangPokok"`
	Bunga           string    `json:"bunga"`
	Denda           string    `json:"denda"`
	SifatTagihanID  uint64    `json:"sifatTagihanId"`
	JumlahTagihan   string    `json:"jumlahTagihan"`
	MulaiTertunggak string    `json:"mulaiTertunggak"`
	JumlahHari      string    `json:"jumlahHari"`
	CreatedAt       time.Time `json:"createdAt"`

	Dokumen []DokumenTagihan `json:"dokumen,omitempty"`
}

// DokumenTagihan is the metadata row for one uploaded claim document.
type DokumenTagihan struct {
	ID            uint64 `json:"id"`
	TipeDokumenID uint64 `json:"tipeDokumenId"`
	Dokumen       string `json:"dokumen"`
	TagihanID     uint64 `json:"tagihanId"`
}

// SifatTagihan enumerates the nature of a claim.
type SifatTagihan struct {
	ID   uint64 `json:"id"`
	Nama string `json:"nama"`
}

// TipeDokumen enumerates the kind of an uploaded document.
type TipeDokumen struct {
	ID   uint64 `json:"id"`
	Nama string `json:"nama"`
}

// UserVerify holds the emailed access code for one email address.
type UserVerify struct {
	ID             uint64    `json:"id"`
	Email          string    `json:"email"`
	UniqueCode     string    `json:"uniqueCode"`
	ExpirationDate time.Time `json:"expirationDate"`
}

// User carries the unique code that gates the intake form. Kept separate from
// UserVerify: the inherited schema has both tables and they are not merged.
type User struct {
	ID         uint64 `json:"id"`
	Email      string `json:"email"`
	UniqueCode string `json:"uniqueCode"`
}

// ValidationError is one field-scoped check failure. Checks accumulate; a
// submission yields the full list, never just the first failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DokumenUpload pairs a document-type id with its uploaded file. The pair is
// built at the HTTP boundary so services never correlate two parallel lists
// by index.
type DokumenUpload struct {
	TipeDokumenID string
	File          *multipart.FileHeader
}

// VerificationResult reports the issued (or reused) access code.
type VerificationResult struct {
	Email string
	Code  string
	IsNew bool
}
