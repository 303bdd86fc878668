package dto

import (
	"strconv"
	"strings"

	"github.com/pkpu-id/tagihan/internal/domain"
)

// TagihanRequest carries the multipart addTagihan form. Scalar fields bind
// via fiber's form parser; Dokumen is assembled by the handler from the
// tipeDokumenId values zipped with the uploaded files.
type TagihanRequest struct {
	KreditorID      string `form:"kreditorId"`
	Pertanggal      string `form:"pertanggal"`
	HutangPokok     string `form:"hutangPokok"`
	Bunga           string `form:"bunga"`
	Denda           string `form:"denda"`
	SifatTagihanID  string `form:"sifatTagihanId"`
	JumlahTagihan   string `form:"jumlahTagihan"`
	MulaiTertunggak string `form:"mulaiTertunggak"`
	JumlahHari      string `form:"jumlahHari"`

	Dokumen []domain.DokumenUpload `form:"-"`
}

type KreditorRequest struct {
	Nama   string `form:"nama"`
	Email  string `form:"email"`
	NoTelp string `form:"noTelp"`
	Alamat string `form:"alamat"`
}

// --- Mapping --- //

// UnformatPrice strips thousands separators from a monetary form value.
func UnformatPrice(price string) string {
	return strings.ReplaceAll(price, ",", "")
}

// TagihanToEntity builds the claim entity from a validated request. The
// three monetary components are normalized here; jumlahTagihan is stored as
// submitted.
func TagihanToEntity(req TagihanRequest) *domain.Tagihan {
	kreditorID, _ := strconv.ParseUint(req.KreditorID, 10, 64)
	sifatTagihanID, _ := strconv.ParseUint(req.SifatTagihanID, 10, 64)

	return &domain.Tagihan{
		KreditorID:      kreditorID,
		Pertanggal:      req.Pertanggal,
		HutangPokok:     UnformatPrice(req.HutangPokok),
		Bunga:           UnformatPrice(req.Bunga),
		Denda:           UnformatPrice(req.Denda),
		SifatTagihanID:  sifatTagihanID,
		JumlahTagihan:   req.JumlahTagihan,
		MulaiTertunggak: req.MulaiTertunggak,
		JumlahHari:      req.JumlahHari,
	}
}

func KreditorToEntity(req KreditorRequest) *domain.Kreditor {
	return &domain.Kreditor{
		Nama:   req.Nama,
		Email:  req.Email,
		NoTelp: req.NoTelp,
		Alamat: req.Alamat,
	}
}
