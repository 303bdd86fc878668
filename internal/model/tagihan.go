package model

import (
	"github.com/pkpu-id/tagihan/internal/domain"
)

func TagihanFromEntity(data *domain.Tagihan) Tagihan {
	return Tagihan{
		KreditorID:      data.KreditorID,
		Pertanggal:      data.Pertanggal,
		HutangPokok:     data.HutangPokok,
		Bunga:           data.Bunga,
		Denda:           data.Denda,
		SifatTagihanID:  data.SifatTagihanID,
		JumlahTagihan:   data.JumlahTagihan,
		MulaiTertunggak: data.MulaiTertunggak,
		JumlahHari:      data.JumlahHari,
	}
}

func TagihanToEntity(data Tagihan) *domain.Tagihan {
	return &domain.Tagihan{
		ID:              data.ID,
		KreditorID:      data.KreditorID,
		Pertanggal:      data.Pertanggal,
		HutangPokok:     data.HutangPokok,
		Bunga:           data.Bunga,
		Denda:           data.Denda,
		SifatTagihanID:  data.SifatTagihanID,
		JumlahTagihan:   data.JumlahTagihan,
		MulaiTertunggak: data.MulaiTertunggak,
		JumlahHari:      data.JumlahHari,
		CreatedAt:       data.CreatedAt,
		Dokumen:         DokumenTagihansToEntity(data.DokumenTagihans),
	}
}

func DokumenTagihanFromEntity(data domain.DokumenTagihan) DokumenTagihan {
	return DokumenTagihan{
		TipeDokumenID: data.TipeDokumenID,
		Dokumen:       data.Dokumen,
		TagihanID:     data.TagihanID,
	}
}

func DokumenTagihansToEntity(data []DokumenTagihan) []domain.DokumenTagihan {
	if len(data) == 0 {
		return nil
	}

	responses := make([]domain.DokumenTagihan, len(data))
	for i, d := range data {
		responses[i] = domain.DokumenTagihan{
			ID:            d.ID,
			TipeDokumenID: d.TipeDokumenID,
			Dokumen:       d.Dokumen,
			TagihanID:     d.TagihanID,
		}
	}

	return responses
}
