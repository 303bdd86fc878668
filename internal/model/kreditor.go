package model

import (
	"github.com/pkpu-id/tagihan/internal/domain"
)

func KreditorFromEntity(data *domain.Kreditor) Kreditor {
	return Kreditor{
		Nama:   data.Nama,
		Email:  data.Email,
		NoTelp: data.NoTelp,
		Alamat: data.Alamat,
	}
}

func KreditorToEntity(data Kreditor) *domain.Kreditor {
	return &domain.Kreditor{
		ID:        data.ID,
		Nama:      data.Nama,
		Email:     data.Email,
		NoTelp:    data.NoTelp,
		Alamat:    data.Alamat,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func KreditorsToEntity(data []Kreditor) []domain.Kreditor {
	responses := make([]domain.Kreditor, len(data))
	for i, k := range data {
		responses[i] = *KreditorToEntity(k)
	}

	return responses
}

func SifatTagihanToEntity(data SifatTagihan) domain.SifatTagihan {
	return domain.SifatTagihan{
		ID:   data.ID,
		Nama: data.Nama,
	}
}

func SifatTagihansToEntity(data []SifatTagihan) []domain.SifatTagihan {
	responses := make([]domain.SifatTagihan, len(data))
	for i, s := range data {
		responses[i] = SifatTagihanToEntity(s)
	}

	return responses
}

func TipeDokumenToEntity(data TipeDokumen) domain.TipeDokumen {
	return domain.TipeDokumen{
		ID:   data.ID,
		Nama: data.Nama,
	}
}

func TipeDokumensToEntity(data []TipeDokumen) []domain.TipeDokumen {
	responses := make([]domain.TipeDokumen, len(data))
	for i, td := range data {
		responses[i] = TipeDokumenToEntity(td)
	}

	return responses
}
