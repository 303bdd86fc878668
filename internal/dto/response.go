package dto

import (
	"github.com/pkpu-id/tagihan/internal/domain"
)

// ValidationResult mirrors the wire shape consumed by the intake form:
// {"success":false,"errors":[{"field":...,"message":...}]}.
type ValidationResult struct {
	Success bool                     `json:"success"`
	Errors  []domain.ValidationError `json:"errors"`
}

type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type FormBody struct {
	KreditorData     []domain.Kreditor     `json:"kreditorData"`
	SifatTagihanData []domain.SifatTagihan `json:"sifatTagihanData"`
	TipeDokumenData  []domain.TipeDokumen  `json:"tipeDokumenData"`
}

type FormLoadResponse struct {
	Status int      `json:"status"`
	Body   FormBody `json:"body"`
}
