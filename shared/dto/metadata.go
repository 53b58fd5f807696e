package dto

import (
	"roombook/shared/constant"
	"roombook/shared/model"
	"roombook/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)

	if model.UpdatedAt != nil {
		m.UpdatedAt = timezone.Format(*model.UpdatedAt, constant.DateFormat)
	}
}
