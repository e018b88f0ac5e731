package models

import (
	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	"github.com/fieldbook/FieldBooking-Service/internal/service/bookings/models"
)

// Actor переиспользуем из сервиса бронирований
type Actor = models.Actor

// SaveFieldRequest запрос на создание/обновление поля
type SaveFieldRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	ImageURL     string   `json:"imageUrl"`
	PricePerHour int64    `json:"pricePerHour"`
	Size         string   `json:"size"`
	Amenities    []string `json:"amenities"`
	IsAvailable  bool     `json:"isAvailable"`
}

// ToDomain конвертирует request в domain модель
func (r *SaveFieldRequest) ToDomain() *domain.Field {
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &domain.Field{
		Name:         r.Name,
		Description:  r.Description,
		Location:     r.Location,
		ImageURL:     r.ImageURL,
		PricePerHour: r.PricePerHour,
		Size:         r.Size,
		Amenities:    amenities,
		IsAvailable:  r.IsAvailable,
	}
}

// FieldResponse ответ с данными поля
type FieldResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	ImageURL     string   `json:"imageUrl"`
	PricePerHour int64    `json:"pricePerHour"`
	Size         string   `json:"size"`
	Amenities    []string `json:"amenities"`
	IsAvailable  bool     `json:"isAvailable"`
}

// FieldListResponse ответ со списком полей
type FieldListResponse struct {
	Fields []FieldResponse `json:"fields"`
}

// FromDomainField конвертирует domain модель в DTO
func FromDomainField(f *domain.Field) *FieldResponse {
	if f == nil {
		return nil
	}
	return &FieldResponse{
		ID:           f.ID,
		Name:         f.Name,
		Description:  f.Description,
		Location:     f.Location,
		ImageURL:     f.ImageURL,
		PricePerHour: f.PricePerHour,
		Size:         f.Size,
		Amenities:    f.Amenities,
		IsAvailable:  f.IsAvailable,
	}
}

// FromDomainFieldList конвертирует список domain моделей в DTO
func FromDomainFieldList(fields []*domain.Field) *FieldListResponse {
	resp := &FieldListResponse{Fields: make([]FieldResponse, 0, len(fields))}
	for _, f := range fields {
		if fr := FromDomainField(f); fr != nil {
			resp.Fields = append(resp.Fields, *fr)
		}
	}
	return resp
}
