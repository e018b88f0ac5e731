package get_available_fields

import (
	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	getAvailableFields "github.com/fieldbook/FieldBooking-Service/internal/usecase/get_available_fields"
)

// FieldItem HTTP модель свободного поля
type FieldItem struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	ImageURL     string   `json:"imageUrl"`
	PricePerHour int64    `json:"pricePerHour"`
	TotalPrice   int64    `json:"totalPrice"`
	Size         string   `json:"size"`
	Amenities    []string `json:"amenities"`
}

// AvailableFieldsResponse HTTP response model
type AvailableFieldsResponse struct {
	Date      string      `json:"date"`
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
	Fields    []FieldItem `json:"fields"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableFields.Response) *AvailableFieldsResponse {
	fields := make([]FieldItem, 0, len(resp.Fields))
	for _, f := range resp.Fields {
		fields = append(fields, FieldItem{
			ID:           f.ID,
			Name:         f.Name,
			Description:  f.Description,
			Location:     f.Location,
			ImageURL:     f.ImageURL,
			PricePerHour: f.PricePerHour,
			TotalPrice:   f.TotalPrice,
			Size:         f.Size,
			Amenities:    f.Amenities,
		})
	}

	return &AvailableFieldsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Fields:    fields,
	}
}
