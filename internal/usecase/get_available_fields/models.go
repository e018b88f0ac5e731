package get_available_fields

import (
	"time"

	"github.com/fieldbook/FieldBooking-Service/internal/domain"
	"github.com/fieldbook/FieldBooking-Service/pkg/types"
)

// Request модель запроса доступных полей на слот
type Request struct {
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Начало слота
	EndTime   types.TimeString // Конец слота
}

// FieldItem поле, свободное на запрошенный слот
type FieldItem struct {
	ID           int64    // ID поля
	Name         string   // Название
	Description  string   // Описание
	Location     string   // Адрес
	ImageURL     string   // URL изображения
	PricePerHour int64    // Цена за час
	TotalPrice   int64    // Цена за весь запрошенный слот
	Size         string   // Формат поля, например "5-a-side"
	Amenities    []string // Удобства
}

// Response модель ответа со списком свободных полей
type Response struct {
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Начало слота
	EndTime   types.TimeString // Конец слота
	Fields    []FieldItem      // Свободные поля
}

// toFieldItems конвертирует доменные поля в элементы ответа
func toFieldItems(fields []*domain.Field, slot domain.TimeRange) []FieldItem {
	items := make([]FieldItem, 0, len(fields))
	for _, f := range fields {
		items = append(items, FieldItem{
			ID:           f.ID,
			Name:         f.Name,
			Description:  f.Description,
			Location:     f.Location,
			ImageURL:     f.ImageURL,
			PricePerHour: f.PricePerHour,
			TotalPrice:   f.PriceFor(slot),
			Size:         f.Size,
			Amenities:    f.Amenities,
		})
	}
	return items
}
