package models

import (
	"arena-scheduler-service/internal/pkg/constvars"
	"arena-scheduler-service/internal/pkg/dto/responses"
	"time"
)

type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	TextColor string    `json:"text_color"`
	IsDefault bool      `json:"is_default"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (c Category) ConvertIntoResponse() responses.Category {
	textColor := c.TextColor
	if textColor == "" {
		textColor = constvars.CategoryDefaultTextColor
	}
	return responses.Category{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		TextColor: textColor,
		IsDefault: c.IsDefault,
	}
}
