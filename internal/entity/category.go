package entity

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const maxNameLength = 255

type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Category) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.By(notBlank), validation.RuneLength(1, maxNameLength)),
	)
	if err != nil {
		return InvalidInput(ResourceCategory, err)
	}
	return nil
}

func notBlank(value any) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.ErrRequired
	}
	return nil
}
