package content

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/gigagent/internal/domain"
	"github.com/nfrund/gigagent/internal/icons"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "icon" accepts only glyphs the icons package can draw.
	_ = v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
		return icons.Known(icons.Name(fl.Field().String()))
	})
	return v
}

// Validate checks that every list is non-empty and every record has all of
// its fields populated. The returned error wraps domain.ErrInvalidContent.
func Validate(p Page) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidContent, err)
	}
	return nil
}
