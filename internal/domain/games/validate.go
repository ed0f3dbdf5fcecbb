package games

import validation "github.com/go-ozzo/ozzo-validation/v4"

// Validate requires both year and week. Their format is left to the upstreams.
func (q Query) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Year, validation.Required),
		validation.Field(&q.Week, validation.Required),
	)
}
