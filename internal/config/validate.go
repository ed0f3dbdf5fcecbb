package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validate checks the loaded configuration for values the server cannot run with.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.Deadline, validation.Min(Duration(0))),
		validation.Field(&c.Tank01),
		validation.Field(&c.ESPN),
		validation.Field(&c.Log),
		validation.Field(&c.Metrics),
	)
}

func (t Tank01Config) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Host, validation.Required, is.Host),
		validation.Field(&t.BaseURL, validation.Required, is.URL),
		validation.Field(&t.Timeout, validation.Required, validation.Min(Duration(0))),
	)
}

func (e ESPNConfig) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.SiteBaseURL, validation.Required, is.URL),
		validation.Field(&e.WebBaseURL, validation.Required, is.URL),
		validation.Field(&e.Timeout, validation.Required, validation.Min(Duration(0))),
	)
}

func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)),
		validation.Field(&l.Format, validation.In(LogFormatText, LogFormatJSON)),
	)
}

func (m MetricsConfig) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Port, validation.When(m.Enabled, validation.Required, is.Port)),
	)
}
