package survey

import "errors"

var (
	// ErrUnknownChannel is reported when no transport is registered for the requested channel.
	ErrUnknownChannel = errors.New("survey: unknown transport channel")

	// ErrPlaceholderConfig is returned by the pre-flight check when configuration
	// still holds the sample placeholder values.
	ErrPlaceholderConfig = errors.New("survey: configuration still contains placeholder values")

	// ErrNoTemplateSource is returned by SendBatch when the dispatcher has no template source.
	ErrNoTemplateSource = errors.New("survey: template source is required")
)
