// Package options holds the generic option type behind the encoder's With* settings.
package options

// Option mutates a configuration value of type T and may reject it.
type Option[T any] func(T) error

// New turns fn into an Option.
func New[T any](fn func(T) error) Option[T] {
	return fn
}

// Apply runs opts against cfg in order. Nil options are ignored and the first
// error is returned as is.
func Apply[T any](cfg T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(cfg); err != nil {
			return err
		}
	}

	return nil
}
