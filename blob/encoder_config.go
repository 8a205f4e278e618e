package blob

import (
	"errors"

	"go.uber.org/zap"

	"github.com/ctse-tools/nodebin/endian"
	"github.com/ctse-tools/nodebin/format"
	"github.com/ctse-tools/nodebin/internal/options"
)

// EncoderConfig holds the settings an Encoder takes on top of its profile.
type EncoderConfig struct {
	logger *zap.Logger
	engine endian.EndianEngine
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithLogger sets the logger used to report recoverable input problems, such as a
// missing boolean column. Default is a no-op logger.
func WithLogger(logger *zap.Logger) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if logger == nil {
			return errors.New("blob: nil logger")
		}
		cfg.logger = logger

		return nil
	})
}

// WithByteOrder overrides the byte order of the profile.
// The record layout is unchanged; only the multi-byte fields swap.
func WithByteOrder(order format.ByteOrder) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		switch order {
		case format.LittleEndian, format.BigEndian:
			cfg.engine = endian.ForByteOrder(order)
			return nil
		default:
			return errors.New("blob: invalid byte order " + order.String())
		}
	})
}
