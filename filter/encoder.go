package filter

import (
	"bytes"
	"fmt"

	"github.com/arloliu/scanfilter/errs"
	"github.com/arloliu/scanfilter/format"
	"github.com/arloliu/scanfilter/internal/options"
	"github.com/arloliu/scanfilter/pool"
	"github.com/rs/zerolog"
)

// Encoder serializes filters for one negotiated protocol version.
//
// On ProtocolProtobuf, Encode returns the marshaled filterpb.Filter envelope.
// On ProtocolLegacy, Encode returns the flat payload written by SerializeOld.
// An Encoder is safe for concurrent use once constructed.
type Encoder struct {
	protocol format.ProtocolVersion
	logger   zerolog.Logger
	registry *Registry
	bufPool  *pool.ByteBufferPool
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithProtocol sets the protocol version. The default is ProtocolProtobuf.
func WithProtocol(p format.ProtocolVersion) EncoderOption {
	return options.New(func(e *Encoder) error {
		if !p.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrUnsupportedProtocol, p)
		}
		e.protocol = p

		return nil
	})
}

// WithLogger sets the logger used for debug output. The default discards everything.
func WithLogger(logger zerolog.Logger) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.logger = logger
	})
}

// WithRegistry restricts encoding to filter types present in r.
func WithRegistry(r *Registry) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.registry = r
	})
}

// WithBufferPool sets the pool legacy payloads are staged in.
// The default is the package-level request buffer pool.
func WithBufferPool(p *pool.ByteBufferPool) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.bufPool = p
	})
}

// NewEncoder creates an Encoder.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		protocol: format.ProtocolProtobuf,
		logger:   zerolog.Nop(),
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Protocol returns the protocol version the encoder writes.
func (e *Encoder) Protocol() format.ProtocolVersion {
	return e.protocol
}

// Encode serializes f for the encoder's protocol.
func (e *Encoder) Encode(f Filter) ([]byte, error) {
	if f == nil {
		return nil, errs.ErrNilFilter
	}
	if e.registry != nil && !e.registry.Supports(f) {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownFilter, f.Name())
	}

	var (
		out []byte
		err error
	)
	switch e.protocol {
	case format.ProtocolLegacy:
		out, err = e.encodeLegacy(f)
	case format.ProtocolProtobuf:
		out, err = e.encodeProtobuf(f)
	default:
		err = fmt.Errorf("%w: %d", errs.ErrUnsupportedProtocol, e.protocol)
	}
	if err != nil {
		return nil, err
	}

	e.logEncoded(f, len(out))

	return out, nil
}

func (e *Encoder) encodeProtobuf(f Filter) ([]byte, error) {
	msg, err := ToProto(f)
	if err != nil {
		return nil, err
	}

	return msg.Marshal()
}

func (e *Encoder) encodeLegacy(f Filter) ([]byte, error) {
	buf := e.getBuffer()
	defer e.putBuffer(buf)

	predicted := f.PredictSerializedSize()
	buf.Grow(predicted)
	if err := f.SerializeOld(buf); err != nil {
		return nil, fmt.Errorf("serialize %s: %w", f.Name(), err)
	}

	if buf.Len() != predicted {
		e.logger.Warn().
			Bytes("filter", f.Name()).
			Int("predicted", predicted).
			Int("actual", buf.Len()).
			Msg("legacy filter size prediction mismatch")
	}

	return bytes.Clone(buf.Bytes()), nil
}

func (e *Encoder) logEncoded(f Filter, size int) {
	ev := e.logger.Debug()
	if !ev.Enabled() {
		return
	}

	ev = ev.Stringer("protocol", e.protocol).Int("size", size)
	if obj, ok := f.(zerolog.LogObjectMarshaler); ok {
		ev = ev.Object("filter", obj)
	} else {
		ev = ev.Bytes("filter", f.Name())
	}
	ev.Msg("encoded scan filter")
}

func (e *Encoder) getBuffer() *pool.ByteBuffer {
	if e.bufPool != nil {
		return e.bufPool.Get()
	}

	return pool.GetRequestBuffer()
}

func (e *Encoder) putBuffer(buf *pool.ByteBuffer) {
	if e.bufPool != nil {
		e.bufPool.Put(buf)
		return
	}
	pool.PutRequestBuffer(buf)
}
