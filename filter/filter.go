package filter

import (
	"fmt"

	"github.com/arloliu/scanfilter/errs"
	"github.com/arloliu/scanfilter/filterpb"
	"github.com/arloliu/scanfilter/internal/hash"
	"github.com/arloliu/scanfilter/pool"
)

// Filter is a server-evaluated scan predicate.
type Filter interface {
	// Name returns the type tag the remote store uses to pick a decoder.
	// The returned slice is shared and must not be modified.
	Name() []byte

	// Serialize returns the filter's structured-message payload.
	Serialize() ([]byte, error)

	// PredictSerializedSize returns the exact number of bytes SerializeOld writes.
	PredictSerializedSize() int

	// SerializeOld writes the legacy flat payload, type tag included, at the
	// buffer's write cursor. On error nothing is written.
	SerializeOld(buf *pool.ByteBuffer) error
}

// TypeID returns the 64-bit identifier of f's type tag.
func TypeID(f Filter) uint64 {
	return hash.ID(f.Name())
}

// ToProto wraps f's structured payload in the named envelope used by scan
// requests on the structured-message protocol.
func ToProto(f Filter) (*filterpb.Filter, error) {
	if f == nil {
		return nil, errs.ErrNilFilter
	}

	payload, err := f.Serialize()
	if err != nil {
		return nil, fmt.Errorf("serialize %s: %w", f.Name(), err)
	}

	return &filterpb.Filter{
		Name:             filterpb.String(string(f.Name())),
		SerializedFilter: payload,
	}, nil
}
