// Package scanfilter provides column pagination filters for scans against a
// sorted key-value store, serializable for both the structured-message
// protocol and the legacy flat protocol of the store's RPC layer.
//
// # Basic Usage
//
// Paginating by column index:
//
//	import "github.com/arloliu/scanfilter"
//
//	// columns 20..29 of every row
//	f := scanfilter.NewColumnPagination(10, 20)
//
//	enc, _ := scanfilter.NewEncoder(format.ProtocolProtobuf)
//	payload, _ := enc.Encode(f)
//
// Paginating from a column qualifier on a legacy connection:
//
//	f, err := scanfilter.NewColumnPaginationFrom(10, []byte("q050"))
//	if err != nil {
//	    return err
//	}
//
//	buf := pool.GetRequestBuffer()
//	defer pool.PutRequestBuffer(buf)
//	buf.Grow(f.PredictSerializedSize())
//	if err := f.SerializeOld(buf); err != nil {
//	    return err
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the filter
// package. The wire formats live in filterpb (structured messages) and
// legacy (flat layouts); pool provides the buffers legacy payloads are
// written into.
package scanfilter

import (
	"github.com/arloliu/scanfilter/filter"
	"github.com/arloliu/scanfilter/format"
)

// NewColumnPagination creates a filter returning limit columns of each row,
// starting at the numeric column index offset.
func NewColumnPagination(limit, offset int32) *filter.ColumnPaginationFilter {
	return filter.NewColumnPaginationFilter(limit, offset)
}

// NewColumnPaginationFrom creates a filter returning limit columns of each
// row, starting at the column qualifier columnOffset.
//
// See filter.NewColumnPaginationByteOffsetFilter for ownership and length rules.
func NewColumnPaginationFrom(limit int32, columnOffset []byte) (*filter.ColumnPaginationFilter, error) {
	return filter.NewColumnPaginationByteOffsetFilter(limit, columnOffset)
}

// NewEncoder creates a filter encoder for the given protocol version.
//
// Additional options (logger, registry, buffer pool) are applied after the
// protocol, so a later filter.WithProtocol overrides it.
func NewEncoder(protocol format.ProtocolVersion, opts ...filter.EncoderOption) (*filter.Encoder, error) {
	all := make([]filter.EncoderOption, 0, len(opts)+1)
	all = append(all, filter.WithProtocol(protocol))
	all = append(all, opts...)

	return filter.NewEncoder(all...)
}
