// Package filter implements scan filters that can be serialized for both
// protocol generations spoken by the remote sorted key-value store.
//
// Every filter satisfies the Filter interface. Which encoding is used depends
// on the protocol the connection negotiated, and is chosen by the caller (or
// by an Encoder configured for that protocol):
//
//   - Structured-message protocol: Serialize returns the filter's protobuf
//     message, and ToProto wraps it in the generic named envelope.
//   - Legacy protocol: SerializeOld writes a flat, manually laid out payload
//     into a caller-provided buffer; PredictSerializedSize returns its exact
//     length so the caller can size the buffer up front.
//
// # Column Pagination
//
// ColumnPaginationFilter limits how many columns of each row a scan returns,
// starting either at a numeric column index or at a column qualifier:
//
//	// columns 20..29 of every row
//	f := filter.NewColumnPaginationFilter(10, 20)
//
//	// up to 10 columns starting at qualifier "q050"
//	f, err := filter.NewColumnPaginationByteOffsetFilter(10, []byte("q050"))
//
// The start point is a StartPoint value holding at most one of the two forms,
// so a filter can never carry both.
//
// # Thread Safety
//
// Filters are immutable after construction and safe for concurrent use.
// A pool.ByteBuffer passed to SerializeOld must not be shared without
// external synchronization.
package filter
