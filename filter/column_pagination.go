package filter

import (
	"fmt"

	"github.com/arloliu/scanfilter/errs"
	"github.com/arloliu/scanfilter/filterpb"
	"github.com/arloliu/scanfilter/legacy"
	"github.com/arloliu/scanfilter/pool"
	"github.com/rs/zerolog"
)

// ColumnPaginationName is the type tag of ColumnPaginationFilter.
const ColumnPaginationName = "org.apache.hadoop.hbase.filter.ColumnPaginationByteOffsetFilter"

var columnPaginationName = []byte(ColumnPaginationName)

// ColumnPaginationFilter returns at most limit columns of each row, starting
// at its StartPoint.
//
// Limit and offset values are not validated; zero and negative values are
// sent as given and interpreted by the server.
type ColumnPaginationFilter struct {
	limit int32
	start StartPoint
}

var (
	_ Filter                     = (*ColumnPaginationFilter)(nil)
	_ fmt.Stringer               = (*ColumnPaginationFilter)(nil)
	_ zerolog.LogObjectMarshaler = (*ColumnPaginationFilter)(nil)
)

// NewColumnPaginationFilter creates a filter returning limit columns starting
// at the numeric column index offset.
func NewColumnPaginationFilter(limit, offset int32) *ColumnPaginationFilter {
	return &ColumnPaginationFilter{limit: limit, start: NumericStart(offset)}
}

// NewColumnPaginationByteOffsetFilter creates a filter returning limit columns
// starting at the column qualifier columnOffset.
//
// columnOffset is retained without copying. A nil columnOffset gives a filter
// with no start point. It returns errs.ErrColumnOffsetTooLong if columnOffset
// cannot be represented by the legacy length prefix.
func NewColumnPaginationByteOffsetFilter(limit int32, columnOffset []byte) (*ColumnPaginationFilter, error) {
	if len(columnOffset) > legacy.MaxByteArrayLength {
		return nil, fmt.Errorf("%w: %d bytes, max %d", errs.ErrColumnOffsetTooLong, len(columnOffset), legacy.MaxByteArrayLength)
	}

	return &ColumnPaginationFilter{limit: limit, start: BoundaryStart(columnOffset)}, nil
}

// NewColumnPaginationLimitFilter creates a filter returning the first limit
// columns of each row.
func NewColumnPaginationLimitFilter(limit int32) *ColumnPaginationFilter {
	return &ColumnPaginationFilter{limit: limit}
}

// Limit returns the maximum number of columns per row.
func (f *ColumnPaginationFilter) Limit() int32 {
	return f.limit
}

// StartPoint returns where pagination begins.
func (f *ColumnPaginationFilter) StartPoint() StartPoint {
	return f.start
}

// Name returns ColumnPaginationName.
func (f *ColumnPaginationFilter) Name() []byte {
	return columnPaginationName
}

// Serialize returns the ColumnPaginationFilter structured message.
//
// The offset field is only set for a numeric start point greater than -1,
// and column_offset only for a boundary start point (empty boundaries
// included).
func (f *ColumnPaginationFilter) Serialize() ([]byte, error) {
	return f.message().Marshal()
}

func (f *ColumnPaginationFilter) message() *filterpb.ColumnPaginationFilter {
	msg := &filterpb.ColumnPaginationFilter{Limit: filterpb.Int32(f.limit)}
	if offset, ok := f.start.Offset(); ok && offset > unsetOffset {
		msg.Offset = filterpb.Int32(offset)
	}
	if columnOffset, ok := f.start.ColumnOffset(); ok {
		msg.ColumnOffset = columnOffset
	}

	return msg
}

// legacyLayout describes the legacy payload:
//
//	1 byte   type tag length
//	N bytes  type tag
//	4 bytes  limit, big-endian
//	4 bytes  offset, big-endian, -1 when there is no numeric start point
//	3+M      column offset as a length-prefixed byte array, boundary only
func (f *ColumnPaginationFilter) legacyLayout() legacy.Layout {
	layout := make(legacy.Layout, 0, 4)
	layout = append(layout,
		legacy.TypeTag(columnPaginationName),
		legacy.Int32(f.limit),
		legacy.Int32(f.start.LegacyOffset()),
	)
	if columnOffset, ok := f.start.ColumnOffset(); ok {
		layout = append(layout, legacy.ByteArray(columnOffset))
	}

	return layout
}

// PredictSerializedSize returns the exact size of the legacy payload.
func (f *ColumnPaginationFilter) PredictSerializedSize() int {
	return f.legacyLayout().Size()
}

// SerializeOld writes the legacy payload at buf's write cursor.
func (f *ColumnPaginationFilter) SerializeOld(buf *pool.ByteBuffer) error {
	return f.legacyLayout().AppendTo(buf)
}

// String renders the filter for debugging. It is not a wire format.
func (f *ColumnPaginationFilter) String() string {
	columnOffset, _ := f.start.ColumnOffset()

	return fmt.Sprintf("ColumnPaginationFilter(limit=%d, offset=%d, columnOffset=%s)",
		f.limit, f.start.LegacyOffset(), prettyBytes(columnOffset))
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (f *ColumnPaginationFilter) MarshalZerologObject(e *zerolog.Event) {
	e.Int32("limit", f.limit)
	switch f.start.Kind() {
	case StartNumeric:
		e.Int32("offset", f.start.offset)
	case StartBoundary:
		e.Str("column_offset", prettyBytes(f.start.columnOffset))
	case StartNone:
	}
}
