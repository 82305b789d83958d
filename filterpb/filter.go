package filterpb

import (
	"fmt"

	"github.com/arloliu/scanfilter/errs"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	columnPaginationLimitField        protowire.Number = 1
	columnPaginationOffsetField       protowire.Number = 2
	columnPaginationColumnOffsetField protowire.Number = 3

	filterNameField             protowire.Number = 1
	filterSerializedFilterField protowire.Number = 2
)

// Int32 returns a pointer to v, for setting optional fields.
func Int32(v int32) *int32 {
	return &v
}

// String returns a pointer to v, for setting optional fields.
func String(v string) *string {
	return &v
}

// ColumnPaginationFilter is the structured form of the column pagination filter.
type ColumnPaginationFilter struct {
	Limit        *int32
	Offset       *int32
	ColumnOffset []byte
}

func (m *ColumnPaginationFilter) GetLimit() int32 {
	if m != nil && m.Limit != nil {
		return *m.Limit
	}

	return 0
}

func (m *ColumnPaginationFilter) GetOffset() int32 {
	if m != nil && m.Offset != nil {
		return *m.Offset
	}

	return 0
}

func (m *ColumnPaginationFilter) GetColumnOffset() []byte {
	if m != nil {
		return m.ColumnOffset
	}

	return nil
}

// HasOffset reports whether the offset field is present.
func (m *ColumnPaginationFilter) HasOffset() bool {
	return m != nil && m.Offset != nil
}

// HasColumnOffset reports whether the column_offset field is present.
func (m *ColumnPaginationFilter) HasColumnOffset() bool {
	return m != nil && m.ColumnOffset != nil
}

// Reset clears all fields.
func (m *ColumnPaginationFilter) Reset() {
	*m = ColumnPaginationFilter{}
}

// Size returns the encoded size of the message.
func (m *ColumnPaginationFilter) Size() int {
	n := 0
	if m.Limit != nil {
		n += protowire.SizeTag(columnPaginationLimitField) + sizeInt32(*m.Limit)
	}
	if m.Offset != nil {
		n += protowire.SizeTag(columnPaginationOffsetField) + sizeInt32(*m.Offset)
	}
	if m.ColumnOffset != nil {
		n += protowire.SizeTag(columnPaginationColumnOffsetField) + protowire.SizeBytes(len(m.ColumnOffset))
	}

	return n
}

// Marshal encodes the message. The required limit field must be set.
func (m *ColumnPaginationFilter) Marshal() ([]byte, error) {
	return m.MarshalAppend(make([]byte, 0, m.Size()))
}

// MarshalAppend appends the encoded message to b.
func (m *ColumnPaginationFilter) MarshalAppend(b []byte) ([]byte, error) {
	if m.Limit == nil {
		return nil, fmt.Errorf("ColumnPaginationFilter.limit: %w", errs.ErrMissingRequiredField)
	}

	b = protowire.AppendTag(b, columnPaginationLimitField, protowire.VarintType)
	b = appendInt32(b, *m.Limit)
	if m.Offset != nil {
		b = protowire.AppendTag(b, columnPaginationOffsetField, protowire.VarintType)
		b = appendInt32(b, *m.Offset)
	}
	if m.ColumnOffset != nil {
		b = protowire.AppendTag(b, columnPaginationColumnOffsetField, protowire.BytesType)
		b = protowire.AppendBytes(b, m.ColumnOffset)
	}

	return b, nil
}

// Unmarshal decodes b into m, replacing its contents. Unknown fields are skipped.
func (m *ColumnPaginationFilter) Unmarshal(b []byte) error {
	m.Reset()

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return parseError("ColumnPaginationFilter", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == columnPaginationLimitField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return parseError("ColumnPaginationFilter.limit", protowire.ParseError(n))
			}
			m.Limit = Int32(int32(v)) //nolint:gosec
			b = b[n:]
		case num == columnPaginationOffsetField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return parseError("ColumnPaginationFilter.offset", protowire.ParseError(n))
			}
			m.Offset = Int32(int32(v)) //nolint:gosec
			b = b[n:]
		case num == columnPaginationColumnOffsetField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return parseError("ColumnPaginationFilter.column_offset", protowire.ParseError(n))
			}
			m.ColumnOffset = append([]byte{}, v...)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return parseError("ColumnPaginationFilter", protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if m.Limit == nil {
		return fmt.Errorf("ColumnPaginationFilter.limit: %w", errs.ErrMissingRequiredField)
	}

	return nil
}

// Filter is the generic envelope carrying a named, serialized filter.
type Filter struct {
	Name             *string
	SerializedFilter []byte
}

func (m *Filter) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}

	return ""
}

func (m *Filter) GetSerializedFilter() []byte {
	if m != nil {
		return m.SerializedFilter
	}

	return nil
}

// Reset clears all fields.
func (m *Filter) Reset() {
	*m = Filter{}
}

// Size returns the encoded size of the message.
func (m *Filter) Size() int {
	n := 0
	if m.Name != nil {
		n += protowire.SizeTag(filterNameField) + protowire.SizeBytes(len(*m.Name))
	}
	if m.SerializedFilter != nil {
		n += protowire.SizeTag(filterSerializedFilterField) + protowire.SizeBytes(len(m.SerializedFilter))
	}

	return n
}

// Marshal encodes the message. The required name field must be set.
func (m *Filter) Marshal() ([]byte, error) {
	if m.Name == nil {
		return nil, fmt.Errorf("Filter.name: %w", errs.ErrMissingRequiredField)
	}

	b := make([]byte, 0, m.Size())
	b = protowire.AppendTag(b, filterNameField, protowire.BytesType)
	b = protowire.AppendString(b, *m.Name)
	if m.SerializedFilter != nil {
		b = protowire.AppendTag(b, filterSerializedFilterField, protowire.BytesType)
		b = protowire.AppendBytes(b, m.SerializedFilter)
	}

	return b, nil
}

// Unmarshal decodes b into m, replacing its contents. Unknown fields are skipped.
func (m *Filter) Unmarshal(b []byte) error {
	m.Reset()

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return parseError("Filter", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == filterNameField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return parseError("Filter.name", protowire.ParseError(n))
			}
			m.Name = String(v)
			b = b[n:]
		case num == filterSerializedFilterField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return parseError("Filter.serialized_filter", protowire.ParseError(n))
			}
			m.SerializedFilter = append([]byte{}, v...)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return parseError("Filter", protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if m.Name == nil {
		return fmt.Errorf("Filter.name: %w", errs.ErrMissingRequiredField)
	}

	return nil
}

// int32 values are sign-extended to 64 bits on the wire, so negatives take 10 bytes.
func appendInt32(b []byte, v int32) []byte {
	return protowire.AppendVarint(b, uint64(int64(v))) //nolint:gosec
}

func sizeInt32(v int32) int {
	return protowire.SizeVarint(uint64(int64(v))) //nolint:gosec
}

func parseError(field string, err error) error {
	return fmt.Errorf("%s: %w: %w", field, errs.ErrInvalidMessage, err)
}
