package filter

// StartKind identifies which form of start point a StartPoint holds.
type StartKind uint8

const (
	StartNone     StartKind = iota // no start point; pagination begins at the first column
	StartNumeric                   // numeric column index
	StartBoundary                  // column qualifier boundary
)

func (k StartKind) String() string {
	switch k {
	case StartNone:
		return "None"
	case StartNumeric:
		return "Numeric"
	case StartBoundary:
		return "Boundary"
	default:
		return "Unknown"
	}
}

// unsetOffset is the legacy protocol's marker for "no numeric offset".
const unsetOffset int32 = -1

// StartPoint is where column pagination begins: nothing, a numeric column
// index, or a column qualifier. The zero value is StartNone.
type StartPoint struct {
	kind         StartKind
	offset       int32
	columnOffset []byte
}

// NumericStart returns a start point at the given column index.
// The value is kept as given; negative indexes are left for the server to interpret.
func NumericStart(offset int32) StartPoint {
	return StartPoint{kind: StartNumeric, offset: offset}
}

// BoundaryStart returns a start point at the given column qualifier.
//
// A nil columnOffset yields StartNone. A non-nil empty slice is a present,
// empty boundary. The slice is retained, not copied, so callers must not
// modify it afterwards.
func BoundaryStart(columnOffset []byte) StartPoint {
	if columnOffset == nil {
		return StartPoint{}
	}

	return StartPoint{kind: StartBoundary, columnOffset: columnOffset}
}

// Kind returns which form the start point holds.
func (s StartPoint) Kind() StartKind {
	return s.kind
}

// Offset returns the numeric column index and true for a numeric start point.
func (s StartPoint) Offset() (int32, bool) {
	if s.kind != StartNumeric {
		return 0, false
	}

	return s.offset, true
}

// ColumnOffset returns the column qualifier and true for a boundary start point.
func (s StartPoint) ColumnOffset() ([]byte, bool) {
	if s.kind != StartBoundary {
		return nil, false
	}

	return s.columnOffset, true
}

// LegacyOffset returns the offset as the legacy protocol transmits it:
// the numeric index for a numeric start point, -1 otherwise.
func (s StartPoint) LegacyOffset() int32 {
	if s.kind != StartNumeric {
		return unsetOffset
	}

	return s.offset
}
