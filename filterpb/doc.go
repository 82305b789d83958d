// Package filterpb holds the structured-message schema shared with the remote
// store for scan filters.
//
// The messages mirror the store's proto2 definitions:
//
//	message Filter {
//	  required string name = 1;
//	  optional bytes serialized_filter = 2;
//	}
//
//	message ColumnPaginationFilter {
//	  required int32 limit = 1;
//	  optional int32 offset = 2;
//	  optional bytes column_offset = 3;
//	}
//
// Field presence follows proto2 rules: scalar fields are pointers, and a bytes
// field is present when the slice is non-nil, including a non-nil empty slice.
// Marshal writes fields in field-number order, so output is deterministic.
package filterpb
