// Package source supplies positional data sources that back paging lists.
//
// A PositionalSource knows how many items it holds and can return any
// contiguous range of them by position. The package provides:
//
//   - SliceSource  – an in-memory source over a slice.
//   - SQLSource    – a database/sql source paging one table with LIMIT/OFFSET.
//   - Instrumented – a wrapper recording Prometheus metrics for any source.
//
// and the glue to the paging package:
//
//   - NewLoader    – adapts a source to paging.Loader for ContiguousList.LoadAround.
//   - InitialList  – loads one page around a position and returns a growing
//     ContiguousList padded to the source's total size.
//   - Frozen       – the same, returning an immutable NullPaddedList.
//
// Errors:
//
//	ErrNegativeRange – a negative start or count was requested.
//	ErrNilSource     – a nil source was passed to a constructor.
//	ErrInvalidTable  – an SQL identifier failed validation.
package source
