// Package lvpage is an in-memory toolkit for windowed pagination: logical
// sequences of known size of which only one contiguous window is loaded.
//
// What is inside?
//
//	paging/  NullPaddedList (frozen) and ContiguousList (growing) behind the
//	           PagedList / Contiguous interfaces, with snapshots, change
//	           callbacks and Loader-driven prefetching
//	source/  positional data sources (in-memory slice, database/sql table),
//	           Prometheus instrumentation and the glue that builds an initial
//	           padded window around a position
//	cmd/lvpage  CLI: seed an SQLite table and print padded windows over it
//
// Quick picture of a 2+3+1 list:
//
//	index:  0  1  2  3  4  5
//	value:  _  _  a  b  c  _
//
// Get(0), Get(1) and Get(5) report "not loaded"; Get(6) is ErrIndexOutOfBounds.
//
//	go get github.com/katalvlaran/lvpage
package lvpage
