// Package masterdata supplies the schema-source boundary for enum
// generation: table and column descriptors plus forward-only row cursors
// over small, static reference-data tables.
//
// The [Source] interface is the only contract the generator core depends
// on. The [DBSource] implementation backs it with database/sql and knows
// how to introspect tables, columns, and primary keys for the sqlite,
// mysql, and postgres dialects. Column types are canonicalized at this
// boundary (for example TEXT and VARCHAR both report "String", TINYINT
// reports "Byte"), so consumers operate on type names alone and never
// touch driver-specific scan types.
//
// This package imports only [database/sql] and does not depend on any
// SQL driver. The consumer must import a driver (e.g. modernc.org/sqlite)
// matching the dialect passed to [Open].
package masterdata
