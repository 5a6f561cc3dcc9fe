// Package generator turns master data tables into enumerated-type source
// artifacts. Each qualifying table's rows become compile-time constants,
// each non-key column becomes a typed field with an accessor.
//
// The pipeline is: [Select] filters candidate tables by trigger,
// [ValidateShape] gates on a single-column primary key, [Project] reads
// the rows into a field schema and member list, [EmitJava] (and
// optionally [EmitGo]) render the definitions, and [Run] drives the
// whole pass and persists the artifacts.
package generator
