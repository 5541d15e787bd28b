// Package dlm reads character-delimited tabular text (CSV, TSV, and
// other single-byte-delimiter formats) into typed, column-major
// tables without a caller-supplied schema. Types are inferred
// per-column from the data itself and widened across chunks as wider
// shapes are discovered, so a single pass over arbitrarily large
// input produces a Table with the narrowest type each column will
// support end to end.
//
// ReadCSV and ReadTSV cover the common fixed-dialect cases; ReadDelim
// takes a full ReaderOptions for everything else, including
// delimiter guessing, comment/blank-line handling, and dialect
// quirks like disabling quoting entirely.
package dlm
