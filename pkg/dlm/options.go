package dlm

import (
	"go.uber.org/zap"

	"github.com/shapestone/shape-dlm/internal/chunkdriver"
	"github.com/shapestone/shape-dlm/internal/metrics"
)

// ReaderOptions configures delimited-text reading behavior.
type ReaderOptions struct {
	// Delimiter is the field separator. Zero means "guess from the
	// first line" via GuessDelimiter's frequency heuristic.
	// Default: 0 (guess)
	Delimiter byte

	// Quote is the quote byte. Zero defaults to '"' unless NoQuote is
	// set.
	// Default: '"'
	Quote byte

	// NoQuote disables quote handling entirely: every byte, including
	// the quote character, is treated as ordinary field content.
	// Default: false
	NoQuote bool

	// TrimSpace strips leading and trailing ASCII spaces from every
	// unquoted field before shape classification.
	// Default: false
	TrimSpace bool

	// LZString treats a leading-zero numeric field ("007") as a string
	// instead of an integer, since a leading zero usually signals an
	// identifier rather than a number.
	// Default: false
	LZString bool

	// SkipBlankLines ignores lines that are empty or all whitespace.
	// Default: false
	SkipBlankLines bool

	// Comment, if non-empty, marks a whole-line comment prefix. It must
	// not contain a line break.
	// Default: nil (disabled)
	Comment []byte

	// SkipLines discards this many leading physical lines, unconditionally,
	// before any header or dialect detection runs.
	// Default: 0
	SkipLines int

	// HasHeader indicates the first substantive line names the
	// columns. When false, columns are named X1..Xn from the first
	// data row's field count.
	// Default: true
	HasHeader bool

	// ChunkBits sizes the initial read buffer to 2^ChunkBits bytes,
	// when in [14, 36]; the buffer still grows on demand for a record
	// that does not fit. 0 reads the whole source into memory and
	// parses it as a single chunk. Validate rejects any other value.
	// Default: 0
	ChunkBits int

	// NormalizeNames rewrites column names into valid identifiers
	// (non-identifier bytes become underscores, leading digits and
	// reserved keywords get an underscore prefix).
	// Default: false
	NormalizeNames bool

	// DetectDates runs a post-processing pass over finished string
	// columns to promote ones that are entirely date or datetime
	// literals into DateType/DatetimeType.
	// Default: true
	DetectDates bool

	// Logger receives structured diagnostics as the reader works
	// through a source. A nil Logger discards them.
	// Default: nil
	Logger *zap.Logger

	// Metrics, if set, receives prometheus counters and histograms for
	// chunks read, rows parsed, bytes read, and columns widened.
	// Default: nil
	Metrics *metrics.Collector
}

// DefaultOptions returns the default reader configuration: the
// delimiter is guessed from the first line (Delimiter 0), '"' quotes
// fields, the first line is a header, and date detection is on.
// ReadCSV and ReadTSV set Delimiter explicitly for the common cases.
func DefaultOptions() ReaderOptions {
	return ReaderOptions{
		Quote:       '"',
		HasHeader:   true,
		DetectDates: true,
	}
}

// Validate checks the options for internally inconsistent settings,
// returning an InvalidConfigError naming the offending field.
func (o ReaderOptions) Validate() error {
	if o.Delimiter != 0 && !validByteDelim(o.Delimiter) {
		return &InvalidConfigError{Field: "Delimiter", Reason: "must not be a quote, CR, or LF"}
	}
	if !o.NoQuote && o.Quote != 0 && o.Quote == o.Delimiter {
		return &InvalidConfigError{Field: "Quote", Reason: "must differ from Delimiter"}
	}
	if o.TrimSpace && o.Delimiter == ' ' {
		return &InvalidConfigError{Field: "TrimSpace", Reason: "cannot be used with a space Delimiter"}
	}
	if o.TrimSpace && !o.NoQuote && o.Quote == ' ' {
		return &InvalidConfigError{Field: "TrimSpace", Reason: "cannot be used with a space Quote"}
	}
	if len(o.Comment) > 0 {
		for _, b := range o.Comment {
			if b == '\r' || b == '\n' {
				return &InvalidConfigError{Field: "Comment", Reason: "must not contain a line break"}
			}
		}
	}
	if o.ChunkBits != 0 && (o.ChunkBits < 14 || o.ChunkBits > 36) {
		return &InvalidConfigError{Field: "ChunkBits", Reason: "must be 0 or in [14, 36]"}
	}
	if o.SkipLines < 0 {
		return &InvalidConfigError{Field: "SkipLines", Reason: "must not be negative"}
	}
	return nil
}

func validByteDelim(b byte) bool {
	return b != '"' && b != '\r' && b != '\n'
}

func (o ReaderOptions) toChunkDriver() chunkdriver.Options {
	return chunkdriver.Options{
		Delim:          o.Delimiter,
		Quote:          o.Quote,
		NoQuote:        o.NoQuote,
		Trim:           o.TrimSpace,
		LZString:       o.LZString,
		SkipBlank:      o.SkipBlankLines,
		Comment:        o.Comment,
		SkipLines:      o.SkipLines,
		HasHeader:      o.HasHeader,
		ChunkBits:      o.ChunkBits,
		NormalizeNames: o.NormalizeNames,
		DetectDates:    o.DetectDates,
		Logger:         o.Logger,
		Metrics:        o.Metrics,
	}
}
