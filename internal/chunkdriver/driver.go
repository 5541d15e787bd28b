// Package chunkdriver implements the chunk driver (C8): the loop that
// wires the framer, scanner, summarizer, type inference, and value
// parsers together, and the pre-processing steps (C9) that run before
// the main loop starts.
//
// Grounded on the teacher's internal/fastparser/chunked.go (the
// buffer-driven read loop shape) and internal/fastparser/parser.go
// (the per-record scan-then-append driving structure), generalized
// here from a struct-binding parser into a columnar one with
// cross-chunk type widening.
package chunkdriver

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shapestone/shape-dlm/internal/column"
	"github.com/shapestone/shape-dlm/internal/framer"
	"github.com/shapestone/shape-dlm/internal/metrics"
	"github.com/shapestone/shape-dlm/internal/preprocess"
	"github.com/shapestone/shape-dlm/internal/scanner"
	"github.com/shapestone/shape-dlm/internal/token"
	"github.com/shapestone/shape-dlm/internal/valueparse"
)

// Options freezes the resolved (defaults already applied) reading
// configuration. pkg/dlm.ReaderOptions maps onto this one-to-one; the
// chunk driver itself never consults anything outside it.
type Options struct {
	Delim     byte // 0 means "guess from the first line"
	Quote     byte
	NoQuote   bool
	Trim      bool
	LZString  bool
	SkipBlank bool
	Comment   []byte
	SkipLines int
	HasHeader bool

	// ChunkBits, if in [14, 36], sizes the framer's initial buffer to
	// 2^ChunkBits bytes, which still grows as needed for a record that
	// does not fit. 0 reads the whole source into the buffer before
	// scanning, so the input is parsed as a single chunk. Any other
	// value uses the framer's own default size.
	ChunkBits int

	NormalizeNames bool
	DetectDates    bool

	Logger  *zap.Logger
	Metrics *metrics.Collector
}

// Result is the chunk driver's output: parallel columns and names,
// per section 6's (columns, names) output contract.
type Result struct {
	Columns []*column.Column
	Names   []string
}

// Run executes the full C8 algorithm over r.
func Run(r io.Reader, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))
	m := opts.Metrics

	fr := framer.New(r, initialBufferSize(opts.ChunkBits))
	if opts.ChunkBits == 0 {
		// Single-chunk mode: buffer the whole source up front so the
		// main loop frames it as one chunk.
		for !fr.AtEOF() {
			if err := fr.Pull(); err != nil {
				return nil, err
			}
		}
	}

	if err := skipLines(fr, opts.SkipLines); err != nil {
		return nil, err
	}

	headerData, headerLastNL, headerPos, atEOF, err := firstSubstantiveLine(fr, opts.Comment, opts.SkipBlank)
	if err != nil {
		return nil, err
	}
	if atEOF {
		return &Result{Columns: nil, Names: nil}, nil
	}

	delim := opts.Delim
	if delim == 0 {
		delim = preprocess.GuessDelimiter(headerData[headerPos : headerLastNL+1])
	}
	params := scanner.Params{
		Delim: delim, Quote: opts.Quote, NoQuote: opts.NoQuote, Trim: opts.Trim,
		LZString: opts.LZString, SkipBlank: opts.SkipBlank, Comment: opts.Comment,
	}
	if params.Quote == 0 && !params.NoQuote {
		params.Quote = '"'
	}

	names, ncols, consumeTo, err := readHeader(headerData, headerPos, params, opts.HasHeader)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved dialect", zap.ByteString("delim", []byte{delim}), zap.Int("ncols", ncols))

	fr.Consume(consumeTo)
	rowCapacity := estimateRowCapacity(fr)

	matrix := token.NewMatrix(rowCapacity, ncols)
	cols := make([]*column.Column, ncols)
	caches := make([]*valueparse.StringCache, ncols)
	for i := range caches {
		caches[i] = &valueparse.StringCache{}
	}

	lineNo := 1
	if opts.HasHeader {
		lineNo = 2
	}
	firstChunk := true

	for {
		start := time.Now()
		data, lastNL, ferr := fr.Frame()
		if ferr != nil {
			return nil, ferr
		}
		if fr.AtEOF() && fr.Len() == 0 {
			break
		}

		matrix.Reset()
		bitmaps := make([]column.Bitmap, ncols)
		for i := range bitmaps {
			bitmaps[i] = column.NewBitmap()
		}

		nrows := 0
		pos := 0
		rowLines := make([]int, 0, rowCapacity)
		for pos <= lastNL {
			row := matrix.Row(nrows)
			lineForRow := lineNo
			newPos, skipped, serr := scanRecordGrowing(fr, row, &data, pos, ncols, params)
			if serr != nil {
				return nil, &LineError{Line: lineNo, Err: serr}
			}
			lineNo++
			pos = newPos
			if skipped {
				continue
			}
			for c := 0; c < ncols; c++ {
				bitmaps[c].Fold(row[c].Kind())
			}
			rowLines = append(rowLines, lineForRow)
			nrows++
		}

		if nrows > 0 {
			widened, err := appendChunk(cols, names, bitmaps, matrix, nrows, data, params, caches, firstChunk, rowCapacity, rowLines)
			if err != nil {
				return nil, err
			}
			firstChunk = false
			if m != nil {
				m.RowsParsed.Add(float64(nrows))
				if widened > 0 {
					m.ColumnsWidened.Add(float64(widened))
				}
			}
		}
		fr.Consume(pos)
		if m != nil {
			m.ChunksRead.Inc()
			m.BytesRead.Add(float64(pos))
			m.ChunkDuration.Observe(time.Since(start).Seconds())
		}
	}

	if opts.DetectDates {
		detectDates(cols)
	}
	finalNames := names
	if opts.NormalizeNames {
		finalNames = make([]string, len(names))
		for i, n := range names {
			finalNames[i] = preprocess.NormalizeName(n)
		}
	}
	return &Result{Columns: cols, Names: finalNames}, nil
}

// scanRecordGrowing calls scanner.ScanRecord, pulling more bytes from
// the framer and retrying in place whenever the scanner reports that
// the only unfinished candidate is a quoted field whose close lies
// past the currently buffered data — the suspend/resume path central
// to the record scanner's contract.
func scanRecordGrowing(fr *framer.Framer, row token.Row, data *[]byte, pos, ncols int, params scanner.Params) (int, bool, error) {
	for {
		newPos, skipped, err := scanner.ScanRecord(row, *data, pos, ncols, params)
		if err != scanner.ErrNeedMoreBytes {
			return newPos, skipped, err
		}
		if fr.AtEOF() {
			return 0, false, &UnterminatedQuoteError{}
		}
		if err := fr.Pull(); err != nil {
			return 0, false, err
		}
		*data = fr.Bytes()
	}
}

func initialBufferSize(chunkBits int) int {
	if chunkBits >= 14 && chunkBits <= 36 {
		return 1 << uint(chunkBits)
	}
	return 0
}

func skipLines(fr *framer.Framer, n int) error {
	remaining := n
	for remaining > 0 {
		data, lastNL, err := fr.Frame()
		if err != nil {
			return err
		}
		if fr.AtEOF() && fr.Len() == 0 {
			return nil
		}
		nl := bytes.IndexByte(data[:lastNL+1], '\n')
		if nl < 0 {
			nl = lastNL
		}
		fr.Consume(nl + 1)
		remaining--
	}
	return nil
}

// firstSubstantiveLine skips leading blank lines and comments,
// pulling more input as needed, and returns the frame containing the
// first real line along with its absolute start offset within that
// frame.
func firstSubstantiveLine(fr *framer.Framer, comment []byte, skipBlank bool) (data []byte, lastNL, pos int, atEOF bool, err error) {
	for {
		data, lastNL, err = fr.Frame()
		if err != nil {
			return nil, 0, 0, false, err
		}
		if fr.AtEOF() && fr.Len() == 0 {
			return nil, 0, 0, true, nil
		}
		bound := data[:lastNL+1]
		p, ok := preprocess.ConsumeLeading(bound, 0, comment, skipBlank)
		if ok {
			return data, lastNL, p, false, nil
		}
		fr.Consume(lastNL + 1)
	}
}

// readHeader materializes column names, either from a real header
// record or by synthesizing X1..Xn from the first data row's column
// count, and returns how far into data the caller should Consume
// (past the header if there was one; not at all if this row is data).
//
// When there is a real header, it also peeks at the first data row to
// apply the header/row column-count reconciliation rule (a row with
// exactly one more field than the header gets an implicit "UNNAMED_0"
// row-name column prepended). The peek is best-effort: if the first
// data row can't be safely read as a plain field split (a multi-line
// quoted first field, most commonly), reconciliation is skipped and
// any genuine mismatch surfaces later as a ColumnCountError from the
// main loop instead.
func readHeader(data []byte, pos int, params scanner.Params, hasHeader bool) (names []string, ncols int, consumeTo int, err error) {
	fields, newPos, herr := scanner.ScanHeader(data, pos, params)
	if herr != nil {
		return nil, 0, 0, herr
	}
	if len(fields) == 0 || (hasHeader && len(fields) == 1 && len(fields[0]) == 0) {
		return nil, 0, 0, &EmptyHeaderError{}
	}
	if !hasHeader {
		ncols = len(fields)
		names = make([]string, ncols)
		for i := range names {
			names[i] = fmt.Sprintf("X%d", i+1)
		}
		return names, ncols, pos, nil
	}

	names = make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	names = preprocess.FillUnnamed(names)

	if rowFields, _, rerr := scanner.ScanHeader(data, newPos, params); rerr == nil && len(rowFields) > 0 {
		if reconciled, ok := preprocess.ReconcileHeaderCount(names, len(rowFields)); ok {
			names = reconciled
		}
	}
	return names, len(names), newPos, nil
}

// estimateRowCapacity counts newlines in the currently buffered
// region to size the first chunk's token matrix, with a floor of 5.
func estimateRowCapacity(fr *framer.Framer) int {
	data := fr.Bytes()
	count := 0
	for _, b := range data {
		if b == '\n' {
			count++
		}
	}
	if count < 5 {
		count = 5
	}
	return count
}
