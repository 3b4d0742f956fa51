package rle

import "strconv"

// Symbol is a cell state as written in a pattern body.
type Symbol byte

const (
	Alive Symbol = 'o'
	Dead  Symbol = 'b'
)

const (
	// RowTerminator closes every encoded row.
	RowTerminator = '$'
	// EndOfPattern closes the pattern body.
	EndOfPattern = '!'
)

func symbolFor(alive bool) Symbol {
	if alive {
		return Alive
	}
	return Dead
}

// Run is a maximal stretch of equal cells within a row.
type Run struct {
	Count  int
	Symbol Symbol
}

// RowRuns splits a row into its full run sequence, trailing dead run
// included. The counts sum to len(row).
func RowRuns(row []bool) []Run {
	if len(row) == 0 {
		return nil
	}
	runs := make([]Run, 0, 4)
	current := row[0]
	count := 1
	for _, cell := range row[1:] {
		if cell == current {
			count++
			continue
		}
		runs = append(runs, Run{Count: count, Symbol: symbolFor(current)})
		current = cell
		count = 1
	}
	return append(runs, Run{Count: count, Symbol: symbolFor(current)})
}

// EncodeRow returns the RLE text for one row, terminator included.
func EncodeRow(row []bool) string {
	return string(AppendRow(nil, row))
}

// AppendRow appends the encoded row to dst. Every run that ends before the
// last cell is written; the final run is written only when it is alive. A
// count of one is never written.
func AppendRow(dst []byte, row []bool) []byte {
	if len(row) == 0 {
		return append(dst, RowTerminator)
	}
	current := row[0]
	count := 1
	for _, cell := range row[1:] {
		if cell == current {
			count++
			continue
		}
		dst = appendRun(dst, Run{Count: count, Symbol: symbolFor(current)})
		current = cell
		count = 1
	}
	if current {
		dst = appendRun(dst, Run{Count: count, Symbol: Alive})
	}
	return append(dst, RowTerminator)
}

func appendRun(dst []byte, run Run) []byte {
	if run.Count > 1 {
		dst = strconv.AppendInt(dst, int64(run.Count), 10)
	}
	return append(dst, byte(run.Symbol))
}
