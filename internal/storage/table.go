package storage

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// MinColumns is the number of leading columns read from a marker table:
// time, x and y. Further columns are accepted and ignored.
const MinColumns = 3

// ParseTable reads a whitespace-delimited numeric table. Blank lines and
// lines starting with '#' are skipped. Every row must hold the same number of
// columns, at least MinColumns; only the first MinColumns are returned. NaN
// and infinite values are rejected.
func ParseTable(r io.Reader) ([][MinColumns]float64, error) {
	rows := make([][MinColumns]float64, 0, 256)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line, width := 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < MinColumns {
			return nil, fmt.Errorf("line %d: %d columns, want at least %d: %w", line, len(fields), MinColumns, ErrMalformed)
		}
		if width == 0 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("line %d: %d columns, previous rows have %d: %w", line, len(fields), width, ErrMalformed)
		}

		var row [MinColumns]float64
		for i := 0; i < MinColumns; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %q: %w", line, i+1, fields[i], ErrMalformed)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("line %d column %d: non-finite value %q: %w", line, i+1, fields[i], ErrMalformed)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
