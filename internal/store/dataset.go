package store

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"convexhull/internal/domain"
	"convexhull/internal/logging"
)

// maxLineSize caps a single dataset line. Longer lines are drained and
// skipped like any other malformed record.
const maxLineSize = 1 << 20

// ParseDataset reads "<x> <y>" records from r in order. Lines without exactly
// two tokens, whose tokens are not base-10 integers, or longer than
// maxLineSize are skipped; each skip is logged and returned as a diagnostic.
// Only a failing reader is an error.
func ParseDataset(r io.Reader) (domain.Dataset, []domain.Diagnostic, error) {
	log := logging.Logger()
	br := bufio.NewReaderSize(r, 64*1024)

	var (
		points domain.Dataset
		diags  []domain.Diagnostic
		buf    []byte
	)
	for line := 1; ; line++ {
		text, tooLong, tokens, err := readLine(br, buf[:0])
		buf = text
		if err != nil && err != io.EOF {
			return nil, nil, fmt.Errorf("read dataset: %w", err)
		}
		if err == io.EOF && len(text) == 0 && !tooLong {
			break
		}

		var (
			pt   domain.Point
			diag domain.Diagnostic
			ok   bool
		)
		if tooLong {
			diag = domain.Diagnostic{
				Line:   line,
				Tokens: tokens,
				Err:    fmt.Errorf("%w: line longer than %d bytes", domain.ErrMalformedRecord, maxLineSize),
			}
		} else {
			pt, diag, ok = parseRecord(line, string(text))
		}
		if ok {
			points = append(points, pt)
		} else {
			log.Warn("skipping line", "line", diag.Line, "tokens", diag.Tokens, "err", diag.Err)
			diags = append(diags, diag)
		}
		if err == io.EOF {
			break
		}
	}
	return points, diags, nil
}

// readLine returns the next line of br, newline included, appended to buf.
// A line over maxLineSize is consumed to its end and reported as tooLong
// together with its token count. err is io.EOF on the last line.
func readLine(br *bufio.Reader, buf []byte) (text []byte, tooLong bool, tokens int, err error) {
	var inToken bool
	for {
		var chunk []byte
		chunk, err = br.ReadSlice('\n')
		if !tooLong && len(buf)+len(chunk) > maxLineSize+1 {
			tooLong = true
			tokens, inToken = countTokens(buf, 0, false)
			buf = nil
		}
		if tooLong {
			tokens, inToken = countTokens(chunk, tokens, inToken)
		} else {
			buf = append(buf, chunk...)
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if tooLong {
			return nil, true, tokens, err
		}
		return buf, false, 0, err
	}
}

// countTokens continues a whitespace-separated token count across chunks.
func countTokens(b []byte, n int, inToken bool) (int, bool) {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			inToken = false
		default:
			if !inToken {
				n++
			}
			inToken = true
		}
	}
	return n, inToken
}

func parseRecord(line int, text string) (domain.Point, domain.Diagnostic, bool) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return domain.Point{}, domain.Diagnostic{
			Line:   line,
			Tokens: len(fields),
			Err:    fmt.Errorf("%w: expected 2 values, got %d", domain.ErrMalformedRecord, len(fields)),
		}, false
	}
	x, err := strconv.ParseInt(fields[0], 10, 64)
	if err == nil {
		var y int64
		if y, err = strconv.ParseInt(fields[1], 10, 64); err == nil {
			return domain.Pt(x, y), domain.Diagnostic{}, true
		}
	}
	return domain.Point{}, domain.Diagnostic{
		Line:   line,
		Tokens: len(fields),
		Err:    fmt.Errorf("%w: can't convert coordinates to int: %w", domain.ErrMalformedRecord, err),
	}, false
}

// ReadDataset implements domain.DatasetReader.
func (s *FileStore) ReadDataset(path string) (domain.Dataset, []domain.Diagnostic, error) {
	path = s.resolve(path)
	if err := checkRegular(path); err != nil {
		return nil, nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open dataset %q: %w", path, err)
	}
	defer f.Close()

	points, diags, err := ParseDataset(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%q: %w", path, err)
	}
	logging.Logger().Info("loaded points", "count", len(points), "skipped", len(diags), "path", path)
	return points, diags, nil
}
