package loader

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// table is a parsed delimited file with its data records and their line numbers.
type table struct {
	name    string
	sep     rune
	records [][]string
	lines   []int
}

// detectSeparator picks ';', tab or ',' from the first non-empty, non-comment line.
func detectSeparator(data []byte) rune {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch {
		case strings.ContainsRune(line, ';'):
			return ';'
		case strings.ContainsRune(line, '\t'):
			return '\t'
		default:
			return ','
		}
	}
	return ','
}

// readTable parses r, dropping a header row whose first field is not an integer.
func readTable(name string, r io.Reader, minFields int) (*table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", name, err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	t := &table{name: name, sep: detectSeparator(data)}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = t.sep
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: parse %s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(rec) {
			continue
		}
		if first {
			first = false
			if _, err := strconv.Atoi(strings.TrimSpace(rec[0])); err != nil {
				continue
			}
		}
		if len(rec) < minFields {
			return nil, fmt.Errorf("%w: %s line %d: %d fields, want %d", ErrMalformedRow, name, line, len(rec), minFields)
		}
		t.records = append(t.records, rec)
		t.lines = append(t.lines, line)
	}
	if len(t.records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTable, name)
	}
	return t, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// intAt parses field i of record k.
func (t *table) intAt(k, i int) (int, error) {
	s := strings.TrimSpace(t.records[k][i])
	v, err := strconv.Atoi(s)
	if err != nil {
		// Spreadsheet exports write integral IDs as "3.0".
		f, ferr := t.floatAt(k, i)
		if ferr != nil || f != float64(int(f)) {
			return 0, t.fieldErr(k, i, s)
		}
		return int(f), nil
	}
	return v, nil
}

// floatAt parses field i of record k, accepting a decimal comma when the
// separator allows it.
func (t *table) floatAt(k, i int) (float64, error) {
	s := strings.TrimSpace(t.records[k][i])
	if t.sep != ',' {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, t.fieldErr(k, i, t.records[k][i])
	}
	return v, nil
}

func (t *table) fieldErr(k, i int, raw string) error {
	return fmt.Errorf("%w: %s line %d field %d: %q", ErrMalformedRow, t.name, t.lines[k], i+1, raw)
}
