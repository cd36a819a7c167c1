package table

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const bufSize = 4 << 20 // 4 MiB

// Load reads a CSV file with a header row into a Table. Field types are
// inferred per cell with Parse.
func Load(path string) (Table, error) {
	in, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, ErrNotFound(err, "input %s not found", path)
		}
		return Table{}, ErrIO(err, "open input %s", path)
	}
	defer in.Close()

	return Read(bufio.NewReaderSize(in, bufSize))
}

// Read decodes CSV from r into a Table.
func Read(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are reported as SchemaError below

	/* Header ------------------------------------------------------------- */
	header, err := reader.Read()
	if err == io.EOF {
		return Table{}, ErrSchema("input has no header row")
	}
	if err != nil {
		return Table{}, ErrIO(err, "read header")
	}
	cols := make([]Column, len(header))
	for i, name := range header {
		cols[i].Name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}

	/* Rows --------------------------------------------------------------- */
	rowNum := 1 // header already counted
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return Table{}, ErrIO(err, "read row %d", rowNum)
		}
		if len(row) != len(cols) {
			return Table{}, ErrSchema("row %d has %d fields, header has %d", rowNum, len(row), len(cols))
		}
		for i, field := range row {
			cols[i].Values = append(cols[i].Values, Parse(field))
		}
	}
	return build(cols)
}

// Save writes t as CSV to path, creating missing parent directories.
func Save(t Table, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ErrIO(err, "create output directory %s", dir)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return ErrIO(err, "create output %s", path)
	}

	bw := bufio.NewWriterSize(out, bufSize)
	if err := Write(bw, t); err != nil {
		out.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		out.Close()
		return ErrIO(err, "flush %s", path)
	}
	if err := out.Close(); err != nil {
		return ErrIO(err, "close %s", path)
	}
	return nil
}

// Write encodes t as CSV to w.
func Write(w io.Writer, t Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.Names()); err != nil {
		return ErrIO(err, "write header")
	}
	const flushEvery = 100_000
	record := make([]string, t.Width())
	for r := 0; r < t.Len(); r++ {
		for j, c := range t.cols {
			record[j] = c.Values[r].Text()
		}
		if err := writer.Write(record); err != nil {
			return ErrIO(err, "write row %d", r+2)
		}
		if (r+1)%flushEvery == 0 {
			writer.Flush()
			if err := writer.Error(); err != nil {
				return ErrIO(err, "flush")
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return ErrIO(err, "flush")
	}
	return nil
}
