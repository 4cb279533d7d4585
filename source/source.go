// Copyright © 2023-2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package source reads the input sequence of motif discovery from files.
// All files could be plain or compressed (.gz, .xz, .zst, .bz2), "-" for stdin.
package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// Formats of input files.
const (
	FormatRaw   = "raw"   // the whole file, line breaks removed
	FormatCSV   = "csv"   // one column of a delimited file
	FormatFastx = "fastx" // FASTA/Q records
)

// DefaultSeparator is the column separator of CSV files exported from MIDI files.
const DefaultSeparator = ", "

// ErrUnknownFormat means an unsupported input format.
var ErrUnknownFormat = errors.New("source: unknown input format")

// ErrInvalidColumn means a negative column index.
var ErrInvalidColumn = errors.New("source: invalid column index (>= 0)")

// Options describes how to read an input file.
type Options struct {
	Format    string // raw, csv, or fastx
	Column    int    // 0-based column index for csv
	Separator string // column separator for csv
}

// DefaultOptions reads the second column of a MIDI CSV file.
var DefaultOptions = Options{
	Format:    FormatCSV,
	Column:    1,
	Separator: DefaultSeparator,
}

// Read reads a sequence from a file according to the options.
func Read(file string, opt *Options) ([]byte, error) {
	switch opt.Format {
	case FormatRaw:
		return ReadRaw(file)
	case FormatCSV:
		return ReadColumn(file, opt.Column, opt.Separator)
	case FormatFastx:
		return ReadFastx(file)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, opt.Format)
	}
}

// ReadRaw reads the whole file and removes line breaks.
func ReadRaw(file string) ([]byte, error) {
	fh, err := xopen.Ropen(file)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	data, err := io.ReadAll(fh)
	if err != nil {
		return nil, err
	}

	s := data[:0]
	for _, b := range data {
		if b == '\n' || b == '\r' {
			continue
		}
		s = append(s, b)
	}
	return s, nil
}

// ReadColumn splits each line by sep, and concatenates values of the given
// 0-based column. Lines with too few columns are skipped.
func ReadColumn(file string, column int, sep string) ([]byte, error) {
	if column < 0 {
		return nil, ErrInvalidColumn
	}
	if sep == "" {
		sep = DefaultSeparator
	}

	fh, err := xopen.Ropen(file)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	s := make([]byte, 0, 1<<20)

	scanner := bufio.NewScanner(fh)
	scanner.Buffer(make([]byte, 0, 64<<10), 16<<20)
	var line string
	var cols []string
	for scanner.Scan() {
		line = strings.TrimRight(scanner.Text(), "\r")
		cols = strings.Split(line, sep)
		if len(cols) <= column {
			continue
		}
		s = append(s, cols[column]...)
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return s, nil
}

// ReadFastx concatenates sequences of all records in a FASTA/Q file.
func ReadFastx(file string) ([]byte, error) {
	fastxReader, err := fastx.NewReader(nil, file, "")
	if err != nil {
		return nil, err
	}

	s := make([]byte, 0, 1<<20)

	var record *fastx.Record
	for {
		record, err = fastxReader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		s = append(s, record.Seq.Seq...)
	}

	return s, nil
}
