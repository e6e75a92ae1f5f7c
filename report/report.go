// Package report formats probed struct offsets and library
// constants as the text a binding generator pastes into its
// per-version configuration file.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/go-version"
)

// ErrNoVersion is returned when a report
// has no library version to label it with.
var ErrNoVersion = errors.New("report: missing library version")

// Field is the byte offset of one member
// inside a C structure.
type Field struct {
	// Struct and Member name the C structure
	// and its field, e.g. AVStream and codecpar.
	Struct string
	Member string
	// Key is the Config field the offset is
	// assigned to in the emitted literal.
	Key    string
	Offset uintptr
	// StructSize is the size of the whole
	// structure. It is not printed.
	StructSize uintptr
}

// Constant is a named integer taken
// from the library headers.
type Constant struct {
	Name  string
	Value int64
	// Indent is written before the name and
	// Width left-pads the name column.
	Indent string
	Width  int
}

// Block is a run of constant lines
// sharing the same separator.
type Block struct {
	Sep       string
	Constants []Constant
}

// Report holds everything printed for one
// build of the library, in print order.
type Report struct {
	Version *version.Version
	Fields  []Field
	Blocks  []Block
}

// Major returns the major version label
// of the report.
func (r *Report) Major() (int, error) {
	if r.Version == nil {
		return 0, ErrNoVersion
	}

	return r.Version.Segments()[0], nil
}

// Bytes renders the report.
func (r *Report) Bytes() ([]byte, error) {
	major, err := r.Major()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("var V")
	buf.WriteString(strconv.Itoa(major))
	buf.WriteString(" = &Config{")

	for i, field := range r.Fields {
		if i > 0 {
			buf.WriteString(", \n")
			buf.WriteString(fieldIndent(i))
		}

		buf.WriteString(field.Key)
		buf.WriteString(": ")
		buf.WriteString(strconv.FormatUint(uint64(field.Offset), 10))
	}

	buf.WriteString("\n}\n")

	for _, block := range r.Blocks {
		for _, c := range block.Constants {
			fmt.Fprintf(&buf, "%s%-*s%s%d\n",
				c.Indent, c.Width, c.Name, block.Sep, c.Value)
		}
	}

	return buf.Bytes(), nil
}

// WriteTo writes the rendered report to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	data, err := r.Bytes()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("couldn't write the report: %w", err)
	}

	return int64(n), nil
}

// fieldIndent returns the prefix of the i-th Config member line.
// The second member is tab-indented, every later one gets one space.
func fieldIndent(i int) string {
	if i == 1 {
		return "\t"
	}

	return " "
}
