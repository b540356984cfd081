// Package listing writes a linear instruction listing of a program image.
package listing

import (
	"fmt"
	"hash/crc32"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/opcode"
)

const (
	dataBytesPerLine = 8
	codeColumnWidth  = 20
)

// Writer decodes every 2 byte word of a program in address order. Data
// embedded in the program is listed as the instruction it decodes to, or
// as a DW directive if it does not decode.
type Writer struct {
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	OffsetComments bool // append address and opcode bytes as comment
}

// New creates a new listing writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Write writes the listing of the program image. Bytes that do not fit
// into memory are not listed.
func (w Writer) Write(program []byte) error {
	if err := w.writeCommentHeader(program); err != nil {
		return err
	}

	image := program
	if len(image) > memory.MaxProgramSize {
		image = image[:memory.MaxProgramSize]
	}

	words := len(image) / 2
	for i := range words {
		offset := i * 2
		address := uint16(memory.ProgramStart + offset)
		word := uint16(image[offset])<<8 | uint16(image[offset+1])

		// undecodable words are formatted as DW by the instruction itself
		ins, _ := opcode.Decode(word)
		if err := w.writeLine(ins.String(), address, image[offset:offset+2]); err != nil {
			return err
		}
	}

	if len(image)%2 == 1 {
		if err := w.bundleDataWrites(image[len(image)-1:]); err != nil {
			return err
		}
	}

	if dropped := len(program) - len(image); dropped > 0 {
		if _, err := fmt.Fprintf(w.writer, "\n; Truncated: %d bytes beyond the end of memory\n", dropped); err != nil {
			return fmt.Errorf("writing truncation note: %w", err)
		}
	}
	return nil
}

// writeCommentHeader writes the CRC32 checksum and size as comments.
func (w Writer) writeCommentHeader(program []byte) error {
	if _, err := fmt.Fprintf(w.writer, "; CRC32 checksum: %08x\n", crc32.ChecksumIEEE(program)); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Size: %d bytes\n\n", len(program)); err != nil {
		return fmt.Errorf("writing size: %w", err)
	}
	return nil
}

func (w Writer) writeLine(code string, address uint16, data []byte) error {
	var err error
	if w.options.OffsetComments {
		_, err = fmt.Fprintf(w.writer, "  %-*s ; $%03X % X\n", codeColumnWidth, code, address, data)
	} else {
		_, err = fmt.Fprintf(w.writer, "  %s\n", code)
	}
	if err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// bundleDataWrites writes data bytes as DB directives, dataBytesPerLine
// bytes per line.
func (w Writer) bundleDataWrites(data []byte) error {
	remaining := len(data)
	for i := 0; remaining > 0; {
		toWrite := min(remaining, dataBytesPerLine)

		buf := &strings.Builder{}
		buf.WriteString("  DB ")
		for j := range toWrite {
			fmt.Fprintf(buf, "$%02X, ", data[i+j])
		}
		line := strings.TrimRight(buf.String(), ", ")

		if _, err := fmt.Fprintf(w.writer, "%s\n", line); err != nil {
			return fmt.Errorf("writing data line: %w", err)
		}

		i += toWrite
		remaining -= toWrite
	}
	return nil
}
