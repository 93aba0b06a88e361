// Package export writes the rendered assembly and the label table to plain
// text, and reads a label file back in. It is the boundary layer between the
// core's render lines and files on disk, grounded on the source project's
// own exporter: one text line per render line, plus a simple label list.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/retroenv/c64disasm/internal/formatter"
	"github.com/retroenv/c64disasm/internal/label"
	"github.com/retroenv/c64disasm/internal/pipeline"
)

// WriteAsm renders lines through f and writes one text line per render line.
func WriteAsm(w io.Writer, lines []pipeline.Line, f formatter.Formatter) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		text, err := renderLine(l, f)
		if err != nil {
			return err
		}
		if _, err := bw.WriteString(text + "\n"); err != nil {
			return fmt.Errorf("writing asm line: %w", err)
		}
	}
	return bw.Flush()
}

func renderLine(l pipeline.Line, f formatter.Formatter) (string, error) {
	switch l.Kind {
	case pipeline.Blank:
		return "", nil
	case pipeline.LabelLine:
		return f.FormatLabelDef(l.Label), nil
	case pipeline.LineCommentLine:
		var b strings.Builder
		for i, line := range l.LineComment {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(f.CommentPrefix() + " " + line)
		}
		return b.String(), nil
	case pipeline.Instruction:
		out := "\t" + l.Mnemonic
		if l.Operand != "" {
			out += " " + l.Operand
		}
		return appendComment(out, l, f), nil
	case pipeline.DataByte, pipeline.DataLoHiPair, pipeline.DataHiLoPair:
		return appendComment("\t"+f.DirectiveByte()+" "+byteList(l.Bytes), l, f), nil
	case pipeline.DataWord, pipeline.DataAddress:
		return appendComment("\t"+f.DirectiveWord()+" "+l.Operand, l, f), nil
	case pipeline.Text:
		return appendComment(textDirective(l, f), l, f), nil
	case pipeline.ExternalInclude:
		return "\t" + f.DirectiveInclude() + " " + l.Operand, nil
	case pipeline.CollapsedSummary:
		return f.CommentPrefix() + " ...", nil
	default:
		return "", fmt.Errorf("export: unhandled line kind %v", l.Kind)
	}
}

func textDirective(l pipeline.Line, f formatter.Formatter) string {
	push := f.EncodingPush(l.Encoding)
	directive := f.DirectiveText(l.Encoding)
	pop := f.EncodingPop(l.Encoding)
	text := fmt.Sprintf("%q", string(l.Bytes))
	line := "\t" + directive + " " + text
	if push != "" {
		line = push + "\n" + line
	}
	if pop != "" {
		line += "\n" + pop
	}
	return line
}

func appendComment(line string, l pipeline.Line, f formatter.Formatter) string {
	if l.SideComment == "" && l.XrefComment == "" {
		return line
	}
	comment := l.SideComment
	if l.XrefComment != "" {
		if comment != "" {
			comment += "; "
		}
		comment += "refs: " + l.XrefComment
	}
	return line + " " + f.CommentPrefix() + " " + comment
}

func byteList(bytes []byte) string {
	var b strings.Builder
	for i, v := range bytes {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "$%02x", v)
	}
	return b.String()
}

// WriteLabels writes one "address name kind" line per label, hex address.
func WriteLabels(w io.Writer, labels []label.Label) error {
	bw := bufio.NewWriter(w)
	for _, l := range labels {
		if _, err := fmt.Fprintf(bw, "%04x %s %s\n", l.Address, l.Name, l.Kind); err != nil {
			return fmt.Errorf("writing label: %w", err)
		}
	}
	return bw.Flush()
}

// LabelEntry is one parsed line from a label import file.
type LabelEntry struct {
	Address uint16
	Name    string
}

// ReadLabels parses lines of the form "address name" (hex address, optional
// leading "$" or trailing kind column, which is ignored on import - imported
// labels always become User labels).
func ReadLabels(r io.Reader) ([]LabelEntry, error) {
	scanner := bufio.NewScanner(r)
	var out []LabelEntry
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed label line %q", line)
		}
		addrText := strings.TrimPrefix(fields[0], "$")
		addr, err := strconv.ParseUint(addrText, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("parsing address in %q: %w", line, err)
		}
		out = append(out, LabelEntry{Address: uint16(addr), Name: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading label file: %w", err)
	}
	return out, nil
}
