package sml

import (
	"fmt"
	"strings"
)

const absentText = "<absent>"

// Printer builds an indented, human readable dump of SML structures.
type Printer struct {
	sb    strings.Builder
	level int
}

// NewPrinter creates an empty Printer.
func NewPrinter() *Printer {
	return &Printer{}
}

// Begin writes a section header and indents the following lines.
func (p *Printer) Begin(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
	p.level++
}

// End closes the innermost section.
func (p *Printer) End() {
	if p.level > 0 {
		p.level--
	}
}

// Field writes a "name: value" line. Nil pointers and nil octet strings are
// written as <absent>.
func (p *Printer) Field(name string, value any) {
	p.line(name + ": " + formatField(value))
}

func (p *Printer) line(s string) {
	p.sb.WriteString(strings.Repeat("  ", p.level))
	p.sb.WriteString(s)
	p.sb.WriteByte('\n')
}

// String returns the text written so far.
func (p *Printer) String() string {
	return p.sb.String()
}

func formatField(value any) string {
	switch v := value.(type) {
	case nil:
		return absentText
	case OctetString:
		if v == nil {
			return absentText
		}
		return v.String()
	case *uint8:
		return formatPtr(v)
	case *uint16:
		return formatPtr(v)
	case *uint32:
		return formatPtr(v)
	case *uint64:
		return formatPtr(v)
	case *int8:
		return formatPtr(v)
	case *int16:
		return formatPtr(v)
	case *int32:
		return formatPtr(v)
	case *int64:
		return formatPtr(v)
	case *bool:
		return formatPtr(v)
	case *Value:
		return v.String()
	case *Status:
		return v.String()
	case *Time:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func formatPtr[T any](v *T) string {
	if v == nil {
		return absentText
	}

	return fmt.Sprint(*v)
}

// Print writes the chain starting at e.
func (e *ListEntry) Print(p *Printer) {
	if e == nil {
		p.Field("valList", nil)
		return
	}

	p.Begin("valList[%d]", e.Len())
	for entry := range e.All() {
		p.Begin("entry")
		p.Field("objName", entry.ObjName.Hex())
		p.Field("status", entry.Status)
		p.Field("valTime", entry.ValTime)
		p.Field("unit", entry.Unit)
		p.Field("scaler", entry.Scaler)
		p.Field("value", entry.Value)
		p.Field("valueSignature", entry.ValueSignature)
		p.End()
	}
	p.End()
}

// Print writes the tree rooted at t.
func (t *Tree) Print(p *Printer) {
	if t == nil {
		p.Field("tree", nil)
		return
	}

	p.Begin("tree")
	p.Field("parameterName", t.ParameterName)
	PrintProcParValue(p, t.ParameterValue)
	for _, child := range t.Children {
		child.Print(p)
	}
	p.End()
}

// PrintProcParValue writes v.
func PrintProcParValue(p *Printer, v ProcParValue) {
	if isNilProcParValue(v) {
		p.Field("parameterValue", nil)
		return
	}

	switch val := v.(type) {
	case *PeriodEntry:
		val.Print(p)
	case *TupelEntry:
		p.Begin("tupelEntry")
		p.Field("serverId", val.ServerID)
		p.Field("secIndex", val.SecIndex)
		p.Field("status", val.Status)
		p.End()
	default:
		p.Field("parameterValue", v)
	}
}

// Print writes the period entry.
func (pe *PeriodEntry) Print(p *Printer) {
	p.Begin("periodEntry")
	p.Field("objName", pe.ObjName.Hex())
	p.Field("unit", pe.Unit)
	p.Field("scaler", pe.Scaler)
	p.Field("value", pe.Value)
	p.Field("valueSignature", pe.ValueSignature)
	p.End()
}

// Print writes the path as hexadecimal segments.
func (p TreePath) Print(pr *Printer) {
	if p == nil {
		pr.Field("treePath", nil)
		return
	}

	parts := make([]string, 0, len(p))
	for _, s := range p {
		parts = append(parts, s.Hex())
	}
	pr.Field("treePath", "["+strings.Join(parts, " ")+"]")
}
