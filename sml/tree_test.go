package sml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteTree(t *testing.T) {
	require := require.New(t)

	tree := NewTree(OctetString("Hallo"), nil)
	require.Equal("730648616C6C6F0101", encodeHex(tree.Encode))

	tree = NewTree(OctetString("Hallo"), nil, NewTree(OctetString("Hallo"), nil))
	require.Equal("730648616C6C6F0171730648616C6C6F0101", encodeHex(tree.Encode))
}

func TestParseTree(t *testing.T) {
	require := require.New(t)

	buf := NewReadBuffer(hexBytes(t, "730648616C6C6F0171730648616C6C6F0101"))
	tree, err := ParseTree(buf)
	require.NoError(err)
	require.Equal("Hallo", tree.ParameterName.String())
	require.Nil(tree.ParameterValue)
	require.Len(tree.Children, 1)
	require.Equal("Hallo", tree.Children[0].ParameterName.String())
	require.Empty(tree.Children[0].Children)
	require.Equal(0, buf.Remaining())
}

func TestParseTree_ChildError(t *testing.T) {
	require := require.New(t)

	buf := NewReadBuffer(hexBytes(t, "730648616C6C6F0171720648616C6C6F0101"))
	tree, err := ParseTree(buf)
	require.ErrorIs(err, ErrLengthMismatch)
	require.Nil(tree)
}

func TestParseTree_NotThreeFields(t *testing.T) {
	require := require.New(t)

	buf := NewReadBuffer(hexBytes(t, "720648616C6C6F01"))
	_, err := ParseTree(buf)
	require.ErrorIs(err, ErrLengthMismatch)
}

// deepTree builds a chain of nested nodes of the given depth.
func deepTree(depth int) *Tree {
	root := NewTree(OctetString{0x01, 0x00}, nil)
	node := root
	for i := 1; i < depth; i++ {
		child := NewTree(OctetString{byte(i), 0x01}, NewUint16Value(uint16(i)))
		node.Children = []*Tree{child}
		node = child
	}

	return root
}

func TestTreeRoundTrip(t *testing.T) {
	require := require.New(t)

	unit := uint8(30)
	tree := NewTree(OctetString{0x81, 0x81, 0xc7, 0x82, 0x01, 0xff}, nil,
		NewTree(OctetString{0x81, 0x81, 0xc7, 0x82, 0x03, 0xff}, NewOctetStringValue([]byte("EMH"))),
		NewTree(OctetString{0x01, 0x00, 0x00, 0x00, 0x09, 0xff}, NewSecIndex(42),
			NewTree(OctetString{0x01}, &PeriodEntry{ObjName: OctetString{1, 0, 1, 8, 0, 255}, Unit: &unit, Value: NewInt64Value(-7)}),
			NewTree(OctetString{0x02}, &TupelEntry{ServerID: OctetString{0x0a}, SecIndex: NewSecIndex(1)}),
		),
	)
	require.Equal(3, tree.Depth())

	buf := NewBuffer(256)
	tree.Encode(buf)

	rd := NewReadBuffer(buf.Bytes())
	got, err := ParseTree(rd)
	require.NoError(err)
	require.Equal(0, rd.Remaining())
	require.Equal(3, got.Depth())
	require.Len(got.Children, 2)

	v, ok := got.Children[0].ParameterValue.(*Value)
	require.True(ok)
	require.Equal("EMH", v.Bytes().String())

	tm, ok := got.Children[1].ParameterValue.(*Time)
	require.True(ok)
	require.Equal(uint32(42), tm.Value)

	pe, ok := got.Children[1].Children[0].ParameterValue.(*PeriodEntry)
	require.True(ok)
	require.Equal(int64(-7), pe.Value.Int())
	require.Equal(uint8(30), *pe.Unit)

	te, ok := got.Children[1].Children[1].ParameterValue.(*TupelEntry)
	require.True(ok)
	require.Equal(OctetString{0x0a}, te.ServerID)

	// re-encoding reproduces the same bytes
	buf2 := NewBuffer(256)
	got.Encode(buf2)
	require.Equal(buf.Bytes(), buf2.Bytes())

	found := got.Find(OctetString{0x02})
	require.NotNil(found)
	require.Equal(ProcParTupelEntryTag, found.ParameterValue.ProcParTag())
	require.Nil(got.Find(OctetString{0x03}))
}

func TestParseTree_DepthLimit(t *testing.T) {
	require := require.New(t)

	buf := NewBuffer(1024)
	deepTree(10).Encode(buf)
	data := buf.Bytes()

	rd := NewReadBuffer(data, WithMaxDepth(10))
	tree, err := ParseTree(rd)
	require.NoError(err)
	require.Equal(10, tree.Depth())

	rd = NewReadBuffer(data, WithMaxDepth(9))
	_, err = ParseTree(rd)
	require.ErrorIs(err, ErrDepthExceeded)
	require.Equal(StructuralError, KindOf(err))

	// the default limit rejects deeper trees without exhausting the stack
	buf = NewBuffer(1 << 16)
	deepTree(DefaultMaxDepth + 1).Encode(buf)
	rd = NewReadBuffer(buf.Bytes())
	_, err = ParseTree(rd)
	require.ErrorIs(err, ErrDepthExceeded)
}

func TestTreePath(t *testing.T) {
	require := require.New(t)

	buf := NewReadBuffer(hexBytes(t, "720648616C6C6F0264"))
	path, err := ParseTreePath(buf)
	require.NoError(err)
	require.Len(path, 2)
	require.Equal("Hallo", path[0].String())
	require.Equal("d", path[1].String())

	path = TreePath{OctetString("Hallo"), OctetString("Hallo")}
	require.Equal("720648616C6C6F0648616C6C6F", encodeHex(path.Encode))

	// absent segments are dropped
	buf = NewReadBuffer(hexBytes(t, "72010264"))
	path, err = ParseTreePath(buf)
	require.NoError(err)
	require.Len(path, 1)
}

func TestProcParValue(t *testing.T) {
	require := require.New(t)

	buf := NewReadBuffer(hexBytes(t, "72620472620265000000FF"))
	v, err := ParseProcParValue(buf)
	require.NoError(err)
	require.Equal(11, buf.Cursor())
	tm, ok := v.(*Time)
	require.True(ok)
	require.Equal(Timestamp, tm.Type)
	require.Equal(uint32(255), tm.Value)

	require.Equal("72620472620165000000FF", encodeHex(func(buf *Buffer) { EncodeProcParValue(buf, NewSecIndex(255)) }))
	require.Equal("72620162FF", encodeHex(func(buf *Buffer) { EncodeProcParValue(buf, NewUint8Value(255)) }))
}

func TestProcParValue_UnknownTag(t *testing.T) {
	require := require.New(t)

	buf := NewReadBuffer(hexBytes(t, "72620562FF"))
	v, err := ParseProcParValue(buf)
	require.ErrorIs(err, ErrUnknownTag)
	require.Equal(SemanticError, KindOf(err))
	require.Nil(v)

	buf = NewReadBuffer(hexBytes(t, "720162FF"))
	_, err = ParseProcParValue(buf)
	require.ErrorIs(err, ErrUnknownTag)
}

func TestProcParValue_AbsentPayload(t *testing.T) {
	require := require.New(t)

	buf := NewReadBuffer(hexBytes(t, "72620101"))
	v, err := ParseProcParValue(buf)
	require.NoError(err)
	require.Nil(v)
	require.Equal(4, buf.Cursor())
}

func TestTupelEntryRoundTrip(t *testing.T) {
	require := require.New(t)

	unit, scaler := uint8(30), int8(-1)
	val, status := int64(-99), uint64(0x0104)
	entry := &TupelEntry{
		ServerID:    OctetString{0x0a, 0x01},
		SecIndex:    NewSecIndex(7),
		Status:      &status,
		PA:          Reading{Unit: &unit, Scaler: &scaler, Value: &val},
		R4:          Reading{Value: &val},
		SignaturePA: OctetString{0xaa},
		MA:          Reading{Unit: &unit},
		SignatureMA: OctetString{0xbb},
	}

	buf := NewBuffer(128)
	entry.Encode(buf)
	require.Equal(byte(0xF1), buf.Bytes()[0])
	require.Equal(byte(0x07), buf.Bytes()[1])

	rd := NewReadBuffer(buf.Bytes())
	got, err := ParseTupelEntry(rd)
	require.NoError(err)
	require.Equal(entry, got)
	require.Equal(0, rd.Remaining())
}

func TestPrinter(t *testing.T) {
	require := require.New(t)

	unit := uint8(30)
	list := &ListEntry{ObjName: OctetString{1, 0, 1, 8, 0, 255}, Unit: &unit, Value: NewUint32Value(5)}
	p := NewPrinter()
	list.Print(p)
	NewTree(OctetString("Hallo"), NewSecIndex(3)).Print(p)
	TreePath{OctetString{0x01}, OctetString{0x02}}.Print(p)

	out := p.String()
	require.Contains(out, "valList[1]\n  entry\n    objName: 0100010800ff\n    status: <absent>\n")
	require.Contains(out, "    unit: 30\n")
	require.Contains(out, "    value: 5\n")
	require.Contains(out, "tree\n  parameterName: Hallo\n  parameterValue: secIndex 3\n")
	require.True(strings.HasSuffix(out, "treePath: [01 02]\n"))
}
