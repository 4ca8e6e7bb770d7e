package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-sml/internal/util"
	"github.com/arloliu/go-sml/sml"
)

func TestParseGetProfilePackRequest(t *testing.T) {
	require := require.New(t)

	input := "7901010101010101730648616C6C6F0648616C6C6F0648616C6C6F01"
	buf := sml.NewReadBuffer(hexBytes(t, input))
	defer buf.Free()

	r, err := ParseGetProfilePackRequest(buf)
	require.NoError(err)
	require.Len(r.ObjectList, 3)
	for _, obj := range r.ObjectList {
		require.Equal("Hallo", obj.String())
	}
	require.Nil(r.ServerID)
	require.Nil(r.WithRawdata)
	require.Nil(r.TreePath)
	require.Nil(r.DASDetails)
	require.Equal(0, buf.Remaining())

	// every element of the object list is written back
	require.Equal(input, encodeBody(r))
}

func TestParseBody_Errors(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expectedErr error
		kind        sml.ErrorKind
	}{
		{
			description: "unknown tag",
			input:       "7263099901",
			expectedErr: sml.ErrUnknownTag,
			kind:        sml.SemanticError,
		},
		{
			description: "absent tag",
			input:       "720101",
			expectedErr: sml.ErrUnknownTag,
			kind:        sml.SemanticError,
		},
		{
			description: "body is not a two element list",
			input:       "7363010101",
			expectedErr: sml.ErrLengthMismatch,
			kind:        sml.StructuralError,
		},
		{
			description: "open response with five fields",
			input:       "72630101750101010101",
			expectedErr: sml.ErrLengthMismatch,
			kind:        sml.StructuralError,
		},
		{
			description: "truncated close response",
			input:       "72630201710301",
			expectedErr: sml.ErrUnexpectedEOF,
			kind:        sml.StructuralError,
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		require := require.New(t)

		buf := sml.NewReadBuffer(hexBytes(t, test.input))
		body, err := ParseBody(buf)
		require.ErrorIs(err, test.expectedErr)
		require.Equal(test.kind, sml.KindOf(err))
		require.Nil(body)
		buf.Free()
	}
}

func TestEncodeBody_Errors(t *testing.T) {
	require := require.New(t)

	buf := sml.NewBuffer(16)
	defer buf.Free()

	require.ErrorIs(EncodeBody(buf, nil), ErrUnknownBody)
	require.ErrorIs(EncodeBody(buf, (*OpenRequest)(nil)), ErrUnknownBody)
	require.ErrorIs(EncodeBody(buf, foreignBody{}), ErrUnknownBody)
	require.Equal(0, buf.Len())
}

func TestBodyTag(t *testing.T) {
	require := require.New(t)

	require.Equal("GetListResponse", GetListResponseTag.String())
	require.Equal("AttentionResponse", AttentionResponseTag.String())
	require.Equal("BodyTag(0x0601)", BodyTag(0x601).String())
	require.True(OpenRequestTag.IsKnown())
	require.False(BodyTag(0x601).IsKnown())
}

func sampleTree() *sml.Tree {
	return sml.NewTree(sml.OctetString{0x81, 0x81, 0xc7, 0x82, 0x01, 0xff}, nil,
		sml.NewTree(sml.OctetString{0x81, 0x81, 0xc7, 0x82, 0x03, 0xff}, sml.NewOctetStringValue([]byte("EMH"))),
		sml.NewTree(sml.OctetString{0x01, 0x00, 0x00, 0x00, 0x09, 0xff}, sml.NewSecIndex(1234)),
	)
}

func sampleList() *sml.ListEntry {
	return &sml.ListEntry{
		ObjName: sml.OctetString{0x01, 0x00, 0x01, 0x08, 0x00, 0xff},
		Status:  sml.NewStatus32(0x00010182),
		ValTime: sml.NewSecIndex(42),
		Unit:    util.Ptr(uint8(30)),
		Scaler:  util.Ptr(int8(-1)),
		Value:   sml.NewInt64Value(123456789),
		Next: &sml.ListEntry{
			ObjName: sml.OctetString{0x01, 0x00, 0x10, 0x07, 0x00, 0xff},
			Unit:    util.Ptr(uint8(27)),
			Scaler:  util.Ptr(int8(0)),
			Value:   sml.NewInt32Value(-250),
		},
	}
}

func sampleBodies() []Body {
	return []Body{
		&OpenRequest{
			Codepage:   sml.OctetString("ISO-8859-1"),
			ClientID:   sml.OctetString{0x01, 0x02, 0x03},
			ReqFileID:  sml.OctetString("req-1"),
			ServerID:   sml.OctetString{0x0a, 0x01},
			Username:   sml.OctetString("user"),
			Password:   sml.OctetString("secret"),
			SMLVersion: util.Ptr(uint8(1)),
		},
		&OpenResponse{
			ReqFileID:  sml.OctetString("req-1"),
			ServerID:   sml.OctetString{0x0a, 0x01},
			RefTime:    sml.NewSecIndex(7),
			SMLVersion: util.Ptr(uint8(1)),
		},
		&CloseRequest{},
		&CloseResponse{GlobalSignature: sml.OctetString{0xde, 0xad}},
		&GetProfilePackRequest{ProfileRequest{
			ServerID:    sml.OctetString{0x0a, 0x01},
			WithRawdata: util.Ptr(true),
			BeginTime:   &sml.Time{Type: sml.Timestamp, Value: 1700000000},
			EndTime:     &sml.Time{Type: sml.LocalTimestamp, Value: 1700003600, LocalOffset: 60, SeasonOffset: 60},
			TreePath:    sml.TreePath{sml.OctetString{0x81, 0x81, 0xc7, 0x86, 0x20, 0xff}},
			ObjectList:  sml.Sequence[sml.OctetString]{sml.OctetString{1, 0, 1, 8, 0, 255}, sml.OctetString{1, 0, 2, 8, 0, 255}},
			DASDetails:  sampleTree(),
		}},
		&GetProfilePackResponse{
			ServerID:  sml.OctetString{0x0a, 0x01},
			ActTime:   sml.NewSecIndex(100),
			RegPeriod: util.Ptr(uint32(900)),
			TreePath:  sml.TreePath{sml.OctetString{0x81, 0x81, 0xc7, 0x86, 0x20, 0xff}},
			HeaderList: sml.Sequence[*ProfileHeader]{
				{ObjName: sml.OctetString{1, 0, 1, 8, 0, 255}, Unit: util.Ptr(uint8(30)), Scaler: util.Ptr(int8(-1))},
			},
			PeriodList: sml.Sequence[*ProfilePeriod]{
				{
					ValTime:   sml.NewSecIndex(900),
					Status:    util.Ptr(uint64(0)),
					ValueList: sml.Sequence[*ProfileValue]{{Value: sml.NewUint32Value(5)}},
				},
			},
			Rawdata: sml.OctetString{0x00, 0x11},
		},
		&GetProfileListRequest{ProfileRequest{ServerID: sml.OctetString{0x0a, 0x01}}},
		&GetProfileListResponse{
			ServerID: sml.OctetString{0x0a, 0x01},
			ValTime:  sml.NewSecIndex(5),
			Status:   util.Ptr(uint64(0x0104)),
			PeriodList: sml.Sequence[*sml.PeriodEntry]{
				{ObjName: sml.OctetString{1, 0, 1, 8, 0, 255}, Unit: util.Ptr(uint8(30)), Value: sml.NewInt64Value(-1)},
			},
		},
		&GetProcParameterRequest{
			ServerID:  sml.OctetString{0x0a, 0x01},
			TreePath:  sml.TreePath{sml.OctetString{0x81, 0x81, 0xc7, 0x82, 0x01, 0xff}},
			Attribute: sml.OctetString{0x01},
		},
		&GetProcParameterResponse{
			ServerID: sml.OctetString{0x0a, 0x01},
			TreePath: sml.TreePath{sml.OctetString{0x81, 0x81, 0xc7, 0x82, 0x01, 0xff}},
			Tree:     sampleTree(),
		},
		&SetProcParameterRequest{
			ServerID: sml.OctetString{0x0a, 0x01},
			TreePath: sml.TreePath{sml.OctetString{0x81, 0x81, 0xc7, 0x82, 0x01, 0xff}},
			Tree:     sml.NewTree(sml.OctetString{0x81, 0x81, 0xc7, 0x82, 0x01, 0xff}, sml.NewBooleanValue(true)),
		},
		&GetListRequest{ClientID: sml.OctetString{0x01}, ListName: sml.OctetString{0x01, 0x00, 0x62, 0x0a, 0xff, 0xff}},
		&GetListResponse{
			ServerID:       sml.OctetString{0x0a, 0x01, 'E', 'M', 'H'},
			ListName:       sml.OctetString{0x01, 0x00, 0x62, 0x0a, 0xff, 0xff},
			ActSensorTime:  sml.NewSecIndex(42),
			ValList:        sampleList(),
			ActGatewayTime: sml.NewSecIndex(43),
		},
		&AttentionResponse{
			ServerID:         sml.OctetString{0x0a, 0x01},
			AttentionNo:      sml.OctetString{0x81, 0x81, 0xc7, 0xc7, 0xfe, 0x00},
			AttentionMsg:     sml.OctetString("unknown request"),
			AttentionDetails: sampleTree(),
		},
	}
}

func TestBodyRoundTrip(t *testing.T) {
	for i, body := range sampleBodies() {
		t.Logf("Test #%d: %s", i, body.Tag())
		require := require.New(t)

		buf := sml.NewBuffer(256)
		require.NoError(EncodeBody(buf, body))

		rd := sml.NewReadBuffer(buf.Bytes())
		got, err := ParseBody(rd)
		require.NoError(err)
		require.Equal(0, rd.Remaining())
		require.Equal(body.Tag(), got.Tag())
		require.Equal(body, got)

		rd.Free()
		buf.Free()
	}
}

func TestGetListResponseValues(t *testing.T) {
	require := require.New(t)

	r := &GetListResponse{ValList: sampleList()}
	r.ValList.Append(&sml.ListEntry{ObjName: sml.OctetString{1, 0, 0, 0, 9, 255}})

	names := []string{}
	values := []int64{}
	for name, value := range r.Values() {
		names = append(names, name.Hex())
		values = append(values, value.Int())
	}
	require.Equal([]string{"0100010800ff", "0100100700ff"}, names)
	require.Equal([]int64{123456789, -250}, values)

	count := 0
	for range r.Values() {
		count++
		break
	}
	require.Equal(1, count)
}

func TestBodyPrint(t *testing.T) {
	require := require.New(t)

	for _, body := range sampleBodies() {
		p := sml.NewPrinter()
		body.Print(p)
		require.NotEmpty(p.String(), body.Tag().String())
	}

	p := sml.NewPrinter()
	sampleBodies()[12].Print(p)
	out := p.String()
	require.Contains(out, "getListResponse\n")
	require.Contains(out, "  valList[2]\n")
	require.Contains(out, "      objName: 0100010800ff\n")
}

func TestProfileRequestPrint(t *testing.T) {
	require := require.New(t)

	input := "7901010101010101730648616C6C6F0648616C6C6F0648616C6C6F01"

	tests := []struct {
		description string
		parse       func(buf *sml.Buffer) (Body, error)
		header      string
	}{
		{
			description: "profile pack request",
			parse: func(buf *sml.Buffer) (Body, error) {
				return ParseGetProfilePackRequest(buf)
			},
			header: "getProfilePackRequest\n",
		},
		{
			description: "profile list request",
			parse: func(buf *sml.Buffer) (Body, error) {
				return ParseGetProfileListRequest(buf)
			},
			header: "getProfileListRequest\n",
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)

		buf := sml.NewReadBuffer(hexBytes(t, input))
		body, err := test.parse(buf)
		buf.Free()
		require.NoError(err)

		p := sml.NewPrinter()
		body.Print(p)
		out := p.String()
		require.True(strings.HasPrefix(out, test.header), out)
		require.NotContains(out, "%!")
		require.Contains(out, "  objectList[3]\n")
	}
}
