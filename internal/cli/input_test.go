package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(newReader("  hello  \n"), "Say hi", &out)
	require.NoError(t, err)
	require.Equal(t, "hello", got)
	require.Contains(t, out.String(), "Say hi")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	got, err := GetSimpleText(newReader("no newline"), "p", &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "no newline", got)
}

func TestGetOptionalText(t *testing.T) {
	got, err := GetOptionalText(newReader("\n"), "p", &bytes.Buffer{})
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = GetOptionalText(newReader("value\n"), "p", &bytes.Buffer{})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "value", *got)
}

func TestGetInt(t *testing.T) {
	n, err := GetInt(newReader("42\n"), "p", &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, 42, n)

	_, err = GetInt(newReader("forty-two\n"), "p", &bytes.Buffer{})
	require.Error(t, err)
}

func TestGetFloat(t *testing.T) {
	f, err := GetFloat(newReader("9.99\n"), "p", &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, 9.99, f)
}

func TestGetBool(t *testing.T) {
	cases := []struct {
		in   string
		def  bool
		want bool
	}{
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"no\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
	}
	for _, tc := range cases {
		got, err := GetBool(newReader(tc.in), "p", tc.def, &bytes.Buffer{})
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := GetBool(newReader("maybe\n"), "p", false, &bytes.Buffer{})
	require.Error(t, err)
}

func TestGetUUID(t *testing.T) {
	id := uuid.New()
	got, err := GetUUID(newReader(id.String()+"\n"), "p", &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = GetUUID(newReader("nope\n"), "p", &bytes.Buffer{})
	require.Error(t, err)
}

func TestGetOptionalUUID(t *testing.T) {
	got, err := GetOptionalUUID(newReader("\n"), "p", &bytes.Buffer{})
	require.NoError(t, err)
	require.Nil(t, got)

	id := uuid.New()
	got, err = GetOptionalUUID(newReader(id.String()+"\n"), "p", &bytes.Buffer{})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, id, *got)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", pw)
	require.Contains(t, out.String(), "Enter password")
}

func TestGetValueParsers(t *testing.T) {
	f, err := GetFloatValue("1.5")
	require.NoError(t, err)
	require.Equal(t, 1.5, f)

	_, err = GetFloatValue("x")
	require.Error(t, err)

	n, err := GetIntValue("7")
	require.NoError(t, err)
	require.Equal(t, 7, n)

	_, err = GetIntValue("x")
	require.Error(t, err)
}
