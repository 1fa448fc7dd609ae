package csvsource

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

func TestReadRows(t *testing.T) {
	rows, err := NewReader().ReadRows(context.Background(), filepath.Join("testdata", "codes.csv"))
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, []string{"Value", "Description", "Reference"}, rows[0].Fields)

	assert.Equal(t, 2, rows[1].Line)
	assert.Equal(t, "[RFC9110, Section 15.2.1]", rows[1].Fields[2])

	assert.Equal(t, []string{"104-199", "Unassigned", ""}, rows[3].Fields)
}

func TestReadRows_MissingFile(t *testing.T) {
	_, err := NewReader().ReadRows(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestReadRows_ReadErrorReportsPath(t *testing.T) {
	dir := t.TempDir()
	_, err := NewReader().ReadRows(context.Background(), dir)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindExecution))
	assert.Contains(t, err.Error(), dir)
}

func TestParse_BareQuotesKeptVerbatim(t *testing.T) {
	in := "418,I'm a \"teapot\",[RFC2324]\n"
	rows, err := NewReader().Parse(context.Background(), strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"418", `I'm a "teapot"`, "[RFC2324]"}, rows[0].Fields)
}

func TestParse_BlankLinesBecomeEmptyRows(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		lines []int
		blank []int
	}{
		{"middle", "100,Continue,x\n\n101,Switching,y\n", []int{1, 2, 3}, []int{2}},
		{"crlf", "100,Continue,x\r\n\r\n101,Switching,y\r\n", []int{1, 2, 3}, []int{2}},
		{"trailing", "100,Continue,x\n\n", []int{1, 2}, []int{2}},
		{"leading", "\n100,Continue,x", []int{1, 2}, []int{1}},
		{"none", "100,Continue,x\n101,Switching,y", []int{1, 2}, nil},
		{"after multiline field", "100,\"a\nb\",x\n\n101,c,y\n", []int{1, 3, 4}, []int{3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rows, err := NewReader().Parse(context.Background(), strings.NewReader(c.in))
			require.NoError(t, err)

			var lines, blank []int
			for _, r := range rows {
				lines = append(lines, r.Line)
				if len(r.Fields) == 0 {
					blank = append(blank, r.Line)
				}
			}
			assert.Equal(t, c.lines, lines)
			assert.Equal(t, c.blank, blank)
		})
	}
}

func TestParse_VariableFieldCounts(t *testing.T) {
	in := "200,OK\n201,Created,[RFC9110],extra\n"
	rows, err := NewReader().Parse(context.Background(), strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Len(t, rows[0].Fields, 2)
	assert.Len(t, rows[1].Fields, 4)
}

func TestParse_CustomComma(t *testing.T) {
	rows, err := NewReader(WithComma(';')).Parse(context.Background(), strings.NewReader("200;OK;[RFC9110]\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "[RFC9110]", rows[0].Fields[2])
}

func TestParse_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewReader().Parse(ctx, strings.NewReader("200,OK,x\n"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseBytes_CRLF(t *testing.T) {
	body := []byte("Value,Description,Reference\r\n100,Continue,\"[RFC9110, Section 15.2.1]\"\r\n")
	rows, err := NewReader().ParseBytes(context.Background(), body)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[1].Line)
	assert.Equal(t, "[RFC9110, Section 15.2.1]", rows[1].Fields[2])
}
