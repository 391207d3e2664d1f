package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoclean/internal"
)

func sampleTable(t *testing.T) *internal.AnnouncementTable {
	t.Helper()
	table := internal.NewTable([]string{"Event", "Actual", "Amendment"})
	require.NoError(t, table.AppendRow([]internal.Cell{internal.Text("GDP T"), internal.Number("3.1"), internal.Text(" T")}))
	require.NoError(t, table.AppendRow([]internal.Cell{internal.Text("Claims, initial"), internal.Null(), internal.Text("")}))
	return table
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable(t)))

	want := "Event,Actual,Amendment\n" +
		"GDP T,3.1,\" T\"\n" +
		"\"Claims, initial\",,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTableOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Temp", "cleanECO.csv")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("stale,content\nthat,is\nlonger,than\nthe,table\n"), 0o644))

	require.NoError(t, WriteTable(sampleTable(t), path))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Event", "Actual", "Amendment"}, table.Columns)
	assert.Equal(t, 2, table.Len())
}

func TestWriteTableXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "cleanECO.xlsx")
	require.NoError(t, WriteTable(sampleTable(t), path))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Event", "Actual", "Amendment"}, table.Columns)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, internal.Text("GDP T"), table.Rows[0]["Event"])
	assert.Equal(t, internal.Number("3.1"), table.Rows[0]["Actual"])
	assert.Equal(t, internal.Text(" T"), table.Rows[0]["Amendment"])
	assert.Equal(t, internal.Null(), table.Rows[1]["Actual"])
}
