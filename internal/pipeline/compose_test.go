package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoclean/internal"
)

func TestComposeEvent(t *testing.T) {
	got, err := ComposeEvent(internal.Text("GDP Annualized QoQ"), " T")
	require.NoError(t, err)
	assert.Equal(t, internal.Text("GDP Annualized QoQ T"), got)

	got, err = ComposeEvent(internal.Text("CPI YoY "), "")
	require.NoError(t, err)
	assert.Equal(t, internal.Text("CPI YoY "), got)
}

func TestComposeEventRejectsNonText(t *testing.T) {
	_, err := ComposeEvent(internal.Null(), " T")
	require.ErrorIs(t, err, internal.ErrNotText)

	_, err = ComposeEvent(internal.Number("42"), "")
	require.ErrorIs(t, err, internal.ErrNotText)
}

func TestComposeEvents(t *testing.T) {
	table := internal.NewTable([]string{"Event", "Amendment"})
	require.NoError(t, table.AppendRow([]internal.Cell{internal.Text("GDP"), internal.Text(" S")}))
	require.NoError(t, table.AppendRow([]internal.Cell{internal.Text("ISM"), internal.Text("")}))

	require.NoError(t, ComposeEvents(table))
	assert.Equal(t, internal.Text("GDP S"), table.Rows[0]["Event"])
	assert.Equal(t, internal.Text("ISM"), table.Rows[1]["Event"])
}

func TestComposeEventsReportsRow(t *testing.T) {
	table := internal.NewTable([]string{"Event", "Amendment"})
	require.NoError(t, table.AppendRow([]internal.Cell{internal.Text("GDP"), internal.Text("")}))
	require.NoError(t, table.AppendRow([]internal.Cell{internal.Null(), internal.Text(" F")}))

	err := ComposeEvents(table)
	require.ErrorIs(t, err, internal.ErrNotText)
	assert.Contains(t, err.Error(), "row 2")
}
