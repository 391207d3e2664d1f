package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoclean/internal"
)

func TestExtractAmendment(t *testing.T) {
	cases := []struct {
		name   string
		period internal.Cell
		want   string
	}{
		{name: "third estimate", period: internal.Text("4Q T"), want: " T"},
		{name: "final", period: internal.Text("2Q F"), want: " F"},
		{name: "advance", period: internal.Text("3Q A"), want: " A"},
		{name: "preliminary", period: internal.Text("Mar P"), want: " P"},
		{name: "revised", period: internal.Text("Feb R"), want: " R"},
		{name: "second", period: internal.Text("1Q S"), want: " S"},
		{name: "bare code", period: internal.Text("T"), want: " T"},
		{name: "month only", period: internal.Text("Dec"), want: ""},
		{name: "lower case", period: internal.Text("4Q t"), want: ""},
		{name: "trailing space", period: internal.Text("4Q T "), want: ""},
		{name: "empty", period: internal.Text(""), want: ""},
		{name: "null", period: internal.Null(), want: ""},
		{name: "number", period: internal.Number("2020"), want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractAmendment(tc.period, DefaultAmendmentCodes))
		})
	}
}

func TestExtractAmendmentCustomCodes(t *testing.T) {
	assert.Equal(t, "", ExtractAmendment(internal.Text("4Q T"), []string{"F", "P"}))
	assert.Equal(t, " P", ExtractAmendment(internal.Text("Jan P"), []string{"F", "P"}))
	assert.Equal(t, "", ExtractAmendment(internal.Text("Jan P"), nil))
}

func TestApplyAmendments(t *testing.T) {
	table := internal.NewTable([]string{"Event", "Period"})
	require.NoError(t, table.AppendRow([]internal.Cell{internal.Text("GDP"), internal.Text("4Q T")}))
	require.NoError(t, table.AppendRow([]internal.Cell{internal.Text("CPI"), internal.Null()}))
	require.NoError(t, table.AppendRow([]internal.Cell{internal.Text("PMI"), internal.Text("Jun F")}))

	amended, err := ApplyAmendments(table, DefaultAmendmentCodes)
	require.NoError(t, err)
	assert.Equal(t, 2, amended)
	assert.Equal(t, []string{"Event", "Period", "Amendment"}, table.Columns)

	labels, err := table.Column(internal.ColAmendment)
	require.NoError(t, err)
	assert.Equal(t, []internal.Cell{internal.Text(" T"), internal.Text(""), internal.Text(" F")}, labels)
}

func TestApplyAmendmentsOverwrites(t *testing.T) {
	table := internal.NewTable([]string{"Period", "Amendment", "Event"})
	require.NoError(t, table.AppendRow([]internal.Cell{internal.Text("Dec"), internal.Text(" T"), internal.Text("GDP")}))

	_, err := ApplyAmendments(table, DefaultAmendmentCodes)
	require.NoError(t, err)
	assert.Equal(t, []string{"Period", "Amendment", "Event"}, table.Columns)
	assert.Equal(t, internal.Text(""), table.Rows[0][internal.ColAmendment])
}

func TestApplyAmendmentsMissingPeriod(t *testing.T) {
	table := internal.NewTable([]string{"Event"})
	_, err := ApplyAmendments(table, DefaultAmendmentCodes)
	require.ErrorIs(t, err, internal.ErrMissingColumn)
	assert.False(t, table.HasColumn(internal.ColAmendment))
}
