package datasets

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	t.Parallel()

	r := Builtin()
	assert.Equal(t, []string{"CRS", "PillarTwo", "WealthTax"}, r.IDs())

	crs, err := r.Get("crs")
	require.NoError(t, err)
	assert.Equal(t, "CRS commitment year", crs.Column)
	assert.Len(t, crs.Categories, 11)
	assert.True(t, crs.Categories[0].None)
	assert.Equal(t, color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}, crs.DefaultRGBA())

	wealth, err := r.Get("WealthTax")
	require.NoError(t, err)
	assert.Equal(t, "No wealth tax", wealth.None().Description)
	// Legend order follows the definition.
	assert.Equal(t, "OECD", wealth.Categories[0].Key)

	_, err = r.Get("VAT")
	assert.ErrorIs(t, err, ErrUnknownDataset)
}

func TestCategory(t *testing.T) {
	t.Parallel()

	r := Builtin()
	crs, err := r.Get("CRS")
	require.NoError(t, err)
	pillar, err := r.Get("PillarTwo")
	require.NoError(t, err)

	tests := []struct {
		ds          *Dataset
		value       string
		description string
	}{
		{crs, "", "Not committed"},
		{crs, "  ", "Not committed"},
		{crs, "2017", "Exchanged from 2017"},
		{crs, "2023.0", "Exchanging from 2023"},
		{pillar, "EU", "EU implementation in progress"},
		{pillar, "Signatory", "Signatory to OECD statement"},
	}
	for _, tc := range tests {
		cat, err := tc.ds.Category(tc.value)
		require.NoError(t, err, tc.value)
		assert.Equal(t, tc.description, cat.Description, tc.value)
	}

	_, err = crs.Category("2030")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoryColors(t *testing.T) {
	t.Parallel()

	crs, err := Builtin().Get("CRS")
	require.NoError(t, err)
	cat, err := crs.Category("2017")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x90, G: 0xee, B: 0x90, A: 0xff}, cat.RGBA())
}

func TestParseAndMerge(t *testing.T) {
	t.Parallel()

	custom, err := Parse([]byte(`
datasets:
  - id: CRS
    column: CRS year
    default_color: "#000"
    categories:
      - key: 2017
        color: red
        description: Early
`))
	require.NoError(t, err)

	r := Builtin()
	r.Merge(custom)
	crs, err := r.Get("CRS")
	require.NoError(t, err)
	assert.Equal(t, "CRS year", crs.Column)
	// A none category is added when missing.
	require.Len(t, crs.Categories, 2)
	assert.Equal(t, "No data", crs.None().Description)
	assert.Equal(t, color.RGBA{A: 0xff}, crs.None().RGBA())
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`
datasets:
  - id: Broken
    default_color: notacolor
    categories:
      - key: a
        color: "#fff"
      - key: a
        color: "#fff"
      - none: true
        color: "#fff"
      - none: true
        color: "#fff"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
	assert.Contains(t, err.Error(), "duplicate key")
	assert.Contains(t, err.Error(), "duplicate none category")
	assert.Contains(t, err.Error(), "unknown color name")
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#588B8B", color.RGBA{R: 0x58, G: 0x8b, B: 0x8b, A: 0xff}},
		{"#fff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#ff000080", color.RGBA{R: 0x80, A: 0x80}},
		{"rgb(0, 119, 190)", color.RGBA{G: 119, B: 190, A: 0xff}},
		{"rgba(221, 221, 221, 10)", color.RGBA{R: 221, G: 221, B: 221, A: 0xff}},
		{"Indigo", color.RGBA{R: 0x4b, B: 0x82, A: 0xff}},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "#12", "#zzzzzz", "rgb(1,2)", "rgb(1,2,300)", "rgba(1,2,3,-1)", "sunset"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestNormalizeValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2017", NormalizeValue(" 2017.0 "))
	assert.Equal(t, "2017.5", NormalizeValue("2017.5"))
	assert.Equal(t, "EU", NormalizeValue("EU"))
	assert.Equal(t, "", NormalizeValue(""))
	assert.Equal(t, "9007199254740991", NormalizeValue("9007199254740991"))
	assert.Equal(t, "1e20", NormalizeValue("1e20"))
	assert.Equal(t, "-1e20", NormalizeValue("-1e20"))
}

func TestCategoryCaseFallbackOrder(t *testing.T) {
	t.Parallel()

	reg, err := Parse([]byte(`
datasets:
  - id: Mixed
    column: Status
    default_color: "#000"
    categories:
      - key: eu
        color: red
        description: Lower
      - key: EU
        color: blue
        description: Upper
`))
	require.NoError(t, err)
	ds, err := reg.Get("Mixed")
	require.NoError(t, err)

	cat, err := ds.Category("EU")
	require.NoError(t, err)
	assert.Equal(t, "Upper", cat.Description)

	// Ambiguous case-insensitive matches resolve to the first declared key.
	for range 20 {
		cat, err = ds.Category("Eu")
		require.NoError(t, err)
		assert.Equal(t, "Lower", cat.Description)
	}
}
