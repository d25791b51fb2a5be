package report

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safing/taxglobe/service/attributes"
	"github.com/safing/taxglobe/service/globe"
)

var (
	orange = color.RGBA{R: 0xF2, G: 0x8F, B: 0x3B, A: 255}
	grey   = color.RGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 255}
)

func testScene() *globe.Scene {
	return &globe.Scene{
		Title: "Pillar Two",
		Shapes: []*globe.Shape{
			{Code: "CHE", Name: "Switzerland", Region: "EU-W", Value: "progressing", Description: "Implementation discussions in progress", Fill: orange},
			{Code: "BRA", Name: "Brazil", Region: "SA", Description: "Not participating", Fill: grey},
			{Code: "GUF", Name: "French Guiana", Region: "SA", Description: "Not participating", Fill: grey, Skipped: true},
			{Code: "ESP", Name: "Spain", Region: "EU-S", Description: "Not participating", Fill: grey},
		},
		Legend: []globe.LegendItem{
			{Color: orange, Text: "Implementation discussions in progress"},
			{Color: grey, Text: "Not participating"},
		},
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	result := &attributes.Result{
		Unmatched: []attributes.Row{{Line: 7, Code: "XYZ", Jurisdiction: "Atlantis"}},
	}
	r, err := Build(testScene(), result, "")
	require.NoError(t, err)
	assert.Equal(t, "Pillar Two", r.Title)
	require.Len(t, r.Entries, 3)
	assert.Equal(t, "Switzerland: Implementation discussions in progress", r.Entries[0].Hover)
	assert.Equal(t, []Count{
		{Description: "Implementation discussions in progress", Color: orange, Countries: 1},
		{Description: "Not participating", Color: grey, Countries: 2},
	}, r.Counts)
	assert.Len(t, r.Unmatched, 1)
}

func TestBuildRegion(t *testing.T) {
	t.Parallel()

	r, err := Build(testScene(), nil, "eu")
	require.NoError(t, err)
	require.Len(t, r.Entries, 2)
	assert.Equal(t, "CHE", r.Entries[0].Code)
	assert.Equal(t, "ESP", r.Entries[1].Code)

	r, err = Build(testScene(), nil, "EU-W")
	require.NoError(t, err)
	require.Len(t, r.Entries, 1)

	_, err = Build(testScene(), nil, "Atlantis")
	require.ErrorIs(t, err, ErrUnknownRegion)
}

func TestWrite(t *testing.T) {
	t.Parallel()

	result := &attributes.Result{
		Unmatched: []attributes.Row{{Line: 7, Code: "XYZ", Jurisdiction: "Atlantis"}},
	}
	r, err := Build(testScene(), result, "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, false))
	out := buf.String()

	assert.Contains(t, out, "Pillar Two\n")
	assert.Contains(t, out, "CODE   NAME")
	assert.Contains(t, out, "Brazil: Not participating")
	assert.Contains(t, out, "line 7: Atlantis (XYZ)")
	assert.NotContains(t, out, "French Guiana")
	assert.NotContains(t, out, "\x1b[")
}

func TestSwatch(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Swatch(orange, false))
	assert.NotEmpty(t, Swatch(orange, true))
}
