package objcodec

import (
	"testing"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDecodeHist1DDefaultsErrors(t *testing.T) {
	p, err := Parse([]byte(`
class: TH1F
x: {bins: 3, min: 0, max: 3}
contents: [4, 9, 0]
`))
	require.NoError(t, err)

	obj, err := Decode("h", p)
	require.NoError(t, err)
	require.NotNil(t, obj.H1)
	require.Equal(t, []float64{0, 1, 2, 3}, obj.H1.Edges)
	require.Equal(t, []float64{2, 3, 0}, obj.H1.Errors)
	require.True(t, obj.IsPlainHist1D())
}

func TestDecodeJSONProfile(t *testing.T) {
	p, err := Parse([]byte(`{"class": "TProfile", "x": {"edges": [0, 1, 5]}, "contents": [1.5, 2.5], "errors": [0.1, 0.2]}`))
	require.NoError(t, err)

	obj, err := Decode("prof", p)
	require.NoError(t, err)
	require.True(t, obj.IsProfile())
	require.Equal(t, []float64{0.1, 0.2}, obj.H1.Errors)
}

func TestDecodeEfficiency(t *testing.T) {
	p := Payload{
		Class:  "TEfficiency",
		X:      &Axis{Bins: 2, Min: 0, Max: 2},
		Passed: []float64{1, 2},
		Total:  []float64{2, 4},
	}
	obj, err := Decode("eff", p)
	require.NoError(t, err)
	require.Equal(t, 1, obj.Dim())
	require.Equal(t, []float64{2, 4}, obj.Eff.Total.Contents)

	p.Y = &Axis{Bins: 1, Min: -1, Max: 1}
	obj, err = Decode("eff2", p)
	require.NoError(t, err)
	require.Equal(t, 2, obj.Dim())
	require.Equal(t, 2, obj.XBins())
	require.Equal(t, 1, obj.YBins())
}

func TestDecodeGraphPointForms(t *testing.T) {
	p := Payload{Class: "TGraphAsymmErrors", Points: [][]float64{
		{1, 2},
		{2, 3, 0.5, 0.1},
		{3, 4, 0.1, 0.2, 0.3, 0.4},
	}}
	obj, err := Decode("g", p)
	require.NoError(t, err)

	want := []domain.Point{
		{X: 1, Y: 2},
		{X: 2, Y: 3, XLow: 0.5, XHigh: 0.5, YLow: 0.1, YHigh: 0.1},
		{X: 3, Y: 4, XLow: 0.1, XHigh: 0.2, YLow: 0.3, YHigh: 0.4},
	}
	if diff := cmp.Diff(want, obj.Graph.Points); diff != "" {
		t.Fatalf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]Payload{
		"no class":       {X: &Axis{Bins: 1, Min: 0, Max: 1}},
		"no axis":        {Class: "TH1F", Contents: []float64{1}},
		"short contents": {Class: "TH1F", X: &Axis{Bins: 2, Min: 0, Max: 1}, Contents: []float64{1}},
		"bad edges":      {Class: "TH1F", X: &Axis{Edges: []float64{0, 0}}, Contents: []float64{1}},
		"bad point":      {Class: "TGraph", Points: [][]float64{{1, 2, 3}}},
		"2d no y":        {Class: "TH2F", X: &Axis{Bins: 1, Min: 0, Max: 1}, Contents: []float64{1}},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode("x", p)
			require.Error(t, err)
			require.True(t, domain.IsKind(err, domain.KindInvalidConfig), "got %v", err)
		})
	}

	_, err := Decode("x", Payload{Class: "TTree"})
	require.True(t, domain.IsKind(err, domain.KindUnsupported), "got %v", err)
}

func TestEncodeDecodeHist2D(t *testing.T) {
	h := domain.NewHist2D([]float64{0, 1, 2}, []float64{0, 1})
	h.Set(1, 0, 0.75)
	in := domain.Object{Name: "h2", Class: "TH2F", H2: h}

	out, err := Decode("h2", Encode(in))
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("object mismatch (-want +got):\n%s", diff)
	}
}
