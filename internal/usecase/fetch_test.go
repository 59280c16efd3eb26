package usecase

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestFetchObjects_WildcardSkipsEqualsAndDirectories(t *testing.T) {
	unsupported := fakeEntry{
		key: domain.KeyInfo{Name: "tree", Class: "TTree", Cycle: 1},
		err: &domain.OpError{Op: "mem.object", Kind: domain.KindUnsupported, Err: domain.ErrUnsupported},
	}
	src := &memSource{files: map[string]map[string][]fakeEntry{
		"a.root": {"": {h1("hA", 1), h1("h=1", 1), dirEntry("DQM"), unsupported, h1("hB", 2)}},
		"b.root": {"": {h1("hB", 3)}},
	}}
	job := domain.Job{Name: "j", Inputs: []domain.InputSpec{
		{Key: "a", Filename: "a.root", Plot: domain.WildcardPlot},
		{Key: "b", Filename: "b.root", Plot: domain.WildcardPlot},
	}}

	set, err := FetchObjects(src, job, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"hA", "hB"}, set.Names())

	hb := set.Group("hB")
	require.Len(t, hb, 2)
	require.Equal(t, 0, hb[0].Input)
	require.Equal(t, 1, hb[1].Input)
}

func TestFetchObjects_FixedModeGroupsUnderOneName(t *testing.T) {
	src := &memSource{files: map[string]map[string][]fakeEntry{
		"a.root": {"DQM": {h1("hA", 1), h1("hB", 2)}},
	}}
	job := domain.Job{Name: "j", Inputs: []domain.InputSpec{
		{Key: "a", Filename: "a.root", Plot: "hB", Folder: "DQM"},
		{Key: "b", Filename: "a.root", Plot: "missing", Folder: "DQM"},
		{Key: "c", Filename: "a.root", Plot: "hA", Folder: "DQM"},
	}}

	set, err := FetchObjects(src, job, nil)
	require.NoError(t, err)
	require.Equal(t, []string{domain.FixedGroup}, set.Names())

	objs := set.Group(domain.FixedGroup)
	require.Len(t, objs, 2)
	require.Equal(t, "hB", objs[0].Name)
	require.Equal(t, 2, objs[1].Input)
}

func TestFetchObjects_MissingContainerIsFatal(t *testing.T) {
	src := &memSource{files: map[string]map[string][]fakeEntry{"a.root": {}}}
	job := domain.Job{Inputs: []domain.InputSpec{{Filename: "a.root", Plot: "h", Folder: "nope"}}}

	_, err := FetchObjects(src, job, nil)
	require.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)
}

func TestFetchObjects_DecodeErrorIsFatal(t *testing.T) {
	boom := errors.New("corrupt payload")
	src := &memSource{files: map[string]map[string][]fakeEntry{
		"a.root": {"": {{key: domain.KeyInfo{Name: "h", Class: "TH1F"}, err: boom}}},
	}}
	job := domain.Job{Inputs: []domain.InputSpec{{Filename: "a.root", Plot: "h"}}}

	_, err := FetchObjects(src, job, nil)
	require.ErrorIs(t, err, boom)
}

func TestFetchObjects_LoadsHighestCycleOnce(t *testing.T) {
	old, cur := h1("hA", 1), h1("hA", 7)
	cur.key.Cycle = 3
	src := &memSource{files: map[string]map[string][]fakeEntry{
		"a.root": {"": {old, cur}},
	}}
	job := domain.Job{Inputs: []domain.InputSpec{{Filename: "a.root", Plot: domain.WildcardPlot}}}

	set, err := FetchObjects(src, job, nil)
	require.NoError(t, err)
	objs := set.Group("hA")
	require.Len(t, objs, 1)
	require.Equal(t, []float64{7}, objs[0].H1.Contents)
}

func TestFetchObjects_SkippedEfficiencyLogsHint(t *testing.T) {
	eff := fakeEntry{
		key: domain.KeyInfo{Name: "effVsPt", Class: domain.ClassEfficiency, Cycle: 1},
		err: &domain.OpError{Op: "mem.object", Kind: domain.KindUnsupported, Err: domain.ErrUnsupported},
	}
	src := &memSource{files: map[string]map[string][]fakeEntry{
		"a.root": {"": {eff, h1("hA", 1)}},
	}}
	job := domain.Job{Name: "j", Inputs: []domain.InputSpec{{Filename: "a.root", Plot: domain.WildcardPlot}}}

	var buf bytes.Buffer
	set, err := FetchObjects(src, job, slog.New(slog.NewTextHandler(&buf, nil)))
	require.NoError(t, err)
	require.Equal(t, []string{"hA"}, set.Names())
	require.Contains(t, buf.String(), "object.skipped")
	require.Contains(t, buf.String(), "rootplot convert")
}

func TestApplyStyles(t *testing.T) {
	plot := domain.PlotSpec{
		ColorMap:  []domain.RGBA{{R: 255, A: 255}, {B: 255, A: 255}},
		MarkerMap: []domain.MarkerStyle{20, 24},
	}
	objs := []domain.Object{{Name: "a"}, {Name: "b"}}
	ApplyStyles(plot, objs)

	require.Equal(t, domain.RGBA{B: 255, A: 255}, objs[1].Style.LineColor)
	require.Equal(t, objs[1].Style.LineColor, objs[1].Style.MarkerColor)
	require.Equal(t, domain.MarkerStyle(24), objs[1].Style.Marker)
	require.Equal(t, 2.0, objs[0].Style.LineWidth)
	require.Equal(t, 1.5, objs[0].Style.MarkerSize)
}
