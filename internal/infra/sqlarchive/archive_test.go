package sqlarchive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/stretchr/testify/require"
)

func hist(name string, contents ...float64) domain.Object {
	h := domain.NewHist1D(domain.UniformEdges(len(contents), 0, float64(len(contents))))
	copy(h.Contents, contents)
	copy(h.Errors, contents)
	return domain.Object{Name: name, Class: "TH1F", H1: h}
}

func buildArchive(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "run.db")
	w, err := Create(p)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.PutObject("", hist("top", 1), 1))
	require.NoError(t, w.PutObject("DQM/Eff", hist("h", 1, 2), 1))
	require.NoError(t, w.PutObject("DQM/Eff", hist("h", 3, 4), 2))
	require.NoError(t, w.PutObject("DQM/Eff", hist("g", 5), 1))
	require.NoError(t, w.PutFolder("DQM/Empty"))
	return p
}

func TestArchiveListingAndCycles(t *testing.T) {
	a, err := Open(buildArchive(t))
	require.NoError(t, err)
	defer a.Close()

	root, err := a.Container("")
	require.NoError(t, err)
	require.Equal(t, []domain.KeyInfo{
		{Name: "top", Class: "TH1F", Cycle: 1},
		{Name: "DQM", Class: domain.ClassDirectory, Cycle: 1},
	}, root.Keys())

	dqm, err := a.Container("/DQM")
	require.NoError(t, err)
	require.Equal(t, []domain.KeyInfo{
		{Name: "Eff", Class: domain.ClassDirectory, Cycle: 1},
		{Name: "Empty", Class: domain.ClassDirectory, Cycle: 1},
	}, dqm.Keys())

	eff, err := a.Container("DQM/Eff")
	require.NoError(t, err)
	require.Equal(t, []domain.KeyInfo{
		{Name: "h", Class: "TH1F", Cycle: 1},
		{Name: "h", Class: "TH1F", Cycle: 2},
		{Name: "g", Class: "TH1F", Cycle: 1},
	}, eff.Keys())

	obj, err := eff.Object("h", 0)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, obj.H1.Contents)
	require.Equal(t, []float64{3, 4}, obj.H1.Errors)

	first, err := eff.Object("h", 1)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, first.H1.Contents)

	_, err = eff.Object("h", 5)
	require.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)
}

func TestArchiveNotFound(t *testing.T) {
	a, err := Open(buildArchive(t))
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Container("DQM/Missing")
	require.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)

	c, err := a.Container("DQM/Eff")
	require.NoError(t, err)
	_, err = c.Object("nope", 0)
	require.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)
}

func TestOpenDoesNotCreateFiles(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.db")
	_, err := Open(p)
	require.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)
	_, statErr := os.Stat(p)
	require.True(t, os.IsNotExist(statErr))
}

func TestOpenRejectsForeignDatabase(t *testing.T) {
	p := filepath.Join(t.TempDir(), "other.db")
	w, err := Create(p)
	require.NoError(t, err)
	_, err = w.db.Exec(`DROP TABLE objects`)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = Open(p)
	require.True(t, domain.IsKind(err, domain.KindInvalidConfig), "got %v", err)
}
