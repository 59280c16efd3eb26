package usecase

import "github.com/aalvaropc/rootplot/internal/domain"

// ApplyStyles assigns colorMap[i] and markerMap[i] to the i-th object of
// a group. The maps are checked up front by domain.Job.CheckStyleMaps.
func ApplyStyles(plot domain.PlotSpec, objs []domain.Object) {
	for i := range objs {
		if st, ok := domain.StyleFor(plot, i); ok {
			objs[i].Style = st
		}
	}
}
