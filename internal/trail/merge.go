package trail

// Merge combines a trail's shared course template with a user's overlay
// rows into an ordered per-user view.
//
// An overlay row supersedes the template default for its trail-course;
// every template entry without a row is an implicit NOT_STARTED with no
// completion date. Overlay rows referencing trail-courses absent from the
// template are ignored — stale rows must never invent phases — and the
// ordinal always comes from the template, never from the overlay side.
func Merge(template []Course, overlays []Overlay) []PhaseView {
	byCourse := make(map[int]Overlay, len(overlays))
	for _, ov := range overlays {
		byCourse[ov.TrailCourseID] = ov
	}

	views := make([]PhaseView, 0, len(template))
	for _, c := range template {
		view := PhaseView{
			Course: c,
			Status: StatusNotStarted,
			Source: SourceDefault,
		}
		if ov, ok := byCourse[c.ID]; ok {
			view.Status = ov.Status
			view.CompletedAt = ov.CompletedAt
			view.Source = SourceOverlay
		}
		views = append(views, view)
	}
	return views
}
