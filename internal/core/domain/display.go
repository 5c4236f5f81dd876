package domain

// DisplayConfig carries the static join links and invite address shown on
// the boardroom page. Field names match the JSON served to the client.
type DisplayConfig struct {
	MeetURL     string `json:"meetUrl"`
	ZoomURL     string `json:"zoomUrl"`
	InviteEmail string `json:"inviteEmail"`
}

// ExclusionList filters meetings that should never be displayed, such as
// a recurring placeholder entry on the shared calendar. Matching is exact,
// by title or by event ID.
type ExclusionList struct {
	Titles     []string
	MeetingIDs []string
}

// Excluded reports whether a meeting matches the exclusion list.
func (x ExclusionList) Excluded(m Meeting) bool {
	for _, t := range x.Titles {
		if m.Title == t {
			return true
		}
	}
	for _, id := range x.MeetingIDs {
		if m.ID == id {
			return true
		}
	}
	return false
}
