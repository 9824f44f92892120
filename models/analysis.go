package models

// RoomAnalysis is the vision endpoint's response. Analysis always carries
// the raw model output; the structured fields are best-effort and empty
// when the upstream returned unparsable text.
type RoomAnalysis struct {
	RoomType    string   `json:"roomType,omitempty"`
	Style       string   `json:"style,omitempty"`
	Lighting    string   `json:"lighting,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Analysis    string   `json:"analysis"`
}

// Structured reports whether the upstream response parsed into fields
// beyond the raw text.
func (a RoomAnalysis) Structured() bool {
	return a.RoomType != "" || a.Style != ""
}
