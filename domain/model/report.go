package model

// ReportType names what a moderation report points at
type ReportType string

const (
	ReportVideo ReportType = "video"
	ReportUser  ReportType = "user"
)

// Report is an entry in the shared moderation queue. TargetID holds a video id
// or a user name; TargetName the video title or user name.
type Report struct {
	ID         string     `json:"id"`
	Type       ReportType `json:"type"`
	TargetID   string     `json:"targetId"`
	TargetName string     `json:"targetName"`
	Reason     string     `json:"reason"`
	ReportedBy string     `json:"reportedBy"`
	Timestamp  string     `json:"timestamp"`
}
