package dto

// AddReportRequest flags a video or user for the director
type AddReportRequest struct {
	Type       string `json:"type" binding:"required"` // video, user
	TargetID   string `json:"targetId" binding:"required"`
	TargetName string `json:"targetName" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

// SendMessageRequest sends a direct message from the active user
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// ModerationAction is the result of acting on a report
type ModerationAction struct {
	ReportID string `json:"reportId"`
	Action   string `json:"action"` // delete_video, ban_user, dismiss
	Target   string `json:"target"`
}
