package http

import (
	"errors"

	"nexus-tube/domain/dto"
	"nexus-tube/domain/model"
	"nexus-tube/infrastructure/logger"
	"nexus-tube/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ActionDeleteVideo = "delete_video"
	ActionBanUser     = "ban_user"
	ActionDismiss     = "dismiss"
)

type IModerationHandler interface {
	AddReport(c *gin.Context)
	Reports(c *gin.Context)
	Dismiss(c *gin.Context)
	TakeAction(c *gin.Context)
	BanUser(c *gin.Context)
}

type ModerationHandler struct {
	moderation usecase.IModerationUsecase
	catalog    usecase.ICatalogUsecase
}

// reportView is a queue entry with its target resolved against the catalog
type reportView struct {
	model.Report
	TargetFound bool `json:"targetFound"`
}

func NewModerationHandler(moderation usecase.IModerationUsecase, catalog usecase.ICatalogUsecase) IModerationHandler {
	return &ModerationHandler{moderation: moderation, catalog: catalog}
}

func (h *ModerationHandler) AddReport(c *gin.Context) {
	var req dto.AddReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	report, err := h.moderation.AddReport(model.ReportType(req.Type), req.TargetID, req.TargetName, req.Reason)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, report)
}

func (h *ModerationHandler) Reports(c *gin.Context) {
	reports := h.moderation.Reports()
	out := make([]reportView, 0, len(reports))
	for _, r := range reports {
		out = append(out, reportView{Report: r, TargetFound: h.targetExists(r)})
	}
	ok(c, out)
}

func (h *ModerationHandler) Dismiss(c *gin.Context) {
	id := c.Param("id")
	if err := h.moderation.DismissReport(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, dto.ModerationAction{ReportID: id, Action: ActionDismiss})
}

// TakeAction deletes the reported video or bans the reported channel, then
// dismisses the report. The two steps are separate store calls; a target
// that is already gone is only logged so the report can still be cleared.
func (h *ModerationHandler) TakeAction(c *gin.Context) {
	report, err := h.moderation.Report(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	action := dto.ModerationAction{ReportID: report.ID, Target: report.TargetID}
	switch report.Type {
	case model.ReportVideo:
		action.Action = ActionDeleteVideo
		err = h.catalog.DeleteVideo(report.TargetID)
	case model.ReportUser:
		// channels are banned by name; the target id may be a user id
		action.Action = ActionBanUser
		action.Target = report.TargetName
		err = h.catalog.DeleteUser(report.TargetName)
	}
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			fail(c, err)
			return
		}
		logger.GetLogger().WithField("report", report.ID).Warn("Reported target already removed")
	}

	// banning a channel also drops the reports naming it
	if err := h.moderation.DismissReport(report.ID); err != nil && !errors.Is(err, model.ErrNotFound) {
		fail(c, err)
		return
	}
	ok(c, action)
}

// BanUser answers DELETE /api/admin/users/:name
func (h *ModerationHandler) BanUser(c *gin.Context) {
	name := c.Param("name")
	if err := h.catalog.DeleteUser(name); err != nil {
		fail(c, err)
		return
	}
	ok(c, dto.ModerationAction{Action: ActionBanUser, Target: name})
}

// a ban removes the reports naming the channel, so only video reports dangle
func (h *ModerationHandler) targetExists(r model.Report) bool {
	if r.Type != model.ReportVideo {
		return true
	}
	_, err := h.catalog.Video(r.TargetID)
	return err == nil
}
