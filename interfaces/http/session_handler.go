package http

import (
	"net/http"
	"strconv"

	"nexus-tube/domain/dto"
	"nexus-tube/domain/model"
	"nexus-tube/infrastructure/logger"
	"nexus-tube/infrastructure/utils"
	"nexus-tube/usecase"

	"github.com/gin-gonic/gin"
)

type ISessionHandler interface {
	Current(c *gin.Context)
	Users(c *gin.Context)
	Signup(c *gin.Context)
	Login(c *gin.Context)
	DirectorLogin(c *gin.Context)
	Logout(c *gin.Context)
	Switch(c *gin.Context)
	UpdateProfile(c *gin.Context)
	AddUser(c *gin.Context)
}

// SessionHandler serves the single shared session. Every call that changes
// the active identity answers with a fresh token for it.
type SessionHandler struct {
	session   usecase.ISessionUsecase
	gate      usecase.IDirectorGate
	secretKey string
}

func NewSessionHandler(session usecase.ISessionUsecase, gate usecase.IDirectorGate, secretKey string) ISessionHandler {
	return &SessionHandler{session: session, gate: gate, secretKey: secretKey}
}

func (h *SessionHandler) Current(c *gin.Context) {
	ok(c, dto.SessionRes{User: h.session.ActiveUser(), Authenticated: h.session.IsAuthenticated()})
}

func (h *SessionHandler) Users(c *gin.Context) {
	ok(c, h.session.AvailableUsers())
}

func (h *SessionHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.session.Signup(req.Name, req.Handle, req.Phone)
	if err != nil {
		fail(c, err)
		return
	}
	h.issue(c, http.StatusCreated, user)
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.session.Login(req.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	h.issue(c, http.StatusOK, user)
}

func (h *SessionHandler) DirectorLogin(c *gin.Context) {
	var req dto.DirectorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.gate.Verify(req.Password); err != nil {
		logger.GetLogger().Warn("Rejected director login")
		fail(c, err)
		return
	}
	h.issue(c, http.StatusOK, h.session.LoginAsDirector())
}

func (h *SessionHandler) Logout(c *gin.Context) {
	h.session.Logout()
	ok(c, dto.SessionRes{User: h.session.ActiveUser(), Authenticated: false})
}

func (h *SessionHandler) Switch(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.session.SwitchUser(req.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	h.issue(c, http.StatusOK, user)
}

func (h *SessionHandler) UpdateProfile(c *gin.Context) {
	var patch model.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.session.UpdateUser(patch)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, user)
}

func (h *SessionHandler) AddUser(c *gin.Context) {
	var req dto.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.session.AddUser(req.Name, req.Email)
	if err != nil {
		fail(c, err)
		return
	}
	h.issue(c, http.StatusCreated, user)
}

func (h *SessionHandler) issue(c *gin.Context, status int, user model.User) {
	token, err := utils.GenerateSessionToken(user, h.secretKey)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while signing session token")
		fail(c, err)
		return
	}
	c.JSON(status, dto.Res{
		ResponseCode:    strconv.Itoa(status),
		ResponseMessage: http.StatusText(status),
		Data:            dto.SessionRes{User: user, Authenticated: h.session.IsAuthenticated(), Token: token},
	})
}
