package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type sessionCounter interface {
	Count() int
}

type PingHandler interface {
	Ping(ctx echo.Context) error
}

type pingResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

type pingHandler struct {
	sessions sessionCounter
}

func NewPingHandler(sessions sessionCounter) PingHandler {
	return &pingHandler{
		sessions: sessions,
	}
}

func (that *pingHandler) Ping(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, pingResponse{Status: "ok", Sessions: that.sessions.Count()})
}
