package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seed-planner/seed-planner-api/internal/modules/service"
)

type CalendarHandler struct {
	svc service.CalendarService
}

func NewCalendarHandler(s service.CalendarService) *CalendarHandler {
	return &CalendarHandler{svc: s}
}

// Calendar godoc
//
//	@Summary		Seeding calendar
//	@Description	Get one event per planted cell with derived germination and harvest dates
//	@Tags			calendar
//	@Produce		json
//	@Success		200	{array}	seeding.Event
//	@Router			/calendar [get]
func (h *CalendarHandler) Calendar(c *gin.Context) {
	events, err := h.svc.Events(c.Request.Context())
	if err != nil {
		respondErr(c, err, "")
		return
	}
	c.JSON(http.StatusOK, events)
}
