package student

import (
	"net/http"

	"classpoint_backend/internal/controller"
	"classpoint_backend/internal/dto"
	"classpoint_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	notificationService service.NotificationService
}

func NewNotificationController(notificationService service.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// ListNotifications godoc
// @Summary (Student) List the caller's notifications
// @Tags Student - Notifications
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Success 200 {array} dto.NotificationDTO
// @Failure 401 {object} dto.ErrorResponse "No caller identity"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications [get]
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	callerID, ok := controller.CallerID(ctx)
	if !ok {
		controller.RenderUnauthenticated(ctx)
		return
	}
	notifications, err := c.notificationService.ListForUser(callerID)
	if err != nil {
		controller.RenderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead godoc
// @Summary (Student) Mark one notification as read
// @Tags Student - Notifications
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param notification_id path int true "Notification ID"
// @Success 204 "Marked read"
// @Failure 401 {object} dto.ErrorResponse "No caller identity"
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notifications/{notification_id}/read [post]
func (c *NotificationController) MarkNotificationRead(ctx *gin.Context) {
	callerID, ok := controller.CallerID(ctx)
	if !ok {
		controller.RenderUnauthenticated(ctx)
		return
	}
	notificationID, okParam := controller.ParamUint(ctx, "notification_id")
	if !okParam {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "notification_id must be a positive integer"})
		return
	}
	if err := c.notificationService.MarkRead(callerID, notificationID); err != nil {
		controller.RenderError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
