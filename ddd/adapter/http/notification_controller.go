package http

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"notification-service/ddd/application/app"
	"notification-service/ddd/application/cqe"
	"notification-service/ddd/application/dto"
	"notification-service/pkg/errno"
	"notification-service/pkg/logger"
	"notification-service/pkg/manager"
	"notification-service/pkg/restapi"
	"notification-service/pkg/sse"
)

var (
	notificationControllerOnce sync.Once
	singletonNotificationCtrl  NotificationController
)

// NotificationControllerPlugin 将通知控制器注册到共享的 manager 中。
// App 与 Hub 在 app.Run 中构造后注入。
type NotificationControllerPlugin struct {
	App app.NotificationApp
	Hub *sse.Hub
}

func (p *NotificationControllerPlugin) Name() string {
	return "notificationController"
}

func (p *NotificationControllerPlugin) MustCreateController() manager.Controller {
	notificationControllerOnce.Do(func() {
		singletonNotificationCtrl = &notificationControllerImpl{
			app: p.App,
			hub: p.Hub,
		}
	})
	return singletonNotificationCtrl
}

// NotificationController 控制器接口。
type NotificationController interface {
	manager.Controller
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	MarkRead(ctx *gin.Context)
	Stream(ctx *gin.Context)
}

type notificationControllerImpl struct {
	manager.Controller
	app app.NotificationApp
	hub *sse.Hub
}

// RegisterOpenApi 暂无开放通知接口。
func (c *notificationControllerImpl) RegisterOpenApi(group *gin.RouterGroup) {}

// RegisterInnerApi 注册内部通知接口（网关 inner 路由访问）。
func (c *notificationControllerImpl) RegisterInnerApi(group *gin.RouterGroup) {
	v1 := group.Group("notification/v1/inner")
	{
		v1.POST("/notifications", c.Create)
		v1.GET("/notifications/user/:recipient_id", c.List)
		v1.PUT("/notifications/user/:recipient_id/:notification_key/read", c.MarkRead)
		v1.GET("/notifications/stream", c.Stream)
	}
}

func (c *notificationControllerImpl) RegisterDebugApi(group *gin.RouterGroup) {}
func (c *notificationControllerImpl) RegisterOpsApi(group *gin.RouterGroup)   {}

// extractRecipientID 从 header 或 query 取接收者 id；SSE 场景下只能走 query。
func (c *notificationControllerImpl) extractRecipientID(ctx *gin.Context) (string, error) {
	recipientID := ctx.GetHeader("X-Recipient-ID")
	if recipientID == "" {
		recipientID = ctx.Query("recipient_id")
	}
	if recipientID == "" {
		// 通知服务自身不做鉴权，只校验参数是否完整。
		return "", errno.NewSimpleBizError(errno.ErrParameterInvalid, nil, "recipient_id")
	}
	return recipientID, nil
}

// Create 接收一条来自其他服务的通知。
func (c *notificationControllerImpl) Create(ctx *gin.Context) {
	var req cqe.SendNotificationReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		restapi.Failed(ctx, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, "body"))
		return
	}
	key, err := c.app.Send(ctx.Request.Context(), &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, dto.SendNotificationResponse{
		Status:         "created",
		NotificationID: key,
	})
}

// List 列出指定接收者的通知以及总数/未读数。
func (c *notificationControllerImpl) List(ctx *gin.Context) {
	recipientID := ctx.Param("recipient_id")
	var req cqe.ListNotificationsReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		restapi.Failed(ctx, errno.NewSimpleBizError(errno.ErrParameterInvalid, err, "query"))
		return
	}
	resp, err := c.app.ListNotifications(ctx.Request.Context(), recipientID, &req)
	if err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, resp)
}

// MarkRead 将指定通知标记为已读；不存在时返回 404。
func (c *notificationControllerImpl) MarkRead(ctx *gin.Context) {
	recipientID := ctx.Param("recipient_id")
	req := cqe.MarkReadReq{NotificationKey: ctx.Param("notification_key")}
	if err := c.app.MarkRead(ctx.Request.Context(), recipientID, &req); err != nil {
		restapi.Failed(ctx, err)
		return
	}
	restapi.Success(ctx, gin.H{"status": "ok"})
}

// Stream establishes an SSE stream for the recipient's notifications.
// The recipient id in the handshake is the room membership; pushes arrive
// as "notification" events carrying the full record. Clients that reconnect
// must call List to recover anything missed while offline.
func (c *notificationControllerImpl) Stream(ctx *gin.Context) {
	recipientID, err := c.extractRecipientID(ctx)
	if err != nil {
		// 缺少 recipient_id 视为参数错误，而不是鉴权失败。
		restapi.FailedWithStatus(ctx, err, http.StatusBadRequest)
		return
	}

	// Prepare SSE headers.
	w := ctx.Writer
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.WithContext(ctx.Request.Context()).Errorf("notification: SSE stream does not support flushing recipient=%s", recipientID)
		restapi.FailedWithStatus(ctx, errno.ErrInternalServer, http.StatusInternalServerError)
		return
	}

	events, unsubscribe := c.hub.Subscribe(recipientID)
	defer unsubscribe()

	// Initial comment to keep some proxies happy.
	if _, err := w.Write([]byte(": ok\n\n")); err == nil {
		flusher.Flush()
	}

	// Periodic heartbeat to keep long-lived connections from timing out on proxies.
	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	notify := ctx.Request.Context().Done()
	for {
		select {
		case <-notify:
			return
		case <-heartbeat.C:
			if _, err := w.Write([]byte(": ping\n\n")); err != nil {
				return
			}
			flusher.Flush()
		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(ev.Data)
			if err != nil {
				continue
			}
			if _, err := w.Write([]byte("event: " + ev.Type + "\n")); err != nil {
				return
			}
			if _, err := w.Write([]byte("data: ")); err != nil {
				return
			}
			if _, err := w.Write(data); err != nil {
				return
			}
			if _, err := w.Write([]byte("\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
