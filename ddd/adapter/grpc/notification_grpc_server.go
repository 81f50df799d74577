package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"notification-service/ddd/application/app"
	"notification-service/ddd/application/cqe"
	"notification-service/ddd/application/dto"
	"notification-service/pkg/errno"
	"notification-service/pkg/logger"
	notificationpb "notification-service/proto/notification"
)

// NotificationGrpcServer implements the gRPC NotificationService.
type NotificationGrpcServer struct {
	notificationpb.UnimplementedNotificationServiceServer
	app app.NotificationApp
}

// NewNotificationGrpcServer creates a new gRPC server implementation.
func NewNotificationGrpcServer(notificationApp app.NotificationApp) *NotificationGrpcServer {
	return &NotificationGrpcServer{
		app: notificationApp,
	}
}

// SendNotification accepts a notification from a producer service. Failures
// are reported in the response body, never as a transport error: producers
// treat delivery as best-effort and must not fail their own operation on it.
func (s *NotificationGrpcServer) SendNotification(ctx context.Context, req *notificationpb.SendNotificationRequest) (*notificationpb.SendNotificationResponse, error) {
	if s.app == nil {
		logger.WithContext(ctx).Errorf("notification app not initialised for gRPC server")
		return &notificationpb.SendNotificationResponse{
			Success:      false,
			ErrorMessage: "service unavailable",
		}, nil
	}
	if req == nil {
		return &notificationpb.SendNotificationResponse{
			Success:      false,
			ErrorMessage: "request is nil",
		}, nil
	}

	sendReq := &cqe.SendNotificationReq{
		Service:     req.GetService(),
		Type:        req.GetType(),
		Title:       req.GetTitle(),
		Message:     req.GetMessage(),
		RecipientID: req.GetRecipientId(),
		Data:        req.GetData(),
	}
	if ts := req.GetCreatedAt(); ts > 0 {
		t := time.Unix(ts, 0).UTC()
		sendReq.CreatedAt = &t
	}
	if ts := req.GetExpiresAt(); ts > 0 {
		t := time.Unix(ts, 0).UTC()
		sendReq.ExpiresAt = &t
	}

	key, err := s.app.Send(ctx, sendReq)
	if err != nil {
		logger.WithContext(ctx).Errorf("SendNotification failed service=%s recipient=%s title=%s error=%v",
			sendReq.Service, sendReq.RecipientID, sendReq.Title, err)
		return &notificationpb.SendNotificationResponse{
			Success:      false,
			ErrorMessage: bizMessage(err),
		}, nil
	}

	return &notificationpb.SendNotificationResponse{
		Id:      key,
		Success: true,
	}, nil
}

// GetUserNotifications lists a recipient's notifications.
func (s *NotificationGrpcServer) GetUserNotifications(ctx context.Context, req *notificationpb.GetUserNotificationsRequest) (*notificationpb.GetUserNotificationsResponse, error) {
	if s.app == nil || req == nil {
		return nil, status.Error(codes.Unavailable, "service unavailable")
	}

	listReq := &cqe.ListNotificationsReq{
		IncludeRead: req.GetIncludeRead(),
		Limit:       int(req.GetLimit()),
		Offset:      int(req.GetOffset()),
	}
	resp, err := s.app.ListNotifications(ctx, req.GetRecipientId(), listReq)
	if err != nil {
		return nil, toGrpcError(err)
	}

	items := make([]*notificationpb.Notification, 0, len(resp.Notifications))
	for i := range resp.Notifications {
		items = append(items, toPbNotification(&resp.Notifications[i]))
	}
	return &notificationpb.GetUserNotificationsResponse{
		Notifications: items,
		TotalCount:    resp.TotalCount,
		UnreadCount:   resp.UnreadCount,
	}, nil
}

// MarkNotificationAsRead flips one notification's read flag. Like ingestion,
// failures travel in the response body.
func (s *NotificationGrpcServer) MarkNotificationAsRead(ctx context.Context, req *notificationpb.MarkNotificationAsReadRequest) (*notificationpb.MarkNotificationAsReadResponse, error) {
	if s.app == nil || req == nil {
		return &notificationpb.MarkNotificationAsReadResponse{
			Success:      false,
			ErrorMessage: "service unavailable",
		}, nil
	}

	markReq := &cqe.MarkReadReq{NotificationKey: req.GetNotificationKey()}
	if err := s.app.MarkRead(ctx, req.GetRecipientId(), markReq); err != nil {
		return &notificationpb.MarkNotificationAsReadResponse{
			Success:      false,
			ErrorMessage: bizMessage(err),
		}, nil
	}
	return &notificationpb.MarkNotificationAsReadResponse{Success: true}, nil
}

func toPbNotification(d *dto.NotificationDto) *notificationpb.Notification {
	pb := &notificationpb.Notification{
		Id:          d.ID,
		Service:     d.Service,
		Type:        d.Type,
		Title:       d.Title,
		Message:     d.Message,
		RecipientId: d.RecipientID,
		CreatedAt:   d.CreatedAt.Unix(),
		Data:        d.Data,
		Read:        d.Read,
	}
	if d.ExpiresAt != nil {
		pb.ExpiresAt = d.ExpiresAt.Unix()
	}
	return pb
}

// bizMessage extracts the user-facing message from a business error.
func bizMessage(err error) string {
	var bizErr errno.BizError
	if errors.As(err, &bizErr) {
		return bizErr.Message()
	}
	var en *errno.Errno
	if errors.As(err, &en) {
		return en.Message
	}
	return err.Error()
}

// toGrpcError maps business error codes onto grpc status codes for RPCs
// whose response carries no success field.
func toGrpcError(err error) error {
	code := codes.Internal
	var bizErr errno.BizError
	var en *errno.Errno
	switch {
	case errors.As(err, &bizErr):
		en = bizErr.Errno()
	case errors.As(err, &en):
	default:
		return status.Error(code, err.Error())
	}
	switch en.Code {
	case errno.ErrParameterInvalid.Code:
		code = codes.InvalidArgument
	case errno.ErrNotificationNotFound.Code:
		code = codes.NotFound
	case errno.ErrStoreUnavailable.Code:
		code = codes.Unavailable
	}
	return status.Error(code, bizMessage(err))
}
