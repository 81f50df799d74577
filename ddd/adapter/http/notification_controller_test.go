package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notificationapp "notification-service/ddd/application/app"
	"notification-service/ddd/application/dto"
	"notification-service/ddd/domain/entity"
	"notification-service/ddd/infrastructure/redis/persistence"
	"notification-service/pkg/sse"
)

type noopPublisher struct{}

func (noopPublisher) PublishCreated(ctx context.Context, n *entity.Notification) error { return nil }
func (noopPublisher) PublishReadStateChanged(ctx context.Context, n *entity.Notification) error {
	return nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctrl := &notificationControllerImpl{
		app: notificationapp.NewNotificationApp(persistence.NewMemoryNotificationRepository(), noopPublisher{}),
		hub: sse.NewHub(),
	}

	engine := gin.New()
	ctrl.RegisterInnerApi(engine.Group("/api"))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateNotification(t *testing.T) {
	engine := newTestRouter()

	w := doJSON(t, engine, http.MethodPost, "/api/notification/v1/inner/notifications",
		`{"service":"lab","type":"info","title":"Result Ready","message":"your result is in","recipient_id":"u1","data":{"order_id":"42"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SendNotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "created", resp.Status)
	assert.True(t, strings.HasPrefix(resp.NotificationID, "lab:"))
}

func TestCreateNotificationInvalidService(t *testing.T) {
	engine := newTestRouter()

	w := doJSON(t, engine, http.MethodPost, "/api/notification/v1/inner/notifications",
		`{"service":"billing","type":"info","title":"t","message":"m"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["status"])
	assert.Contains(t, resp["message"], "service")
}

func TestCreateNotificationMalformedBody(t *testing.T) {
	engine := newTestRouter()

	w := doJSON(t, engine, http.MethodPost, "/api/notification/v1/inner/notifications", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListNotifications(t *testing.T) {
	engine := newTestRouter()

	for _, title := range []string{"first", "second"} {
		w := doJSON(t, engine, http.MethodPost, "/api/notification/v1/inner/notifications",
			`{"service":"lab","type":"info","title":"`+title+`","message":"m","recipient_id":"u1"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, engine, http.MethodGet, "/api/notification/v1/inner/notifications/user/u1?include_read=true", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListNotificationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Notifications, 2)
	assert.Equal(t, int64(2), resp.TotalCount)
	assert.Equal(t, int64(2), resp.UnreadCount)
}

func TestListNotificationsEmpty(t *testing.T) {
	engine := newTestRouter()

	w := doJSON(t, engine, http.MethodGet, "/api/notification/v1/inner/notifications/user/nobody", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListNotificationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Notifications)
	assert.Equal(t, int64(0), resp.TotalCount)
}

func TestMarkReadRoundTrip(t *testing.T) {
	engine := newTestRouter()

	w := doJSON(t, engine, http.MethodPost, "/api/notification/v1/inner/notifications",
		`{"service":"pharmacy","type":"success","title":"Refill","message":"ready","recipient_id":"u1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created dto.SendNotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, engine, http.MethodPut,
		"/api/notification/v1/inner/notifications/user/u1/"+created.NotificationID+"/read", "")
	require.Equal(t, http.StatusOK, w.Code)
	var marked map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &marked))
	assert.Equal(t, "ok", marked["status"])

	w = doJSON(t, engine, http.MethodGet, "/api/notification/v1/inner/notifications/user/u1?include_read=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListNotificationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Notifications, 1)
	assert.True(t, resp.Notifications[0].Read)
	assert.Equal(t, int64(0), resp.UnreadCount)
}

func TestMarkReadUnknownKeyReturns404(t *testing.T) {
	engine := newTestRouter()

	w := doJSON(t, engine, http.MethodPut,
		"/api/notification/v1/inner/notifications/user/u1/lab:never-sent/read", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, float64(404), resp["code"])
}

func TestStreamRequiresRecipient(t *testing.T) {
	engine := newTestRouter()

	w := doJSON(t, engine, http.MethodGet, "/api/notification/v1/inner/notifications/stream", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
