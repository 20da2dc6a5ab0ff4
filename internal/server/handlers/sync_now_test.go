package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/stockle/pkg/api"
)

func TestSyncNowHandler_OneShot(t *testing.T) {
	handler := NewSyncNowHandler(setupTestLogger())

	check := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		handler.Check(w, httptest.NewRequest(http.MethodGet, "/sync_now", nil))
		return w
	}

	w := check()
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, api.SyncNotTriggeredMessage, w.Body.String())

	w = httptest.NewRecorder()
	handler.Trigger(w, httptest.NewRequest(http.MethodPost, "/sync_now", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, api.SyncTriggeredMessage, w.Body.String())
	assert.True(t, handler.Pending())

	// Повторный POST до чтения не копит запросы
	handler.Trigger(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/sync_now", nil))

	w = check()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, api.SyncReadyMessage, w.Body.String())
	assert.False(t, handler.Pending())

	w = check()
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
