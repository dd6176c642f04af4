package reminder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alzcare/notifier/internal/middlewares"
	mocks "github.com/alzcare/notifier/internal/mocks/api/handlers/reminder"
	"github.com/alzcare/notifier/internal/model"
	reminderrepo "github.com/alzcare/notifier/internal/repository/reminder"
	remindersvc "github.com/alzcare/notifier/internal/service/reminder"
	"github.com/alzcare/notifier/pkg/kst"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockreminderService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockreminderService(ctrl)
	validate := validator.New()
	handler := NewHandler(mockService, validate)
	return handler, mockService
}

func testContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(middlewares.UserIDKey, "u1")
	return c, w
}

func TestHandler_Create_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := CreateRequest{
		Title:  "Take medicine",
		Body:   "8am dose",
		SendAt: "2025-03-01 08:00:00",
	}
	c, w := testContext(t, http.MethodPost, "/reminders", reqBody)

	id, _ := uuid.NewV7()
	mockService.EXPECT().
		Create(gomock.Any(), "u1", "Take medicine", "8am dose", "", "2025-03-01 08:00:00").
		Return(id, nil)

	handler.Create(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, id.String(), resp["id"])
}

func TestHandler_Create_MissingTitle(t *testing.T) {
	handler, _ := setupHandler(t)

	c, w := testContext(t, http.MethodPost, "/reminders", CreateRequest{SendAt: "2025-03-01 08:00:00"})

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Create_LeadTimeTooShort(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := CreateRequest{Title: "t", SendAt: kst.Format(time.Now().Add(10 * time.Second))}
	c, w := testContext(t, http.MethodPost, "/reminders", reqBody)

	mockService.EXPECT().
		Create(gomock.Any(), "u1", "t", "", "", reqBody.SendAt).
		Return(uuid.Nil, remindersvc.ErrLeadTimeTooShort)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Create_BadTimeFormat(t *testing.T) {
	handler, mockService := setupHandler(t)

	reqBody := CreateRequest{Title: "t", SendAt: "not-a-date"}
	c, w := testContext(t, http.MethodPost, "/reminders", reqBody)

	mockService.EXPECT().
		Create(gomock.Any(), "u1", "t", "", "", "not-a-date").
		Return(uuid.Nil, fmt.Errorf("parse send time: %w", kst.ErrBadTimeFormat))

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Update_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	id, _ := uuid.NewV7()
	title := "New title"
	reqBody := UpdateRequest{Title: &title}

	c, w := testContext(t, http.MethodPatch, "/reminders/"+id.String(), reqBody)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	sendAt := time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC)
	updated := model.Reminder{ID: id, UserID: "u1", Title: "New title", Body: "b", SendAt: sendAt}

	mockService.EXPECT().
		Update(gomock.Any(), id, remindersvc.Patch{Title: &title}).
		Return(updated, nil)

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resp reminderItem
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "New title", resp.Title)
	// UTC+9: 23:00 UTC is 08:00 the next day.
	assert.Equal(t, "2025-03-02 08:00:00", resp.SendAt)
}

func TestHandler_Update_NotFound(t *testing.T) {
	handler, mockService := setupHandler(t)

	id, _ := uuid.NewV7()
	title := "x"
	c, w := testContext(t, http.MethodPatch, "/reminders/"+id.String(), UpdateRequest{Title: &title})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		Return(model.Reminder{}, fmt.Errorf("get reminder: %w", reminderrepo.ErrReminderNotFound))

	handler.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Update_AlreadySent(t *testing.T) {
	handler, mockService := setupHandler(t)

	id, _ := uuid.NewV7()
	title := "x"
	c, w := testContext(t, http.MethodPatch, "/reminders/"+id.String(), UpdateRequest{Title: &title})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		Return(model.Reminder{}, remindersvc.ErrAlreadySent)

	handler.Update(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}

func TestHandler_Update_PastSendAt(t *testing.T) {
	handler, mockService := setupHandler(t)

	id, _ := uuid.NewV7()
	past := "2020-01-01 00:00:00"
	c, w := testContext(t, http.MethodPatch, "/reminders/"+id.String(), UpdateRequest{SendAt: &past})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		Return(model.Reminder{}, remindersvc.ErrPastSendAt)

	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Update_InvalidID(t *testing.T) {
	handler, _ := setupHandler(t)

	c, w := testContext(t, http.MethodPatch, "/reminders/abc", UpdateRequest{})
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Delete_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	id, _ := uuid.NewV7()
	c, w := testContext(t, http.MethodDelete, "/reminders/"+id.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockService.EXPECT().Delete(gomock.Any(), id).Return(nil)

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resp map[string]bool
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp["success"])
}

func TestHandler_List_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	c, w := testContext(t, http.MethodGet, "/reminders", nil)

	id, _ := uuid.NewV7()
	reminders := []model.Reminder{
		{ID: id, UserID: "u1", Title: "t", SendAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	mockService.EXPECT().List(gomock.Any(), "u1").Return(reminders, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resp map[string][]reminderItem
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp["notifications"], 1)
	assert.Equal(t, "2025-03-01 09:00:00", resp["notifications"][0].SendAt)
}

func TestHandler_List_Empty(t *testing.T) {
	handler, mockService := setupHandler(t)

	c, w := testContext(t, http.MethodGet, "/reminders", nil)

	mockService.EXPECT().List(gomock.Any(), "u1").Return(nil, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var resp map[string][]reminderItem
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotNil(t, resp["notifications"])
	assert.Empty(t, resp["notifications"])
}
