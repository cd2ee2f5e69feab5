package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Jeomhps/rentacar-graph-api/internal/db"
	"github.com/Jeomhps/rentacar-graph-api/internal/password"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userRow struct {
	UserID     int64          `json:"userId"`
	Attributes map[string]any `json:"attributes"`
}

type reviewRow struct {
	ReviewID   int64          `json:"reviewId"`
	Attributes map[string]any `json:"attributes"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *db.MemoryGraph) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	g := db.NewMemoryGraph()
	return NewRouter(g, password.Plaintext), g
}

func do(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func register(t *testing.T, r http.Handler, username, email, pw string) {
	t.Helper()
	rec := do(t, r, http.MethodPost, "/user/RegisterUser", db.User{Username: username, Email: email, Password: pw, Role: "customer"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func login(t *testing.T, r http.Handler, username, pw string) *httptest.ResponseRecorder {
	t.Helper()
	q := url.Values{"username": {username}, "password": {pw}}
	return do(t, r, http.MethodPost, "/user/LoginUser?"+q.Encode(), nil)
}

func TestHealthz(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := do(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	r, g := newTestRouter(t)
	register(t, r, "alice", "a@example.com", "pw")

	rec := do(t, r, http.MethodPost, "/user/RegisterUser", db.User{Username: "alice2", Email: "a@example.com", Password: "x", Role: "customer"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "conflict", decode[map[string]any](t, rec)["error"])

	rec = do(t, r, http.MethodPost, "/user/AddUser", db.User{Username: "alice3", Email: "a@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, g.Count(db.LabelUser))
}

func TestAddUserReturnsEmptyOK(t *testing.T) {
	r, g := newTestRouter(t)
	rec := do(t, r, http.MethodPost, "/user/AddUser", db.User{Username: "bob", Email: "b@example.com", Password: "pw", Role: "admin"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, 1, g.Count(db.LabelUser))
}

func TestAddUserRejectsMalformedBody(t *testing.T) {
	r, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/user/AddUser", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", decode[map[string]any](t, rec)["error"])
}

func TestLoginReturnsListedIdentifier(t *testing.T) {
	r, _ := newTestRouter(t)
	register(t, r, "alice", "a@example.com", "pw")
	register(t, r, "bob", "b@example.com", "secret")

	rec := login(t, r, "bob", "secret")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[struct {
		Message string `json:"message"`
		UserID  int64  `json:"userId"`
	}](t, rec)
	assert.Equal(t, "login successful", got.Message)

	list := decode[[]userRow](t, do(t, r, http.MethodGet, "/user/AllUsers", nil))
	require.Len(t, list, 2)
	var bobID int64 = -1
	for _, u := range list {
		if u.Attributes["username"] == "bob" {
			bobID = u.UserID
		}
	}
	assert.Equal(t, bobID, got.UserID)
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	r, _ := newTestRouter(t)
	register(t, r, "alice", "a@example.com", "pw")

	for _, pw := range []string{"pw2", "p", ""} {
		rec := login(t, r, "alice", pw)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, pw)
	}
	assert.Equal(t, http.StatusUnauthorized, login(t, r, "nobody", "pw").Code)
}

func TestAllUsersShape(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := do(t, r, http.MethodGet, "/user/AllUsers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	register(t, r, "alice", "a@example.com", "pw")
	list := decode[[]userRow](t, do(t, r, http.MethodGet, "/user/AllUsers", nil))
	require.Len(t, list, 1)
	assert.Equal(t, map[string]any{
		"username": "alice", "email": "a@example.com", "password": "pw", "role": "customer",
	}, list[0].Attributes)
}

func TestUpdateUser(t *testing.T) {
	r, _ := newTestRouter(t)
	register(t, r, "alice", "a@example.com", "pw")
	id := decode[[]userRow](t, do(t, r, http.MethodGet, "/user/AllUsers", nil))[0].UserID

	q := url.Values{
		"userId":      {fmt.Sprint(id)},
		"newUsername": {"alicia"},
		"newEmail":    {"alicia@example.com"},
		"newPassword": {"pw2"},
		"newRole":     {"admin"},
	}
	rec := do(t, r, http.MethodPut, "/user/UpdateUser?"+q.Encode(), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, http.StatusOK, login(t, r, "alicia", "pw2").Code)

	q.Del("newRole")
	rec = do(t, r, http.MethodPut, "/user/UpdateUser?"+q.Encode(), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndRemoveUnknownUserNotFound(t *testing.T) {
	r, _ := newTestRouter(t)
	register(t, r, "alice", "a@example.com", "pw")
	before := do(t, r, http.MethodGet, "/user/AllUsers", nil).Body.String()

	q := url.Values{
		"userId":      {"42"},
		"newUsername": {"x"},
		"newEmail":    {"x@example.com"},
		"newPassword": {"x"},
		"newRole":     {"x"},
	}
	rec := do(t, r, http.MethodPut, "/user/UpdateUser?"+q.Encode(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decode[map[string]any](t, rec)["error"])

	rec = do(t, r, http.MethodDelete, "/user?userId=42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.JSONEq(t, before, do(t, r, http.MethodGet, "/user/AllUsers", nil).Body.String())
}

func TestRemoveUserDropsEdgesKeepsNodes(t *testing.T) {
	r, g := newTestRouter(t)
	register(t, r, "alice", "a@example.com", "pw")
	uid := decode[[]userRow](t, do(t, r, http.MethodGet, "/user/AllUsers", nil))[0].UserID

	rec := do(t, r, http.MethodPost, fmt.Sprintf("/reservation?userId=%d", uid), map[string]any{
		"reservationDate": "2024-05-01T10:00:00Z", "duration": 3,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/review/AddReview", map[string]any{"rating": 5, "comment": "great"}).Code)
	rid := decode[[]reviewRow](t, do(t, r, http.MethodGet, "/review/AllReviews", nil))[0].ReviewID
	rec = do(t, r, http.MethodPost, fmt.Sprintf("/review/GiveReview?userId=%d&reviewId=%d", uid, rid), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, g.Relationships(db.RelMakes), 1)
	require.Len(t, g.Relationships(db.RelGives), 1)

	rec = do(t, r, http.MethodDelete, fmt.Sprintf("/user?userId=%d", uid), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Empty(t, g.Relationships(db.RelMakes))
	assert.Empty(t, g.Relationships(db.RelGives))
	assert.Equal(t, 1, g.Count(db.LabelReservation))
	assert.Equal(t, 1, g.Count(db.LabelReview))
}

func TestAddReservationUnknownUserIsSilent(t *testing.T) {
	r, g := newTestRouter(t)
	rec := do(t, r, http.MethodPost, "/reservation?userId=99", map[string]any{
		"reservationDate": "2024-05-01T10:00:00Z", "duration": 2,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, g.Count(db.LabelReservation))
	assert.Empty(t, g.Relationships(db.RelMakes))
}

func TestAddReservationRequiresUserID(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := do(t, r, http.MethodPost, "/reservation", map[string]any{"duration": 2})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReservationLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)
	register(t, r, "alice", "a@example.com", "pw")
	uid := decode[[]userRow](t, do(t, r, http.MethodGet, "/user/AllUsers", nil))[0].UserID
	rec := do(t, r, http.MethodPost, fmt.Sprintf("/reservation?userId=%d", uid), map[string]any{
		"reservationDate": "2024-05-01T10:00:00Z", "duration": 3,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	nodes := decode[[]db.Node](t, do(t, r, http.MethodGet, "/reservation/AllReservations", nil))
	require.Len(t, nodes, 1)
	assert.Equal(t, []string{db.LabelReservation}, nodes[0].Labels)
	assert.EqualValues(t, 3, nodes[0].Properties["duration"])

	q := url.Values{
		"reservationId":      {fmt.Sprint(nodes[0].ID)},
		"newDuration":        {"7"},
		"newReservationDate": {"2024-06-01T09:00:00Z"},
	}
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPut, "/reservation/UpdateReservation?"+q.Encode(), nil).Code)
	nodes = decode[[]db.Node](t, do(t, r, http.MethodGet, "/reservation/AllReservations", nil))
	assert.EqualValues(t, 7, nodes[0].Properties["duration"])
	assert.Equal(t, "2024-06-01T09:00:00Z", nodes[0].Properties["reservationDate"])

	q.Set("newReservationDate", "tomorrow")
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPut, "/reservation/UpdateReservation?"+q.Encode(), nil).Code)

	require.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, fmt.Sprintf("/reservation?reservationId=%d", nodes[0].ID), nil).Code)
	assert.JSONEq(t, `[]`, do(t, r, http.MethodGet, "/reservation/AllReservations", nil).Body.String())
}

func TestUnknownReservationIsSilentNoop(t *testing.T) {
	r, _ := newTestRouter(t)
	register(t, r, "alice", "a@example.com", "pw")
	uid := decode[[]userRow](t, do(t, r, http.MethodGet, "/user/AllUsers", nil))[0].UserID
	do(t, r, http.MethodPost, fmt.Sprintf("/reservation?userId=%d", uid), map[string]any{
		"reservationDate": "2024-05-01T10:00:00Z", "duration": 3,
	})
	before := do(t, r, http.MethodGet, "/reservation/AllReservations", nil).Body.String()

	q := url.Values{"reservationId": {"999"}, "newDuration": {"1"}, "newReservationDate": {"2025-01-01T00:00:00Z"}}
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodPut, "/reservation/UpdateReservation?"+q.Encode(), nil).Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, "/reservation?reservationId=999", nil).Code)
	// a User id is not a Reservation id
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, fmt.Sprintf("/reservation?reservationId=%d", uid), nil).Code)

	assert.JSONEq(t, before, do(t, r, http.MethodGet, "/reservation/AllReservations", nil).Body.String())
	assert.Len(t, decode[[]userRow](t, do(t, r, http.MethodGet, "/user/AllUsers", nil)), 1)
}

func TestAddReviewRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := do(t, r, http.MethodPost, "/review/AddReview", map[string]any{"id": "mine", "rating": 4, "comment": "ok"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[db.Review](t, rec)
	assert.NotEqual(t, "mine", created.ID)
	assert.NotEmpty(t, created.ID)

	list := decode[[]reviewRow](t, do(t, r, http.MethodGet, "/review/AllReviews", nil))
	require.Len(t, list, 1)
	assert.EqualValues(t, 4, list[0].Attributes["rating"])
	assert.Equal(t, "ok", list[0].Attributes["comment"])
	assert.Equal(t, created.ID, list[0].Attributes["id"])
	assert.NotEqual(t, fmt.Sprint(list[0].ReviewID), list[0].Attributes["id"])
}

func TestAddReviewRatingOutOfRange(t *testing.T) {
	r, g := newTestRouter(t)
	for _, rating := range []int{0, 6} {
		rec := do(t, r, http.MethodPost, "/review/AddReview", map[string]any{"rating": rating, "comment": "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	assert.Equal(t, 0, g.Count(db.LabelReview))
}

func TestGiveReviewUnknownEndpointsIsSilent(t *testing.T) {
	r, g := newTestRouter(t)
	register(t, r, "alice", "a@example.com", "pw")
	uid := decode[[]userRow](t, do(t, r, http.MethodGet, "/user/AllUsers", nil))[0].UserID

	rec := do(t, r, http.MethodPost, fmt.Sprintf("/review/GiveReview?userId=%d&reviewId=77", uid), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, g.Relationships(db.RelGives))

	rec = do(t, r, http.MethodPost, "/review/GiveReview?userId=1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndRemoveReview(t *testing.T) {
	r, _ := newTestRouter(t)
	do(t, r, http.MethodPost, "/review/AddReview", map[string]any{"rating": 2, "comment": "meh"})
	rid := decode[[]reviewRow](t, do(t, r, http.MethodGet, "/review/AllReviews", nil))[0].ReviewID

	q := url.Values{"reviewId": {fmt.Sprint(rid)}, "newRating": {"5"}, "newComment": {"better"}}
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPut, "/review/UpdateReview?"+q.Encode(), nil).Code)
	list := decode[[]reviewRow](t, do(t, r, http.MethodGet, "/review/AllReviews", nil))
	assert.EqualValues(t, 5, list[0].Attributes["rating"])
	assert.Equal(t, "better", list[0].Attributes["comment"])

	q.Set("reviewId", "500")
	rec := do(t, r, http.MethodPut, "/review/UpdateReview?"+q.Encode(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, "/review?reviewId=500", nil).Code)

	require.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, fmt.Sprintf("/review?reviewId=%d", rid), nil).Code)
	assert.JSONEq(t, `[]`, do(t, r, http.MethodGet, "/review/AllReviews", nil).Body.String())
}

func TestBcryptModeStoresHashAndLogsIn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := db.NewMemoryGraph()
	r := NewRouter(g, password.Bcrypt)
	register(t, r, "alice", "a@example.com", "pw")

	list := decode[[]userRow](t, do(t, r, http.MethodGet, "/user/AllUsers", nil))
	require.Len(t, list, 1)
	assert.NotEqual(t, "pw", list[0].Attributes["password"])

	rec := login(t, r, "alice", "pw")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, list[0].UserID, decode[map[string]any](t, rec)["userId"])
	assert.Equal(t, http.StatusUnauthorized, login(t, r, "alice", "nope").Code)
}

type downGraph struct{ *db.MemoryGraph }

func (downGraph) Ping(context.Context) error { return errors.New("connection refused") }

func TestHealthzUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(downGraph{db.NewMemoryGraph()}, password.Plaintext)
	rec := do(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unavailable", decode[map[string]any](t, rec)["status"])
}
