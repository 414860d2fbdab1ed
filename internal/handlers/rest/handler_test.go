package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/eatwhat/internal/models"
	sessionService "github.com/KirkDiggler/eatwhat/internal/services/session"
	sessionMocks "github.com/KirkDiggler/eatwhat/internal/services/session/mocks"
	userService "github.com/KirkDiggler/eatwhat/internal/services/user"
	userMocks "github.com/KirkDiggler/eatwhat/internal/services/user/mocks"
)

type RestHandlerTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockSessionService *sessionMocks.MockService
	mockUserService    *userMocks.MockService
	router             *gin.Engine

	testTime    time.Time
	openSession *models.Session
}

func (s *RestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionService = sessionMocks.NewMockService(s.mockCtrl)
	s.mockUserService = userMocks.NewMockService(s.mockCtrl)

	handler, err := New(&Config{
		SessionService: s.mockSessionService,
		UserService:    s.mockUserService,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router)

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.openSession = &models.Session{
		Code:      "ABC123",
		Initiator: "alice",
		Status:    models.SessionStatusOpen,
		CreatedAt: s.testTime,
	}
}

func (s *RestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RestHandlerTestSuite))
}

func (s *RestHandlerTestSuite) do(method, path, body string) (*httptest.ResponseRecorder, *Response) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp Response
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return w, &resp
}

func (s *RestHandlerTestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "ok")
}

func (s *RestHandlerTestSuite) TestCreateSession() {
	s.mockSessionService.EXPECT().
		CreateSession(gomock.Any(), &sessionService.CreateSessionInput{Username: "alice"}).
		Return(&sessionService.CreateSessionOutput{Session: s.openSession}, nil)

	w, resp := s.do(http.MethodPost, "/api/v1/sessions", `{"username":"alice"}`)

	s.Equal(http.StatusOK, w.Code)
	s.True(resp.Success)
	s.Equal(http.StatusOK, resp.Code)

	data := resp.Data.(map[string]any)
	s.Equal("ABC123", data["sessionCode"])
	s.Equal("alice", data["initiator"])
	s.Equal("open", data["status"])
	s.NotContains(data, "selection")
}

func (s *RestHandlerTestSuite) TestCreateSessionMissingUsername() {
	w, resp := s.do(http.MethodPost, "/api/v1/sessions", `{}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.False(resp.Success)
	s.Equal(http.StatusBadRequest, resp.Code)
}

func (s *RestHandlerTestSuite) TestCreateSessionForbidden() {
	s.mockSessionService.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		Return(nil, sessionService.ErrNotSessionInitiator)

	w, resp := s.do(http.MethodPost, "/api/v1/sessions", `{"username":"bob"}`)

	s.Equal(http.StatusForbidden, w.Code)
	s.False(resp.Success)
}

func (s *RestHandlerTestSuite) TestCreateSessionExhausted() {
	s.mockSessionService.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		Return(nil, sessionService.ErrCodeSpaceExhausted)

	w, _ := s.do(http.MethodPost, "/api/v1/sessions", `{"username":"alice"}`)

	s.Equal(http.StatusServiceUnavailable, w.Code)
}

func (s *RestHandlerTestSuite) TestGetSession() {
	s.mockSessionService.EXPECT().
		GetSession(gomock.Any(), &sessionService.GetSessionInput{Code: "ABC123"}).
		Return(&sessionService.GetSessionOutput{Session: s.openSession}, nil)

	w, resp := s.do(http.MethodGet, "/api/v1/sessions/ABC123", "")

	s.Equal(http.StatusOK, w.Code)
	s.True(resp.Success)
}

func (s *RestHandlerTestSuite) TestGetSessionNotFound() {
	s.mockSessionService.EXPECT().GetSession(gomock.Any(), gomock.Any()).
		Return(nil, sessionService.ErrSessionNotFound)

	w, resp := s.do(http.MethodGet, "/api/v1/sessions/NOPE99", "")

	s.Equal(http.StatusNotFound, w.Code)
	s.False(resp.Success)
	s.Equal(http.StatusNotFound, resp.Code)
}

func (s *RestHandlerTestSuite) TestGetSessionStatusLocked() {
	lockedAt := s.testTime.Add(time.Minute)
	locked := &models.Session{
		Code:     "ABC123",
		Status:   models.SessionStatusLocked,
		LockedAt: &lockedAt,
	}

	s.mockSessionService.EXPECT().GetSession(gomock.Any(), gomock.Any()).
		Return(&sessionService.GetSessionOutput{Session: locked}, nil)

	w, resp := s.do(http.MethodGet, "/api/v1/sessions/ABC123/status", "")

	s.Equal(http.StatusOK, w.Code)

	data := resp.Data.(map[string]any)
	s.Equal("ABC123", data["sessionCode"])
	s.Equal(true, data["locked"])
}

func (s *RestHandlerTestSuite) TestSubmitRestaurant() {
	restaurant := &models.Restaurant{
		ID:          "r1",
		SessionCode: "ABC123",
		Name:        "Pizza Place",
		SubmittedBy: "alice",
		SubmittedAt: s.testTime,
	}

	s.mockSessionService.EXPECT().
		SubmitRestaurant(gomock.Any(), &sessionService.SubmitRestaurantInput{
			SessionCode: "ABC123",
			Name:        "Pizza Place",
			SubmittedBy: "alice",
		}).
		Return(&sessionService.SubmitRestaurantOutput{Restaurant: restaurant}, nil)

	w, resp := s.do(http.MethodPost, "/api/v1/sessions/ABC123/restaurants",
		`{"restaurantName":"Pizza Place","submittedBy":"alice"}`)

	s.Equal(http.StatusOK, w.Code)
	s.True(resp.Success)

	data := resp.Data.(map[string]any)
	s.Equal("r1", data["id"])
	s.Equal("Pizza Place", data["restaurantName"])
	s.Equal("alice", data["submittedBy"])
}

func (s *RestHandlerTestSuite) TestSubmitRestaurantMissingFields() {
	w, _ := s.do(http.MethodPost, "/api/v1/sessions/ABC123/restaurants",
		`{"restaurantName":"Pizza Place"}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RestHandlerTestSuite) TestSubmitRestaurantLocked() {
	s.mockSessionService.EXPECT().SubmitRestaurant(gomock.Any(), gomock.Any()).
		Return(nil, sessionService.ErrSessionLocked)

	w, resp := s.do(http.MethodPost, "/api/v1/sessions/ABC123/restaurants",
		`{"restaurantName":"Sushi","submittedBy":"bob"}`)

	s.Equal(http.StatusConflict, w.Code)
	s.Equal(http.StatusConflict, resp.Code)
}

func (s *RestHandlerTestSuite) TestListRestaurants() {
	restaurants := []*models.Restaurant{
		{ID: "r1", SessionCode: "ABC123", Name: "Pizza Place", SubmittedBy: "alice", SubmittedAt: s.testTime},
		{ID: "r2", SessionCode: "ABC123", Name: "Tacos", SubmittedBy: "bob", SubmittedAt: s.testTime},
	}

	s.mockSessionService.EXPECT().
		ListRestaurants(gomock.Any(), &sessionService.ListRestaurantsInput{SessionCode: "ABC123"}).
		Return(&sessionService.ListRestaurantsOutput{Restaurants: restaurants}, nil)

	w, resp := s.do(http.MethodGet, "/api/v1/sessions/ABC123/restaurants", "")

	s.Equal(http.StatusOK, w.Code)

	data := resp.Data.([]any)
	s.Len(data, 2)
	s.Equal("Pizza Place", data[0].(map[string]any)["restaurantName"])
	s.Equal("Tacos", data[1].(map[string]any)["restaurantName"])
}

func (s *RestHandlerTestSuite) TestDeleteRestaurant() {
	s.mockSessionService.EXPECT().
		DeleteRestaurant(gomock.Any(), &sessionService.DeleteRestaurantInput{
			SessionCode:  "ABC123",
			RestaurantID: "r1",
			RequestedBy:  "alice",
		}).
		Return(&sessionService.DeleteRestaurantOutput{}, nil)

	w, resp := s.do(http.MethodDelete, "/api/v1/sessions/ABC123/restaurants/r1?username=alice", "")

	s.Equal(http.StatusOK, w.Code)
	s.True(resp.Success)
}

func (s *RestHandlerTestSuite) TestDeleteRestaurantMissingUsername() {
	w, _ := s.do(http.MethodDelete, "/api/v1/sessions/ABC123/restaurants/r1", "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RestHandlerTestSuite) TestDeleteRestaurantNotOwner() {
	s.mockSessionService.EXPECT().DeleteRestaurant(gomock.Any(), gomock.Any()).
		Return(nil, sessionService.ErrNotSuggestionOwner)

	w, _ := s.do(http.MethodDelete, "/api/v1/sessions/ABC123/restaurants/r1?username=bob", "")

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RestHandlerTestSuite) TestCountRestaurants() {
	s.mockSessionService.EXPECT().
		CountRestaurants(gomock.Any(), &sessionService.CountRestaurantsInput{SessionCode: "ABC123"}).
		Return(&sessionService.CountRestaurantsOutput{Count: 3}, nil)

	w, resp := s.do(http.MethodGet, "/api/v1/sessions/ABC123/restaurants/count", "")

	s.Equal(http.StatusOK, w.Code)

	data := resp.Data.(map[string]any)
	s.Equal(float64(3), data["count"])
}

func (s *RestHandlerTestSuite) TestDrawRandom() {
	restaurant := &models.Restaurant{
		ID:          "r2",
		SessionCode: "ABC123",
		Name:        "Tacos",
		SubmittedBy: "bob",
		SubmittedAt: s.testTime,
	}

	s.mockSessionService.EXPECT().
		DrawRandom(gomock.Any(), &sessionService.DrawRandomInput{
			SessionCode: "ABC123",
			RequestedBy: "alice",
		}).
		Return(&sessionService.DrawRandomOutput{Restaurant: restaurant}, nil)

	w, resp := s.do(http.MethodGet, "/api/v1/sessions/ABC123/restaurants/random?username=alice", "")

	s.Equal(http.StatusOK, w.Code)
	s.True(resp.Success)
	s.Equal("Random restaurant selected", resp.Message)

	data := resp.Data.(map[string]any)
	s.Equal("Tacos", data["restaurantName"])
}

func (s *RestHandlerTestSuite) TestDrawRandomMissingUsername() {
	w, _ := s.do(http.MethodGet, "/api/v1/sessions/ABC123/restaurants/random", "")

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RestHandlerTestSuite) TestDrawRandomNotFirstSubmitter() {
	s.mockSessionService.EXPECT().DrawRandom(gomock.Any(), gomock.Any()).
		Return(nil, sessionService.ErrNotFirstSubmitter)

	w, _ := s.do(http.MethodGet, "/api/v1/sessions/ABC123/restaurants/random?username=bob", "")

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *RestHandlerTestSuite) TestDrawRandomEmptyLedger() {
	s.mockSessionService.EXPECT().DrawRandom(gomock.Any(), gomock.Any()).
		Return(nil, sessionService.ErrNoRestaurants)

	w, _ := s.do(http.MethodGet, "/api/v1/sessions/ABC123/restaurants/random?username=alice", "")

	s.Equal(http.StatusConflict, w.Code)
}

func (s *RestHandlerTestSuite) TestCanRequestRandom() {
	s.mockSessionService.EXPECT().
		CanRequestRandom(gomock.Any(), &sessionService.CanRequestRandomInput{
			SessionCode: "ABC123",
			Username:    "alice",
		}).
		Return(&sessionService.CanRequestRandomOutput{CanRequest: true}, nil)

	w, resp := s.do(http.MethodGet, "/api/v1/sessions/ABC123/restaurants/can-request-random/alice", "")

	s.Equal(http.StatusOK, w.Code)

	data := resp.Data.(map[string]any)
	s.Equal(true, data["canRequest"])
}

func (s *RestHandlerTestSuite) TestListUsers() {
	users := []*models.User{
		{Username: "alice", Email: "alice@example.com", Role: models.UserRoleSessionInitiator, CreatedAt: s.testTime},
	}

	s.mockUserService.EXPECT().GetUsers(gomock.Any(), gomock.Any()).
		Return(&userService.GetUsersOutput{Users: users}, nil)

	w, resp := s.do(http.MethodGet, "/api/v1/users", "")

	s.Equal(http.StatusOK, w.Code)

	data := resp.Data.([]any)
	s.Len(data, 1)
	s.Equal("alice", data[0].(map[string]any)["username"])
	s.Equal("session_initiator", data[0].(map[string]any)["role"])
}

func (s *RestHandlerTestSuite) TestValidateUser() {
	s.mockUserService.EXPECT().
		ValidateUser(gomock.Any(), &userService.ValidateUserInput{Username: "alice"}).
		Return(&userService.ValidateUserOutput{
			Valid:            true,
			CanCreateSession: true,
		}, nil)

	w, resp := s.do(http.MethodGet, "/api/v1/users/validate/alice", "")

	s.Equal(http.StatusOK, w.Code)

	data := resp.Data.(map[string]any)
	s.Equal("alice", data["username"])
	s.Equal(true, data["exists"])
	s.Equal(true, data["canInitiateSession"])
}

func (s *RestHandlerTestSuite) TestUserExists() {
	s.mockUserService.EXPECT().
		UserExists(gomock.Any(), &userService.UserExistsInput{Username: "mallory"}).
		Return(&userService.UserExistsOutput{Exists: false}, nil)

	w, resp := s.do(http.MethodGet, "/api/v1/users/exists/mallory", "")

	s.Equal(http.StatusOK, w.Code)

	data := resp.Data.(map[string]any)
	s.Equal("mallory", data["username"])
	s.Equal(false, data["exists"])
}
