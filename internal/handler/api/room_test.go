//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-nova/internal/domain/room"
	"hotel-nova/internal/handler/api"
	"hotel-nova/internal/usecase"
	"hotel-nova/tests/common/builder"
	"hotel-nova/tests/common/httptest"
	"hotel-nova/tests/common/testutil"
	usecasemock "hotel-nova/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockRoomUseCase
	handler     *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockRoomUseCase(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockUseCase)

	s.router.POST("/rooms", s.handler.AddRoom)
	s.router.GET("/rooms", s.handler.ListRooms)
	s.router.GET("/rooms/:number", s.handler.GetRoom)
	s.router.PATCH("/rooms/:number/status", s.handler.UpdateRoomStatus)
	s.router.DELETE("/rooms/:number", s.handler.RemoveRoom)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

type testCaseRoom struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *RoomHandlerTestSuite) TestAddRoom() {
	url := "/rooms"

	reqBody := builder.NewRoomBuilder().BuildCreateRequestDTO()
	returnRoom := builder.NewRoomBuilder().BuildPersisted()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockUseCase.EXPECT().AddRoom(gomock.Any(), gomock.Any()).
			Return(returnRoom, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(float64(101), body["number"])
		s.Equal("simple", body["category"])
		s.Equal("available", body["status"])
	})

	s.Run("success: a zero nightly rate is accepted", func() {
		freeRoom := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.RateCents = 0
		}).BuildPersisted()
		s.mockUseCase.EXPECT().AddRoom(gomock.Any(), gomock.Any()).
			Return(freeRoom, nil).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("rate_cents", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(float64(0), body["rateCents"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseRoom{
			{name: "missing field: number", mutate: testutil.Field("number", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: category", mutate: testutil.Field("category", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: rate_cents", mutate: testutil.Field("rate_cents", nil), expectCode: http.StatusBadRequest},
			{name: "zero number", mutate: testutil.Field("number", 0), expectCode: http.StatusBadRequest},
			{name: "negative rate", mutate: testutil.Field("rate_cents", -100), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
		}{
			{name: "duplicate room", usecaseError: usecase.ErrDuplicateRoom, expectedStatus: http.StatusConflict},
			{name: "unknown category", usecaseError: room.ErrInvalidCategory, expectedStatus: http.StatusUnprocessableEntity},
			{name: "negative rate", usecaseError: room.ErrNegativeRate, expectedStatus: http.StatusUnprocessableEntity},
			{name: "storage failure", usecaseError: usecase.ErrStorageFailure, expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().AddRoom(gomock.Any(), gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *RoomHandlerTestSuite) TestGetRoom() {
	s.Run("success: returns the room", func() {
		s.mockUseCase.EXPECT().FindRoomByNumber(gomock.Any(), 101).
			Return(builder.NewRoomBuilder().BuildPersisted(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/101", nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(101), body["number"])
		s.Equal(float64(5000), body["nightlyCents"])
	})

	s.Run("error: 404 when the room does not exist", func() {
		s.mockUseCase.EXPECT().FindRoomByNumber(gomock.Any(), 999).
			Return(nil, usecase.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/999", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 on a malformed room number", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RoomHandlerTestSuite) TestListRooms() {
	s.Run("success: returns every room", func() {
		rooms := []*room.Room{
			builder.NewRoomBuilder().BuildPersisted(),
			builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
				b.ID = 2
				b.Number = 102
			}).BuildPersisted(),
		}
		s.mockUseCase.EXPECT().ListRooms(gomock.Any()).Return(rooms, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})
}

func (s *RoomHandlerTestSuite) TestUpdateRoomStatus() {
	url := "/rooms/101/status"

	s.Run("success: returns the updated room", func() {
		updated := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.Status = "cleaning"
		}).BuildPersisted()
		s.mockUseCase.EXPECT().UpdateRoomStatus(gomock.Any(), 101, "cleaning").
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "cleaning"})

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cleaning", body["status"])
	})

	s.Run("error: 400 on an unknown status", func() {
		s.mockUseCase.EXPECT().UpdateRoomStatus(gomock.Any(), 101, "renovating").
			Return(nil, usecase.ErrInvalidRoomStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "renovating"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when the room does not exist", func() {
		s.mockUseCase.EXPECT().UpdateRoomStatus(gomock.Any(), 101, "cleaning").
			Return(nil, usecase.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "cleaning"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *RoomHandlerTestSuite) TestRemoveRoom() {
	s.Run("success: returns 204 No Content", func() {
		s.mockUseCase.EXPECT().RemoveRoom(gomock.Any(), 101).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rooms/101", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when the room does not exist", func() {
		s.mockUseCase.EXPECT().RemoveRoom(gomock.Any(), 999).Return(usecase.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rooms/999", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
