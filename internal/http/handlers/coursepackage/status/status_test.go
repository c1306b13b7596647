package status

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/crackora-admin/internal/models"
	packageservice "github.com/magabrotheeeer/crackora-admin/internal/services/coursepackage"
)

// MockService реализует интерфейс status.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateStatus(ctx context.Context, id string, isActive bool) (*models.CoursePackage, error) {
	args := m.Called(ctx, id, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CoursePackage), args.Error(1)
}

func TestStatusHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pkgID := uuid.New().String()

	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "деактивация пакета",
			id:   pkgID,
			body: `{"isActive":false}`,
			setupMock: func(m *MockService) {
				m.On("UpdateStatus", mock.Anything, pkgID, false).
					Return(&models.CoursePackage{ID: pkgID, IsActive: false}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Course package status updated"`,
		},
		{
			name: "активация пакета",
			id:   pkgID,
			body: `{"isActive":true}`,
			setupMock: func(m *MockService) {
				m.On("UpdateStatus", mock.Anything, pkgID, true).
					Return(&models.CoursePackage{ID: pkgID, IsActive: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"isActive":true`,
		},
		{
			name:           "isActive отсутствует",
			id:             pkgID,
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"isActive must be a boolean"`,
		},
		{
			name:           "isActive строка вместо булевого значения",
			id:             pkgID,
			body:           `{"isActive":"yes"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"isActive must be a boolean"`,
		},
		{
			name:           "некорректный идентификатор",
			id:             "123",
			body:           `{"isActive":true}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid course package ID"`,
		},
		{
			name: "пакет не найден",
			id:   pkgID,
			body: `{"isActive":true}`,
			setupMock: func(m *MockService) {
				m.On("UpdateStatus", mock.Anything, pkgID, true).
					Return(nil, packageservice.ErrPackageNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Course package not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, "/api/course-packages/"+tt.id+"/status", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
