package read

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

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, id string) (*models.CoursePackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CoursePackage), args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pkgID := uuid.New().String()

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение пакета",
			id:   pkgID,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, pkgID).Return(&models.CoursePackage{
					ID:            pkgID,
					Title:         "Полный курс",
					EntranceTitle: "ЕГЭ",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"entranceTitle":"ЕГЭ"`,
		},
		{
			name:           "некорректный идентификатор",
			id:             "not-a-uuid",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid course package ID"`,
		},
		{
			name: "пакет не найден",
			id:   pkgID,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, pkgID).Return(nil, packageservice.ErrPackageNotFound)
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

			req := httptest.NewRequest(http.MethodGet, "/api/course-packages/"+tt.id, nil)
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
