package contentread

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
	examservice "github.com/magabrotheeeer/crackora-admin/internal/services/exam"
)

// MockService реализует интерфейс contentread.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) GetContent(ctx context.Context, examID string) (string, []models.Section, error) {
	args := m.Called(ctx, examID)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).([]models.Section), args.Error(2)
}

func TestContentReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	examID := uuid.New().String()

	tests := []struct {
		name           string
		examID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name:   "контент с секциями",
			examID: examID,
			setupMock: func(m *MockService) {
				m.On("GetContent", mock.Anything, examID).Return("<p>Разбор задач</p>", []models.Section{
					{Title: "Алгебра", ID: "algebra", Link: "/algebra"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`Разбор задач`, `"title":"Алгебра"`},
		},
		{
			name:   "незаполненный контент",
			examID: examID,
			setupMock: func(m *MockService) {
				m.On("GetContent", mock.Anything, examID).Return("", []models.Section{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"content":""`, `"sections":[]`},
		},
		{
			name:           "некорректный идентификатор",
			examID:         "nope",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{`"message":"Invalid examId"`},
		},
		{
			name:   "экзамен не найден",
			examID: examID,
			setupMock: func(m *MockService) {
				m.On("GetContent", mock.Anything, examID).Return("", nil, examservice.ErrExamNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   []string{`"message":"Exam not found"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/exams/"+tt.examID+"/content", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("examId", tt.examID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, fragment := range tt.expectedBody {
				assert.True(t, strings.Contains(w.Body.String(), fragment),
					"response body should contain %s, got %s", fragment, w.Body.String())
			}

			mockService.AssertExpectations(t)
		})
	}
}
