package contentsave

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

// MockService реализует интерфейс contentsave.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) SetContent(ctx context.Context, examID, content string, sections []models.Section) (*models.Exam, error) {
	args := m.Called(ctx, examID, content, sections)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exam), args.Error(1)
}

func TestContentSaveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	examID := uuid.New().String()

	tests := []struct {
		name           string
		examID         string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "сохранение контента и секций",
			examID: examID,
			body:   `{"content":"text","sections":[{"title":"Алгебра","id":"algebra","link":"/algebra"}]}`,
			setupMock: func(m *MockService) {
				sections := []models.Section{{Title: "Алгебра", ID: "algebra", Link: "/algebra"}}
				m.On("SetContent", mock.Anything, examID, "text", sections).
					Return(&models.Exam{ID: examID, Content: "text", Sections: sections}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"Алгебра"`,
		},
		{
			name:   "пустой массив секций стирает прежние",
			examID: examID,
			body:   `{"content":"","sections":[]}`,
			setupMock: func(m *MockService) {
				m.On("SetContent", mock.Anything, examID, "", []models.Section{}).
					Return(&models.Exam{ID: examID, Sections: []models.Section{}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"sections":[]`,
		},
		{
			name:           "секции отсутствуют",
			examID:         examID,
			body:           `{"content":"text"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Sections must be an array"`,
		},
		{
			name:           "секции null",
			examID:         examID,
			body:           `{"content":"text","sections":null}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Sections must be an array"`,
		},
		{
			name:           "секции объектом вместо массива",
			examID:         examID,
			body:           `{"content":"text","sections":{"title":"x"}}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Sections must be an array"`,
		},
		{
			name:           "некорректный идентификатор",
			examID:         "zzz",
			body:           `{"content":"","sections":[]}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid examId"`,
		},
		{
			name:   "экзамен не найден",
			examID: examID,
			body:   `{"content":"text","sections":[]}`,
			setupMock: func(m *MockService) {
				m.On("SetContent", mock.Anything, examID, "text", []models.Section{}).
					Return(nil, examservice.ErrExamNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Exam not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/exams/"+tt.examID+"/content", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("examId", tt.examID)
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
