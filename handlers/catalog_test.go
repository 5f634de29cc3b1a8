package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arenaslot/models"
	"arenaslot/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock PackageRepository
type MockPackageRepo struct {
	mock.Mock
}

func (m *MockPackageRepo) Create(pkg *models.Package) error {
	return m.Called(pkg).Error(0)
}

func (m *MockPackageRepo) Update(pkg *models.Package) error {
	return m.Called(pkg).Error(0)
}

func (m *MockPackageRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockPackageRepo) GetByID(id string) (*models.Package, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Package), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPackageRepo) GetAll() ([]models.Package, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Package), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPackageRepo) GetActive() ([]models.Package, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Package), args.Error(1)
	}
	return nil, args.Error(1)
}

// Mock VideoRepository
type MockVideoRepo struct {
	mock.Mock
}

func (m *MockVideoRepo) Create(video *models.Video) error {
	return m.Called(video).Error(0)
}

func (m *MockVideoRepo) Update(video *models.Video) error {
	return m.Called(video).Error(0)
}

func (m *MockVideoRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockVideoRepo) GetByID(id string) (*models.Video, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepo) GetAll() ([]models.Video, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepo) GetActive() ([]models.Video, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEditPackageKeepsOmittedFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	created := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	stored := &models.Package{
		ID:                "pkg-1",
		Name:              "Squad Entry",
		ParticipantsCount: 4,
		TotalPrizePool:    50000,
		Price:             9900,
		Description:       "squad bracket",
		Status:            models.StatusActive,
		CreatedAt:         created,
	}

	repo := new(MockPackageRepo)
	repo.On("GetByID", "pkg-1").Return(stored, nil)
	repo.On("Update", mock.MatchedBy(func(pkg *models.Package) bool {
		return pkg.ID == "pkg-1" &&
			pkg.Price == 9900 &&
			pkg.Status == models.StatusActive &&
			pkg.CreatedAt.Equal(created) &&
			pkg.Description == "updated bracket rules"
	})).Return(nil)

	h := NewPackageHandler(repo)
	router := gin.New()
	router.PUT("/packages/:id", h.EditPackageHandler)

	w := performJSON(t, router, http.MethodPut, "/packages/pkg-1", map[string]interface{}{
		"description": "updated bracket rules",
	})

	require.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestEditPackageRejectsNonPositivePrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := new(MockPackageRepo)
	repo.On("GetByID", "pkg-1").Return(&models.Package{ID: "pkg-1", Price: 9900}, nil)

	h := NewPackageHandler(repo)
	router := gin.New()
	router.PUT("/packages/:id", h.EditPackageHandler)

	w := performJSON(t, router, http.MethodPut, "/packages/pkg-1", map[string]interface{}{
		"price": 0,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestEditPackageUnknownID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := new(MockPackageRepo)
	repo.On("GetByID", "missing").Return(nil, utils.NewNotFoundError("package not found"))

	h := NewPackageHandler(repo)
	router := gin.New()
	router.PUT("/packages/:id", h.EditPackageHandler)

	w := performJSON(t, router, http.MethodPut, "/packages/missing", map[string]interface{}{
		"description": "whatever",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditVideoKeepsOmittedFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	created := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	stored := &models.Video{
		ID:        "vid-1",
		Title:     "Grand Final Highlights",
		VideoURL:  "https://example.com/final",
		Status:    models.StatusActive,
		CreatedAt: created,
	}

	repo := new(MockVideoRepo)
	repo.On("GetByID", "vid-1").Return(stored, nil)
	repo.On("Update", mock.MatchedBy(func(video *models.Video) bool {
		return video.ID == "vid-1" &&
			video.VideoURL == "https://example.com/final" &&
			video.Status == models.StatusActive &&
			video.CreatedAt.Equal(created) &&
			video.Title == "Grand Final Full Match"
	})).Return(nil)

	h := NewVideoHandler(repo)
	router := gin.New()
	router.PUT("/videos/:id", h.EditVideoHandler)

	w := performJSON(t, router, http.MethodPut, "/videos/vid-1", map[string]interface{}{
		"title": "Grand Final Full Match",
	})

	require.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}
