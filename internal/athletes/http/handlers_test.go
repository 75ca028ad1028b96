package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/clubnatacion/swimclub-backend/internal/athletes/domain"
	"github.com/clubnatacion/swimclub-backend/internal/athletes/service"
	authdomain "github.com/clubnatacion/swimclub-backend/internal/auth/domain"
)

type fakeAthleteService struct {
	registerErr   error
	activateErr   error
	deactivateErr error
	getView       *service.AthleteView
	getErr        error
}

func (f *fakeAthleteService) Register(_ context.Context, a *domain.Athlete, _ string) error {
	a.ID = "ath-1"
	return f.registerErr
}

func (f *fakeAthleteService) Get(context.Context, string) (*service.AthleteView, error) {
	return f.getView, f.getErr
}

func (f *fakeAthleteService) List(context.Context, domain.Status, string) ([]*service.AthleteView, error) {
	return nil, nil
}

func (f *fakeAthleteService) Activate(context.Context, string, string) error {
	return f.activateErr
}

func (f *fakeAthleteService) Deactivate(context.Context, string) error {
	return f.deactivateErr
}

func (f *fakeAthleteService) Update(context.Context, string, map[string]interface{}) error {
	return nil
}

func newTestRouter(svc AthleteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// Staff routes sit behind RequireRole; run as an approved admin so the
	// tests exercise the real route wiring.
	r.Use(func(c *gin.Context) {
		c.Set("user", &authdomain.User{UID: "admin-1", Role: authdomain.RoleAdmin, Approved: true})
	})

	NewHandler(svc, nil).Register(r.Group("/athletes"))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateHandler(t *testing.T) {
	t.Run("valid registration", func(t *testing.T) {
		r := newTestRouter(&fakeAthleteService{})
		w := doJSON(r, http.MethodPost, "/athletes",
			`{"name":"Josefa Morales","birthDate":"2012-04-03","gender":"F"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "ath-1")
	})

	t.Run("missing required fields", func(t *testing.T) {
		r := newTestRouter(&fakeAthleteService{})
		w := doJSON(r, http.MethodPost, "/athletes", `{"name":"Josefa"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid RUT maps to 400", func(t *testing.T) {
		r := newTestRouter(&fakeAthleteService{registerErr: domain.ErrInvalidRUT})
		w := doJSON(r, http.MethodPost, "/athletes",
			`{"name":"Josefa Morales","birthDate":"2012-04-03","gender":"F","rut":"1-1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestActivateHandler(t *testing.T) {
	t.Run("already in a group maps to 409", func(t *testing.T) {
		r := newTestRouter(&fakeAthleteService{activateErr: domain.ErrAlreadyInGroup})
		w := doJSON(r, http.MethodPost, "/athletes/ath-1/activate", `{"groupId":"g-1"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown athlete maps to 404", func(t *testing.T) {
		r := newTestRouter(&fakeAthleteService{activateErr: domain.ErrAthleteNotFound})
		w := doJSON(r, http.MethodPost, "/athletes/ath-9/activate", `{"groupId":"g-1"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		r := newTestRouter(&fakeAthleteService{})
		w := doJSON(r, http.MethodPost, "/athletes/ath-1/activate", `{"groupId":"g-1"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "activated")
	})
}

func TestDeactivateHandler(t *testing.T) {
	r := newTestRouter(&fakeAthleteService{deactivateErr: domain.ErrAthleteNotFound})
	w := doJSON(r, http.MethodPost, "/athletes/ath-9/deactivate", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetHandler(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r := newTestRouter(&fakeAthleteService{getErr: domain.ErrAthleteNotFound})
		w := doJSON(r, http.MethodGet, "/athletes/ath-9", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("found", func(t *testing.T) {
		view := &service.AthleteView{
			Athlete:  &domain.Athlete{ID: "ath-1", Name: "Josefa Morales"},
			Category: "INF B1",
		}
		r := newTestRouter(&fakeAthleteService{getView: view})
		w := doJSON(r, http.MethodGet, "/athletes/ath-1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "INF B1")
	})
}
