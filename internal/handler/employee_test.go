package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/teamtree-io/teamtree/internal/handler"
	"github.com/teamtree-io/teamtree/internal/resputil"
)

// Binding-level validation runs before the store is touched, so these cases
// work without a database.
func TestCreateEmployeeRejectsInvalidPayloads(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mgr := handler.NewEmployeeMgr(&handler.RegisterConfig{})
	r := gin.New()
	mgr.RegisterRoutes(r.Group("/v1/employees"))

	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"rank": 2}`},
		{name: "rank too high", body: `{"name": "x", "rank": 5}`},
		{name: "rank zero", body: `{"name": "x", "rank": 0}`},
		{name: "not json", body: `rank=2`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/employees", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var env struct {
				Code resputil.ErrorCode `json:"code"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			require.Equal(t, resputil.InvalidRequest, env.Code)
		})
	}
}

func TestUpdateEmployeeRejectsGarbageID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mgr := handler.NewEmployeeMgr(&handler.RegisterConfig{})
	r := gin.New()
	mgr.RegisterRoutes(r.Group("/v1/employees"))

	req := httptest.NewRequest(http.MethodPut, "/v1/employees/oops", strings.NewReader(`{"name":"x","rank":1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
