package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performVerify(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/paiements/statut", h.VerifyPaymentStatus)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestVerifyPaymentStatus_MissingCommandeID(t *testing.T) {
	rec := performVerify(t, &Handler{}, "/api/paiements/statut")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["outcome"])
	assert.Equal(t, "commande_id manquant", body["message"])
}

func TestVerifyPaymentStatus_MalformedCommandeID(t *testing.T) {
	rec := performVerify(t, &Handler{}, "/api/paiements/statut?commande_id=abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["outcome"])
}
