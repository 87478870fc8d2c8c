// Package server is a small reference implementation of the /markers
// backend the app talks to, used for local development and tests.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"immo-map/models"
	"immo-map/storage"
	"immo-map/utils"
)

type MarkerHandler struct {
	Store storage.MarkerStore
	NewID func() string
}

func NewMarkerHandler(store storage.MarkerStore) *MarkerHandler {
	return &MarkerHandler{Store: store, NewID: uuid.NewString}
}

// RegisterRoutes mounts the marker routes and a health check on r.
func (h *MarkerHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/markers", h.ListMarkers)
	r.POST("/markers", h.CreateMarker)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// NewRouter builds a gin engine serving h.
func NewRouter(h *MarkerHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	h.RegisterRoutes(r)
	return r
}

// GET /markers
func (h *MarkerHandler) ListMarkers(c *gin.Context) {
	list, err := h.Store.List(c.Request.Context())
	if err != nil {
		utils.Error("[ListMarkers] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if list == nil {
		list = []models.Marker{}
	}
	c.JSON(http.StatusOK, list)
}

// POST /markers
//
// Fields are stored exactly as received; the only thing added is the id.
func (h *MarkerHandler) CreateMarker(c *gin.Context) {
	var req models.ListingPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	marker := req.ToMarker(models.MarkerID(h.NewID()))
	if err := h.Store.Create(c.Request.Context(), marker); err != nil {
		utils.Error("[CreateMarker] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	utils.Info("[CreateMarker] stored %s listing %s", marker.Type, marker.ID)
	c.JSON(http.StatusCreated, marker)
}
