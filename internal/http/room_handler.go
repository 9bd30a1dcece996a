package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"passion-match/internal/service"
)

// RoomHandler expone las salas a las que fue asignado el usuario.
type RoomHandler struct {
	logger   *zap.Logger
	clusters *service.ClusterService
}

func NewRoomHandler(logger *zap.Logger, clusters *service.ClusterService) *RoomHandler {
	return &RoomHandler{
		logger:   logger,
		clusters: clusters,
	}
}

// ListMyRooms maneja GET /me/rooms.
func (h *RoomHandler) ListMyRooms(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	rooms, err := h.clusters.ListUserRooms(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("list rooms failed", zap.Error(err), zap.String("user_id", claims.UserID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch rooms"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}
