package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/veldtdb/fileiod/internal/monitoring"
	"github.com/veldtdb/fileiod/internal/types"
)

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "fileiod",
		"status":  "running",
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) listServices(c *gin.Context) {
	var category *types.Category
	if v := c.Query("category"); v != "" {
		cat := types.Category(v)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{"services": s.registry.List(category)})
}

func (s *Server) executeService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appCtx *types.Context
	if req.QueryID != nil {
		appCtx = &types.Context{QueryID: req.QueryID}
	}

	timer := monitoring.NewTimer(s.metrics, req.ToolID)
	result, err := s.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.Success {
		timer.Stop("ok")
	} else {
		timer.Stop("failed")
		if result.Error != nil {
			s.log.Debug("tool call failed",
				zap.String("tool", req.ToolID),
				zap.String("error", *result.Error))
		}
	}

	c.JSON(http.StatusOK, result)
}
