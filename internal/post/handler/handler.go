package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/microblog/blogsvc/internal/post"
	"github.com/microblog/blogsvc/internal/post/service"
	"github.com/microblog/blogsvc/pkg/metrics"
)

// RegisterPostRoutes wires the blog-post CRUD endpoints onto the engine.
func RegisterPostRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/blog-posts", func(c *gin.Context) {
		metrics.PostOperations.WithLabelValues("list", "ok").Inc()
		c.JSON(http.StatusOK, svc.List())
	})

	r.POST("/blog-posts", func(c *gin.Context) {
		var f post.Fields
		if err := c.ShouldBindJSON(&f); err != nil {
			metrics.PostOperations.WithLabelValues("create", "error").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p, err := svc.Create(f)
		if err != nil {
			metrics.PostOperations.WithLabelValues("create", "error").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		metrics.PostOperations.WithLabelValues("create", "ok").Inc()
		c.JSON(http.StatusCreated, p)
	})

	r.PUT("/blog-posts/:id", func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			// a non-numeric id cannot match any post
			metrics.PostOperations.WithLabelValues("update", "error").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		var f post.Fields
		if err := c.ShouldBindJSON(&f); err != nil {
			metrics.PostOperations.WithLabelValues("update", "error").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p, err := svc.Update(id, f)
		if err != nil {
			metrics.PostOperations.WithLabelValues("update", "error").Inc()
			if errors.Is(err, post.ErrMissingField) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		metrics.PostOperations.WithLabelValues("update", "ok").Inc()
		c.JSON(http.StatusOK, p)
	})

	r.DELETE("/blog-posts/:id", func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			metrics.PostOperations.WithLabelValues("delete", "error").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if err := svc.Delete(id); err != nil {
			metrics.PostOperations.WithLabelValues("delete", "error").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		metrics.PostOperations.WithLabelValues("delete", "ok").Inc()
		c.Status(http.StatusNoContent)
	})
}
