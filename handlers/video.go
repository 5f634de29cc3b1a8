package handlers

import (
	"net/http"

	catalogRepo "arenaslot/database/repository/catalog"
	"arenaslot/models"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	Repo catalogRepo.VideoRepository
}

func NewVideoHandler(repo catalogRepo.VideoRepository) *VideoHandler {
	return &VideoHandler{Repo: repo}
}

func (h *VideoHandler) AddVideoHandler(c *gin.Context) {
	var video models.Video
	if err := c.ShouldBindJSON(&video); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if video.VideoURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "videoUrl is required"})
		return
	}

	if err := h.Repo.Create(&video); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, video)
}

// EditVideoHandler applies a partial update: fields absent from the body
// keep their stored values.
func (h *VideoHandler) EditVideoHandler(c *gin.Context) {
	var payload struct {
		Title    *string `json:"title"`
		VideoURL *string `json:"videoUrl"`
		Status   *int    `json:"status"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	existing, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if payload.Title != nil {
		existing.Title = *payload.Title
	}
	if payload.VideoURL != nil {
		if *payload.VideoURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "videoUrl cannot be empty"})
			return
		}
		existing.VideoURL = *payload.VideoURL
	}
	if payload.Status != nil {
		existing.Status = *payload.Status
	}

	if err := h.Repo.Update(existing); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "video updated"})
}

func (h *VideoHandler) DeleteVideoHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "video deleted"})
}

func (h *VideoHandler) GetVideosHandler(c *gin.Context) {
	videos, err := h.Repo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *VideoHandler) GetActiveVideosHandler(c *gin.Context) {
	videos, err := h.Repo.GetActive()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}
