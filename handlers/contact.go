package handlers

import (
	"net/http"

	catalogRepo "arenaslot/database/repository/catalog"
	"arenaslot/models"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	Repo catalogRepo.ContactRepository
}

func NewContactHandler(repo catalogRepo.ContactRepository) *ContactHandler {
	return &ContactHandler{Repo: repo}
}

func (h *ContactHandler) SubmitContactHandler(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
		return
	}

	if err := h.Repo.Create(&msg); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "thanks for reaching out"})
}

func (h *ContactHandler) ListContactsHandler(c *gin.Context) {
	messages, err := h.Repo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
