package handlers

import (
	"net/http"

	catalogRepo "arenaslot/database/repository/catalog"
	"arenaslot/models"

	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	Repo catalogRepo.PackageRepository
}

func NewPackageHandler(repo catalogRepo.PackageRepository) *PackageHandler {
	return &PackageHandler{Repo: repo}
}

func (h *PackageHandler) AddPackageHandler(c *gin.Context) {
	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if pkg.Name == "" || pkg.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "package_name and a positive price are required"})
		return
	}

	if err := h.Repo.Create(&pkg); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// EditPackageHandler applies a partial update: fields absent from the body
// keep their stored values.
func (h *PackageHandler) EditPackageHandler(c *gin.Context) {
	var payload struct {
		Name              *string `json:"package_name"`
		ParticipantsCount *int    `json:"participants_count"`
		TotalPrizePool    *int64  `json:"total_prize_pool"`
		Price             *int64  `json:"price"`
		Description       *string `json:"description"`
		Status            *int    `json:"status"`
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

	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.ParticipantsCount != nil {
		existing.ParticipantsCount = *payload.ParticipantsCount
	}
	if payload.TotalPrizePool != nil {
		existing.TotalPrizePool = *payload.TotalPrizePool
	}
	if payload.Price != nil {
		if *payload.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
			return
		}
		existing.Price = *payload.Price
	}
	if payload.Description != nil {
		existing.Description = *payload.Description
	}
	if payload.Status != nil {
		existing.Status = *payload.Status
	}

	if err := h.Repo.Update(existing); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "package updated"})
}

func (h *PackageHandler) DeletePackageHandler(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "package deleted"})
}

func (h *PackageHandler) GetPackagesHandler(c *gin.Context) {
	packages, err := h.Repo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *PackageHandler) GetActivePackagesHandler(c *gin.Context) {
	packages, err := h.Repo.GetActive()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}
