package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	catalogRepo "arenaslot/database/repository/catalog"
	"arenaslot/models"
	storage "arenaslot/services/storage"
	"arenaslot/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const bannerFolder = "banners"

type BannerHandler struct {
	Repo    catalogRepo.BannerRepository
	Storage storage.StorageService
}

func NewBannerHandler(repo catalogRepo.BannerRepository, store storage.StorageService) *BannerHandler {
	return &BannerHandler{Repo: repo, Storage: store}
}

// AddBannerHandler accepts a multipart form with an image file plus metadata,
// pushes the image to object storage and stores its public id.
func (h *BannerHandler) AddBannerHandler(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		respondError(c, utils.NewDependencyError("failed to stage upload", err))
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, bannerFolder)
	if err != nil {
		respondError(c, utils.NewDependencyError("image upload failed", err))
		return
	}

	banner := models.Banner{
		Image:  publicID,
		Link:   c.PostForm("link"),
		Title:  c.PostForm("title"),
		Status: parseStatus(c.PostForm("status")),
	}
	if err := h.Repo.Create(&banner); err != nil {
		// best effort cleanup of the orphaned upload
		if delErr := h.Storage.DeleteFile(c.Request.Context(), publicID); delErr != nil {
			utils.GetLogger().Warn("failed to remove orphaned banner image", zap.String("publicID", publicID), zap.Error(delErr))
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, banner)
}

func (h *BannerHandler) EditBannerHandler(c *gin.Context) {
	existing, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	existing.Link = c.DefaultPostForm("link", existing.Link)
	existing.Title = c.DefaultPostForm("title", existing.Title)
	if raw := c.PostForm("status"); raw != "" {
		existing.Status = parseStatus(raw)
	}

	if file, ferr := c.FormFile("image"); ferr == nil {
		tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, tmpPath); err != nil {
			respondError(c, utils.NewDependencyError("failed to stage upload", err))
			return
		}
		defer os.Remove(tmpPath)

		publicID, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, bannerFolder)
		if err != nil {
			respondError(c, utils.NewDependencyError("image upload failed", err))
			return
		}
		oldID := existing.Image
		existing.Image = publicID
		if oldID != "" {
			if delErr := h.Storage.DeleteFile(c.Request.Context(), oldID); delErr != nil {
				utils.GetLogger().Warn("failed to remove replaced banner image", zap.String("publicID", oldID), zap.Error(delErr))
			}
		}
	}

	if err := h.Repo.Update(existing); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "banner updated"})
}

func (h *BannerHandler) DeleteBannerHandler(c *gin.Context) {
	existing, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Repo.Delete(existing.ID); err != nil {
		respondError(c, err)
		return
	}
	if existing.Image != "" {
		if delErr := h.Storage.DeleteFile(c.Request.Context(), existing.Image); delErr != nil {
			utils.GetLogger().Warn("failed to remove banner image", zap.String("publicID", existing.Image), zap.Error(delErr))
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "banner deleted"})
}

func (h *BannerHandler) GetBannersHandler(c *gin.Context) {
	banners, err := h.Repo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	h.resolveURLs(banners)
	c.JSON(http.StatusOK, banners)
}

func (h *BannerHandler) GetActiveBannersHandler(c *gin.Context) {
	banners, err := h.Repo.GetActive()
	if err != nil {
		respondError(c, err)
		return
	}
	h.resolveURLs(banners)
	c.JSON(http.StatusOK, banners)
}

func (h *BannerHandler) resolveURLs(banners []models.Banner) {
	for i := range banners {
		url, err := h.Storage.ResolveURL(banners[i].Image)
		if err != nil {
			utils.GetLogger().Warn("failed to resolve banner url", zap.String("publicID", banners[i].Image), zap.Error(err))
			continue
		}
		banners[i].URL = url
	}
}

func parseStatus(raw string) int {
	status, err := strconv.Atoi(raw)
	if err != nil {
		return models.StatusActive
	}
	return status
}
