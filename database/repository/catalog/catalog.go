package catalogRepo

import (
	"arenaslot/models"
)

// PackageRepository defines data access for tournament packages. The booking
// orchestrator consumes it for price lookups; the admin surface for CRUD.
type PackageRepository interface {
	Create(pkg *models.Package) error
	Update(pkg *models.Package) error
	Delete(id string) error
	GetByID(id string) (*models.Package, error)
	GetAll() ([]models.Package, error)
	GetActive() ([]models.Package, error)
}

// BannerRepository defines data access for landing-page banners.
type BannerRepository interface {
	Create(banner *models.Banner) error
	Update(banner *models.Banner) error
	Delete(id string) error
	GetByID(id string) (*models.Banner, error)
	GetAll() ([]models.Banner, error)
	GetActive() ([]models.Banner, error)
}

// VideoRepository defines data access for highlight videos.
type VideoRepository interface {
	Create(video *models.Video) error
	Update(video *models.Video) error
	Delete(id string) error
	GetByID(id string) (*models.Video, error)
	GetAll() ([]models.Video, error)
	GetActive() ([]models.Video, error)
}

// ContactRepository defines data access for contact-form messages.
type ContactRepository interface {
	Create(msg *models.ContactMessage) error
	GetAll() ([]models.ContactMessage, error)
}
