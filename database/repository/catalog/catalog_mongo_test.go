package catalogRepo

import (
	"testing"

	"arenaslot/models"

	"github.com/stretchr/testify/assert"
)

func TestStampAssignsIDs(t *testing.T) {
	var pkg models.Package
	stampPackage(&pkg)
	assert.NotEmpty(t, pkg.ID)
	assert.False(t, pkg.CreatedAt.IsZero())
	assert.Equal(t, pkg.CreatedAt, pkg.UpdatedAt)

	var banner models.Banner
	stampBanner(&banner)
	assert.NotEmpty(t, banner.ID)
	assert.False(t, banner.CreatedAt.IsZero())

	var video models.Video
	stampVideo(&video)
	assert.NotEmpty(t, video.ID)
	assert.False(t, video.CreatedAt.IsZero())

	var msg models.ContactMessage
	stampContact(&msg)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestStampIDsAreUnique(t *testing.T) {
	var a, b models.Package
	stampPackage(&a)
	stampPackage(&b)
	assert.NotEqual(t, a.ID, b.ID)
}
