package userRepo

import (
	"arenaslot/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines data access methods for user records. It doubles as
// the user directory the booking views are enriched from.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	GetByEmailWithProjection(email string, projection bson.M) (*models.User, error)
}
