package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"arenaslot/database"
	"arenaslot/models"
	"arenaslot/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// findAll decodes every document matching the filter into out.
func findAll(coll *mongo.Collection, filter bson.M, out interface{}) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return nil
}

// stamp* assign the unique id and creation timestamps ahead of insert.
// Every lookup, update and delete keys on the id field, so a record must
// never reach the collection without one.

func stampPackage(pkg *models.Package) {
	pkg.ID = uuid.New().String()
	now := time.Now()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now
}

func stampBanner(banner *models.Banner) {
	banner.ID = uuid.New().String()
	now := time.Now()
	banner.CreatedAt = now
	banner.UpdatedAt = now
}

func stampVideo(video *models.Video) {
	video.ID = uuid.New().String()
	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now
}

func stampContact(msg *models.ContactMessage) {
	msg.ID = uuid.New().String()
	msg.CreatedAt = time.Now()
}

func deleteByID(coll *mongo.Collection, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return utils.NewNotFoundError(coll.Name() + " record not found")
	}
	return nil
}

// --- Packages ---

// MongoPackageRepo implements PackageRepository using MongoDB.
type MongoPackageRepo struct {
	coll *mongo.Collection
}

// NewMongoPackageRepo creates a new instance of PackageRepository using MongoDB.
func NewMongoPackageRepo() PackageRepository {
	return &MongoPackageRepo{coll: database.Collection("packages")}
}

func (r *MongoPackageRepo) Create(pkg *models.Package) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	stampPackage(pkg)
	if _, err := r.coll.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

func (r *MongoPackageRepo) Update(pkg *models.Package) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pkg.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": pkg.ID}, bson.M{"$set": pkg})
	if err != nil {
		return fmt.Errorf("failed to update package %s: %w", pkg.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("package not found")
	}
	return nil
}

func (r *MongoPackageRepo) Delete(id string) error {
	return deleteByID(r.coll, id)
}

func (r *MongoPackageRepo) GetByID(id string) (*models.Package, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var pkg models.Package
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("package not found")
		}
		return nil, fmt.Errorf("failed to fetch package %s: %w", id, err)
	}
	return &pkg, nil
}

func (r *MongoPackageRepo) GetAll() ([]models.Package, error) {
	var packages []models.Package
	if err := findAll(r.coll, bson.M{}, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *MongoPackageRepo) GetActive() ([]models.Package, error) {
	var packages []models.Package
	if err := findAll(r.coll, bson.M{"status": models.StatusActive}, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// --- Banners ---

// MongoBannerRepo implements BannerRepository using MongoDB.
type MongoBannerRepo struct {
	coll *mongo.Collection
}

// NewMongoBannerRepo creates a new instance of BannerRepository using MongoDB.
func NewMongoBannerRepo() BannerRepository {
	return &MongoBannerRepo{coll: database.Collection("banners")}
}

func (r *MongoBannerRepo) Create(banner *models.Banner) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	stampBanner(banner)
	if _, err := r.coll.InsertOne(ctx, banner); err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}
	return nil
}

func (r *MongoBannerRepo) Update(banner *models.Banner) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	banner.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": banner.ID}, bson.M{"$set": banner})
	if err != nil {
		return fmt.Errorf("failed to update banner %s: %w", banner.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("banner not found")
	}
	return nil
}

func (r *MongoBannerRepo) Delete(id string) error {
	return deleteByID(r.coll, id)
}

func (r *MongoBannerRepo) GetByID(id string) (*models.Banner, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var banner models.Banner
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&banner); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("banner not found")
		}
		return nil, fmt.Errorf("failed to fetch banner %s: %w", id, err)
	}
	return &banner, nil
}

func (r *MongoBannerRepo) GetAll() ([]models.Banner, error) {
	var banners []models.Banner
	if err := findAll(r.coll, bson.M{}, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *MongoBannerRepo) GetActive() ([]models.Banner, error) {
	var banners []models.Banner
	if err := findAll(r.coll, bson.M{"status": models.StatusActive}, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// --- Videos ---

// MongoVideoRepo implements VideoRepository using MongoDB.
type MongoVideoRepo struct {
	coll *mongo.Collection
}

// NewMongoVideoRepo creates a new instance of VideoRepository using MongoDB.
func NewMongoVideoRepo() VideoRepository {
	return &MongoVideoRepo{coll: database.Collection("videos")}
}

func (r *MongoVideoRepo) Create(video *models.Video) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	stampVideo(video)
	if _, err := r.coll.InsertOne(ctx, video); err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

func (r *MongoVideoRepo) Update(video *models.Video) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	video.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": video.ID}, bson.M{"$set": video})
	if err != nil {
		return fmt.Errorf("failed to update video %s: %w", video.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("video not found")
	}
	return nil
}

func (r *MongoVideoRepo) Delete(id string) error {
	return deleteByID(r.coll, id)
}

func (r *MongoVideoRepo) GetByID(id string) (*models.Video, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var video models.Video
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&video); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("video not found")
		}
		return nil, fmt.Errorf("failed to fetch video %s: %w", id, err)
	}
	return &video, nil
}

func (r *MongoVideoRepo) GetAll() ([]models.Video, error) {
	var videos []models.Video
	if err := findAll(r.coll, bson.M{}, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *MongoVideoRepo) GetActive() ([]models.Video, error) {
	var videos []models.Video
	if err := findAll(r.coll, bson.M{"status": models.StatusActive}, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// --- Contact messages ---

// MongoContactRepo implements ContactRepository using MongoDB.
type MongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo creates a new instance of ContactRepository using MongoDB.
func NewMongoContactRepo() ContactRepository {
	return &MongoContactRepo{coll: database.Collection("contact_messages")}
}

func (r *MongoContactRepo) Create(msg *models.ContactMessage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	stampContact(msg)
	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *MongoContactRepo) GetAll() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := findAll(r.coll, bson.M{}, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
