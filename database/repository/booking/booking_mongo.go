package bookingRepo

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "slot", Value: 1}, {Key: "slotdate", Value: 1}}},
		{Keys: bson.D{{Key: "isWinner", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document. Required fields are checked here as
// the last line of defense; the service layer validates request input first.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	switch {
	case booking.UserID == "":
		return utils.NewValidationError("userId is required")
	case booking.PackageID == "":
		return utils.NewValidationError("packageId is required")
	case booking.Slot == "":
		return utils.NewValidationError("slot is required")
	case booking.Amount <= 0:
		return utils.NewValidationError("amount is required")
	case booking.PaymentID == "":
		return utils.NewValidationError("paymentId is required")
	case booking.SlotDate.IsZero():
		return utils.NewValidationError("slotdate is required")
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.ID = uuid.New().String()
	booking.CreatedAt = time.Now().UTC()
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = models.PaymentPending
	}
	if booking.Note == "" {
		booking.Note = "coming soon"
	}
	if booking.RoomID == "" {
		booking.RoomID = "coming soon"
	}
	if booking.RoomPass == "" {
		booking.RoomPass = "coming soon"
	}

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("booking not found")
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// Find retrieves raw booking records matching the filter.
func (r *MongoBookingRepo) Find(filter models.BookingFilter) ([]models.Booking, error) {
	query, err := buildBookingFilter(filter)
	if err != nil {
		return nil, err
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// Count returns the number of bookings matching the filter.
func (r *MongoBookingRepo) Count(filter models.BookingFilter) (int64, error) {
	query, err := buildBookingFilter(filter)
	if err != nil {
		return 0, err
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return total, nil
}

// BulkUpdate applies room/note fields to every booking matching the filter.
func (r *MongoBookingRepo) BulkUpdate(filter models.BookingFilter, fields models.BulkRoomUpdate) (*models.BulkUpdateResult, error) {
	set := bson.M{}
	if fields.Note != "" {
		set["note"] = fields.Note
	}
	if fields.RoomID != "" {
		set["roomid"] = fields.RoomID
	}
	if fields.RoomPass != "" {
		set["roompass"] = fields.RoomPass
	}
	if len(set) == 0 {
		return nil, utils.NewValidationError("no update fields provided")
	}

	query, err := buildBookingFilter(filter)
	if err != nil {
		return nil, err
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateMany(ctx, query, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to bulk update bookings: %w", err)
	}
	return &models.BulkUpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// SetWinner flips the winner flag on one booking and returns the updated record.
func (r *MongoBookingRepo) SetWinner(id string, isWinner bool) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"isWinner": isWinner}},
		opts,
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("booking not found")
		}
		return nil, fmt.Errorf("failed to update winner flag for booking %s: %w", id, err)
	}
	return &updated, nil
}
