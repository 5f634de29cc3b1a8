package bookingRepo

import (
	"fmt"
	"time"

	"arenaslot/models"
	"arenaslot/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// dayBounds expands a calendar day ("2006-01-02") into its inclusive UTC
// boundaries [T00:00:00.000Z, T23:59:59.999Z]. Stored slot dates are UTC
// midnights, so comparing against day bounds avoids timezone skew with
// client-supplied dates.
func dayBounds(day string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", day, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, utils.NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", day))
	}
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end, nil
}

// buildBookingFilter translates a BookingFilter into a Mongo query document.
func buildBookingFilter(f models.BookingFilter) (bson.M, error) {
	query := bson.M{}

	if f.PaymentStatus != "" {
		query["paymentStatus"] = f.PaymentStatus
	}
	if f.UserID != "" {
		query["userId"] = f.UserID
	}
	if f.Amount > 0 {
		query["amount"] = f.Amount
	}

	if f.Slot != "" {
		query["slot"] = f.Slot
	} else if f.SlotPrefix != "" {
		query["slot"] = primitive.Regex{Pattern: "^" + f.SlotPrefix, Options: "i"}
	}

	dateRange := bson.M{}
	if f.Date != "" {
		start, end, err := dayBounds(f.Date)
		if err != nil {
			return nil, err
		}
		dateRange["$gte"] = start
		dateRange["$lte"] = end
	} else {
		if f.StartDate != "" {
			start, _, err := dayBounds(f.StartDate)
			if err != nil {
				return nil, err
			}
			dateRange["$gte"] = start
		}
		if f.EndDate != "" {
			_, end, err := dayBounds(f.EndDate)
			if err != nil {
				return nil, err
			}
			dateRange["$lte"] = end
		}
	}
	if len(dateRange) > 0 {
		query["slotdate"] = dateRange
	}

	return query, nil
}

// payerLookupStages joins the payer profile onto each booking. Bookings whose
// payer record is missing keep the "N/A" sentinels rather than dropping out.
func payerLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "id",
			"as":           "payer",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$payer",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

// viewProjection flattens the joined payer fields into the BookingView shape.
// The whatsapp sentinel is empty so that recipients without a number are
// filtered out of notification batches instead of being dispatched to "N/A".
func viewProjection() bson.D {
	return bson.D{{Key: "$project", Value: bson.M{
		"_id":           0,
		"id":            1,
		"userId":        1,
		"packageId":     1,
		"slot":          1,
		"slotdate":      1,
		"amount":        1,
		"paymentStatus": 1,
		"paymentId":     1,
		"isWinner":      1,
		"note":          1,
		"roomid":        1,
		"roompass":      1,
		"createdAt":     1,
		"userFullName":  bson.M{"$ifNull": bson.A{"$payer.fullName", "N/A"}},
		"userEmail":     bson.M{"$ifNull": bson.A{"$payer.email", "N/A"}},
		"userGameId":    bson.M{"$ifNull": bson.A{"$payer.gameId", "N/A"}},
		"userGameName":  bson.M{"$ifNull": bson.A{"$payer.gameName", "N/A"}},
		"userWhatsapp":  bson.M{"$ifNull": bson.A{"$payer.whatsapp", ""}},
	}}}
}

// FindViews retrieves bookings matching the filter joined with the payer's profile.
func (r *MongoBookingRepo) FindViews(filter models.BookingFilter) ([]models.BookingView, error) {
	query, err := buildBookingFilter(filter)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: query}},
	}
	pipeline = append(pipeline, payerLookupStages()...)
	pipeline = append(pipeline, viewProjection())

	return r.aggregateViews(pipeline)
}

// FindViewsByUser retrieves one payer's enriched bookings, newest first.
func (r *MongoBookingRepo) FindViewsByUser(userID string) ([]models.BookingView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
	}
	pipeline = append(pipeline, payerLookupStages()...)
	pipeline = append(pipeline, viewProjection())

	return r.aggregateViews(pipeline)
}

func (r *MongoBookingRepo) aggregateViews(pipeline mongo.Pipeline) ([]models.BookingView, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("booking view aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var views []models.BookingView
	if err := cursor.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("error decoding booking views: %w", err)
	}
	return views, nil
}

// FindWinners retrieves the public winner projections.
func (r *MongoBookingRepo) FindWinners() ([]models.WinnerView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"isWinner": true}}},
	}
	pipeline = append(pipeline, payerLookupStages()...)
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: bson.M{
		"_id":          0,
		"slot":         1,
		"slotdate":     1,
		"isWinner":     1,
		"createdAt":    1,
		"userFullName": bson.M{"$ifNull": bson.A{"$payer.fullName", "N/A"}},
		"userGameId":   bson.M{"$ifNull": bson.A{"$payer.gameId", "N/A"}},
	}}})

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("winner view aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var winners []models.WinnerView
	if err := cursor.All(ctx, &winners); err != nil {
		return nil, fmt.Errorf("error decoding winner views: %w", err)
	}
	return winners, nil
}
