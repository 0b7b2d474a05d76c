package bookingsRepo

import (
	"context"

	"salvatore/database"
	"salvatore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingArchive keeps a local copy of every persisted booking so staff can
// review them without opening the spreadsheet.
type BookingArchive interface {
	Create(ctx context.Context, booking models.StoredBooking) (string, error)
	List(ctx context.Context, limit int64) ([]models.StoredBooking, error)
}

type mongoBookingArchive struct {
	coll *mongo.Collection
}

// NewMongoBookingArchive returns a BookingArchive backed by MongoDB.
func NewMongoBookingArchive() BookingArchive {
	db := database.MongoClient.Database("salvatore")
	return &mongoBookingArchive{
		coll: db.Collection("bookings"),
	}
}
