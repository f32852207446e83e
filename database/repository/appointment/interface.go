package appointmentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"doctigo/database"
	"doctigo/models"
)

// Repository is the archive boundary for finalized appointments. Appointments
// are written once and never updated.
type Repository interface {
	Create(ctx context.Context, appointment models.Appointment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByPatientEmail(ctx context.Context, email string) ([]models.Appointment, error)
	ListRecent(ctx context.Context, limit int64) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns a Repository backed by MongoDB.
func NewMongoAppointmentRepo() Repository {
	db := database.MongoClient.Database("doctigo")
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
