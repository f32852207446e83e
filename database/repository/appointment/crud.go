package appointmentRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctigo/models"
)

// Create inserts a finalized appointment and returns its ID.
func (r *mongoAppointmentRepo) Create(ctx context.Context, appointment models.Appointment) (string, error) {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, appointment)
	if err != nil {
		return "", err
	}
	return appointment.ID, nil
}

// GetByID returns an archived appointment by its ID.
func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appointment)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// ListByPatientEmail fetches all appointments filed under a patient email.
func (r *mongoAppointmentRepo) ListByPatientEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"patientEmail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListRecent returns the most recently created appointments, newest first.
func (r *mongoAppointmentRepo) ListRecent(ctx context.Context, limit int64) ([]models.Appointment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}
