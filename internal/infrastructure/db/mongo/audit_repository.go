package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

const collectionAppointmentEvents = "appointment_events"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAppointmentEvents)}
}

var _ ports.AuditRepository = (*AuditRepository)(nil)

// InsertEvent persists an appointment event to the appointment_events collection.
func (r *AuditRepository) InsertEvent(ctx context.Context, event *domain.AppointmentEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"_id":            event.ID,
		"appointment_id": event.AppointmentID,
		"doctor_id":      event.DoctorID,
		"patient_id":     event.PatientID,
		"kind":           string(event.Kind),
		"status":         event.Status.String(),
		"at":             event.At.UTC(),
		"recorded_at":    time.Now().UTC(),
	}
	if event.Actor != "" {
		doc["actor"] = event.Actor
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "appointment_id", Value: 1}, {Key: "at", Value: 1}}},
		{Keys: bson.D{{Key: "doctor_id", Value: 1}}},
	})
	return err
}
