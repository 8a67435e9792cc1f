package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartclinic/clinic-api/internal/core/domain"
)

const collectionPrescriptions = "prescriptions"

type PrescriptionRepository struct {
	col *mongo.Collection
}

func NewPrescriptionRepository(db *mongo.Database) *PrescriptionRepository {
	return &PrescriptionRepository{col: db.Collection(collectionPrescriptions)}
}

// Create inserts p and sets its ID. A second prescription for the same
// appointment is rejected by the unique index.
func (r *PrescriptionRepository) Create(ctx context.Context, p *domain.Prescription) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrPrescriptionExists
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	return nil
}

func (r *PrescriptionRepository) FindByAppointmentID(ctx context.Context, appointmentID int64) (*domain.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Prescription
	err := r.col.FindOne(ctx, bson.M{"appointment_id": appointmentID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPrescriptionNotFound
		}
		return nil, err
	}
	return &p, nil
}

// EnsureIndexes creates the unique appointment index.
func (r *PrescriptionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "appointment_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
