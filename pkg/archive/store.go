package archive

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongodbTimeout = 5 * time.Second

// Record is a point-in-time copy of a job's status record, preserved after
// the live record's TTL would have reclaimed it.
type Record struct {
	ID       string            `json:"id" bson:"id"`
	Fields   map[string]string `json:"fields" bson:"fields"`
	Archived time.Time         `json:"archived" bson:"archived"`
}

// Store is an interface for durable storage of archived status records.
type Store interface {
	// Upsert writes the record, replacing any previously archived record for
	// the same job.
	Upsert(context.Context, Record) error
	// Get returns the archived record for the specified job; found is false
	// if no record was ever archived for it.
	Get(ctx context.Context, id string) (Record, bool, error)
	// List returns all archived records, most recently archived first.
	List(context.Context) ([]Record, error)
}

type store struct {
	collection *mongo.Collection
}

// NewStore returns a new MongoDB-based implementation of the Store interface.
func NewStore(database *mongo.Database) (Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongodbTimeout)
	defer cancel()
	unique := true
	collection := database.Collection("statuses")
	if _, err := collection.Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.M{
				"id": 1,
			},
			Options: &options.IndexOptions{
				Unique: &unique,
			},
		},
	); err != nil {
		return nil, errors.Wrap(
			err,
			"error adding indexes to statuses collection",
		)
	}
	return &store{
		collection: collection,
	}, nil
}

func (s *store) Upsert(ctx context.Context, record Record) error {
	upsert := true
	if _, err := s.collection.UpdateOne(
		ctx,
		bson.M{
			"id": record.ID,
		},
		bson.M{
			"$set": record,
		},
		&options.UpdateOptions{
			Upsert: &upsert,
		},
	); err != nil {
		return errors.Wrapf(err, "error archiving status record for job %q", record.ID)
	}
	return nil
}

func (s *store) Get(ctx context.Context, id string) (Record, bool, error) {
	record := Record{}
	result := s.collection.FindOne(
		ctx,
		bson.M{
			"id": id,
		},
	)
	if result.Err() == mongo.ErrNoDocuments {
		return record, false, nil
	}
	if err := result.Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return record, false, nil
		}
		return record, false, errors.Wrapf(
			err,
			"error decoding archived status record for job %q",
			id,
		)
	}
	return record, true, nil
}

func (s *store) List(ctx context.Context) ([]Record, error) {
	findOptions := options.Find()
	findOptions.SetSort(
		bson.M{
			"archived": -1,
		},
	)
	cursor, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "error listing archived status records")
	}
	defer cursor.Close(ctx) // nolint: errcheck
	records := []Record{}
	for cursor.Next(ctx) {
		record := Record{}
		if err := cursor.Decode(&record); err != nil {
			return nil, errors.Wrap(
				err,
				"error decoding archived status record",
			)
		}
		records = append(records, record)
	}
	return records, nil
}
