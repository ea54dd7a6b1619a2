package db

import (
	"context"                       // Context for MongoDB operations
	"fmt"                           // Error wrapping
	"survey_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"                 // Logrus for structured logging
	"go.mongodb.org/mongo-driver/bson"           // BSON filters
	"go.mongodb.org/mongo-driver/mongo"          // MongoDB driver
	"go.mongodb.org/mongo-driver/mongo/options"  // MongoDB driver options
)

// Collection is the subset of *mongo.Collection used by MongoStore
type Collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

// MongoStore stores one document per submission in a MongoDB collection
type MongoStore struct {
	coll Collection // Target collection
}

// NewMongoStore creates a MongoStore on top of coll
func NewMongoStore(coll Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// InsertRecord inserts record as a new document
func (s *MongoStore) InsertRecord(ctx context.Context, record domain.SurveyRecord) error {
	if err := checkRecord(record); err != nil {
		return err
	}
	if record.Expenses == nil {
		record.Expenses = map[string]float64{} // Store an empty sub-document rather than null
	}
	if _, err := s.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert survey record: %w", err)
	}
	return nil
}

// FindAllRecords reads every document in insertion order
func (s *MongoStore) FindAllRecords(ctx context.Context) ([]domain.SurveyRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}) // ObjectIDs grow with insertion time
	cursor, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query survey records: %w", err)
	}
	records := []domain.SurveyRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode survey records: %w", err)
	}
	return records, nil
}

// ConnectMongo establishes and verifies a connection to MongoDB
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	logrus.WithField("uri", uri).Debug("Connecting to MongoDB") // Log connection attempt
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	// Ping so a bad URI fails at startup instead of on the first request
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	logrus.Info("Connected to MongoDB") // Log successful connection
	return client, nil
}
