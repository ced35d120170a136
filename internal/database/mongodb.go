package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB wraps the MongoDB client and database
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	dbName   string
}

// Collection names.
//
// Mirror-owned collections are fully determined by the latest sync; the
// remote store is a disposable cache rebuilt from the workspace. Store-owned
// collections are the sole source of truth, mutated directly by the
// dashboard.
const (
	// Mirror-owned (pushed by the sync pipeline)
	CollectionSystemServices  = "systemServices"
	CollectionCronJobs        = "cronJobs"
	CollectionAgentStatus     = "agentStatus"
	CollectionRevenue         = "revenue"
	CollectionRepos           = "repos"
	CollectionSystemState     = "systemState"
	CollectionSuggestedTasks  = "suggestedTasks"
	CollectionContentPipeline = "contentPipeline"

	// Store-owned (dashboard CRUD)
	CollectionTasks             = "tasks"
	CollectionContacts          = "contacts"
	CollectionContentDrafts     = "contentDrafts"
	CollectionCalendarEvents    = "calendarEvents"
	CollectionActivities        = "activities"
	CollectionEcosystemProducts = "ecosystemProducts"
)

// NewMongoDB creates a new MongoDB connection with connection pooling
func NewMongoDB(uri string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	dbName := extractDBName(uri)
	if dbName == "" {
		dbName = "missioncontrol"
	}

	db := &MongoDB{
		client:   client,
		database: client.Database(dbName),
		dbName:   dbName,
	}

	log.Printf("✅ Connected to MongoDB database: %s", dbName)

	return db, nil
}

// extractDBName extracts the database name from MongoDB URI
func extractDBName(uri string) string {
	// mongodb://localhost:27017/missioncontrol?authSource=admin -> missioncontrol
	lastSlash := -1
	questionMark := -1

	for i, c := range uri {
		if c == '/' {
			lastSlash = i
		}
		if c == '?' && questionMark == -1 {
			questionMark = i
		}
	}

	if lastSlash != -1 {
		start := lastSlash + 1
		end := len(uri)
		if questionMark != -1 && questionMark > lastSlash {
			end = questionMark
		}
		if start < end {
			return uri[start:end]
		}
	}

	return "missioncontrol"
}

// Initialize creates indexes for all collections
func (m *MongoDB) Initialize(ctx context.Context) error {
	log.Println("📦 Initializing MongoDB indexes...")

	if err := m.createIndexes(ctx, CollectionCronJobs, []mongo.IndexModel{
		{Keys: bson.D{{Key: "jobId", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create cronJobs indexes: %w", err)
	}

	if err := m.createIndexes(ctx, CollectionAgentStatus, []mongo.IndexModel{
		{Keys: bson.D{{Key: "agentId", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create agentStatus indexes: %w", err)
	}

	if err := m.createIndexes(ctx, CollectionRepos, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create repos indexes: %w", err)
	}

	// Upsert-by-key target: the unique index backs the one-row-per-key invariant
	if err := m.createIndexes(ctx, CollectionSystemState, []mongo.IndexModel{
		{Keys: bson.D{{Key: "key", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return fmt.Errorf("failed to create systemState indexes: %w", err)
	}

	if err := m.createIndexes(ctx, CollectionSuggestedTasks, []mongo.IndexModel{
		{Keys: bson.D{{Key: "taskId", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create suggestedTasks indexes: %w", err)
	}

	if err := m.createIndexes(ctx, CollectionContentPipeline, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create contentPipeline indexes: %w", err)
	}

	if err := m.createIndexes(ctx, CollectionTasks, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "priority", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create tasks indexes: %w", err)
	}

	if err := m.createIndexes(ctx, CollectionContacts, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create contacts indexes: %w", err)
	}

	if err := m.createIndexes(ctx, CollectionContentDrafts, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "platform", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create contentDrafts indexes: %w", err)
	}

	if err := m.createIndexes(ctx, CollectionCalendarEvents, []mongo.IndexModel{
		{Keys: bson.D{{Key: "startTime", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create calendarEvents indexes: %w", err)
	}

	if err := m.createIndexes(ctx, CollectionActivities, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("failed to create activities indexes: %w", err)
	}

	if err := m.createIndexes(ctx, CollectionEcosystemProducts, []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create ecosystemProducts indexes: %w", err)
	}

	log.Println("✅ MongoDB indexes initialized successfully")
	return nil
}

// createIndexes creates indexes for a collection
func (m *MongoDB) createIndexes(ctx context.Context, collectionName string, indexes []mongo.IndexModel) error {
	collection := m.database.Collection(collectionName)
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// Collection returns a collection handle
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Database returns the underlying MongoDB database
func (m *MongoDB) Database() *mongo.Database {
	return m.database
}

// Close closes the MongoDB connection
func (m *MongoDB) Close(ctx context.Context) error {
	log.Println("🔌 Closing MongoDB connection...")
	return m.client.Disconnect(ctx)
}

// Ping checks if the database connection is alive
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}
