package services

import (
	"context"
	"fmt"

	"missioncontrol/internal/database"
	"missioncontrol/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MirrorStore owns the mirror-owned collections: the workspace is the source
// of truth and every sync rebuilds the remote copy. All writes are
// replace-all except systemState, which is upsert-by-key so independent
// writers each own a distinct key.
type MirrorStore struct {
	db *database.MongoDB
}

// NewMirrorStore creates a mirror store over the given database.
func NewMirrorStore(db *database.MongoDB) *MirrorStore {
	return &MirrorStore{db: db}
}

// replaceAll deletes every document in the collection and inserts the fresh
// set. The delete and the inserts are not atomic as a whole: a concurrent
// reader can observe an empty collection in between. Accepted: sync cadence
// is low relative to read traffic.
func (s *MirrorStore) replaceAll(ctx context.Context, collection string, docs []interface{}) error {
	coll := s.db.Collection(collection)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear %s: %w", collection, err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return nil
}

// SyncSystemServices replaces the systemServices collection.
func (s *MirrorStore) SyncSystemServices(ctx context.Context, services []models.SystemService) error {
	docs := make([]interface{}, len(services))
	for i := range services {
		docs[i] = services[i]
	}
	return s.replaceAll(ctx, database.CollectionSystemServices, docs)
}

// SyncCronJobs replaces the cronJobs collection.
func (s *MirrorStore) SyncCronJobs(ctx context.Context, crons []models.CronJob) error {
	docs := make([]interface{}, len(crons))
	for i := range crons {
		docs[i] = crons[i]
	}
	return s.replaceAll(ctx, database.CollectionCronJobs, docs)
}

// SyncAgentStatus replaces the agentStatus collection.
func (s *MirrorStore) SyncAgentStatus(ctx context.Context, agents []models.AgentStatus) error {
	docs := make([]interface{}, len(agents))
	for i := range agents {
		docs[i] = agents[i]
	}
	return s.replaceAll(ctx, database.CollectionAgentStatus, docs)
}

// SyncRevenue replaces the revenue singleton. The collection holds at most
// one document at any time.
func (s *MirrorStore) SyncRevenue(ctx context.Context, revenue models.Revenue) error {
	return s.replaceAll(ctx, database.CollectionRevenue, []interface{}{revenue})
}

// SyncRepos replaces the repos collection.
func (s *MirrorStore) SyncRepos(ctx context.Context, repos []models.Repo) error {
	docs := make([]interface{}, len(repos))
	for i := range repos {
		docs[i] = repos[i]
	}
	return s.replaceAll(ctx, database.CollectionRepos, docs)
}

// SyncSuggestedTasks replaces the suggestedTasks collection.
func (s *MirrorStore) SyncSuggestedTasks(ctx context.Context, tasks []models.SuggestedTask) error {
	docs := make([]interface{}, len(tasks))
	for i := range tasks {
		docs[i] = tasks[i]
	}
	return s.replaceAll(ctx, database.CollectionSuggestedTasks, docs)
}

// SyncContentPipeline replaces the contentPipeline collection.
func (s *MirrorStore) SyncContentPipeline(ctx context.Context, items []models.ContentItem) error {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return s.replaceAll(ctx, database.CollectionContentPipeline, docs)
}

// SyncSystemState upserts one key of the generic key-value mirror: replace
// in place when the key exists, insert otherwise. Never a blind insert, so
// the collection holds exactly one document per key.
func (s *MirrorStore) SyncSystemState(ctx context.Context, key, value, syncedAt string) error {
	doc := models.SystemState{Key: key, Value: value, SyncedAt: syncedAt}
	_, err := s.db.Collection(database.CollectionSystemState).ReplaceOne(
		ctx,
		bson.M{"key": key},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert systemState key %q: %w", key, err)
	}
	return nil
}

// ---- Queries (used by the resolution layer when the workspace is absent) ----

// GetSystemServices returns the full systemServices collection.
func (s *MirrorStore) GetSystemServices(ctx context.Context) ([]models.SystemService, error) {
	var out []models.SystemService
	if err := s.findAll(ctx, database.CollectionSystemServices, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCronJobs returns the full cronJobs collection.
func (s *MirrorStore) GetCronJobs(ctx context.Context) ([]models.CronJob, error) {
	var out []models.CronJob
	if err := s.findAll(ctx, database.CollectionCronJobs, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAgentStatus returns the full agentStatus collection.
func (s *MirrorStore) GetAgentStatus(ctx context.Context) ([]models.AgentStatus, error) {
	var out []models.AgentStatus
	if err := s.findAll(ctx, database.CollectionAgentStatus, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRevenue returns the revenue row, or nil when none has been synced.
func (s *MirrorStore) GetRevenue(ctx context.Context) (*models.Revenue, error) {
	var revenue models.Revenue
	err := s.db.Collection(database.CollectionRevenue).FindOne(ctx, bson.M{}).Decode(&revenue)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue: %w", err)
	}
	return &revenue, nil
}

// GetRepos returns the full repos collection.
func (s *MirrorStore) GetRepos(ctx context.Context) ([]models.Repo, error) {
	var out []models.Repo
	if err := s.findAll(ctx, database.CollectionRepos, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSystemState returns the document for one key, or nil when the key has
// never been synced.
func (s *MirrorStore) GetSystemState(ctx context.Context, key string) (*models.SystemState, error) {
	var state models.SystemState
	err := s.db.Collection(database.CollectionSystemState).FindOne(ctx, bson.M{"key": key}).Decode(&state)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get systemState key %q: %w", key, err)
	}
	return &state, nil
}

// GetSuggestedTasks returns the full suggestedTasks collection.
func (s *MirrorStore) GetSuggestedTasks(ctx context.Context) ([]models.SuggestedTask, error) {
	var out []models.SuggestedTask
	if err := s.findAll(ctx, database.CollectionSuggestedTasks, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetContentPipeline returns the full contentPipeline collection.
func (s *MirrorStore) GetContentPipeline(ctx context.Context) ([]models.ContentItem, error) {
	var out []models.ContentItem
	if err := s.findAll(ctx, database.CollectionContentPipeline, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// findAll is a full-collection scan; mirror collections are small by
// construction.
func (s *MirrorStore) findAll(ctx context.Context, collection string, out interface{}) error {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", collection, err)
	}
	return nil
}
