package resolve

import (
	"context"
	"log/slog"
	"time"

	"missioncontrol/internal/gitscan"
	"missioncontrol/internal/logging"
	"missioncontrol/internal/models"
	"missioncontrol/internal/workspace"

	"github.com/patrickmn/go-cache"
)

// Remote is the read surface of the mirror. A nil Remote means the dashboard
// runs without a database and resolution stops at the workspace.
type Remote interface {
	GetSystemServices(ctx context.Context) ([]models.SystemService, error)
	GetCronJobs(ctx context.Context) ([]models.CronJob, error)
	GetAgentStatus(ctx context.Context) ([]models.AgentStatus, error)
	GetRevenue(ctx context.Context) (*models.Revenue, error)
	GetRepos(ctx context.Context) ([]models.Repo, error)
	GetSystemState(ctx context.Context, key string) (*models.SystemState, error)
	GetSuggestedTasks(ctx context.Context) ([]models.SuggestedTask, error)
	GetContentPipeline(ctx context.Context) ([]models.ContentItem, error)
}

// Resolver answers every dashboard read with a two-step lookup: the local
// workspace first, then the remote mirror, then a safe empty default. It
// never returns an error to handlers; missing data degrades to empty shapes.
type Resolver struct {
	ws      *workspace.Workspace
	remote  Remote
	scanner *gitscan.Scanner
	cache   *cache.Cache
	log     *slog.Logger
}

// Repo scans shell out to git per project, so their results are cached
// briefly. Everything else is a cheap file read and stays uncached.
const repoCacheTTL = 30 * time.Second

// New creates a resolver. remote may be nil.
func New(ws *workspace.Workspace, remote Remote, scanner *gitscan.Scanner) *Resolver {
	return &Resolver{
		ws:      ws,
		remote:  remote,
		scanner: scanner,
		cache:   cache.New(repoCacheTTL, time.Minute),
		log:     logging.WithDomain("resolve"),
	}
}

// Invalidate drops all cached results. Called by the filesystem watcher
// whenever a workspace file changes.
func (r *Resolver) Invalidate() {
	r.cache.Flush()
}

// remoteState fetches one systemState value from the mirror, or "" when the
// mirror is absent, unreachable, or has never seen the key.
func (r *Resolver) remoteState(ctx context.Context, key string) string {
	if r.remote == nil {
		return ""
	}
	state, err := r.remote.GetSystemState(ctx, key)
	if err != nil {
		r.log.Warn("remote systemState lookup failed", "key", key, "error", err)
		return ""
	}
	if state == nil {
		return ""
	}
	return state.Value
}
