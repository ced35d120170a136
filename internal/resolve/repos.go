package resolve

import (
	"context"

	"missioncontrol/internal/models"
	"missioncontrol/internal/workspace"
)

const repoCacheKey = "repos"

// Repos returns the project repo listing: a fresh local scan first, falling
// back to the mirror when the projects directory yields nothing. Scans shell
// out to git, so results are served from cache between invalidations.
func (r *Resolver) Repos(ctx context.Context) []models.Repo {
	if cached, found := r.cache.Get(repoCacheKey); found {
		return cached.([]models.Repo)
	}

	repos := r.scanner.Scan(ctx)
	if len(repos) == 0 && r.remote != nil {
		if remote, err := r.remote.GetRepos(ctx); err == nil && len(remote) > 0 {
			repos = remote
		}
	}
	if repos == nil {
		repos = []models.Repo{}
	}

	r.cache.SetDefault(repoCacheKey, repos)
	return repos
}

// Search runs the workspace full-text search, memoizing per query between
// cache invalidations. Repeated dashboard polls for the same term hit the
// cache instead of rewalking the tree.
func (r *Resolver) Search(query string) []workspace.SearchResult {
	key := "search:" + query
	if cached, found := r.cache.Get(key); found {
		return cached.([]workspace.SearchResult)
	}
	results := r.ws.Search(query)
	r.cache.SetDefault(key, results)
	return results
}
