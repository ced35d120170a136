package resolve

import (
	"context"

	"missioncontrol/internal/content"
	"missioncontrol/internal/models"
)

// ContentPipeline returns the parsed content queue. Resolution order: local
// queue markdown, the mirror's parsed items, then the mirror's raw queue
// blob reparsed locally.
func (r *Resolver) ContentPipeline(ctx context.Context) []models.ContentItem {
	if raw := r.ws.ReadFile("content/queue.md"); raw != "" {
		return content.ParseQueue(raw)
	}

	if r.remote != nil {
		if items, err := r.remote.GetContentPipeline(ctx); err == nil && len(items) > 0 {
			return items
		}
	}

	if blob := r.remoteState(ctx, "contentQueue"); blob != "" {
		return content.ParseQueue(blob)
	}
	return []models.ContentItem{}
}
