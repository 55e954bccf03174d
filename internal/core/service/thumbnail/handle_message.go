package thumbnail

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
)

func (s *thumbnailService) HandleMessage(ctx context.Context, data []byte) error {
	var event domain.MinIOEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedEvent, err)
	}

	notification, err := event.Notification()
	if err != nil {
		return err
	}

	if !s.wantsThumbnail(notification) {
		s.logger.Debug("skipping event", "event", notification.EventName, "key", notification.ObjectKey)
		return nil
	}

	s.logger.Info("handling event", "event", notification.EventName, "key", notification.ObjectKey, "size", notification.ObjectSize)

	thumbKey, err := s.renderer.RenderThumbnail(ctx, notification.ObjectKey)
	s.metrics.ThumbnailRendered(err == nil)
	if err != nil {
		return fmt.Errorf("failed to render thumbnail of %s: %w", notification.ObjectKey, err)
	}

	s.logger.Info("thumbnail stored", "key", notification.ObjectKey, "thumbnail", thumbKey)
	return nil
}

// wantsThumbnail keeps created images of the gallery folder. Thumbnails themselves
// raise notifications too and must not loop.
func (s *thumbnailService) wantsThumbnail(n domain.StorageNotification) bool {
	if n.EventType != domain.EventTypeObjectCreated {
		return false
	}
	if s.renderer.IsThumbnailKey(n.ObjectKey) {
		return false
	}
	if !strings.HasPrefix(n.ObjectKey, path.Join(s.folder, string(domain.MediaKindImage))+"/") {
		return false
	}
	format := strings.TrimPrefix(strings.ToLower(path.Ext(n.ObjectKey)), ".")
	return slices.Contains(domain.ImageFormats, format)
}
