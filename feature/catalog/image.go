package catalog

import (
	"context"
	"errors"
	"strings"

	"asset-indexer/core/jsonc"

	"go.uber.org/zap"
)

const imageKey = "image"

// ResolveImage returns the full-size image of the first item called name.
// The frame selector after the first ":" is dropped. An empty path means the
// item is unknown, declares no image, or the image file does not exist.
func (s *Service) ResolveImage(ctx context.Context, name string) (string, error) {
	detail, err := s.GetItem(ctx, name)
	if errors.Is(err, jsonc.ErrParse) {
		s.logger.Debug("Item asset no longer readable", zap.String("name", name), zap.Error(err))
		return "", nil
	}
	if err != nil || detail == nil {
		return "", err
	}

	image, ok := detail.Data.String(imageKey)
	if !ok || image == "" {
		return "", nil
	}

	image, _, _ = strings.Cut(image, ":")
	path := s.resolvePath(detail.Folder, image)
	if !fileExists(path) {
		return "", nil
	}
	return path, nil
}
