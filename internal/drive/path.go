package drive

import (
	"context"

	"github.com/emanuelsistemas/drive/internal/models"
)

// maxPathDepth caps the ancestor walk so a corrupted parent chain can never
// loop forever.
const maxPathDepth = 4096

// ResolvePath walks parent links starting at `from` (a node's parent
// reference; nil means root) and returns the ancestor chain ordered
// root-most first, ending at `from` itself. The node whose breadcrumb is
// being built is not part of the result.
//
// The walk is deliberately forgiving: if an ancestor lookup comes back empty
// (deleted under our feet) the partial path resolved so far is returned, and
// a cycle in parent links terminates the walk at the point of re-entry.
// Navigation has to stay usable even over a stale reference.
func (s *Service) ResolvePath(ctx context.Context, from *string) ([]models.Folder, error) {
	path := []models.Folder{}
	if from == nil {
		return path, nil
	}

	seen := make(map[string]bool)
	current := *from

	for hops := 0; hops < maxPathDepth; hops++ {
		if seen[current] {
			s.log.Warn().Str("folder_id", current).Msg("cycle detected in folder ancestry")
			break
		}
		seen[current] = true

		folder, err := s.dir.GetFolder(ctx, current)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			// Ancestor vanished; keep whatever resolved so far.
			break
		}

		path = append([]models.Folder{*folder}, path...)

		if folder.ParentID == nil {
			break
		}
		current = *folder.ParentID
	}

	return path, nil
}
