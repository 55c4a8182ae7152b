package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/chenmo1212/foodorder/internal/models"
)

// storeVersion tags the persisted blob. Blobs written with a different
// version are discarded on load instead of risking a bad decode.
const storeVersion = 1

type persistedCart struct {
	Version int               `json:"version"`
	Lines   []models.CartLine `json:"lines"`
}

// FileStore persists the cart as a single JSON file, the local-storage
// equivalent for a non-browser client. Single writer; concurrent processes
// sharing one file will overwrite each other.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() ([]models.CartLine, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart file: %w", err)
	}

	var blob persistedCart
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("decode cart file: %w", err)
	}
	if blob.Version != storeVersion {
		return nil, nil
	}
	return blob.Lines, nil
}

func (s *FileStore) Save(lines []models.CartLine) error {
	blob := persistedCart{Version: storeVersion, Lines: lines}
	data, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write cart file: %w", err)
	}
	return nil
}
