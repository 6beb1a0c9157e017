package stubstore

import (
	"sync"

	"github.com/calsched/calsched/pkg/store"
)

// Repository is the in-memory record storage of the development stub. Ids
// are assigned sequentially on create, like the real backend.
type Repository struct {
	mu     sync.RWMutex
	songs  []store.Song
	nextID int
}

func NewRepository() *Repository {
	return &Repository{}
}

// ListByType returns all records, or only those of the given type when it is
// non-empty.
func (r *Repository) ListByType(recordType string) []store.Song {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]store.Song, 0, len(r.songs))
	for _, s := range r.songs {
		if recordType == "" || s.Type == recordType {
			result = append(result, s)
		}
	}
	return result
}

func (r *Repository) Get(id int) (store.Song, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.songs {
		if s.ID == id {
			return s, true
		}
	}
	return store.Song{}, false
}

func (r *Repository) Create(song store.Song) store.Song {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	song.ID = r.nextID
	r.songs = append(r.songs, song)
	return song
}
