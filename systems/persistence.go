package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const progressKey = "progress"

// SavedProgress represents the progress data stored on disk
type SavedProgress struct {
	Clicks int  `json:"clicks"`
	Debug  bool `json:"debug"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// lastSaved avoids rewriting unchanged progress every tick.
var lastSaved SavedProgress

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "spritecat",
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress loads saved progress. A missing save yields zero progress.
func LoadProgress() SavedProgress {
	if !gdataInitialized || gdataManager == nil {
		return SavedProgress{}
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		log.Printf("[persistence] could not load progress: %v", err)
		return SavedProgress{}
	}
	if len(data) == 0 {
		return SavedProgress{}
	}

	p, err := decodeProgress(data)
	if err != nil {
		log.Printf("[persistence] could not parse saved progress: %v", err)
		return SavedProgress{}
	}
	lastSaved = p
	return p
}

// SaveProgress saves progress to disk
func SaveProgress(p SavedProgress) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("[persistence] could not serialize progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		log.Printf("[persistence] could not save progress: %v", err)
		return err
	}
	lastSaved = p
	return nil
}

func decodeProgress(data []byte) (SavedProgress, error) {
	var p SavedProgress
	if err := json.Unmarshal(data, &p); err != nil {
		return SavedProgress{}, err
	}
	if p.Clicks < 0 {
		p.Clicks = 0
	}
	return p, nil
}

// CurrentProgress collects what is worth saving from the world.
func CurrentProgress(ecs *ecs.ECS) SavedProgress {
	return SavedProgress{
		Clicks: GetClickCount(ecs),
		Debug:  GetOrCreateDebug(ecs).Enabled,
	}
}

// UpdatePersistence saves progress whenever it changes. A failed save is
// not retried until the progress changes again.
func UpdatePersistence(ecs *ecs.ECS) {
	p := CurrentProgress(ecs)
	if p == lastSaved {
		return
	}
	_ = SaveProgress(p)
	lastSaved = p
}
