package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/pixelfall/components"
	cfg "github.com/automoto/pixelfall/config"
	"github.com/quasilyte/gdata"
)

// SavedProgress is the progress record stored on disk
type SavedProgress struct {
	ScreenID  int     `json:"screenId"`
	SpawnX    float64 `json:"spawnX"`
	SpawnY    float64 `json:"spawnY"`
	Collected int     `json:"collected"`
	Lenses    int     `json:"lenses"`
	Deaths    int     `json:"deaths"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	if cfg.Debug.NoSave {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: "pixelfall",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func LoadProgress() (*SavedProgress, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// Fresh game
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}

	return &progress, nil
}

func SaveProgress(p *components.ProgressData) error {
	if !gdataInitialized || gdataManager == nil || p == nil {
		return nil
	}

	data, err := json.Marshal(&SavedProgress{
		ScreenID:  p.ScreenID,
		SpawnX:    p.SpawnX,
		SpawnY:    p.SpawnY,
		Collected: p.Collected,
		Lenses:    p.Lenses,
		Deaths:    p.Deaths,
	})
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}

// ApplyProgress restores a saved record onto the player's progress.
func ApplyProgress(p *components.ProgressData, saved *SavedProgress) {
	if saved == nil {
		return
	}
	p.ScreenID = saved.ScreenID
	p.SpawnX = saved.SpawnX
	p.SpawnY = saved.SpawnY
	p.Collected = saved.Collected
	p.Lenses = saved.Lenses
	p.Deaths = saved.Deaths
}
