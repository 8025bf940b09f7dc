package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/engine/routing"
	"github.com/lintang-b-s/Wayfindx/pkg/util"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrBuildingNotFound = errors.New("building not found")

type building struct {
	id            string
	name          string
	landmarks     []da.Landmark // active only
	paths         []da.Path     // active, non-negative, both endpoints active
	numComponents int           // strongly connected components ignoring preferences
}

type BuildingInfo struct {
	ID            string
	Name          string
	NumLandmarks  int
	NumPaths      int
	NumComponents int // > 1 when some landmarks cannot reach each other
}

// BuildingStore read-only building repository backed by a yaml file. the whole file is replaced
// atomically on Reload, readers never observe a half-loaded building.
type BuildingStore struct {
	mu        sync.RWMutex
	buildings map[string]*building
	filePath  string
	log       *zap.Logger
}

func NewBuildingStore(filePath string, log *zap.Logger) (*BuildingStore, error) {
	bs := &BuildingStore{
		buildings: make(map[string]*building),
		filePath:  filePath,
		log:       log,
	}
	if err := bs.Reload(); err != nil {
		return nil, err
	}
	return bs, nil
}

// NewBuildingStoreFromBytes store loaded from yaml data, without a backing file.
func NewBuildingStoreFromBytes(data []byte, log *zap.Logger) (*BuildingStore, error) {
	bs := &BuildingStore{
		buildings: make(map[string]*building),
		log:       log,
	}
	buildings, err := bs.parse(data)
	if err != nil {
		return nil, err
	}
	bs.buildings = buildings
	return bs, nil
}

// Reload re-reads the backing file. on error the previous buildings are kept.
func (bs *BuildingStore) Reload() error {
	data, err := os.ReadFile(bs.filePath)
	if err != nil {
		return fmt.Errorf("read building file %s: %w", bs.filePath, err)
	}
	buildings, err := bs.parse(data)
	if err != nil {
		return fmt.Errorf("parse building file %s: %w", bs.filePath, err)
	}

	bs.mu.Lock()
	bs.buildings = buildings
	bs.mu.Unlock()

	bs.log.Info("building data loaded", zap.String("file", bs.filePath), zap.Int("buildings", len(buildings)))
	return nil
}

func (bs *BuildingStore) parse(data []byte) (map[string]*building, error) {
	var file buildingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	buildings := make(map[string]*building, len(file.Buildings))
	for _, br := range file.Buildings {
		if br.ID == "" {
			return nil, errors.New("building without id")
		}
		if _, ok := buildings[br.ID]; ok {
			return nil, fmt.Errorf("duplicate building id %s", br.ID)
		}
		b, err := bs.buildBuilding(br)
		if err != nil {
			return nil, err
		}
		buildings[br.ID] = b
	}
	return buildings, nil
}

func (bs *BuildingStore) buildBuilding(br buildingRecord) (*building, error) {
	b := &building{
		id:        br.ID,
		name:      br.Name,
		landmarks: make([]da.Landmark, 0, len(br.Landmarks)),
		paths:     make([]da.Path, 0, len(br.Paths)),
	}

	active := make(map[string]struct{}, len(br.Landmarks))
	seen := make(map[string]struct{}, len(br.Landmarks))
	for _, lr := range br.Landmarks {
		if lr.ID == "" {
			return nil, fmt.Errorf("building %s: landmark without id", br.ID)
		}
		if _, ok := seen[lr.ID]; ok {
			return nil, fmt.Errorf("building %s: duplicate landmark id %s", br.ID, lr.ID)
		}
		seen[lr.ID] = struct{}{}

		if !isActive(lr.Active) {
			continue
		}
		active[lr.ID] = struct{}{}
		b.landmarks = append(b.landmarks, lr.toLandmark())
	}

	for _, pr := range br.Paths {
		if !isActive(pr.Active) {
			continue
		}
		if pr.Distance < 0 {
			bs.log.Warn("rejecting path with negative distance", zap.String("building_id", br.ID),
				zap.String("path_id", pr.ID), zap.Float64("distance", pr.Distance))
			continue
		}
		_, fromActive := active[pr.From]
		_, toActive := active[pr.To]
		if !fromActive || !toActive {
			continue
		}

		difficulty, ok := da.ParseDifficulty(pr.Difficulty)
		if !ok && pr.Difficulty != "" {
			bs.log.Warn("unknown path difficulty, treated as unspecified", zap.String("building_id", br.ID),
				zap.String("path_id", pr.ID), zap.String("difficulty", pr.Difficulty))
		}
		b.paths = append(b.paths, pr.toPath(difficulty))
	}

	if floors := nonNumericFloors(b.landmarks); len(floors) > 0 {
		bs.log.Warn("non-numeric floor labels are treated as floor 0 by the A* heuristic",
			zap.String("building_id", br.ID), zap.Strings("floors", floors))
	}
	b.numComponents = bs.countComponents(b)
	return b, nil
}

func nonNumericFloors(landmarks []da.Landmark) []string {
	seen := make(map[string]struct{})
	floors := make([]string, 0)
	for _, l := range landmarks {
		if _, ok := routing.FloorOrdinal(l.Floor); ok {
			continue
		}
		if _, ok := seen[l.Floor]; !ok {
			seen[l.Floor] = struct{}{}
			floors = append(floors, l.Floor)
		}
	}
	return floors
}

func (bs *BuildingStore) countComponents(b *building) int {
	if len(b.landmarks) == 0 {
		return 0
	}
	components := routing.BuildGraph(b.landmarks, b.paths, 0, bs.log).StronglyConnectedComponents()
	if len(components) > 1 {
		sizes := make([]int, len(components))
		for i, c := range components {
			sizes[i] = len(c)
		}
		bs.log.Warn("building graph is not strongly connected, some routes will not be found",
			zap.String("building_id", b.id), zap.Int("components", len(components)), zap.Ints("sizes", sizes))
	}
	return len(components)
}

func (bs *BuildingStore) getBuilding(buildingID string) (*building, error) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	b, ok := bs.buildings[buildingID]
	if !ok {
		return nil, util.WrapErrorf(ErrBuildingNotFound, util.ErrNotFound, "building %s", buildingID)
	}
	return b, nil
}

// GetActiveGraphData copies of the active landmarks of buildingID and of the active paths between them.
func (bs *BuildingStore) GetActiveGraphData(ctx context.Context, buildingID string) ([]da.Landmark, []da.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, util.WrapErrorf(err, util.ErrTimeout, "fetch building %s", buildingID)
	}
	b, err := bs.getBuilding(buildingID)
	if err != nil {
		return nil, nil, err
	}

	landmarks := make([]da.Landmark, len(b.landmarks))
	copy(landmarks, b.landmarks)
	paths := make([]da.Path, len(b.paths))
	copy(paths, b.paths)
	return landmarks, paths, nil
}

// GetActiveLandmarks copies of the active landmarks of buildingID.
func (bs *BuildingStore) GetActiveLandmarks(ctx context.Context, buildingID string) ([]da.Landmark, error) {
	landmarks, _, err := bs.GetActiveGraphData(ctx, buildingID)
	return landmarks, err
}

func (bs *BuildingStore) ListBuildings() []BuildingInfo {
	bs.mu.RLock()
	defer bs.mu.RUnlock()

	infos := make([]BuildingInfo, 0, len(bs.buildings))
	for _, b := range bs.buildings {
		infos = append(infos, BuildingInfo{
			ID:            b.id,
			Name:          b.name,
			NumLandmarks:  len(b.landmarks),
			NumPaths:      len(b.paths),
			NumComponents: b.numComponents,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Watch reloads the store whenever the backing file is written, created or renamed into place.
// it blocks until ctx is done.
func (bs *BuildingStore) Watch(ctx context.Context) error {
	if bs.filePath == "" {
		return errors.New("building store has no backing file")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// watch the directory, editors replace the file instead of writing it in place
	target := filepath.Clean(bs.filePath)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := bs.Reload(); err != nil {
				bs.log.Error("reloading building data failed, keeping previous data", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			bs.log.Error("building file watcher error", zap.Error(err))
		}
	}
}
