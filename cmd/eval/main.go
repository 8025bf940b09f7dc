package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/lintang-b-s/Wayfindx/pkg"
	"github.com/lintang-b-s/Wayfindx/pkg/concurrent"
	"github.com/lintang-b-s/Wayfindx/pkg/engine"
	"github.com/lintang-b-s/Wayfindx/pkg/engine/routing"
	log "github.com/lintang-b-s/Wayfindx/pkg/logger"
	"github.com/lintang-b-s/Wayfindx/pkg/storage"
	"github.com/lintang-b-s/Wayfindx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", ".", "directory containing config.yaml")
	numPairs   = flag.Int("pairs", 1000, "random landmark pairs per building")
	numWorkers = flag.Int("workers", runtime.NumCPU(), "number of query workers")
	seed       = flag.Uint64("seed", 42, "random seed for landmark pairs")
	outFile    = flag.String("out", "eval_results.csv", "per query result csv")
)

type query struct {
	row        int
	buildingID string
	from, to   string
}

type algorithmResult struct {
	distance float64
	steps    int
	found    bool
	latency  time.Duration
	err      error
}

type queryResult struct {
	query
	dijkstra algorithmResult
	astar    algorithmResult
}

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configPath); err != nil {
		panic(err)
	}
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	store, err := storage.NewBuildingStore(viper.GetString("BUILDINGS_FILE"), logger)
	if err != nil {
		logger.Fatal("failed to load building data", zap.Error(err))
	}
	re := engine.NewEngine(store, logger).GetRoutingEngine()

	ctx := context.Background()
	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))

	queries := make([]query, 0)
	for _, b := range store.ListBuildings() {
		landmarks, err := store.GetActiveLandmarks(ctx, b.ID)
		if err != nil {
			logger.Fatal("failed to read landmarks", zap.String("building_id", b.ID), zap.Error(err))
		}
		if len(landmarks) < 2 {
			continue
		}
		for i := 0; i < *numPairs; i++ {
			s := landmarks[rng.IntN(len(landmarks))].ID
			t := landmarks[rng.IntN(len(landmarks))].ID
			queries = append(queries, query{row: len(queries), buildingID: b.ID, from: s, to: t})
		}
	}
	logger.Info("running random queries", zap.Int("queries", len(queries)), zap.Int("workers", *numWorkers))

	compute := func(ctx context.Context, q query, alg pkg.Algorithm) algorithmResult {
		start := time.Now()
		route, err := re.ComputeRoute(ctx, q.buildingID, q.from, q.to, routing.Preferences{}, alg)
		res := algorithmResult{latency: time.Since(start)}
		switch {
		case err == nil:
			res.found = true
			res.distance = route.TotalDistance
			res.steps = len(route.Steps)
		case errors.Is(err, routing.ErrNoPathFound):
		default:
			res.err = err
		}
		return res
	}

	results := concurrent.Run(ctx, *numWorkers, queries, func(ctx context.Context, q query) queryResult {
		return queryResult{
			query:    q,
			dijkstra: compute(ctx, q, pkg.DIJKSTRA),
			astar:    compute(ctx, q, pkg.ASTAR),
		}
	})
	sort.Slice(results, func(i, j int) bool {
		return results[i].row < results[j].row
	})

	if err := writeResults(*outFile, results); err != nil {
		logger.Fatal("failed to write results", zap.Error(err))
	}

	mismatches := 0
	dLatency := make([]time.Duration, 0, len(results))
	aLatency := make([]time.Duration, 0, len(results))
	for _, r := range results {
		if r.dijkstra.err != nil || r.astar.err != nil {
			logger.Error("query failed", zap.String("building_id", r.buildingID), zap.String("from", r.from),
				zap.String("to", r.to), zap.NamedError("dijkstra", r.dijkstra.err), zap.NamedError("astar", r.astar.err))
			continue
		}
		if r.dijkstra.found != r.astar.found || math.Abs(r.dijkstra.distance-r.astar.distance) > 1e-9 {
			mismatches++
			logger.Warn("astar disagrees with dijkstra", zap.String("building_id", r.buildingID),
				zap.String("from", r.from), zap.String("to", r.to),
				zap.Float64("dijkstra_distance", r.dijkstra.distance), zap.Float64("astar_distance", r.astar.distance))
		}
		dLatency = append(dLatency, r.dijkstra.latency)
		aLatency = append(aLatency, r.astar.latency)
	}

	logger.Info("evaluation done", zap.Int("queries", len(results)), zap.Int("mismatches", mismatches),
		zap.Duration("dijkstra_p50", percentile(dLatency, 0.5)), zap.Duration("dijkstra_p99", percentile(dLatency, 0.99)),
		zap.Duration("astar_p50", percentile(aLatency, 0.5)), zap.Duration("astar_p99", percentile(aLatency, 0.99)))

	if mismatches > 0 {
		os.Exit(1)
	}
}

func writeResults(path string, results []queryResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	w := csv.NewWriter(bw)
	if err := w.Write([]string{"row", "building_id", "from", "to", "dijkstra_distance", "astar_distance",
		"dijkstra_us", "astar_us", "found"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write([]string{
			strconv.Itoa(r.row), r.buildingID, r.from, r.to,
			fmt.Sprintf("%.0f", r.dijkstra.distance), fmt.Sprintf("%.0f", r.astar.distance),
			strconv.FormatInt(r.dijkstra.latency.Microseconds(), 10), strconv.FormatInt(r.astar.latency.Microseconds(), 10),
			strconv.FormatBool(r.dijkstra.found),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

func percentile(latencies []time.Duration, p float64) time.Duration {
	if len(latencies) == 0 {
		return 0
	}
	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}
