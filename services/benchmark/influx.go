package benchmark

import (
	"context"
	"fmt"
	"os"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// ResultStorage persists per-game results somewhere queryable.
// The runner treats it as optional: nil storage means JSON-file-only runs.
type ResultStorage interface {
	StoreGame(ctx context.Context, summary *Summary, game GameResult) error
	Close()
}

// Measurement is the InfluxDB measurement name for per-game points.
const Measurement = "wordle_benchmarks"

// InfluxDBStorage writes one point per game, tagged by run and platform so
// runs can be compared side by side in a dashboard.
type InfluxDBStorage struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

// NewInfluxDBStorage connects using the INFLUXDB_* environment variables.
// A missing INFLUXDB_TOKEN is an error; callers use that to fall back to
// file-only persistence rather than aborting the run.
func NewInfluxDBStorage() (*InfluxDBStorage, error) {
	token := os.Getenv("INFLUXDB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("INFLUXDB_TOKEN not set")
	}

	url := os.Getenv("INFLUXDB_URL")
	if url == "" {
		url = "http://localhost:8086"
	}
	org := os.Getenv("INFLUXDB_ORG")
	if org == "" {
		org = "wordlebench"
	}
	bucket := os.Getenv("INFLUXDB_BUCKET")
	if bucket == "" {
		bucket = "benchmarks"
	}

	client := influxdb2.NewClient(url, token)
	writeAPI := client.WriteAPIBlocking(org, bucket)

	return &InfluxDBStorage{
		client:   client,
		writeAPI: writeAPI,
		bucket:   bucket,
		org:      org,
	}, nil
}

// StoreGame writes one game's result as a point.
func (s *InfluxDBStorage) StoreGame(ctx context.Context, summary *Summary, game GameResult) error {
	p := influxdb2.NewPointWithMeasurement(Measurement).
		AddTag("run_id", summary.RunID).
		AddTag("platform", summary.Platform).
		AddTag("model", summary.Model).
		AddTag("lies", fmt.Sprintf("%d", summary.Lies)).
		AddTag("game_id", game.ID).
		AddField("target", game.Target).
		AddField("success", game.Success).
		AddField("tries", game.Tries).
		AddField("latency_seconds", game.LatencySeconds).
		AddField("oracle_calls", game.OracleCalls).
		AddField("good_guesses", game.GoodGuesses).
		AddField("bad_guesses", game.BadGuesses).
		AddField("completion", game.Completion).
		SetTime(game.FinishedAt)

	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxDBStorage) Close() {
	s.client.Close()
}
