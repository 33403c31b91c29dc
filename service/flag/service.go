package flag

import (
	"flag"
	"time"

	"github.com/elC0mpa/aws-reservations/model"
)

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	config := flag.String("config", "", "Path to the accounts YAML file")
	interval := flag.Duration("interval", 30*time.Minute, "Time between report runs")
	workers := flag.Int("workers", 4, "Maximum concurrent account/region collectors")
	db := flag.String("db", "", "SQLite file for the report cache (in-memory when empty)")
	once := flag.Bool("once", false, "Run a single report cycle and exit")
	table := flag.Bool("table", false, "Render the published report as a table (implies -once)")
	chart := flag.Bool("chart", false, "Render per-type utilization as a bar chart (implies -once)")

	flag.Parse()

	return model.Flags{
		ConfigPath: *config,
		Interval:   *interval,
		Workers:    *workers,
		DBPath:     *db,
		Once:       *once,
		Table:      *table,
		Chart:      *chart,
	}, nil
}
