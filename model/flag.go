package model

import "time"

type Flags struct {
	// Agent flags
	ConfigPath string
	Interval   time.Duration
	Workers    int
	DBPath     string

	// One-shot reporting flags
	Once  bool
	Table bool
	Chart bool
}
