package utils

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var defaultSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)

func DrawBanner() {
	figure.NewFigure("ri reconciler", "", true).Print()
}

func StartSpinner() {
	defaultSpinner.Suffix = " collecting reservations and usage"
	defaultSpinner.Start()
}

func StopSpinner() {
	defaultSpinner.Stop()
}
