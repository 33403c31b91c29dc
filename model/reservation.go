package model

import (
	"fmt"
	"strings"
	"time"
)

// OsCategory is the canonical operating system family used to key reservations.
type OsCategory string

const (
	OsLinux   OsCategory = "LINUX"
	OsWindows OsCategory = "WINDOWS"
	OsRhel    OsCategory = "RHEL"
	OsUnknown OsCategory = "UNKNOWN"
)

var productDescriptions = map[string]OsCategory{
	"linux/unix":               OsLinux,
	"linux/unix (amazon vpc)":  OsLinux,
	"windows":                  OsWindows,
	"windows (amazon vpc)":     OsWindows,
	"red hat enterprise linux": OsRhel,
}

// ClassifyProduct maps a raw product description to its OS category. Matching is
// case-insensitive. Unrecognized descriptions return (OsUnknown, false) so the
// caller can log the offending value; the record is still aggregated.
func ClassifyProduct(raw string) (OsCategory, bool) {
	if os, ok := productDescriptions[strings.ToLower(raw)]; ok {
		return os, true
	}
	return OsUnknown, false
}

// ClassifyPlatform maps an instance platform flag to an OS category. EC2 only
// reports "windows" on this field; every other instance is billed as Linux/UNIX,
// so only those two families are visible on the usage side. Kept deliberately
// narrower than the reservation-side table to match how the two queries report OS.
func ClassifyPlatform(platform string) OsCategory {
	if strings.EqualFold(platform, "windows") {
		os, _ := ClassifyProduct("Windows")
		return os
	}
	os, _ := ClassifyProduct("Linux/UNIX")
	return os
}

// ReservationKey identifies one aggregation bucket. Two records with equal
// components always land in the same bucket.
type ReservationKey struct {
	AvailabilityZone string
	Os               OsCategory
	InstanceType     string
}

func (k ReservationKey) String() string {
	return fmt.Sprintf("%s:%s:%s", k.AvailabilityZone, k.Os, k.InstanceType)
}

// ReservationDetail pairs purchased and running capacity for one key. Counters
// only ever grow during a run.
type ReservationDetail struct {
	AvailabilityZone string     `json:"availabilityZone"`
	Os               OsCategory `json:"os"`
	InstanceType     string     `json:"instanceType"`
	Reserved         int        `json:"reserved"`
	Used             int        `json:"used"`
}

func (d ReservationDetail) Key() ReservationKey {
	return ReservationKey{
		AvailabilityZone: d.AvailabilityZone,
		Os:               d.Os,
		InstanceType:     d.InstanceType,
	}
}

// ReservationReport is the complete snapshot for one run. Start is captured
// before the first account is processed, End after the last one completes.
type ReservationReport struct {
	Start        time.Time           `json:"start"`
	End          time.Time           `json:"end"`
	Reservations []ReservationDetail `json:"reservations"`
}

const (
	// ReservationReportNamespace is the provider-cache namespace the report is
	// published to.
	ReservationReportNamespace = "reservation-reports"

	// LatestReportID is the identity of the single entry in that namespace.
	LatestReportID = "latest"
)

// CacheEntry is one named entry in a provider-cache namespace.
type CacheEntry struct {
	ID         string         `json:"id"`
	Attributes map[string]any `json:"attributes"`
}
