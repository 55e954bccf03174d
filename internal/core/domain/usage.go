package domain

import (
	"math"
	"strconv"
	"time"
)

// GiB is the byte size of a gibibyte
const GiB = 1 << 30

// Plan defaults used when the provider does not report a limit
const (
	DefaultCreditsLimit         = 25
	DefaultTransformationsLimit = 25000
	DefaultBandwidthLimit       = 25 * GiB
	DefaultStorageLimit         = 25 * GiB
)

// Counter is a raw provider counter. A zero Limit means the provider reported none.
type Counter struct {
	Used  float64
	Limit float64
}

// UsageCounters are the raw account counters reported by a provider
type UsageCounters struct {
	Plan             string
	LastUpdated      string
	Credits          Counter
	Transformations  Counter
	Bandwidth        Counter
	Storage          Counter
	Resources        int64
	DerivedResources int64
	ResetAt          *time.Time
}

// MetricUsage is a derived quota metric
type MetricUsage struct {
	Used      float64
	Limit     float64
	Percent   float64
	Remaining float64
}

// ByteUsage is a derived quota metric expressed in bytes, with GB renderings
type ByteUsage struct {
	MetricUsage
	UsedGB      string
	LimitGB     string
	RemainingGB string
}

// UsageSnapshot is a point in time view of the account quota
type UsageSnapshot struct {
	Plan             string
	LastUpdated      string
	Credits          MetricUsage
	Transformations  MetricUsage
	Bandwidth        ByteUsage
	Storage          ByteUsage
	Resources        int64
	DerivedResources int64
	ResetDate        *time.Time
	FetchedAt        time.Time
}

// NewUsageSnapshot derives percentages, remaining values and GB strings from raw counters.
// Remaining values are not clamped: a negative remaining value means over quota.
func NewUsageSnapshot(counters UsageCounters, fetchedAt time.Time) UsageSnapshot {
	return UsageSnapshot{
		Plan:             counters.Plan,
		LastUpdated:      counters.LastUpdated,
		Credits:          newMetricUsage(counters.Credits, DefaultCreditsLimit),
		Transformations:  newMetricUsage(counters.Transformations, DefaultTransformationsLimit),
		Bandwidth:        newByteUsage(counters.Bandwidth, DefaultBandwidthLimit),
		Storage:          newByteUsage(counters.Storage, DefaultStorageLimit),
		Resources:        counters.Resources,
		DerivedResources: counters.DerivedResources,
		ResetDate:        counters.ResetAt,
		FetchedAt:        fetchedAt,
	}
}

func newMetricUsage(counter Counter, defaultLimit float64) MetricUsage {
	limit := counter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	return MetricUsage{
		Used:      counter.Used,
		Limit:     limit,
		Percent:   Percent(counter.Used, limit),
		Remaining: limit - counter.Used,
	}
}

func newByteUsage(counter Counter, defaultLimit float64) ByteUsage {
	metric := newMetricUsage(counter, defaultLimit)
	return ByteUsage{
		MetricUsage: metric,
		UsedGB:      FormatGB(metric.Used),
		LimitGB:     FormatGB(metric.Limit),
		RemainingGB: FormatGB(metric.Remaining),
	}
}

// Percent returns used/limit*100 rounded to two decimals
func Percent(used, limit float64) float64 {
	if limit == 0 {
		return 0
	}
	return math.Round(used/limit*100*100) / 100
}

// FormatGB renders a byte count as gibibytes with two decimals
func FormatGB(bytes float64) string {
	return strconv.FormatFloat(bytes/GiB, 'f', 2, 64)
}
