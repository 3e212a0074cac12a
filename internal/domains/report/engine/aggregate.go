// Package engine computes the report views over a snapshot of bookings.
//
// Views that describe a whole stay attribute price × nights. Summary buckets
// labelled "per night" sum the raw nightly price instead; the two are not
// interchangeable.
package engine

import (
	bookingModel "hms/internal/domains/booking/model"
)

// Aggregate sums value over the kept bookings, grouped by key. A nil keep keeps everything.
func Aggregate[K comparable](
	bookings []bookingModel.Booking,
	keep func(bookingModel.Booking) bool,
	key func(bookingModel.Booking) K,
	value func(bookingModel.Booking) int64,
) map[K]int64 {
	sums := make(map[K]int64)

	for _, b := range bookings {
		if keep != nil && !keep(b) {
			continue
		}

		sums[key(b)] += value(b)
	}

	return sums
}

// StayRevenue values a booking at price × nights.
func StayRevenue(b bookingModel.Booking) int64 {
	return b.Revenue()
}

// NightlyRate values a booking at its raw nightly price.
func NightlyRate(b bookingModel.Booking) int64 {
	return b.Price
}

// Bucket is one group of an ordered summary.
type Bucket[K comparable] struct {
	Key   K     `json:"key"`
	Total int64 `json:"total"`
}

// Buckets lays sums out in the given key order, including empty groups.
func Buckets[K comparable](order []K, sums map[K]int64) []Bucket[K] {
	res := make([]Bucket[K], len(order))
	for i, key := range order {
		res[i] = Bucket[K]{Key: key, Total: sums[key]}
	}

	return res
}

func SumBuckets[K comparable](buckets []Bucket[K]) int64 {
	var total int64
	for _, bucket := range buckets {
		total += bucket.Total
	}

	return total
}
