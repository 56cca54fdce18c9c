package core

import (
	"time"

	"github.com/IsaacParker30/paper-read/schema"
)

// ComputeStreaks returns the current and longest consecutive-day streaks for
// a set of distinct active days. The caller supplies the reference day; the
// algorithm never reads the wall clock.
//
// The current streak is anchored at today when today is active, at yesterday
// when only yesterday is active, and is 0 otherwise. The longest streak is
// the maximum run length over all run starts in the set. Both are 0 for an
// empty input.
func ComputeStreaks(days []time.Time, today time.Time) (current, longest int) {
	if len(days) == 0 {
		return 0, 0
	}

	daySet := make(map[time.Time]struct{}, len(days))
	for _, d := range days {
		daySet[schema.DayOf(d)] = struct{}{}
	}

	// Longest streak: walk forward from each run start.
	for d := range daySet {
		if _, ok := daySet[d.AddDate(0, 0, -1)]; ok {
			continue // not a run start
		}
		run := 1
		cur := d
		for {
			next := cur.AddDate(0, 0, 1)
			if _, ok := daySet[next]; !ok {
				break
			}
			cur = next
			run++
		}
		longest = max(longest, run)
	}

	// Current streak ends today or yesterday. Not logging today yet does not
	// break the streak, but it does not extend it either.
	ref := schema.DayOf(today)
	var anchor time.Time
	if _, ok := daySet[ref]; ok {
		anchor = ref
	} else if yesterday := ref.AddDate(0, 0, -1); hasDay(daySet, yesterday) {
		anchor = yesterday
	} else {
		return 0, longest
	}

	// Count backwards from the anchor.
	current = 1
	cur := anchor
	for {
		prev := cur.AddDate(0, 0, -1)
		if _, ok := daySet[prev]; !ok {
			break
		}
		cur = prev
		current++
	}

	return current, longest
}

// hasDay reports whether a normalized day is in the set.
func hasDay(daySet map[time.Time]struct{}, d time.Time) bool {
	_, ok := daySet[d]
	return ok
}
