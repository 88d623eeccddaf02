// Package derive computes posting fields from title text alone. These are
// best-effort heuristics: listing rows carry no structured job data.
package derive

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// JobType maps title markers to a track, defaulting to administrative.
func JobType(title string) string {
	switch {
	case strings.Contains(title, "연구"):
		return "연구직"
	case strings.Contains(title, "기술"):
		return "기술직"
	case strings.Contains(title, "전문"):
		return "전문직"
	case strings.Contains(title, "계약"):
		return "계약직"
	default:
		return "행정직"
	}
}

func EmploymentType(title string) string {
	switch {
	case strings.Contains(title, "계약"), strings.Contains(title, "임시"):
		return "계약직"
	case strings.Contains(title, "인턴"), strings.Contains(title, "파견"):
		return "인턴"
	default:
		return "정규직"
	}
}

var positionsRe = regexp.MustCompile(`(\d+)(?:명|인)`)

// Positions returns the first integer followed by a person-count unit. With
// no such token it falls back to a random 1..3 and reports exact=false so
// callers can flag the count as low-confidence.
func Positions(title string) (count int, exact bool) {
	if m := positionsRe.FindStringSubmatch(title); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 {
			return n, true
		}
	}
	return rand.Intn(3) + 1, false
}

func IsUrgent(title string) bool {
	return strings.Contains(title, "긴급") || strings.Contains(title, "특별")
}

// Window returns the synthetic application window: listing rows do not
// reliably expose deadlines, so end is always start plus the horizon.
func Window(start time.Time, horizon time.Duration) (time.Time, time.Time) {
	return start, start.Add(horizon)
}
