package aggregator

import (
	"fmt"
	"sort"
	"strings"

	"playlist-builder/internal/natsort"
	"playlist-builder/internal/playlist"
)

// Order selects how the tracks of a combined playlist are sorted.
type Order int

const (
	// OrderDirectory sorts by the directory part of each location, then by
	// its file name.
	OrderDirectory Order = iota
	// OrderNatural sorts by the whole location string.
	OrderNatural
	// OrderFilename sorts by file name, then by directory.
	OrderFilename
)

var orderNames = map[Order]string{
	OrderDirectory: "directory",
	OrderNatural:   "natural",
	OrderFilename:  "filename",
}

// ParseOrder parses an order name. The empty string selects OrderDirectory.
func ParseOrder(s string) (Order, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return OrderDirectory, nil
	}
	for o, name := range orderNames {
		if name == s {
			return o, nil
		}
	}
	return OrderDirectory, fmt.Errorf("unknown combine order %q (want directory, natural or filename)", s)
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Compare orders two track locations.
func (o Order) Compare(a, b string) int {
	switch o {
	case OrderNatural:
		return natsort.Compare(a, b)
	case OrderFilename:
		ad, af := playlist.SplitLocation(a)
		bd, bf := playlist.SplitLocation(b)
		if c := natsort.Compare(af, bf); c != 0 {
			return c
		}
		return natsort.Compare(ad, bd)
	default:
		ad, af := playlist.SplitLocation(a)
		bd, bf := playlist.SplitLocation(b)
		if c := natsort.Compare(ad, bd); c != 0 {
			return c
		}
		return natsort.Compare(af, bf)
	}
}

// Sort sorts locations in place.
func (o Order) Sort(locations []string) {
	sort.SliceStable(locations, func(i, j int) bool {
		return o.Compare(locations[i], locations[j]) < 0
	})
}

// Dedup returns locations without repeats, keeping the first occurrence of each.
func Dedup(locations []string) []string {
	seen := make(map[string]struct{}, len(locations))
	out := make([]string, 0, len(locations))
	for _, loc := range locations {
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		out = append(out, loc)
	}
	return out
}
