package atlas

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anthonynsimon/bild/transform"
)

var filters = map[string]transform.ResampleFilter{
	"nearest":    transform.NearestNeighbor,
	"box":        transform.Box,
	"linear":     transform.Linear,
	"gaussian":   transform.Gaussian,
	"mitchell":   transform.MitchellNetravali,
	"catmullrom": transform.CatmullRom,
	"lanczos":    transform.Lanczos,
}

// ParseFilter returns the resampling filter with the given name.
func ParseFilter(name string) (transform.ResampleFilter, error) {
	f, ok := filters[strings.ToLower(name)]
	if !ok {
		return transform.ResampleFilter{}, fmt.Errorf("unknown resample filter %q (have %s)", name, strings.Join(FilterNames(), ", "))
	}
	return f, nil
}

// FilterNames lists the accepted filter names.
func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for n := range filters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
