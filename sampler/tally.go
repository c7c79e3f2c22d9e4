// SPDX-License-Identifier: MIT

package sampler

import (
	"sort"

	"github.com/katalvlaran/oracles/bitvec"
)

// Count is one distinct outcome and how often it was observed.
type Count struct {
	Value bitvec.Vector
	Hits  int
}

// Tally groups samples into distinct outcomes, most frequent first; ties are
// ordered by the outcome's bit string.
func Tally(samples []bitvec.Vector) []Count {
	index := make(map[string]int, len(samples))
	out := make([]Count, 0)
	for _, s := range samples {
		key := s.String()
		if i, ok := index[key]; ok {
			out[i].Hits++
			continue
		}
		index[key] = len(out)
		out = append(out, Count{Value: s, Hits: 1})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Hits != out[j].Hits {
			return out[i].Hits > out[j].Hits
		}
		return out[i].Value.String() < out[j].Value.String()
	})

	return out
}
