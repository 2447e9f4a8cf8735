package pdg

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// ReadMasses reads a two-column whitespace table of PDG code and mass (in
// GeV) and returns the mapping. Lines starting with # are comments. Codes
// must be integral and must not repeat.
func ReadMasses(file string) (map[int32]float64, error) {
	cols := table.TextFile(file).ReadFloat64s([]int{0, 1})

	codes, masses := cols[0], cols[1]
	out := make(map[int32]float64, len(codes))
	for i := range codes {
		code := int32(codes[i])
		if float64(code) != codes[i] {
			return nil, fmt.Errorf(
				"Non-integer PDG code %g on line %d of %s.",
				codes[i], i+1, file,
			)
		}
		if _, ok := out[code]; ok {
			return nil, fmt.Errorf(
				"Duplicate PDG code %d on line %d of %s.", code, i+1, file,
			)
		}
		out[code] = masses[i]
	}
	return out, nil
}
