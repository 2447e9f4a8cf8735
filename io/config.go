package io

import (
	"gopkg.in/gcfg.v1"
)

const (
	ExampleSumEnergyFile = `[SumEnergy]

#######################
# Required Parameters #
#######################

# Species selects which particle type to sum over, by name. Run with no
# arguments to see the list of recognized names.
Species = proton

#######################
# Optional Parameters #
#######################

# Code sets the particle type by raw PDG code instead of by name. If both
# Species and Code are given, Code wins.
# Code = 2212

# Path selects the access path used for the sum. Object walks the particle
# graph, Data copies the event into flat arrays first, and Columns sums over
# a zero-copy view. All three give the same answer; they only differ in
# speed. Default is Columns.
# Path = Columns

# MassTable points at a whitespace table of PDG code and mass in GeV. When
# set, the summary line for each event also reports the summed mass of the
# selected particles.
# MassTable = path/to/masses.txt`
)

type SumEnergyWrapper struct {
	SumEnergy SumEnergyConfig
}

type SumEnergyConfig struct {
	Species   string
	Code      int
	Path      string
	MassTable string
}

func DefaultSumEnergyWrapper() *SumEnergyWrapper {
	wrap := &SumEnergyWrapper{}
	wrap.SumEnergy.Path = "Columns"
	return wrap
}

func (con *SumEnergyConfig) ReadConfig(fname string) error {
	wrap := SumEnergyWrapper{*con}
	if err := gcfg.ReadFileInto(&wrap, fname); err != nil {
		return err
	}
	*con = wrap.SumEnergy
	return nil
}

func (con *SumEnergyConfig) ValidSpecies() bool {
	return con.Species != "" || con.Code != 0
}

func (con *SumEnergyConfig) ValidPath() bool {
	switch con.Path {
	case "Object", "Data", "Columns":
		return true
	}
	return false
}
