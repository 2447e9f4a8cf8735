package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/phil-mansfield/hepevent/analyze"
	"github.com/phil-mansfield/hepevent/event"
	"github.com/phil-mansfield/hepevent/io"
	"github.com/phil-mansfield/hepevent/pdg"
)

func main() {
	var (
		sumEnergy, info, exampleConfig string
	)
	vars := map[string]*string{
		"SumEnergy":     &sumEnergy,
		"Info":          &info,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&sumEnergy, "SumEnergy", "",
		"Configuration file for [SumEnergy] mode.",
	)
	flag.StringVar(
		&info, "Info", "",
		"Set to any non-empty value to print the headers of the given "+
			"event files.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'SumEnergy'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "SumEnergy":
		con := &io.DefaultSumEnergyWrapper().SumEnergy
		if err := con.ReadConfig(sumEnergy); err != nil {
			log.Fatal(err.Error())
		}

		if !con.ValidSpecies() {
			log.Fatal("Invalid/non-existent 'Species' value.")
		} else if !con.ValidPath() {
			log.Fatal("Invalid 'Path' value. The only accepted values " +
				"are 'Object', 'Data', and 'Columns'.")
		}

		files := flag.Args()
		if len(files) < 1 {
			log.Fatal("Must supply at least one event file.")
		}
		sumEnergyMain(con, files)

	case "Info":
		files := flag.Args()
		if len(files) < 1 {
			log.Fatal("Must supply at least one event file.")
		}
		infoMain(files)

	case "ExampleConfig":
		switch exampleConfig {
		case "SumEnergy":
			fmt.Println(io.ExampleSumEnergyFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only " +
					"recognized argument is 'SumEnergy'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func sumEnergyMain(con *io.SumEnergyConfig, files []string) {
	code := int32(con.Code)
	if code == 0 {
		var ok bool
		code, ok = pdg.Code(con.Species)
		if !ok {
			log.Fatalf("Unrecognized species name '%s'.", con.Species)
		}
	}

	var masses map[int32]float64
	if con.MassTable != "" {
		var err error
		masses, err = pdg.ReadMasses(con.MassTable)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	ev, d := event.NewEvent(0), &event.Data{}
	for _, file := range files {
		if err := io.ReadEventAt(file, d, ev); err != nil {
			log.Fatal(err.Error())
		}

		var sum float64
		switch con.Path {
		case "Object":
			sum = analyze.SumEnergy(ev, code)
		case "Data":
			sum = analyze.SumEnergyData(d, code)
		case "Columns":
			sum = analyze.SumEnergyColumns(ev.Columns(), code)
		}

		line := fmt.Sprintf(
			"event %d: %d particles, E_sum(%s) = %.6g GeV",
			ev.EventNumber, ev.NParticles(), pdg.Name(code), sum,
		)
		if masses != nil {
			// Every selected particle has the same PDG code, so the
			// summed mass is the table mass times the count.
			m := masses[code]
			n := countSelected(ev.Columns(), code)
			line += fmt.Sprintf(", M_sum = %.6g GeV", m*float64(n))
		}
		fmt.Println(line)
	}
}

func countSelected(c event.Columns, code int32) int {
	m := analyze.EqInt32(nil, c.PID(), code)
	m = analyze.AndEqInt32(m, c.Status(), event.FinalState)
	return m.Count()
}

func infoMain(files []string) {
	hd := &io.EventHeader{}
	for _, file := range files {
		if err := io.ReadEventHeader(file, hd); err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf(
			"%s: event %d, %d particles, %d vertices, xsec = %.4g +/- "+
				"%.4g pb\n",
			file, hd.EventNumber, hd.NParticles, hd.NVertices,
			hd.XSec, hd.XSecErr,
		)
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but hepevent only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}
