/*package pdg maps particle species names to the numeric type codes of the
Particle Data Group numbering scheme. It is a pure lookup table: nothing here
depends on any particular event.
*/
package pdg

// Codes for the species that show up in essentially every analysis. The
// full scheme assigns antiparticles the negated code of the particle.
const (
	Electron int32 = 11
	Muon     int32 = 13
	Tau      int32 = 15
	NuE      int32 = 12
	NuMu     int32 = 14
	NuTau    int32 = 16

	Gamma  int32 = 22
	Gluon  int32 = 21
	ZBoson int32 = 23
	WPlus  int32 = 24

	PiZero int32 = 111
	PiPlus int32 = 211
	KPlus  int32 = 321
	KZero  int32 = 311

	Proton  int32 = 2212
	Neutron int32 = 2112
	Lambda  int32 = 3122
)

var codes = map[string]int32{
	"electron": Electron,
	"positron": -Electron,
	"muon":     Muon,
	"tau":      Tau,
	"nu_e":     NuE,
	"nu_mu":    NuMu,
	"nu_tau":   NuTau,

	"gamma":  Gamma,
	"photon": Gamma,
	"gluon":  Gluon,
	"z0":     ZBoson,
	"w+":     WPlus,
	"w-":     -WPlus,

	"pi0": PiZero,
	"pi+": PiPlus,
	"pi-": -PiPlus,
	"k+":  KPlus,
	"k-":  -KPlus,
	"k0":  KZero,

	"proton":      Proton,
	"antiproton":  -Proton,
	"neutron":     Neutron,
	"antineutron": -Neutron,
	"lambda":      Lambda,
}

var names = map[int32]string{}

func init() {
	// First writer wins, so aliases like "photon" don't clobber the
	// canonical name.
	for name, code := range codes {
		if _, ok := names[code]; !ok {
			names[code] = name
		}
	}
	names[Gamma] = "gamma"
}

// Code returns the PDG code for a species name, e.g. Code("proton") = 2212.
func Code(name string) (int32, bool) {
	code, ok := codes[name]
	return code, ok
}

// Name returns a species name for a PDG code, or "" if the code isn't in
// the built-in table.
func Name(code int32) string {
	return names[code]
}
