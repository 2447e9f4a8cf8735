package pdg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		code int32
	}{
		{"proton", 2212},
		{"antiproton", -2212},
		{"electron", 11},
		{"positron", -11},
		{"gamma", 22},
		{"photon", 22},
		{"pi+", 211},
		{"pi-", -211},
	}

	for _, test := range tests {
		code, ok := Code(test.name)
		assert.True(t, ok, test.name)
		assert.Equal(t, test.code, code, test.name)
	}

	_, ok := Code("graviton")
	assert.False(t, ok)
}

func TestName(t *testing.T) {
	assert.Equal(t, "proton", Name(Proton))
	assert.Equal(t, "gamma", Name(Gamma))
	assert.Equal(t, "", Name(12345))
}

func TestReadMasses(t *testing.T) {
	file := filepath.Join(t.TempDir(), "masses.txt")
	text := `# code mass
2212 0.938272
211 0.139570
11 0.000511
`
	assert.NoError(t, os.WriteFile(file, []byte(text), 0666))

	masses, err := ReadMasses(file)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(masses))
	assert.Equal(t, 0.938272, masses[2212])
	assert.Equal(t, 0.000511, masses[11])
}

func TestReadMassesRejectsDuplicates(t *testing.T) {
	file := filepath.Join(t.TempDir(), "masses.txt")
	text := "2212 0.938\n2212 0.939\n"
	assert.NoError(t, os.WriteFile(file, []byte(text), 0666))

	_, err := ReadMasses(file)
	assert.Error(t, err)
}
