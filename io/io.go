/*package io reads and writes event records in hepevent's binary column
format. One file holds one event.
*/
package io

import (
	"encoding/binary"
	"fmt"
	"os"

	"unsafe"

	"github.com/phil-mansfield/hepevent/event"
)

const (
	// Endianness used by default when writing event files. Files of any
	// endianness can be read.
	DefaultEndiannessFlag int32 = 0
)

/*
The binary format used for event files is as follows:
    |-- 1 --||-- 2 --||-- ... 3 ... --||-- ... 4 ... --||-- ... 5 ... --|

    1 - (int32) Flag indicating the endianness of the file. 0 indicates a
        little endian byte ordering and -1 indicates a big endian byte order.
    2 - (int32) Size of an EventHeader struct. Should be checked for
        consistency.
    3 - (EventHeader) Header containing counts and event-level attributes.
    4 - Particle columns, one contiguous block per field, in the order
        id ([]int64), pid ([]int32), status ([]int32), px, py, pz, e,
        mass ([]float64), prod, end ([]int32 vertex handles).
    5 - Vertex columns: id ([]int64), x, y, z, t ([]float64), then the
        linkage blocks instart, outstart ([]int32) and inidx, outidx
        ([]int32 particle handles), then the weights ([]float64).
*/
type EventHeader struct {
	EventNumber           int64
	NParticles, NVertices int64
	NIn, NOut             int64
	NWeights              int64

	XSec, XSecErr float64
}

// readInt32 returns a single 32-bit integer from the given file using the
// given endianness.
func readInt32(f *os.File, order binary.ByteOrder) (int32, error) {
	var n int32
	if err := binary.Read(f, order, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// endianness converts an endianness flag to a byte order.
func endianness(flag int32) (binary.ByteOrder, error) {
	switch flag {
	case 0:
		return binary.LittleEndian, nil
	case -1:
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("Unrecognized endianness flag %d.", flag)
}

func readEventHeaderAt(
	file string, hdBuf *EventHeader,
) (*os.File, binary.ByteOrder, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, binary.LittleEndian, err
	}

	// Order doesn't matter for this read, since the flags are symmetric.
	flag, err := readInt32(f, binary.LittleEndian)
	if err != nil {
		f.Close()
		return nil, binary.LittleEndian, err
	}
	order, err := endianness(flag)
	if err != nil {
		f.Close()
		return nil, binary.LittleEndian, err
	}

	headerSize, err := readInt32(f, order)
	if err != nil {
		f.Close()
		return nil, binary.LittleEndian, err
	}
	if headerSize != int32(unsafe.Sizeof(EventHeader{})) {
		f.Close()
		return nil, binary.LittleEndian, fmt.Errorf(
			"Expected io.EventHeader size of %d, found %d.",
			unsafe.Sizeof(EventHeader{}), headerSize,
		)
	}

	if err := binary.Read(f, order, hdBuf); err != nil {
		f.Close()
		return nil, binary.LittleEndian, err
	}
	return f, order, nil
}

// ReadEventHeader reads the header of the given event file into hdBuf.
func ReadEventHeader(file string, hdBuf *EventHeader) error {
	f, _, err := readEventHeaderAt(file, hdBuf)
	if err != nil {
		return err
	}
	return f.Close()
}

// ReadEventDataAt reads the event in the given file into d, reusing d's
// arrays where they are large enough. The linkage columns are checked
// against the header's counts, so a store built from the result can't hold
// references that point outside itself.
func ReadEventDataAt(file string, d *event.Data) error {
	hd := &EventHeader{}
	f, order, err := readEventHeaderAt(file, hd)
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	if err := checkCounts(file, hd, fi.Size()); err != nil {
		return err
	}

	d.Resize(
		int(hd.NParticles), int(hd.NVertices), int(hd.NIn), int(hd.NOut),
	)
	d.EventNumber = hd.EventNumber
	d.XSec, d.XSecErr = hd.XSec, hd.XSecErr
	d.Weights = resizeWeights(d.Weights, int(hd.NWeights))

	blocks := []interface{}{
		d.ID, d.PID, d.Status, d.Px, d.Py, d.Pz, d.E, d.Mass, d.Prod, d.End,
		d.VtxID, d.X, d.Y, d.Z, d.T,
		d.InStart, d.OutStart, d.InIdx, d.OutIdx,
		d.Weights,
	}
	for _, block := range blocks {
		if err := binary.Read(f, order, block); err != nil {
			return fmt.Errorf("Event file %s is truncated: %v", file, err)
		}
	}

	return checkLinkage(file, d)
}

// ReadEventAt reads the event in the given file into the given store,
// replacing its previous contents. dBuf is used internally and may be
// reused across calls; it's valid to pass a zero-valued Data.
func ReadEventAt(file string, dBuf *event.Data, ev *event.Event) error {
	if err := ReadEventDataAt(file, dBuf); err != nil {
		return err
	}
	ev.ReadData(dBuf)
	return nil
}

// ReadEvent reads the event file at the given location and returns a fully
// populated store.
func ReadEvent(file string) (*event.Event, error) {
	ev, d := event.NewEvent(0), &event.Data{}
	if err := ReadEventAt(file, d, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// checkCounts rejects headers whose counts can't describe the file they
// came from, before anything is sized off of them. Every count must be
// non-negative and the blocks they imply must add up to the file's exact
// length.
func checkCounts(file string, hd *EventHeader, size int64) error {
	counts := []int64{
		hd.NParticles, hd.NVertices, hd.NIn, hd.NOut, hd.NWeights,
	}
	for _, n := range counts {
		if n < 0 || n > size {
			return fmt.Errorf(
				"Event file %s has %d bytes, but its header claims a "+
					"block of %d entries.", file, size, n,
			)
		}
	}

	if size != expectedFileSize(hd) {
		return fmt.Errorf(
			"Event file %s has %d bytes, but its header implies %d.",
			file, size, expectedFileSize(hd),
		)
	}
	return nil
}

// expectedFileSize returns the exact length of an event file with the
// given header.
func expectedFileSize(hd *EventHeader) int64 {
	particleBytes := hd.NParticles * (8 + 4 + 4 + 5*8 + 4 + 4)
	vertexBytes := hd.NVertices*(8+4*8) + 2*4*(hd.NVertices+1)
	linkBytes := 4*hd.NIn + 4*hd.NOut
	return 4 + 4 + int64(unsafe.Sizeof(EventHeader{})) +
		particleBytes + vertexBytes + linkBytes + 8*hd.NWeights
}

// checkLinkage rejects any handle in d that points outside d's own rows.
// A file that fails this check never becomes a store.
func checkLinkage(file string, d *event.Data) error {
	np, nv := int32(d.NParticles()), int32(d.NVertices())

	for i, v := range d.Prod {
		if v != event.NilVertex && (int32(v) < 0 || int32(v) >= nv) {
			return fmt.Errorf(
				"Particle %d of file %s has production vertex %d, but the "+
					"file has %d vertices.", i, file, v, nv,
			)
		}
	}
	for i, v := range d.End {
		if v != event.NilVertex && (int32(v) < 0 || int32(v) >= nv) {
			return fmt.Errorf(
				"Particle %d of file %s has end vertex %d, but the file "+
					"has %d vertices.", i, file, v, nv,
			)
		}
	}

	if err := checkRuns(file, "incoming", d.InStart, d.InIdx, np); err != nil {
		return err
	}
	return checkRuns(file, "outgoing", d.OutStart, d.OutIdx, np)
}

func checkRuns(
	file, name string, starts []int32, idx []event.ParticleID, np int32,
) error {
	if len(starts) == 0 || starts[0] != 0 {
		return fmt.Errorf(
			"The %s runs of file %s don't start at zero.", name, file,
		)
	}
	for i := 1; i < len(starts); i++ {
		if starts[i] < starts[i-1] || int(starts[i]) > len(idx) {
			return fmt.Errorf(
				"Vertex %d of file %s has a malformed %s run, [%d, %d).",
				i-1, file, name, starts[i-1], starts[i],
			)
		}
	}
	if int(starts[len(starts)-1]) != len(idx) {
		return fmt.Errorf(
			"The %s runs of file %s end at %d, but the file has %d "+
				"linkage entries.",
			name, file, starts[len(starts)-1], len(idx),
		)
	}
	for i, p := range idx {
		if int32(p) < 0 || int32(p) >= np {
			return fmt.Errorf(
				"Entry %d of the %s linkage of file %s references "+
					"particle %d, but the file has %d particles.",
				i, name, file, p, np,
			)
		}
	}
	return nil
}

// WriteEventData writes a columnar event copy to a file.
func WriteEventData(file string, d *event.Data) error {
	if err := checkLinkage(file, d); err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	order, _ := endianness(DefaultEndiannessFlag)

	hd := &EventHeader{
		EventNumber: d.EventNumber,
		NParticles:  int64(d.NParticles()),
		NVertices:   int64(d.NVertices()),
		NIn:         int64(len(d.InIdx)),
		NOut:        int64(len(d.OutIdx)),
		NWeights:    int64(len(d.Weights)),
		XSec:        d.XSec,
		XSecErr:     d.XSecErr,
	}

	blocks := []interface{}{
		DefaultEndiannessFlag, int32(unsafe.Sizeof(EventHeader{})), hd,
		d.ID, d.PID, d.Status, d.Px, d.Py, d.Pz, d.E, d.Mass, d.Prod, d.End,
		d.VtxID, d.X, d.Y, d.Z, d.T,
		d.InStart, d.OutStart, d.InIdx, d.OutIdx,
		d.Weights,
	}
	for _, block := range blocks {
		if err := binary.Write(f, order, block); err != nil {
			return err
		}
	}
	return nil
}

// WriteEvent writes a store to a file. dBuf is used internally and may be
// reused across calls.
func WriteEvent(file string, dBuf *event.Data, ev *event.Event) error {
	ev.WriteData(dBuf)
	return WriteEventData(file, dBuf)
}

func resizeWeights(s []float64, n int) []float64 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]float64, n)
}
