// Package metricstore persists the last resolved display metrics so early
// startup, or a headless session, can seed a DPI override from the last
// known value instead of probing a display server it may not have.
package metricstore

import (
	"fmt"
	"io"
	"os"

	"github.com/ugorji/go/codec"

	"github.com/sonoshi/mado/dpi"
)

// snapshot is the stored wire form; kept flat so older snapshots keep
// decoding when Metrics grows fields.
type snapshot struct {
	PhysicalX float64 `codec:"physical_x"`
	PhysicalY float64 `codec:"physical_y"`
	LogicalX  float64 `codec:"logical_x"`
	LogicalY  float64 `codec:"logical_y"`
}

var codecHandler = func() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.RawToString = true
	return h
}()

// Save writes metrics to file, replacing any previous snapshot.
func Save(file string, m dpi.Metrics) error {
	if !m.Physical.Valid() || !m.Logical.Valid() {
		return fmt.Errorf("metricstore: refusing to store invalid metrics %+v", m)
	}
	fp, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("metricstore: %w", err)
	}
	defer fp.Close()
	return serialize(fp, &snapshot{
		PhysicalX: m.Physical.X,
		PhysicalY: m.Physical.Y,
		LogicalX:  m.Logical.X,
		LogicalY:  m.Logical.Y,
	})
}

// Load reads the snapshot stored in file. A snapshot with non-positive
// values is rejected the same as a corrupt file.
func Load(file string) (dpi.Metrics, error) {
	fp, err := os.Open(file)
	if err != nil {
		return dpi.Metrics{}, fmt.Errorf("metricstore: %w", err)
	}
	defer fp.Close()

	var s snapshot
	if err := deserialize(fp, &s); err != nil {
		return dpi.Metrics{}, fmt.Errorf("metricstore: decode %s: %w", file, err)
	}
	m := dpi.Metrics{
		Physical: dpi.Pair{X: s.PhysicalX, Y: s.PhysicalY},
		Logical:  dpi.Pair{X: s.LogicalX, Y: s.LogicalY},
	}
	if !m.Physical.Valid() || !m.Logical.Valid() {
		return dpi.Metrics{}, fmt.Errorf("metricstore: snapshot %s holds invalid metrics %+v", file, m)
	}
	return m, nil
}

func serialize(w io.Writer, data interface{}) error {
	enc := codec.NewEncoder(w, codecHandler)
	return enc.Encode(data)
}

func deserialize(r io.Reader, data interface{}) error {
	dec := codec.NewDecoder(r, codecHandler)
	return dec.Decode(data)
}
