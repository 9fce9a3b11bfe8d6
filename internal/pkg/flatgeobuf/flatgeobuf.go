package flatgeobuf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/diwise/geo-features/internal/app/geofeatures/features"
	"github.com/diwise/geo-features/internal/pkg/values"
	"github.com/flatgeobuf/flatgeobuf/src/go/flattypes"
	"github.com/flatgeobuf/flatgeobuf/src/go/writer"
	flatbuffers "github.com/google/flatbuffers/go"
)

const ContentType = "application/flatgeobuf"

var ErrUnsupportedGeometry = errors.New("unsupported geometry")

type column struct {
	name string
	kind flattypes.ColumnType
}

// Write encodes the features of fc as a FlatGeobuf stream in EPSG:4326.
// The feature id is always the first column, the remaining columns are
// inferred from the property values in order of first appearance.
func Write(w io.Writer, fc features.FeatureCollection) error {
	for _, f := range fc.Features {
		if _, ok := f.Geometry.(features.Point); !ok {
			return fmt.Errorf("%w: %T", ErrUnsupportedGeometry, f.Geometry)
		}
	}

	columns := inferColumns(fc.Features)

	builder := flatbuffers.NewBuilder(4096)

	header := writer.NewHeader(builder)
	header.SetGeometryType(flattypes.GeometryTypePoint)
	header.SetName(fc.Label)

	cols := make([]*writer.Column, 0, len(columns))
	for _, c := range columns {
		col := writer.NewColumn(builder)
		col.SetName(c.name)
		col.SetTitle(c.name)
		col.SetType(c.kind)
		col.SetNullable(c.name != "id")
		cols = append(cols, col)
	}
	header.SetColumns(cols)

	crs := writer.NewCrs(builder)
	crs.SetOrg("EPSG")
	crs.SetCode(4326)
	header.SetCrs(crs)

	gen := &generator{
		features: fc.Features,
		columns:  columns,
	}

	_, err := writer.NewWriter(header, len(fc.Features) > 0, gen, nil).Write(w)
	return err
}

func inferColumns(fs []features.Feature) []column {
	columns := []column{{name: "id", kind: flattypes.ColumnTypeLong}}
	index := map[string]int{"id": 0}

	for _, f := range fs {
		for _, m := range f.Properties.Members() {
			kind, ok := columnType(m.Value)
			if !ok || m.Name == "id" {
				continue
			}

			i, seen := index[m.Name]
			if !seen {
				index[m.Name] = len(columns)
				columns = append(columns, column{name: m.Name, kind: kind})
				continue
			}

			columns[i].kind = widen(columns[i].kind, kind)
		}
	}

	return columns
}

func columnType(v values.Value) (flattypes.ColumnType, bool) {
	switch v.(type) {
	case values.Integer:
		return flattypes.ColumnTypeLong, true
	case values.Float:
		return flattypes.ColumnTypeDouble, true
	case values.Boolean:
		return flattypes.ColumnTypeBool, true
	case values.String:
		return flattypes.ColumnTypeString, true
	case values.Array, values.Object:
		return flattypes.ColumnTypeJson, true
	}
	return 0, false
}

func widen(current, next flattypes.ColumnType) flattypes.ColumnType {
	if current == next {
		return current
	}

	numeric := func(t flattypes.ColumnType) bool {
		return t == flattypes.ColumnTypeLong || t == flattypes.ColumnTypeDouble
	}

	if numeric(current) && numeric(next) {
		return flattypes.ColumnTypeDouble
	}

	return flattypes.ColumnTypeJson
}

type generator struct {
	features []features.Feature
	columns  []column
	index    int
}

func (g *generator) Generate() *writer.Feature {
	if g.index >= len(g.features) {
		return nil
	}

	f := g.features[g.index]
	g.index++

	p := f.Geometry.(features.Point)

	builder := flatbuffers.NewBuilder(1024)

	geom := writer.NewGeometry(builder)
	geom.SetType(flattypes.GeometryTypePoint)
	geom.SetXY([]float64{p.Longitude, p.Latitude})

	feature := writer.NewFeature(builder)
	feature.SetGeometry(geom)
	feature.SetProperties(encodeProperties(f, g.columns))

	return feature
}

// encodeProperties writes each present value as a little endian column
// index followed by the value. Absent and null values are left out.
func encodeProperties(f features.Feature, columns []column) []byte {
	var b []byte

	if id, ok := f.ID.Int(); ok {
		b = binary.LittleEndian.AppendUint16(b, 0)
		b = binary.LittleEndian.AppendUint64(b, uint64(id))
	}

	for i, c := range columns[1:] {
		v, ok := f.Properties.Get(c.name)
		if !ok {
			continue
		}
		if _, isNull := v.(values.Null); isNull {
			continue
		}

		b = binary.LittleEndian.AppendUint16(b, uint16(i+1))
		b = appendValue(b, c.kind, v)
	}

	return b
}

func appendValue(b []byte, kind flattypes.ColumnType, v values.Value) []byte {
	switch kind {
	case flattypes.ColumnTypeLong:
		return binary.LittleEndian.AppendUint64(b, uint64(v.(values.Integer)))
	case flattypes.ColumnTypeDouble:
		var f float64
		switch n := v.(type) {
		case values.Integer:
			f = float64(n)
		case values.Float:
			f = float64(n)
		}
		return binary.LittleEndian.AppendUint64(b, math.Float64bits(f))
	case flattypes.ColumnTypeBool:
		if v.(values.Boolean) {
			return append(b, 1)
		}
		return append(b, 0)
	case flattypes.ColumnTypeString:
		return appendSized(b, []byte(string(v.(values.String))))
	default:
		return appendSized(b, []byte(values.Encode(v)))
	}
}

func appendSized(b, data []byte) []byte {
	b = binary.LittleEndian.AppendUint32(b, uint32(len(data)))
	return append(b, data...)
}
