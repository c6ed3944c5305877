// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This package is based extensively on https://github.com/g3n/engine :
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj parses the geometry of Wavefront OBJ files (*.obj)
// into [mesh.RawGeometry]: vertex positions and triangle indices.
// Polygons are triangulated as fans. Normals, texture coordinates,
// and materials are syntax checked but not retained.
// Basic format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
package obj

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/objmesh/base/errors"
	"cogentcore.org/objmesh/math32"
	"cogentcore.org/objmesh/mesh"
)

// ErrFormat is the error that all [FormatError]s unwrap to.
var ErrFormat = errors.New("obj: invalid OBJ file")

// FormatError reports a malformed line in an OBJ file.
type FormatError struct {

	// Line is the 1-based line number of the error.
	Line int

	// Msg describes the problem.
	Msg string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("obj: %s in line:%d", e.Msg, e.Line)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// Decoder contains all decoded geometry from an obj file.
type Decoder struct {
	Objects  []Object         // decoded objects, in file order
	Vertices []math32.Vector3 // vertex positions
	Indices  []uint32         // triangle vertex indices into Vertices
	Warnings []string         // warning messages

	numNormals int     // number of vn lines, for relative indexes
	numUVs     int     // number of vt lines, for relative indexes
	line       int     // current line number
	objCurrent *Object // current object
}

// Object records one named object or group and the range of
// [Decoder.Indices] holding its triangles.
type Object struct {
	Name       string // object name
	FirstIndex int    // offset of the first index of this object
	NumIndex   int    // number of indices of this object
}

// Local constants
const (
	blanks = "\r\n\t "
)

// Decode reads and decodes the obj data from the given reader.
func Decode(r io.Reader) (*Decoder, error) {
	dec := &Decoder{}
	if err := dec.Decode(r); err != nil {
		return nil, err
	}
	return dec, nil
}

// DecodeBytes decodes the given obj file contents into raw geometry.
func DecodeBytes(b []byte) (mesh.RawGeometry, error) {
	dec, err := Decode(bytes.NewReader(b))
	if err != nil {
		return mesh.RawGeometry{}, err
	}
	return dec.Geometry(), nil
}

// Decode reads the given data and decodes it into the Decoder,
// appending to anything decoded before.
func (dec *Decoder) Decode(r io.Reader) error {
	return dec.parse(r, dec.parseObjLine)
}

// Geometry returns the decoded positions and indices.
func (dec *Decoder) Geometry() mesh.RawGeometry {
	return mesh.RawGeometry{Positions: dec.Vertices, Indices: dec.Indices}
}

// parse reads the lines from the specified reader and dispatch them
// to the specified line parser.
func (dec *Decoder) parse(reader io.Reader, parseLine func(string) error) error {
	bufin := bufio.NewReader(reader)
	dec.line = 1
	for {
		// Reads next line and abort on errors (not EOF)
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		// Parses the line
		line = strings.Trim(line, blanks)
		perr := parseLine(line)
		if perr != nil {
			return perr
		}
		// If EOF ends of parsing.
		if err == io.EOF {
			break
		}
		dec.line++
	}
	return nil
}

// Parses obj file line, dispatching to specific parsers
func (dec *Decoder) parseObjLine(line string) error {
	// Ignore empty lines
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	// Ignore comment lines
	ltype := fields[0]
	if strings.HasPrefix(ltype, "#") {
		return nil
	}
	switch ltype {
	// Object name
	case "o":
		return dec.parseObject(fields[1:])
	// Group names. We are considering "group" the same as "object"
	case "g":
		return dec.parseObject(fields[1:])
	// Vertex coordinate
	case "v":
		return dec.parseVertex(fields[1:])
	// Vertex normal coordinate
	case "vn":
		return dec.parseNormal(fields[1:])
	// Vertex texture coordinate
	case "vt":
		return dec.parseTex(fields[1:])
	// Face vertex
	case "f":
		return dec.parseFace(fields[1:])
	// Materials are not supported, just checked
	case "mtllib", "usemtl":
		if len(fields) < 2 {
			return dec.formatError(ltype + " with no fields")
		}
		return nil
	// Smooth
	case "s":
		return dec.parseSmooth(fields[1:])
	default:
		dec.appendWarn("field not supported: " + ltype)
	}
	return nil
}

// Parses an object line:
// o <name>
func (dec *Decoder) parseObject(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("Object line (o) with no fields")
	}
	dec.startObject(fields[0])
	return nil
}

// startObject closes the current object and starts a new one.
func (dec *Decoder) startObject(name string) {
	dec.Objects = append(dec.Objects, Object{Name: name, FirstIndex: len(dec.Indices)})
	dec.objCurrent = &dec.Objects[len(dec.Objects)-1]
}

// Parses a vertex position line
// v <x> <y> <z> [w]
func (dec *Decoder) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("Less than 3 vertices in 'v' line")
	}
	var vals [3]float32
	if err := dec.parseFloats(fields[:3], vals[:]); err != nil {
		return err
	}
	dec.Vertices = append(dec.Vertices, math32.Vec3(vals[0], vals[1], vals[2]))
	return nil
}

// Parses a vertex normal line
// vn <x> <y> <z>
func (dec *Decoder) parseNormal(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("Less than 3 normals in 'vn' line")
	}
	var vals [3]float32
	if err := dec.parseFloats(fields[:3], vals[:]); err != nil {
		return err
	}
	dec.numNormals++
	return nil
}

// Parses a vertex texture coordinate line:
// vt <u> [v] [w]
func (dec *Decoder) parseTex(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("No texture coords. in 'vt' line")
	}
	vals := make([]float32, min(len(fields), 3))
	if err := dec.parseFloats(fields[:len(vals)], vals); err != nil {
		return err
	}
	dec.numUVs++
	return nil
}

// parseFloats parses the fields into vals, which must be the same length.
func (dec *Decoder) parseFloats(fields []string, vals []float32) error {
	for i, f := range fields {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return dec.formatError(fmt.Sprintf("invalid number %q", f))
		}
		vals[i] = float32(val)
	}
	return nil
}

// parseFace parses a face decription line:
// f v1[/vt1][/vn1] v2[/vt2][/vn2] v3[/vt3][/vn3] ...
// Faces with more than 3 vertices are triangulated as fans
// (0, i-1, i).
func (dec *Decoder) parseFace(fields []string) error {
	if dec.objCurrent == nil {
		// if a face line is encountered before a group (g) or object (o),
		// create a new "default" object. This 'handles' the case when
		// a g or o line is not specified (allowed in OBJ format)
		dec.startObject(fmt.Sprintf("unnamed%d", dec.line))
	}
	if len(fields) < 3 {
		return dec.formatError("Face line with less 3 fields")
	}

	verts := make([]uint32, len(fields))
	for pos, f := range fields {
		// Separate the current field in its components: v vt vn
		vfields := strings.Split(f, "/")
		if len(vfields) > 3 {
			return dec.formatError("Face field with more than 3 parts")
		}

		// Get the index of this vertex position (must always exist)
		vi, err := dec.parseIndex(vfields[0], len(dec.Vertices), "vertex")
		if err != nil {
			return err
		}
		verts[pos] = uint32(vi)

		// Check the index of this vertex UV coordinate (optional)
		if len(vfields) > 1 && len(vfields[1]) > 0 {
			if _, err := dec.parseIndex(vfields[1], dec.numUVs, "uv"); err != nil {
				return err
			}
		}

		// Check the index of this vertex normal (optional)
		if len(vfields) > 2 && len(vfields[2]) > 0 {
			if _, err := dec.parseIndex(vfields[2], dec.numNormals, "normal"); err != nil {
				return err
			}
		}
	}

	// https://stackoverflow.com/questions/23723993/converting-quadriladerals-in-an-obj-file-into-triangles
	for idx := 2; idx < len(verts); idx++ {
		dec.Indices = append(dec.Indices, verts[0], verts[idx-1], verts[idx])
	}
	dec.objCurrent.NumIndex = len(dec.Indices) - dec.objCurrent.FirstIndex
	return nil
}

// parseIndex parses one face index component, returning it as a
// 0-based index. Positive indexes are 1-based absolute indexes and
// negative indexes are relative to the last of the n items read so far.
// Positive indexes past n are not rejected here.
func (dec *Decoder) parseIndex(s string, n int, kind string) (int, error) {
	val, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, dec.formatError(fmt.Sprintf("Face %s index %q is not an integer", kind, s))
	}
	switch {
	case val > 0:
		return int(val - 1), nil
	case val < 0:
		idx := n + int(val)
		if idx < 0 {
			return 0, dec.formatError(fmt.Sprintf("Face %s relative index %d before first %s", kind, val, kind))
		}
		return idx, nil
	default:
		return 0, dec.formatError(fmt.Sprintf("Face %s index value equal to 0", kind))
	}
}

// parseSmooth parses a "s" decription line:
// s <0|1|off|on|group>
func (dec *Decoder) parseSmooth(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("'s' with no fields")
	}
	if fields[0] == "off" || fields[0] == "on" {
		return nil
	}
	if _, err := strconv.ParseUint(fields[0], 10, 32); err != nil {
		return dec.formatError("'s' with invalid value")
	}
	return nil
}

func (dec *Decoder) formatError(msg string) error {
	return &FormatError{Line: dec.line, Msg: msg}
}

func (dec *Decoder) appendWarn(msg string) {
	wline := fmt.Sprintf("obj(%d): %s", dec.line, msg)
	dec.Warnings = append(dec.Warnings, wline)
}
