package gltf

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/buger/jsonparser"
)

// DecodeError describes why a document could not be decoded. Decoding is
// strict: unknown object keys and missing required fields are errors,
// raised before validation ever runs. Validation itself never re-checks
// shape, only cross-references.
type DecodeError struct {
	// Path locates the offending value, "" for the document root.
	Path string

	// Msg describes the failure.
	Msg string
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "gltf: " + e.Msg
	}
	return "gltf: " + e.Msg + " at " + e.Path
}

func decodeErrf(path Path, format string, args ...any) error {
	return &DecodeError{Path: path.String(), Msg: fmt.Sprintf(format, args...)}
}

func unknownField(path Path, key []byte) error {
	return decodeErrf(path, "unknown field %q", string(key))
}

// Decode parses a glTF JSON document into a Root. The returned tree is
// fully constructed and ready for validation; Decode itself performs no
// cross-reference checking.
func Decode(data []byte) (*Root, error) {
	root := &Root{}
	path := NewPath()
	hasAsset := false

	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		switch string(key) {
		case "asset":
			hasAsset = true
			asset, err := decodeAsset(value, path.Field("asset"))
			if err != nil {
				return err
			}
			root.Asset = asset
		case "accessors":
			return decodeSlice(value, path.Field("accessors"), &root.Accessors, decodeAccessor)
		case "animations":
			return decodeSlice(value, path.Field("animations"), &root.Animations, decodeAnimation)
		case "buffers":
			return decodeSlice(value, path.Field("buffers"), &root.Buffers, decodeBuffer)
		case "bufferViews":
			return decodeSlice(value, path.Field("bufferViews"), &root.BufferViews, decodeBufferView)
		case "meshes":
			return decodeSlice(value, path.Field("meshes"), &root.Meshes, decodeMesh)
		case "nodes":
			return decodeSlice(value, path.Field("nodes"), &root.Nodes, decodeNode)
		case "scenes":
			return decodeSlice(value, path.Field("scenes"), &root.Scenes, decodeScene)
		case "scene":
			idx, err := decodeIndex[Scene](value, path.Field("scene"))
			if err != nil {
				return err
			}
			root.Scene = &idx
		case "extras":
			root.Extras = rawMessage(value, vt)
		case "extensions":
			ext, err := decodeExtensions(value, path.Field("extensions"))
			if err != nil {
				return err
			}
			root.Extensions = ext
		case "extensionsUsed", "extensionsRequired":
			// Declared extension names carry no references; preserved as
			// opaque extension metadata is out of scope.
		default:
			return unknownField(path, key)
		}
		return nil
	})
	if err != nil {
		return nil, wrapDecodeErr(path, err)
	}
	if !hasAsset {
		return nil, decodeErrf(path, "missing required field %q", "asset")
	}
	return root, nil
}

func decodeAsset(data []byte, path Path) (Asset, error) {
	var a Asset
	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		var err error
		switch string(key) {
		case "version":
			a.Version, err = decodeString(value, path.Field("version"))
		case "minVersion":
			a.MinVersion, err = decodeString(value, path.Field("minVersion"))
		case "generator":
			a.Generator, err = decodeString(value, path.Field("generator"))
		case "copyright":
			a.Copyright, err = decodeString(value, path.Field("copyright"))
		case "extras":
			a.Extras = rawMessage(value, vt)
		case "extensions":
			a.Extensions, err = decodeExtensions(value, path.Field("extensions"))
		default:
			return unknownField(path, key)
		}
		return err
	})
	return a, wrapDecodeErr(path, err)
}

func decodeAnimation(data []byte, path Path) (Animation, error) {
	var a Animation
	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		var err error
		switch string(key) {
		case "channels":
			err = decodeSlice(value, path.Field("channels"), &a.Channels, decodeChannel)
		case "samplers":
			err = decodeSlice(value, path.Field("samplers"), &a.Samplers, decodeAnimationSampler)
		case "name":
			a.Name, err = decodeString(value, path.Field("name"))
		case "extras":
			a.Extras = rawMessage(value, vt)
		case "extensions":
			a.Extensions, err = decodeExtensions(value, path.Field("extensions"))
		default:
			return unknownField(path, key)
		}
		return err
	})
	return a, wrapDecodeErr(path, err)
}

func decodeChannel(data []byte, path Path) (Channel, error) {
	var c Channel
	var hasSampler, hasTarget bool
	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		var err error
		switch string(key) {
		case "sampler":
			hasSampler = true
			c.Sampler, err = decodeIndex[Sampler](value, path.Field("sampler"))
		case "target":
			hasTarget = true
			c.Target, err = decodeTarget(value, path.Field("target"))
		case "extras":
			c.Extras = rawMessage(value, vt)
		case "extensions":
			c.Extensions, err = decodeExtensions(value, path.Field("extensions"))
		default:
			return unknownField(path, key)
		}
		return err
	})
	if err != nil {
		return c, wrapDecodeErr(path, err)
	}
	if !hasSampler {
		return c, decodeErrf(path, "missing required field %q", "sampler")
	}
	if !hasTarget {
		return c, decodeErrf(path, "missing required field %q", "target")
	}
	return c, nil
}

func decodeTarget(data []byte, path Path) (Target, error) {
	var t Target
	var hasNode, hasPath bool
	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		var err error
		switch string(key) {
		case "node":
			hasNode = true
			t.Node, err = decodeIndex[Node](value, path.Field("node"))
		case "path":
			hasPath = true
			t.Path, err = decodeString(value, path.Field("path"))
		case "extras":
			t.Extras = rawMessage(value, vt)
		case "extensions":
			t.Extensions, err = decodeExtensions(value, path.Field("extensions"))
		default:
			return unknownField(path, key)
		}
		return err
	})
	if err != nil {
		return t, wrapDecodeErr(path, err)
	}
	if !hasNode {
		return t, decodeErrf(path, "missing required field %q", "node")
	}
	if !hasPath {
		return t, decodeErrf(path, "missing required field %q", "path")
	}
	return t, nil
}

func decodeAnimationSampler(data []byte, path Path) (Sampler, error) {
	// Interpolation defaults to LINEAR when the source omits it.
	s := Sampler{Interpolation: InterpolationLinear}
	var hasInput, hasOutput bool
	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		var err error
		switch string(key) {
		case "input":
			hasInput = true
			s.Input, err = decodeIndex[Accessor](value, path.Field("input"))
		case "output":
			hasOutput = true
			s.Output, err = decodeIndex[Accessor](value, path.Field("output"))
		case "interpolation":
			s.Interpolation, err = decodeString(value, path.Field("interpolation"))
		case "extras":
			s.Extras = rawMessage(value, vt)
		case "extensions":
			s.Extensions, err = decodeExtensions(value, path.Field("extensions"))
		default:
			return unknownField(path, key)
		}
		return err
	})
	if err != nil {
		return s, wrapDecodeErr(path, err)
	}
	if !hasInput {
		return s, decodeErrf(path, "missing required field %q", "input")
	}
	if !hasOutput {
		return s, decodeErrf(path, "missing required field %q", "output")
	}
	return s, nil
}

func decodeAccessor(data []byte, path Path) (Accessor, error) {
	var a Accessor
	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		var err error
		switch string(key) {
		case "bufferView":
			var idx Index[BufferView]
			idx, err = decodeIndex[BufferView](value, path.Field("bufferView"))
			a.BufferView = &idx
		case "byteOffset":
			a.ByteOffset, err = decodeUint32(value, path.Field("byteOffset"))
		case "componentType":
			a.ComponentType, err = decodeInt(value, path.Field("componentType"))
		case "normalized":
			a.Normalized, err = decodeBool(value, path.Field("normalized"))
		case "count":
			a.Count, err = decodeUint32(value, path.Field("count"))
		case "type":
			a.Type, err = decodeString(value, path.Field("type"))
		case "min":
			a.Min, err = decodeFloatSlice(value, path.Field("min"))
		case "max":
			a.Max, err = decodeFloatSlice(value, path.Field("max"))
		case "name":
			a.Name, err = decodeString(value, path.Field("name"))
		case "extras":
			a.Extras = rawMessage(value, vt)
		case "extensions":
			a.Extensions, err = decodeExtensions(value, path.Field("extensions"))
		default:
			return unknownField(path, key)
		}
		return err
	})
	return a, wrapDecodeErr(path, err)
}

func decodeBuffer(data []byte, path Path) (Buffer, error) {
	var b Buffer
	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		var err error
		switch string(key) {
		case "uri":
			b.URI, err = decodeString(value, path.Field("uri"))
		case "byteLength":
			b.ByteLength, err = decodeUint32(value, path.Field("byteLength"))
		case "name":
			b.Name, err = decodeString(value, path.Field("name"))
		case "extras":
			b.Extras = rawMessage(value, vt)
		case "extensions":
			b.Extensions, err = decodeExtensions(value, path.Field("extensions"))
		default:
			return unknownField(path, key)
		}
		return err
	})
	return b, wrapDecodeErr(path, err)
}

func decodeBufferView(data []byte, path Path) (BufferView, error) {
	var v BufferView
	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		var err error
		switch string(key) {
		case "buffer":
			v.Buffer, err = decodeIndex[Buffer](value, path.Field("buffer"))
		case "byteOffset":
			v.ByteOffset, err = decodeUint32(value, path.Field("byteOffset"))
		case "byteLength":
			v.ByteLength, err = decodeUint32(value, path.Field("byteLength"))
		case "byteStride":
			var stride uint32
			stride, err = decodeUint32(value, path.Field("byteStride"))
			v.ByteStride = &stride
		case "target":
			v.Target, err = decodeInt(value, path.Field("target"))
		case "name":
			v.Name, err = decodeString(value, path.Field("name"))
		case "extras":
			v.Extras = rawMessage(value, vt)
		case "extensions":
			v.Extensions, err = decodeExtensions(value, path.Field("extensions"))
		default:
			return unknownField(path, key)
		}
		return err
	})
	return v, wrapDecodeErr(path, err)
}

func decodeMesh(data []byte, path Path) (Mesh, error) {
	var m Mesh
	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		var err error
		switch string(key) {
		case "primitives":
			err = decodeSlice(value, path.Field("primitives"), &m.Primitives, decodePrimitive)
		case "weights":
			m.Weights, err = decodeFloatSlice(value, path.Field("weights"))
		case "name":
			m.Name, err = decodeString(value, path.Field("name"))
		case "extras":
			m.Extras = rawMessage(value, vt)
		case "extensions":
			m.Extensions, err = decodeExtensions(value, path.Field("extensions"))
		default:
			return unknownField(path, key)
		}
		return err
	})
	return m, wrapDecodeErr(path, err)
}

func decodePrimitive(data []byte, path Path) (Primitive, error) {
	p := Primitive{Mode: ModeTriangles}
	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		var err error
		switch string(key) {
		case "attributes":
			p.Attributes = make(map[string]Index[Accessor])
			apath := path.Field("attributes")
			err = jsonparser.ObjectEach(value, func(akey, avalue []byte, _ jsonparser.ValueType, _ int) error {
				idx, err := decodeIndex[Accessor](avalue, apath.Field(string(akey)))
				if err != nil {
					return err
				}
				p.Attributes[string(akey)] = idx
				return nil
			})
		case "indices":
			var idx Index[Accessor]
			idx, err = decodeIndex[Accessor](value, path.Field("indices"))
			p.Indices = &idx
		case "mode":
			p.Mode, err = decodeInt(value, path.Field("mode"))
		case "extras":
			p.Extras = rawMessage(value, vt)
		case "extensions":
			p.Extensions, err = decodeExtensions(value, path.Field("extensions"))
		default:
			return unknownField(path, key)
		}
		return err
	})
	return p, wrapDecodeErr(path, err)
}

func decodeNode(data []byte, path Path) (Node, error) {
	var n Node
	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		var err error
		switch string(key) {
		case "children":
			err = decodeSlice(value, path.Field("children"), &n.Children, decodeIndexAt[Node])
		case "mesh":
			var idx Index[Mesh]
			idx, err = decodeIndex[Mesh](value, path.Field("mesh"))
			n.Mesh = &idx
		case "matrix":
			n.Matrix, err = decodeFloatSlice(value, path.Field("matrix"))
		case "translation":
			n.Translation, err = decodeFloatSlice(value, path.Field("translation"))
		case "rotation":
			n.Rotation, err = decodeFloatSlice(value, path.Field("rotation"))
		case "scale":
			n.Scale, err = decodeFloatSlice(value, path.Field("scale"))
		case "weights":
			n.Weights, err = decodeFloatSlice(value, path.Field("weights"))
		case "name":
			n.Name, err = decodeString(value, path.Field("name"))
		case "extras":
			n.Extras = rawMessage(value, vt)
		case "extensions":
			n.Extensions, err = decodeExtensions(value, path.Field("extensions"))
		default:
			return unknownField(path, key)
		}
		return err
	})
	return n, wrapDecodeErr(path, err)
}

func decodeScene(data []byte, path Path) (Scene, error) {
	var s Scene
	err := jsonparser.ObjectEach(data, func(key, value []byte, vt jsonparser.ValueType, _ int) error {
		var err error
		switch string(key) {
		case "nodes":
			err = decodeSlice(value, path.Field("nodes"), &s.Nodes, decodeIndexAt[Node])
		case "name":
			s.Name, err = decodeString(value, path.Field("name"))
		case "extras":
			s.Extras = rawMessage(value, vt)
		case "extensions":
			s.Extensions, err = decodeExtensions(value, path.Field("extensions"))
		default:
			return unknownField(path, key)
		}
		return err
	})
	return s, wrapDecodeErr(path, err)
}

// decodeSlice decodes a JSON array into *out, each element at path[i].
func decodeSlice[T any](data []byte, path Path, out *[]T, decode func([]byte, Path) (T, error)) error {
	items := []T{}
	i := 0
	var cbErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, vt jsonparser.ValueType, _ int, _ error) {
		if cbErr != nil {
			return
		}
		item, err := decode(value, path.ArrayIndex(i))
		if err != nil {
			cbErr = err
			return
		}
		items = append(items, item)
		i++
	})
	if cbErr != nil {
		return cbErr
	}
	if err != nil {
		return wrapDecodeErr(path, err)
	}
	*out = items
	return nil
}

func decodeIndex[T any](value []byte, path Path) (Index[T], error) {
	n, err := decodeUint32(value, path)
	return Index[T](n), err
}

// decodeIndexAt matches the decodeSlice element signature.
func decodeIndexAt[T any](value []byte, path Path) (Index[T], error) {
	return decodeIndex[T](value, path)
}

func decodeUint32(value []byte, path Path) (uint32, error) {
	n, err := jsonparser.ParseInt(value)
	if err != nil {
		return 0, decodeErrf(path, "expected integer: %v", err)
	}
	if n < 0 || n > math.MaxUint32 {
		return 0, decodeErrf(path, "integer %d out of range", n)
	}
	return uint32(n), nil
}

func decodeInt(value []byte, path Path) (int, error) {
	n, err := jsonparser.ParseInt(value)
	if err != nil {
		return 0, decodeErrf(path, "expected integer: %v", err)
	}
	return int(n), nil
}

func decodeString(value []byte, path Path) (string, error) {
	s, err := jsonparser.ParseString(value)
	if err != nil {
		return "", decodeErrf(path, "expected string: %v", err)
	}
	return s, nil
}

func decodeBool(value []byte, path Path) (bool, error) {
	b, err := jsonparser.ParseBoolean(value)
	if err != nil {
		return false, decodeErrf(path, "expected boolean: %v", err)
	}
	return b, nil
}

func decodeFloatSlice(value []byte, path Path) ([]float64, error) {
	var out []float64
	var cbErr error
	i := 0
	_, err := jsonparser.ArrayEach(value, func(item []byte, _ jsonparser.ValueType, _ int, _ error) {
		if cbErr != nil {
			return
		}
		f, err := jsonparser.ParseFloat(item)
		if err != nil {
			cbErr = decodeErrf(path.ArrayIndex(i), "expected number: %v", err)
			return
		}
		out = append(out, f)
		i++
	})
	if cbErr != nil {
		return nil, cbErr
	}
	if err != nil {
		return nil, wrapDecodeErr(path, err)
	}
	return out, nil
}

func decodeExtensions(value []byte, path Path) (Extensions, error) {
	ext := make(Extensions)
	err := jsonparser.ObjectEach(value, func(key, val []byte, vt jsonparser.ValueType, _ int) error {
		ext[string(key)] = rawMessage(val, vt)
		return nil
	})
	if err != nil {
		return nil, wrapDecodeErr(path, err)
	}
	return ext, nil
}

// rawMessage preserves a value verbatim as opaque JSON. jsonparser strips
// the quotes from string values (escapes intact), so those are re-quoted.
func rawMessage(value []byte, vt jsonparser.ValueType) json.RawMessage {
	if vt == jsonparser.String {
		out := make(json.RawMessage, 0, len(value)+2)
		out = append(out, '"')
		out = append(out, value...)
		return append(out, '"')
	}
	out := make(json.RawMessage, len(value))
	copy(out, value)
	return out
}

// wrapDecodeErr tags raw jsonparser failures with a location; DecodeError
// values pass through untouched so the innermost path wins.
func wrapDecodeErr(path Path, err error) error {
	if err == nil {
		return nil
	}
	var derr *DecodeError
	if errors.As(err, &derr) {
		return err
	}
	return &DecodeError{Path: path.String(), Msg: err.Error()}
}
