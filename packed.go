package rubix

import (
	"encoding/binary"
	"fmt"
)

// PackedFace stores a Face in 27 bits: ring position i occupies bits
// 3i..3i+2 and the center occupies bits 24..26.
type PackedFace uint32

const (
	colorBits   = 3
	colorMask   = 1<<colorBits - 1
	centerShift = ringSize * colorBits
)

// Pack compresses f.
func Pack(f Face) PackedFace {
	p := PackedFace(f.center) << centerShift
	for i, c := range f.vertices {
		p |= PackedFace(c) << (colorBits * i)
	}
	return p
}

func (p PackedFace) at(i int) FaceColor {
	return FaceColor((p >> (colorBits * i)) & colorMask)
}

// Center returns the packed center color.
func (p PackedFace) Center() FaceColor {
	return FaceColor((p >> centerShift) & colorMask)
}

// Edge returns the window at side, using the same ring windows as Face.
func (p PackedFace) Edge(side FaceEdge) [3]FaceColor {
	w := window(side)
	return [3]FaceColor{p.at(w[0]), p.at(w[1]), p.at(w[2])}
}

// Unpack expands p, rejecting values that hold no valid color.
func (p PackedFace) Unpack() (Face, error) {
	if p>>(centerShift+colorBits) != 0 {
		return Face{}, fmt.Errorf("%w: stray bits in %#x", ErrCorruptState, uint32(p))
	}
	f := Face{center: p.Center()}
	if !f.center.Valid() {
		return Face{}, fmt.Errorf("%w: center %d", ErrCorruptState, f.center)
	}
	for i := range f.vertices {
		f.vertices[i] = p.at(i)
		if !f.vertices[i].Valid() {
			return Face{}, fmt.Errorf("%w: sticker %d is %d", ErrCorruptState, i, f.vertices[i])
		}
	}
	return f, nil
}

// packedCubeSize is six packed faces followed by the front and top bytes.
const packedCubeSize = numColors*4 + 2

// MarshalBinary encodes the cube as six big-endian packed faces in color
// order followed by the front and top colors.
func (c *Cube) MarshalBinary() ([]byte, error) {
	buf := make([]byte, packedCubeSize)
	for i, f := range c.faces {
		binary.BigEndian.PutUint32(buf[4*i:], uint32(Pack(f)))
	}
	buf[numColors*4] = byte(c.front)
	buf[numColors*4+1] = byte(c.top)
	return buf, nil
}

// UnmarshalBinary decodes data written by MarshalBinary. Every face must
// sit under its own center and the orientation must be legal.
func (c *Cube) UnmarshalBinary(data []byte) error {
	if len(data) != packedCubeSize {
		return fmt.Errorf("%w: %d bytes", ErrCorruptState, len(data))
	}

	var next Cube
	for i := range next.faces {
		f, err := PackedFace(binary.BigEndian.Uint32(data[4*i:])).Unpack()
		if err != nil {
			return err
		}
		if f.center != FaceColor(i) {
			return fmt.Errorf("%w: face %d has center %s", ErrCorruptState, i, f.center.Name())
		}
		next.faces[i] = f
	}
	if err := next.Reorient(FaceColor(data[numColors*4]), FaceColor(data[numColors*4+1])); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	*c = next
	return nil
}
