package trajectory

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Indexes into a Mask and into twists / Cartesian errors.
const (
	PositionX = iota
	PositionY
	PositionZ
	OrientationX
	OrientationY
	OrientationZ
)

// Mask holds one flag per Cartesian error component: position x, y, z then orientation x, y, z.
// A zero flag means the component should be ignored by whoever tracks the trajectory; any other
// value means it is active. The orientation flags refer to the vector part of the orientation
// error.
type Mask [6]int

// DefaultMask has every component active.
func DefaultMask() Mask {
	return Mask{1, 1, 1, 1, 1, 1}
}

// Active reports whether component i is tracked.
func (m Mask) Active(i int) bool {
	return m[i] != 0
}

func (m Mask) String() string {
	return fmt.Sprintf("position%v orientation%v", m[PositionX:OrientationX], m[OrientationX:])
}

// Apply returns a copy of the 6-vector v with the inactive components set to zero.
func (m Mask) Apply(v mat.Vector) *mat.VecDense {
	out := mat.VecDenseCopyOf(v)
	for i := range m {
		if !m.Active(i) {
			out.SetVec(i, 0)
		}
	}
	return out
}

// Maskable is implemented by generators that carry a Mask. The mask may depend on time. A
// generator never applies its mask to its own output.
type Maskable interface {
	Mask(t float64) Mask
	SetMask(mask Mask)
}

// MaskHolder is an embeddable Maskable that stores a time-independent mask.
type MaskHolder struct {
	mask Mask
}

// NewMaskHolder returns a MaskHolder with every component active.
func NewMaskHolder() MaskHolder {
	return MaskHolder{mask: DefaultMask()}
}

// Mask returns the stored mask regardless of t.
func (h *MaskHolder) Mask(t float64) Mask {
	return h.mask
}

// SetMask replaces the stored mask.
func (h *MaskHolder) SetMask(mask Mask) {
	h.mask = mask
}
