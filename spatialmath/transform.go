package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// Transform is a 4x4 homogeneous transformation: a rotation followed by a translation.
type Transform struct {
	mat mgl64.Mat4
}

// NewTransform builds a homogeneous transform from a rotation and a translation.
func NewTransform(rot *RotationMatrix, translation r3.Vector) *Transform {
	m := rot.mat.Mat4()
	m.SetCol(3, mgl64.Vec4{translation.X, translation.Y, translation.Z, 1})
	return &Transform{m}
}

// NewTransformFromQuat builds a homogeneous transform from a unit quaternion and a translation.
func NewTransformFromQuat(q quat.Number, translation r3.Vector) *Transform {
	return NewTransform(QuatToRotationMatrix(q), translation)
}

// NewTransformFromMatrix creates a transform from 16 values in row major order. The last row must be
// [0 0 0 1].
func NewTransformFromMatrix(m []float64) (*Transform, error) {
	if len(m) != 16 {
		return nil, errors.Errorf("input slice has %d elements, need exactly 16", len(m))
	}
	if m[12] != 0 || m[13] != 0 || m[14] != 0 || m[15] != 1 {
		return nil, errors.Errorf("last row of a homogeneous transform must be [0 0 0 1], got %v", m[12:])
	}
	return &Transform{mgl64.Mat4FromRows(
		mgl64.Vec4{m[0], m[1], m[2], m[3]},
		mgl64.Vec4{m[4], m[5], m[6], m[7]},
		mgl64.Vec4{m[8], m[9], m[10], m[11]},
		mgl64.Vec4{m[12], m[13], m[14], m[15]},
	)}, nil
}

// IdentityTransform returns the 4x4 identity.
func IdentityTransform() *Transform {
	return &Transform{mgl64.Ident4()}
}

// R2T embeds a rotation in a homogeneous transform with zero translation.
func R2T(rot *RotationMatrix) *Transform {
	return NewTransform(rot, r3.Vector{})
}

// Rotation returns the rotation block.
func (t *Transform) Rotation() *RotationMatrix {
	return &RotationMatrix{t.mat.Mat3()}
}

// Translation returns the translation column.
func (t *Transform) Translation() r3.Vector {
	col := t.mat.Col(3)
	return r3.Vector{X: col[0], Y: col[1], Z: col[2]}
}

// Quaternion returns the unit quaternion of the rotation block.
func (t *Transform) Quaternion() quat.Number {
	return t.Rotation().Quaternion()
}

// At returns the element at row and column.
func (t *Transform) At(row, col int) float64 {
	return t.mat.At(row, col)
}

// TransformPoint maps a point: R*p + d.
func (t *Transform) TransformPoint(p r3.Vector) r3.Vector {
	out := t.mat.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return r3.Vector{X: out[0], Y: out[1], Z: out[2]}
}

// TransformVector maps a free vector, which only sees the rotation: R*v.
func (t *Transform) TransformVector(v r3.Vector) r3.Vector {
	out := t.mat.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return r3.Vector{X: out[0], Y: out[1], Z: out[2]}
}

// Inverse returns the inverse transform [R^T, -R^T d].
func (t *Transform) Inverse() *Transform {
	rt := t.Rotation().Transpose()
	return NewTransform(rt, rt.Mul(t.Translation()).Mul(-1))
}

// Compose returns the transform a*b, i.e. b expressed in the frame a is expressed in.
func Compose(a, b *Transform) *Transform {
	return &Transform{a.mat.Mul4(b.mat)}
}

// TransformAlmostEqual reports whether every element of a is within tol of the same element of b.
func TransformAlmostEqual(a, b *Transform, tol float64) bool {
	return elementsWithin(a.mat[:], b.mat[:], tol)
}
