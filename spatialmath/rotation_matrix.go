package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// RotationMatrix is a 3x3 rotation matrix. Values are stored the mgl64 way (column major); use At and
// Row to read them.
type RotationMatrix struct {
	mat mgl64.Mat3
}

// NewRotationMatrix creates a rotation matrix from 9 values given in row major order.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, errors.Errorf("input slice has %d elements, need exactly 9", len(m))
	}
	return &RotationMatrix{mgl64.Mat3FromRows(
		mgl64.Vec3{m[0], m[1], m[2]},
		mgl64.Vec3{m[3], m[4], m[5]},
		mgl64.Vec3{m[6], m[7], m[8]},
	)}, nil
}

// IdentityRotation returns the 3x3 identity.
func IdentityRotation() *RotationMatrix {
	return &RotationMatrix{mgl64.Ident3()}
}

// QuatToRotationMatrix converts a unit quaternion to its rotation matrix.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	return &RotationMatrix{toMglQuat(q).Mat4().Mat3()}
}

// Quaternion returns the unit quaternion for this rotation matrix.
func (rm *RotationMatrix) Quaternion() quat.Number {
	return NormalizeQuat(fromMglQuat(mgl64.Mat4ToQuat(rm.mat.Mat4())))
}

// At returns the element at row and column.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat.At(row, col)
}

// Row returns the row'th row as a vector.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat.At(row, 0), Y: rm.mat.At(row, 1), Z: rm.mat.At(row, 2)}
}

// Mul returns the matrix-vector product R*v.
func (rm *RotationMatrix) Mul(v r3.Vector) r3.Vector {
	return fromVec3(rm.mat.Mul3x1(toVec3(v)))
}

// Transpose returns the transpose, which for a rotation is its inverse.
func (rm *RotationMatrix) Transpose() *RotationMatrix {
	return &RotationMatrix{rm.mat.Transpose()}
}

// RotationMatrixAlmostEqual reports whether every element of a is within tol of the same element of b.
func RotationMatrixAlmostEqual(a, b *RotationMatrix, tol float64) bool {
	return elementsWithin(a.mat[:], b.mat[:], tol)
}

func elementsWithin(a, b []float64, tol float64) bool {
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

func toMglQuat(q quat.Number) mgl64.Quat {
	return mgl64.Quat{W: q.Real, V: mgl64.Vec3{q.Imag, q.Jmag, q.Kmag}}
}

func fromMglQuat(q mgl64.Quat) quat.Number {
	return quat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

func toVec3(v r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromVec3(v mgl64.Vec3) r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}
