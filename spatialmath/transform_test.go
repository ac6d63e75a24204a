package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestRotationMatrixQuaternion(t *testing.T) {
	q := QuatFromAxisAngle(0.8, r3.Vector{X: 1, Y: 2, Z: -1})
	rm := QuatToRotationMatrix(q)
	test.That(t, QuaternionAlmostEqual(rm.Quaternion(), q, 1e-9), test.ShouldBeTrue)

	v := r3.Vector{X: 0.3, Y: -1, Z: 2}
	test.That(t, rm.Mul(v).Sub(RotateVector(q, v)).Norm(), test.ShouldBeLessThan, 1e-12)

	// orthonormal
	prod := rm.Transpose().Mul(rm.Mul(v))
	test.That(t, prod.Sub(v).Norm(), test.ShouldBeLessThan, 1e-12)
}

func TestNewRotationMatrix(t *testing.T) {
	// 90 degrees about z, row major
	rm, err := NewRotationMatrix([]float64{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rm.At(0, 1), test.ShouldEqual, -1.)
	test.That(t, rm.Row(1), test.ShouldResemble, r3.Vector{X: 1})
	expected := QuatFromAxisAngle(math.Pi/2, r3.Vector{Z: 1})
	test.That(t, QuaternionAlmostEqual(rm.Quaternion(), expected, 1e-12), test.ShouldBeTrue)
	test.That(t, RotationMatrixAlmostEqual(rm, QuatToRotationMatrix(expected), 1e-12), test.ShouldBeTrue)

	_, err = NewRotationMatrix([]float64{1, 0, 0})
	test.That(t, err, test.ShouldBeError)
	test.That(t, err.Error(), test.ShouldContainSubstring, "need exactly 9")
}

func TestTransform(t *testing.T) {
	q := QuatFromAxisAngle(math.Pi/2, r3.Vector{Z: 1})
	d := r3.Vector{X: 1, Y: 2, Z: 3}
	tf := NewTransformFromQuat(q, d)

	test.That(t, tf.Translation(), test.ShouldResemble, d)
	test.That(t, QuaternionAlmostEqual(tf.Quaternion(), q, 1e-12), test.ShouldBeTrue)
	test.That(t, tf.At(3, 3), test.ShouldEqual, 1.)

	p := tf.TransformPoint(r3.Vector{X: 1})
	test.That(t, p.X, test.ShouldAlmostEqual, 1)
	test.That(t, p.Y, test.ShouldAlmostEqual, 3)
	test.That(t, p.Z, test.ShouldAlmostEqual, 3)

	v := tf.TransformVector(r3.Vector{X: 1})
	test.That(t, v.X, test.ShouldAlmostEqual, 0)
	test.That(t, v.Y, test.ShouldAlmostEqual, 1)
	test.That(t, v.Z, test.ShouldAlmostEqual, 0)

	test.That(t, TransformAlmostEqual(Compose(tf, tf.Inverse()), IdentityTransform(), 1e-12), test.ShouldBeTrue)
	test.That(t, TransformAlmostEqual(Compose(tf.Inverse(), tf), IdentityTransform(), 1e-12), test.ShouldBeTrue)
}

func TestR2T(t *testing.T) {
	rm := QuatToRotationMatrix(QuatFromAxisAngle(1, r3.Vector{X: 1}))
	tf := R2T(rm)
	test.That(t, tf.Translation(), test.ShouldResemble, r3.Vector{})
	test.That(t, RotationMatrixAlmostEqual(tf.Rotation(), rm, 0), test.ShouldBeTrue)
}

func TestNewTransformFromMatrix(t *testing.T) {
	tf, err := NewTransformFromMatrix([]float64{
		1, 0, 0, 4,
		0, 1, 0, 5,
		0, 0, 1, 6,
		0, 0, 0, 1,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tf.Translation(), test.ShouldResemble, r3.Vector{X: 4, Y: 5, Z: 6})

	_, err = NewTransformFromMatrix(make([]float64, 15))
	test.That(t, err, test.ShouldBeError)

	bad := make([]float64, 16)
	_, err = NewTransformFromMatrix(bad)
	test.That(t, err, test.ShouldBeError)
	test.That(t, err.Error(), test.ShouldContainSubstring, "[0 0 0 1]")
}

func TestAlmostEqualNearZeroEntries(t *testing.T) {
	nearIdentity, err := NewRotationMatrix([]float64{
		1, 1e-17, 0,
		-1e-17, 1, 0,
		0, 0, 1,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, RotationMatrixAlmostEqual(IdentityRotation(), nearIdentity, 1e-12), test.ShouldBeTrue)

	far, err := NewRotationMatrix([]float64{
		1, 1e-3, 0,
		0, 1, 0,
		0, 0, 1,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, RotationMatrixAlmostEqual(IdentityRotation(), far, 1e-12), test.ShouldBeFalse)

	shifted := NewTransform(IdentityRotation(), r3.Vector{X: 1e-15})
	test.That(t, TransformAlmostEqual(IdentityTransform(), shifted, 1e-12), test.ShouldBeTrue)
	test.That(t, TransformAlmostEqual(IdentityTransform(), NewTransform(IdentityRotation(), r3.Vector{Z: 1e-6}), 1e-12), test.ShouldBeFalse)
}
