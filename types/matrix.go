package types

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mat4 is a 4x4 row-major matrix used for affine model transforms.
type Mat4 [16]float64

// Ident4 returns the identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix translating by t.
func Translation(t Vec3) Mat4 {
	m := Ident4()
	m[3] = t.X
	m[7] = t.Y
	m[11] = t.Z
	return m
}

// Scaling returns a matrix scaling each axis independently.
func Scaling(s Vec3) Mat4 {
	m := Ident4()
	m[0] = s.X
	m[5] = s.Y
	m[10] = s.Z
	return m
}

// RotationEuler returns the rotation matrix for the given roll, pitch and yaw
// angles in radians, composed as Rz(yaw) * Ry(pitch) * Rx(roll).
func RotationEuler(roll, pitch, yaw float64) Mat4 {
	sr, cr := math.Sincos(roll)
	sp, cp := math.Sincos(pitch)
	sy, cy := math.Sincos(yaw)

	return Mat4{
		cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr, 0,
		sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr, 0,
		-sp, cp * sr, cp * cr, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies two matrices.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * o[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// MulPoint applies the affine transform to a point (w = 1).
func (m Mat4) MulPoint(p Vec3) Vec3 {
	return Vec3{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		Z: m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

// MulDir applies the transform to a direction (w = 0, no translation).
func (m Mat4) MulDir(d Vec3) Vec3 {
	return Vec3{
		X: m[0]*d.X + m[1]*d.Y + m[2]*d.Z,
		Y: m[4]*d.X + m[5]*d.Y + m[6]*d.Z,
		Z: m[8]*d.X + m[9]*d.Y + m[10]*d.Z,
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = m[row*4+col]
		}
	}
	return out
}

// Inverse returns the exact matrix inverse. Singular matrices (for example a
// model matrix built from a zero scale component) yield an error rather than
// a silently corrupt result.
func (m Mat4) Inverse() (Mat4, error) {
	elems := make([]float64, 16)
	copy(elems, m[:])

	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(4, 4, elems)); err != nil {
		return Mat4{}, fmt.Errorf("types: matrix is not invertible: %v", err)
	}

	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] = inv.At(row, col)
		}
	}
	return out, nil
}
