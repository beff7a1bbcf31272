package behaviour

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray represents a ray in 3D space
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// RaycastHit describes the closest collider hit by a raycast
type RaycastHit struct {
	GameObject *GameObject
	Point      mgl32.Vec3
	Distance   float32
}

// RayIntersectSphere tests if a ray intersects a sphere
// Returns: (intersected, distance, intersection point)
func RayIntersectSphere(ray Ray, sphereCenter mgl32.Vec3, radius float32) (bool, float32, mgl32.Vec3) {
	oc := ray.Origin.Sub(sphereCenter)

	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*a*c
	if a == 0 || discriminant < 0 {
		return false, 0, mgl32.Vec3{}
	}

	sqrtDisc := float32(math.Sqrt(float64(discriminant)))
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	// Closest non-negative root. A ray starting inside the sphere hits it at t2.
	var t float32
	switch {
	case t1 >= 0:
		t = t1
	case t2 >= 0:
		t = t2
	default:
		return false, 0, mgl32.Vec3{}
	}

	return true, t, ray.Origin.Add(ray.Direction.Mul(t))
}

// Raycast returns the nearest active collider along the ray within maxDistance.
// Objects whose UID is listed in ignore are transparent to the ray, as are
// colliders that contain the origin.
func (cm *ComponentManager) Raycast(origin, direction mgl32.Vec3, maxDistance float32, ignore ...uint64) (RaycastHit, bool) {
	if direction.Len() == 0 || maxDistance <= 0 {
		return RaycastHit{}, false
	}
	ray := Ray{Origin: origin, Direction: direction.Normalize()}

	var best RaycastHit
	found := false
	for _, obj := range cm.gameObjects {
		if !obj.Active || containsUID(ignore, obj.UID) {
			continue
		}
		collider, ok := FindComponent[*SphereColliderComponent](obj)
		if !ok || !collider.GetEnabled() {
			continue
		}
		center := obj.Transform.WorldPosition()
		radius := collider.WorldRadius()
		if center.Sub(origin).Len() < radius {
			continue
		}
		hit, dist, point := RayIntersectSphere(ray, center, radius)
		if !hit || dist > maxDistance {
			continue
		}
		if !found || dist < best.Distance {
			best = RaycastHit{GameObject: obj, Point: point, Distance: dist}
			found = true
		}
	}
	return best, found
}

func containsUID(uids []uint64, uid uint64) bool {
	for _, u := range uids {
		if u == uid {
			return true
		}
	}
	return false
}
