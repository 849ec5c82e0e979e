// Package sim runs a simple projectile simulation on top of tuple.
//
// Each step moves the projectile by its velocity and then bends the
// velocity by gravity and wind:
//
//	position' = position + velocity
//	velocity' = velocity + gravity + wind
//
// [Tick] is pure. [Run] applies it repeatedly and returns the trajectory.
package sim
