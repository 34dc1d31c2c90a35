package main

type vertex struct {
	pos  vec4
	rgba vec4
	uv   vec2
}

func interpolateVec4(v1, v2, v3 vec4, f vec3) (result vec4) {
	result = result.Add(v1.Mul(f.X()))
	result = result.Add(v2.Mul(f.Y()))
	result = result.Add(v3.Mul(f.Z()))
	return
}

func interpolateVec2(v1, v2, v3 vec2, f vec3) (result vec2) {
	result = result.Add(v1.Mul(f.X()))
	result = result.Add(v2.Mul(f.Y()))
	result = result.Add(v3.Mul(f.Z()))
	return
}

// interpolateVertex blends attributes only; the caller sets pos to the
// clipped point it already has.
func interpolateVertex(v1, v2, v3 vertex, f vec3) (result vertex) {
	result.rgba = interpolateVec4(v1.rgba, v2.rgba, v3.rgba, f)
	result.uv = interpolateVec2(v1.uv, v2.uv, v3.uv, f)
	return
}

type plane struct {
	origin vec4
	normal vec4
}

// test determines if `v` is in front of the plane.
func (p plane) test(v vec4) bool {
	return v.Sub(p.origin).Dot(p.normal) > 0
}

// intersection returns the point where a->b crosses the plane.
func (p plane) intersection(a, b vec4) vec4 {
	u := b.Sub(a)
	w := a.Sub(p.origin)
	d := p.normal.Dot(u)
	n := -p.normal.Dot(w)
	return a.Add(u.Mul(n / d))
}

var clipPlanes = [...]plane{
	{origin: vec4{1, 0, 0, 1}, normal: vec4{-1, 0, 0, 1}}, // right
	{origin: vec4{-1, 0, 0, 1}, normal: vec4{1, 0, 0, 1}}, // left
	{origin: vec4{0, 1, 0, 1}, normal: vec4{0, -1, 0, 1}}, // bottom
	{origin: vec4{0, -1, 0, 1}, normal: vec4{0, 1, 0, 1}}, // top
	{origin: vec4{0, 0, 1, 1}, normal: vec4{0, 0, -1, 1}}, // front
	{origin: vec4{0, 0, -1, 1}, normal: vec4{0, 0, 1, 1}}, // back
}

func outOfBounds(a vec4) bool {
	x, y, z, w := a.X(), a.Y(), a.Z(), a.W()
	return x < -w || x > w || y < -w || y > w || z < -w || z > w
}

// clipper owns the scratch polygons; the slice returned by clip is only
// valid until the next call.
type clipper struct {
	in  [9]vec4 // a triangle clipped by 6 planes never exceeds 9 points
	out [9]vec4
}

// https://en.wikipedia.org/wiki/Sutherland-Hodgman_algorithm
func (c *clipper) clip(p1, p2, p3 vec4) []vec4 {
	output := append(c.out[:0], p1, p2, p3)
	for _, plane := range clipPlanes {
		copy(c.in[:], output)
		input := c.in[:len(output)]
		output = c.out[:0]
		if len(input) == 0 {
			return nil
		}
		prev := input[len(input)-1]
		for _, point := range input {
			if plane.test(point) {
				if !plane.test(prev) {
					output = append(output, plane.intersection(prev, point))
				}
				output = append(output, point)
			} else if plane.test(prev) {
				output = append(output, plane.intersection(prev, point))
			}
			prev = point
		}
	}
	return output
}

// https://en.wikipedia.org/wiki/Barycentric_coordinate_system
func barycentric(p1, p2, p3, p vec3) vec3 {
	v0 := p2.Sub(p1)
	v1 := p3.Sub(p1)
	v2 := p.Sub(p1)
	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)
	d := d00*d11 - d01*d01
	if d == 0 {
		return vec3{1, 0, 0}
	}
	v := (d11*d20 - d01*d21) / d
	w := (d00*d21 - d01*d20) / d
	u := 1 - v - w
	return vec3{u, v, w}
}

// frontFacing reports counter-clockwise winding after the perspective divide.
func frontFacing(a, b, c vec4) bool {
	ax, ay := a.X()/a.W(), a.Y()/a.W()
	bx, by := b.X()/b.W(), b.Y()/b.W()
	cx, cy := c.X()/c.W(), c.Y()/c.W()
	return (bx-ax)*(cy-ay)-(cx-ax)*(by-ay) > 0
}
