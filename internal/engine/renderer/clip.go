package renderer

import "github.com/Faultbox/softrender/pkg/math"

// screenEdge is one screen border expressed as a plane in screen space.
type screenEdge struct {
	point  math.Vec3
	normal math.Vec3
}

// screenEdges returns the top, bottom, left and right borders, each with
// its normal pointing into the visible area.
func (r *Renderer) screenEdges() [4]screenEdge {
	w := float64(r.config.ScreenWidth) - 1
	h := float64(r.config.ScreenHeight) - 1
	return [4]screenEdge{
		{math.Vec3{}, math.Vec3{Y: 1}},
		{math.Vec3{Y: h}, math.Vec3{Y: -1}},
		{math.Vec3{}, math.Vec3{X: 1}},
		{math.Vec3{X: w}, math.Vec3{X: -1}},
	}
}

// clipToScreen clips tri against each screen edge in turn. Triangles
// produced by one edge are fed to the next, so a single input can fan out
// into several outputs.
func (r *Renderer) clipToScreen(tri math.Triangle) []math.Triangle {
	queue := []math.Triangle{tri}
	for _, edge := range r.screenEdges() {
		pending := len(queue)
		for pending > 0 {
			test := queue[0]
			queue = queue[1:]
			pending--
			queue = append(queue, math.ClipAgainstPlane(edge.point, edge.normal, test)...)
		}
	}
	return queue
}
