package ripple

import "math"

// Draw issues one draw command batch per live particle against the canvas.
// Every kind fades out with alpha = life/initialLife, clamped to [0, 1].
func (s *System) Draw(c Canvas) {
	for i := range s.particles {
		p := &s.particles[i]
		alpha := clamp01(p.life / p.initialLife)
		col := Color{p.r, p.g, p.b, 1}

		switch p.kind {
		case KindNormal, KindFire, KindHoliday, KindSnow:
			c.FillCircle(p.x, p.y, p.size, col, alpha)

		case KindSparkle:
			s.starBuf = starPoints(s.starBuf[:0], p.x, p.y, p.size, p.size*0.45, 5, p.rotation)
			c.FillPolygon(s.starBuf, col, alpha)

		case KindBubble:
			c.StrokeCircle(p.x, p.y, p.size, 1.5, col, alpha*0.8)
			// Highlight dot offset toward the upper-left rim.
			c.FillCircle(p.x-p.size*0.35, p.y-p.size*0.35, p.size*0.2, ColorWhite, alpha)

		case KindSnowflake:
			drawSnowflake(c, p, col, alpha)

		case KindGiftBox:
			c.FillRect(p.x, p.y, p.size, p.size, p.rotation, col, alpha)
			ribbon := Color{p.ribbonR, p.ribbonG, p.ribbonB, 1}
			c.FillRect(p.x, p.y, p.size, p.size*0.22, p.rotation, ribbon, alpha)
			c.FillRect(p.x, p.y, p.size*0.22, p.size, p.rotation, ribbon, alpha)
		}
	}
}

// starPoints appends the 2n vertices of an n-pointed star centered at (cx, cy)
// to buf and returns the result. Outer and inner radii alternate; the first
// outer point is at angle rot measured from straight up.
func starPoints(buf []Vec2, cx, cy, outer, inner float64, n int, rot float64) []Vec2 {
	step := math.Pi / float64(n)
	for i := 0; i < 2*n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := rot - math.Pi/2 + float64(i)*step
		buf = append(buf, Vec2{cx + math.Cos(a)*r, cy + math.Sin(a)*r})
	}
	return buf
}

// drawSnowflake renders a six-fold branched line pattern: six main spokes,
// each with a pair of short twigs at 60% of the spoke length.
func drawSnowflake(c Canvas, p *particle, col Color, alpha float64) {
	const branches = 6
	for i := 0; i < branches; i++ {
		a := p.rotation + float64(i)*math.Pi/float64(branches)*2
		tipX := p.x + math.Cos(a)*p.size
		tipY := p.y + math.Sin(a)*p.size
		c.StrokeLine(p.x, p.y, tipX, tipY, 1, col, alpha)

		// Twigs branch off at 60% of the spoke, ±30° off the spoke direction.
		baseX := p.x + math.Cos(a)*p.size*0.6
		baseY := p.y + math.Sin(a)*p.size*0.6
		twig := p.size * 0.35
		for _, da := range [2]float64{math.Pi / 6, -math.Pi / 6} {
			c.StrokeLine(baseX, baseY,
				baseX+math.Cos(a+da)*twig,
				baseY+math.Sin(a+da)*twig,
				1, col, alpha)
		}
	}
}
