package network

const (
	canvasCenterX = 500.0
	canvasCenterY = 200.0

	levelHeight    = 200.0
	maxBandWidth   = 800.0
	maxNodeSpacing = 300.0
)

// applyHierarchicalLayout repositions nodes into horizontal bands by
// level: y = level * levelHeight, nodes spaced evenly across a band of
// at most maxBandWidth centered on canvasCenterX. The level-1 node is
// always pinned back to the canvas center, whatever its band grouping
// would give.
func applyHierarchicalLayout(nodes []Node) {
	byLevel := make(map[int][]*Node)
	for i := range nodes {
		level := nodes[i].Level()
		byLevel[level] = append(byLevel[level], &nodes[i])
	}

	for level, group := range byLevel {
		y := float64(level) * levelHeight
		spacing := maxBandWidth / float64(len(group))
		if spacing > maxNodeSpacing {
			spacing = maxNodeSpacing
		}
		startX := canvasCenterX - spacing*float64(len(group)-1)/2
		for i, n := range group {
			n.Position = Position{X: startX + spacing*float64(i), Y: y}
		}
	}

	for i := range nodes {
		if nodes[i].Level() == 1 {
			nodes[i].Position = Position{X: canvasCenterX, Y: canvasCenterY}
		}
	}
}
