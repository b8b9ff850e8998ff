package refs

// Cycle-detection colors for the depth-first traversal
const (
	colorUnvisited = iota
	colorInProgress
	colorDone
)

type frame struct {
	id   string
	next int
}

// Cycles detects cycles with an iterative three-color depth-first
// traversal. At most one cycle is reported per traversed component: the
// first one found. The explicit stack keeps adversarial plans from
// exhausting call depth.
func (g *Graph) Cycles() [][]string {
	color := make(map[string]int, len(g.order))
	var cycles [][]string

	for _, root := range g.order {
		if color[root] != colorUnvisited {
			continue
		}

		stack := []frame{{id: root}}
		color[root] = colorInProgress
		found := false

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			edges := g.out[f.id]

			if f.next < len(edges) {
				to := edges[f.next].To
				f.next++

				// Dangling targets are W002's concern, not part of the graph.
				if !g.exists[to] {
					continue
				}

				switch color[to] {
				case colorUnvisited:
					color[to] = colorInProgress
					stack = append(stack, frame{id: to})
				case colorInProgress:
					if !found {
						found = true
						cycles = append(cycles, extractCycle(stack, to))
					}
				}
				continue
			}

			color[f.id] = colorDone
			stack = stack[:len(stack)-1]
		}
	}

	return cycles
}

// extractCycle returns the ordered step ids from the first occurrence of
// `to` on the traversal stack through the top
func extractCycle(stack []frame, to string) []string {
	start := 0
	for i, f := range stack {
		if f.id == to {
			start = i
			break
		}
	}

	cycle := make([]string, 0, len(stack)-start)
	for _, f := range stack[start:] {
		cycle = append(cycle, f.id)
	}
	return cycle
}
