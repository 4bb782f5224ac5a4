package punkui

// drawCommand is a single draw instruction emitted during scene traversal.
type drawCommand struct {
	node      *Node
	transform [6]float64 // image pixels to screen
	color     Color      // node color with world alpha applied
	z         float64
	treeOrder int // assigned during traversal for stable sort
}

// traverse walks the node tree depth-first, updating transforms and emitting
// draw commands for visible, renderable leaf nodes.
func (s *Scene) traverse(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool, treeOrder *int) {
	if !n.Visible {
		return
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(n)
		n.worldTransform = multiplyAffine(parentTransform, local)
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	if n.Renderable && n.worldAlpha > 0 {
		switch n.Type {
		case NodeTypeSprite:
			size := n.NativeSize()
			if size.X > 0 && size.Y > 0 {
				*treeOrder++
				s.commands = append(s.commands, drawCommand{
					node:      n,
					transform: drawMatrix(s.view, n.worldTransform, n.PivotX, n.PivotY),
					color:     n.Color.WithAlpha(n.Color.A * n.worldAlpha),
					z:         n.Z,
					treeOrder: *treeOrder,
				})
			}
		case NodeTypeText:
			if n.Label != nil && n.Label.Font != nil && n.Label.Text != "" {
				ax, ay := n.Label.anchorPixels()
				*treeOrder++
				s.commands = append(s.commands, drawCommand{
					node:      n,
					transform: drawMatrix(s.view, n.worldTransform, n.PivotX+ax, n.PivotY+ay),
					color:     n.Color.WithAlpha(n.Color.A * n.worldAlpha),
					z:         n.Z,
					treeOrder: *treeOrder,
				})
			}
			// NodeTypeContainer doesn't emit commands
		}
	}

	for _, child := range n.children {
		s.traverse(child, n.worldTransform, n.worldAlpha, recompute, treeOrder)
	}
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should sort before or at the same
// position as b. Using <= for treeOrder ensures stability.
func commandLessOrEqual(a, b drawCommand) bool {
	if a.z != b.z {
		return a.z < b.z
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts s.commands in-place using s.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (s *Scene) mergeSort() {
	n := len(s.commands)
	if n <= 1 {
		return
	}
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]drawCommand, n)
	}
	s.sortBuf = s.sortBuf[:n]

	a := s.commands
	b := s.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(s.commands, s.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []drawCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
