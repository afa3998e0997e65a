package jsast

// Walk traverses the tree rooted at n in depth-first order. If fn returns
// false the children of the current node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	stack := []Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			continue
		}
		kids := cur.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			if kids[i] != nil {
				stack = append(stack, kids[i])
			}
		}
	}
}

// Collect returns every node of type T under root, in source order.
func Collect[T Node](root Node) []T {
	var out []T
	Walk(root, func(n Node) bool {
		if v, ok := n.(T); ok {
			out = append(out, v)
		}
		return true
	})
	return out
}

// Closest returns the nearest strict ancestor of n with the given kind.
func Closest(n Node, kind Kind) Node {
	if n == nil {
		return nil
	}
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if cur.Kind() == kind {
			return cur
		}
	}
	return nil
}

// ClosestFunc returns the nearest strict ancestor of n matching pred.
func ClosestFunc(n Node, pred func(Node) bool) Node {
	if n == nil {
		return nil
	}
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if pred(cur) {
			return cur
		}
	}
	return nil
}

// Root returns the Program that contains n.
func Root(n Node) *Program {
	for cur := n; cur != nil; cur = cur.Parent() {
		if p, ok := cur.(*Program); ok {
			return p
		}
	}
	return nil
}

func link(root Node) {
	Walk(root, func(n Node) bool {
		for _, c := range n.Children() {
			c.setParent(n)
		}
		return true
	})
}
