package sml

// Tree is a node of an SML parameter tree.
type Tree struct {
	ParameterName  OctetString  `json:"parameterName" yaml:"parameterName"`
	ParameterValue ProcParValue `json:"parameterValue,omitempty" yaml:"parameterValue,omitempty"`
	Children       []*Tree      `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewTree creates a tree node with the given name, value and children.
func NewTree(name OctetString, value ProcParValue, children ...*Tree) *Tree {
	return &Tree{ParameterName: name, ParameterValue: value, Children: children}
}

type treeFrame struct {
	node      *Tree
	remaining int
}

// ParseTree parses an optional parameter tree at the cursor.
// It returns nil without error if the tree is absent.
//
// The tree is parsed iteratively. Nesting deeper than the buffer's maximum depth
// (DefaultMaxDepth unless set with WithMaxDepth) fails with ErrDepthExceeded. A
// failure anywhere in the tree fails the whole tree.
func ParseTree(buf *Buffer) (*Tree, error) {
	if buf.SkipOptional() {
		return nil, nil
	}

	root, n, err := parseTreeNode(buf)
	if err != nil {
		return nil, err
	}

	stack := make([]treeFrame, 0, 8)
	if n > 0 {
		stack = append(stack, treeFrame{node: root, remaining: n})
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.remaining == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		top.remaining--

		if buf.SkipOptional() {
			continue
		}
		if len(stack)+1 > buf.maxDepth {
			return nil, buf.Failf(StructuralError, ErrDepthExceeded, "maximum depth is %d", buf.maxDepth)
		}

		child, n, err := parseTreeNode(buf)
		if err != nil {
			return nil, err
		}
		top.node.Children = append(top.node.Children, child)
		if n > 0 {
			stack = append(stack, treeFrame{node: child, remaining: n})
		}
	}

	return root, nil
}

// parseTreeNode parses the name and value of a node and returns the number of
// children that follow it.
func parseTreeNode(buf *Buffer) (*Tree, int, error) {
	if err := buf.ExpectList(3); err != nil {
		return nil, 0, err
	}

	var err error
	node := &Tree{}
	if node.ParameterName, err = ParseOctetString(buf); err != nil {
		return nil, 0, err
	}
	if node.ParameterValue, err = ParseProcParValue(buf); err != nil {
		return nil, 0, err
	}

	if buf.SkipOptional() {
		return node, 0, nil
	}
	n, err := buf.ReadListHeader()
	if err != nil {
		return nil, 0, err
	}
	if n > 0 {
		node.Children = make([]*Tree, 0, n)
	}

	return node, n, nil
}

// Encode appends t to buf, or the absent-field sentinel if t is nil.
// A node without children writes the sentinel in the child slot.
func (t *Tree) Encode(buf *Buffer) {
	stack := []*Tree{t}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node == nil {
			buf.WriteOptional()
			continue
		}

		buf.WriteTL(ListType, 3)
		node.ParameterName.Encode(buf)
		EncodeProcParValue(buf, node.ParameterValue)
		if len(node.Children) == 0 {
			buf.WriteOptional()
			continue
		}

		buf.WriteTL(ListType, len(node.Children))
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}
}

// Depth returns the number of levels of the tree rooted at t.
func (t *Tree) Depth() int {
	if t == nil {
		return 0
	}

	type frame struct {
		node  *Tree
		depth int
	}
	maxDepth := 0
	stack := []frame{{t, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		maxDepth = max(maxDepth, f.depth)
		for _, child := range f.node.Children {
			if child != nil {
				stack = append(stack, frame{child, f.depth + 1})
			}
		}
	}

	return maxDepth
}

// Find returns the first node in pre-order whose name equals name, or nil.
func (t *Tree) Find(name OctetString) *Tree {
	stack := []*Tree{t}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}
		if node.ParameterName.Equal(name) {
			return node
		}
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, node.Children[i])
		}
	}

	return nil
}

// TreePath addresses a node of a parameter tree as a list of parameter names.
type TreePath []OctetString

// ParseTreePath parses an optional tree path at the cursor.
// It returns nil without error if the path is absent. Absent elements inside the
// path are dropped.
func ParseTreePath(buf *Buffer) (TreePath, error) {
	if buf.SkipOptional() {
		return nil, nil
	}

	n, err := buf.ReadListHeader()
	if err != nil {
		return nil, err
	}

	path := make(TreePath, 0, n)
	for range n {
		s, err := ParseOctetString(buf)
		if err != nil {
			return nil, err
		}
		if s != nil {
			path = append(path, s)
		}
	}

	return path, nil
}

// Encode appends p to buf, or the absent-field sentinel if p is nil.
func (p TreePath) Encode(buf *Buffer) {
	EncodeSequence(buf, Sequence[OctetString](p), OctetStringCodec)
}
