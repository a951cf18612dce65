package models

type NodeKind string

const (
	KindFile      NodeKind = "file"
	KindDirectory NodeKind = "directory"
)

// TreeNode is the display tree of a project. Children are lexically ordered
// and never nil so the JSON form always carries an array.
type TreeNode struct {
	Name     string      `json:"name"`
	Kind     NodeKind    `json:"type"`
	Children []*TreeNode `json:"children"`
}

func NewTreeNode(name string, kind NodeKind) *TreeNode {
	return &TreeNode{
		Name:     name,
		Kind:     kind,
		Children: []*TreeNode{},
	}
}
