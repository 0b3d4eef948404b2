package scene

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Node is a named element of the scene graph. Entities own one node each;
// lights and debug geometry hang below it.
type Node struct {
	name     string
	parent   *Node
	children []*Node

	LocalPosition mgl32.Vec3
	LocalRotation mgl32.Quat
	LocalScale    mgl32.Vec3
}

func NewNode(name string) *Node {
	n := &Node{}
	n.init(name)
	return n
}

func (n *Node) init(name string) {
	n.name = name
	n.LocalRotation = mgl32.QuatIdent()
	n.LocalScale = mgl32.Vec3{1, 1, 1}
}

func (n *Node) Name() string        { return n.name }
func (n *Node) SetName(name string) { n.name = name }
func (n *Node) Parent() *Node       { return n.parent }

func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// AddChild reparents child under n.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) RemoveChild(child *Node) {
	idx := slices.Index(n.children, child)
	if idx < 0 {
		return
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	child.parent = nil
}

func (n *Node) WorldRotation() mgl32.Quat {
	if n.parent == nil {
		return n.LocalRotation
	}
	return n.parent.WorldRotation().Mul(n.LocalRotation).Normalize()
}

func (n *Node) WorldScale() mgl32.Vec3 {
	if n.parent == nil {
		return n.LocalScale
	}
	ps := n.parent.WorldScale()
	return mgl32.Vec3{ps.X() * n.LocalScale.X(), ps.Y() * n.LocalScale.Y(), ps.Z() * n.LocalScale.Z()}
}

// WorldPosition = ParentPos + ParentRot * (ParentScale * LocalPos)
func (n *Node) WorldPosition() mgl32.Vec3 {
	if n.parent == nil {
		return n.LocalPosition
	}
	ps := n.parent.WorldScale()
	scaled := mgl32.Vec3{
		n.LocalPosition.X() * ps.X(),
		n.LocalPosition.Y() * ps.Y(),
		n.LocalPosition.Z() * ps.Z(),
	}
	return n.parent.WorldPosition().Add(n.parent.WorldRotation().Rotate(scaled))
}
