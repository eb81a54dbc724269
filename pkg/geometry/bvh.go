package geometry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/df07/go-raytracer/pkg/core"
)

var (
	// ErrEmptyBVH is returned when a BVH is built from no objects
	ErrEmptyBVH = errors.New("bvh: no objects to build from")
	// ErrUnboundedPrimitive is returned when an object without a bounding box,
	// such as an infinite plane, is handed to the BVH builder
	ErrUnboundedPrimitive = errors.New("bvh: object has no bounding box")
)

// SplitPolicy selects the axis each BVH node is partitioned along
type SplitPolicy int

const (
	// SplitRandomAxis picks one of the three axes at random per node
	SplitRandomAxis SplitPolicy = iota
	// SplitLongestAxis picks the axis along which the node's box is widest
	SplitLongestAxis
)

func (p SplitPolicy) String() string {
	switch p {
	case SplitRandomAxis:
		return "random"
	case SplitLongestAxis:
		return "longest"
	default:
		return fmt.Sprintf("SplitPolicy(%d)", int(p))
	}
}

// BVHNode is a node in the Bounding Volume Hierarchy. Children are either
// further nodes or the primitives themselves; a node over a single primitive
// holds it on both sides.
type BVHNode struct {
	Left  core.Hittable
	Right core.Hittable
	Box   core.AABB // Tight union of both children's boxes

	single bool // Left and Right hold the same primitive
}

// BVHOption configures BVH construction
type BVHOption func(*bvhBuilder)

// WithRandom sets the generator used for random axis selection
func WithRandom(random *rand.Rand) BVHOption {
	return func(b *bvhBuilder) { b.random = random }
}

// WithSplitPolicy sets how the split axis is chosen
func WithSplitPolicy(policy SplitPolicy) BVHOption {
	return func(b *bvhBuilder) { b.policy = policy }
}

type bvhBuilder struct {
	random *rand.Rand
	policy SplitPolicy
}

// bvhEntry pairs an object with its precomputed box
type bvhEntry struct {
	object core.Hittable
	box    core.AABB
}

// NewBVH builds a hierarchy over objects, bounding their motion over [time0, time1].
// Every object must be boundable; unbounded objects belong beside the BVH in a
// HittableList instead.
func NewBVH(objects []core.Hittable, time0, time1 float32, opts ...BVHOption) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	builder := &bvhBuilder{policy: SplitRandomAxis}
	for _, opt := range opts {
		opt(builder)
	}
	if builder.random == nil {
		builder.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Work on a copy so the caller's slice order is left alone
	entries := make([]bvhEntry, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("%w: object %d (%T)", ErrUnboundedPrimitive, i, object)
		}
		entries[i] = bvhEntry{object: object, box: box}
	}

	root := builder.build(entries)

	stats := root.Stats()
	core.Logger().Debug("built BVH",
		"objects", len(objects),
		"policy", builder.policy.String(),
		"nodes", stats.Nodes,
		"depth", stats.Depth)

	return root, nil
}

func (b *bvhBuilder) build(entries []bvhEntry) *BVHNode {
	axis := b.chooseAxis(entries)
	less := func(e0, e1 bvhEntry) bool {
		return e0.box.Min.Axis(axis) < e1.box.Min.Axis(axis)
	}

	var left, right bvhEntry
	switch len(entries) {
	case 1:
		left, right = entries[0], entries[0]
	case 2:
		if less(entries[0], entries[1]) {
			left, right = entries[0], entries[1]
		} else {
			left, right = entries[1], entries[0]
		}
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return less(entries[i], entries[j])
		})
		mid := len(entries) / 2
		leftNode := b.build(entries[:mid])
		rightNode := b.build(entries[mid:])
		left = bvhEntry{object: leftNode, box: leftNode.Box}
		right = bvhEntry{object: rightNode, box: rightNode.Box}
	}

	return &BVHNode{
		Left:   left.object,
		Right:  right.object,
		Box:    core.SurroundingBox(left.box, right.box),
		single: len(entries) == 1,
	}
}

func (b *bvhBuilder) chooseAxis(entries []bvhEntry) int {
	if b.policy == SplitLongestAxis {
		bounds := core.EmptyAABB()
		for _, e := range entries {
			bounds = bounds.Union(e.box)
		}
		return bounds.LongestAxis()
	}
	return b.random.Intn(3)
}

// Hit rejects rays missing the node's box, then tests both children and keeps
// the nearer hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float32) (*core.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	closestHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	if n.single {
		return closestHit, hitLeft
	}

	closestSoFar := tMax
	if hitLeft {
		closestSoFar = closestHit.T
	}
	if hit, hitRight := n.Right.Hit(ray, tMin, closestSoFar); hitRight {
		return hit, true
	}
	return closestHit, hitLeft
}

// BoundingBox returns the precomputed box of the node
func (n *BVHNode) BoundingBox(time0, time1 float32) (core.AABB, bool) {
	return n.Box, true
}

// BVHStats describes the shape of a hierarchy
type BVHStats struct {
	Nodes  int // Interior nodes
	Leaves int // Primitive references, counting a duplicated single child once
	Depth  int // Longest root-to-leaf path in nodes
}

// Stats walks the hierarchy and collects its shape
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(1, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	stats.Depth = max(stats.Depth, depth)

	children := []core.Hittable{n.Left}
	if !n.single {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
		}
	}
}
