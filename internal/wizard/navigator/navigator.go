// Package navigator computes the dynamic subsequence of visible wizard steps
// and translates between absolute catalog indices and visible ranks. The
// catalog is tiny and static, so every operation recomputes from the current
// configuration; nothing here is cached.
package navigator

import (
	"github.com/zjrosen/stackforge/internal/log"
	"github.com/zjrosen/stackforge/internal/wizard/catalog"
	"github.com/zjrosen/stackforge/internal/wizard/scaffold"
)

// None is the sentinel returned when no step satisfies a query.
const None = -1

// Navigator answers visibility and ordering questions over a step catalog.
type Navigator struct {
	cat *catalog.Catalog
}

// New creates a navigator over the given catalog.
func New(cat *catalog.Catalog) *Navigator {
	return &Navigator{cat: cat}
}

// VisibleSteps returns the ordered subsequence of steps whose visibility
// predicate is absent or true under cfg.
func (n *Navigator) VisibleSteps(cfg scaffold.Config) []catalog.Step {
	visible := make([]catalog.Step, 0, n.cat.Len())
	for _, step := range n.cat.Steps() {
		if stepVisible(step, cfg) {
			visible = append(visible, step)
		}
	}
	return visible
}

// NextVisibleIndex scans forward from absolute index i and returns the first
// visible index after it, or None.
func (n *Navigator) NextVisibleIndex(i int, cfg scaffold.Config) int {
	for j := i + 1; j < n.cat.Len(); j++ {
		step, _ := n.cat.At(j)
		if stepVisible(step, cfg) {
			return j
		}
	}
	return None
}

// PrevVisibleIndex scans backward from absolute index i and returns the first
// visible index before it, or None.
func (n *Navigator) PrevVisibleIndex(i int, cfg scaffold.Config) int {
	start := i - 1
	if start >= n.cat.Len() {
		start = n.cat.Len() - 1
	}
	for j := start; j >= 0; j-- {
		step, _ := n.cat.At(j)
		if stepVisible(step, cfg) {
			return j
		}
	}
	return None
}

// VisibleIndex returns the 0-based rank of absolute index i among visible
// steps, or None when i itself is hidden or out of range.
func (n *Navigator) VisibleIndex(i int, cfg scaffold.Config) int {
	step, ok := n.cat.At(i)
	if !ok {
		log.Warn(log.CatNav, "visible index requested for out-of-range step", "index", i)
		return None
	}
	if !stepVisible(step, cfg) {
		return None
	}
	rank := 0
	for j := 0; j < i; j++ {
		prev, _ := n.cat.At(j)
		if stepVisible(prev, cfg) {
			rank++
		}
	}
	return rank
}

// AbsoluteIndex returns the absolute index of the k-th visible step, or None
// when k is out of range.
func (n *Navigator) AbsoluteIndex(k int, cfg scaffold.Config) int {
	if k < 0 {
		return None
	}
	rank := 0
	for j := 0; j < n.cat.Len(); j++ {
		step, _ := n.cat.At(j)
		if !stepVisible(step, cfg) {
			continue
		}
		if rank == k {
			return j
		}
		rank++
	}
	return None
}

// FirstVisibleIndex returns the absolute index of the first visible step.
func (n *Navigator) FirstVisibleIndex(cfg scaffold.Config) int {
	return n.NextVisibleIndex(-1, cfg)
}

func stepVisible(step catalog.Step, cfg scaffold.Config) bool {
	return step.VisibleWhen == nil || step.VisibleWhen(cfg)
}
