package scene

import (
	"sort"
	"strconv"
	"strings"

	"github.com/grovetools/projection/errors"
	"github.com/grovetools/projection/logging"
)

// Child is a descendant element of a layer, carrying its own depth.
type Child struct {
	Depth int
	Node  *Node
}

// Layer is one scene section together with its depth coordinate.
type Layer struct {
	ID       string
	Depth    int
	Node     *Node
	Children []Child
}

// Store is the depth-ordered layer list. Layers are kept sorted ascending
// by depth; ties preserve discovery order. The store is immutable after
// construction apart from Add, which re-sorts.
type Store struct {
	layers []Layer
	index  map[string]int
}

// Build scans the root's direct children for depth-annotated layers.
//
// Candidates missing an id or carrying no depth annotation are skipped with
// a logged warning so one malformed section cannot take down the whole
// scene. An annotation that matches the prefix but does not parse as an
// integer is a hard error in any position.
func Build(root *Node, prefix string) (*Store, error) {
	if root == nil {
		return nil, errors.ConfigInvalid("scene root is nil")
	}
	if prefix == "" {
		return nil, errors.ConfigInvalid("depth prefix cannot be empty")
	}

	log := logging.NewLogger("scene")

	var layers []Layer
	for _, candidate := range root.Children {
		if candidate.ID == "" {
			log.Warnf("Skipping layer candidate without id (tags: %v)", candidate.Tags)
			continue
		}
		depth, found, err := parseDepth(candidate, prefix)
		if err != nil {
			return nil, err
		}
		if !found {
			log.WithField("node", candidate.ID).
				Warnf("Skipping node '%s': no '%s' annotation", candidate.ID, prefix)
			continue
		}

		children, err := collectChildren(candidate, depth, prefix)
		if err != nil {
			return nil, err
		}

		layers = append(layers, Layer{
			ID:       candidate.ID,
			Depth:    depth,
			Node:     candidate,
			Children: children,
		})
	}

	return NewStore(layers)
}

// NewStore builds a store from an explicit layer list. Unlike Build, every
// layer must be fully specified; this is the strict path used for layers
// that come from configuration rather than discovery.
func NewStore(layers []Layer) (*Store, error) {
	if len(layers) == 0 {
		return nil, errors.SceneEmpty("scene")
	}

	seen := make(map[string]bool, len(layers))
	for _, l := range layers {
		if l.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "layer has no id")
		}
		if seen[l.ID] {
			return nil, errors.DuplicateLayer(l.ID)
		}
		seen[l.ID] = true
	}

	sorted := make([]Layer, len(layers))
	copy(sorted, layers)
	for i := range sorted {
		if sorted[i].Node == nil {
			// A layer given as bare id+depth still needs a renderable node
			sorted[i].Node = &Node{ID: sorted[i].ID}
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Depth < sorted[j].Depth
	})

	s := &Store{layers: sorted}
	s.reindex()
	return s, nil
}

// Add inserts a lazily discovered layer and restores depth order.
func (s *Store) Add(layer Layer) error {
	if layer.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "layer has no id")
	}
	if _, exists := s.index[layer.ID]; exists {
		return errors.DuplicateLayer(layer.ID)
	}
	if layer.Node == nil {
		layer.Node = &Node{ID: layer.ID}
	}

	s.layers = append(s.layers, layer)
	sort.SliceStable(s.layers, func(i, j int) bool {
		return s.layers[i].Depth < s.layers[j].Depth
	})
	s.reindex()
	return nil
}

// Layers returns the layers in ascending depth order.
func (s *Store) Layers() []Layer {
	return s.layers
}

// Len returns the number of layers.
func (s *Store) Len() int {
	return len(s.layers)
}

// At returns the layer at the given position in depth order.
func (s *Store) At(i int) Layer {
	return s.layers[i]
}

// Index returns the position of the layer with the given id.
func (s *Store) Index(id string) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// MinDepth returns the smallest depth in the store. This seeds the
// animator's initial current depth.
func (s *Store) MinDepth() int {
	return s.layers[0].Depth
}

// MaxDepth returns the largest depth in the store.
func (s *Store) MaxDepth() int {
	return s.layers[len(s.layers)-1].Depth
}

func (s *Store) reindex() {
	s.index = make(map[string]int, len(s.layers))
	for i, l := range s.layers {
		s.index[l.ID] = i
	}
}

// parseDepth extracts the depth annotation from a node's tags. The second
// return value reports whether any tag matched the prefix.
func parseDepth(n *Node, prefix string) (int, bool, error) {
	for _, tag := range n.Tags {
		rest, ok := strings.CutPrefix(tag, prefix)
		if !ok || rest == "" {
			continue
		}
		depth, err := strconv.Atoi(rest)
		if err != nil {
			return 0, false, errors.DepthParse(n.ID, tag, err)
		}
		return depth, true, nil
	}
	return 0, false, nil
}

// collectChildren walks the descendants of a layer node. Each descendant
// uses its own depth annotation when present, otherwise it inherits the
// depth of the nearest annotated ancestor.
func collectChildren(layer *Node, inherited int, prefix string) ([]Child, error) {
	var children []Child
	for _, c := range layer.Children {
		depth, found, err := parseDepth(c, prefix)
		if err != nil {
			return nil, err
		}
		if !found {
			depth = inherited
		}

		children = append(children, Child{Depth: depth, Node: c})

		nested, err := collectChildren(c, depth, prefix)
		if err != nil {
			return nil, err
		}
		children = append(children, nested...)
	}
	return children, nil
}
