// Package yamlarchive reads histogram archives written as YAML or JSON.
//
// An archive is a folder tree:
//
//	objects:
//	  effVsPt: {class: TEfficiency, x: {bins: 10, min: 0, max: 100}, passed: [...], total: [...]}
//	  "h;2": {class: TH1F, ...}   # cycle 2 of h
//	folders:
//	  DQM:
//	    objects: {...}
//	    folders: {...}
//
// Mapping order is kept, so listings follow the document.
package yamlarchive

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/aalvaropc/rootplot/internal/domain"
	"github.com/aalvaropc/rootplot/internal/infra/objcodec"
	"github.com/aalvaropc/rootplot/internal/ports"
	"gopkg.in/yaml.v3"
)

type entry struct {
	key  domain.KeyInfo
	node *yaml.Node
}

type folder struct {
	name    string
	objects []entry
	folders []*folder
}

// Archive is a parsed archive file.
type Archive struct {
	path string
	root *folder
}

var _ ports.Archive = (*Archive)(nil)

// Open parses the archive at path.
func Open(path string) (*Archive, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlarchive.open",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return Parse(path, b)
}

// Parse reads archive content; path is used in errors only.
func Parse(path string, b []byte) (*Archive, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, invalid(path, err)
	}
	root := &folder{}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		var err error
		root, err = parseFolder("", doc.Content[0])
		if err != nil {
			return nil, invalid(path, err)
		}
	}
	return &Archive{path: path, root: root}, nil
}

func parseFolder(name string, n *yaml.Node) (*folder, error) {
	f := &folder{name: name}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return f, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("folder %q: expected a mapping", name)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		switch key {
		case "objects":
			if val.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("folder %q: objects must be a mapping", name)
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				objName, cycle := splitCycle(val.Content[j].Value)
				class := classOf(val.Content[j+1])
				f.objects = append(f.objects, entry{
					key:  domain.KeyInfo{Name: objName, Class: class, Cycle: cycle},
					node: val.Content[j+1],
				})
			}
		case "folders":
			if val.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("folder %q: folders must be a mapping", name)
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				sub, err := parseFolder(val.Content[j].Value, val.Content[j+1])
				if err != nil {
					return nil, err
				}
				f.folders = append(f.folders, sub)
			}
		}
	}
	return f, nil
}

// splitCycle turns "h;2" into ("h", 2). Names without a cycle are cycle 1.
func splitCycle(s string) (string, int) {
	if i := strings.LastIndexByte(s, ';'); i > 0 {
		if c, err := strconv.Atoi(s[i+1:]); err == nil {
			return s[:i], c
		}
	}
	return s, 1
}

func classOf(n *yaml.Node) string {
	if n.Kind != yaml.MappingNode {
		return ""
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == "class" {
			return n.Content[i+1].Value
		}
	}
	return ""
}

// Container walks a slash-separated folder path; "" is the root.
func (a *Archive) Container(path string) (ports.Container, error) {
	cur := a.root
	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		if part == "" {
			continue
		}
		var next *folder
		for _, sub := range cur.folders {
			if sub.name == part {
				next = sub
				break
			}
		}
		if next == nil {
			return nil, &domain.OpError{
				Op:   "yamlarchive.container",
				Kind: domain.KindNotFound,
				Path: a.path + ":" + path,
				Err:  fmt.Errorf("folder %q: %w", part, domain.ErrNotFound),
			}
		}
		cur = next
	}
	return &container{archive: a.path, f: cur}, nil
}

func (a *Archive) Close() error { return nil }

type container struct {
	archive string
	f       *folder
}

// Keys lists every object cycle in document order, then sub-folders.
func (c *container) Keys() []domain.KeyInfo {
	keys := make([]domain.KeyInfo, 0, len(c.f.objects)+len(c.f.folders))
	for _, e := range c.f.objects {
		keys = append(keys, e.key)
	}
	for _, sub := range c.f.folders {
		keys = append(keys, domain.KeyInfo{Name: sub.name, Class: domain.ClassDirectory, Cycle: 1})
	}
	return keys
}

func (c *container) Object(name string, cycle int) (domain.Object, error) {
	var best *entry
	for i := range c.f.objects {
		e := &c.f.objects[i]
		if e.key.Name != name {
			continue
		}
		if cycle > 0 {
			if e.key.Cycle == cycle {
				best = e
				break
			}
			continue
		}
		if best == nil || e.key.Cycle > best.key.Cycle {
			best = e
		}
	}
	if best == nil {
		return domain.Object{}, &domain.OpError{
			Op:   "yamlarchive.object",
			Kind: domain.KindNotFound,
			Path: c.archive,
			Err:  fmt.Errorf("object %q cycle %d: %w", name, cycle, domain.ErrNotFound),
		}
	}

	var p objcodec.Payload
	if err := best.node.Decode(&p); err != nil {
		return domain.Object{}, invalid(c.archive, fmt.Errorf("object %q: %w", name, err))
	}
	return objcodec.Decode(name, p)
}

func invalid(path string, err error) error {
	return &domain.OpError{
		Op:   "yamlarchive.parse",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}
