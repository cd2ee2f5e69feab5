package db

import (
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// attributes copies the declared attribute names out of a property map.
// Names absent from props are left out rather than reported as null.
func attributes(names []string, props map[string]any) map[string]any {
	out := make(map[string]any, len(names))
	for _, name := range names {
		if v, ok := props[name]; ok {
			out[name] = v
		}
	}
	return out
}

func int64Value(rec *neo4j.Record, key string) (int64, error) {
	v, ok := rec.Get(key)
	if !ok {
		return 0, fmt.Errorf("missing column %q", key)
	}
	n, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("column %q is %T, not an integer", key, v)
	}
	return n, nil
}

func nodeValue(rec *neo4j.Record, key string) (neo4j.Node, error) {
	v, ok := rec.Get(key)
	if !ok {
		return neo4j.Node{}, fmt.Errorf("missing column %q", key)
	}
	n, ok := v.(neo4j.Node)
	if !ok {
		return neo4j.Node{}, fmt.Errorf("column %q is %T, not a node", key, v)
	}
	return n, nil
}

// entriesFromRecords maps rows of (id, n) into entries restricted to names.
func entriesFromRecords(rows []*neo4j.Record, names []string) ([]Entry, error) {
	out := make([]Entry, 0, len(rows))
	for _, rec := range rows {
		id, err := int64Value(rec, "id")
		if err != nil {
			return nil, err
		}
		n, err := nodeValue(rec, "n")
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{ID: id, Attributes: attributes(names, n.Props)})
	}
	return out, nil
}

// nodesFromRecords maps rows of (id, n) into raw node views.
func nodesFromRecords(rows []*neo4j.Record) ([]Node, error) {
	out := make([]Node, 0, len(rows))
	for _, rec := range rows {
		id, err := int64Value(rec, "id")
		if err != nil {
			return nil, err
		}
		n, err := nodeValue(rec, "n")
		if err != nil {
			return nil, err
		}
		props := n.Props
		if props == nil {
			props = map[string]any{}
		}
		out = append(out, Node{ID: id, Labels: n.Labels, Properties: props})
	}
	return out, nil
}
