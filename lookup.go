package neograph

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/gocypher"
	"go.uber.org/zap"
)

// ErrNotFound is returned by FindNode when no persisted node matches the
// given label and name.
var ErrNotFound = errors.New("record not found")

// PersistedNode is the database-side view of a node: the internal element id
// assigned by Neo4j, every label attached to it, and its full property map
// (including name and created).
type PersistedNode struct {
	ElementID  string
	Labels     []string
	Properties map[string]interface{}
}

// LoadNodes reads every node currently persisted in the store and returns
// them as a sequence. An empty store yields an empty, non-nil slice and no
// error; only transport or session failures produce an error.
//
// This is the read half of synchronization only: the result is returned to
// the caller as-is and never merged back into a local graph.
func (e *Engine) LoadNodes(ctx context.Context) ([]PersistedNode, error) {
	query := "MATCH (n)\nRETURN n"

	session, err := e.executor.Session(ctx, neo4j.AccessModeRead)
	if err != nil {
		return nil, fmt.Errorf("could not open session: %w", err)
	}
	defer func() {
		if cerr := session.Close(ctx); cerr != nil {
			e.log.Warn("could not close session", zap.Error(cerr))
		}
	}()

	records, err := session.RunRead(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	nodes := make([]PersistedNode, 0, len(records))
	for _, record := range records {
		value, ok := record.Get("n")
		if !ok {
			continue
		}
		node, ok := value.(neo4j.Node)
		if !ok {
			continue
		}
		nodes = append(nodes, PersistedNode{
			ElementID:  node.ElementId,
			Labels:     node.Labels,
			Properties: node.Props,
		})
	}
	return nodes, nil
}

// FindNode retrieves a single persisted node by its (label, name) key.
//
// Returns ErrNotFound when no node matches, and an error when more than one
// does: the compound key is expected to be unique across syncs, so multiple
// matches indicate a data integrity problem.
func (e *Engine) FindNode(ctx context.Context, label, name string) (*PersistedNode, error) {
	sanitized := Sanitize(label, name)

	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("n", sanitized[0]).WithProperties(map[string]interface{}{"name": sanitized[1]})).
		Return("n").
		Build()
	if err != nil {
		return nil, fmt.Errorf("could not build query: %w", err)
	}

	session, err := e.executor.Session(ctx, neo4j.AccessModeRead)
	if err != nil {
		return nil, fmt.Errorf("could not open session: %w", err)
	}
	defer func() {
		if cerr := session.Close(ctx); cerr != nil {
			e.log.Warn("could not close session", zap.Error(cerr))
		}
	}()

	records, err := session.RunRead(ctx, query, params)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrNotFound
	}
	if len(records) > 1 {
		return nil, fmt.Errorf("expected 1 record but found %d", len(records))
	}

	value, ok := records[0].Get("n")
	if !ok {
		return nil, fmt.Errorf("could not find return value 'n' in query result")
	}
	node, ok := value.(neo4j.Node)
	if !ok {
		return nil, fmt.Errorf("return value 'n' is not a node")
	}

	return &PersistedNode{
		ElementID:  node.ElementId,
		Labels:     node.Labels,
		Properties: node.Props,
	}, nil
}
