package neograph

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// Outcome classifies what a single upsert did to its entity.
type Outcome string

const (
	// OutcomeCreated means the entity did not exist and was created.
	OutcomeCreated Outcome = "created"
	// OutcomeMatched means the entity already existed; its supplementary
	// properties were merged, nothing was created.
	OutcomeMatched Outcome = "matched"
	// OutcomeFailed means the executor reported an error for this entity.
	OutcomeFailed Outcome = "failed"
)

// EntityResult is the per-entity outcome of a synchronize pass.
type EntityResult struct {
	// Entity is "node" or "relationship".
	Entity string

	// Key identifies the entity: "Label:name" for nodes,
	// "from-[LABEL]->to" for relationships.
	Key string

	// Outcome is created, matched, or failed.
	Outcome Outcome

	// Created holds the creation timestamp (milliseconds since epoch, set by
	// the database) when this run created the entity, zero otherwise.
	Created int64

	// Err is the executor error when Outcome is OutcomeFailed.
	Err error
}

// SyncReport is the accumulated result of one Synchronize call.
type SyncReport struct {
	// RunID uniquely identifies this synchronize pass.
	RunID string

	Nodes []EntityResult
	Edges []EntityResult
}

// CreatedCount returns how many entities this pass created.
func (r *SyncReport) CreatedCount() int { return r.count(OutcomeCreated) }

// MatchedCount returns how many entities already existed.
func (r *SyncReport) MatchedCount() int { return r.count(OutcomeMatched) }

// Failed returns the results of every entity whose upsert failed.
func (r *SyncReport) Failed() []EntityResult {
	var failed []EntityResult
	for _, res := range r.Nodes {
		if res.Outcome == OutcomeFailed {
			failed = append(failed, res)
		}
	}
	for _, res := range r.Edges {
		if res.Outcome == OutcomeFailed {
			failed = append(failed, res)
		}
	}
	return failed
}

func (r *SyncReport) count(o Outcome) int {
	n := 0
	for _, res := range r.Nodes {
		if res.Outcome == o {
			n++
		}
	}
	for _, res := range r.Edges {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

//---

// Engine synchronizes an in-memory graph into Neo4j. It composes a graph
// value with an injected Executor instead of binding connectivity into the
// graph type itself, so graphs stay plain values and the connection lifecycle
// belongs to whoever constructed the Executor.
//
// The engine performs no internal parallelism: a synchronize pass is a
// sequential walk over nodes then edges, one statement outstanding at a time.
type Engine struct {
	executor Executor
	log      *zap.Logger
	verbose  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for warnings and verbose output. The
// default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithVerbose makes the engine log every statement and its raw result. This
// is observability only; it never affects outcomes.
func WithVerbose(verbose bool) Option {
	return func(e *Engine) { e.verbose = verbose }
}

// NewEngine creates a synchronization engine on top of the given executor.
func NewEngine(executor Executor, opts ...Option) *Engine {
	e := &Engine{
		executor: executor,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Synchronize upserts every node, then every edge, of the given graph into
// the database. Matching is by (label, name) for nodes and by
// (from, relationship label, to) for directed relationships, so running the
// same graph twice never creates duplicates: the second pass reports every
// entity as matched.
//
// Each entity executes in its own write transaction. A failed upsert is
// recorded in the report and does not stop the pass; only a session that
// cannot be opened aborts the call. The session is released on every exit
// path.
//
// Parameters:
//   - ctx: The context for all statement executions.
//   - g: The graph to synchronize. It is only read, never mutated.
//
// Returns:
//
//	A report distinguishing created, matched, and failed entities, or an
//	error if no session could be opened.
func (e *Engine) Synchronize(ctx context.Context, g GraphSource) (*SyncReport, error) {
	session, err := e.executor.Session(ctx, neo4j.AccessModeWrite)
	if err != nil {
		return nil, fmt.Errorf("could not open session: %w", err)
	}
	defer func() {
		if cerr := session.Close(ctx); cerr != nil {
			e.log.Warn("could not close session", zap.Error(cerr))
		}
	}()

	report := &SyncReport{RunID: uuid.NewString()}

	// Nodes first: edge upserts would create missing endpoints themselves,
	// but doing nodes up front keeps creation timestamps on the node pass
	// where they belong.
	for _, node := range g.Nodes() {
		report.Nodes = append(report.Nodes, e.upsertNode(ctx, session, node))
	}
	for _, edge := range g.Edges() {
		report.Edges = append(report.Edges, e.upsertEdge(ctx, session, g, edge))
	}
	return report, nil
}

// upsertNode builds and executes the match-or-create statement for one node.
func (e *Engine) upsertNode(ctx context.Context, session SessionRunner, node Node) EntityResult {
	sanitized := Sanitize(node.Label, node.Name)
	label, name := sanitized[0], sanitized[1]

	stmt := nodeUpsert(label, name, EncodeProperties(node.Props))
	result := EntityResult{Entity: "node", Key: label + ":" + name}

	wr, err := session.RunWrite(ctx, stmt.Text, nil)
	if err != nil {
		result.Outcome = OutcomeFailed
		result.Err = err
		e.log.Warn("node upsert failed", zap.String("key", result.Key), zap.Error(err))
		return result
	}

	if wr.NodesCreated > 0 {
		result.Outcome = OutcomeCreated
		result.Created = createdTimestamp(wr.Record, "n.created")
	} else {
		result.Outcome = OutcomeMatched
	}
	e.logStatement("node upsert", stmt, wr, result)
	return result
}

// upsertEdge resolves both endpoint labels from the graph, then builds and
// executes the match-or-create statement for one directed relationship.
func (e *Engine) upsertEdge(ctx context.Context, session SessionRunner, g GraphSource, edge Edge) EntityResult {
	result := EntityResult{
		Entity: "relationship",
		Key:    fmt.Sprintf("%s-[%s]->%s", edge.From, sanitizeOne(edge.Label), edge.To),
	}

	from, ok := g.Node(edge.From)
	if !ok {
		result.Outcome = OutcomeFailed
		result.Err = fmt.Errorf("from-node %q not present in graph", edge.From)
		return result
	}
	to, ok := g.Node(edge.To)
	if !ok {
		result.Outcome = OutcomeFailed
		result.Err = fmt.Errorf("to-node %q not present in graph", edge.To)
		return result
	}

	sanitized := Sanitize(from.Label, from.Name, to.Label, to.Name, edge.Label)
	stmt := edgeUpsert(sanitized[0], sanitized[1], sanitized[2], sanitized[3], sanitized[4],
		EncodeProperties(edge.Props))

	wr, err := session.RunWrite(ctx, stmt.Text, nil)
	if err != nil {
		result.Outcome = OutcomeFailed
		result.Err = err
		e.log.Warn("relationship upsert failed", zap.String("key", result.Key), zap.Error(err))
		return result
	}

	if wr.RelationshipsCreated > 0 {
		result.Outcome = OutcomeCreated
		result.Created = createdTimestamp(wr.Record, "e.created")
	} else {
		result.Outcome = OutcomeMatched
	}
	e.logStatement("relationship upsert", stmt, wr, result)
	return result
}

// logStatement emits the statement text and raw record when verbose mode is
// on. Purely observational.
func (e *Engine) logStatement(op string, stmt Statement, wr *WriteResult, result EntityResult) {
	if !e.verbose {
		return
	}
	fields := []zap.Field{
		zap.String("key", result.Key),
		zap.String("outcome", string(result.Outcome)),
		zap.String("statement", stmt.Text),
	}
	if wr.Record != nil {
		fields = append(fields, zap.Any("record", wr.Record.Values))
	}
	e.log.Info(op, fields...)
}

// createdTimestamp extracts the creation timestamp returned by an upsert
// statement. Zero when the record is missing or the value is null (the
// entity was matched, not created).
func createdTimestamp(record *neo4j.Record, key string) int64 {
	if record == nil {
		return 0
	}
	value, ok := record.Get(key)
	if !ok {
		return 0
	}
	ts, ok := value.(int64)
	if !ok {
		return 0
	}
	return ts
}
