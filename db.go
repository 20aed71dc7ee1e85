// Package neograph synchronizes an in-memory directed property graph with a
// Neo4j database using idempotent MERGE-based upserts, so repeated
// synchronization of the same graph never creates duplicate nodes or
// relationships.
package neograph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// SessionRunner is one logical unit of work against the database. A runner is
// obtained per call from an Executor and must be closed by the caller on every
// exit path. Each RunWrite executes inside its own managed write transaction;
// a failed statement leaves the session usable for subsequent statements.
type SessionRunner interface {
	// RunWrite executes a Cypher statement in a write transaction and returns
	// the first result record (nil when the statement returns none) together
	// with the summary counters.
	RunWrite(ctx context.Context, query string, params map[string]interface{}) (*WriteResult, error)

	// RunRead executes a Cypher statement in a read transaction and returns
	// all result records, fully buffered. Zero records with a nil error means
	// the store legitimately had nothing to return.
	RunRead(ctx context.Context, query string, params map[string]interface{}) ([]*neo4j.Record, error)

	// Close releases the underlying session.
	Close(ctx context.Context) error
}

// Executor is the transport collaborator consumed by the Engine. It owns the
// driver lifecycle; the Engine only ever asks it for sessions.
type Executor interface {
	// Session opens a new logical session with the given access mode.
	Session(ctx context.Context, mode neo4j.AccessMode) (SessionRunner, error)

	// Verify checks connectivity to the database.
	Verify(ctx context.Context) error
}

// WriteResult is the distilled outcome of a single write statement: the first
// returned record plus the summary counters needed to tell a created entity
// from a matched one.
type WriteResult struct {
	// Record is the first record returned by the statement, or nil when the
	// statement returned no rows.
	Record *neo4j.Record

	// NodesCreated is the number of nodes the statement created.
	NodesCreated int

	// RelationshipsCreated is the number of relationships the statement created.
	RelationshipsCreated int

	// PropertiesSet is the number of properties the statement wrote.
	PropertiesSet int

	// ConstraintsAdded is the number of constraints the statement added.
	ConstraintsAdded int
}

//---

// Neo4jExecutor is the concrete Executor backed by the official Neo4j Go
// driver. Configuration is explicit: the caller constructs it from a Config
// and owns the Open/Close pair, so there is no hidden global driver state to
// recreate on reconnect.
type Neo4jExecutor struct {
	cfg    Config
	driver neo4j.DriverWithContext
}

// NewNeo4jExecutor creates an executor and its driver from the given Config.
//
// Parameters:
//   - cfg: Connection configuration (URI, credentials, target database).
//
// Returns:
//
//	A pointer to the executor, or an error if the driver cannot be created
//	(typically a malformed URI).
func NewNeo4jExecutor(cfg Config) (*Neo4jExecutor, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("could not create Neo4j driver: %w", err)
	}
	return &Neo4jExecutor{cfg: cfg, driver: driver}, nil
}

// Verify checks connectivity to the configured Neo4j instance.
func (e *Neo4jExecutor) Verify(ctx context.Context) error {
	return e.driver.VerifyConnectivity(ctx)
}

// Close releases the driver and all of its pooled connections. After Close the
// executor cannot be reused; construct a new one from the retained Config to
// reconnect.
func (e *Neo4jExecutor) Close(ctx context.Context) error {
	return e.driver.Close(ctx)
}

// Session opens a new session against the configured database.
func (e *Neo4jExecutor) Session(ctx context.Context, mode neo4j.AccessMode) (SessionRunner, error) {
	session := e.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: e.cfg.Database,
	})
	return &driverSession{session: session}, nil
}

// driverSession adapts a driver session to the SessionRunner interface.
type driverSession struct {
	session neo4j.SessionWithContext
}

func (s *driverSession) RunWrite(ctx context.Context, query string, params map[string]interface{}) (*WriteResult, error) {
	result, err := s.session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}
		summary, err := res.Consume(ctx)
		if err != nil {
			return nil, err
		}
		counters := summary.Counters()
		wr := &WriteResult{
			NodesCreated:         counters.NodesCreated(),
			RelationshipsCreated: counters.RelationshipsCreated(),
			PropertiesSet:        counters.PropertiesSet(),
			ConstraintsAdded:     counters.ConstraintsAdded(),
		}
		if len(records) > 0 {
			wr.Record = records[0]
		}
		return wr, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error executing neo4j write: %w", err)
	}
	return result.(*WriteResult), nil
}

func (s *driverSession) RunRead(ctx context.Context, query string, params map[string]interface{}) ([]*neo4j.Record, error) {
	result, err := s.session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("error executing neo4j read: %w", err)
	}
	return result.([]*neo4j.Record), nil
}

func (s *driverSession) Close(ctx context.Context) error {
	return s.session.Close(ctx)
}
