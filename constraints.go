package neograph

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// ErrInvalidArgument is wrapped by errors reporting an unrecognized
// constraint target or kind. No statement is issued in that case.
var ErrInvalidArgument = errors.New("invalid argument")

// ConstraintTarget selects whether a constraint applies to node or
// relationship patterns.
type ConstraintTarget string

const (
	TargetNode         ConstraintTarget = "node"
	TargetRelationship ConstraintTarget = "relationship"
)

// ConstraintKind selects the requirement a constraint enforces.
type ConstraintKind string

const (
	// KindUnique requires the property to be unique per label.
	KindUnique ConstraintKind = "unique"
	// KindExists requires the property to be non-null.
	KindExists ConstraintKind = "exist"
)

// ConstraintStatus reports the result of CreateConstraint. Both a newly
// created constraint and an already existing one are success outcomes.
type ConstraintStatus struct {
	// Name is the deterministic constraint name derived from label, target,
	// and property.
	Name string

	// Created is true when this call added the constraint, false when it
	// already existed.
	Created bool
}

// ConstraintInfo describes one constraint as reported by SHOW CONSTRAINTS.
type ConstraintInfo struct {
	Name          string
	Type          string
	EntityType    string
	LabelsOrTypes []string
	Properties    []string
}

// CreateConstraint issues an idempotent create-constraint statement for the
// given label and property.
//
// Parameters:
//   - label: The node label or relationship type the constraint applies to.
//   - property: The property the requirement is placed on.
//   - target: TargetNode or TargetRelationship; anything else is rejected.
//   - kind: KindUnique or KindExists; anything else is rejected.
//
// Returns:
//
//	A status reporting the constraint name and whether it was newly created,
//	or an error wrapping ErrInvalidArgument for a bad target/kind, or the
//	executor error if the statement fails.
func (e *Engine) CreateConstraint(ctx context.Context, label, property string, target ConstraintTarget, kind ConstraintKind) (*ConstraintStatus, error) {
	sanitized := Sanitize(label, property)
	label, property = sanitized[0], sanitized[1]

	var pattern string
	switch target {
	case TargetNode:
		pattern = fmt.Sprintf("(x:%s)", label)
	case TargetRelationship:
		// Directionless: the constraint binds the relationship type, not a
		// particular direction.
		pattern = fmt.Sprintf("()-[x:%s]-()", label)
	default:
		return nil, fmt.Errorf("%w: target must be %q or %q, got %q", ErrInvalidArgument, TargetNode, TargetRelationship, target)
	}

	var requirement string
	switch kind {
	case KindUnique:
		requirement = "IS UNIQUE"
	case KindExists:
		requirement = "IS NOT NULL"
	default:
		return nil, fmt.Errorf("%w: kind must be %q or %q, got %q", ErrInvalidArgument, KindUnique, KindExists, kind)
	}

	name := fmt.Sprintf("%s_%s_%s", label, target, property)
	query := fmt.Sprintf(
		"CREATE CONSTRAINT %s IF NOT EXISTS\nFOR %s\nREQUIRE x.%s %s",
		name, pattern, property, requirement,
	)

	session, err := e.executor.Session(ctx, neo4j.AccessModeWrite)
	if err != nil {
		return nil, fmt.Errorf("could not open session: %w", err)
	}
	defer func() {
		if cerr := session.Close(ctx); cerr != nil {
			e.log.Warn("could not close session", zap.Error(cerr))
		}
	}()

	wr, err := session.RunWrite(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	status := &ConstraintStatus{Name: name, Created: wr.ConstraintsAdded > 0}
	if e.verbose {
		e.log.Info("create constraint",
			zap.String("name", status.Name),
			zap.Bool("created", status.Created),
			zap.String("statement", query),
		)
	}
	return status, nil
}

// Constraints lists every constraint currently present in the store. A store
// without constraints yields an empty, non-nil slice and no error.
func (e *Engine) Constraints(ctx context.Context) ([]ConstraintInfo, error) {
	session, err := e.executor.Session(ctx, neo4j.AccessModeRead)
	if err != nil {
		return nil, fmt.Errorf("could not open session: %w", err)
	}
	defer func() {
		if cerr := session.Close(ctx); cerr != nil {
			e.log.Warn("could not close session", zap.Error(cerr))
		}
	}()

	records, err := session.RunRead(ctx, "SHOW CONSTRAINTS", nil)
	if err != nil {
		return nil, err
	}

	constraints := make([]ConstraintInfo, 0, len(records))
	for _, record := range records {
		constraints = append(constraints, ConstraintInfo{
			Name:          recordString(record, "name"),
			Type:          recordString(record, "type"),
			EntityType:    recordString(record, "entityType"),
			LabelsOrTypes: recordStrings(record, "labelsOrTypes"),
			Properties:    recordStrings(record, "properties"),
		})
	}
	return constraints, nil
}

func recordString(record *neo4j.Record, key string) string {
	value, ok := record.Get(key)
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}

func recordStrings(record *neo4j.Record, key string) []string {
	value, ok := record.Get(key)
	if !ok {
		return nil
	}
	raw, ok := value.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
