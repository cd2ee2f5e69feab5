package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

var (
	// ErrNotFound is returned when an identifier does not resolve to a node.
	ErrNotFound = errors.New("node not found")
	// ErrEmailTaken is returned when a User with the same email already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when no User matches a login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// DB is the Neo4j-backed graph store. The driver is created once and shared;
// every operation acquires its own session and releases it before returning.
type DB struct {
	driver   neo4j.DriverWithContext
	database string
}

// Open creates the driver and verifies connectivity.
func Open(ctx context.Context, uri, username, password, database string) (*DB, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("connect to neo4j: %w", err)
	}
	return &DB{driver: driver, database: database}, nil
}

func (d *DB) Close(ctx context.Context) error { return d.driver.Close(ctx) }

// Ping checks that the server is still reachable.
func (d *DB) Ping(ctx context.Context) error { return d.driver.VerifyConnectivity(ctx) }

// withSession runs fn in a session that is closed on every return path.
func (d *DB) withSession(ctx context.Context, mode neo4j.AccessMode, fn func(neo4j.SessionWithContext) error) error {
	s := d.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: d.database, AccessMode: mode})
	defer s.Close(ctx)
	return fn(s)
}

// exec runs a statement and drains its result.
func exec(ctx context.Context, s neo4j.SessionWithContext, query string, params map[string]any) error {
	res, err := s.Run(ctx, query, params)
	if err != nil {
		return err
	}
	_, err = res.Consume(ctx)
	return err
}

// single runs a query expected to produce exactly one row.
func single(ctx context.Context, s neo4j.SessionWithContext, query string, params map[string]any) (*neo4j.Record, error) {
	res, err := s.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	return res.Single(ctx)
}

// readAll streams every row of query inside a read transaction.
// The work function may be retried by the driver, so rows are collected per attempt.
func readAll(ctx context.Context, s neo4j.SessionWithContext, query string, params map[string]any) ([]*neo4j.Record, error) {
	out, err := s.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		var rows []*neo4j.Record
		for res.Next(ctx) {
			rows = append(rows, res.Record())
		}
		return rows, res.Err()
	})
	if err != nil {
		return nil, err
	}
	rows, _ := out.([]*neo4j.Record)
	return rows, nil
}

// exists reports whether a node with the given label and store identifier exists.
func exists(ctx context.Context, s neo4j.SessionWithContext, label string, id int64) (bool, error) {
	rec, err := single(ctx, s, fmt.Sprintf("MATCH (n:%s) WHERE id(n) = $id RETURN count(n) AS count", label), map[string]any{"id": id})
	if err != nil {
		return false, err
	}
	n, err := int64Value(rec, "count")
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// detachDelete removes the node and all of its relationships.
func detachDelete(ctx context.Context, s neo4j.SessionWithContext, label string, id int64) error {
	return exec(ctx, s, fmt.Sprintf("MATCH (n:%s) WHERE id(n) = $id DETACH DELETE n", label), map[string]any{"id": id})
}

// removeChecked deletes a node after confirming it exists, in one session.
func (d *DB) removeChecked(ctx context.Context, label string, id int64) error {
	return d.withSession(ctx, neo4j.AccessModeWrite, func(s neo4j.SessionWithContext) error {
		ok, err := exists(ctx, s, label, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		return detachDelete(ctx, s, label, id)
	})
}

// updateChecked overwrites properties after confirming the node exists, in one session.
func (d *DB) updateChecked(ctx context.Context, label string, id int64, set string, params map[string]any) error {
	return d.withSession(ctx, neo4j.AccessModeWrite, func(s neo4j.SessionWithContext) error {
		ok, err := exists(ctx, s, label, id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		params["id"] = id
		return exec(ctx, s, fmt.Sprintf("MATCH (n:%s) WHERE id(n) = $id SET %s", label, set), params)
	})
}
