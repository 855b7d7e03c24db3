// Package database owns the schema. Documents are parsed by a pool of
// workers and applied one at a time by a single actor goroutine.
package database

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shyptr/gqldb/config"
	"github.com/shyptr/gqldb/store"
	"github.com/shyptr/gqldb/system"
	"github.com/shyptr/gqldb/system/ast"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Response struct {
	Document *ast.Document
	Err      error
}

// String is the text sent back to clients: the canonical document or the
// error message.
func (r Response) String() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return ast.Print(r.Document)
}

const (
	statePending int32 = iota
	stateClaimed
	stateAbandoned
)

type request struct {
	source   string
	snapshot bool
	doc      *ast.Document
	reply    chan Response
	state    atomic.Int32
}

// claim hands req to the actor. It fails once the caller has given up.
func (r *request) claim() bool {
	return r.state.CompareAndSwap(statePending, stateClaimed)
}

// abandon withdraws req. It fails once the actor has claimed it.
func (r *request) abandon() bool {
	return r.state.CompareAndSwap(statePending, stateAbandoned)
}

func (r *request) abandoned() bool {
	return r.state.Load() == stateAbandoned
}

type Database struct {
	threads      int
	parseTimeout time.Duration
	store        *store.Store
	logger       *logrus.Entry

	requests chan *request
	parsed   chan *request
	schema   *Schema
}

// New returns a Database configured by cfg. st may be nil, in which case
// the schema lives only in memory.
func New(cfg *config.Config, logger *logrus.Logger, st *store.Store) *Database {
	return &Database{
		threads:      cfg.Threads,
		parseTimeout: cfg.ParseTimeout.Duration,
		store:        st,
		logger:       logger.WithField("component", "database"),
		requests:     make(chan *request, cfg.Threads),
		parsed:       make(chan *request, cfg.Threads),
		schema:       NewSchema(),
	}
}

// Run restores the saved schema and serves requests until ctx is done.
func (d *Database) Run(ctx context.Context) error {
	if err := d.restore(ctx); err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < d.threads; i++ {
		worker := i
		g.Go(func() error {
			d.work(ctx, worker)
			return nil
		})
	}
	g.Go(func() error {
		d.act(ctx)
		return nil
	})
	d.logger.WithField("threads", d.threads).Info("database started")
	err := g.Wait()
	d.logger.Info("database stopped")
	return err
}

func (d *Database) restore(ctx context.Context) error {
	if d.store == nil {
		return nil
	}
	saved, err := d.store.Load(ctx)
	if err != nil {
		return err
	}
	if saved == "" {
		return nil
	}
	doc, err := system.Parse(saved)
	if err != nil {
		return fmt.Errorf("database: saved schema: %w", err)
	}
	schema, _, err := d.schema.Apply(doc)
	if err != nil {
		return fmt.Errorf("database: saved schema: %w", err)
	}
	d.schema = schema
	d.logger.WithField("types", schema.Len()).Info("schema restored")
	return nil
}

func (d *Database) work(ctx context.Context, worker int) {
	logger := d.logger.WithField("worker", worker)
	for {
		var req *request
		select {
		case <-ctx.Done():
			return
		case req = <-d.requests:
		}
		if req.abandoned() {
			continue
		}
		if !req.snapshot {
			doc, err := system.Parse(req.source)
			if err != nil {
				logger.WithError(err).Debug("parse failed")
				req.reply <- Response{Err: err}
				continue
			}
			req.doc = doc
		}
		select {
		case <-ctx.Done():
			return
		case d.parsed <- req:
		}
	}
}

func (d *Database) act(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-d.parsed:
			if req.snapshot {
				req.reply <- Response{Document: d.schema.Document()}
				continue
			}
			if !req.claim() {
				d.logger.Debug("request abandoned")
				continue
			}
			req.reply <- d.apply(ctx, req.doc)
		}
	}
}

func (d *Database) apply(ctx context.Context, doc *ast.Document) Response {
	schema, changed, err := d.schema.Apply(doc)
	if err != nil {
		d.logger.WithError(err).Debug("document rejected")
		return Response{Err: err}
	}
	if !changed {
		return Response{Document: doc}
	}
	if d.store != nil {
		if err := d.store.Save(ctx, schema.String()); err != nil {
			d.logger.WithError(err).Error("snapshot failed")
			return Response{Err: err}
		}
	}
	d.schema = schema
	d.logger.WithField("types", schema.Len()).Debug("schema updated")
	return Response{Document: doc}
}

func (d *Database) send(ctx context.Context, req *request) Response {
	ctx, cancel := context.WithTimeout(ctx, d.parseTimeout)
	defer cancel()
	select {
	case d.requests <- req:
	case <-ctx.Done():
		return Response{Err: fmt.Errorf("database: %w", ctx.Err())}
	}
	select {
	case resp := <-req.reply:
		return resp
	case <-ctx.Done():
		if req.abandon() {
			return Response{Err: fmt.Errorf("database: %w", ctx.Err())}
		}
		// The actor owns the request and always replies.
		return <-req.reply
	}
}

// Execute parses source and applies its type system definitions to the
// schema. Executable definitions are parsed and returned unchanged.
func (d *Database) Execute(ctx context.Context, source string) Response {
	return d.send(ctx, &request{source: source, reply: make(chan Response, 1)})
}

// Schema returns the current schema as a document.
func (d *Database) Schema(ctx context.Context) (*ast.Document, error) {
	resp := d.send(ctx, &request{snapshot: true, reply: make(chan Response, 1)})
	return resp.Document, resp.Err
}
