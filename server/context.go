package server

import (
	"context"
	"math"

	"github.com/shyptr/gqldb/database"
	"github.com/sirupsen/logrus"
)

const abortIndex = math.MaxInt8 / 2

type HandlerFunc func(*Context)

// Context carries one message through the handler chain.
type Context struct {
	context.Context

	ConnID   string
	Protocol string
	Request  string
	Result   database.Response
	Logger   *logrus.Entry
	// Keys is a key/value pair exclusively for the context of each request.
	Keys map[string]interface{}

	handlers []HandlerFunc
	index    int
}

func newContext(ctx context.Context, handlers []HandlerFunc) *Context {
	return &Context{Context: ctx, handlers: handlers, index: -1}
}

// Next runs the remaining handlers. Middleware calls it to wrap the rest of
// the chain.
func (c *Context) Next() {
	c.index++
	for c.index < len(c.handlers) {
		c.handlers[c.index](c)
		c.index++
	}
}

// Abort stops the chain after the current handler returns.
func (c *Context) Abort() {
	c.index = abortIndex
}

func (c *Context) IsAborted() bool {
	return c.index >= abortIndex
}

func (c *Context) Set(key string, value interface{}) {
	if c.Keys == nil {
		c.Keys = make(map[string]interface{})
	}
	c.Keys[key] = value
}

func (c *Context) Get(key string) (interface{}, bool) {
	value, ok := c.Keys[key]
	return value, ok
}

func (c *Context) Value(key interface{}) interface{} {
	if k, ok := key.(string); ok {
		if value, ok := c.Keys[k]; ok {
			return value
		}
	}
	return c.Context.Value(key)
}
