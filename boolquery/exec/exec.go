// Copyright 2026 The OIP Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package exec

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/PrytkovD/oip/boolquery/plan"
)

// Executor runs a physical plan.Node against a TokenIndex and a
// PageIndex, evaluating set operations bottom-up.
type Executor struct {
	tokens  TokenIndex
	pages   PageIndex
	tracer  opentracing.Tracer
	metrics *Metrics
	log     logrus.FieldLogger
}

// NewExecutor builds an Executor. A nil tracer falls back to
// opentracing.GlobalTracer(); a nil metrics disables instrumentation.
func NewExecutor(tokens TokenIndex, pages PageIndex, tracer opentracing.Tracer, metrics *Metrics) *Executor {
	if tracer == nil {
		tracer = opentracing.GlobalTracer()
	}
	return &Executor{tokens: tokens, pages: pages, tracer: tracer, metrics: metrics, log: logrus.StandardLogger()}
}

// Execute evaluates n and returns the matching page URLs, in no
// particular order. Every call is tagged with a fresh correlation ID
// so a single query's log lines and span can be traced through a
// busy server.
func (e *Executor) Execute(ctx context.Context, n plan.Node) ([]string, error) {
	queryID := uuid.NewV4().String()

	span, ctx := opentracing.StartSpanFromContextWithTracer(ctx, e.tracer, "boolquery.exec.Execute",
		opentracing.Tag{Key: "query_id", Value: queryID})
	defer span.Finish()

	log := e.log.WithField("query_id", queryID)
	log.Debug("boolquery: executing plan")

	start := time.Now()
	result, err := e.eval(ctx, n)
	if e.metrics != nil {
		e.metrics.ExecutionDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		log.WithError(err).Warn("boolquery: plan execution failed")
		return nil, err
	}

	urls := make([]string, 0, len(result))
	for u := range result {
		urls = append(urls, u)
	}
	return urls, nil
}

func (e *Executor) eval(ctx context.Context, n plan.Node) (map[string]struct{}, error) {
	switch t := n.(type) {
	case plan.SequentialScan:
		span, _ := opentracing.StartSpanFromContextWithTracer(ctx, e.tracer, "boolquery.exec.sequentialScan")
		defer span.Finish()
		all, err := e.pages.AllPageURLs()
		if err != nil {
			return nil, err
		}
		return toSet(all), nil

	case plan.IndexScan:
		span, _ := opentracing.StartSpanFromContextWithTracer(ctx, e.tracer, "boolquery.exec.indexScan",
			opentracing.Tag{Key: "token", Value: t.Value})
		defer span.Finish()
		urls, err := e.tokens.PageURLsByToken(t.Value)
		if err != nil {
			return nil, err
		}
		return toSet(urls), nil

	case plan.Intersect:
		span, ctx := opentracing.StartSpanFromContextWithTracer(ctx, e.tracer, "boolquery.exec.intersect")
		defer span.Finish()
		lhs, err := e.eval(ctx, t.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := e.eval(ctx, t.Right)
		if err != nil {
			return nil, err
		}
		return intersect(lhs, rhs), nil

	case plan.Union:
		span, ctx := opentracing.StartSpanFromContextWithTracer(ctx, e.tracer, "boolquery.exec.union")
		defer span.Finish()
		lhs, err := e.eval(ctx, t.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := e.eval(ctx, t.Right)
		if err != nil {
			return nil, err
		}
		return union(lhs, rhs), nil

	case plan.Difference:
		span, ctx := opentracing.StartSpanFromContextWithTracer(ctx, e.tracer, "boolquery.exec.difference")
		defer span.Finish()
		lhs, err := e.eval(ctx, t.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := e.eval(ctx, t.Right)
		if err != nil {
			return nil, err
		}
		return difference(lhs, rhs), nil

	case plan.Noop:
		return map[string]struct{}{}, nil

	default:
		return map[string]struct{}{}, nil
	}
}

func toSet(urls []string) map[string]struct{} {
	s := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		s[u] = struct{}{}
	}
	return s
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for k := range small {
		if _, ok := big[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

func union(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}

func difference(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}
