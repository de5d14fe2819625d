// Package worker runs a network inside a background goroutine and exposes
// train/predict as message-passing calls.
//
// The goroutine is the sole owner of the network; nothing else touches it
// once the trainer is started. Requests cross the boundary as typed
// envelopes over a channel and are served strictly one at a time, so the
// synchronous core needs no locking of its own. Vectors are copied at the
// channel edge; no shared mutable memory crosses the boundary.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/balmanth/digit-guesser/internal/matrix"
	"github.com/balmanth/digit-guesser/internal/nn"
)

// ErrClosed is returned by Train and Predict after Close.
var ErrClosed = errors.New("worker: trainer is closed")

type op int

const (
	opTrain op = iota
	opPredict
)

type request[T matrix.Float] struct {
	op       op
	input    []T
	expected []T
	reply    chan response[T]
}

type response[T matrix.Float] struct {
	output []T
	err    error
}

// Trainer owns one Network on a background goroutine and serializes all
// access to it.
type Trainer[T matrix.Float] struct {
	requests chan request[T]
	done     chan struct{}
	once     sync.Once
}

// New starts a trainer goroutine owning the given network. The caller must
// not use the network directly afterwards.
func New[T matrix.Float](net *nn.Network[T]) *Trainer[T] {
	t := &Trainer[T]{
		requests: make(chan request[T]),
		done:     make(chan struct{}),
	}
	go t.run(net)
	return t
}

// run serves requests until Close. A request that has started is served to
// completion; cancellation only covers the wait, never an in-flight step.
func (t *Trainer[T]) run(net *nn.Network[T]) {
	for {
		select {
		case <-t.done:
			return
		case req := <-t.requests:
			req.reply <- t.serve(net, req)
		}
	}
}

func (t *Trainer[T]) serve(net *nn.Network[T], req request[T]) response[T] {
	if len(req.input) != net.InputSize() {
		return response[T]{err: fmt.Errorf("worker: input vector has length %d, network expects %d", len(req.input), net.InputSize())}
	}
	switch req.op {
	case opTrain:
		if len(req.expected) != net.OutputSize() {
			return response[T]{err: fmt.Errorf("worker: expected vector has length %d, network produces %d", len(req.expected), net.OutputSize())}
		}
		net.Train(req.input, req.expected)
		return response[T]{}
	case opPredict:
		return response[T]{output: net.Predict(req.input)}
	default:
		return response[T]{err: fmt.Errorf("worker: unknown operation %d", req.op)}
	}
}

// Train runs one training round on the background network and waits for the
// completion notification. Returns an error when the vectors have the wrong
// width, the context is cancelled before completion, or the trainer is
// closed.
func (t *Trainer[T]) Train(ctx context.Context, input, expected []T) error {
	_, err := t.send(ctx, request[T]{
		op:       opTrain,
		input:    cloneVector(input),
		expected: cloneVector(expected),
	})
	return err
}

// Predict runs forward inference on the background network and returns the
// output vector.
func (t *Trainer[T]) Predict(ctx context.Context, input []T) ([]T, error) {
	return t.send(ctx, request[T]{
		op:    opPredict,
		input: cloneVector(input),
	})
}

func (t *Trainer[T]) send(ctx context.Context, req request[T]) ([]T, error) {
	req.reply = make(chan response[T], 1)
	select {
	case t.requests <- req:
	case <-t.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case resp := <-req.reply:
		return resp.output, resp.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops the background goroutine. Safe to call more than once;
// requests already accepted still complete.
func (t *Trainer[T]) Close() {
	t.once.Do(func() {
		close(t.done)
	})
}

func cloneVector[T matrix.Float](values []T) []T {
	out := make([]T, len(values))
	copy(out, values)
	return out
}
