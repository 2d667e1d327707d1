package engine

import (
	"context"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree of the given depth.
func Perft(pos *chess.Position, depth int) uint64 {
	return defaultRules.Perft(pos, depth)
}

// PerftDivide returns the perft count below each root move, keyed by the
// move in coordinate notation.
func PerftDivide(pos *chess.Position, depth int) map[string]uint64 {
	return defaultRules.PerftDivide(pos, depth)
}

// ParallelPerftDivide is PerftDivide with root moves counted concurrently.
func ParallelPerftDivide(ctx context.Context, pos *chess.Position, depth, workers int) (map[string]uint64, error) {
	return defaultRules.ParallelPerftDivide(ctx, pos, depth, workers)
}

// Perft counts the leaf nodes of the legal move tree of the given depth.
func (r *Rules) Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	cands := r.candidates(pos, pos.ToMove)
	if depth == 1 {
		return uint64(len(cands))
	}
	var nodes uint64
	for _, c := range cands {
		nodes += r.Perft(transition(pos, c.move, c.mark), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func (r *Rules) PerftDivide(pos *chess.Position, depth int) map[string]uint64 {
	divide := make(map[string]uint64)
	if depth <= 0 {
		return divide
	}
	for _, c := range r.candidates(pos, pos.ToMove) {
		divide[c.move.String()] = r.Perft(transition(pos, c.move, c.mark), depth-1)
	}
	return divide
}

// ParallelPerftDivide splits the root moves across a worker pool. It stops
// early and returns ctx.Err() when ctx is cancelled.
func (r *Rules) ParallelPerftDivide(ctx context.Context, pos *chess.Position, depth, workers int) (map[string]uint64, error) {
	divide := make(map[string]uint64)
	if depth <= 0 {
		return divide, nil
	}
	cands := r.candidates(pos, pos.ToMove)

	pool := worker.NewPool(workers, len(cands)+1, r.countTask)
	pool.Start(ctx)
	for i, c := range cands {
		task := worker.Task{
			Index:    i,
			Position: transition(pos, c.move, c.mark),
			Move:     c.move,
			Depth:    depth - 1,
		}
		if err := pool.Submit(ctx, task); err != nil {
			pool.Stop()
			go pool.Close()
			for range pool.Results() {
			}
			return nil, err
		}
	}
	go pool.Close()

	var firstErr error
	for res := range pool.Results() {
		if res.Err != nil {
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		divide[res.Move.String()] = res.Nodes
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return divide, nil
}

// countTask is the worker.TaskFunc used by ParallelPerftDivide.
func (r *Rules) countTask(ctx context.Context, task worker.Task) worker.Result {
	res := worker.Result{Index: task.Index, Move: task.Move}
	if task.Depth <= 1 {
		res.Nodes = r.Perft(task.Position, task.Depth)
		return res
	}
	for _, c := range r.candidates(task.Position, task.Position.ToMove) {
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res
		}
		res.Nodes += r.Perft(transition(task.Position, c.move, c.mark), task.Depth-1)
	}
	return res
}
