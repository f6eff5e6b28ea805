package analytics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"lre-analytics/internal/models"
	"lre-analytics/internal/percentiles"
	"lre-analytics/internal/shared/loggers"
	"lre-analytics/internal/sources"
)

const progressLogInterval = 10

var ErrDataSourceFailed = errors.New("batch data source failed")

// ProcessResult is the percentile mapping of one run with the counters collected on the way.
type ProcessResult struct {
	Percentiles map[models.GroupKey]models.PercentileResult
	Stats       models.RunStats
}

// Orchestrator drains a BatchSource into per-group accumulators and resolves them.
// Each Process call owns its accumulators; nothing is shared between calls.
//
//go:generate mockgen -source=orchestrator.go -destination=./mocks/orchestrator_mock.go -package=mocks
type Orchestrator interface {
	Process(ctx context.Context, src sources.BatchSource) (*ProcessResult, error)
}

type orchestrator struct {
	factory percentiles.AccumulatorFactory
	targets []float64
}

func NewOrchestrator(factory percentiles.AccumulatorFactory, targets []float64) Orchestrator {
	return &orchestrator{factory: factory, targets: targets}
}

// groupSlice holds the valid samples of one group within a single batch, in row order.
type groupSlice struct {
	values  []float64
	weights []float64
}

type runState struct {
	accumulators map[models.GroupKey]percentiles.Accumulator
	failed       map[models.GroupKey]error
	stats        models.RunStats
}

func (o *orchestrator) Process(ctx context.Context, src sources.BatchSource) (*ProcessResult, error) {
	logger := loggers.Ctx(ctx)
	strategy := string(o.factory.Strategy())

	state := &runState{
		accumulators: make(map[models.GroupKey]percentiles.Accumulator),
		failed:       make(map[models.GroupKey]error),
	}

	for {
		batch, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: after %d batches: %w", ErrDataSourceFailed, state.stats.Batches, err)
		}

		state.stats.Batches++
		state.stats.RowsRead += int64(len(batch))
		metricBatchesProcessedTotal.WithLabelValues(strategy).Inc()

		if err := o.fold(ctx, state, batch); err != nil {
			return nil, err
		}

		if state.stats.Batches%progressLogInterval == 0 {
			logger.Debug().
				Int64(loggers.FieldBatches, state.stats.Batches).
				Int64(loggers.FieldRows, state.stats.RowsRead).
				Int(loggers.FieldGroups, len(state.accumulators)).
				Msg("processed batches")
		}
	}

	metricRowsTotal.WithLabelValues(strategy, rowsFolded).Add(float64(state.stats.RowsRead - state.stats.RowsDropped))
	metricRowsTotal.WithLabelValues(strategy, rowsDropped).Add(float64(state.stats.RowsDropped))

	return &ProcessResult{
		Percentiles: o.resolve(ctx, state, strategy),
		Stats:       state.stats,
	}, nil
}

// fold groups the valid rows of batch by key and appends each group to its accumulator.
func (o *orchestrator) fold(ctx context.Context, state *runState, batch models.Batch) error {
	groups := make(map[models.GroupKey]*groupSlice)
	var order []models.GroupKey
	for _, row := range batch {
		if !row.Valid() {
			state.stats.RowsDropped++
			continue
		}
		g, ok := groups[row.Key]
		if !ok {
			g = &groupSlice{}
			groups[row.Key] = g
			order = append(order, row.Key)
		}
		g.values = append(g.values, row.Value)
		g.weights = append(g.weights, row.Weight)
	}

	for _, key := range order {
		if _, failed := state.failed[key]; failed {
			continue
		}
		acc, ok := state.accumulators[key]
		if !ok {
			var err error
			acc, err = o.factory.NewAccumulator()
			if err != nil {
				return fmt.Errorf("failed to create accumulator for %s: %w", key, err)
			}
			state.accumulators[key] = acc
		}

		g := groups[key]
		if err := addSafely(acc, g.values, g.weights); err != nil {
			loggers.Ctx(ctx).Warn().Err(err).
				Str(loggers.FieldScript, key.Script).
				Str(loggers.FieldTransaction, key.Transaction).
				Msg("failed to accumulate group, it will be reported with zero percentiles")
			state.failed[key] = err
			delete(state.accumulators, key)
		}
	}
	return nil
}

func addSafely(acc percentiles.Accumulator, values, weights []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while accumulating: %v", r)
		}
	}()
	return acc.Add(values, weights)
}

// resolve turns every accumulator into a percentile result in (script, transaction) order.
func (o *orchestrator) resolve(ctx context.Context, state *runState, strategy string) map[models.GroupKey]models.PercentileResult {
	logger := loggers.Ctx(ctx)

	keys := make([]models.GroupKey, 0, len(state.accumulators)+len(state.failed))
	for key := range state.accumulators {
		keys = append(keys, key)
	}
	for key := range state.failed {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	state.stats.Groups = len(keys)

	results := make(map[models.GroupKey]models.PercentileResult, len(keys))
	for _, key := range keys {
		if _, failed := state.failed[key]; failed {
			results[key] = models.NewZeroPercentileResult(key, len(o.targets))
			state.stats.Failed++
			metricGroupsTotal.WithLabelValues(strategy, outcomeFailed).Inc()
			continue
		}

		result, err := o.resolveGroup(key, state.accumulators[key])
		delete(state.accumulators, key)
		switch {
		case errors.Is(err, percentiles.ErrInsufficientData):
			logger.Debug().
				Str(loggers.FieldScript, key.Script).
				Str(loggers.FieldTransaction, key.Transaction).
				Msg("skipping group with insufficient data")
			state.stats.Insufficient++
			metricGroupsTotal.WithLabelValues(strategy, outcomeInsufficient).Inc()
		case err != nil:
			logger.Warn().Err(err).
				Str(loggers.FieldScript, key.Script).
				Str(loggers.FieldTransaction, key.Transaction).
				Msg("failed to compute percentiles, reporting zeros")
			results[key] = models.NewZeroPercentileResult(key, len(o.targets))
			state.stats.Failed++
			metricGroupsTotal.WithLabelValues(strategy, outcomeFailed).Inc()
		default:
			results[key] = result
			state.stats.Resolved++
			metricGroupsTotal.WithLabelValues(strategy, outcomeResolved).Inc()
		}
	}
	return results
}

// resolveGroup is the single recovery point of per-group estimation: errors and
// panics both come back as an error and never abort the run.
func (o *orchestrator) resolveGroup(key models.GroupKey, acc percentiles.Accumulator) (result models.PercentileResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while resolving %s: %v", key, r)
		}
	}()

	values, err := acc.Resolve(o.targets)
	if err != nil {
		return models.PercentileResult{}, err
	}
	if len(values) != len(o.targets) {
		return models.PercentileResult{}, fmt.Errorf("accumulator returned %d values for %d targets", len(values), len(o.targets))
	}
	return models.PercentileResult{Key: key, Values: values}, nil
}
