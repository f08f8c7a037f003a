package core

import (
	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/core/execute"
	"github.com/interchained/itcpay/core/generate"
)

type DistributionContext interface {
	*generate.DistributionGenerationContext | *execute.DistributionExecutionContext
}

type DistributionOptions interface {
	*common.GenerateDistributionOptions | *common.ExecuteDistributionOptions
}

type Stage[T DistributionContext, U DistributionOptions] func(ctx T, options U) (T, error)

type WrappedStageResult[T DistributionContext, U DistributionOptions] struct {
	Ctx T
	Err error
}

func (result WrappedStageResult[T, U]) ExecuteStages(options U, stages ...Stage[T, U]) WrappedStageResult[T, U] {
	for _, stage := range stages {
		if result.Err != nil {
			return result
		}
		ctx, err := stage(result.Ctx, options)
		result = WrappedStageResult[T, U]{
			Ctx: ctx,
			Err: err,
		}
	}
	return result
}

func WrapContext[T DistributionContext, U DistributionOptions](ctx T) WrappedStageResult[T, U] {
	return WrappedStageResult[T, U]{
		Ctx: ctx,
	}
}

func (result WrappedStageResult[T, U]) Unwrap() (T, error) {
	return result.Ctx, result.Err
}
