package ports

import "context"

// Scheduler launches fire-and-forget work. Callers never await the task.
type Scheduler interface {
	Launch(ctx context.Context, task func(ctx context.Context))
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(ctx context.Context, task func(ctx context.Context))

// Launch calls f(ctx, task).
func (f SchedulerFunc) Launch(ctx context.Context, task func(ctx context.Context)) {
	f(ctx, task)
}

// GoScheduler runs each task on its own goroutine.
var GoScheduler Scheduler = SchedulerFunc(func(ctx context.Context, task func(ctx context.Context)) {
	go task(ctx)
})

// InlineScheduler runs each task synchronously. Useful in tests.
var InlineScheduler Scheduler = SchedulerFunc(func(ctx context.Context, task func(ctx context.Context)) {
	task(ctx)
})
