// Package async runs fire-and-forget background tasks that can still be
// drained on shutdown.
package async

import (
	"context"
	"sync"
)

// Group запускает фоновые задачи и позволяет дождаться их завершения.
// Задачи получают контекст группы, который отменяется при Close.
type Group struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewGroup создает группу фоновых задач
func NewGroup() *Group {
	ctx, cancel := context.WithCancel(context.Background())
	return &Group{ctx: ctx, cancel: cancel}
}

// Go запускает задачу в отдельной горутине, не дожидаясь результата
func (g *Group) Go(task func(ctx context.Context)) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		task(g.ctx)
	}()
}

// Wait дожидается завершения всех запущенных задач
func (g *Group) Wait() {
	g.wg.Wait()
}

// Close отменяет контекст задач и дожидается их завершения
func (g *Group) Close() {
	g.cancel()
	g.wg.Wait()
}
