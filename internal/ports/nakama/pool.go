package nakama

import (
	"sync"

	"ticketroute/internal/config"
	"ticketroute/internal/routemap"
)

// sharedPool is the single process-wide worker pool every game's Map uses
// for its longest-route search, per the concurrency model: the pool is
// bounded and reused across games rather than allocated per match.
var (
	sharedPool     *routemap.WorkerPool
	sharedPoolOnce sync.Once
)

func getSharedPool() *routemap.WorkerPool {
	sharedPoolOnce.Do(func() {
		sharedPool = routemap.NewWorkerPool(config.GetHostConfig().WorkerPoolSize)
	})
	return sharedPool
}
