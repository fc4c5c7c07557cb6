package history_repo

import (
	"sync"

	"tapify_backend/internal/repository"
)

// Репозиторий истории крэш-множителей в памяти процесса.
// Переживать рестарт истории не нужно - она чисто витринная
type HistoryRepo struct {
	mtx   sync.RWMutex
	size  int
	items []float64
	total int64
}

func NewRoundHistoryRepository(size int) repository.RoundHistoryRepository {
	if size <= 0 {
		size = 30
	}
	return &HistoryRepo{
		size:  size,
		items: make([]float64, 0, size),
	}
}

func (r *HistoryRepo) Append(multiplier float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.total++
	r.items = append(r.items, multiplier)
	if len(r.items) > r.size {
		r.items = r.items[1:]
	}
}

// Recent возвращает последние n множителей, новые в конце
func (r *HistoryRepo) Recent(n int) []float64 {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if n <= 0 || n > len(r.items) {
		n = len(r.items)
	}

	out := make([]float64, n)
	copy(out, r.items[len(r.items)-n:])
	return out
}

func (r *HistoryRepo) TotalRounds() int64 {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.total
}
