package aviator

import (
	"context"
	"log"
	"sync"
	"time"

	"tapify_backend/internal/config"
	"tapify_backend/internal/model"
	"tapify_backend/internal/repository"
)

// Шаг, которым движок спит внутри раунда и паузы,
// чтобы Stop отрабатывал быстро
const tickInterval = 500 * time.Millisecond

// Пауза после ошибки цикла перед следующей попыткой
const errorPause = time.Second

// Engine ведет глобальный раунд авиатора: создает раунд с предвычисленным
// крэш-множителем, держит его активным заданное время, крашит и после паузы
// начинает следующий. Владеет своим жизненным циклом: Start/Stop
type Engine struct {
	cfg     config.AviatorConfig
	rounds  repository.RoundRepository
	history repository.RoundHistoryRepository

	mtx     sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	running bool
}

func NewEngine(cfg config.AviatorConfig, rounds repository.RoundRepository, history repository.RoundHistoryRepository) *Engine {
	return &Engine{
		cfg:     cfg,
		rounds:  rounds,
		history: history,
	}
}

// Start запускает цикл раундов в фоне. Повторный Start - no-op
func (e *Engine) Start() {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.running {
		return
	}
	e.running = true
	e.stop = make(chan struct{})
	e.done = make(chan struct{})

	go e.loop()
}

// Stop останавливает цикл и ждет его завершения.
// Текущий раунд при этом остается в том статусе, в котором его застали
func (e *Engine) Stop() {
	e.mtx.Lock()
	if !e.running {
		e.mtx.Unlock()
		return
	}
	e.running = false
	close(e.stop)
	done := e.done
	e.mtx.Unlock()

	<-done
}

func (e *Engine) loop() {
	defer close(e.done)
	log.Println("aviator engine: started")

	for {
		select {
		case <-e.stop:
			log.Println("aviator engine: stopped")
			return
		default:
		}

		if err := e.runCycle(); err != nil {
			// Ловим, логируем и продолжаем после короткой паузы -
			// никакой другой политики ретраев у движка нет
			log.Printf("aviator engine: cycle error: %v", err)
			if !e.sleep(errorPause) {
				log.Println("aviator engine: stopped")
				return
			}
		}
	}
}

// runCycle - один полный цикл: создать раунд, дождаться конца, крашнуть, пауза
func (e *Engine) runCycle() error {
	ctx := context.Background()

	round := &model.Round{
		StartTime:       time.Now().UTC(),
		CrashMultiplier: SampleCrashMultiplier(),
		GrowthPerSec:    e.cfg.GrowthPerSec(),
		Status:          model.RoundActive,
	}

	id, err := e.rounds.Create(ctx, round)
	if err != nil {
		return err
	}
	round.ID = id
	log.Printf("aviator engine: round %d started, crash at x%.2f", id, round.CrashMultiplier)

	if !e.sleep(e.cfg.RoundDuration()) {
		return nil
	}

	if err := e.rounds.MarkCrashed(ctx, id, time.Now().UTC()); err != nil {
		return err
	}
	e.history.Append(round.CrashMultiplier)
	log.Printf("aviator engine: round %d crashed at x%.2f", id, round.CrashMultiplier)

	e.sleep(e.cfg.InterRoundGap())
	return nil
}

// sleep спит d с шагом tickInterval. Возвращает false, если движок остановили
func (e *Engine) sleep(d time.Duration) bool {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		step := tickInterval
		if left := time.Until(deadline); left < step {
			step = left
		}
		select {
		case <-e.stop:
			return false
		case <-time.After(step):
		}
	}
	return true
}
