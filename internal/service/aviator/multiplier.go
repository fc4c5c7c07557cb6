package aviator

import (
	"math"
	"math/rand"
	"time"

	"tapify_backend/internal/model"
)

// RoundDown2 округляет вниз до сотых
func RoundDown2(x float64) float64 {
	return math.Floor(x*100) / 100
}

// CurrentMultiplier - текущий множитель раунда на момент now:
// 1.00 + growth*elapsed, округленный вниз до сотых и ограниченный сверху
// крэш-множителем. Второй результат - достиг ли раунд краша
func CurrentMultiplier(r *model.Round, now time.Time) (float64, bool) {
	elapsed := now.Sub(r.StartTime).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}

	m := RoundDown2(1.0 + r.GrowthPerSec*elapsed)
	if m >= r.CrashMultiplier || r.Status == model.RoundCrashed {
		return r.CrashMultiplier, true
	}

	return m, false
}

// SampleCrashMultiplier сэмплирует крэш-множитель из трехуровневого
// распределения с тяжелым хвостом:
//
//	80% - [1.10, 3.00)
//	18% - [3.00, 10.00)
//	 2% - [10.00, 50.00)
func SampleCrashMultiplier() float64 {
	r := rand.Float64()
	switch {
	case r < 0.80:
		return RoundDown2(1.10 + rand.Float64()*(3.00-1.10))
	case r < 0.98:
		return RoundDown2(3.00 + rand.Float64()*(10.00-3.00))
	default:
		return RoundDown2(10.00 + rand.Float64()*(50.00-10.00))
	}
}

// Payout - выплата в миллах за ставку при множителе mult
func Payout(amountMills int64, mult float64) int64 {
	return int64(math.Floor(float64(amountMills) * mult))
}
