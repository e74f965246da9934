package matcher

import (
	"github.com/reservly/booking-engine/internal/domain"
)

// experienceCapYears — потолок стажа при нормализации: всё сверх него
// оценивается одинаково
const experienceCapYears = 20.0

// Score считает взвешенный скор ресурса в диапазоне [0, 1].
//
// Компоненты нормализуются заранее: рейтинг к пятибалльной шкале, стаж к
// потолку experienceCapYears, стоимость инвертируется от ставки комиссии
// (чем дешевле ресурс, тем выше компонент)
func Score(res *domain.BookableResource, weights domain.ScoreWeights) float64 {
	ratingNorm := res.Rating / 5.0
	if ratingNorm > 1 {
		ratingNorm = 1
	}

	expNorm := float64(res.ExperienceYears) / experienceCapYears
	if expNorm > 1 {
		expNorm = 1
	}

	costNorm := 1.0 - res.CommissionRate
	if costNorm < 0 {
		costNorm = 0
	}

	return ratingNorm*weights.Rating + expNorm*weights.Experience + costNorm*weights.Cost
}
