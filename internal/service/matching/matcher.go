package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/m04kA/VeloStudio-SeatingService/internal/domain"
)

// Candidate одно открытое место слота с вычисленными оценками
// Порядок кандидатов полностью определяется тройкой
// (Score, PositionScore, LabelLower) по возрастанию.
type Candidate struct {
	Reservation *domain.Reservation
	Stand       *domain.Stand
	Bike        *domain.Bike

	Score         float64
	PositionScore float64
	LabelLower    string
}

// Rank строит полный порядок открытых мест слота для клиента
// Функция чистая: не делает I/O и не мутирует аргументы.
//
// Основная оценка (меньше - лучше):
//   - на станке любимый велосипед клиента -> 0
//   - на станке есть велосипед            -> 100 + расстояние по росту
//   - станок без велосипеда               -> 600
//   - станок не разрешился                -> 900
//
// Связки разрываются позицией станка (без позиции - в конец), затем
// меткой станка без учета регистра.
func Rank(client *domain.Client, open []*domain.Reservation, stands []*domain.Stand, bikes []*domain.Bike) []Candidate {
	standByID := make(map[int64]*domain.Stand, len(stands))
	for _, s := range stands {
		standByID[s.ID] = s
	}
	bikeByID := make(map[int64]*domain.Bike, len(bikes))
	for _, b := range bikes {
		bikeByID[b.ID] = b
	}

	favorite := ResolveFavoriteBike(client.FavoriteBike, bikes)

	candidates := make([]Candidate, 0, len(open))
	for _, reservation := range open {
		c := Candidate{
			Reservation:   reservation,
			Score:         domain.ScoreNoStand,
			PositionScore: domain.PositionUnknown,
		}

		if reservation.StandID != nil {
			if stand, ok := standByID[*reservation.StandID]; ok {
				c.Stand = stand
				c.LabelLower = strings.ToLower(stand.DisplayLabel())
				if stand.Position != nil {
					c.PositionScore = *stand.Position
				}

				if stand.BikeID != nil {
					if bike, ok := bikeByID[*stand.BikeID]; ok {
						c.Bike = bike
					}
				}

				switch {
				case c.Bike != nil && favorite != nil && c.Bike.ID == favorite.ID:
					c.Score = domain.ScoreFavoriteBike
				case c.Bike != nil:
					c.Score = domain.ScoreMountedBase + HeightDistance(c.Bike, client.Height)
				default:
					c.Score = domain.ScoreBareStand
				}
			}
		}

		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		if a.PositionScore != b.PositionScore {
			return a.PositionScore < b.PositionScore
		}
		return a.LabelLower < b.LabelLower
	})

	return candidates
}

// ResolveFavoriteBike сопоставляет свободный текст "любимый велосипед"
// с каталогом: сначала точное совпадение по названию или владельцу,
// затем первое вхождение подстроки. Итерация идет в порядке переданного
// слайса (каталог отдает велосипеды по возрастанию ID), поэтому результат
// воспроизводим между запусками.
func ResolveFavoriteBike(favorite *string, bikes []*domain.Bike) *domain.Bike {
	if favorite == nil {
		return nil
	}

	needle := normalize(*favorite)
	if needle == "" {
		return nil
	}

	for _, bike := range bikes {
		if normalize(bike.Title) == needle || normalize(bike.Owner) == needle {
			return bike
		}
	}

	for _, bike := range bikes {
		if strings.Contains(normalize(bike.Title), needle) || strings.Contains(normalize(bike.Owner), needle) {
			return bike
		}
	}

	return nil
}

// HeightDistance оценивает, насколько велосипед подходит клиенту по росту
// Чем меньше значение, тем лучше посадка.
func HeightDistance(bike *domain.Bike, height *float64) float64 {
	if height == nil {
		return domain.HeightPenaltyUnknown
	}
	h := *height

	min := bike.HeightMinCm
	max := bike.HeightMaxCm

	switch {
	case min != nil && max != nil:
		if h < *min {
			return domain.HeightPenaltyOutside + (*min - h)
		}
		if h > *max {
			return domain.HeightPenaltyOutside + (h - *max)
		}
		mid := (*min + *max) / 2
		return math.Abs(h - mid)

	case min != nil:
		if h < *min {
			return domain.HeightPenaltyOutside + (*min - h)
		}
		return h - *min

	case max != nil:
		if h > *max {
			return domain.HeightPenaltyOutside + (h - *max)
		}
		return *max - h

	default:
		return domain.HeightPenaltyNoRange
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
