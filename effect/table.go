package effect

// DefaultNoEffect is shown for any effect at level 0
const DefaultNoEffect = "Нет эффекта"

// Table is the source a Registry is built from
type Table struct {
	NoEffect string
	Effects  []Definition
}

// DefaultTable returns the built-in effect table
// Each call returns a fresh copy
func DefaultTable() Table {
	return Table{
		NoEffect: DefaultNoEffect,
		Effects: []Definition{
			{
				ID:   "Fear",
				Name: "Страх",
				Levels: [LevelCount]string{
					"Тревога +5 стресса/ход",
					"Паника +10 стресса/ход -4 на АТАКУ",
					"Дрожь души +15 стресса/ход -8 на АТАКУ",
				},
			},
			{
				ID:   "Trauma",
				Name: "Травма",
				Levels: [LevelCount]string{
					"Ушиб -2 к ЛОВКОСТИ",
					"Перелом -5 к ЛОВКОСТИ -2 к СКОРОСТИ",
					"Увечье -10 к ЛОВКОСТИ, бег невозможен",
				},
			},
			{
				ID:   "Bleeding",
				Name: "Кровотечение",
				Levels: [LevelCount]string{
					"Царапины -2 ОЗ/ход",
					"Глубокая рана -5 ОЗ/ход",
					"Артериальное -10 ОЗ/ход -4 на ЗАЩИТУ",
				},
			},
			{
				ID:   "Poisoned",
				Name: "Отравление",
				Levels: [LevelCount]string{
					"Тошнота -2 к ВЫНОСЛИВОСТИ",
					"Лихорадка -4 ОЗ/ход -3 к ВЫНОСЛИВОСТИ",
					"Агония -8 ОЗ/ход, лечение вдвое слабее",
				},
			},
			{
				ID:   "Exhaustion",
				Name: "Истощение",
				Levels: [LevelCount]string{
					"Усталость -2 ко всем броскам",
					"Изнеможение -4 ко всем броскам, СКОРОСТЬ вдвое ниже",
					"На грани обморока -6 ко всем броскам, без реакций",
				},
			},
			{
				ID:   "Madness",
				Name: "Безумие",
				Levels: [LevelCount]string{
					"Шёпот +3 стресса/ход",
					"Видения +6 стресса/ход -4 на МАГИЮ",
					"Распад разума +12 стресса/ход, цель атаки случайна",
				},
			},
		},
	}
}
